package tests

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"

	"github.com/palmrow/storefront-backend/internal/loyalty"
)

func (s *APITestSuite) postForm(url string, fields map[string]string) (int, string) {
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	for key, value := range fields {
		s.Require().NoError(writer.WriteField(key, value))
	}
	s.Require().NoError(writer.Close())

	response, err := http.Post(url, writer.FormDataContentType(), body)
	s.Require().NoError(err)

	byteBody, err := io.ReadAll(response.Body)
	s.Require().NoError(err)

	response.Body.Close()

	return response.StatusCode, string(byteBody)
}

func (s *APITestSuite) TestContact() {
	status, respBody := s.postForm(fmt.Sprintf("%s/contact", s.baseUrl), map[string]string{
		"email": "a@x.com",
		"msg":   "hello there",
	})

	s.Equal(http.StatusOK, status)
	s.Equal("thank you for your message!", respBody)

	data, err := os.ReadFile(s.messagesPath())
	s.Require().NoError(err)
	s.Equal("a@x.com : hello there\n", string(data))
}

func (s *APITestSuite) TestContactMissingFieldWritesNothing() {
	status, _ := s.postForm(fmt.Sprintf("%s/contact", s.baseUrl), map[string]string{
		"email": "a@x.com",
	})

	s.Equal(http.StatusBadRequest, status)

	_, err := os.Stat(s.messagesPath())
	s.True(os.IsNotExist(err))
}

func (s *APITestSuite) TestLoyaltyFirstSignupCreatesArray() {
	status, respBody := s.postForm(fmt.Sprintf("%s/loyalty", s.baseUrl), map[string]string{
		"name":  "A",
		"email": "a@x.com",
		"phone": "1",
	})

	s.Equal(http.StatusOK, status)
	s.Equal("thank you for joining our team!", respBody)

	data, err := os.ReadFile(s.loyaltyPath())
	s.Require().NoError(err)

	var signups []loyalty.Signup
	s.Require().NoError(json.Unmarshal(data, &signups))

	s.Require().Len(signups, 1)
	s.Equal("A", signups[0].Name)
	s.Equal("a@x.com", signups[0].Email)
	s.Equal("1", signups[0].Phone)
	s.NotEmpty(signups[0].ID)
}

func (s *APITestSuite) TestLoyaltyMissingFieldWritesNothing() {
	status, _ := s.postForm(fmt.Sprintf("%s/loyalty", s.baseUrl), map[string]string{
		"name":  "A",
		"email": "a@x.com",
	})

	s.Equal(http.StatusBadRequest, status)

	_, err := os.Stat(s.loyaltyPath())
	s.True(os.IsNotExist(err))
}
