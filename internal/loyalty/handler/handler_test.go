package handler

import (
	"bytes"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/palmrow/storefront-backend/internal/apperror"
	"github.com/palmrow/storefront-backend/internal/loyalty"
	"github.com/palmrow/storefront-backend/internal/loyalty/handler/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func multipartForm(t *testing.T, fields map[string]string) (*bytes.Buffer, string) {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	for key, value := range fields {
		require.NoError(t, writer.WriteField(key, value))
	}
	require.NoError(t, writer.Close())

	return body, writer.FormDataContentType()
}

func TestLoyaltyHandler(t *testing.T) {
	testTable := []struct {
		name               string
		fields             map[string]string
		mockBehavior       func(s *mocks.MockService)
		expectedStatusCode int
		expectedBody       string
	}{
		{
			name:   "OK",
			fields: map[string]string{"name": "A", "email": "a@x.com", "phone": "1"},
			mockBehavior: func(s *mocks.MockService) {
				s.EXPECT().
					RegisterSignup(gomock.Any(), loyalty.Signup{Name: "A", Email: "a@x.com", Phone: "1"}).
					Return(nil)
			},
			expectedStatusCode: 200,
			expectedBody:       "thank you for joining our team!",
		},
		{
			// The service must never be reached: validation short-circuits
			// before anything is persisted.
			name:               "missing name",
			fields:             map[string]string{"email": "a@x.com", "phone": "1"},
			mockBehavior:       func(s *mocks.MockService) {},
			expectedStatusCode: 400,
		},
		{
			name:               "missing email",
			fields:             map[string]string{"name": "A", "phone": "1"},
			mockBehavior:       func(s *mocks.MockService) {},
			expectedStatusCode: 400,
		},
		{
			name:               "missing phone",
			fields:             map[string]string{"name": "A", "email": "a@x.com"},
			mockBehavior:       func(s *mocks.MockService) {},
			expectedStatusCode: 400,
		},
		{
			name:   "store failure",
			fields: map[string]string{"name": "A", "email": "a@x.com", "phone": "1"},
			mockBehavior: func(s *mocks.MockService) {
				s.EXPECT().RegisterSignup(gomock.Any(), gomock.Any()).Return(errors.New("unexpected error"))
			},
			expectedStatusCode: 500,
			expectedBody:       apperror.ServerErrMessage,
		},
	}

	for _, tc := range testTable {
		t.Run(tc.name, func(t *testing.T) {
			c := gomock.NewController(t)
			defer c.Finish()

			service := mocks.NewMockService(c)
			tc.mockBehavior(service)

			router := chi.NewRouter()
			New(service, zap.NewNop()).Register(router)

			body, contentType := multipartForm(t, tc.fields)

			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/loyalty", body)
			req.Header.Set("Content-Type", contentType)

			router.ServeHTTP(w, req)

			assert.Equal(t, tc.expectedStatusCode, w.Code)
			if tc.expectedBody != "" {
				assert.Equal(t, tc.expectedBody, w.Body.String())
			}
		})
	}
}
