package tests

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/palmrow/storefront-backend/internal/product"
	"github.com/palmrow/storefront-backend/internal/promotion"
)

func (s *APITestSuite) getJSON(url string, v any) int {
	response, err := http.Get(url)
	s.Require().NoError(err)
	defer response.Body.Close()

	if response.StatusCode == http.StatusOK {
		s.Require().NoError(json.NewDecoder(response.Body).Decode(v))
	}

	return response.StatusCode
}

func (s *APITestSuite) TestCatalog() {
	var catalog []product.Product

	status := s.getJSON(fmt.Sprintf("%s/products", s.baseUrl), &catalog)

	s.Equal(http.StatusOK, status)
	s.Require().Len(catalog, 3)

	// Directory-listing order.
	s.Equal("cedar-ridge", catalog[0].ID)
	s.Equal("harbor-row", catalog[1].ID)
	s.Equal("seashell-cove", catalog[2].ID)

	s.Equal("Seashell Cove", catalog[2].Name)
	s.Equal("120", catalog[2].Price)
	s.Equal("3", catalog[2].Dist)
	s.Equal("beach", catalog[2].Type)
	s.Equal("img/seashell-cove.jpeg", catalog[2].ImgPath)
}

func (s *APITestSuite) TestCatalogTypeFilter() {
	var filtered []product.Product

	status := s.getJSON(fmt.Sprintf("%s/products?type=beach", s.baseUrl), &filtered)

	s.Equal(http.StatusOK, status)
	s.Require().Len(filtered, 1)
	s.Equal("seashell-cove", filtered[0].ID)
}

func (s *APITestSuite) TestCatalogTypeFilterNoMatch() {
	response, err := http.Get(fmt.Sprintf("%s/products?type=desert", s.baseUrl))
	s.Require().NoError(err)

	byteBody, err := io.ReadAll(response.Body)
	s.Require().NoError(err)

	response.Body.Close()

	s.Equal(http.StatusOK, response.StatusCode)
	s.JSONEq("[]", string(byteBody))
}

func (s *APITestSuite) TestSingleProduct() {
	var p product.Product

	status := s.getJSON(fmt.Sprintf("%s/products/seashell-cove", s.baseUrl), &p)

	s.Equal(http.StatusOK, status)
	s.Equal("seashell-cove", p.ID)
	s.Equal("Seashell Cove", p.Name)
}

func (s *APITestSuite) TestSingleProductCaseInsensitive() {
	var p product.Product

	status := s.getJSON(fmt.Sprintf("%s/products/Seashell-COVE", s.baseUrl), &p)

	s.Equal(http.StatusOK, status)
	s.Equal("seashell-cove", p.ID)
}

func (s *APITestSuite) TestSingleProductNotFound() {
	response, err := http.Get(fmt.Sprintf("%s/products/nowhere", s.baseUrl))
	s.Require().NoError(err)

	byteBody, err := io.ReadAll(response.Body)
	s.Require().NoError(err)

	response.Body.Close()

	s.Equal(http.StatusNotFound, response.StatusCode)
	s.Equal("the requested product does not exist.", string(byteBody))
}

func (s *APITestSuite) TestPromotions() {
	var promotions []promotion.Promotion

	status := s.getJSON(fmt.Sprintf("%s/promotions", s.baseUrl), &promotions)

	s.Equal(http.StatusOK, status)
	s.Require().Len(promotions, 2)
	s.Equal("summer-sale", promotions[0].ID)
	s.Equal("120", promotions[0].OldPrice)
	s.Equal("80", promotions[0].Price)
	s.Equal("winter-escape", promotions[1].ID)
}
