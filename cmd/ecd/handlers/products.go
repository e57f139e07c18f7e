package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	apiproducts "github.com/echo-commerce/echo-commerce/api/types/products"
	"github.com/echo-commerce/echo-commerce/cmd/ecd/binding"
	"github.com/echo-commerce/echo-commerce/cmd/ecd/store"
	binderr "github.com/echo-commerce/echo-commerce/pkg/api-types-binding/errors"
	"github.com/echo-commerce/echo-commerce/pkg/utils"
)

// Listing wider than this is clamped.
const maxPageSize = 1000

// queryInt reads an optional non-negative integer query parameter.
func queryInt(c echo.Context, name string, fallback int) (int, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return fallback, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < 0 {
		return 0, binderr.BadRequest("query parameter " + name + " should be a non-negative integer")
	}
	return v, nil
}

// FindProductHandler lists the catalog. Public.
func FindProductHandler(s *store.Store) echo.HandlerFunc {
	return func(c echo.Context) error {
		skip, err := queryInt(c, "skip", 0)
		if err != nil {
			return err
		}
		limit, err := queryInt(c, "limit", 20)
		if err != nil {
			return err
		}
		if limit == 0 || maxPageSize < limit {
			limit = maxPageSize
		}

		found := s.Products(skip, limit)
		return c.JSON(http.StatusOK, utils.Map(found, binding.ComposeProduct))
	}
}

// GetProductHandler gets one product. Public.
func GetProductHandler(s *store.Store, paramId string) echo.HandlerFunc {
	return func(c echo.Context) error {
		p, err := s.Product(c.Param(paramId))
		if errors.Is(err, store.ErrNotFound) {
			return binderr.NotFound("Product not found")
		}
		if err != nil {
			return binderr.InternalServerError(err)
		}
		return c.JSON(http.StatusOK, binding.ComposeProduct(p))
	}
}

func decodeProductSpec(c echo.Context) (store.ProductSpec, error) {
	spec := new(apiproducts.Spec)
	if err := json.NewDecoder(c.Request().Body).Decode(spec); err != nil {
		return store.ProductSpec{}, binderr.BadRequest("can not understand the requested json")
	}
	if spec.Name == "" {
		return store.ProductSpec{}, binderr.BadRequest("product name is required")
	}
	if spec.Price.IsNegative() || spec.Stock < 0 {
		return store.ProductSpec{}, binderr.BadRequest("price and stock should not be negative")
	}
	return store.ProductSpec{
		Name:        spec.Name,
		Description: spec.Description,
		Price:       spec.Price,
		Stock:       spec.Stock,
		ImageUrl:    spec.ImageUrl,
	}, nil
}

// RegisterProductHandler creates a product. Admin only.
func RegisterProductHandler(s *store.Store) echo.HandlerFunc {
	return func(c echo.Context) error {
		spec, err := decodeProductSpec(c)
		if err != nil {
			return err
		}
		p := s.AddProduct(spec)
		return c.JSON(http.StatusOK, binding.ComposeProduct(p))
	}
}

// UpdateProductHandler overwrites a product. Admin only.
func UpdateProductHandler(s *store.Store, paramId string) echo.HandlerFunc {
	return func(c echo.Context) error {
		spec, err := decodeProductSpec(c)
		if err != nil {
			return err
		}
		p, err := s.UpdateProduct(c.Param(paramId), spec)
		if errors.Is(err, store.ErrNotFound) {
			return binderr.NotFound("Product not found")
		}
		if err != nil {
			return binderr.InternalServerError(err)
		}
		return c.JSON(http.StatusOK, binding.ComposeProduct(p))
	}
}

// DeleteProductHandler removes a product from the catalog. Admin only.
//
// Existing order snapshots keep the product's name and price; carts
// holding it drop the line at the next read.
func DeleteProductHandler(s *store.Store, paramId string) echo.HandlerFunc {
	return func(c echo.Context) error {
		err := s.DeleteProduct(c.Param(paramId))
		if errors.Is(err, store.ErrNotFound) {
			return binderr.NotFound("Product not found")
		}
		if err != nil {
			return binderr.InternalServerError(err)
		}
		return c.JSON(http.StatusOK, map[string]string{"message": "Product deleted"})
	}
}
