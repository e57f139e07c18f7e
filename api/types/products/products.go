package products

import (
	"github.com/echo-commerce/echo-commerce/api/types/misc/rfctime"
	"github.com/echo-commerce/echo-commerce/pkg/cmp"
	"github.com/shopspring/decimal"
)

// Detail is a catalog product.
type Detail struct {
	Id          string           `json:"id"`
	Name        string           `json:"name"`
	Description string           `json:"description"`
	Price       decimal.Decimal  `json:"price"`
	Stock       int              `json:"stock"`
	ImageUrl    string           `json:"image_url"`
	CreatedAt   rfctime.RFC3339  `json:"created_at"`
	UpdatedAt   *rfctime.RFC3339 `json:"updated_at,omitempty"`
}

func (d Detail) Equal(o Detail) bool {
	return d.Id == o.Id &&
		d.Name == o.Name &&
		d.Description == o.Description &&
		d.Price.Equal(o.Price) &&
		d.Stock == o.Stock &&
		d.ImageUrl == o.ImageUrl &&
		d.CreatedAt.Equal(o.CreatedAt) &&
		cmp.PEqualWith(d.UpdatedAt, o.UpdatedAt, rfctime.RFC3339.Equal)
}

// Spec is the request body of product create/update.
type Spec struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Stock       int             `json:"stock"`
	ImageUrl    string          `json:"image_url"`
}

func (s Spec) Equal(o Spec) bool {
	return s.Name == o.Name &&
		s.Description == o.Description &&
		s.Price.Equal(o.Price) &&
		s.Stock == o.Stock &&
		s.ImageUrl == o.ImageUrl
}
