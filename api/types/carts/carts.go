package carts

import (
	"github.com/echo-commerce/echo-commerce/api/types/misc/rfctime"
	"github.com/echo-commerce/echo-commerce/pkg/cmp"
	"github.com/shopspring/decimal"
)

// Item is a line in a cart.
//
// Name, price and image are denormalized snapshots of the product, and
// Subtotal = Quantity x ProductPrice. All of them are computed by the
// backend; clients only render them.
type Item struct {
	Id              string          `json:"id"`
	ProductId       string          `json:"product_id"`
	Quantity        int             `json:"quantity"`
	ProductName     string          `json:"product_name"`
	ProductPrice    decimal.Decimal `json:"product_price"`
	ProductImageUrl string          `json:"product_image_url"`
	Subtotal        decimal.Decimal `json:"subtotal"`
	CreatedAt       rfctime.RFC3339 `json:"created_at"`
}

func (i Item) Equal(o Item) bool {
	return i.Id == o.Id &&
		i.ProductId == o.ProductId &&
		i.Quantity == o.Quantity &&
		i.ProductName == o.ProductName &&
		i.ProductPrice.Equal(o.ProductPrice) &&
		i.ProductImageUrl == o.ProductImageUrl &&
		i.Subtotal.Equal(o.Subtotal) &&
		i.CreatedAt.Equal(o.CreatedAt)
}

// Detail is the whole cart of a user. Totals are backend-owned.
type Detail struct {
	Items       []Item          `json:"items"`
	TotalAmount decimal.Decimal `json:"total_amount"`
	TotalItems  int             `json:"total_items"`
}

func (d Detail) Equal(o Detail) bool {
	return d.TotalAmount.Equal(o.TotalAmount) &&
		d.TotalItems == o.TotalItems &&
		cmp.SliceEqWith(d.Items, o.Items, Item.Equal)
}

// ItemSpec is the request body of add-to-cart.
type ItemSpec struct {
	ProductId string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

// QuantityChange is the request body of a cart line quantity update.
type QuantityChange struct {
	Quantity int `json:"quantity"`
}
