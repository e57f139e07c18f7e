package orders

import (
	"github.com/echo-commerce/echo-commerce/api/types/misc/rfctime"
	"github.com/echo-commerce/echo-commerce/pkg/cmp"
	"github.com/shopspring/decimal"
)

// Status of an order. This is a closed enumeration; transitions happen
// only on the backend, and clients never initiate one.
type Status string

const (
	Pending   Status = "pending"
	Paid      Status = "paid"
	Shipped   Status = "shipped"
	Delivered Status = "delivered"
	Cancelled Status = "cancelled"
)

func KnownStatuses() []Status {
	return []Status{Pending, Paid, Shipped, Delivered, Cancelled}
}

func (s Status) IsKnown() bool {
	switch s {
	case Pending, Paid, Shipped, Delivered, Cancelled:
		return true
	}
	return false
}

// Item is an order line: an immutable snapshot taken at order creation.
type Item struct {
	ProductId    string          `json:"product_id"`
	ProductName  string          `json:"product_name"`
	ProductPrice decimal.Decimal `json:"product_price"`
	Quantity     int             `json:"quantity"`
	Subtotal     decimal.Decimal `json:"subtotal"`
}

func (i Item) Equal(o Item) bool {
	return i.ProductId == o.ProductId &&
		i.ProductName == o.ProductName &&
		i.ProductPrice.Equal(o.ProductPrice) &&
		i.Quantity == o.Quantity &&
		i.Subtotal.Equal(o.Subtotal)
}

// Detail is an order with its lines.
type Detail struct {
	Id          string          `json:"id"`
	OrderNumber string          `json:"order_number"`
	TotalAmount decimal.Decimal `json:"total_amount"`
	Status      Status          `json:"status"`
	CreatedAt   rfctime.RFC3339 `json:"created_at"`
	Items       []Item          `json:"items"`
}

func (d Detail) Equal(o Detail) bool {
	return d.Id == o.Id &&
		d.OrderNumber == o.OrderNumber &&
		d.TotalAmount.Equal(o.TotalAmount) &&
		d.Status == o.Status &&
		d.CreatedAt.Equal(o.CreatedAt) &&
		cmp.SliceEqWith(d.Items, o.Items, Item.Equal)
}

// Summary is the list form of an order.
type Summary struct {
	Id          string          `json:"id"`
	OrderNumber string          `json:"order_number"`
	TotalAmount decimal.Decimal `json:"total_amount"`
	Status      Status          `json:"status"`
	CreatedAt   rfctime.RFC3339 `json:"created_at"`
	ItemCount   int             `json:"item_count"`
}

func (s Summary) Equal(o Summary) bool {
	return s.Id == o.Id &&
		s.OrderNumber == o.OrderNumber &&
		s.TotalAmount.Equal(o.TotalAmount) &&
		s.Status == o.Status &&
		s.CreatedAt.Equal(o.CreatedAt) &&
		s.ItemCount == o.ItemCount
}
