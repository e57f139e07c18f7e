// Package binding composes store records into their wire form.
package binding

import (
	apicarts "github.com/echo-commerce/echo-commerce/api/types/carts"
	apiorders "github.com/echo-commerce/echo-commerce/api/types/orders"
	apiproducts "github.com/echo-commerce/echo-commerce/api/types/products"
	apiusers "github.com/echo-commerce/echo-commerce/api/types/users"
	"github.com/echo-commerce/echo-commerce/api/types/misc/rfctime"
	"github.com/echo-commerce/echo-commerce/cmd/ecd/store"
	"github.com/echo-commerce/echo-commerce/pkg/utils"
	"github.com/echo-commerce/echo-commerce/pkg/utils/pointer"
	"github.com/shopspring/decimal"
)

func ComposeUser(u store.User) apiusers.Detail {
	return apiusers.Detail{
		Id:        u.Id,
		Username:  u.Username,
		IsAdmin:   u.IsAdmin,
		CreatedAt: rfctime.New(u.CreatedAt),
	}
}

func ComposeProduct(p store.Product) apiproducts.Detail {
	d := apiproducts.Detail{
		Id:          p.Id,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		Stock:       p.Stock,
		ImageUrl:    p.ImageUrl,
		CreatedAt:   rfctime.New(p.CreatedAt),
	}
	if p.UpdatedAt != nil {
		d.UpdatedAt = pointer.Ref(rfctime.New(*p.UpdatedAt))
	}
	return d
}

func ComposeCartItem(e store.CartEntry) apicarts.Item {
	return apicarts.Item{
		Id:              e.Line.Id,
		ProductId:       e.Product.Id,
		Quantity:        e.Line.Quantity,
		ProductName:     e.Product.Name,
		ProductPrice:    e.Product.Price,
		ProductImageUrl: e.Product.ImageUrl,
		Subtotal:        e.Subtotal(),
		CreatedAt:       rfctime.New(e.Line.CreatedAt),
	}
}

// ComposeCart builds the whole-cart view: the item list with totals
// recomputed from the live catalog.
func ComposeCart(entries []store.CartEntry) apicarts.Detail {
	total := decimal.Zero
	count := 0
	for _, e := range entries {
		total = total.Add(e.Subtotal())
		count += e.Line.Quantity
	}
	return apicarts.Detail{
		Items:       utils.Map(entries, ComposeCartItem),
		TotalAmount: total,
		TotalItems:  count,
	}
}

func ComposeOrder(o store.Order) apiorders.Detail {
	return apiorders.Detail{
		Id:          o.Id,
		OrderNumber: o.OrderNumber,
		TotalAmount: o.TotalAmount,
		Status:      o.Status,
		CreatedAt:   rfctime.New(o.CreatedAt),
		Items: utils.Map(o.Lines, func(l store.OrderLine) apiorders.Item {
			return apiorders.Item{
				ProductId:    l.ProductId,
				ProductName:  l.ProductName,
				ProductPrice: l.ProductPrice,
				Quantity:     l.Quantity,
				Subtotal:     l.Subtotal,
			}
		}),
	}
}

func ComposeOrderSummary(o store.Order) apiorders.Summary {
	return apiorders.Summary{
		Id:          o.Id,
		OrderNumber: o.OrderNumber,
		TotalAmount: o.TotalAmount,
		Status:      o.Status,
		CreatedAt:   rfctime.New(o.CreatedAt),
		ItemCount:   len(o.Lines),
	}
}
