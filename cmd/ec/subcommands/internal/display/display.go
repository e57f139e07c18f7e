package display

import (
	"fmt"
	"io"

	apicarts "github.com/echo-commerce/echo-commerce/api/types/carts"
	apiorders "github.com/echo-commerce/echo-commerce/api/types/orders"
)

var statusLabels = map[apiorders.Status]string{
	apiorders.Pending:   "待付款",
	apiorders.Paid:      "已付款",
	apiorders.Shipped:   "已发货",
	apiorders.Delivered: "已送达",
	apiorders.Cancelled: "已取消",
}

// StatusLabel returns the display label of an order status.
//
// Unknown statuses pass through unchanged, so that a newer backend does not
// break older clients.
func StatusLabel(s apiorders.Status) string {
	if label, ok := statusLabels[s]; ok {
		return label
	}
	return string(s)
}

// WriteCart renders the whole cart, one line per item.
func WriteCart(w io.Writer, cart apicarts.Detail) {
	if len(cart.Items) == 0 {
		fmt.Fprintln(w, "(cart is empty)")
		return
	}
	for _, item := range cart.Items {
		fmt.Fprintf(
			w, "%s\t%s\tx%d\t%s\t= %s\n",
			item.Id, item.ProductName, item.Quantity,
			item.ProductPrice.String(), item.Subtotal.String(),
		)
	}
	fmt.Fprintf(w, "total: %s (%d items)\n", cart.TotalAmount.String(), cart.TotalItems)
}

// WriteOrderSummaries renders an order list, one line per order.
func WriteOrderSummaries(w io.Writer, found []apiorders.Summary) {
	if len(found) == 0 {
		fmt.Fprintln(w, "(no orders)")
		return
	}
	for _, o := range found {
		fmt.Fprintf(
			w, "%s\t%s\t%s\t%s\t%d items\t%s\n",
			o.Id, o.OrderNumber, StatusLabel(o.Status),
			o.TotalAmount.String(), o.ItemCount, o.CreatedAt.String(),
		)
	}
}

// WriteOrderDetail renders one order with its lines.
func WriteOrderDetail(w io.Writer, order apiorders.Detail) {
	fmt.Fprintf(w, "order:    %s\n", order.OrderNumber)
	fmt.Fprintf(w, "id:       %s\n", order.Id)
	fmt.Fprintf(w, "status:   %s\n", StatusLabel(order.Status))
	fmt.Fprintf(w, "created:  %s\n", order.CreatedAt.String())
	for _, item := range order.Items {
		fmt.Fprintf(
			w, "    %s\tx%d\t%s\t= %s\n",
			item.ProductName, item.Quantity,
			item.ProductPrice.String(), item.Subtotal.String(),
		)
	}
	fmt.Fprintf(w, "total:    %s\n", order.TotalAmount.String())
}
