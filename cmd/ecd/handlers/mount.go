package handlers

import (
	"time"

	"github.com/labstack/echo/v4"

	"github.com/echo-commerce/echo-commerce/cmd/ecd/store"
)

// TokenAuthority both mints and verifies access tokens.
type TokenAuthority interface {
	TokenIssuer
	TokenVerifier
}

// Mount registers every API route on e.
func Mount(e *echo.Echo, s *store.Store, tokens TokenAuthority, hasher PasswordHasher) {
	authed := Authenticated(tokens, s)

	auth := e.Group("/api/auth")
	{
		auth.POST("/register", RegisterHandler(s, tokens, hasher))
		auth.POST("/login", LoginHandler(s, tokens, hasher))
		auth.GET("/me", MeHandler(), authed)
	}

	products := e.Group("/api/products")
	{
		products.GET("", FindProductHandler(s))
		products.GET("/:productId", GetProductHandler(s, "productId"))

		products.POST("", RegisterProductHandler(s), authed, AdminOnly)
		products.PUT("/:productId", UpdateProductHandler(s, "productId"), authed, AdminOnly)
		products.DELETE("/:productId", DeleteProductHandler(s, "productId"), authed, AdminOnly)
	}

	cart := e.Group("/api/cart", authed)
	{
		cart.GET("", GetCartHandler(s))
		cart.POST("/items", AddCartItemHandler(s))
		cart.PUT("/items/:itemId", UpdateCartItemHandler(s, "itemId"))
		cart.DELETE("/items/:itemId", RemoveCartItemHandler(s, "itemId"))
		cart.DELETE("/clear", ClearCartHandler(s))
	}

	orders := e.Group("/api/orders", authed)
	{
		orders.POST("", CreateOrderHandler(s))
		orders.GET("", FindOrderHandler(s))
		orders.GET("/:orderId", GetOrderHandler(s, "orderId"))
	}

	admin := e.Group("/api/admin", authed, AdminOnly)
	{
		admin.GET("/stats", GetStatsHandler(s, time.Now))
		admin.GET("/users", FindUserHandler(s))
		admin.PUT("/users/:userId/admin", SetUserAdminHandler(s, "userId"))
		admin.GET("/orders", FindAllOrderHandler(s))
		admin.GET("/orders/:orderId", GetAnyOrderHandler(s, "orderId"))
	}
}
