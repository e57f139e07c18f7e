package store

import (
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	apiorders "github.com/echo-commerce/echo-commerce/api/types/orders"
)

var (
	ErrNotFound     = errors.New("not found")
	ErrUserConflict = errors.New("username is already taken")
	ErrShortStock   = errors.New("short of stock")
	ErrEmptyCart    = errors.New("cart is empty")
)

// User is a registered account.
type User struct {
	Id             string
	Username       string
	HashedPassword string
	IsAdmin        bool
	CreatedAt      time.Time
}

// Product is a catalog entry.
type Product struct {
	Id          string
	Name        string
	Description string
	Price       decimal.Decimal
	Stock       int
	ImageUrl    string
	CreatedAt   time.Time
	UpdatedAt   *time.Time
}

// ProductSpec is the mutable part of a Product.
type ProductSpec struct {
	Name        string
	Description string
	Price       decimal.Decimal
	Stock       int
	ImageUrl    string
}

// CartLine is one product in a user's cart. It records only the product
// reference and the quantity; prices are resolved against the live
// catalog at read time.
type CartLine struct {
	Id        string
	UserId    string
	ProductId string
	Quantity  int
	CreatedAt time.Time
	UpdatedAt time.Time
}

// CartEntry is a cart line joined with its live product.
type CartEntry struct {
	Line    CartLine
	Product Product
}

// Subtotal = quantity x current product price.
func (e CartEntry) Subtotal() decimal.Decimal {
	return e.Product.Price.Mul(decimal.NewFromInt(int64(e.Line.Quantity)))
}

// OrderLine is an immutable snapshot of a cart line, taken when the
// order was placed.
type OrderLine struct {
	ProductId    string
	ProductName  string
	ProductPrice decimal.Decimal
	Quantity     int
	Subtotal     decimal.Decimal
}

// Order is a placed order with its snapshot lines.
type Order struct {
	Id          string
	UserId      string
	OrderNumber string
	TotalAmount decimal.Decimal
	Status      apiorders.Status
	CreatedAt   time.Time
	Lines       []OrderLine
}

// Summary is a system-wide snapshot for the admin dashboard.
type Summary struct {
	TotalUsers         int
	TotalProducts      int
	TotalOrders        int
	TotalRevenue       decimal.Decimal
	TodayOrders        int
	MonthOrders        int
	InStockProducts    int
	OutOfStockProducts int
	OrderStatusStats   map[apiorders.Status]int
}

// Store holds all backend state in memory, guarded by one RWMutex.
//
// Every method returns copies; callers never observe later mutations
// through values they already hold.
type Store struct {
	mux sync.RWMutex

	users     map[string]User   // user id -> user
	usernames map[string]string // username -> user id
	products  map[string]Product
	carts     map[string]map[string]CartLine // user id -> line id -> line
	orders    map[string]Order

	clock func() time.Time
}

type Option func(*Store)

// WithClock replaces time.Now. For tests.
func WithClock(clock func() time.Time) Option {
	return func(s *Store) {
		s.clock = clock
	}
}

func New(opts ...Option) *Store {
	s := &Store{
		users:     map[string]User{},
		usernames: map[string]string{},
		products:  map[string]Product{},
		carts:     map[string]map[string]CartLine{},
		orders:    map[string]Order{},
		clock:     time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// NewUser registers an account. The password should be hashed already.
func (s *Store) NewUser(username string, hashedPassword string) (User, error) {
	s.mux.Lock()
	defer s.mux.Unlock()

	if _, ok := s.usernames[username]; ok {
		return User{}, fmt.Errorf("%w: %s", ErrUserConflict, username)
	}

	u := User{
		Id:             uuid.NewString(),
		Username:       username,
		HashedPassword: hashedPassword,
		IsAdmin:        false,
		CreatedAt:      s.clock().UTC(),
	}
	s.users[u.Id] = u
	s.usernames[u.Username] = u.Id
	return u, nil
}

func (s *Store) User(userId string) (User, error) {
	s.mux.RLock()
	defer s.mux.RUnlock()

	u, ok := s.users[userId]
	if !ok {
		return User{}, fmt.Errorf("%w: user:%s", ErrNotFound, userId)
	}
	return u, nil
}

func (s *Store) UserByName(username string) (User, error) {
	s.mux.RLock()
	defer s.mux.RUnlock()

	id, ok := s.usernames[username]
	if !ok {
		return User{}, fmt.Errorf("%w: user:%s", ErrNotFound, username)
	}
	return s.users[id], nil
}

// Users lists accounts, newest first.
func (s *Store) Users(skip int, limit int) []User {
	s.mux.RLock()
	defer s.mux.RUnlock()

	all := make([]User, 0, len(s.users))
	for _, u := range s.users {
		all = append(all, u)
	}
	sort.Slice(all, func(i, j int) bool {
		if !all[i].CreatedAt.Equal(all[j].CreatedAt) {
			return all[i].CreatedAt.After(all[j].CreatedAt)
		}
		return all[i].Id < all[j].Id
	})
	return window(all, skip, limit)
}

func (s *Store) SetAdmin(userId string, isAdmin bool) (User, error) {
	s.mux.Lock()
	defer s.mux.Unlock()

	u, ok := s.users[userId]
	if !ok {
		return User{}, fmt.Errorf("%w: user:%s", ErrNotFound, userId)
	}
	u.IsAdmin = isAdmin
	s.users[userId] = u
	return u, nil
}

func (s *Store) AddProduct(spec ProductSpec) Product {
	s.mux.Lock()
	defer s.mux.Unlock()

	p := Product{
		Id:          uuid.NewString(),
		Name:        spec.Name,
		Description: spec.Description,
		Price:       spec.Price,
		Stock:       spec.Stock,
		ImageUrl:    spec.ImageUrl,
		CreatedAt:   s.clock().UTC(),
	}
	s.products[p.Id] = p
	return p
}

// Products lists the catalog in registration order.
func (s *Store) Products(skip int, limit int) []Product {
	s.mux.RLock()
	defer s.mux.RUnlock()

	all := make([]Product, 0, len(s.products))
	for _, p := range s.products {
		all = append(all, p)
	}
	sort.Slice(all, func(i, j int) bool {
		if !all[i].CreatedAt.Equal(all[j].CreatedAt) {
			return all[i].CreatedAt.Before(all[j].CreatedAt)
		}
		return all[i].Id < all[j].Id
	})
	return window(all, skip, limit)
}

func (s *Store) Product(productId string) (Product, error) {
	s.mux.RLock()
	defer s.mux.RUnlock()

	p, ok := s.products[productId]
	if !ok {
		return Product{}, fmt.Errorf("%w: product:%s", ErrNotFound, productId)
	}
	return p, nil
}

func (s *Store) UpdateProduct(productId string, spec ProductSpec) (Product, error) {
	s.mux.Lock()
	defer s.mux.Unlock()

	p, ok := s.products[productId]
	if !ok {
		return Product{}, fmt.Errorf("%w: product:%s", ErrNotFound, productId)
	}

	now := s.clock().UTC()
	p.Name = spec.Name
	p.Description = spec.Description
	p.Price = spec.Price
	p.Stock = spec.Stock
	p.ImageUrl = spec.ImageUrl
	p.UpdatedAt = &now
	s.products[productId] = p
	return p, nil
}

// DeleteProduct removes a product from the catalog.
//
// Cart lines pointing at it are left behind and dropped at cart read;
// order snapshots are untouched.
func (s *Store) DeleteProduct(productId string) error {
	s.mux.Lock()
	defer s.mux.Unlock()

	if _, ok := s.products[productId]; !ok {
		return fmt.Errorf("%w: product:%s", ErrNotFound, productId)
	}
	delete(s.products, productId)
	return nil
}

// Cart reads a user's cart joined with the live catalog. Lines whose
// product has vanished are omitted.
func (s *Store) Cart(userId string) []CartEntry {
	s.mux.RLock()
	defer s.mux.RUnlock()

	entries := []CartEntry{}
	for _, line := range s.carts[userId] {
		p, ok := s.products[line.ProductId]
		if !ok {
			continue
		}
		entries = append(entries, CartEntry{Line: line, Product: p})
	}
	sort.Slice(entries, func(i, j int) bool {
		a, b := entries[i].Line, entries[j].Line
		if !a.CreatedAt.Equal(b.CreatedAt) {
			return a.CreatedAt.Before(b.CreatedAt)
		}
		return a.Id < b.Id
	})
	return entries
}

// AddToCart puts quantity pieces of a product into the cart.
//
// When the product already has a line, quantities accumulate. The
// accumulated quantity is checked against stock.
func (s *Store) AddToCart(userId string, productId string, quantity int) (CartEntry, error) {
	s.mux.Lock()
	defer s.mux.Unlock()

	p, ok := s.products[productId]
	if !ok {
		return CartEntry{}, fmt.Errorf("%w: product:%s", ErrNotFound, productId)
	}

	cart := s.carts[userId]
	if cart == nil {
		cart = map[string]CartLine{}
		s.carts[userId] = cart
	}

	now := s.clock().UTC()
	for _, line := range cart {
		if line.ProductId != productId {
			continue
		}
		newQuantity := line.Quantity + quantity
		if p.Stock < newQuantity {
			return CartEntry{}, fmt.Errorf("%w: in stock: %d", ErrShortStock, p.Stock)
		}
		line.Quantity = newQuantity
		line.UpdatedAt = now
		cart[line.Id] = line
		return CartEntry{Line: line, Product: p}, nil
	}

	if p.Stock < quantity {
		return CartEntry{}, fmt.Errorf("%w: in stock: %d", ErrShortStock, p.Stock)
	}
	line := CartLine{
		Id:        uuid.NewString(),
		UserId:    userId,
		ProductId: productId,
		Quantity:  quantity,
		CreatedAt: now,
		UpdatedAt: now,
	}
	cart[line.Id] = line
	return CartEntry{Line: line, Product: p}, nil
}

// UpdateCartLine sets the quantity of a cart line. The quantity should
// be positive; removal is RemoveCartLine's job.
func (s *Store) UpdateCartLine(userId string, lineId string, quantity int) (CartEntry, error) {
	s.mux.Lock()
	defer s.mux.Unlock()

	line, ok := s.carts[userId][lineId]
	if !ok {
		return CartEntry{}, fmt.Errorf("%w: cart item:%s", ErrNotFound, lineId)
	}
	p, ok := s.products[line.ProductId]
	if !ok {
		return CartEntry{}, fmt.Errorf("%w: product:%s", ErrNotFound, line.ProductId)
	}
	if p.Stock < quantity {
		return CartEntry{}, fmt.Errorf("%w: in stock: %d", ErrShortStock, p.Stock)
	}

	line.Quantity = quantity
	line.UpdatedAt = s.clock().UTC()
	s.carts[userId][lineId] = line
	return CartEntry{Line: line, Product: p}, nil
}

func (s *Store) RemoveCartLine(userId string, lineId string) error {
	s.mux.Lock()
	defer s.mux.Unlock()

	if _, ok := s.carts[userId][lineId]; !ok {
		return fmt.Errorf("%w: cart item:%s", ErrNotFound, lineId)
	}
	delete(s.carts[userId], lineId)
	return nil
}

func (s *Store) ClearCart(userId string) {
	s.mux.Lock()
	defer s.mux.Unlock()

	delete(s.carts, userId)
}

// PlaceOrder converts a user's cart into an order, atomically:
// it validates stock per line, snapshots the lines, decrements stock
// and empties the cart, all without releasing the lock.
//
// New orders start as apiorders.Pending.
func (s *Store) PlaceOrder(userId string) (Order, error) {
	s.mux.Lock()
	defer s.mux.Unlock()

	cart := s.carts[userId]
	if len(cart) == 0 {
		return Order{}, ErrEmptyCart
	}

	lines := make([]CartLine, 0, len(cart))
	for _, line := range cart {
		lines = append(lines, line)
	}
	sort.Slice(lines, func(i, j int) bool {
		if !lines[i].CreatedAt.Equal(lines[j].CreatedAt) {
			return lines[i].CreatedAt.Before(lines[j].CreatedAt)
		}
		return lines[i].Id < lines[j].Id
	})

	total := decimal.Zero
	snapshot := make([]OrderLine, 0, len(lines))
	for _, line := range lines {
		p, ok := s.products[line.ProductId]
		if !ok {
			return Order{}, fmt.Errorf("%w: product:%s", ErrNotFound, line.ProductId)
		}
		if p.Stock < line.Quantity {
			return Order{}, fmt.Errorf("%w: %s: in stock: %d", ErrShortStock, p.Name, p.Stock)
		}
		subtotal := p.Price.Mul(decimal.NewFromInt(int64(line.Quantity)))
		total = total.Add(subtotal)
		snapshot = append(snapshot, OrderLine{
			ProductId:    p.Id,
			ProductName:  p.Name,
			ProductPrice: p.Price,
			Quantity:     line.Quantity,
			Subtotal:     subtotal,
		})
	}

	now := s.clock().UTC()
	order := Order{
		Id:          uuid.NewString(),
		UserId:      userId,
		OrderNumber: newOrderNumber(now),
		TotalAmount: total,
		Status:      apiorders.Pending,
		CreatedAt:   now,
		Lines:       snapshot,
	}

	for _, line := range snapshot {
		p := s.products[line.ProductId]
		p.Stock -= line.Quantity
		s.products[line.ProductId] = p
	}
	delete(s.carts, userId)
	s.orders[order.Id] = order

	return order, nil
}

// newOrderNumber builds "EC" + yyyymmdd + 8 random uppercase hex digits.
func newOrderNumber(now time.Time) string {
	id := uuid.New()
	return fmt.Sprintf("EC%s%X", now.UTC().Format("20060102"), id[:4])
}

// OrdersOf lists a user's orders, newest first.
func (s *Store) OrdersOf(userId string) []Order {
	s.mux.RLock()
	defer s.mux.RUnlock()

	found := []Order{}
	for _, o := range s.orders {
		if o.UserId == userId {
			found = append(found, o)
		}
	}
	sortOrders(found)
	return found
}

// Orders lists every user's orders, newest first.
func (s *Store) Orders() []Order {
	s.mux.RLock()
	defer s.mux.RUnlock()

	found := make([]Order, 0, len(s.orders))
	for _, o := range s.orders {
		found = append(found, o)
	}
	sortOrders(found)
	return found
}

// OrderOf gets a user's order by id. Other users' orders are not found.
func (s *Store) OrderOf(userId string, orderId string) (Order, error) {
	s.mux.RLock()
	defer s.mux.RUnlock()

	o, ok := s.orders[orderId]
	if !ok || o.UserId != userId {
		return Order{}, fmt.Errorf("%w: order:%s", ErrNotFound, orderId)
	}
	return o, nil
}

// AnyOrder gets any user's order by id.
func (s *Store) AnyOrder(orderId string) (Order, error) {
	s.mux.RLock()
	defer s.mux.RUnlock()

	o, ok := s.orders[orderId]
	if !ok {
		return Order{}, fmt.Errorf("%w: order:%s", ErrNotFound, orderId)
	}
	return o, nil
}

// Stats snapshots system-wide counters. Today/this-month windows are
// derived from now, in UTC.
func (s *Store) Stats(now time.Time) Summary {
	s.mux.RLock()
	defer s.mux.RUnlock()

	now = now.UTC()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	month := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)

	sum := Summary{
		TotalUsers:       len(s.users),
		TotalProducts:    len(s.products),
		TotalOrders:      len(s.orders),
		TotalRevenue:     decimal.Zero,
		OrderStatusStats: map[apiorders.Status]int{},
	}
	for _, status := range apiorders.KnownStatuses() {
		sum.OrderStatusStats[status] = 0
	}

	for _, o := range s.orders {
		sum.TotalRevenue = sum.TotalRevenue.Add(o.TotalAmount)
		if !o.CreatedAt.Before(today) {
			sum.TodayOrders += 1
		}
		if !o.CreatedAt.Before(month) {
			sum.MonthOrders += 1
		}
		sum.OrderStatusStats[o.Status] += 1
	}

	for _, p := range s.products {
		if 0 < p.Stock {
			sum.InStockProducts += 1
		} else {
			sum.OutOfStockProducts += 1
		}
	}

	return sum
}

func window[T any](all []T, skip int, limit int) []T {
	if skip < 0 {
		skip = 0
	}
	if len(all) <= skip {
		return []T{}
	}
	all = all[skip:]
	if 0 < limit && limit < len(all) {
		all = all[:limit]
	}
	return all
}

func sortOrders(orders []Order) {
	sort.Slice(orders, func(i, j int) bool {
		if !orders[i].CreatedAt.Equal(orders[j].CreatedAt) {
			return orders[i].CreatedAt.After(orders[j].CreatedAt)
		}
		return orders[i].Id < orders[j].Id
	})
}
