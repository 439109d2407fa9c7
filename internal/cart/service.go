package cart

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/drevmart/drevmart-backend/internal/catalog"
	"github.com/drevmart/drevmart-backend/pkg/errors"
	"github.com/drevmart/drevmart-backend/pkg/logger"
)

// Confirmation messages shown to the customer.
const (
	MsgItemAdded   = "Товар добавлен в корзину"
	MsgCartUpdated = "Корзина обновлена"
	MsgItemRemoved = "Товар удален из корзины"
	MsgCartCleared = "Корзина очищена"
)

// Item is one cart position with its resolved pricing.
type Item struct {
	ProductID int     `json:"product_id"`
	Title     string  `json:"title"`
	Quantity  float64 `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
	Total     float64 `json:"total"`
}

// Cart is a session's basket with computed totals.
type Cart struct {
	Items      []Item  `json:"items"`
	Total      float64 `json:"total"`
	TotalItems int     `json:"total_items"`
}

// Mutation confirms a cart change.
type Mutation struct {
	Message  string  `json:"message"`
	Quantity float64 `json:"quantity,omitempty"`
}

// Service keeps per-session baskets in memory. A small artificial latency
// mirrors the store backends so the UI's pending states get exercised.
type Service struct {
	store   catalog.Store
	tiers   []Tier
	latency time.Duration
	logg    *logger.Logger

	mu       sync.Mutex
	sessions map[string]map[int]float64
}

func NewService(store catalog.Store, tiers []Tier, latency time.Duration, logg *logger.Logger) *Service {
	return &Service{
		store:    store,
		tiers:    tiers,
		latency:  latency,
		logg:     logg,
		sessions: make(map[string]map[int]float64),
	}
}

func (s *Service) wait(ctx context.Context) error {
	if s.latency <= 0 {
		return ctx.Err()
	}
	select {
	case <-time.After(s.latency):
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// GetCart prices the session's basket against the catalog.
func (s *Service) GetCart(ctx context.Context, sessionID string) (Cart, error) {
	if err := s.wait(ctx); err != nil {
		return Cart{}, err
	}

	s.mu.Lock()
	quantities := make(map[int]float64, len(s.sessions[sessionID]))
	for id, qty := range s.sessions[sessionID] {
		quantities[id] = qty
	}
	s.mu.Unlock()

	ids := make([]int, 0, len(quantities))
	for id := range quantities {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	cart := Cart{Items: []Item{}}
	var total float64
	for _, id := range ids {
		product, err := s.store.GetProduct(ctx, id)
		if err != nil {
			return Cart{}, err
		}
		qty := quantities[id]
		unit := UnitPrice(BasePrice(product.Price, product.Discount, product.DiscountPrice), s.tiers, qty)
		line := LineTotal(unit, qty)
		cart.Items = append(cart.Items, Item{
			ProductID: product.ID,
			Title:     product.Title,
			Quantity:  qty,
			UnitPrice: unit.InexactFloat64(),
			Total:     line.InexactFloat64(),
		})
		total += line.InexactFloat64()
	}

	cart.Total = total
	cart.TotalItems = len(cart.Items)
	return cart, nil
}

// AddToCart puts a product in the basket, merging quantities for repeats.
func (s *Service) AddToCart(ctx context.Context, sessionID string, productID int, quantity float64) (Mutation, error) {
	if err := s.wait(ctx); err != nil {
		return Mutation{}, err
	}
	if _, err := s.store.GetProduct(ctx, productID); err != nil {
		return Mutation{}, err
	}

	added, _ := Clamp(quantity)

	s.mu.Lock()
	basket := s.sessions[sessionID]
	if basket == nil {
		basket = make(map[int]float64)
		s.sessions[sessionID] = basket
	}
	merged, _ := Clamp(basket[productID] + added)
	basket[productID] = merged
	s.mu.Unlock()

	s.logg.Info(s.logg.WithProductID(ctx, productID), "item added to cart")
	return Mutation{Message: MsgItemAdded, Quantity: merged}, nil
}

// UpdateCart sets an item's quantity outright.
func (s *Service) UpdateCart(ctx context.Context, sessionID string, productID int, quantity float64) (Mutation, error) {
	if err := s.wait(ctx); err != nil {
		return Mutation{}, err
	}

	clamped, _ := Clamp(quantity)

	s.mu.Lock()
	basket := s.sessions[sessionID]
	_, present := basket[productID]
	if present {
		basket[productID] = clamped
	}
	s.mu.Unlock()

	if !present {
		return Mutation{}, errors.New(errors.CodeNotFound, "Товар не найден")
	}
	return Mutation{Message: MsgCartUpdated, Quantity: clamped}, nil
}

// RemoveFromCart drops an item from the basket.
func (s *Service) RemoveFromCart(ctx context.Context, sessionID string, productID int) (Mutation, error) {
	if err := s.wait(ctx); err != nil {
		return Mutation{}, err
	}

	s.mu.Lock()
	basket := s.sessions[sessionID]
	_, present := basket[productID]
	delete(basket, productID)
	s.mu.Unlock()

	if !present {
		return Mutation{}, errors.New(errors.CodeNotFound, "Товар не найден")
	}
	return Mutation{Message: MsgItemRemoved}, nil
}

// ClearCart empties the session's basket.
func (s *Service) ClearCart(ctx context.Context, sessionID string) (Mutation, error) {
	if err := s.wait(ctx); err != nil {
		return Mutation{}, err
	}

	s.mu.Lock()
	delete(s.sessions, sessionID)
	s.mu.Unlock()

	return Mutation{Message: MsgCartCleared}, nil
}
