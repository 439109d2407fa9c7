package orders

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/drevmart/drevmart-backend/internal/cart"
	"github.com/drevmart/drevmart-backend/pkg/errors"
	"github.com/drevmart/drevmart-backend/pkg/logger"
	"github.com/google/uuid"
)

// Order statuses.
const (
	StatusProcessing = "processing"
	StatusCompleted  = "completed"
)

// MsgOrderCreated confirms checkout.
const MsgOrderCreated = "Заказ успешно создан"

// Item is one ordered position, captured at checkout prices.
type Item struct {
	ID        int     `json:"id"`
	ProductID int     `json:"product_id"`
	Quantity  float64 `json:"quantity"`
	Price     float64 `json:"price"`
}

// Order is a placed order.
type Order struct {
	ID          int       `json:"id"`
	OrderNumber string    `json:"order_number"`
	Status      string    `json:"status"`
	Total       float64   `json:"total"`
	CreatedAt   time.Time `json:"created_at"`
	Items       []Item    `json:"items"`
}

// Receipt is the checkout confirmation.
type Receipt struct {
	OrderID     int    `json:"order_id"`
	OrderNumber string `json:"order_number"`
	Message     string `json:"message"`
}

// Service turns carts into orders and keeps them in memory per user.
type Service struct {
	carts *cart.Service
	logg  *logger.Logger
	now   func() time.Time

	mu     sync.Mutex
	byUser map[int][]Order
	nextID int
}

func NewService(carts *cart.Service, logg *logger.Logger) *Service {
	return &Service{
		carts:  carts,
		logg:   logg,
		now:    time.Now,
		byUser: make(map[int][]Order),
		nextID: 1,
	}
}

// CreateOrder snapshots the session's cart into an order and empties the
// cart.
func (s *Service) CreateOrder(ctx context.Context, userID int, sessionID string) (Receipt, error) {
	basket, err := s.carts.GetCart(ctx, sessionID)
	if err != nil {
		return Receipt{}, err
	}
	if len(basket.Items) == 0 {
		return Receipt{}, errors.New(errors.CodeValidation, "Корзина пуста")
	}

	items := make([]Item, 0, len(basket.Items))
	for i, entry := range basket.Items {
		items = append(items, Item{
			ID:        i + 1,
			ProductID: entry.ProductID,
			Quantity:  entry.Quantity,
			Price:     entry.UnitPrice,
		})
	}

	s.mu.Lock()
	order := Order{
		ID:          s.nextID,
		OrderNumber: fmt.Sprintf("ORD-%s", uuid.NewString()[:8]),
		Status:      StatusProcessing,
		Total:       basket.Total,
		CreatedAt:   s.now(),
		Items:       items,
	}
	s.nextID++
	s.byUser[userID] = append(s.byUser[userID], order)
	s.mu.Unlock()

	if _, err := s.carts.ClearCart(ctx, sessionID); err != nil {
		return Receipt{}, err
	}

	s.logg.Info(s.logg.WithField(ctx, "order_number", order.OrderNumber), "order created")
	return Receipt{
		OrderID:     order.ID,
		OrderNumber: order.OrderNumber,
		Message:     MsgOrderCreated,
	}, nil
}

// GetMyOrders lists the user's orders, newest first.
func (s *Service) GetMyOrders(ctx context.Context, userID int) ([]Order, error) {
	s.mu.Lock()
	orders := make([]Order, len(s.byUser[userID]))
	copy(orders, s.byUser[userID])
	s.mu.Unlock()

	sort.SliceStable(orders, func(i, j int) bool {
		return orders[i].ID > orders[j].ID
	})
	return orders, nil
}

// GetOrder fetches one of the user's orders by id.
func (s *Service) GetOrder(ctx context.Context, userID, orderID int) (Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, order := range s.byUser[userID] {
		if order.ID == orderID {
			return order, nil
		}
	}
	return Order{}, errors.New(errors.CodeNotFound, "Заказ не найден")
}
