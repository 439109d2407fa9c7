package orders

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/drevmart/drevmart-backend/internal/cart"
	"github.com/drevmart/drevmart-backend/internal/catalog"
	"github.com/drevmart/drevmart-backend/pkg/errors"
	"github.com/drevmart/drevmart-backend/pkg/logger"
)

func newTestServices(t *testing.T) (*Service, *cart.Service) {
	t.Helper()
	store, err := catalog.NewFixtureStore(0)
	if err != nil {
		t.Fatalf("NewFixtureStore: %v", err)
	}
	logg := logger.New(logger.Options{ServiceName: "orders-test", Output: io.Discard})
	carts := cart.NewService(store, nil, 0, logg)
	return NewService(carts, logg), carts
}

func TestCreateOrder(t *testing.T) {
	ctx := context.Background()
	svc, carts := newTestServices(t)
	const (
		userID  = 1
		session = "s1"
	)

	t.Run("empty cart rejected", func(t *testing.T) {
		_, err := svc.CreateOrder(ctx, userID, session)
		coded := errors.As(err)
		if coded == nil || coded.Code() != errors.CodeValidation {
			t.Fatalf("error = %v, want validation", err)
		}
	})

	if _, err := carts.AddToCart(ctx, session, 1, 2); err != nil {
		t.Fatalf("AddToCart: %v", err)
	}
	if _, err := carts.AddToCart(ctx, session, 2, 1); err != nil {
		t.Fatalf("AddToCart: %v", err)
	}

	receipt, err := svc.CreateOrder(ctx, userID, session)
	if err != nil {
		t.Fatalf("CreateOrder: %v", err)
	}
	if receipt.Message != MsgOrderCreated {
		t.Fatalf("message = %q", receipt.Message)
	}
	if !strings.HasPrefix(receipt.OrderNumber, "ORD-") {
		t.Fatalf("order number = %q", receipt.OrderNumber)
	}

	t.Run("cart emptied after checkout", func(t *testing.T) {
		basket, err := carts.GetCart(ctx, session)
		if err != nil {
			t.Fatalf("GetCart: %v", err)
		}
		if len(basket.Items) != 0 {
			t.Fatalf("cart items = %d, want 0", len(basket.Items))
		}
	})

	t.Run("order retrievable with snapshot prices", func(t *testing.T) {
		order, err := svc.GetOrder(ctx, userID, receipt.OrderID)
		if err != nil {
			t.Fatalf("GetOrder: %v", err)
		}
		if order.Status != StatusProcessing || len(order.Items) != 2 {
			t.Fatalf("order = %+v", order)
		}
		// Product 1 at its 722 discount price, product 2 at 320.
		if order.Total != 722*2+320 {
			t.Fatalf("total = %v", order.Total)
		}
	})

	t.Run("listing is newest first", func(t *testing.T) {
		if _, err := carts.AddToCart(ctx, session, 3, 1); err != nil {
			t.Fatalf("AddToCart: %v", err)
		}
		second, err := svc.CreateOrder(ctx, userID, session)
		if err != nil {
			t.Fatalf("CreateOrder: %v", err)
		}

		orders, err := svc.GetMyOrders(ctx, userID)
		if err != nil {
			t.Fatalf("GetMyOrders: %v", err)
		}
		if len(orders) != 2 || orders[0].ID != second.OrderID {
			t.Fatalf("orders = %+v", orders)
		}
	})

	t.Run("other users cannot see the order", func(t *testing.T) {
		_, err := svc.GetOrder(ctx, 2, receipt.OrderID)
		coded := errors.As(err)
		if coded == nil || coded.Code() != errors.CodeNotFound {
			t.Fatalf("error = %v, want not found", err)
		}
	})
}
