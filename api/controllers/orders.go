package controllers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/drevmart/drevmart-backend/api/middleware"
	"github.com/drevmart/drevmart-backend/api/responses"
	"github.com/drevmart/drevmart-backend/internal/orders"
	pkgerrors "github.com/drevmart/drevmart-backend/pkg/errors"
	"github.com/drevmart/drevmart-backend/pkg/logger"
)

// CreateOrder checks out the session's cart.
func CreateOrder(svc *orders.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		receipt, err := svc.CreateOrder(
			r.Context(),
			middleware.UserIDFromContext(r.Context()),
			middleware.SessionIDFromContext(r.Context()),
		)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, receipt)
	}
}

func GetMyOrders(svc *orders.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		list, err := svc.GetMyOrders(r.Context(), middleware.UserIDFromContext(r.Context()))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, list)
	}
}

func GetOrder(svc *orders.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		orderID, err := strconv.Atoi(chi.URLParam(r, "orderId"))
		if err != nil || orderID <= 0 {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeValidation, "order id must be a positive number"))
			return
		}

		order, err := svc.GetOrder(r.Context(), middleware.UserIDFromContext(r.Context()), orderID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, order)
	}
}
