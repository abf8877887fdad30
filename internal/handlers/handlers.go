package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	logger "github.com/sirupsen/logrus"

	"github.com/damian3262-dot/device-repair-hub/internal/storage"
	"github.com/damian3262-dot/device-repair-hub/internal/types"
	"github.com/damian3262-dot/device-repair-hub/internal/validate"
)

type HandlerSet struct {
	secret               []byte
	cookieExpiresSeconds int
	store                storage.Store
}

func NewHandlerSet(secret []byte, cookieExpiresSecs int, store storage.Store) *HandlerSet {
	return &HandlerSet{
		secret:               secret,
		cookieExpiresSeconds: cookieExpiresSecs,
		store:                store,
	}
}

type errorResponse struct {
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logger.Error(err)
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Message: message})
}

func (h *HandlerSet) writeValidationError(w http.ResponseWriter, err error) {
	var fieldErr *validate.FieldError
	if errors.As(err, &fieldErr) {
		writeJSON(w, http.StatusBadRequest, errorResponse{Message: fieldErr.Reason, Field: fieldErr.Field})
		return
	}
	writeError(w, http.StatusBadRequest, err.Error())
}

// writeStoreError maps storage failures onto responses: not-found to 404,
// store-side payload rejections to 400, anything else to 500.
func (h *HandlerSet) writeStoreError(w http.ResponseWriter, err error) {
	var notFound *storage.OrderNotFoundError
	if errors.As(err, &notFound) {
		writeError(w, http.StatusNotFound, "Order not found")
		return
	}
	var invalid *storage.InvalidOrderError
	if errors.As(err, &invalid) {
		writeError(w, http.StatusBadRequest, invalid.Error())
		return
	}
	logger.Error(err)
	writeError(w, http.StatusInternalServerError, "Internal error")
}

func orderID(r *http.Request) (int, error) {
	return strconv.Atoi(chi.URLParam(r, "id"))
}

func (h *HandlerSet) HandleGetOrders(w http.ResponseWriter, req *http.Request) {

	search := req.URL.Query().Get("search")

	orders, err := h.store.GetOrders(req.Context(), search)
	if err != nil {
		h.writeStoreError(w, err)
		return
	}
	if orders == nil {
		orders = []types.Order{}
	}
	writeJSON(w, http.StatusOK, orders)
}

func (h *HandlerSet) HandleGetOrdersByDni(w http.ResponseWriter, req *http.Request) {

	dni := chi.URLParam(req, "dni")

	orders, err := h.store.GetOrdersByDni(req.Context(), dni)
	if err != nil {
		h.writeStoreError(w, err)
		return
	}
	if orders == nil {
		orders = []types.Order{}
	}
	writeJSON(w, http.StatusOK, orders)
}

func (h *HandlerSet) HandleGetOrder(w http.ResponseWriter, req *http.Request) {

	id, err := orderID(req)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid order id")
		return
	}

	order, err := h.store.GetOrder(req.Context(), id)
	if err != nil {
		h.writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, order)
}

func (h *HandlerSet) HandleCreateOrder(w http.ResponseWriter, req *http.Request) {

	var newOrder types.NewOrder
	if err := json.NewDecoder(req.Body).Decode(&newOrder); err != nil {
		writeError(w, http.StatusBadRequest, "Could not parse body")
		return
	}

	if err := validate.ValidateNewOrder(newOrder); err != nil {
		h.writeValidationError(w, err)
		return
	}

	order, err := h.store.CreateOrder(req.Context(), newOrder)
	if err != nil {
		h.writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, order)
}

func (h *HandlerSet) HandleUpdateOrder(w http.ResponseWriter, req *http.Request) {

	id, err := orderID(req)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid order id")
		return
	}

	var updates types.OrderUpdate
	if err := json.NewDecoder(req.Body).Decode(&updates); err != nil {
		writeError(w, http.StatusBadRequest, "Could not parse body")
		return
	}

	if err := validate.ValidateOrderUpdate(updates); err != nil {
		h.writeValidationError(w, err)
		return
	}

	order, err := h.store.UpdateOrder(req.Context(), id, updates)
	if err != nil {
		h.writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, order)
}

func (h *HandlerSet) HandleDeleteOrder(w http.ResponseWriter, req *http.Request) {

	id, err := orderID(req)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid order id")
		return
	}

	if err := h.store.DeleteOrder(req.Context(), id); err != nil {
		h.writeStoreError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *HandlerSet) HandleGetStats(w http.ResponseWriter, req *http.Request) {

	stats, err := h.store.GetStats(req.Context())
	if err != nil {
		h.writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}
