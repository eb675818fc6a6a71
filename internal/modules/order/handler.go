package order

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/souqline/souq-backend/internal/modules/catalog"
	"github.com/souqline/souq-backend/internal/modules/customer"
)

// Handler exposes order HTTP endpoints.
type Handler struct{ service Service }

func NewHandler(service Service) *Handler { return &Handler{service: service} }

func (h *Handler) RegisterRoutes(r *chi.Mux) {
	r.Route("/api/orders", func(r chi.Router) {
		r.Get("/", h.listOrders)   // GET   /api/orders
		r.Post("/", h.placeOrder)  // POST  /api/orders
		r.Get("/{id}", h.getOrder) // GET   /api/orders/{id}
		r.Patch("/{id}", h.patchOrder)
		r.Get("/{id}/shipping-updates", h.listShippingUpdates)
		r.Post("/{id}/shipping-updates", h.addShippingUpdate)
	})
	r.Get("/api/order-items", h.listOrderItems) // GET /api/order-items
}

func (h *Handler) listOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := h.service.ListOrders(r.Context())
	if err != nil {
		respond(w, http.StatusInternalServerError, map[string]string{"message": err.Error()})
		return
	}
	respond(w, http.StatusOK, orders)
}

func (h *Handler) placeOrder(w http.ResponseWriter, r *http.Request) {
	var req PlaceOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond(w, http.StatusBadRequest, map[string]string{"message": "Invalid order data"})
		return
	}
	o, err := h.service.PlaceOrder(r.Context(), req)
	if err != nil {
		respond(w, placeOrderStatus(err), map[string]string{"message": err.Error()})
		return
	}
	respond(w, http.StatusCreated, o)
}

// placeOrderStatus maps workflow failures to status codes: unknown
// customer/product ids are 404, stock exhaustion is 422, everything
// else is a validation failure.
func placeOrderStatus(err error) int {
	switch {
	case errors.Is(err, customer.ErrNotFound), errors.Is(err, catalog.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, catalog.ErrInsufficientStock):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusBadRequest
	}
}

func (h *Handler) getOrder(w http.ResponseWriter, r *http.Request) {
	id, err := urlID(r)
	if err != nil {
		respond(w, http.StatusBadRequest, map[string]string{"message": "invalid order id"})
		return
	}
	o, err := h.service.GetOrder(r.Context(), id)
	if err != nil {
		respond(w, http.StatusNotFound, map[string]string{"message": "Order not found"})
		return
	}
	respond(w, http.StatusOK, o)
}

func (h *Handler) patchOrder(w http.ResponseWriter, r *http.Request) {
	id, err := urlID(r)
	if err != nil {
		respond(w, http.StatusBadRequest, map[string]string{"message": "invalid order id"})
		return
	}
	var req PatchOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond(w, http.StatusBadRequest, map[string]string{"message": "Invalid order data"})
		return
	}
	o, err := h.service.PatchOrder(r.Context(), id, req)
	if err != nil {
		code := http.StatusBadRequest
		if errors.Is(err, ErrNotFound) {
			code = http.StatusNotFound
		}
		respond(w, code, map[string]string{"message": err.Error()})
		return
	}
	respond(w, http.StatusOK, o)
}

func (h *Handler) listOrderItems(w http.ResponseWriter, r *http.Request) {
	items, err := h.service.ListOrderItems(r.Context())
	if err != nil {
		respond(w, http.StatusInternalServerError, map[string]string{"message": err.Error()})
		return
	}
	respond(w, http.StatusOK, items)
}

func (h *Handler) listShippingUpdates(w http.ResponseWriter, r *http.Request) {
	id, err := urlID(r)
	if err != nil {
		respond(w, http.StatusBadRequest, map[string]string{"message": "invalid order id"})
		return
	}
	updates, err := h.service.ListShippingUpdates(r.Context(), id)
	if err != nil {
		code := http.StatusInternalServerError
		if errors.Is(err, ErrNotFound) {
			code = http.StatusNotFound
		}
		respond(w, code, map[string]string{"message": err.Error()})
		return
	}
	respond(w, http.StatusOK, updates)
}

func (h *Handler) addShippingUpdate(w http.ResponseWriter, r *http.Request) {
	id, err := urlID(r)
	if err != nil {
		respond(w, http.StatusBadRequest, map[string]string{"message": "invalid order id"})
		return
	}
	var req ShippingUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond(w, http.StatusBadRequest, map[string]string{"message": "Invalid shipping update data"})
		return
	}
	u, err := h.service.AddShippingUpdate(r.Context(), id, req)
	if err != nil {
		code := http.StatusBadRequest
		if errors.Is(err, ErrNotFound) {
			code = http.StatusNotFound
		}
		respond(w, code, map[string]string{"message": err.Error()})
		return
	}
	respond(w, http.StatusCreated, u)
}

func urlID(r *http.Request) (int, error) {
	return strconv.Atoi(chi.URLParam(r, "id"))
}

func respond(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
