package http

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"food-ordering/internal/adapter/logger"
	"food-ordering/internal/domain"
	"food-ordering/internal/interfaces"
)

type OrderHandler struct {
	service interfaces.OrderService
	logger  logger.Logger
}

func NewOrderHandler(service interfaces.OrderService, logger logger.Logger) *OrderHandler {
	return &OrderHandler{
		service: service,
		logger:  logger,
	}
}

type CreateOrderRequest struct {
	Customer CustomerRequest    `json:"customer"`
	Items    []OrderLineRequest `json:"items"`
}

type CustomerRequest struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

type OrderLineRequest struct {
	MenuItemID int `json:"menu_item_id"`
	Quantity   int `json:"quantity"`
}

type StatusUpdateRequest struct {
	Status string `json:"status"`
}

type OrderResponse struct {
	ID              int                 `json:"id"`
	Customer        CustomerResponse    `json:"customer"`
	Items           []OrderItemResponse `json:"items"`
	Status          string              `json:"status"`
	ItemsTotal      decimal.Decimal     `json:"items_total"`
	TotalItemsCount int                 `json:"total_items_count"`
}

type CustomerResponse struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

type OrderItemResponse struct {
	MenuItemID   int             `json:"menu_item_id"`
	MenuItemName string          `json:"menu_item_name"`
	Quantity     int             `json:"quantity"`
	UnitPrice    decimal.Decimal `json:"unit_price"`
	ItemTotal    decimal.Decimal `json:"item_total"`
}

type OrderSummaryResponse struct {
	ID              int             `json:"id"`
	CustomerName    string          `json:"customer_name"`
	CustomerPhone   string          `json:"customer_phone"`
	Status          string          `json:"status"`
	ItemsTotal      decimal.Decimal `json:"items_total"`
	TotalItemsCount int             `json:"total_items_count"`
}

// HandleOrders routes /orders, /orders/{id} and /orders/{id}/status.
func (h *OrderHandler) HandleOrders(w http.ResponseWriter, r *http.Request) {
	parts := strings.Split(strings.Trim(r.URL.Path, "/"), "/")

	switch {
	case len(parts) == 1:
		switch r.Method {
		case http.MethodPost:
			h.createOrder(w, r)
		case http.MethodGet:
			h.listOrders(w, r)
		default:
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		}

	case len(parts) == 2 || (len(parts) == 3 && parts[2] == "status"):
		id, err := strconv.Atoi(parts[1])
		if err != nil {
			respondErrorMessage(w, http.StatusUnprocessableEntity, codeValidation, "order id must be an integer")
			return
		}

		if len(parts) == 3 {
			if r.Method != http.MethodPut {
				http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
				return
			}
			h.updateStatus(w, r, id)
			return
		}

		if r.Method != http.MethodGet {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}
		h.getOrder(w, r, id)

	default:
		http.Error(w, "Not found", http.StatusNotFound)
	}
}

func (h *OrderHandler) createOrder(w http.ResponseWriter, r *http.Request) {
	var req CreateOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondErrorMessage(w, http.StatusUnprocessableEntity, codeValidation, "invalid request body")
		return
	}

	cmd := interfaces.CreateOrderCommand{
		Customer: domain.Customer{
			Name:    strings.TrimSpace(req.Customer.Name),
			Phone:   strings.TrimSpace(req.Customer.Phone),
			Address: strings.TrimSpace(req.Customer.Address),
		},
		Items: make([]interfaces.OrderLineCommand, len(req.Items)),
	}
	for i, line := range req.Items {
		cmd.Items[i] = interfaces.OrderLineCommand{
			MenuItemID: line.MenuItemID,
			Quantity:   line.Quantity,
		}
	}

	order, err := h.service.CreateOrder(r.Context(), cmd)
	if err != nil {
		h.logger.Error("order_creation_failed", "Failed to create order", "", nil, err)
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, orderToResponse(order))
}

func (h *OrderHandler) listOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := h.service.ListOrders(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}

	resp := make(map[int]OrderSummaryResponse, len(orders))
	for id, order := range orders {
		resp[id] = OrderSummaryResponse{
			ID:              order.ID,
			CustomerName:    order.Customer.Name,
			CustomerPhone:   order.Customer.Phone,
			Status:          string(order.Status),
			ItemsTotal:      order.ItemsTotal(),
			TotalItemsCount: order.TotalItemsCount(),
		}
	}

	respondJSON(w, http.StatusOK, resp)
}

func (h *OrderHandler) getOrder(w http.ResponseWriter, r *http.Request, id int) {
	order, err := h.service.GetOrder(r.Context(), id)
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, orderToResponse(order))
}

func (h *OrderHandler) updateStatus(w http.ResponseWriter, r *http.Request, id int) {
	var req StatusUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondErrorMessage(w, http.StatusUnprocessableEntity, codeValidation, "invalid request body")
		return
	}

	newStatus := domain.Status(req.Status)
	if !newStatus.IsValid() {
		respondErrorMessage(w, http.StatusUnprocessableEntity, codeValidation,
			"status must be one of: pending, confirmed, ready, delivered")
		return
	}

	order, err := h.service.UpdateStatus(r.Context(), id, newStatus)
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, orderToResponse(order))
}

func orderToResponse(order *domain.Order) OrderResponse {
	items := make([]OrderItemResponse, len(order.Items))
	for i, item := range order.Items {
		items[i] = OrderItemResponse{
			MenuItemID:   item.MenuItemID,
			MenuItemName: item.MenuItemName,
			Quantity:     item.Quantity,
			UnitPrice:    item.UnitPrice,
			ItemTotal:    item.ItemTotal(),
		}
	}

	return OrderResponse{
		ID: order.ID,
		Customer: CustomerResponse{
			Name:    order.Customer.Name,
			Phone:   order.Customer.Phone,
			Address: order.Customer.Address,
		},
		Items:           items,
		Status:          string(order.Status),
		ItemsTotal:      order.ItemsTotal(),
		TotalItemsCount: order.TotalItemsCount(),
	}
}
