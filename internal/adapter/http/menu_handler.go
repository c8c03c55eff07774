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

type MenuHandler struct {
	service interfaces.MenuService
	logger  logger.Logger
}

func NewMenuHandler(service interfaces.MenuService, logger logger.Logger) *MenuHandler {
	return &MenuHandler{
		service: service,
		logger:  logger,
	}
}

type FoodItemRequest struct {
	Name            string          `json:"name"`
	Description     string          `json:"description"`
	Category        string          `json:"category"`
	Price           decimal.Decimal `json:"price"`
	Available       *bool           `json:"is_available,omitempty"`
	PreparationTime int             `json:"preparation_time,omitempty"`
	Ingredients     []string        `json:"ingredients,omitempty"`
	Calories        int             `json:"calories,omitempty"`
	IsVegetarian    bool            `json:"is_vegetarian,omitempty"`
	IsSpicy         bool            `json:"is_spicy,omitempty"`
}

type FoodItemResponse struct {
	ID              int             `json:"id"`
	Name            string          `json:"name"`
	Description     string          `json:"description,omitempty"`
	Category        string          `json:"category"`
	Price           decimal.Decimal `json:"price"`
	Available       bool            `json:"is_available"`
	PreparationTime int             `json:"preparation_time,omitempty"`
	Ingredients     []string        `json:"ingredients,omitempty"`
	Calories        int             `json:"calories,omitempty"`
	IsVegetarian    bool            `json:"is_vegetarian,omitempty"`
	IsSpicy         bool            `json:"is_spicy,omitempty"`
}

// HandleMenu routes /menu and /menu/{id} requests.
func (h *MenuHandler) HandleMenu(w http.ResponseWriter, r *http.Request) {
	parts := strings.Split(strings.Trim(r.URL.Path, "/"), "/")

	switch {
	case len(parts) == 1:
		switch r.Method {
		case http.MethodPost:
			h.createItem(w, r)
		case http.MethodGet:
			h.listItems(w, r)
		default:
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		}

	case len(parts) == 2:
		id, err := strconv.Atoi(parts[1])
		if err != nil {
			respondErrorMessage(w, http.StatusUnprocessableEntity, codeValidation, "item id must be an integer")
			return
		}

		switch r.Method {
		case http.MethodGet:
			h.getItem(w, r, id)
		case http.MethodPut:
			h.updateItem(w, r, id)
		case http.MethodDelete:
			h.deleteItem(w, r, id)
		default:
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		}

	default:
		http.Error(w, "Not found", http.StatusNotFound)
	}
}

func (h *MenuHandler) createItem(w http.ResponseWriter, r *http.Request) {
	var req FoodItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondErrorMessage(w, http.StatusUnprocessableEntity, codeValidation, "invalid request body")
		return
	}

	item, err := h.service.CreateItem(r.Context(), commandFromRequest(req))
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, itemToResponse(*item))
}

func (h *MenuHandler) listItems(w http.ResponseWriter, r *http.Request) {
	category := r.URL.Query().Get("category")

	items, err := h.service.ListItems(r.Context(), category)
	if err != nil {
		respondError(w, err)
		return
	}

	resp := make([]FoodItemResponse, len(items))
	for i, item := range items {
		resp[i] = itemToResponse(item)
	}

	respondJSON(w, http.StatusOK, resp)
}

func (h *MenuHandler) getItem(w http.ResponseWriter, r *http.Request, id int) {
	item, err := h.service.GetItem(r.Context(), id)
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, itemToResponse(*item))
}

func (h *MenuHandler) updateItem(w http.ResponseWriter, r *http.Request, id int) {
	var req FoodItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondErrorMessage(w, http.StatusUnprocessableEntity, codeValidation, "invalid request body")
		return
	}

	item, err := h.service.UpdateItem(r.Context(), id, commandFromRequest(req))
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, itemToResponse(*item))
}

func (h *MenuHandler) deleteItem(w http.ResponseWriter, r *http.Request, id int) {
	if err := h.service.DeleteItem(r.Context(), id); err != nil {
		respondError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func commandFromRequest(req FoodItemRequest) interfaces.FoodItemCommand {
	return interfaces.FoodItemCommand{
		Name:            strings.TrimSpace(req.Name),
		Description:     strings.TrimSpace(req.Description),
		Category:        strings.TrimSpace(req.Category),
		Price:           req.Price,
		Available:       req.Available,
		PreparationTime: req.PreparationTime,
		Ingredients:     req.Ingredients,
		Calories:        req.Calories,
		IsVegetarian:    req.IsVegetarian,
		IsSpicy:         req.IsSpicy,
	}
}

func itemToResponse(item domain.FoodItem) FoodItemResponse {
	return FoodItemResponse{
		ID:              item.ID,
		Name:            item.Name,
		Description:     item.Description,
		Category:        item.Category,
		Price:           item.Price,
		Available:       item.Available,
		PreparationTime: item.PreparationTime,
		Ingredients:     item.Ingredients,
		Calories:        item.Calories,
		IsVegetarian:    item.IsVegetarian,
		IsSpicy:         item.IsSpicy,
	}
}
