package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/hashicorp/go-hclog"

	"github.com/kahvecikaan/menu-api/internal/domain"
	"github.com/kahvecikaan/menu-api/internal/service"
)

// contextKey scopes values this package stores on the request context
type contextKey string

// ContextKeyDish holds the built domain.Dish produced by BuildMiddleware
const ContextKeyDish contextKey = "dish"

type DishHandler struct {
	menuService service.MenuService
	logger      hclog.Logger
}

func NewDishHandler(ms service.MenuService, log hclog.Logger) *DishHandler {
	return &DishHandler{
		menuService: ms,
		logger:      log,
	}
}

// GetDishes handles GET /dishes
//
// swagger:route GET /dishes dishes listDishes
//
// Returns the menu, optionally filtered by category.
//
// Responses:
//
//	200: dishesResponse
//	400: errorResponse
//	500: errorResponse
func (h *DishHandler) GetDishes(w http.ResponseWriter, r *http.Request) {
	category := domain.Category(r.URL.Query().Get("category"))
	if category != "" && !category.Valid() {
		http.Error(w, "Unknown category", http.StatusBadRequest)
		return
	}

	dishes, err := h.menuService.ListDishes(r.Context(), category)
	if err != nil {
		h.logger.Error("Error listing dishes", "error", err)
		http.Error(w, "Error listing dishes", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(dishes)
}

// GetDishByID handles GET /dishes/{id}
//
// swagger:route GET /dishes/{id} dishes getDishByID
//
// Returns a dish by ID.
//
// Responses:
//
//	200: dishResponse
//	400: errorResponse
//	404: errorResponse
func (h *DishHandler) GetDishByID(w http.ResponseWriter, r *http.Request) {
	id, err := dishID(r)
	if err != nil {
		http.Error(w, "Invalid dish ID", http.StatusBadRequest)
		return
	}

	dish, err := h.menuService.GetDishByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrDishNotFound) {
			http.Error(w, "Dish not found", http.StatusNotFound)
			return
		}

		h.logger.Error("Error getting dish", "error", err)
		http.Error(w, "Error getting dish", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(dish)
}

// AddDish handles POST /dishes
//
// swagger:route POST /dishes dishes addDish
//
// Adds a new dish to the menu. The server assigns the final ID.
//
// Responses:
//
//	201: dishResponse
//	400: errorResponse
//	422: errorResponse
//	500: errorResponse
func (h *DishHandler) AddDish(w http.ResponseWriter, r *http.Request) {
	// Retrieve the built dish from the context
	dish, ok := r.Context().Value(ContextKeyDish).(*domain.Dish)
	if !ok {
		http.Error(w, "Invalid dish data", http.StatusBadRequest)
		return
	}

	err := h.menuService.AddDish(r.Context(), dish)
	if err != nil {
		h.logger.Error("Error adding dish", "error", err)
		http.Error(w, "Error adding dish", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(dish)
}

// UpdateDish handles PUT /dishes/{id}
//
// swagger:route PUT /dishes/{id} dishes updateDish
//
// Updates an existing dish.
//
// Responses:
//
//	204: noContentResponse
//	400: errorResponse
//	404: errorResponse
//	422: errorResponse
//	500: errorResponse
func (h *DishHandler) UpdateDish(w http.ResponseWriter, r *http.Request) {
	id, err := dishID(r)
	if err != nil {
		http.Error(w, "Invalid dish ID", http.StatusBadRequest)
		return
	}

	dish, ok := r.Context().Value(ContextKeyDish).(*domain.Dish)
	if !ok {
		http.Error(w, "Invalid dish data", http.StatusBadRequest)
		return
	}

	dish.ID = id

	err = h.menuService.UpdateDish(r.Context(), dish)
	if err != nil {
		if errors.Is(err, domain.ErrDishNotFound) {
			http.Error(w, "Dish not found", http.StatusNotFound)
			return
		}
		h.logger.Error("Error updating dish", "error", err)
		http.Error(w, "Error updating dish", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// DeleteDish handles DELETE /dishes/{id}
//
// swagger:route DELETE /dishes/{id} dishes deleteDish
//
// Removes a dish from the menu.
//
// Responses:
//
//	204: noContentResponse
//	400: errorResponse
//	404: errorResponse
//	500: errorResponse
func (h *DishHandler) DeleteDish(w http.ResponseWriter, r *http.Request) {
	id, err := dishID(r)
	if err != nil {
		http.Error(w, "Invalid dish ID", http.StatusBadRequest)
		return
	}

	err = h.menuService.DeleteDish(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrDishNotFound) {
			http.Error(w, "Dish not found", http.StatusNotFound)
			return
		}
		h.logger.Error("Error deleting dish", "error", err)
		http.Error(w, "Error deleting dish", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func dishID(r *http.Request) (uint32, error) {
	vars := mux.Vars(r)
	id, err := strconv.ParseUint(vars["id"], 10, 32)
	if err != nil {
		return 0, err
	}
	return uint32(id), nil
}
