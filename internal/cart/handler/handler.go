package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/snazzy/storefront/internal/cart/usecase/command"
	"github.com/snazzy/storefront/internal/cart/usecase/query"
	"github.com/snazzy/storefront/internal/web"
)

// CartHandler handles HTTP requests for the shopping cart
type CartHandler struct {
	addHandler    *command.AddItemHandler
	removeHandler *command.RemoveItemHandler
	listHandler   *query.ListCartHandler
}

func NewCartHandler(
	addHandler *command.AddItemHandler,
	removeHandler *command.RemoveItemHandler,
	listHandler *query.ListCartHandler,
) *CartHandler {
	return &CartHandler{
		addHandler:    addHandler,
		removeHandler: removeHandler,
		listHandler:   listHandler,
	}
}

type addItemRequest struct {
	ProductID   string  `json:"product_id"`
	ProductName string  `json:"product_name"`
	Size        string  `json:"size"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
}

// ListCart handles GET /api/cart
func (h *CartHandler) ListCart(w http.ResponseWriter, r *http.Request) {
	userID, ok := web.UserID(r)
	if !ok {
		web.RespondError(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	items, err := h.listHandler.Handle(r.Context(), query.ListCartQuery{UserID: userID})
	if err != nil {
		web.RespondAppError(w, err)
		return
	}

	web.RespondJSON(w, http.StatusOK, web.Response{
		Success: true,
		Data: map[string]interface{}{
			"items": items,
			"total": len(items),
		},
	})
}

// AddItem handles POST /api/cart
func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	userID, ok := web.UserID(r)
	if !ok {
		web.RespondError(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	var req addItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		web.RespondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	item, err := h.addHandler.Handle(r.Context(), command.AddItemCommand{
		UserID:      userID,
		ProductID:   req.ProductID,
		ProductName: req.ProductName,
		Size:        req.Size,
		Quantity:    req.Quantity,
		UnitPrice:   req.UnitPrice,
	})
	if err != nil {
		web.RespondAppError(w, err)
		return
	}

	web.RespondJSON(w, http.StatusCreated, web.Response{
		Success: true,
		Message: "Item added to cart",
		Data:    item,
	})
}

// RemoveItem handles DELETE /api/cart/{id}
func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	userID, ok := web.UserID(r)
	if !ok {
		web.RespondError(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	itemID, err := strconv.ParseUint(mux.Vars(r)["id"], 10, 32)
	if err != nil {
		web.RespondError(w, http.StatusBadRequest, "Invalid item ID")
		return
	}

	if err := h.removeHandler.Handle(r.Context(), command.RemoveItemCommand{
		UserID: userID,
		ItemID: uint(itemID),
	}); err != nil {
		web.RespondAppError(w, err)
		return
	}

	web.RespondJSON(w, http.StatusOK, web.Response{
		Success: true,
		Message: "Item removed from cart",
	})
}

// RegisterRoutes registers all cart routes
func (h *CartHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/api/cart", web.AuthMiddleware(h.ListCart)).Methods("GET")
	router.HandleFunc("/api/cart", web.AuthMiddleware(h.AddItem)).Methods("POST")
	router.HandleFunc("/api/cart/{id}", web.AuthMiddleware(h.RemoveItem)).Methods("DELETE")
}
