package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/snazzy/storefront/internal/order/usecase/command"
	"github.com/snazzy/storefront/internal/order/usecase/query"
	"github.com/snazzy/storefront/internal/web"
)

// OrderHandler handles HTTP requests for orders using CQRS handlers
type OrderHandler struct {
	createHandler *command.CreateOrderHandler
	updateHandler *command.UpdateOrderHandler
	deleteHandler *command.DeleteOrderHandler

	getHandler  *query.GetOrderHandler
	listHandler *query.ListOrdersHandler
	mineHandler *query.MyOrdersHandler
}

func NewOrderHandler(
	createHandler *command.CreateOrderHandler,
	updateHandler *command.UpdateOrderHandler,
	deleteHandler *command.DeleteOrderHandler,
	getHandler *query.GetOrderHandler,
	listHandler *query.ListOrdersHandler,
	mineHandler *query.MyOrdersHandler,
) *OrderHandler {
	return &OrderHandler{
		createHandler: createHandler,
		updateHandler: updateHandler,
		deleteHandler: deleteHandler,
		getHandler:    getHandler,
		listHandler:   listHandler,
		mineHandler:   mineHandler,
	}
}

type createOrderRequest struct {
	CustomerName    string  `json:"customer_name"`
	CustomerAddress string  `json:"customer_address"`
	ProductID       string  `json:"product_id"`
	ProductName     string  `json:"product_name"`
	Size            string  `json:"size"`
	Quantity        int     `json:"quantity"`
	BasePrice       float64 `json:"base_price"`
	RedeemPoints    bool    `json:"redeem_points"`
	TotalPrice      float64 `json:"total_price"`
	PaymentID       uint    `json:"payment_id"`
}

type updateOrderRequest struct {
	CustomerName    string `json:"customer_name"`
	CustomerAddress string `json:"customer_address"`
	Size            string `json:"size"`
	Quantity        int    `json:"quantity"`
	Status          string `json:"status"`
}

// CreateOrder handles POST /api/orders
func (h *OrderHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	userID, ok := web.UserID(r)
	if !ok {
		web.RespondError(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	var req createOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		web.RespondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	order, err := h.createHandler.Handle(r.Context(), command.CreateOrderCommand{
		UserID:          userID,
		CustomerName:    req.CustomerName,
		CustomerAddress: req.CustomerAddress,
		ProductID:       req.ProductID,
		ProductName:     req.ProductName,
		Size:            req.Size,
		Quantity:        req.Quantity,
		BasePrice:       req.BasePrice,
		RedeemPoints:    req.RedeemPoints,
		TotalPrice:      req.TotalPrice,
		PaymentID:       req.PaymentID,
	})
	if err != nil {
		web.RespondAppError(w, err)
		return
	}

	web.RespondJSON(w, http.StatusCreated, web.Response{
		Success: true,
		Message: "Order created successfully",
		Data:    order,
	})
}

// GetOrder handles GET /api/orders/{id}
func (h *OrderHandler) GetOrder(w http.ResponseWriter, r *http.Request) {
	userID, ok := web.UserID(r)
	if !ok {
		web.RespondError(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	id, err := pathID(r)
	if err != nil {
		web.RespondError(w, http.StatusBadRequest, "Invalid order ID")
		return
	}

	role, _ := r.Context().Value(web.RoleKey).(string)
	order, err := h.getHandler.Handle(r.Context(), query.GetOrderQuery{
		OrderID: id,
		UserID:  userID,
		IsAdmin: role == "admin",
	})
	if err != nil {
		web.RespondAppError(w, err)
		return
	}

	web.RespondJSON(w, http.StatusOK, web.Response{Success: true, Data: order})
}

// ListOrders handles GET /api/orders
func (h *OrderHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := h.listHandler.Handle(r.Context(), query.ListOrdersQuery{})
	if err != nil {
		web.RespondAppError(w, err)
		return
	}

	web.RespondJSON(w, http.StatusOK, web.Response{
		Success: true,
		Data: map[string]interface{}{
			"orders": orders,
			"total":  len(orders),
		},
	})
}

// MyOrders handles GET /api/orders/my
func (h *OrderHandler) MyOrders(w http.ResponseWriter, r *http.Request) {
	userID, ok := web.UserID(r)
	if !ok {
		web.RespondError(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	orders, err := h.mineHandler.Handle(r.Context(), query.MyOrdersQuery{UserID: userID})
	if err != nil {
		web.RespondAppError(w, err)
		return
	}

	web.RespondJSON(w, http.StatusOK, web.Response{
		Success: true,
		Data: map[string]interface{}{
			"orders": orders,
			"total":  len(orders),
		},
	})
}

// UpdateOrder handles PUT /api/orders/{id}
func (h *OrderHandler) UpdateOrder(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		web.RespondError(w, http.StatusBadRequest, "Invalid order ID")
		return
	}

	var req updateOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		web.RespondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	order, err := h.updateHandler.Handle(r.Context(), command.UpdateOrderCommand{
		OrderID:         id,
		CustomerName:    req.CustomerName,
		CustomerAddress: req.CustomerAddress,
		Size:            req.Size,
		Quantity:        req.Quantity,
		Status:          req.Status,
	})
	if err != nil {
		web.RespondAppError(w, err)
		return
	}

	web.RespondJSON(w, http.StatusOK, web.Response{
		Success: true,
		Message: "Order updated successfully",
		Data:    order,
	})
}

// DeleteOrder handles DELETE /api/orders/{id}
func (h *OrderHandler) DeleteOrder(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		web.RespondError(w, http.StatusBadRequest, "Invalid order ID")
		return
	}

	if err := h.deleteHandler.Handle(r.Context(), command.DeleteOrderCommand{OrderID: id}); err != nil {
		web.RespondAppError(w, err)
		return
	}

	web.RespondJSON(w, http.StatusOK, web.Response{
		Success: true,
		Message: "Order deleted successfully",
	})
}

// RegisterRoutes registers all order routes
func (h *OrderHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/api/orders", web.AuthMiddleware(h.CreateOrder)).Methods("POST")
	router.HandleFunc("/api/orders", web.AdminMiddleware(h.ListOrders)).Methods("GET")
	router.HandleFunc("/api/orders/my", web.AuthMiddleware(h.MyOrders)).Methods("GET")
	router.HandleFunc("/api/orders/{id}", web.AuthMiddleware(h.GetOrder)).Methods("GET")
	router.HandleFunc("/api/orders/{id}", web.AdminMiddleware(h.UpdateOrder)).Methods("PUT")
	router.HandleFunc("/api/orders/{id}", web.AdminMiddleware(h.DeleteOrder)).Methods("DELETE")
}

func pathID(r *http.Request) (uint, error) {
	id, err := strconv.ParseUint(mux.Vars(r)["id"], 10, 32)
	return uint(id), err
}
