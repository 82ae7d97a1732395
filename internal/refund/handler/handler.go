package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/snazzy/storefront/internal/refund/usecase/command"
	"github.com/snazzy/storefront/internal/refund/usecase/query"
	"github.com/snazzy/storefront/internal/web"
)

// RefundHandler handles HTTP requests for refund requests
type RefundHandler struct {
	requestHandler *command.RequestRefundHandler
	decideHandler  *command.DecideRefundHandler

	listHandler *query.ListRefundsHandler
	mineHandler *query.MyRefundsHandler
}

func NewRefundHandler(
	requestHandler *command.RequestRefundHandler,
	decideHandler *command.DecideRefundHandler,
	listHandler *query.ListRefundsHandler,
	mineHandler *query.MyRefundsHandler,
) *RefundHandler {
	return &RefundHandler{
		requestHandler: requestHandler,
		decideHandler:  decideHandler,
		listHandler:    listHandler,
		mineHandler:    mineHandler,
	}
}

type requestRefundRequest struct {
	Reason string `json:"reason"`
}

type decideRefundRequest struct {
	Action        string `json:"action"`
	AdminResponse string `json:"admin_response"`
}

// RequestRefund handles POST /api/payments/{paymentId}/refunds
func (h *RefundHandler) RequestRefund(w http.ResponseWriter, r *http.Request) {
	userID, ok := web.UserID(r)
	if !ok {
		web.RespondError(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	paymentID, err := strconv.ParseUint(mux.Vars(r)["paymentId"], 10, 32)
	if err != nil {
		web.RespondError(w, http.StatusBadRequest, "Invalid payment ID")
		return
	}

	var req requestRefundRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		web.RespondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	request, err := h.requestHandler.Handle(r.Context(), command.RequestRefundCommand{
		UserID:    userID,
		PaymentID: uint(paymentID),
		Reason:    req.Reason,
	})
	if err != nil {
		web.RespondAppError(w, err)
		return
	}

	web.RespondJSON(w, http.StatusCreated, web.Response{
		Success: true,
		Message: "Refund requested successfully",
		Data:    request,
	})
}

// DecideRefund handles PATCH /api/refunds/{id}
func (h *RefundHandler) DecideRefund(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseUint(mux.Vars(r)["id"], 10, 32)
	if err != nil {
		web.RespondError(w, http.StatusBadRequest, "Invalid refund request ID")
		return
	}

	var req decideRefundRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		web.RespondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	request, err := h.decideHandler.Handle(r.Context(), command.DecideRefundCommand{
		RequestID:     uint(id),
		Action:        req.Action,
		AdminResponse: req.AdminResponse,
	})
	if err != nil {
		web.RespondAppError(w, err)
		return
	}

	web.RespondJSON(w, http.StatusOK, web.Response{
		Success: true,
		Message: "Refund request decided",
		Data:    request,
	})
}

// ListRefunds handles GET /api/refunds
func (h *RefundHandler) ListRefunds(w http.ResponseWriter, r *http.Request) {
	requests, err := h.listHandler.Handle(r.Context(), query.ListRefundsQuery{})
	if err != nil {
		web.RespondAppError(w, err)
		return
	}

	web.RespondJSON(w, http.StatusOK, web.Response{
		Success: true,
		Data: map[string]interface{}{
			"refunds": requests,
			"total":   len(requests),
		},
	})
}

// MyRefunds handles GET /api/refunds/my
func (h *RefundHandler) MyRefunds(w http.ResponseWriter, r *http.Request) {
	userID, ok := web.UserID(r)
	if !ok {
		web.RespondError(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	requests, err := h.mineHandler.Handle(r.Context(), query.MyRefundsQuery{UserID: userID})
	if err != nil {
		web.RespondAppError(w, err)
		return
	}

	web.RespondJSON(w, http.StatusOK, web.Response{
		Success: true,
		Data: map[string]interface{}{
			"refunds": requests,
			"total":   len(requests),
		},
	})
}

// RegisterRoutes registers all refund routes
func (h *RefundHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/api/payments/{paymentId}/refunds", web.AuthMiddleware(h.RequestRefund)).Methods("POST")
	router.HandleFunc("/api/refunds/my", web.AuthMiddleware(h.MyRefunds)).Methods("GET")
	router.HandleFunc("/api/refunds", web.AdminMiddleware(h.ListRefunds)).Methods("GET")
	router.HandleFunc("/api/refunds/{id}", web.AdminMiddleware(h.DecideRefund)).Methods("PATCH")
}
