package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/snazzy/storefront/internal/payment/usecase/command"
	"github.com/snazzy/storefront/internal/payment/usecase/query"
	"github.com/snazzy/storefront/internal/web"
	"github.com/snazzy/storefront/pkg/apperror"
)

// PaymentHandler handles HTTP requests for stored cards and payments
type PaymentHandler struct {
	addCardHandler      *command.AddCardHandler
	updateCardHandler   *command.UpdateCardHandler
	removeCardHandler   *command.RemoveCardHandler
	chargeHandler       *command.ChargeHandler
	updateStatusHandler *command.UpdatePaymentStatusHandler

	listCardsHandler  *query.ListCardsHandler
	getCardHandler    *query.GetCardHandler
	myPaymentsHandler *query.MyPaymentsHandler

	chargesTotal   *prometheus.CounterVec
	chargeDuration prometheus.Histogram
}

func NewPaymentHandler(
	addCardHandler *command.AddCardHandler,
	updateCardHandler *command.UpdateCardHandler,
	removeCardHandler *command.RemoveCardHandler,
	chargeHandler *command.ChargeHandler,
	updateStatusHandler *command.UpdatePaymentStatusHandler,
	listCardsHandler *query.ListCardsHandler,
	getCardHandler *query.GetCardHandler,
	myPaymentsHandler *query.MyPaymentsHandler,
) *PaymentHandler {
	return &PaymentHandler{
		addCardHandler:      addCardHandler,
		updateCardHandler:   updateCardHandler,
		removeCardHandler:   removeCardHandler,
		chargeHandler:       chargeHandler,
		updateStatusHandler: updateStatusHandler,
		listCardsHandler:    listCardsHandler,
		getCardHandler:      getCardHandler,
		myPaymentsHandler:   myPaymentsHandler,
		chargesTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "storefront_charges_total",
			Help: "Charge attempts by outcome",
		}, []string{"outcome"}),
		chargeDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "storefront_charge_duration_seconds",
			Help:    "Charge request duration in seconds",
			Buckets: prometheus.DefBuckets,
		}),
	}
}

type addCardRequest struct {
	StripeMethodID string `json:"stripe_method_id"`
}

type chargeRequest struct {
	Amount         float64 `json:"amount"`
	Currency       string  `json:"currency"`
	StripeMethodID string  `json:"stripe_method_id"`
}

type statusRequest struct {
	Status string `json:"status"`
}

// AddCard handles POST /api/cards
func (h *PaymentHandler) AddCard(w http.ResponseWriter, r *http.Request) {
	userID, ok := web.UserID(r)
	if !ok {
		web.RespondError(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	var req addCardRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		web.RespondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	method, err := h.addCardHandler.Handle(r.Context(), command.AddCardCommand{
		UserID:         userID,
		StripeMethodID: req.StripeMethodID,
	})
	if err != nil {
		web.RespondAppError(w, err)
		return
	}

	web.RespondJSON(w, http.StatusCreated, web.Response{
		Success: true,
		Message: "Card added successfully",
		Data:    method,
	})
}

// ListCards handles GET /api/cards
func (h *PaymentHandler) ListCards(w http.ResponseWriter, r *http.Request) {
	userID, ok := web.UserID(r)
	if !ok {
		web.RespondError(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	methods, err := h.listCardsHandler.Handle(r.Context(), query.ListCardsQuery{UserID: userID})
	if err != nil {
		web.RespondAppError(w, err)
		return
	}

	web.RespondJSON(w, http.StatusOK, web.Response{
		Success: true,
		Data: map[string]interface{}{
			"cards": methods,
			"total": len(methods),
		},
	})
}

// GetCard handles GET /api/cards/{id}
func (h *PaymentHandler) GetCard(w http.ResponseWriter, r *http.Request) {
	userID, ok := web.UserID(r)
	if !ok {
		web.RespondError(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	id, err := pathID(r)
	if err != nil {
		web.RespondError(w, http.StatusBadRequest, "Invalid card ID")
		return
	}

	method, err := h.getCardHandler.Handle(r.Context(), query.GetCardQuery{UserID: userID, CardID: id})
	if err != nil {
		web.RespondAppError(w, err)
		return
	}

	web.RespondJSON(w, http.StatusOK, web.Response{Success: true, Data: method})
}

// UpdateCard handles PUT /api/cards/{id}
func (h *PaymentHandler) UpdateCard(w http.ResponseWriter, r *http.Request) {
	userID, ok := web.UserID(r)
	if !ok {
		web.RespondError(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	id, err := pathID(r)
	if err != nil {
		web.RespondError(w, http.StatusBadRequest, "Invalid card ID")
		return
	}

	var req addCardRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		web.RespondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	method, err := h.updateCardHandler.Handle(r.Context(), command.UpdateCardCommand{
		UserID:         userID,
		CardID:         id,
		StripeMethodID: req.StripeMethodID,
	})
	if err != nil {
		web.RespondAppError(w, err)
		return
	}

	web.RespondJSON(w, http.StatusOK, web.Response{
		Success: true,
		Message: "Card updated successfully",
		Data:    method,
	})
}

// RemoveCard handles DELETE /api/cards/{id}
func (h *PaymentHandler) RemoveCard(w http.ResponseWriter, r *http.Request) {
	userID, ok := web.UserID(r)
	if !ok {
		web.RespondError(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	id, err := pathID(r)
	if err != nil {
		web.RespondError(w, http.StatusBadRequest, "Invalid card ID")
		return
	}

	if err := h.removeCardHandler.Handle(r.Context(), command.RemoveCardCommand{UserID: userID, CardID: id}); err != nil {
		web.RespondAppError(w, err)
		return
	}

	web.RespondJSON(w, http.StatusOK, web.Response{
		Success: true,
		Message: "Card removed successfully",
	})
}

// Charge handles POST /api/payments
func (h *PaymentHandler) Charge(w http.ResponseWriter, r *http.Request) {
	userID, ok := web.UserID(r)
	if !ok {
		web.RespondError(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	var req chargeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		web.RespondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	timer := prometheus.NewTimer(h.chargeDuration)
	payment, err := h.chargeHandler.Handle(r.Context(), command.ChargeCommand{
		UserID:         userID,
		Amount:         req.Amount,
		Currency:       req.Currency,
		StripeMethodID: req.StripeMethodID,
	})
	timer.ObserveDuration()

	if err != nil {
		h.chargesTotal.WithLabelValues(chargeOutcome(err)).Inc()
		web.RespondAppError(w, err)
		return
	}
	h.chargesTotal.WithLabelValues("succeeded").Inc()

	web.RespondJSON(w, http.StatusCreated, web.Response{
		Success: true,
		Message: "Payment captured successfully",
		Data:    payment,
	})
}

// MyPayments handles GET /api/payments/my
func (h *PaymentHandler) MyPayments(w http.ResponseWriter, r *http.Request) {
	userID, ok := web.UserID(r)
	if !ok {
		web.RespondError(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	payments, err := h.myPaymentsHandler.Handle(r.Context(), query.MyPaymentsQuery{UserID: userID})
	if err != nil {
		web.RespondAppError(w, err)
		return
	}

	web.RespondJSON(w, http.StatusOK, web.Response{
		Success: true,
		Data: map[string]interface{}{
			"payments": payments,
			"total":    len(payments),
		},
	})
}

// UpdateStatus handles PATCH /api/payments/{id}/status
func (h *PaymentHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		web.RespondError(w, http.StatusBadRequest, "Invalid payment ID")
		return
	}

	var req statusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		web.RespondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	payment, err := h.updateStatusHandler.Handle(r.Context(), command.UpdatePaymentStatusCommand{
		PaymentID: id,
		Status:    req.Status,
	})
	if err != nil {
		web.RespondAppError(w, err)
		return
	}

	web.RespondJSON(w, http.StatusOK, web.Response{
		Success: true,
		Message: "Payment status updated successfully",
		Data:    payment,
	})
}

// RegisterRoutes registers all card and payment routes
func (h *PaymentHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/api/cards", web.AuthMiddleware(h.AddCard)).Methods("POST")
	router.HandleFunc("/api/cards", web.AuthMiddleware(h.ListCards)).Methods("GET")
	router.HandleFunc("/api/cards/{id}", web.AuthMiddleware(h.GetCard)).Methods("GET")
	router.HandleFunc("/api/cards/{id}", web.AuthMiddleware(h.UpdateCard)).Methods("PUT")
	router.HandleFunc("/api/cards/{id}", web.AuthMiddleware(h.RemoveCard)).Methods("DELETE")

	router.HandleFunc("/api/payments", web.AuthMiddleware(h.Charge)).Methods("POST")
	router.HandleFunc("/api/payments/my", web.AuthMiddleware(h.MyPayments)).Methods("GET")
	router.HandleFunc("/api/payments/{id}/status", web.AdminMiddleware(h.UpdateStatus)).Methods("PATCH")
}

func chargeOutcome(err error) string {
	switch apperror.HTTPStatus(err) {
	case http.StatusGatewayTimeout:
		return "indeterminate"
	case http.StatusBadGateway:
		return "gateway_error"
	default:
		return "rejected"
	}
}

func pathID(r *http.Request) (uint, error) {
	id, err := strconv.ParseUint(mux.Vars(r)["id"], 10, 32)
	return uint(id), err
}
