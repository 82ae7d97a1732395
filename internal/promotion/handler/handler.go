package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/snazzy/storefront/internal/promotion/usecase/command"
	"github.com/snazzy/storefront/internal/promotion/usecase/query"
	"github.com/snazzy/storefront/internal/web"
	"github.com/snazzy/storefront/pkg/logger"
)

// PromotionHandler handles HTTP requests for promotions using CQRS handlers
type PromotionHandler struct {
	createHandler *command.CreatePromotionHandler
	updateHandler *command.UpdatePromotionHandler
	deleteHandler *command.DeletePromotionHandler

	listHandler  *query.ListPromotionsHandler
	getHandler   *query.GetPromotionHandler
	quoteHandler *query.QuoteProductHandler
}

func NewPromotionHandler(
	createHandler *command.CreatePromotionHandler,
	updateHandler *command.UpdatePromotionHandler,
	deleteHandler *command.DeletePromotionHandler,
	listHandler *query.ListPromotionsHandler,
	getHandler *query.GetPromotionHandler,
	quoteHandler *query.QuoteProductHandler,
) *PromotionHandler {
	return &PromotionHandler{
		createHandler: createHandler,
		updateHandler: updateHandler,
		deleteHandler: deleteHandler,
		listHandler:   listHandler,
		getHandler:    getHandler,
		quoteHandler:  quoteHandler,
	}
}

type promotionRequest struct {
	Title       string  `json:"title"`
	ProductID   string  `json:"product_id"`
	Description string  `json:"description"`
	Discount    float64 `json:"discount"`
	StartDate   string  `json:"start_date"`
	EndDate     string  `json:"end_date"`
	BannerImage string  `json:"banner_image"`
}

// ListPromotions handles GET /api/promotions
func (h *PromotionHandler) ListPromotions(w http.ResponseWriter, r *http.Request) {
	promotions, err := h.listHandler.Handle(r.Context(), query.ListPromotionsQuery{})
	if err != nil {
		logger.Error(r.Context()).Err(err).Msg("Failed to list promotions")
		web.RespondError(w, http.StatusInternalServerError, "Failed to list promotions")
		return
	}

	web.RespondJSON(w, http.StatusOK, web.Response{
		Success: true,
		Data: map[string]interface{}{
			"promotions": promotions,
			"total":      len(promotions),
		},
	})
}

// GetPromotion handles GET /api/promotions/{id}
func (h *PromotionHandler) GetPromotion(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		web.RespondError(w, http.StatusBadRequest, "Invalid promotion ID")
		return
	}

	promotion, err := h.getHandler.Handle(r.Context(), query.GetPromotionQuery{ID: id})
	if err != nil {
		web.RespondAppError(w, err)
		return
	}

	web.RespondJSON(w, http.StatusOK, web.Response{Success: true, Data: promotion})
}

// QuoteProduct handles GET /api/promotions/quote?product_id=&base_price=
func (h *PromotionHandler) QuoteProduct(w http.ResponseWriter, r *http.Request) {
	basePrice, err := strconv.ParseFloat(r.URL.Query().Get("base_price"), 64)
	if err != nil {
		web.RespondError(w, http.StatusBadRequest, "Invalid base_price")
		return
	}

	quote, err := h.quoteHandler.Handle(r.Context(), query.QuoteProductQuery{
		ProductID: r.URL.Query().Get("product_id"),
		BasePrice: basePrice,
	})
	if err != nil {
		web.RespondAppError(w, err)
		return
	}

	web.RespondJSON(w, http.StatusOK, web.Response{Success: true, Data: quote})
}

// CreatePromotion handles POST /api/promotions
func (h *PromotionHandler) CreatePromotion(w http.ResponseWriter, r *http.Request) {
	var req promotionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		web.RespondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	promotion, err := h.createHandler.Handle(r.Context(), command.CreatePromotionCommand{
		Title:       req.Title,
		ProductID:   req.ProductID,
		Description: req.Description,
		Discount:    req.Discount,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		BannerImage: req.BannerImage,
	})
	if err != nil {
		web.RespondAppError(w, err)
		return
	}

	web.RespondJSON(w, http.StatusCreated, web.Response{
		Success: true,
		Message: "Promotion created successfully",
		Data:    promotion,
	})
}

// UpdatePromotion handles PUT /api/promotions/{id}
func (h *PromotionHandler) UpdatePromotion(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		web.RespondError(w, http.StatusBadRequest, "Invalid promotion ID")
		return
	}

	var req promotionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		web.RespondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	promotion, err := h.updateHandler.Handle(r.Context(), command.UpdatePromotionCommand{
		ID:          id,
		Title:       req.Title,
		ProductID:   req.ProductID,
		Description: req.Description,
		Discount:    req.Discount,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		BannerImage: req.BannerImage,
	})
	if err != nil {
		web.RespondAppError(w, err)
		return
	}

	web.RespondJSON(w, http.StatusOK, web.Response{
		Success: true,
		Message: "Promotion updated successfully",
		Data:    promotion,
	})
}

// DeletePromotion handles DELETE /api/promotions/{id}
func (h *PromotionHandler) DeletePromotion(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		web.RespondError(w, http.StatusBadRequest, "Invalid promotion ID")
		return
	}

	if err := h.deleteHandler.Handle(r.Context(), command.DeletePromotionCommand{ID: id}); err != nil {
		web.RespondAppError(w, err)
		return
	}

	web.RespondJSON(w, http.StatusOK, web.Response{
		Success: true,
		Message: "Promotion deleted successfully",
	})
}

// RegisterRoutes registers all promotion routes
func (h *PromotionHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/api/promotions/quote", h.QuoteProduct).Methods("GET")
	router.HandleFunc("/api/promotions", h.ListPromotions).Methods("GET")
	router.HandleFunc("/api/promotions/{id}", h.GetPromotion).Methods("GET")

	router.HandleFunc("/api/promotions", web.AdminMiddleware(h.CreatePromotion)).Methods("POST")
	router.HandleFunc("/api/promotions/{id}", web.AdminMiddleware(h.UpdatePromotion)).Methods("PUT")
	router.HandleFunc("/api/promotions/{id}", web.AdminMiddleware(h.DeletePromotion)).Methods("DELETE")
}

func pathID(r *http.Request) (uint, error) {
	id, err := strconv.ParseUint(mux.Vars(r)["id"], 10, 32)
	return uint(id), err
}
