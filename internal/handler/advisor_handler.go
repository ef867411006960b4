package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/strike9903/poliprint-studio-sub002/internal/engine"
	"github.com/strike9903/poliprint-studio-sub002/internal/models"
	"github.com/strike9903/poliprint-studio-sub002/internal/service"
)

type AdvisorHandler struct {
	service *service.AdvisorService
	logger  *zap.Logger
}

func NewAdvisorHandler(service *service.AdvisorService, logger *zap.Logger) *AdvisorHandler {
	return &AdvisorHandler{
		service: service,
		logger:  logger,
	}
}

// Recommend handles POST /api/v1/recommendations
func (h *AdvisorHandler) Recommend(c *gin.Context) {
	var req models.RecommendationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resp, err := h.service.Recommend(c.Request.Context(), &req)
	if err != nil {
		h.logger.Error("failed to build recommendations", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build recommendations"})
		return
	}

	c.JSON(http.StatusOK, resp)
}

// ListMethods handles GET /api/v1/methods
func (h *AdvisorHandler) ListMethods(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"methods": h.service.Methods()})
}

// MethodCost handles GET /api/v1/methods/:id/cost
func (h *AdvisorHandler) MethodCost(c *gin.Context) {
	methodID := models.PaymentMethodID(c.Param("id"))

	amount, err := strconv.ParseFloat(c.Query("amount"), 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "amount must be a number"})
		return
	}

	breakdown, err := h.service.Cost(methodID, amount)
	if err != nil {
		switch {
		case errors.Is(err, engine.ErrMethodNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Payment method not found"})
		case errors.Is(err, engine.ErrInvalidAmount):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Amount must not be negative"})
		default:
			h.logger.Error("failed to calculate cost", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to calculate cost"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"cost": breakdown})
}

// RecordAttempt handles POST /api/v1/attempts
func (h *AdvisorHandler) RecordAttempt(c *gin.Context) {
	var req models.AttemptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	attempt, err := h.service.RecordAttempt(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, engine.ErrMethodNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Payment method not found"})
			return
		}
		h.logger.Error("failed to record attempt", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record attempt"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"attempt": attempt})
}
