package handler

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/jengzang/carrier-backend-go/internal/models"
	"github.com/jengzang/carrier-backend-go/internal/service"
	"github.com/jengzang/carrier-backend-go/pkg/response"
)

// CarrierHandler handles HTTP requests for network quality predictions
type CarrierHandler struct {
	service *service.CarrierService
}

// NewCarrierHandler creates a new carrier handler
func NewCarrierHandler(service *service.CarrierService) *CarrierHandler {
	return &CarrierHandler{service: service}
}

// UpdateCell sets the serving cell
// PUT /api/v1/cell
func (h *CarrierHandler) UpdateCell(c *gin.Context) {
	var req models.UpdateCellRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	h.service.UpdateCell(*req.CellID)
	response.Success(c, gin.H{"cell_id": *req.CellID})
}

// UpdateLocation recomputes the prediction for a new client position
// POST /api/v1/location
func (h *CarrierHandler) UpdateLocation(c *gin.Context) {
	var req models.UpdateLocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	prediction, err := h.service.UpdateLocation(c.Request.Context(), *req.Lng, *req.Lat, *req.Time)
	if err != nil {
		if errors.Is(err, service.ErrInvalidPosition) || errors.Is(err, service.ErrInvalidTime) {
			response.BadRequest(c, err.Error())
			return
		}
		response.InternalError(c, "Failed to update prediction")
		return
	}

	response.Success(c, prediction)
}

// GetPrediction returns the latest prediction
// GET /api/v1/prediction
func (h *CarrierHandler) GetPrediction(c *gin.Context) {
	response.Success(c, h.service.GetPrediction())
}

// GetDays lists the loaded day datasets
// GET /api/v1/days
func (h *CarrierHandler) GetDays(c *gin.Context) {
	response.Success(c, h.service.GetDays())
}
