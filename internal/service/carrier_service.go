package service

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/jengzang/carrier-backend-go/internal/carrier"
	"github.com/jengzang/carrier-backend-go/internal/models"
	"go.uber.org/zap"
)

var (
	// ErrInvalidPosition is returned for coordinates outside the valid range
	ErrInvalidPosition = errors.New("invalid position")
	// ErrInvalidTime is returned for a NaN or infinite timestamp
	ErrInvalidTime = errors.New("invalid time")
)

// Engine is the prediction engine used by the service
type Engine interface {
	UpdateCell(cell int64)
	Cell() int64
	UpdateLocation(ctx context.Context, lng, lat, t float64) error
	Prediction() carrier.Prediction
	Days() []carrier.DayInfo
}

// CarrierService handles business logic for network quality predictions
type CarrierService struct {
	engine Engine
	logger *zap.Logger
}

// NewCarrierService creates a new carrier service
func NewCarrierService(engine Engine, logger *zap.Logger) *CarrierService {
	return &CarrierService{
		engine: engine,
		logger: logger.Named("service"),
	}
}

// UpdateCell sets the serving cell used for matching
func (s *CarrierService) UpdateCell(cell int64) {
	if prev := s.engine.Cell(); prev != cell {
		s.logger.Info("serving cell changed", zap.Int64("from", prev), zap.Int64("to", cell))
	}
	s.engine.UpdateCell(cell)
}

// UpdateLocation validates the position, recomputes the prediction and
// returns it
func (s *CarrierService) UpdateLocation(ctx context.Context, lng, lat, t float64) (*models.PredictionResponse, error) {
	if err := validatePosition(lng, lat); err != nil {
		return nil, err
	}
	if math.IsNaN(t) || math.IsInf(t, 0) {
		return nil, fmt.Errorf("%w: %v", ErrInvalidTime, t)
	}

	if err := s.engine.UpdateLocation(ctx, lng, lat, t); err != nil {
		return nil, fmt.Errorf("failed to update location: %w", err)
	}

	resp := models.NewPredictionResponse(s.engine.Prediction())
	return &resp, nil
}

// GetPrediction returns the latest published prediction
func (s *CarrierService) GetPrediction() *models.PredictionResponse {
	resp := models.NewPredictionResponse(s.engine.Prediction())
	return &resp
}

// GetDays describes the loaded day datasets
func (s *CarrierService) GetDays() *models.DaysResponse {
	days := s.engine.Days()
	return &models.DaysResponse{Count: len(days), Days: days}
}

func validatePosition(lng, lat float64) error {
	if math.IsNaN(lng) || lng < -180 || lng > 180 {
		return fmt.Errorf("%w: longitude %v", ErrInvalidPosition, lng)
	}
	if math.IsNaN(lat) || lat < -90 || lat > 90 {
		return fmt.Errorf("%w: latitude %v", ErrInvalidPosition, lat)
	}
	return nil
}
