package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-stock-keeper/internal/logger"
	"github.com/MKhiriev/go-stock-keeper/internal/store"
	"github.com/MKhiriev/go-stock-keeper/internal/utils"
	"github.com/MKhiriev/go-stock-keeper/models"
)

// movementService is the concrete implementation of MovementService.
type movementService struct {
	movementRepository store.MovementRepository

	logger *logger.Logger
}

// NewMovementService constructs a MovementService wired to the given
// repository.
func NewMovementService(movementRepository store.MovementRepository, logger *logger.Logger) MovementService {
	return &movementService{
		movementRepository: movementRepository,
		logger:             logger,
	}
}

// RecordMovement validates and persists a stock ledger entry.
//
// The recording user is taken from the request context, and TotalValue is
// always recomputed as Quantity * PricePerUnit; client-submitted totals are
// ignored. Persistence is delegated to the repository, which applies the
// quantity delta atomically and rejects outbound movements exceeding the
// on-hand stock with store.ErrInsufficientStock.
func (s *movementService) RecordMovement(ctx context.Context, movement models.StockMovement) (models.StockMovement, error) {
	log := logger.FromContext(ctx)

	switch {
	case movement.ProductID == 0:
		return models.StockMovement{}, ErrValidationNoProductID
	case movement.Type != models.MovementIn && movement.Type != models.MovementOut:
		return models.StockMovement{}, ErrValidationInvalidMovementType
	case movement.Quantity <= 0:
		return models.StockMovement{}, ErrValidationInvalidQuantity
	case movement.PricePerUnit < 0:
		return models.StockMovement{}, ErrValidationInvalidPrice
	}

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Int64("product_id", movement.ProductID).Msg("no recording user in request context")
		return models.StockMovement{}, ErrValidationNoRecordingUser
	}
	movement.RecordedBy = userID
	movement.TotalValue = movement.Quantity * movement.PricePerUnit

	recorded, err := s.movementRepository.RecordMovement(ctx, movement)
	if err != nil {
		log.Err(err).
			Int64("product_id", movement.ProductID).
			Str("type", movement.Type).
			Msg("movement recording ended with error")
		return models.StockMovement{}, fmt.Errorf("movement recording ended with error: %w", err)
	}

	return recorded, nil
}

func (s *movementService) ListMovements(ctx context.Context, filter models.MovementFilter) ([]models.StockMovement, error) {
	log := logger.FromContext(ctx)

	movements, err := s.movementRepository.ListMovements(ctx, filter)
	if err != nil {
		log.Err(err).Msg("movement listing failed")
		return nil, fmt.Errorf("movement listing failed: %w", err)
	}

	return movements, nil
}
