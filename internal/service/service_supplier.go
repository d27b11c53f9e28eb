package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-stock-keeper/internal/logger"
	"github.com/MKhiriev/go-stock-keeper/internal/store"
	"github.com/MKhiriev/go-stock-keeper/models"
)

// supplierService is the concrete implementation of SupplierService.
type supplierService struct {
	supplierRepository store.SupplierRepository

	logger *logger.Logger
}

// NewSupplierService constructs a SupplierService wired to the given
// repository.
func NewSupplierService(supplierRepository store.SupplierRepository, logger *logger.Logger) SupplierService {
	return &supplierService{
		supplierRepository: supplierRepository,
		logger:             logger,
	}
}

// CreateSupplier validates and persists a new supplier. The name is trimmed
// and must be non-empty.
func (s *supplierService) CreateSupplier(ctx context.Context, supplier models.Supplier) (models.Supplier, error) {
	log := logger.FromContext(ctx)

	supplier.Name = strings.TrimSpace(supplier.Name)
	if supplier.Name == "" {
		log.Error().Msg("supplier name is empty")
		return models.Supplier{}, ErrValidationEmptyName
	}

	created, err := s.supplierRepository.CreateSupplier(ctx, supplier)
	if err != nil {
		log.Err(err).Str("name", supplier.Name).Msg("supplier creation ended with error")
		return models.Supplier{}, fmt.Errorf("supplier creation ended with error: %w", err)
	}

	return created, nil
}

func (s *supplierService) GetSupplier(ctx context.Context, id int64) (models.Supplier, error) {
	log := logger.FromContext(ctx)

	supplier, err := s.supplierRepository.GetSupplier(ctx, id)
	if err != nil {
		log.Err(err).Int64("supplier_id", id).Msg("supplier lookup failed")
		return models.Supplier{}, fmt.Errorf("supplier lookup failed: %w", err)
	}

	return supplier, nil
}

func (s *supplierService) ListSuppliers(ctx context.Context) ([]models.Supplier, error) {
	log := logger.FromContext(ctx)

	suppliers, err := s.supplierRepository.ListSuppliers(ctx)
	if err != nil {
		log.Err(err).Msg("supplier listing failed")
		return nil, fmt.Errorf("supplier listing failed: %w", err)
	}

	return suppliers, nil
}

func (s *supplierService) UpdateSupplier(ctx context.Context, supplier models.Supplier) (models.Supplier, error) {
	log := logger.FromContext(ctx)

	supplier.Name = strings.TrimSpace(supplier.Name)
	if supplier.Name == "" {
		log.Error().Int64("supplier_id", supplier.ID).Msg("supplier name is empty")
		return models.Supplier{}, ErrValidationEmptyName
	}

	updated, err := s.supplierRepository.UpdateSupplier(ctx, supplier)
	if err != nil {
		log.Err(err).Int64("supplier_id", supplier.ID).Msg("supplier update ended with error")
		return models.Supplier{}, fmt.Errorf("supplier update ended with error: %w", err)
	}

	return updated, nil
}

func (s *supplierService) DeleteSupplier(ctx context.Context, id int64) error {
	log := logger.FromContext(ctx)

	if err := s.supplierRepository.DeleteSupplier(ctx, id); err != nil {
		log.Err(err).Int64("supplier_id", id).Msg("supplier deletion ended with error")
		return fmt.Errorf("supplier deletion ended with error: %w", err)
	}

	return nil
}
