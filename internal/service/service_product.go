package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-stock-keeper/internal/logger"
	"github.com/MKhiriev/go-stock-keeper/internal/store"
	"github.com/MKhiriev/go-stock-keeper/models"
)

// productService is the concrete implementation of ProductService.
type productService struct {
	productRepository store.ProductRepository

	logger *logger.Logger
}

// NewProductService constructs a ProductService wired to the given repository.
func NewProductService(productRepository store.ProductRepository, logger *logger.Logger) ProductService {
	return &productService{
		productRepository: productRepository,
		logger:            logger,
	}
}

// validateProduct checks the fields common to create and update. Quantity is
// deliberately not validated here: it is set once at creation and afterwards
// changes only through recorded movements.
func validateProduct(product *models.Product) error {
	product.SKU = strings.TrimSpace(product.SKU)
	product.Name = strings.TrimSpace(product.Name)
	product.Unit = strings.TrimSpace(product.Unit)

	switch {
	case product.SKU == "":
		return ErrValidationEmptySKU
	case product.Name == "":
		return ErrValidationEmptyName
	case product.Unit == "":
		return ErrValidationEmptyUnit
	case product.Price < 0:
		return ErrValidationInvalidPrice
	case product.LowStockThreshold < 0:
		return ErrValidationInvalidThreshold
	}

	return nil
}

// CreateProduct validates and persists a new catalog item. An initial
// quantity below zero is rejected.
func (s *productService) CreateProduct(ctx context.Context, product models.Product) (models.Product, error) {
	log := logger.FromContext(ctx)

	if err := validateProduct(&product); err != nil {
		log.Error().Err(err).Str("sku", product.SKU).Msg("invalid product data provided")
		return models.Product{}, err
	}
	if product.Quantity < 0 {
		log.Error().Str("sku", product.SKU).Float64("quantity", product.Quantity).Msg("negative initial quantity")
		return models.Product{}, ErrValidationInvalidQuantity
	}

	created, err := s.productRepository.CreateProduct(ctx, product)
	if err != nil {
		log.Err(err).Str("sku", product.SKU).Msg("product creation ended with error")
		return models.Product{}, fmt.Errorf("product creation ended with error: %w", err)
	}

	return created, nil
}

func (s *productService) GetProduct(ctx context.Context, id int64) (models.Product, error) {
	log := logger.FromContext(ctx)

	product, err := s.productRepository.GetProduct(ctx, id)
	if err != nil {
		log.Err(err).Int64("product_id", id).Msg("product lookup failed")
		return models.Product{}, fmt.Errorf("product lookup failed: %w", err)
	}

	return product, nil
}

func (s *productService) ListProducts(ctx context.Context, filter models.ProductFilter) ([]models.Product, error) {
	log := logger.FromContext(ctx)

	products, err := s.productRepository.ListProducts(ctx, filter)
	if err != nil {
		log.Err(err).Msg("product listing failed")
		return nil, fmt.Errorf("product listing failed: %w", err)
	}

	return products, nil
}

// UpdateProduct validates and persists catalog field changes. The stored
// quantity is untouched regardless of what the caller submits.
func (s *productService) UpdateProduct(ctx context.Context, product models.Product) (models.Product, error) {
	log := logger.FromContext(ctx)

	if err := validateProduct(&product); err != nil {
		log.Error().Err(err).Int64("product_id", product.ID).Msg("invalid product data provided")
		return models.Product{}, err
	}

	updated, err := s.productRepository.UpdateProduct(ctx, product)
	if err != nil {
		log.Err(err).Int64("product_id", product.ID).Msg("product update ended with error")
		return models.Product{}, fmt.Errorf("product update ended with error: %w", err)
	}

	return updated, nil
}

func (s *productService) DeleteProduct(ctx context.Context, id int64) error {
	log := logger.FromContext(ctx)

	if err := s.productRepository.DeleteProduct(ctx, id); err != nil {
		log.Err(err).Int64("product_id", id).Msg("product deletion ended with error")
		return fmt.Errorf("product deletion ended with error: %w", err)
	}

	return nil
}
