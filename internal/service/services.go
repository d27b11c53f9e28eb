package service

import (
	"github.com/MKhiriev/go-stock-keeper/internal/config"
	"github.com/MKhiriev/go-stock-keeper/internal/logger"
	"github.com/MKhiriev/go-stock-keeper/internal/store"
)

type Services struct {
	AuthService     AuthService
	CategoryService CategoryService
	SupplierService SupplierService
	ProductService  ProductService
	MovementService MovementService
	ReportService   ReportService
	AppInfoService  AppInfoService
}

func NewServices(storages store.Storages, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, err
	}

	return &Services{
		AuthService:     NewAuthService(storages.UserRepository, cfg.App, logger),
		CategoryService: NewCategoryService(storages.CategoryRepository, logger),
		SupplierService: NewSupplierService(storages.SupplierRepository, logger),
		ProductService:  NewProductService(storages.ProductRepository, logger),
		MovementService: NewMovementService(storages.MovementRepository, logger),
		ReportService:   NewReportService(storages.ReportRepository, logger),
		AppInfoService:  appInfoService,
	}, nil
}
