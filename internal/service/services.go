package service

import (
	"fmt"

	"github.com/MKhiriev/go-flix/internal/catalog"
	"github.com/MKhiriev/go-flix/internal/config"
	"github.com/MKhiriev/go-flix/internal/crypto"
	"github.com/MKhiriev/go-flix/internal/logger"
	"github.com/MKhiriev/go-flix/internal/store"
	"github.com/MKhiriev/go-flix/internal/validators"
)

type Services struct {
	AuthService    AuthService
	CatalogService CatalogService
	AppInfoService AppInfoService
}

func NewServices(
	storages *store.Storages,
	catalogClient catalog.Client,
	catalogCache catalog.Cache,
	cfg config.StructuredConfig,
	logger *logger.Logger,
) (*Services, error) {
	hasher, err := crypto.NewBcryptHasher(cfg.App.BcryptCost)
	if err != nil {
		return nil, fmt.Errorf("error creating password hasher: %w", err)
	}

	appInfo, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, err
	}

	return &Services{
		AuthService:    NewAuthService(storages.UserRepository, hasher, validators.NewAuthValidator(), cfg.App, logger),
		CatalogService: NewCatalogService(catalogClient, catalogCache, cfg.Storage.Cache.TTL, logger),
		AppInfoService: appInfo,
	}, nil
}
