package service

import (
	"github.com/MKhiriev/go-flix/internal/adapter"
	"github.com/MKhiriev/go-flix/internal/logger"
)

type ClientServices struct {
	AuthService    ClientAuthService
	CatalogService ClientCatalogService
	Guard          RouteGuard
}

func NewClientServices(session ClientSession, serverAdapter adapter.ServerAdapter, logger *logger.Logger) *ClientServices {
	return &ClientServices{
		AuthService:    NewClientAuthService(session, serverAdapter, logger),
		CatalogService: NewClientCatalogService(session, serverAdapter, logger),
		Guard:          NewRouteGuard(session, serverAdapter, logger),
	}
}
