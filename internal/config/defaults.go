package config

import "time"

const (
	defaultEnvFile = ".env"

	defaultTokenIssuer   = "go-flix"
	defaultTokenDuration = 24 * time.Hour
	defaultBcryptCost    = 10
	defaultVersion       = "dev"
	defaultLogLevel      = "debug"

	defaultHTTPAddress    = "localhost:8080"
	defaultRequestTimeout = 30 * time.Second

	defaultCacheTTL = 10 * time.Minute

	defaultCatalogBaseURL      = "https://api.themoviedb.org/3"
	defaultCatalogImageBaseURL = "https://image.tmdb.org/t/p"
	defaultCatalogLanguage     = "en-US"
	defaultCatalogTimeout      = 10 * time.Second

	defaultAdapterTimeout = 10 * time.Second
	defaultClientDSN      = "go-flix-client.db"
)

// defaults returns the values used for every field no source has set.
func defaults() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenIssuer:   defaultTokenIssuer,
			TokenDuration: defaultTokenDuration,
			BcryptCost:    defaultBcryptCost,
			Version:       defaultVersion,
			LogLevel:      defaultLogLevel,
		},
		Storage: Storage{
			DB:    DB{Driver: DriverMemory},
			Cache: Cache{TTL: defaultCacheTTL},
		},
		Server: Server{
			HTTPAddress:    defaultHTTPAddress,
			RequestTimeout: defaultRequestTimeout,
		},
		Catalog: Catalog{
			BaseURL:      defaultCatalogBaseURL,
			ImageBaseURL: defaultCatalogImageBaseURL,
			Language:     defaultCatalogLanguage,
			Timeout:      defaultCatalogTimeout,
		},
		Adapter: Adapter{
			HTTPAddress:    defaultHTTPAddress,
			Mode:           AdapterModeHTTP,
			RequestTimeout: defaultAdapterTimeout,
		},
		Client: Client{
			DSN: defaultClientDSN,
		},
	}
}
