package config

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"
)

// Client adapter modes accepted by Adapter.Mode.
const (
	AdapterModeHTTP = "http"
	AdapterModeStub = "stub"
)

// ClientApp holds the settings the in-process backend needs in stub mode.
type ClientApp struct {
	TokenSignKey  string
	TokenIssuer   string
	TokenDuration time.Duration
	BcryptCost    int
	LogLevel      string
}

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// HTTPAddress is the API server address used in http mode.
	HTTPAddress string
	// Mode selects the backend: AdapterModeHTTP or AdapterModeStub.
	Mode string
	// RequestTimeout is the default timeout for outbound client requests.
	RequestTimeout time.Duration
}

// ClientStorage holds the session database settings.
type ClientStorage struct {
	// DSN is the SQLite database holding the persisted session.
	DSN string
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	App     ClientApp
	Adapter ClientAdapter
	Storage ClientStorage
	// Catalog is used for poster URLs and, in stub mode, for movie lists.
	Catalog Catalog
	// Cache is the catalog cache TTL of the stub backend; a Redis URL is
	// ignored there.
	Cache Cache
	// LogFile is the client log destination; empty means next to the binary.
	LogFile string
}

// GetClientConfig builds and validates a client-specific config view from the
// merged structured configuration.
//
// In stub mode without a configured sign key a random key is generated, since
// tokens never leave the process.
func GetClientConfig(args []string) (*ClientConfig, error) {
	cfg, err := loadConfig(args)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := &ClientConfig{
		App: ClientApp{
			TokenSignKey:  cfg.App.TokenSignKey,
			TokenIssuer:   cfg.App.TokenIssuer,
			TokenDuration: cfg.App.TokenDuration,
			BcryptCost:    cfg.App.BcryptCost,
			LogLevel:      cfg.App.LogLevel,
		},
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			Mode:           cfg.Adapter.Mode,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		Storage: ClientStorage{
			DSN: cfg.Client.DSN,
		},
		Catalog: cfg.Catalog,
		Cache:   cfg.Storage.Cache,
		LogFile: cfg.Client.LogFile,
	}

	if clientCfg.Adapter.Mode == AdapterModeStub && clientCfg.App.TokenSignKey == "" {
		key, err := randomKey()
		if err != nil {
			return nil, err
		}
		clientCfg.App.TokenSignKey = key
	}

	return clientCfg, clientCfg.validate()
}

func randomKey() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("error generating sign key: %w", err)
	}
	return hex.EncodeToString(b), nil
}
