package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig is the on-disk JSON layout of the configuration.
// Durations are written as strings ("30s", "24h").
type StructuredJSONConfig struct {
	App struct {
		TokenSignKey  string   `json:"token_sign_key"`
		TokenIssuer   string   `json:"token_issuer"`
		TokenDuration Duration `json:"token_duration"`
		BcryptCost    int      `json:"bcrypt_cost"`
		Version       string   `json:"version"`
		LogLevel      string   `json:"log_level"`
	} `json:"app"`

	Storage struct {
		DB struct {
			Driver string `json:"driver"`
			DSN    string `json:"dsn"`
		} `json:"db"`

		Cache struct {
			RedisURL string   `json:"redis_url"`
			TTL      Duration `json:"ttl"`
		} `json:"cache"`
	} `json:"storage"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		GRPCAddress    string   `json:"grpc_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"server"`

	Catalog struct {
		APIKey       string   `json:"api_key"`
		BaseURL      string   `json:"base_url"`
		ImageBaseURL string   `json:"image_base_url"`
		Language     string   `json:"language"`
		Timeout      Duration `json:"timeout"`
	} `json:"catalog"`

	Adapter struct {
		HTTPAddress    string   `json:"http_address"`
		Mode           string   `json:"mode"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"adapter"`

	Client struct {
		DSN     string `json:"dsn"`
		LogFile string `json:"log_file"`
	} `json:"client"`

	Workers struct {
		CatalogRefreshInterval Duration `json:"catalog_refresh_interval"`
	} `json:"workers"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	return &StructuredConfig{
		App: App{
			TokenSignKey:  jsonCfg.App.TokenSignKey,
			TokenIssuer:   jsonCfg.App.TokenIssuer,
			TokenDuration: time.Duration(jsonCfg.App.TokenDuration),
			BcryptCost:    jsonCfg.App.BcryptCost,
			Version:       jsonCfg.App.Version,
			LogLevel:      jsonCfg.App.LogLevel,
		},
		Storage: Storage{
			DB: DB{
				Driver: jsonCfg.Storage.DB.Driver,
				DSN:    jsonCfg.Storage.DB.DSN,
			},
			Cache: Cache{
				RedisURL: jsonCfg.Storage.Cache.RedisURL,
				TTL:      time.Duration(jsonCfg.Storage.Cache.TTL),
			},
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			GRPCAddress:    jsonCfg.Server.GRPCAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
		},
		Catalog: Catalog{
			APIKey:       jsonCfg.Catalog.APIKey,
			BaseURL:      jsonCfg.Catalog.BaseURL,
			ImageBaseURL: jsonCfg.Catalog.ImageBaseURL,
			Language:     jsonCfg.Catalog.Language,
			Timeout:      time.Duration(jsonCfg.Catalog.Timeout),
		},
		Adapter: Adapter{
			HTTPAddress:    jsonCfg.Adapter.HTTPAddress,
			Mode:           jsonCfg.Adapter.Mode,
			RequestTimeout: time.Duration(jsonCfg.Adapter.RequestTimeout),
		},
		Client: Client{
			DSN:     jsonCfg.Client.DSN,
			LogFile: jsonCfg.Client.LogFile,
		},
		Workers: Workers{
			CatalogRefreshInterval: time.Duration(jsonCfg.Workers.CatalogRefreshInterval),
		},
	}, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling
// from strings like "1h", "30s" as well as plain nanosecond numbers.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return fmt.Errorf("invalid duration %s", string(b))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
