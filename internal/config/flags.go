package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"net"
	"strconv"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses command-line flags shared by the server and the client.
// Unset flags leave the corresponding fields zero.
//
// Flags:
//
//	-a                server HTTP address in format [host]:[port]
//	-grpc-address     server gRPC health address in format [host]:[port]
//	-db-driver        credential store driver (postgres|sqlite|memory)
//	-d                credential store DSN
//	-redis-url        catalog cache redis URL
//	-c/-config        json file path with configs
//	-token-sign-key   token signing key
//	-token-issuer     token issuer name
//	-token-duration   token lifetime (e.g. "24h")
//	-request-timeout  server request timeout (e.g. "30s")
//	-tmdb-api-key     catalog API key
//	-s                API server address used by the client
//	-adapter-mode     client backend (http|stub)
//	-client-db        client session database path
//	-log-level        log level (debug|info|warn|error)
func ParseFlags(args []string) (*StructuredConfig, error) {
	var serverAddress, grpcServerAddress NetAddress
	var dbDriver, databaseDSN, redisURL string
	var jsonConfigPath string
	var tokenSignKey, tokenIssuer string
	var tokenDuration, requestTimeout time.Duration
	var tmdbAPIKey string
	var adapterAddress, adapterMode, clientDB string
	var logLevel string

	fs := flag.NewFlagSet("go-flix", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.Var(&grpcServerAddress, "grpc-address", "Net grpc server address host:port")
	fs.StringVar(&dbDriver, "db-driver", "", "Credential store driver (postgres|sqlite|memory)")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.StringVar(&redisURL, "redis-url", "", "Catalog cache redis URL")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&tokenSignKey, "token-sign-key", "", "Token signing key")
	fs.StringVar(&tokenIssuer, "token-issuer", "", "Token issuer")
	fs.DurationVar(&tokenDuration, "token-duration", 0, "Token duration (e.g., 24h)")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.StringVar(&tmdbAPIKey, "tmdb-api-key", "", "Movie catalog API key")
	fs.StringVar(&adapterAddress, "s", "", "API server address used by the client")
	fs.StringVar(&adapterMode, "adapter-mode", "", "Client backend (http|stub)")
	fs.StringVar(&clientDB, "client-db", "", "Client session database path")
	fs.StringVar(&logLevel, "log-level", "", "Log level")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			TokenSignKey:  tokenSignKey,
			TokenIssuer:   tokenIssuer,
			TokenDuration: tokenDuration,
			LogLevel:      logLevel,
		},
		Storage: Storage{
			DB: DB{
				Driver: dbDriver,
				DSN:    databaseDSN,
			},
			Cache: Cache{
				RedisURL: redisURL,
			},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			GRPCAddress:    grpcServerAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Catalog: Catalog{
			APIKey: tmdbAPIKey,
		},
		Adapter: Adapter{
			HTTPAddress: adapterAddress,
			Mode:        adapterMode,
		},
		Client: Client{
			DSN: clientDB,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}

// String returns a canonical host:port string for a NetAddress, or an empty
// string when nothing was set.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return net.JoinHostPort(a.Host, strconv.Itoa(a.Port))
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range and checks IP correctness unless host is
// "localhost" or empty.
func (a *NetAddress) Set(s string) error {
	host, portStr, err := net.SplitHostPort(s)
	if err != nil {
		return errors.New("need address in a form `host:port`")
	}

	port, err := strconv.Atoi(portStr)
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1-65535")
	}

	if host != "" && host != "localhost" && net.ParseIP(host) == nil {
		return errors.New("incorrect IP-address provided")
	}

	a.Host = host
	a.Port = port
	return nil
}
