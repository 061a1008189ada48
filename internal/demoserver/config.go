package demoserver

import (
	"net"
	"strconv"
	"time"
)

// Config holds configuration for the demo server.
type Config struct {
	// Host is the interface to bind. Empty means all interfaces.
	Host string `conf:"host"`

	// Port is the port on which the demo server listens.
	Port int `conf:"port" default:"8000"`

	// Root is the directory static files are served from.
	Root string `conf:"root" default:"."`

	// ScrapeDelay is how long /api/scrape pretends to work.
	ScrapeDelay time.Duration `conf:"scrape_delay" default:"1s"`

	// MaxConnections caps connections handled at once. 1 keeps the
	// server strictly sequential.
	MaxConnections int `conf:"max_connections" default:"1"`

	// MaxBodyBytes bounds how much of a POST body is read.
	MaxBodyBytes int64 `conf:"max_body_bytes" default:"52428800"`

	ReadTimeout     time.Duration `conf:"read_timeout" default:"15s"`
	ShutdownTimeout time.Duration `conf:"shutdown_timeout" default:"5s"`

	// EnableDownloads mounts POST /api/download/csv.
	EnableDownloads bool `conf:"enable_downloads"`

	// EnableDocs mounts the swagger UI under /swagger/.
	EnableDocs bool `conf:"enable_docs"`
}

// DefaultConfig returns the stock demo settings: port 8000,
// current directory, one second scrape delay, one connection at a time.
func DefaultConfig() Config {
	return Config{
		Port:            8000,
		Root:            ".",
		ScrapeDelay:     time.Second,
		MaxConnections:  1,
		MaxBodyBytes:    50 << 20,
		ReadTimeout:     15 * time.Second,
		ShutdownTimeout: 5 * time.Second,
	}
}

// Addr returns the host:port listen address.
func (c Config) Addr() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}
