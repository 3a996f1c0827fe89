package configs

import "time"

// HTTP configures the API server.
type HTTP struct {
	Port uint16 `env:"PORT" envDefault:"8080"`
	// ReadHeaderTimeout bounds slow clients; dashboard loads fan out to the
	// store so request bodies themselves are small.
	ReadHeaderTimeout time.Duration `env:"READ_HEADER_TIMEOUT" envDefault:"10s"`
	ShutdownTimeout   time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"5s"`
}
