package configs

import "time"

// Supabase configures the hosted auth and table APIs. JWTSecret, when set,
// lets sessions be verified without a round trip to the auth API.
type Supabase struct {
	URL        string        `env:"URL"`
	AnonKey    string        `env:"ANON_KEY"`
	ServiceKey string        `env:"SERVICE_KEY"`
	JWTSecret  string        `env:"JWT_SECRET"`
	Timeout    time.Duration `env:"TIMEOUT" envDefault:"15s"`
}
