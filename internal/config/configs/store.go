package configs

import (
	"fmt"
	"strings"
)

const (
	StoreDriverPostgres = "postgres"
	StoreDriverSupabase = "supabase"
)

// Store selects the Campaign Store adapter. "postgres" talks to the database
// directly, "supabase" goes through the PostgREST table API.
type Store struct {
	Driver string `env:"DRIVER" envDefault:"postgres"`
}

// Validate normalises the driver name.
func (c *Store) Validate() error {
	c.Driver = strings.ToLower(strings.TrimSpace(c.Driver))
	switch c.Driver {
	case StoreDriverPostgres, StoreDriverSupabase:
		return nil
	default:
		return fmt.Errorf("unknown STORE_DRIVER %q", c.Driver)
	}
}
