package migrations

import "embed"

// FS holds the schema for profiles, campaigns, applications and events.
// internal/db applies it through the iofs source driver.
//
//go:embed *.sql
var FS embed.FS

// Version is the schema version Migrate moves the database to.
const Version = 2
