package supabase

import "influence-nexus/internal/core/port"

var (
	_ port.CampaignStore   = (*RESTStore)(nil)
	_ port.IdentityGateway = (*AuthGateway)(nil)
)
