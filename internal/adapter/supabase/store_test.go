package supabase

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"influence-nexus/internal/core/domain"
)

func TestListActiveCampaigns(t *testing.T) {
	brandID := uuid.New()
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/rest/v1/campaigns", r.URL.Path)
		q := r.URL.Query()
		assert.Equal(t, "eq.active", q.Get("status"))
		assert.Equal(t, "created_at.desc", q.Get("order"))
		assert.Equal(t, campaignSelect, q.Get("select"))
		assert.Equal(t, "Bearer service", r.Header.Get("Authorization"))

		_, _ = w.Write([]byte(`[{
			"id":"` + uuid.NewString() + `","brand_id":"` + brandID.String() + `",
			"title":"Summer","description":"d","budget":5000,"category":"fashion",
			"deadline":"2026-12-01","requirements":null,"status":"active",
			"created_at":"2026-10-01T10:00:00.123456+00:00",
			"brand":{"full_name":"Jane","company_name":"Acme"}
		}]`))
	}, "")

	campaigns, err := NewRESTStore(client).ListActiveCampaigns(context.Background())
	require.NoError(t, err)
	require.Len(t, campaigns, 1)
	assert.Equal(t, "Acme", campaigns[0].BrandName)
	assert.Equal(t, 5000.0, campaigns[0].Budget)
	assert.Equal(t, 2026, campaigns[0].Deadline.Year())
	assert.True(t, campaigns[0].IsActive())
}

func TestGetProfileAbsent(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[]`))
	}, "")

	p, err := NewRESTStore(client).GetProfile(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.Nil(t, p)
}

func TestCreateApplicationConflict(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Contains(t, r.Header.Get("Prefer"), "return=representation")
		w.WriteHeader(http.StatusConflict)
		_, _ = w.Write([]byte(`{"code":"23505","message":"duplicate key value"}`))
	}, "")

	_, err := NewRESTStore(client).CreateApplication(context.Background(), domain.Application{
		CampaignID: uuid.New(),
		CreatorID:  uuid.New(),
		Pitch:      "hi",
		Status:     domain.ApplicationPending,
	})
	var conflict *domain.ConflictError
	require.ErrorAs(t, err, &conflict)
}

func TestUpdateApplicationStatusNotOwned(t *testing.T) {
	calls := 0
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
		assert.Equal(t, http.MethodGet, r.Method)
		_, _ = w.Write([]byte(`[]`))
	}, "")

	app, err := NewRESTStore(client).UpdateApplicationStatus(context.Background(), uuid.New(), uuid.New(), domain.ApplicationPending, domain.ApplicationAccepted)
	require.NoError(t, err)
	assert.Nil(t, app)
	assert.Equal(t, 1, calls)
}

func TestUpdateApplicationStatusPatchesPendingOnly(t *testing.T) {
	appID, brandID := uuid.New(), uuid.New()
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		switch r.Method {
		case http.MethodGet:
			assert.Equal(t, "eq."+brandID.String(), q.Get("campaigns.brand_id"))
			_, _ = w.Write([]byte(`[{"id":"` + appID.String() + `"}]`))
		case http.MethodPatch:
			assert.Equal(t, "eq.pending", q.Get("status"))
			assert.Equal(t, "eq."+appID.String(), q.Get("id"))
			raw, _ := io.ReadAll(r.Body)
			var patch map[string]string
			require.NoError(t, json.Unmarshal(raw, &patch))
			assert.Equal(t, "accepted", patch["status"])
			_, _ = w.Write([]byte(`[{
				"id":"` + appID.String() + `","campaign_id":"` + uuid.NewString() + `",
				"creator_id":"` + uuid.NewString() + `","pitch":"p","proposed_rate":1200,
				"status":"accepted","created_at":"2026-10-02T08:00:00+00:00",
				"campaigns":{"title":"Summer","brand_id":"` + brandID.String() + `"}
			}]`))
		default:
			t.Fatalf("unexpected method %s", r.Method)
		}
	}, "")

	app, err := NewRESTStore(client).UpdateApplicationStatus(context.Background(), appID, brandID, domain.ApplicationPending, domain.ApplicationAccepted)
	require.NoError(t, err)
	require.NotNil(t, app)
	assert.Equal(t, domain.ApplicationAccepted, app.Status)
	assert.Equal(t, "Summer", app.CampaignTitle)
	require.NotNil(t, app.ProposedRate)
	assert.Equal(t, 1200.0, *app.ProposedRate)
}

func TestCreateRegistrationReturnsExisting(t *testing.T) {
	eventID, userID, regID := uuid.New(), uuid.New(), uuid.New()
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodPost:
			assert.Equal(t, "event_id,user_id", r.URL.Query().Get("on_conflict"))
			assert.Contains(t, r.Header.Get("Prefer"), "resolution=ignore-duplicates")
			_, _ = w.Write([]byte(`[]`))
		case http.MethodGet:
			_, _ = w.Write([]byte(`[{"id":"` + regID.String() + `","event_id":"` + eventID.String() +
				`","user_id":"` + userID.String() + `","payment_status":"pending","created_at":"2026-10-02T08:00:00Z"}]`))
		}
	}, "")

	reg, created, err := NewRESTStore(client).CreateRegistration(context.Background(), domain.EventRegistration{
		EventID:       eventID,
		UserID:        userID,
		PaymentStatus: domain.PaymentPending,
	})
	require.NoError(t, err)
	require.NotNil(t, reg)
	assert.False(t, created)
	assert.Equal(t, regID, reg.ID)
	assert.Equal(t, domain.PaymentPending, reg.PaymentStatus)
}
