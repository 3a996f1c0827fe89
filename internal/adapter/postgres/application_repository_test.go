package postgres

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"influence-nexus/internal/core/domain"
)

var applicationCols = []string{"id", "campaign_id", "creator_id", "pitch", "proposed_rate", "status", "created_at", "title"}

func newMockStore(t *testing.T) (pgxmock.PgxPoolIface, *CampaignStore) {
	t.Helper()
	pool, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(pool.Close)
	return pool, NewCampaignStore(pool)
}

// casUpdate matches the guarded UPDATE: the row must still be in the expected
// status and belong to a campaign of the deciding brand.
var casUpdate = regexp.QuoteMeta("WHERE a.id = $1 AND a.campaign_id = c.id AND c.brand_id = $2 AND a.status = $3")

func TestUpdateApplicationStatusFromPending(t *testing.T) {
	pool, store := newMockStore(t)
	id, brandID, campaignID, creatorID := uuid.New(), uuid.New(), uuid.New(), uuid.New()
	rate := 1500.0
	pool.ExpectQuery(casUpdate).
		WithArgs(id, brandID, domain.ApplicationPending, domain.ApplicationAccepted).
		WillReturnRows(pgxmock.NewRows(applicationCols).
			AddRow(id, campaignID, creatorID, "X", &rate, domain.ApplicationAccepted, time.Now(), "Monsoon sale"))

	app, err := store.UpdateApplicationStatus(context.Background(), id, brandID, domain.ApplicationPending, domain.ApplicationAccepted)
	require.NoError(t, err)
	require.NotNil(t, app)
	assert.Equal(t, domain.ApplicationAccepted, app.Status)
	assert.Equal(t, "Monsoon sale", app.CampaignTitle)
	require.NoError(t, pool.ExpectationsWereMet())
}

func TestUpdateApplicationStatusNoMatch(t *testing.T) {
	id, ownerID, otherBrandID := uuid.New(), uuid.New(), uuid.New()

	cases := map[string]uuid.UUID{
		// a concurrent decision already moved the row out of pending
		"already decided": ownerID,
		"other brand":     otherBrandID,
	}
	for name, brandID := range cases {
		t.Run(name, func(t *testing.T) {
			pool, store := newMockStore(t)
			pool.ExpectQuery(casUpdate).
				WithArgs(id, brandID, domain.ApplicationPending, domain.ApplicationRejected).
				WillReturnError(pgx.ErrNoRows)

			app, err := store.UpdateApplicationStatus(context.Background(), id, brandID, domain.ApplicationPending, domain.ApplicationRejected)
			require.NoError(t, err)
			assert.Nil(t, app)
			require.NoError(t, pool.ExpectationsWereMet())
		})
	}
}

func TestCreateApplicationDuplicateIsConflict(t *testing.T) {
	pool, store := newMockStore(t)
	app := domain.Application{CampaignID: uuid.New(), CreatorID: uuid.New(), Pitch: "X", Status: domain.ApplicationPending}
	pool.ExpectQuery(regexp.QuoteMeta("INSERT INTO campaign_applications")).
		WithArgs(app.CampaignID, app.CreatorID, app.Pitch, app.ProposedRate, app.Status).
		WillReturnError(&pgconn.PgError{Code: uniqueViolation})

	_, err := store.CreateApplication(context.Background(), app)
	var conflict *domain.ConflictError
	require.ErrorAs(t, err, &conflict)
	require.NoError(t, pool.ExpectationsWereMet())
}

func TestListApplicationsByBrandFiltersOnOwner(t *testing.T) {
	pool, store := newMockStore(t)
	brandID := uuid.New()
	cols := append(append([]string{}, applicationCols...), "full_name")
	pool.ExpectQuery(regexp.QuoteMeta("WHERE c.brand_id = $1")).
		WithArgs(brandID).
		WillReturnRows(pgxmock.NewRows(cols).
			AddRow(uuid.New(), uuid.New(), uuid.New(), "X", (*float64)(nil), domain.ApplicationPending, time.Now(), "Monsoon sale", "Riya"))

	apps, err := store.ListApplicationsByBrand(context.Background(), brandID)
	require.NoError(t, err)
	require.Len(t, apps, 1)
	assert.Equal(t, "Riya", apps[0].CreatorName)
	assert.Nil(t, apps[0].ProposedRate)
	require.NoError(t, pool.ExpectationsWereMet())
}
