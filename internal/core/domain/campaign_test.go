package domain

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCampaign(t *testing.T) {
	brand := uuid.New()
	deadline := time.Date(2026, 12, 1, 0, 0, 0, 0, time.UTC)
	c, err := NewCampaign(brand, CampaignDraft{
		Title:       " Summer drop ",
		Description: "Reels for the summer collection",
		Budget:      5000,
		Category:    "fashion",
		Deadline:    deadline,
	})
	require.NoError(t, err)
	assert.Equal(t, brand, c.BrandID)
	assert.Equal(t, "Summer drop", c.Title)
	assert.Equal(t, CampaignActive, c.Status)
	assert.True(t, c.IsActive())
}

func TestNewCampaignValidation(t *testing.T) {
	valid := CampaignDraft{Title: "t", Description: "d", Category: "c", Deadline: time.Now()}

	_, err := NewCampaign(uuid.Nil, valid)
	assert.Error(t, err)

	neg := valid
	neg.Budget = -10
	_, err = NewCampaign(uuid.New(), neg)
	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "budget", vErr.Field)

	noDeadline := valid
	noDeadline.Deadline = time.Time{}
	_, err = NewCampaign(uuid.New(), noDeadline)
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "deadline", vErr.Field)
}
