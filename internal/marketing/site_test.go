package marketing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadEmbeddedContent(t *testing.T) {
	site, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "Influence Nexus", site.Name)
	require.Len(t, site.Navigation, 4)
	assert.Equal(t, "/events", site.Navigation[3].Href)
	require.Len(t, site.Hero.Stats, 3)
	assert.Equal(t, "1,00,000+", site.Hero.Stats[0].Value)
	assert.Len(t, site.Services, 8)
	assert.Len(t, site.WhyUs.Reasons, 6)
	assert.Equal(t, "/auth?type=brand", site.CallToAction.Actions[0].Href)
	assert.Equal(t, "brand@influencenexus.in", site.Footer.Contact.Email)
}

func TestParseRejectsEmpty(t *testing.T) {
	_, err := Parse([]byte("tagline: nothing else"))
	require.Error(t, err)

	_, err = Parse([]byte(":\n  - ["))
	require.Error(t, err)
}
