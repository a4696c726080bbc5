package content

import (
	"testing"

	"solana-patterns/internal/models"

	"github.com/cockroachdb/errors"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixturePattern(id string, sev models.Severity) models.SecurityPattern {
	return models.SecurityPattern{
		ID:       id,
		Title:    "Title " + id,
		Severity: sev,
		References: []models.Reference{
			{Title: "Docs", URL: "https://example.com/" + id},
		},
	}
}

func fixtureSite() models.Site {
	return models.Site{
		Name: "Test",
		CTA:  models.Link{Title: "Docs", URL: "https://example.com"},
	}
}

func TestLoadBundled(t *testing.T) {
	ds, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 6, ds.Len())
	assert.NotEmpty(t, ds.Fingerprint())
	assert.NotEmpty(t, ds.Site().DeepDive)

	seen := map[string]bool{}
	for _, p := range ds.All() {
		assert.False(t, seen[p.ID], "duplicate id %s", p.ID)
		seen[p.ID] = true

		assert.True(t, p.Severity.Valid())
		assert.Equal(t, "rust", p.Language)
		assert.NotEmpty(t, p.VulnerableCode)
		assert.NotEmpty(t, p.SecureCode)
		assert.NotEmpty(t, p.Prevention)
		assert.NotEmpty(t, p.References)
	}
}

func TestFindRoundTrip(t *testing.T) {
	ds, err := Load()
	require.NoError(t, err)

	for _, p := range ds.All() {
		got, ok := ds.Find(p.ID)
		require.True(t, ok, p.ID)
		assert.Equal(t, p, got)
	}
}

func TestFindMissing(t *testing.T) {
	ds, err := Load()
	require.NoError(t, err)

	assert.NotPanics(t, func() {
		_, ok := ds.Find("nonexistent-id")
		assert.False(t, ok)
	})

	_, ok := ds.Find("")
	assert.False(t, ok)
}

func TestNeighbors(t *testing.T) {
	ds, err := Load()
	require.NoError(t, err)

	all := ds.All()
	for i, p := range all {
		prev, next := ds.Neighbors(p.ID)

		if i == 0 {
			assert.Nil(t, prev)
		} else {
			require.NotNil(t, prev)
			assert.Equal(t, all[i-1].ID, prev.ID)
		}

		if i == len(all)-1 {
			assert.Nil(t, next)
		} else {
			require.NotNil(t, next)
			assert.Equal(t, all[i+1].ID, next.ID)
		}
	}

	prev, next := ds.Neighbors("nonexistent-id")
	assert.Nil(t, prev)
	assert.Nil(t, next)
}

func TestHead(t *testing.T) {
	ds, err := Load()
	require.NoError(t, err)

	head := ds.Head(3)
	require.Len(t, head, 3)
	assert.Equal(t, ds.All()[:3], head)

	assert.Len(t, ds.Head(100), ds.Len())
	assert.Empty(t, ds.Head(-1))
}

func TestDatasetIsImmutable(t *testing.T) {
	ds, err := Load()
	require.NoError(t, err)

	all := ds.All()
	id := all[0].ID
	all[0].Title = "changed"
	all[0].Prevention[0] = "changed"

	got, ok := ds.Find(id)
	require.True(t, ok)
	assert.NotEqual(t, "changed", got.Title)
	assert.NotEqual(t, "changed", got.Prevention[0])

	site := ds.Site()
	require.NotEmpty(t, site.DeepDive)
	require.NotEmpty(t, site.Stats)
	require.NotEmpty(t, site.FooterLinks)
	site.DeepDive[0].Title = "changed"
	site.Stats[0].Value = "changed"
	site.FooterLinks[0].Title = "changed"

	fresh := ds.Site()
	assert.NotEqual(t, "changed", fresh.DeepDive[0].Title)
	assert.NotEqual(t, "changed", fresh.Stats[0].Value)
	assert.NotEqual(t, "changed", fresh.FooterLinks[0].Title)
}

func TestNewRejectsDuplicateIDs(t *testing.T) {
	_, err := New([]models.SecurityPattern{
		fixturePattern("a", models.SeverityHigh),
		fixturePattern("b", models.SeverityHigh),
		fixturePattern("a", models.SeverityMedium),
	}, fixtureSite())

	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrDuplicateID))
}

func TestNewRejectsUnknownSeverity(t *testing.T) {
	for _, sev := range []models.Severity{"low", "CRITICAL", ""} {
		_, err := New([]models.SecurityPattern{fixturePattern("a", sev)}, fixtureSite())
		require.Error(t, err, sev)
		assert.True(t, errors.Is(err, models.ErrInvalidSeverity), sev)
	}
}

func TestNewRejectsEmpty(t *testing.T) {
	_, err := New(nil, fixtureSite())
	assert.True(t, errors.Is(err, ErrEmptyDataset))
}

func TestNewValidatesFields(t *testing.T) {
	p := fixturePattern("a", models.SeverityHigh)
	p.Title = ""
	_, err := New([]models.SecurityPattern{p}, fixtureSite())
	assert.Error(t, err)

	p = fixturePattern("a", models.SeverityHigh)
	p.References[0].URL = "not a url"
	_, err = New([]models.SecurityPattern{p}, fixtureSite())
	assert.Error(t, err)
}

func TestParseUnknownField(t *testing.T) {
	patterns := []byte(`
patterns:
  - id: a
    title: A
    severity: high
    colour: red
`)
	site := []byte("name: Test\ncta:\n  title: Docs\n  url: https://example.com\n")

	_, err := Parse(patterns, site)
	assert.Error(t, err)
}

func TestParseFixture(t *testing.T) {
	patterns := []byte(`
patterns:
  - id: a
    title: A
    severity: medium
  - id: b
    title: B
    severity: critical
    language: typescript
`)
	site := []byte("name: Test\ncta:\n  title: Docs\n  url: https://example.com\n")

	ds, err := Parse(patterns, site)
	require.NoError(t, err)
	assert.Equal(t, 2, ds.Len())

	a, ok := ds.Find("a")
	require.True(t, ok)
	assert.Equal(t, "rust", a.Language)

	b, ok := ds.Find("b")
	require.True(t, ok)
	assert.Equal(t, "typescript", b.Language)
}

func TestFingerprintTracksContent(t *testing.T) {
	site := fixtureSite()
	a, err := New([]models.SecurityPattern{fixturePattern("a", models.SeverityHigh)}, site)
	require.NoError(t, err)
	b, err := New([]models.SecurityPattern{fixturePattern("a", models.SeverityHigh)}, site)
	require.NoError(t, err)
	c, err := New([]models.SecurityPattern{fixturePattern("c", models.SeverityHigh)}, site)
	require.NoError(t, err)

	assert.Equal(t, a.Fingerprint(), b.Fingerprint())
	assert.NotEqual(t, a.Fingerprint(), c.Fingerprint())
}

func TestLookupProperties(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("find returns the record at its position", prop.ForAll(
		func(n int) bool {
			patterns := make([]models.SecurityPattern, n)
			for i := range patterns {
				patterns[i] = fixturePattern(string(rune('a'+i)), models.SeverityMedium)
			}
			ds, err := New(patterns, fixtureSite())
			if err != nil {
				return false
			}
			for i, p := range patterns {
				got, ok := ds.Find(p.ID)
				if !ok || got.ID != p.ID {
					return false
				}
				prev, next := ds.Neighbors(p.ID)
				if (i == 0) != (prev == nil) || (i == n-1) != (next == nil) {
					return false
				}
			}
			return true
		},
		gen.IntRange(1, 26),
	))

	properties.TestingRun(t)
}
