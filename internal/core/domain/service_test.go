package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleCatalog() []Service {
	return []Service{
		{ID: "1", Name: "Haircut", Description: "Wash, cut and style", BasePriceCents: 25000},
		{ID: "2", Name: "Manicure", BasePriceCents: 18000},
		{ID: "3", Name: "Beard Trim", Description: "Includes hot towel"},
	}
}

func TestService_Matches_Name(t *testing.T) {
	svc := Service{ID: "1", Name: "Haircut"}

	assert.True(t, svc.Matches("hair"))
	assert.True(t, svc.Matches("HAIR"))
	assert.True(t, svc.Matches("cut"))
	assert.False(t, svc.Matches("manicure"))
}

func TestService_Matches_Description(t *testing.T) {
	svc := Service{ID: "1", Name: "Haircut", Description: "Wash, cut and style"}

	assert.True(t, svc.Matches("wash"))
	assert.True(t, svc.Matches("Style"))
}

func TestService_Matches_AbsentDescription(t *testing.T) {
	svc := Service{ID: "2", Name: "Manicure"}

	// Missing description is not an error, it just never matches.
	assert.False(t, svc.Matches("wash"))
	assert.True(t, svc.Matches("mani"))
}

func TestService_Matches_EmptyQuery(t *testing.T) {
	svc := Service{ID: "2", Name: "Manicure"}

	assert.True(t, svc.Matches(""))
}

func TestService_HasPrice(t *testing.T) {
	assert.True(t, Service{BasePriceCents: 25000}.HasPrice())
	assert.False(t, Service{}.HasPrice())
}

func TestService_Validate(t *testing.T) {
	valid := Service{ID: "1", Name: "Haircut"}
	assert.NoError(t, valid.Validate())

	missingID := Service{Name: "Haircut"}
	assert.ErrorIs(t, missingID.Validate(), ErrInvalidInput)

	blankName := Service{ID: "1", Name: "   "}
	assert.ErrorIs(t, blankName.Validate(), ErrInvalidInput)

	negativePrice := Service{ID: "1", Name: "Haircut", BasePriceCents: -1}
	assert.ErrorIs(t, negativePrice.Validate(), ErrInvalidInput)
}

func TestFilterServices_ByName(t *testing.T) {
	filtered := FilterServices(sampleCatalog(), "hair")

	require.Len(t, filtered, 1)
	assert.Equal(t, "1", filtered[0].ID)
}

func TestFilterServices_ByDescription(t *testing.T) {
	filtered := FilterServices(sampleCatalog(), "hot towel")

	require.Len(t, filtered, 1)
	assert.Equal(t, "3", filtered[0].ID)
}

func TestFilterServices_CaseInsensitive(t *testing.T) {
	lower := FilterServices(sampleCatalog(), "haircut")
	upper := FilterServices(sampleCatalog(), "HAIRCUT")

	assert.Equal(t, lower, upper)
}

func TestFilterServices_EmptyQueryReturnsAll(t *testing.T) {
	catalog := sampleCatalog()

	filtered := FilterServices(catalog, "")

	assert.Equal(t, catalog, filtered)
}

func TestFilterServices_WhitespaceIsSignificant(t *testing.T) {
	// The query matches as typed: padding is part of the substring.
	filtered := FilterServices(sampleCatalog(), "  hair  ")
	assert.Empty(t, filtered)

	filtered = FilterServices(sampleCatalog(), "hot towel")
	require.Len(t, filtered, 1)
	assert.Equal(t, "3", filtered[0].ID)
}

func TestFilterServices_Idempotent(t *testing.T) {
	catalog := sampleCatalog()

	first := FilterServices(catalog, "cut")
	second := FilterServices(catalog, "cut")

	assert.Equal(t, first, second)
}

func TestFilterServices_NoMatches(t *testing.T) {
	filtered := FilterServices(sampleCatalog(), "massage")

	assert.Empty(t, filtered)
}

func TestFilterServices_PreservesOrder(t *testing.T) {
	filtered := FilterServices(sampleCatalog(), "i")

	require.Len(t, filtered, 3)
	assert.Equal(t, "1", filtered[0].ID)
	assert.Equal(t, "2", filtered[1].ID)
	assert.Equal(t, "3", filtered[2].ID)
}
