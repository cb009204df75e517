package catalog_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"billforge/internal/catalog"
)

func TestNormalize(t *testing.T) {
	assert.Equal(t, "4404", catalog.Normalize(" 4404 "))
	assert.Equal(t, "4404", catalog.Normalize("4404"))
	assert.Equal(t, "ABC123", catalog.Normalize("abc123"))
	assert.Equal(t, "", catalog.Normalize("   "))
}

func TestLookup_Get_KnownCode(t *testing.T) {
	lookup := catalog.NewLookup(catalog.Default())

	entry, ok := lookup.Get("4404")
	assert.True(t, ok)
	assert.Equal(t, 6.0, entry.CGSTRate)
	assert.Equal(t, 6.0, entry.SGSTRate)
	assert.Equal(t, 12.0, entry.IGSTRate)
	assert.Contains(t, entry.Description, "Casuarina")
}

func TestLookup_Get_NormalizesInput(t *testing.T) {
	lookup := catalog.NewLookup(catalog.Default())

	entry, ok := lookup.Get("  4404  ")
	assert.True(t, ok)
	assert.Equal(t, "4404", entry.Code)
}

func TestLookup_Get_UnknownCode(t *testing.T) {
	lookup := catalog.NewLookup(catalog.Default())

	entry, ok := lookup.Get("9999")
	assert.False(t, ok)
	assert.Equal(t, catalog.Entry{}, entry)
}

func TestLookup_LaterDuplicateWins(t *testing.T) {
	entries := append(catalog.Default(), catalog.Entry{
		Code: "4404", Description: "Override", CGSTRate: 9, SGSTRate: 9, IGSTRate: 18,
	})
	lookup := catalog.NewLookup(entries)

	entry, ok := lookup.Get("4404")
	assert.True(t, ok)
	assert.Equal(t, "Override", entry.Description)
	assert.Equal(t, 18.0, entry.IGSTRate)
	assert.Equal(t, len(catalog.Default()), lookup.Len())
}

func TestLookup_Search_CodePrefix(t *testing.T) {
	lookup := catalog.NewLookup(catalog.Default())

	results := lookup.Search("44")
	assert.Len(t, results, 6)
	for _, e := range results {
		assert.Equal(t, "44", e.Code[:2])
	}
}

func TestLookup_Search_Description(t *testing.T) {
	lookup := catalog.NewLookup(catalog.Default())

	results := lookup.Search("bamboo")
	assert.Len(t, results, 1)
	assert.Equal(t, "4409", results[0].Code)
}

func TestLookup_Search_EmptyReturnsAll(t *testing.T) {
	lookup := catalog.NewLookup(catalog.Default())

	results := lookup.Search("   ")
	assert.Len(t, results, lookup.Len())
}

func TestLookup_All_SortedByCode(t *testing.T) {
	lookup := catalog.NewLookup(catalog.Default())

	all := lookup.All()
	assert.Len(t, all, 8)
	for i := 1; i < len(all); i++ {
		assert.Less(t, all[i-1].Code, all[i].Code)
	}
}

func TestDefault_RatesConsistent(t *testing.T) {
	for _, e := range catalog.Default() {
		assert.Equal(t, e.IGSTRate, e.CGSTRate+e.SGSTRate, "code %s", e.Code)
	}
}
