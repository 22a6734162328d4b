package recommend

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oyeadiiiiii/Travel-ChatBOt/internal/catalog"
)

func testPackages() []catalog.Package {
	return catalog.New([]catalog.Package{
		{Category: "Beach", Destination: "Goa Beach Retreat", Description: "Sun, sand and shacks", Price: 25000},
		{Category: "Adventure", Destination: "Manali", Description: "Trekking and paragliding", Price: 18000},
		{Category: "Beach", Destination: "Andaman Islands", Description: "Budget friendly scuba and white sand", Price: 40000},
		{Category: "Honeymoon", Destination: "Maldives", Description: "Overwater villa by the beach", Price: 150000},
		{Category: "Family", Destination: "Ooty", Description: "Toy train and tea gardens", Price: 15000},
		{Category: "Budget", Destination: "Rishikesh", Description: "Hostels and river rafting", Price: 8000},
	}, nil).Packages()
}

func TestExtractCategory(t *testing.T) {
	tests := []struct {
		query string
		want  catalog.Category
		ok    bool
	}{
		{"cheap BEACH getaway", catalog.CategoryBeach, true},
		{"adventure", catalog.CategoryAdventure, true},
		// scan order decides, not position in the query
		{"budget beach trip", catalog.CategoryBeach, true},
		{"family or honeymoon", catalog.CategoryHoneymoon, true},
		{"somewhere warm", "", false},
	}

	for _, tc := range tests {
		t.Run(tc.query, func(t *testing.T) {
			got, ok := ExtractCategory(tc.query)
			assert.Equal(t, tc.ok, ok)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestRecommend_CategoryFilterIsStrict(t *testing.T) {
	r := NewRecommender(testPackages(), nil)

	got := r.Recommend("cheap beach getaway", 3)
	require.NotEmpty(t, got)
	for _, p := range got {
		assert.Contains(t, p.Category, "beach")
	}
	// the honeymoon row mentions "beach" only in its description
	assert.Len(t, got, 2)
}

func TestRecommend_NoHintUsesWholeCatalog(t *testing.T) {
	r := NewRecommender(testPackages(), nil)

	got := r.Recommend("somewhere with mountains and trekking", 3)
	assert.Len(t, got, 3)

	got = r.Recommend("anything", 10)
	assert.Len(t, got, 6)
}

func TestRecommend_RankedByRelevance(t *testing.T) {
	r := NewRecommender(testPackages(), nil)

	got := r.Recommend("manali adventure trekking and paragliding", 1)
	require.Len(t, got, 1)
	assert.Equal(t, "manali", got[0].Destination)
}

func TestRecommend_EmptyCategory(t *testing.T) {
	r := NewRecommender([]catalog.Package{{Category: "adventure", Destination: "manali", Price: 1}}, nil)

	got := r.Recommend("family holiday", 3)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestRecommend_DefaultTopK(t *testing.T) {
	r := NewRecommender(testPackages(), nil)

	assert.Len(t, r.Recommend("trip", 0), DefaultTopK)
}
