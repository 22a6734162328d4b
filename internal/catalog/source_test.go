package catalog

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oyeadiiiiii/Travel-ChatBOt/internal/config"
	"github.com/oyeadiiiiii/Travel-ChatBOt/internal/storage"
)

const packagesCSV = `type,destination,description,price
Beach,Goa Beach Retreat,"Sun, sand and shacks",25000
Adventure,Manali,Trekking and paragliding in the Himalayas,18000
`

const faqCSV = `question,answer
What Is The Refund Policy?,Full refund up to 7 days before departure.
Do I need a visa?,Domestic packages need no visa.
`

func TestReadPackagesCSV(t *testing.T) {
	packages, err := ReadPackagesCSV(strings.NewReader(packagesCSV))
	require.NoError(t, err)
	require.Len(t, packages, 2)

	assert.Equal(t, "Goa Beach Retreat", packages[0].Destination)
	assert.Equal(t, "Sun, sand and shacks", packages[0].Description)
	assert.Equal(t, 25000, packages[0].Price)
}

func TestReadPackagesCSV_Malformed(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"bad price", "type,destination,description,price\nbeach,goa,sun,cheap\n"},
		{"missing column", "type,destination,price\nbeach,goa,100\n"},
		{"ragged row", "type,destination,description,price\nbeach,goa,sun\n"},
		{"empty input", ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ReadPackagesCSV(strings.NewReader(tc.input))
			assert.Error(t, err)
		})
	}

	_, err := ReadPackagesCSV(strings.NewReader("type,destination,price\nbeach,goa,100\n"))
	assert.True(t, errors.Is(err, ErrMissingColumn))
}

func TestCSVSource_LoadNormalizesCase(t *testing.T) {
	dir := t.TempDir()
	pp := filepath.Join(dir, "packages.csv")
	fp := filepath.Join(dir, "faq.csv")
	require.NoError(t, os.WriteFile(pp, []byte(packagesCSV), 0o644))
	require.NoError(t, os.WriteFile(fp, []byte(faqCSV), 0o644))

	c, err := CSVSource{PackagesPath: pp, FAQsPath: fp}.Load(context.Background())
	require.NoError(t, err)

	packages := c.Packages()
	require.Len(t, packages, 2)
	assert.Equal(t, "beach", packages[0].Category)
	assert.Equal(t, "goa beach retreat", packages[0].Destination)
	assert.Equal(t, "Sun, sand and shacks", packages[0].Description, "description keeps its case")

	faqs := c.FAQs()
	require.Len(t, faqs, 2)
	assert.Equal(t, "what is the refund policy?", faqs[0].Question)
	assert.Equal(t, "Full refund up to 7 days before departure.", faqs[0].Answer)
}

func TestCSVSource_MissingFile(t *testing.T) {
	_, err := CSVSource{PackagesPath: "nope.csv", FAQsPath: "nope.csv"}.Load(context.Background())
	assert.Error(t, err)
}

func TestCatalog_ReturnsCopies(t *testing.T) {
	c := New([]Package{{Category: "beach", Destination: "goa", Price: 10}}, nil)

	packages := c.Packages()
	packages[0].Price = 99

	assert.Equal(t, 10, c.Packages()[0].Price)
}

func TestYAMLSource_Load(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	doc := `
packages:
  - type: Honeymoon
    destination: Maldives Overwater Villa
    description: Private villa with sunset dinners
    price: 150000
faqs:
  - question: Is breakfast included?
    answer: Yes, in all packages.
`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	c, err := YAMLSource{Path: path}.Load(context.Background())
	require.NoError(t, err)

	require.Len(t, c.Packages(), 1)
	assert.Equal(t, "honeymoon", c.Packages()[0].Category)
	assert.Equal(t, "maldives overwater villa", c.Packages()[0].Destination)
	assert.Equal(t, 150000, c.Packages()[0].Price)
	assert.Equal(t, "is breakfast included?", c.FAQs()[0].Question)
}

func TestSeedThenSQLSource_RoundTrip(t *testing.T) {
	ctx := context.Background()
	db, err := storage.OpenAndMigrate(ctx, config.DatabaseConfig{
		Driver: "sqlite",
		SQLite: config.SQLiteConfig{Path: filepath.Join(t.TempDir(), "catalog.db")},
	})
	require.NoError(t, err)
	defer db.Close()

	packages, err := ReadPackagesCSV(strings.NewReader(packagesCSV))
	require.NoError(t, err)
	faqs, err := ReadFAQsCSV(strings.NewReader(faqCSV))
	require.NoError(t, err)
	src := New(packages, faqs)

	last := map[string]int{}
	calls := 0
	require.NoError(t, Seed(ctx, db, src, func(table string, done, total int) {
		calls++
		assert.Equal(t, last[table]+1, done)
		last[table] = done
		assert.Equal(t, 2, total)
	}))
	assert.Equal(t, 4, calls)
	assert.Equal(t, map[string]int{"packages": 2, "faqs": 2}, last)

	// reseeding replaces rows rather than duplicating them
	require.NoError(t, Seed(ctx, db, src, nil))

	loaded, err := SQLSource{DB: db}.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, src.Packages(), loaded.Packages())
	assert.Equal(t, src.FAQs(), loaded.FAQs())
}
