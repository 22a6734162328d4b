// Package catalog holds the read-only travel package and FAQ data loaded at startup.
package catalog

import "strings"

// Category is a coarse package type.
type Category string

const (
	CategoryBeach     Category = "beach"
	CategoryAdventure Category = "adventure"
	CategoryHoneymoon Category = "honeymoon"
	CategoryFamily    Category = "family"
	CategoryBudget    Category = "budget"
)

// Categories is the fixed scan order used when extracting a category hint.
var Categories = []Category{
	CategoryBeach,
	CategoryAdventure,
	CategoryHoneymoon,
	CategoryFamily,
	CategoryBudget,
}

// Package is one bookable travel package. Category and Destination are lowercased on load.
type Package struct {
	Category    string `yaml:"type"`
	Destination string `yaml:"destination"`
	Description string `yaml:"description"`
	Price       int    `yaml:"price"`
}

// Composite is the text a package is ranked by: category, destination, description.
func (p Package) Composite() string {
	return p.Category + " " + p.Destination + " " + p.Description
}

// FAQEntry is one question and its answer. Question is lowercased on load.
type FAQEntry struct {
	Question string `yaml:"question"`
	Answer   string `yaml:"answer"`
}

// Catalog is the immutable set of packages and FAQs for a process.
type Catalog struct {
	packages []Package
	faqs     []FAQEntry
}

// New builds a catalog, normalizing the case of the matched columns.
func New(packages []Package, faqs []FAQEntry) *Catalog {
	c := &Catalog{
		packages: make([]Package, len(packages)),
		faqs:     make([]FAQEntry, len(faqs)),
	}
	for i, p := range packages {
		p.Category = strings.ToLower(p.Category)
		p.Destination = strings.ToLower(p.Destination)
		c.packages[i] = p
	}
	for i, f := range faqs {
		f.Question = strings.ToLower(f.Question)
		c.faqs[i] = f
	}
	return c
}

// Packages returns a copy of the packages in catalog order.
func (c *Catalog) Packages() []Package {
	out := make([]Package, len(c.packages))
	copy(out, c.packages)
	return out
}

// FAQs returns a copy of the FAQ entries in catalog order.
func (c *Catalog) FAQs() []FAQEntry {
	out := make([]FAQEntry, len(c.faqs))
	copy(out, c.faqs)
	return out
}
