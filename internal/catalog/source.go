package catalog

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/oyeadiiiiii/Travel-ChatBOt/internal/storage"
)

// ErrMissingColumn is returned when a tabular source lacks a required column.
var ErrMissingColumn = errors.New("missing column")

// Source loads a catalog once at startup.
type Source interface {
	Load(ctx context.Context) (*Catalog, error)
}

// CSVSource reads packages.csv (type,destination,description,price) and faq.csv (question,answer).
type CSVSource struct {
	PackagesPath string
	FAQsPath     string
}

// Load implements Source.
func (s CSVSource) Load(ctx context.Context) (*Catalog, error) {
	pf, err := os.Open(s.PackagesPath)
	if err != nil {
		return nil, fmt.Errorf("open packages: %w", err)
	}
	defer pf.Close()

	packages, err := ReadPackagesCSV(pf)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", s.PackagesPath, err)
	}

	ff, err := os.Open(s.FAQsPath)
	if err != nil {
		return nil, fmt.Errorf("open faqs: %w", err)
	}
	defer ff.Close()

	faqs, err := ReadFAQsCSV(ff)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", s.FAQsPath, err)
	}

	return New(packages, faqs), nil
}

// ReadPackagesCSV parses package rows addressed by header name.
func ReadPackagesCSV(r io.Reader) ([]Package, error) {
	rows, cols, err := readTable(r, "type", "destination", "description", "price")
	if err != nil {
		return nil, err
	}

	packages := make([]Package, 0, len(rows))
	for i, row := range rows {
		price, err := strconv.Atoi(strings.TrimSpace(row[cols["price"]]))
		if err != nil {
			return nil, fmt.Errorf("row %d: invalid price %q: %w", i+2, row[cols["price"]], err)
		}
		packages = append(packages, Package{
			Category:    row[cols["type"]],
			Destination: row[cols["destination"]],
			Description: row[cols["description"]],
			Price:       price,
		})
	}
	return packages, nil
}

// ReadFAQsCSV parses FAQ rows addressed by header name.
func ReadFAQsCSV(r io.Reader) ([]FAQEntry, error) {
	rows, cols, err := readTable(r, "question", "answer")
	if err != nil {
		return nil, err
	}

	faqs := make([]FAQEntry, 0, len(rows))
	for _, row := range rows {
		faqs = append(faqs, FAQEntry{
			Question: row[cols["question"]],
			Answer:   row[cols["answer"]],
		})
	}
	return faqs, nil
}

func readTable(r io.Reader, required ...string) ([][]string, map[string]int, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, nil, fmt.Errorf("read header: %w", err)
	}

	cols := make(map[string]int, len(header))
	for i, h := range header {
		cols[strings.ToLower(strings.TrimSpace(h))] = i
	}
	for _, name := range required {
		if _, ok := cols[name]; !ok {
			return nil, nil, fmt.Errorf("%w: %s", ErrMissingColumn, name)
		}
	}

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("read rows: %w", err)
	}
	return rows, cols, nil
}

// YAMLSource reads one document with packages and faqs lists.
type YAMLSource struct {
	Path string
}

type yamlCatalog struct {
	Packages []Package  `yaml:"packages"`
	FAQs     []FAQEntry `yaml:"faqs"`
}

// Load implements Source.
func (s YAMLSource) Load(ctx context.Context) (*Catalog, error) {
	data, err := os.ReadFile(s.Path)
	if err != nil {
		return nil, fmt.Errorf("read catalog file: %w", err)
	}

	var doc yamlCatalog
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse catalog file: %w", err)
	}

	return New(doc.Packages, doc.FAQs), nil
}

// SQLSource reads the packages and faqs tables in position order.
type SQLSource struct {
	DB storage.DB
}

// Load implements Source.
func (s SQLSource) Load(ctx context.Context) (*Catalog, error) {
	rows, err := s.DB.QueryContext(ctx,
		`SELECT type, destination, description, price FROM packages ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("query packages: %w", err)
	}
	defer rows.Close()

	var packages []Package
	for rows.Next() {
		var p Package
		if err := rows.Scan(&p.Category, &p.Destination, &p.Description, &p.Price); err != nil {
			return nil, fmt.Errorf("scan package: %w", err)
		}
		packages = append(packages, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	faqRows, err := s.DB.QueryContext(ctx, `SELECT question, answer FROM faqs ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("query faqs: %w", err)
	}
	defer faqRows.Close()

	var faqs []FAQEntry
	for faqRows.Next() {
		var f FAQEntry
		if err := faqRows.Scan(&f.Question, &f.Answer); err != nil {
			return nil, fmt.Errorf("scan faq: %w", err)
		}
		faqs = append(faqs, f)
	}
	if err := faqRows.Err(); err != nil {
		return nil, err
	}

	return New(packages, faqs), nil
}
