package catalog

import (
	"context"
	"database/sql"
	"fmt"
)

// SeedProgress is called after each row is written, with counts for that table.
type SeedProgress func(table string, done, total int)

// Seed replaces the packages and faqs tables with the contents of c in one transaction.
func Seed(ctx context.Context, db *sql.DB, c *Catalog, progress SeedProgress) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin seed: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM packages`); err != nil {
		return fmt.Errorf("clear packages: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM faqs`); err != nil {
		return fmt.Errorf("clear faqs: %w", err)
	}

	report := func(table string, done, total int) {
		if progress != nil {
			progress(table, done, total)
		}
	}

	for i, p := range c.packages {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO packages (position, type, destination, description, price) VALUES ($1, $2, $3, $4, $5)`,
			i, p.Category, p.Destination, p.Description, p.Price,
		); err != nil {
			return fmt.Errorf("insert package %d: %w", i, err)
		}
		report("packages", i+1, len(c.packages))
	}

	for i, f := range c.faqs {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO faqs (position, question, answer) VALUES ($1, $2, $3)`,
			i, f.Question, f.Answer,
		); err != nil {
			return fmt.Errorf("insert faq %d: %w", i, err)
		}
		report("faqs", i+1, len(c.faqs))
	}

	return tx.Commit()
}
