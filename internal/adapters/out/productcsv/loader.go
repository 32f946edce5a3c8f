// Package productcsv loads the product catalog from its delimited flat file.
//
// The file is a small CSV with columns Code, Name, Price, Unit. A header row
// is optional and detected by its first cell. Bad rows are skipped with a
// recorded warning rather than failing the load; only a missing or unreadable
// file is fatal.
package productcsv

import (
	"encoding/csv"
	"fmt"
	"os"
	"strings"

	"deliverymanager/internal/core/domain/model/kernel"
	"deliverymanager/internal/core/domain/model/product"

	"go.uber.org/zap"
)

// CatalogLoadError indicates the catalog file could not be read at all.
// The previously loaded catalog, if any, remains valid; the caller may retry
// with a corrected path.
type CatalogLoadError struct {
	Path  string
	Cause error
}

func (e *CatalogLoadError) Error() string {
	return fmt.Sprintf("cannot load product catalog %q: %s", e.Path, e.Cause)
}

func (e *CatalogLoadError) Unwrap() error {
	return e.Cause
}

// RowWarning records one skipped catalog row and why it was skipped.
type RowWarning struct {
	// Row is the 1-based line number in the file, header included.
	Row    int
	Reason string
}

// Loader reads product catalogs from CSV files.
type Loader struct {
	log *zap.Logger
}

// NewLoader creates a catalog loader that reports skipped rows to the given
// logger.
func NewLoader(log *zap.Logger) *Loader {
	return &Loader{log: log}
}

// headerCells are the first-cell values that mark the first row as a header.
var headerCells = map[string]bool{
	"code":    true,
	"product": true,
	"sku":     true,
}

// Load reads the catalog file into a fresh Catalog. Rows that cannot become a
// product (too few columns, blank code or name, non-numeric or negative
// price) are skipped, logged, and returned as warnings; the remaining rows
// still load. Returns a *CatalogLoadError when the file is missing or
// unreadable.
//
// The returned catalog is built in one piece, so a caller reloading can keep
// using its current catalog until Load returns successfully and then swap.
func (l *Loader) Load(path string) (product.Catalog, []RowWarning, error) {
	f, err := os.Open(path)
	if err != nil {
		return product.Catalog{}, nil, &CatalogLoadError{Path: path, Cause: err}
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1
	rows, err := reader.ReadAll()
	if err != nil {
		return product.Catalog{}, nil, &CatalogLoadError{Path: path, Cause: err}
	}

	start := 0
	if len(rows) > 0 && len(rows[0]) > 0 && headerCells[strings.ToLower(strings.TrimSpace(rows[0][0]))] {
		start = 1
	}

	var products []product.Product
	var warnings []RowWarning
	warn := func(row int, reason string) {
		warnings = append(warnings, RowWarning{Row: row, Reason: reason})
		l.log.Warn("skipping product row",
			zap.String("path", path),
			zap.Int("row", row),
			zap.String("reason", reason))
	}

	for i := start; i < len(rows); i++ {
		row := rows[i]
		rowNumber := i + 1

		if len(row) < 3 {
			warn(rowNumber, "fewer than 3 columns")
			continue
		}

		price, err := kernel.ParseMoney(row[2])
		if err != nil {
			warn(rowNumber, fmt.Sprintf("price %q is not numeric", strings.TrimSpace(row[2])))
			continue
		}

		unit := ""
		if len(row) > 3 {
			unit = row[3]
		}

		p, err := product.NewProduct(row[0], row[1], price, unit)
		if err != nil {
			warn(rowNumber, err.Error())
			continue
		}
		products = append(products, p)
	}

	catalog, err := product.NewCatalog(products)
	if err != nil {
		return product.Catalog{}, warnings, &CatalogLoadError{Path: path, Cause: err}
	}
	return catalog, warnings, nil
}

// WriteSample seeds a starter catalog file with a header row and the given
// products. Used on first run when no catalog file exists yet.
func (l *Loader) WriteSample(path string, products []product.Product) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("cannot create sample catalog %q: %w", path, err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	if err := writer.Write([]string{"Code", "Name", "Price", "Unit"}); err != nil {
		return fmt.Errorf("cannot write sample catalog %q: %w", path, err)
	}
	for _, p := range products {
		row := []string{p.Code(), p.Name(), p.Price().Decimal().String(), p.Unit()}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("cannot write sample catalog %q: %w", path, err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("cannot write sample catalog %q: %w", path, err)
	}
	return nil
}
