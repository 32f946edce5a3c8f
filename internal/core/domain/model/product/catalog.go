package product

import (
	"sort"
	"strings"
)

// Catalog is an immutable lookup table from uppercase product code to Product.
// It is built in one piece by NewCatalog; a reload builds a fresh Catalog and
// the caller swaps references, so the previous catalog stays valid until the
// new one is fully constructed.
//
// The zero value is an empty catalog: every Resolve misses, which downstream
// code treats as an unresolved code rather than an error.
type Catalog struct {
	products map[string]Product
}

// NewCatalog builds a catalog from a list of products. Every product must have
// been created via NewProduct. Duplicate codes are allowed; the last entry
// wins, matching a file where a later row corrects an earlier one.
func NewCatalog(products []Product) (Catalog, error) {
	index := make(map[string]Product, len(products))
	for _, p := range products {
		if err := p.Validate(); err != nil {
			return Catalog{}, err
		}
		index[p.Code()] = p
	}
	return Catalog{products: index}, nil
}

// Resolve looks up a product by code, case-insensitively.
// Reports false for codes the catalog does not know.
func (c Catalog) Resolve(code string) (Product, bool) {
	p, ok := c.products[strings.ToUpper(strings.TrimSpace(code))]
	return p, ok
}

// Len returns the number of products in the catalog.
func (c Catalog) Len() int {
	return len(c.products)
}

// Codes returns all product codes in sorted order, for deterministic display.
func (c Catalog) Codes() []string {
	codes := make([]string, 0, len(c.products))
	for code := range c.products {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}
