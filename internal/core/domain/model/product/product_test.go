package product_test

import (
	"testing"

	"deliverymanager/internal/core/domain/model/kernel"
	"deliverymanager/internal/core/domain/model/product"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProduct(t *testing.T) {
	t.Run("should create valid product with all valid parameters", func(t *testing.T) {
		p, err := product.NewProduct("ca", "Creme Affinante", kernel.MoneyFromInt(25000), "unit")

		require.NoError(t, err)
		require.NoError(t, p.Validate())
		assert.Equal(t, "CA", p.Code())
		assert.Equal(t, "Creme Affinante", p.Name())
		assert.True(t, kernel.MoneyFromInt(25000).Equals(p.Price()))
		assert.Equal(t, "unit", p.Unit())
	})

	t.Run("should default blank unit", func(t *testing.T) {
		p, err := product.NewProduct("BS", "Base de Savon", kernel.MoneyFromInt(50), "")

		require.NoError(t, err)
		assert.Equal(t, product.DefaultUnit, p.Unit())
	})

	t.Run("should fail with empty code", func(t *testing.T) {
		_, err := product.NewProduct("  ", "Something", kernel.MoneyFromInt(100), "unit")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "code")
	})

	t.Run("should fail with empty name", func(t *testing.T) {
		_, err := product.NewProduct("CA", "", kernel.MoneyFromInt(100), "unit")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "name")
	})

	t.Run("should fail with negative price", func(t *testing.T) {
		_, err := product.NewProduct("CA", "Creme Affinante", kernel.MoneyFromInt(-1), "unit")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "price")
	})

	t.Run("should reject zero-value product on Validate", func(t *testing.T) {
		var p product.Product

		require.ErrorIs(t, p.Validate(), product.ErrProductIsNotConstructed)
	})
}

func TestCatalog(t *testing.T) {
	mustProduct := func(code, name string, price int64) product.Product {
		p, err := product.NewProduct(code, name, kernel.MoneyFromInt(price), "unit")
		require.NoError(t, err)
		return p
	}

	t.Run("should resolve codes case-insensitively", func(t *testing.T) {
		catalog, err := product.NewCatalog([]product.Product{
			mustProduct("CA", "Creme Affinante", 25000),
			mustProduct("TA", "Tisane Affinante", 25000),
		})
		require.NoError(t, err)

		for _, code := range []string{"CA", "ca", " Ca "} {
			p, ok := catalog.Resolve(code)

			assert.True(t, ok, "code %q", code)
			assert.Equal(t, "CA", p.Code())
		}
	})

	t.Run("should miss unknown codes", func(t *testing.T) {
		catalog, err := product.NewCatalog([]product.Product{mustProduct("CA", "Creme Affinante", 25000)})
		require.NoError(t, err)

		_, ok := catalog.Resolve("ZZ")

		assert.False(t, ok)
	})

	t.Run("last duplicate wins", func(t *testing.T) {
		catalog, err := product.NewCatalog([]product.Product{
			mustProduct("CA", "Old Name", 10000),
			mustProduct("CA", "Creme Affinante", 25000),
		})
		require.NoError(t, err)

		p, ok := catalog.Resolve("CA")

		require.True(t, ok)
		assert.Equal(t, "Creme Affinante", p.Name())
		assert.Equal(t, 1, catalog.Len())
	})

	t.Run("should reject products that bypassed the constructor", func(t *testing.T) {
		var rogue product.Product

		_, err := product.NewCatalog([]product.Product{rogue})

		require.ErrorIs(t, err, product.ErrProductIsNotConstructed)
	})

	t.Run("zero value is an empty catalog", func(t *testing.T) {
		var catalog product.Catalog

		_, ok := catalog.Resolve("CA")

		assert.False(t, ok)
		assert.Equal(t, 0, catalog.Len())
		assert.Empty(t, catalog.Codes())
	})

	t.Run("Codes are sorted", func(t *testing.T) {
		catalog, err := product.NewCatalog([]product.Product{
			mustProduct("TA", "Tisane Affinante", 25000),
			mustProduct("BS", "Base de Savon", 50),
			mustProduct("CA", "Creme Affinante", 25000),
		})
		require.NoError(t, err)

		assert.Equal(t, []string{"BS", "CA", "TA"}, catalog.Codes())
	})
}
