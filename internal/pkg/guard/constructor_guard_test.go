package guard_test

import (
	"errors"
	"testing"

	"deliverymanager/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConstructorGuard(t *testing.T) {
	t.Run("creates_properly_constructed_guard", func(t *testing.T) {
		// When
		g := guard.NewConstructorGuard()

		// Then
		customError := errors.New("test object not constructed")
		require.NoError(t, g.Validate(customError))
		require.NoError(t, g.Validate(nil))
	})
}

func TestConstructorGuard_Validate(t *testing.T) {
	t.Run("properly_constructed_guard_returns_nil", func(t *testing.T) {
		// Given
		g := guard.NewConstructorGuard()

		// When
		err := g.Validate(errors.New("not constructed"))

		// Then
		require.NoError(t, err)
	})

	t.Run("zero_value_guard_returns_custom_error", func(t *testing.T) {
		// Given
		var g guard.ConstructorGuard // zero value
		expectedError := errors.New("entity not constructed")

		// When
		err := g.Validate(expectedError)

		// Then
		require.Error(t, err)
		assert.Equal(t, expectedError, err)
	})

	t.Run("zero_value_guard_returns_default_error_when_nil", func(t *testing.T) {
		// Given
		var g guard.ConstructorGuard // zero value

		// When
		err := g.Validate(nil)

		// Then
		require.Error(t, err)
		assert.Equal(t, guard.ErrDefaultConstructorGuard, err)
	})
}

// TestConstructorGuardUsageExample demonstrates how ConstructorGuard should be
// used in a domain object to enforce constructor usage.
func TestConstructorGuardUsageExample(t *testing.T) {
	type line struct {
		productCode string
		quantity    int
		guard       guard.ConstructorGuard
	}

	var errLineNotConstructed = errors.New("line must be created via newLine")

	newLine := func(code string, quantity int) (line, error) {
		if code == "" {
			return line{}, errors.New("product code is required")
		}
		if quantity < 1 {
			return line{}, errors.New("quantity must be at least 1")
		}
		return line{
			productCode: code,
			quantity:    quantity,
			guard:       guard.NewConstructorGuard(),
		}, nil
	}

	validateLine := func(l line) error {
		return l.guard.Validate(errLineNotConstructed)
	}

	t.Run("valid_construction_through_constructor", func(t *testing.T) {
		// When
		l, err := newLine("CA", 2)

		// Then
		require.NoError(t, err)
		require.NoError(t, validateLine(l))
		assert.Equal(t, "CA", l.productCode)
		assert.Equal(t, 2, l.quantity)
	})

	t.Run("zero_value_construction_validation", func(t *testing.T) {
		// Given
		var l line // zero value

		// When
		err := validateLine(l)

		// Then
		require.Error(t, err)
		assert.Equal(t, errLineNotConstructed, err)
	})
}
