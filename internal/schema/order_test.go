package schema

import (
	"testing"

	"github.com/damage-control/damage-service/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseInsertOrder(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		ins, err := ParseInsertOrder(map[string]any{
			"trackingNumber": "TRK-1",
			"orderNumber":    "ORD-1",
			"produto":        "Glow",
			"carrier":        "USPS",
		})
		require.NoError(t, err)
		assert.Equal(t, "TRK-1", ins.TrackingNumber)
		assert.Equal(t, model.Produto("Glow"), ins.Produto)
	})

	t.Run("missing fields", func(t *testing.T) {
		_, err := ParseInsertOrder(map[string]any{"produto": "Glow"})
		require.Error(t, err)
		var fe FieldErrors
		require.ErrorAs(t, err, &fe)
		assert.Contains(t, fe, "trackingNumber is required")
		assert.Contains(t, fe, "orderNumber is required")
		assert.Contains(t, fe, "carrier is required")
	})

	t.Run("unknown enum", func(t *testing.T) {
		_, err := ParseInsertOrder(map[string]any{
			"trackingNumber": "TRK-1",
			"orderNumber":    "ORD-1",
			"produto":        "Sabonete",
			"carrier":        "USPS",
		})
		require.Error(t, err)
		assert.Contains(t, err.Error(), `unknown produto "Sabonete"`)
	})

	t.Run("not an object", func(t *testing.T) {
		_, err := ParseInsertOrder([]any{})
		require.Error(t, err)
	})

	t.Run("client dateImported ignored", func(t *testing.T) {
		ins, err := ParseInsertOrder(map[string]any{
			"trackingNumber": "TRK-1",
			"orderNumber":    "ORD-1",
			"produto":        "Glow",
			"carrier":        "USPS",
			"dateImported":   "2020-01-01T00:00:00Z",
		})
		require.NoError(t, err)
		assert.Equal(t, "ORD-1", ins.OrderNumber)
	})
}
