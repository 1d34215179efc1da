package ordering

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUnitQuantity(t *testing.T) {
	tests := []struct {
		name    string
		value   int
		wantErr bool
	}{
		{name: "lower bound", value: 1},
		{name: "upper bound", value: 1000},
		{name: "typical", value: 2},
		{name: "zero", value: 0, wantErr: true},
		{name: "above upper bound", value: 1001, wantErr: true},
		{name: "negative", value: -1, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q, err := NewUnitQuantity(tt.value)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.value, q.Value())
		})
	}
}

func TestNewKilogramQuantity(t *testing.T) {
	tests := []struct {
		name    string
		value   float64
		wantErr bool
	}{
		{name: "lower bound", value: 0.05},
		{name: "upper bound", value: 100.0},
		{name: "typical", value: 2.5},
		{name: "below lower bound", value: 0.04, wantErr: true},
		{name: "above upper bound", value: 100.01, wantErr: true},
		{name: "zero", value: 0, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q, err := NewKilogramQuantity(decimal.NewFromFloat(tt.value))
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.True(t, q.Value().Equal(decimal.NewFromFloat(tt.value)))
		})
	}
}

func TestNewOrderQuantity_DispatchesOnProductCode(t *testing.T) {
	widget := MustParseProductCode("W1234")
	gizmo := MustParseProductCode("G123")

	t.Run("widget gets unit quantity", func(t *testing.T) {
		q, err := NewOrderQuantity(widget, decimal.NewFromInt(2))
		require.NoError(t, err)
		assert.IsType(t, UnitQuantity{}, q)
	})

	t.Run("gizmo gets kilogram quantity", func(t *testing.T) {
		q, err := NewOrderQuantity(gizmo, decimal.NewFromFloat(2.5))
		require.NoError(t, err)
		assert.IsType(t, KilogramQuantity{}, q)
	})

	t.Run("fractional widget quantity rejected", func(t *testing.T) {
		_, err := NewOrderQuantity(widget, decimal.NewFromFloat(1.5))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "whole number")
	})

	t.Run("widget quantity out of range rejected", func(t *testing.T) {
		_, err := NewOrderQuantity(widget, decimal.NewFromInt(1001))
		require.Error(t, err)
	})

	t.Run("gizmo quantity out of range rejected", func(t *testing.T) {
		_, err := NewOrderQuantity(gizmo, decimal.NewFromFloat(100.5))
		require.Error(t, err)
	})
}
