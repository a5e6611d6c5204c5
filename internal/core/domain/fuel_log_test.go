package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMileageForFill(t *testing.T) {
	prev := &FuelLog{OdometerReading: 5000, FuelQuantity: 10}

	t.Run("first fill has no mileage", func(t *testing.T) {
		assert.Nil(t, MileageForFill(nil, 5000))
	})

	t.Run("mileage uses previous fill quantity", func(t *testing.T) {
		mileage := MileageForFill(prev, 5150)
		require.NotNil(t, mileage)
		assert.Equal(t, 15.0, *mileage)
	})

	t.Run("rounds to two decimals", func(t *testing.T) {
		prev := &FuelLog{OdometerReading: 5000, FuelQuantity: 3}
		mileage := MileageForFill(prev, 5100)
		require.NotNil(t, mileage)
		assert.Equal(t, 33.33, *mileage)
	})

	t.Run("same reading gives no mileage", func(t *testing.T) {
		assert.Nil(t, MileageForFill(prev, 5000))
	})

	t.Run("reading behind previous gives no mileage", func(t *testing.T) {
		assert.Nil(t, MileageForFill(prev, 4900))
	})

	t.Run("zero previous quantity gives no mileage", func(t *testing.T) {
		prev := &FuelLog{OdometerReading: 5000, FuelQuantity: 0}
		assert.Nil(t, MileageForFill(prev, 5150))
	})
}
