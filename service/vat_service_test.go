package service

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gcc-tools/domain"
)

func TestCalculateVAT_Add(t *testing.T) {
	service := NewVATService()

	result, err := service.CalculateVAT(domain.DefaultVATInput())
	require.NoError(t, err)

	assert.Equal(t, 1000.0, result.BaseAmount)
	assert.Equal(t, 150.0, result.VATAmount)
	assert.Equal(t, 1150.0, result.TotalAmount)
	assert.Equal(t, "1,150.00 SAR", lineValue(result.Lines, "total_amount"))
}

func TestCalculateVAT_Remove(t *testing.T) {
	service := NewVATService()

	result, err := service.CalculateVAT(domain.VATInput{
		Amount:      1150,
		Quantity:    1,
		RatePercent: 15,
		Direction:   domain.VATRemove,
	})
	require.NoError(t, err)

	assert.InDelta(t, 1000, result.BaseAmount, 1e-9)
	assert.InDelta(t, 150, result.VATAmount, 1e-9)
	assert.Equal(t, 1150.0, result.TotalAmount)
}

func TestCalculateVAT_RoundTrip(t *testing.T) {
	service := NewVATService()

	for _, rate := range SupportedVATRates {
		for _, amt := range []float64{0, 1, 99.99, 1000, 123456.78} {
			added, err := service.CalculateVAT(domain.VATInput{
				Amount: domain.Number(amt), Quantity: 1, RatePercent: domain.Number(rate), Direction: domain.VATAdd,
			})
			require.NoError(t, err)

			removed, err := service.CalculateVAT(domain.VATInput{
				Amount: domain.Number(added.TotalAmount), Quantity: 1, RatePercent: domain.Number(rate), Direction: domain.VATRemove,
			})
			require.NoError(t, err)

			assert.InDelta(t, amt, removed.BaseAmount, 1e-6, "rate %v amount %v", rate, amt)
			assert.InDelta(t, added.VATAmount, removed.VATAmount, 1e-6)
		}
	}
}

func TestCalculateVAT_Quantity(t *testing.T) {
	service := NewVATService()

	result, err := service.CalculateVAT(domain.VATInput{
		Amount: 200, Quantity: 3, RatePercent: 5, Direction: domain.VATAdd,
	})
	require.NoError(t, err)

	assert.Equal(t, 600.0, result.BaseAmount)
	assert.Equal(t, 30.0, result.VATAmount)
	assert.Equal(t, 200.0, result.UnitBaseAmount)
	assert.Equal(t, 10.0, result.UnitVATAmount)
}

func TestCalculateVAT_ZeroQuantity(t *testing.T) {
	service := NewVATService()

	result, err := service.CalculateVAT(domain.VATInput{Amount: 200, Quantity: 0, RatePercent: 15})
	require.NoError(t, err)

	assert.Equal(t, 0.0, result.TotalAmount)
	assert.Equal(t, 0.0, result.UnitBaseAmount)
}

func TestCalculateVAT_Invalid(t *testing.T) {
	service := NewVATService()

	_, err := service.CalculateVAT(domain.VATInput{Amount: 100, Quantity: 1, RatePercent: 10})
	assert.True(t, errors.Is(err, domain.ErrUnsupportedVATRate))

	_, err = service.CalculateVAT(domain.VATInput{Amount: 100, Quantity: 1, RatePercent: 15, Direction: "double"})
	assert.True(t, errors.Is(err, domain.ErrInvalidDirection))
}

func lineValue(lines []domain.ResultLine, key string) string {
	for _, l := range lines {
		if l.Key == key {
			return l.Value
		}
	}
	return ""
}

func TestCalculateVAT_OverflowRejected(t *testing.T) {
	service := NewVATService()

	_, err := service.CalculateVAT(domain.VATInput{Amount: 1e308, Quantity: 10, RatePercent: 15})
	assert.ErrorIs(t, err, domain.ErrResultOutOfRange)

	_, err = service.CalculateVAT(domain.VATInput{Amount: 1.7e308, Quantity: 1, RatePercent: 15})
	assert.ErrorIs(t, err, domain.ErrResultOutOfRange)
}
