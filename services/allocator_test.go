package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "stayhub/errors"
)

func TestPickUnitsFirstFree(t *testing.T) {
	all := []string{"101", "102", "103", "104"}
	free := []string{"102", "104"}

	units, err := pickUnits(all, free, 1, "")
	require.NoError(t, err)
	assert.Equal(t, []string{"102"}, units)

	units, err = pickUnits(all, free, 2, "")
	require.NoError(t, err)
	assert.Equal(t, []string{"102", "104"}, units)
}

func TestPickUnitsInsufficientInventory(t *testing.T) {
	all := []string{"101", "102"}
	free := []string{"102"}

	_, err := pickUnits(all, free, 2, "")
	require.Error(t, err)

	var invErr *apperrors.InsufficientInventoryError
	require.ErrorAs(t, err, &invErr)
	assert.Equal(t, 2, invErr.Requested)
	assert.Equal(t, 1, invErr.Available)
}

func TestPickUnitsRequestedUnit(t *testing.T) {
	all := []string{"101", "102", "103"}
	free := []string{"101", "103"}

	units, err := pickUnits(all, free, 1, "103")
	require.NoError(t, err)
	assert.Equal(t, []string{"103"}, units)

	// Phòng chỉ định đứng đầu, phần còn thiếu lấy theo thứ tự
	units, err = pickUnits(all, free, 2, "103")
	require.NoError(t, err)
	assert.Equal(t, []string{"103", "101"}, units)
}

func TestPickUnitsRequestedUnitTaken(t *testing.T) {
	all := []string{"101", "102", "103"}
	free := []string{"101", "103"}

	_, err := pickUnits(all, free, 1, "102")
	require.Error(t, err)

	var unitErr *apperrors.UnitUnavailableError
	require.ErrorAs(t, err, &unitErr)
	assert.Equal(t, "102", unitErr.Unit)
	assert.Equal(t, []string{"101", "103"}, unitErr.Alternatives)
}

func TestPickUnitsRequestedUnitUnknown(t *testing.T) {
	all := []string{"101", "102"}
	free := []string{"101", "102"}

	_, err := pickUnits(all, free, 1, "999")
	require.Error(t, err)

	var unitErr *apperrors.UnitUnavailableError
	require.ErrorAs(t, err, &unitErr)
	assert.Equal(t, "999", unitErr.Unit)
}

func TestPickUnitsZeroQuantityDefaultsToOne(t *testing.T) {
	units, err := pickUnits([]string{"101"}, []string{"101"}, 0, "")
	require.NoError(t, err)
	assert.Equal(t, []string{"101"}, units)
}

func TestPickUnitsDeterministic(t *testing.T) {
	all := []string{"101", "102", "103"}
	free := []string{"101", "102", "103"}

	first, err := pickUnits(all, free, 2, "")
	require.NoError(t, err)
	for i := 0; i < 10; i++ {
		again, err := pickUnits(all, free, 2, "")
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}
