package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"stayhub/models"
)

func strPtr(s string) *string {
	return &s
}

func TestSubtractUnitsRemovesTakenAndBlocked(t *testing.T) {
	all := []string{"101", "102", "103", "104"}
	blocks := []models.UnavailableDate{
		{Unit: strPtr("103"), Date: d(2025, time.June, 2)},
	}
	taken := []string{"101"}

	free := subtractUnits(all, blocks, taken)
	assert.Equal(t, []string{"102", "104"}, free)
}

func TestSubtractUnitsWholeTypeBlocked(t *testing.T) {
	all := []string{"101", "102", "103"}
	blocks := []models.UnavailableDate{
		{Unit: nil, Date: d(2025, time.June, 2)},
	}

	free := subtractUnits(all, blocks, nil)
	assert.Empty(t, free)
}

func TestSubtractUnitsKeepsOrder(t *testing.T) {
	all := []string{"301", "102", "205", "110"}

	free := subtractUnits(all, nil, []string{"205"})
	assert.Equal(t, []string{"301", "102", "110"}, free)
}

func TestSubtractUnitsNothingRemoved(t *testing.T) {
	all := []string{"101", "102"}
	assert.Equal(t, all, subtractUnits(all, nil, nil))
}

func TestSubtractUnitsDuplicateTaken(t *testing.T) {
	all := []string{"101", "102", "103"}
	free := subtractUnits(all, nil, []string{"102", "102", "101"})
	assert.Equal(t, []string{"103"}, free)
}
