package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"

	apperrors "stayhub/errors"
)

func TestRoomTypeUnitList(t *testing.T) {
	rt := RoomType{Units: json.RawMessage(`["101","102","103"]`)}
	assert.Equal(t, []string{"101", "102", "103"}, rt.UnitList())

	assert.True(t, rt.HasUnit("102"))
	assert.False(t, rt.HasUnit("999"))

	empty := RoomType{}
	assert.Empty(t, empty.UnitList())

	broken := RoomType{Units: json.RawMessage(`{`)}
	assert.Empty(t, broken.UnitList())
}

func TestRoomTypeValidateStatus(t *testing.T) {
	rt := RoomType{Status: 1}
	assert.NoError(t, rt.ValidateStatus())

	rt.Status = 7
	var appErr *apperrors.AppError
	assert.ErrorAs(t, rt.ValidateStatus(), &appErr)
	assert.Equal(t, apperrors.ErrCodeInvalidStatus, appErr.Code)
}
