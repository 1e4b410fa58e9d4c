package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/code-differently/cs-25-2-team6-sub003/app/models"
)

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2025-09-17")
	require.NoError(t, err)
	assert.Equal(t, "2025-09-17", FormatDate(d))

	_, err = ParseDate("09/17/2025")
	assert.ErrorIs(t, err, ErrInvalidDate)

	_, err = ParseDate("not-a-date")
	assert.ErrorIs(t, err, ErrInvalidDate)

	_, err = ParseDate("")
	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestIsInstructionalDay_Weekends(t *testing.T) {
	// 2025-09-13 is a Saturday, 2025-09-14 a Sunday, 2025-09-15 a Monday.
	assert.False(t, IsInstructionalDay(mustDate("2025-09-13"), nil, "s1"))
	assert.False(t, IsInstructionalDay(mustDate("2025-09-14"), nil, "s1"))
	assert.True(t, IsInstructionalDay(mustDate("2025-09-15"), nil, "s1"))
}

func TestIsInstructionalDay_DayOffScopes(t *testing.T) {
	dayOffs := []models.ScheduledDayOff{
		{Date: mustDate("2025-09-15"), Reason: models.Holiday, Scope: models.AllStudents},
		{Date: mustDate("2025-09-16"), Reason: models.ProfDev, Scope: models.StudentGroup, StudentIDs: []string{"s1", "s2"}},
	}

	// All-students holiday hits everyone.
	assert.False(t, IsInstructionalDay(mustDate("2025-09-15"), dayOffs, "s1"))
	assert.False(t, IsInstructionalDay(mustDate("2025-09-15"), dayOffs, "s9"))

	// Group day off only hits the listed students.
	assert.False(t, IsInstructionalDay(mustDate("2025-09-16"), dayOffs, "s1"))
	assert.True(t, IsInstructionalDay(mustDate("2025-09-16"), dayOffs, "s9"))

	// A regular weekday stays instructional.
	assert.True(t, IsInstructionalDay(mustDate("2025-09-17"), dayOffs, "s1"))
}

func TestDayOffOn(t *testing.T) {
	dayOffs := []models.ScheduledDayOff{
		{Date: mustDate("2025-12-25"), Reason: models.Holiday, Scope: models.AllStudents},
	}

	off := DayOffOn(mustDate("2025-12-25"), dayOffs, "s1")
	require.NotNil(t, off)
	assert.Equal(t, models.Holiday, off.Reason)

	assert.Nil(t, DayOffOn(mustDate("2025-12-24"), dayOffs, "s1"))
}
