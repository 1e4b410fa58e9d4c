package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/code-differently/cs-25-2-team6-sub003/app/models"
)

func TestApplyDayOff_FansOutExcused(t *testing.T) {
	attendance := newMemAttendanceStore()
	dayOffs := &memDayOffStore{dayOffs: []models.ScheduledDayOff{
		{Date: mustDate("2025-09-15"), Reason: models.Holiday, Scope: models.AllStudents, Status: models.DayOffPlanned},
	}}
	directory := &memDirectory{ids: []string{"s1", "s2", "s3"}}
	svc := NewExcusalService(attendance, dayOffs, directory)

	count, err := svc.ApplyDayOff(&dayOffs.dayOffs[0])
	require.NoError(t, err)
	assert.Equal(t, 3, count)

	for _, id := range directory.ids {
		rec, ok := attendance.get(id, "2025-09-15")
		require.True(t, ok, "student %s should have a record", id)
		assert.Equal(t, models.Excused, rec.Status)
		assert.False(t, rec.EarlyDismissal)
	}
	assert.Equal(t, models.DayOffApplied, dayOffs.dayOffs[0].Status)
}

func TestApplyDayOff_OverwritesPriorStatus(t *testing.T) {
	attendance := newMemAttendanceStore()
	require.NoError(t, attendance.Upsert(&models.AttendanceRecord{
		StudentID: "s1", Date: mustDate("2025-09-15"), Status: models.Present,
	}))

	dayOffs := &memDayOffStore{dayOffs: []models.ScheduledDayOff{
		{Date: mustDate("2025-09-15"), Reason: models.ReportCard, Scope: models.AllStudents},
	}}
	svc := NewExcusalService(attendance, dayOffs, &memDirectory{ids: []string{"s1"}})

	_, err := svc.ApplyDayOff(&dayOffs.dayOffs[0])
	require.NoError(t, err)

	rec, _ := attendance.get("s1", "2025-09-15")
	assert.Equal(t, models.Excused, rec.Status)
}

func TestApplyDayOff_ReapplyCoversNewStudents(t *testing.T) {
	attendance := newMemAttendanceStore()
	dayOffs := &memDayOffStore{dayOffs: []models.ScheduledDayOff{
		{Date: mustDate("2025-09-15"), Reason: models.Holiday, Scope: models.AllStudents},
	}}
	directory := &memDirectory{ids: []string{"s1"}}
	svc := NewExcusalService(attendance, dayOffs, directory)

	_, err := svc.ApplyDayOff(&dayOffs.dayOffs[0])
	require.NoError(t, err)

	// A student enrolls after the first application; re-apply picks them up.
	directory.ids = append(directory.ids, "s2")
	count, err := svc.ApplyDayOff(&dayOffs.dayOffs[0])
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	rec, ok := attendance.get("s2", "2025-09-15")
	require.True(t, ok)
	assert.Equal(t, models.Excused, rec.Status)
}

func TestGuardStatus_CoercesOnDayOff(t *testing.T) {
	dayOffs := &memDayOffStore{dayOffs: []models.ScheduledDayOff{
		{Date: mustDate("2025-09-15"), Reason: models.Holiday, Scope: models.AllStudents},
	}}
	svc := NewExcusalService(newMemAttendanceStore(), dayOffs, &memDirectory{})

	for _, requested := range []models.AttendanceStatus{models.Present, models.Absent, models.Late, models.Excused} {
		got, err := svc.GuardStatus("s1", mustDate("2025-09-15"), requested)
		require.NoError(t, err)
		assert.Equal(t, models.Excused, got, "requested %s", requested)
	}

	// Regular day passes the requested status through.
	got, err := svc.GuardStatus("s1", mustDate("2025-09-17"), models.Late)
	require.NoError(t, err)
	assert.Equal(t, models.Late, got)
}

func TestMark_UpsertKeepsOneRecordPerDay(t *testing.T) {
	attendance := newMemAttendanceStore()
	svc := NewExcusalService(attendance, &memDayOffStore{}, &memDirectory{})

	require.NoError(t, svc.Mark(&models.AttendanceRecord{
		StudentID: "s1", Date: mustDate("2025-09-17"), Status: models.Absent,
	}))
	require.NoError(t, svc.Mark(&models.AttendanceRecord{
		StudentID: "s1", Date: mustDate("2025-09-17"), Status: models.Present,
	}))

	records, err := attendance.GetRecords("s1")
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, models.Present, records[0].Status)
}

func TestMark_WriteGuardForcesExcused(t *testing.T) {
	attendance := newMemAttendanceStore()
	dayOffs := &memDayOffStore{dayOffs: []models.ScheduledDayOff{
		{Date: mustDate("2025-09-15"), Reason: models.Holiday, Scope: models.AllStudents},
	}}
	svc := NewExcusalService(attendance, dayOffs, &memDirectory{})

	rec := &models.AttendanceRecord{
		StudentID: "s1", Date: mustDate("2025-09-15"), Status: models.Absent, EarlyDismissal: true,
	}
	require.NoError(t, svc.Mark(rec))

	stored, ok := attendance.get("s1", "2025-09-15")
	require.True(t, ok)
	assert.Equal(t, models.Excused, stored.Status)
	assert.False(t, stored.EarlyDismissal)
}
