package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/code-differently/cs-25-2-team6-sub003/app/models"
)

func newAlertFixture() (*AlertService, *memAttendanceStore, *memAlertStore) {
	attendance := newMemAttendanceStore()
	rollup := NewRollupService(attendance, &memDayOffStore{})
	rollup.Now = func() time.Time { return mustDate("2025-09-30") }
	alerts := newMemAlertStore()
	svc := NewAlertService(alerts, NewEvaluatorService(rollup))
	svc.Now = func() time.Time { return mustDate("2025-09-30") }
	return svc, attendance, alerts
}

func TestSyncAlerts_CreatesActiveAlert(t *testing.T) {
	svc, attendance, alerts := newAlertFixture()
	markAbsences(t, attendance, "s1", "2025-09-17", 4)

	rules := models.AlertRuleSet{Absences30: intPtr(3), NotifyParents: true}
	eval, synced, err := svc.SyncAlerts("s1", "2025-09-17", rules)
	require.NoError(t, err)
	assert.True(t, eval.ShouldAlert)
	require.Len(t, synced, 1)

	alert := synced[0]
	assert.NotEmpty(t, alert.ID)
	assert.Equal(t, "s1", alert.StudentID)
	assert.Equal(t, models.ThresholdAbsences30, alert.ThresholdID)
	assert.Equal(t, models.AbsenceAlert, alert.Type)
	assert.Equal(t, 4, alert.Count)
	assert.Equal(t, models.AlertActive, alert.Status)
	assert.Equal(t, PeriodLast30Days, alert.Period)
	assert.True(t, alert.NotifyParents)
	assert.Equal(t, 1, alerts.activeCount("s1"))
}

func TestSyncAlerts_NoBreachNoAlert(t *testing.T) {
	svc, attendance, alerts := newAlertFixture()
	markAbsences(t, attendance, "s1", "2025-09-17", 1)

	eval, synced, err := svc.SyncAlerts("s1", "2025-09-17", models.AlertRuleSet{Absences30: intPtr(5)})
	require.NoError(t, err)
	assert.False(t, eval.ShouldAlert)
	assert.Empty(t, synced)
	assert.Equal(t, 0, alerts.activeCount("s1"))
}

func TestSyncAlerts_DedupUpdatesExisting(t *testing.T) {
	svc, attendance, alerts := newAlertFixture()
	markAbsences(t, attendance, "s1", "2025-09-16", 3)
	rules := models.AlertRuleSet{Absences30: intPtr(3)}

	_, first, err := svc.SyncAlerts("s1", "2025-09-16", rules)
	require.NoError(t, err)
	require.Len(t, first, 1)

	// Another absence the next day; re-sync must refresh, not duplicate.
	require.NoError(t, attendance.Upsert(&models.AttendanceRecord{
		StudentID: "s1", Date: mustDate("2025-09-17"), Status: models.Absent,
	}))
	_, second, err := svc.SyncAlerts("s1", "2025-09-17", rules)
	require.NoError(t, err)
	require.Len(t, second, 1)

	assert.Equal(t, first[0].ID, second[0].ID)
	assert.Equal(t, 4, second[0].Count)
	assert.Equal(t, 1, alerts.activeCount("s1"))
}

func TestSyncAlerts_DismissedAlertDoesNotBlockNewOne(t *testing.T) {
	svc, attendance, alerts := newAlertFixture()
	markAbsences(t, attendance, "s1", "2025-09-17", 3)
	rules := models.AlertRuleSet{Absences30: intPtr(3)}

	_, synced, err := svc.SyncAlerts("s1", "2025-09-17", rules)
	require.NoError(t, err)
	_, err = svc.Dismiss(synced[0].ID, "spoke with parents")
	require.NoError(t, err)

	// A later breach opens a fresh alert.
	_, resynced, err := svc.SyncAlerts("s1", "2025-09-17", rules)
	require.NoError(t, err)
	require.Len(t, resynced, 1)
	assert.NotEqual(t, synced[0].ID, resynced[0].ID)
	assert.Equal(t, 1, alerts.activeCount("s1"))
}

func TestSyncAlerts_MultipleThresholds(t *testing.T) {
	svc, attendance, alerts := newAlertFixture()
	markAbsences(t, attendance, "s1", "2025-09-17", 4)

	_, synced, err := svc.SyncAlerts("s1", "2025-09-17", models.AlertRuleSet{
		Absences30:    intPtr(3),
		AbsencesTotal: intPtr(4),
	})
	require.NoError(t, err)
	require.Len(t, synced, 2)
	assert.Equal(t, models.ThresholdAbsences30, synced[0].ThresholdID)
	assert.Equal(t, models.ThresholdAbsencesTotal, synced[1].ThresholdID)
	assert.Equal(t, PeriodYearToDate, synced[1].Period)
	assert.Equal(t, 2, alerts.activeCount("s1"))
}

func TestDismiss(t *testing.T) {
	svc, attendance, _ := newAlertFixture()
	markAbsences(t, attendance, "s1", "2025-09-17", 3)
	_, synced, err := svc.SyncAlerts("s1", "2025-09-17", models.AlertRuleSet{Absences30: intPtr(3)})
	require.NoError(t, err)

	alert, err := svc.Dismiss(synced[0].ID, "family emergency")
	require.NoError(t, err)
	assert.Equal(t, models.AlertDismissed, alert.Status)
	require.NotNil(t, alert.Reason)
	assert.Equal(t, "family emergency", *alert.Reason)

	// Dismissing again is a no-op, not an error.
	again, err := svc.Dismiss(synced[0].ID, "ignored")
	require.NoError(t, err)
	assert.Equal(t, models.AlertDismissed, again.Status)
	assert.Equal(t, "family emergency", *again.Reason)
}

func TestDismiss_UnknownID(t *testing.T) {
	svc, _, _ := newAlertFixture()

	_, err := svc.Dismiss("no-such-alert", "")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestAcknowledge(t *testing.T) {
	svc, attendance, _ := newAlertFixture()
	markAbsences(t, attendance, "s1", "2025-09-17", 3)
	_, synced, err := svc.SyncAlerts("s1", "2025-09-17", models.AlertRuleSet{Absences30: intPtr(3)})
	require.NoError(t, err)

	alert, err := svc.Acknowledge(synced[0].ID)
	require.NoError(t, err)
	assert.Equal(t, models.AlertAcknowledged, alert.Status)

	// There is no un-acknowledge; dismiss on an acknowledged alert is a no-op.
	alert, err = svc.Dismiss(synced[0].ID, "")
	require.NoError(t, err)
	assert.Equal(t, models.AlertAcknowledged, alert.Status)
}

func TestSweepAll(t *testing.T) {
	svc, attendance, alerts := newAlertFixture()
	markAbsences(t, attendance, "s1", "2025-09-29", 3)
	markAbsences(t, attendance, "s2", "2025-09-29", 1)

	directory := &memDirectory{ids: []string{"s1", "s2"}}
	rules := func() models.AlertRuleSet {
		return models.AlertRuleSet{Absences30: intPtr(3)}
	}

	breached, err := svc.SweepAll(directory, rules)
	require.NoError(t, err)
	assert.Equal(t, 1, breached)
	assert.Equal(t, 1, alerts.activeCount("s1"))
	assert.Equal(t, 0, alerts.activeCount("s2"))
}
