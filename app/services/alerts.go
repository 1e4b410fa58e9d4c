package services

import (
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/code-differently/cs-25-2-team6-sub003/app/models"
)

// Periods stamped on alerts, naming the window whose metric triggered.
const (
	PeriodLast30Days = "last_30_days"
	PeriodYearToDate = "year_to_date"
)

// AlertService owns the alert lifecycle: creating deduplicated alerts from
// evaluation results and transitioning them through
// active -> acknowledged/dismissed. Neither transition is reversible; a
// later breach gets a new alert.
type AlertService struct {
	Alerts    AlertStore
	Evaluator *EvaluatorService

	// Now is the clock for lifecycle timestamps. Overridable in tests.
	Now func() time.Time
}

// NewAlertService wires an AlertService.
func NewAlertService(alerts AlertStore, evaluator *EvaluatorService) *AlertService {
	return &AlertService{Alerts: alerts, Evaluator: evaluator, Now: time.Now}
}

// breach is one threshold that triggered during evaluation.
type breach struct {
	thresholdID string
	alertType   models.AlertType
	count       int
	period      string
}

// SyncAlerts evaluates the student against the rule set and brings the alert
// store in line with the verdict: each breached threshold gets exactly one
// active alert. When one already exists for (student, threshold) its count
// and updatedAt are refreshed instead of creating a duplicate.
func (s *AlertService) SyncAlerts(studentID, referenceDateISO string, rules models.AlertRuleSet) (*Evaluation, []models.Alert, error) {
	eval, err := s.Evaluator.Evaluate(studentID, referenceDateISO, rules)
	if err != nil {
		return nil, nil, err
	}
	if !eval.ShouldAlert {
		return eval, nil, nil
	}

	var synced []models.Alert
	for _, b := range breaches(eval, rules) {
		alert, err := s.upsertAlert(studentID, b, rules.NotifyParents)
		if err != nil {
			return nil, nil, err
		}
		synced = append(synced, *alert)
	}
	return eval, synced, nil
}

func breaches(eval *Evaluation, rules models.AlertRuleSet) []breach {
	var out []breach
	if rules.Absences30 != nil && eval.Absences30 >= *rules.Absences30 {
		out = append(out, breach{models.ThresholdAbsences30, models.AbsenceAlert, eval.Absences30, PeriodLast30Days})
	}
	if rules.Lates30 != nil && eval.Lates30 >= *rules.Lates30 {
		out = append(out, breach{models.ThresholdLates30, models.LatenessAlert, eval.Lates30, PeriodLast30Days})
	}
	if rules.AbsencesTotal != nil && eval.AbsencesTotal >= *rules.AbsencesTotal {
		out = append(out, breach{models.ThresholdAbsencesTotal, models.AbsenceAlert, eval.AbsencesTotal, PeriodYearToDate})
	}
	if rules.LatesTotal != nil && eval.LatesTotal >= *rules.LatesTotal {
		out = append(out, breach{models.ThresholdLatesTotal, models.LatenessAlert, eval.LatesTotal, PeriodYearToDate})
	}
	return out
}

func (s *AlertService) upsertAlert(studentID string, b breach, notifyParents bool) (*models.Alert, error) {
	existing, err := s.Alerts.FindActive(studentID, b.thresholdID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		existing.Refresh(b.count, s.Now())
		if err := s.Alerts.Update(existing); err != nil {
			return nil, err
		}
		return existing, nil
	}

	now := s.Now()
	alert := &models.Alert{
		ID:            uuid.NewString(),
		StudentID:     studentID,
		ThresholdID:   b.thresholdID,
		Type:          b.alertType,
		Count:         b.count,
		Status:        models.AlertActive,
		Period:        b.period,
		NotifyParents: notifyParents,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := s.Alerts.Insert(alert); err != nil {
		return nil, err
	}
	log.Printf("Alert created: student=%s threshold=%s count=%d", studentID, b.thresholdID, b.count)
	return alert, nil
}

// Acknowledge transitions an active alert to acknowledged. Acknowledging a
// non-active alert is a no-op; an unknown id is ErrNotFound.
func (s *AlertService) Acknowledge(alertID string) (*models.Alert, error) {
	alert, err := s.Alerts.GetByID(alertID)
	if err != nil {
		return nil, err
	}
	if alert == nil {
		return nil, ErrNotFound
	}
	if alert.Acknowledge(s.Now()) {
		if err := s.Alerts.Update(alert); err != nil {
			return nil, err
		}
	}
	return alert, nil
}

// Dismiss transitions an active alert to dismissed, recording the optional
// reason. Dismissing a non-active alert is a no-op; an unknown id is
// ErrNotFound.
func (s *AlertService) Dismiss(alertID, reason string) (*models.Alert, error) {
	alert, err := s.Alerts.GetByID(alertID)
	if err != nil {
		return nil, err
	}
	if alert == nil {
		return nil, ErrNotFound
	}
	if alert.Dismiss(reason, s.Now()) {
		if err := s.Alerts.Update(alert); err != nil {
			return nil, err
		}
	}
	return alert, nil
}
