package services

import (
	"fmt"

	"github.com/code-differently/cs-25-2-team6-sub003/app/models"
)

// rollingWindowDays is the length of the rolling threshold window, in
// calendar days, ending at the reference date inclusive.
const rollingWindowDays = 30

// Evaluation is the outcome of a threshold check: a verdict plus the
// itemized, ordered reasons that produced it.
type Evaluation struct {
	ShouldAlert bool     `json:"should_alert"`
	Reasons     []string `json:"reasons"`

	// Computed metrics, exposed so callers can stamp alert counts without
	// re-deriving them.
	Absences30    int `json:"absences_30"`
	Lates30       int `json:"lates_30"`
	AbsencesTotal int `json:"absences_total"`
	LatesTotal    int `json:"lates_total"`
}

// EvaluatorService decides whether a student's absence/lateness pattern has
// reached a configured threshold. Evaluation is pure given its inputs: it
// never creates alerts itself, so it is idempotent and safely re-runnable.
type EvaluatorService struct {
	Rollup *RollupService
}

// NewEvaluatorService wires an EvaluatorService.
func NewEvaluatorService(rollup *RollupService) *EvaluatorService {
	return &EvaluatorService{Rollup: rollup}
}

// Evaluate computes rolling-30-day and year-to-date counts for the student
// and compares each configured threshold with >= (reaching the threshold
// triggers, not just exceeding it). Thresholds left nil contribute nothing.
// An unparsable reference date fails with ErrInvalidDate.
func (s *EvaluatorService) Evaluate(studentID, referenceDateISO string, rules models.AlertRuleSet) (*Evaluation, error) {
	ref, err := ParseDate(referenceDateISO)
	if err != nil {
		return nil, err
	}

	windowStart := ref.AddDate(0, 0, -(rollingWindowDays - 1))
	buckets, err := s.Rollup.Rollup(studentID, models.Daily, FormatDate(windowStart), referenceDateISO)
	if err != nil {
		return nil, err
	}

	eval := &Evaluation{Reasons: []string{}}
	for i := range buckets {
		eval.Absences30 += buckets[i].Absent
		eval.Lates30 += buckets[i].Late
	}

	ytd, err := s.Rollup.YearToDateSummary(studentID, ref.Year())
	if err != nil {
		return nil, err
	}
	eval.AbsencesTotal = ytd.Absent
	eval.LatesTotal = ytd.Late

	if rules.Absences30 != nil && eval.Absences30 >= *rules.Absences30 {
		eval.Reasons = append(eval.Reasons, fmt.Sprintf(
			"absences in last 30 days (%d) >= threshold (%d)", eval.Absences30, *rules.Absences30))
	}
	if rules.Lates30 != nil && eval.Lates30 >= *rules.Lates30 {
		eval.Reasons = append(eval.Reasons, fmt.Sprintf(
			"lates in last 30 days (%d) >= threshold (%d)", eval.Lates30, *rules.Lates30))
	}
	if rules.AbsencesTotal != nil && eval.AbsencesTotal >= *rules.AbsencesTotal {
		eval.Reasons = append(eval.Reasons, fmt.Sprintf(
			"total absences (%d) >= threshold (%d)", eval.AbsencesTotal, *rules.AbsencesTotal))
	}
	if rules.LatesTotal != nil && eval.LatesTotal >= *rules.LatesTotal {
		eval.Reasons = append(eval.Reasons, fmt.Sprintf(
			"total lates (%d) >= threshold (%d)", eval.LatesTotal, *rules.LatesTotal))
	}

	eval.ShouldAlert = len(eval.Reasons) > 0
	return eval, nil
}
