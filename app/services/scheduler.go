package services

import (
	"log"
	"time"

	"github.com/code-differently/cs-25-2-team6-sub003/app/models"
)

// SweepAll evaluates every student in the directory against the rule set for
// today and syncs their alerts. Returns how many students breached at least
// one threshold. Per-student failures are logged and skipped so one bad
// record cannot stall the sweep.
func (s *AlertService) SweepAll(directory StudentDirectory, rules AlertRules) (int, error) {
	ids, err := directory.AllStudentIDs()
	if err != nil {
		return 0, err
	}

	today := FormatDate(s.Now())
	breached := 0
	for _, id := range ids {
		eval, _, err := s.SyncAlerts(id, today, rules())
		if err != nil {
			log.Printf("Alert sweep: student %s failed: %v", id, err)
			continue
		}
		if eval.ShouldAlert {
			breached++
		}
	}
	log.Printf("Alert sweep complete: %d/%d students over threshold", breached, len(ids))
	return breached, nil
}

// AlertRules supplies the configured rule set at sweep time. Rules are
// passed in explicitly; the engine keeps no global rule state.
type AlertRules func() models.AlertRuleSet

// StartScheduler starts the background task scheduler: a one-minute ticker
// that fires the nightly alert sweep at 18:30 local time.
func StartScheduler(alerts *AlertService, directory StudentDirectory, rules AlertRules) {
	go func() {
		log.Println("Scheduler started...")
		ticker := time.NewTicker(1 * time.Minute)
		defer ticker.Stop()

		for range ticker.C {
			now := time.Now()

			// Trigger at 6:30 PM (18:30)
			if now.Hour() == 18 && now.Minute() == 30 {
				log.Println("Triggering scheduled tasks [18:30]...")

				if _, err := alerts.SweepAll(directory, rules); err != nil {
					log.Printf("Error running alert sweep: %v", err)
				}
			}
		}
	}()
}
