package alerts

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/code-differently/cs-25-2-team6-sub003/app/config"
	"github.com/code-differently/cs-25-2-team6-sub003/app/database"
	"github.com/code-differently/cs-25-2-team6-sub003/app/models"
	"github.com/code-differently/cs-25-2-team6-sub003/app/services"
)

var validate = validator.New()

// EvaluateAPI runs the configured threshold rules for one student and syncs
// the alert store with the result. The reference date defaults to today.
func EvaluateAPI(c *fiber.Ctx) error {
	type EvaluateRequest struct {
		StudentID string `json:"student_id" validate:"required"`
		Date      string `json:"date"`
	}

	var req EvaluateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	svc := alertService()
	if req.Date == "" {
		req.Date = services.FormatDate(svc.Now())
	}

	eval, synced, err := svc.SyncAlerts(req.StudentID, req.Date, config.AlertRules())
	if err != nil {
		if errors.Is(err, services.ErrInvalidDate) {
			return c.Status(400).JSON(fiber.Map{"error": "Invalid date format. Use YYYY-MM-DD"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to evaluate thresholds"})
	}

	return c.JSON(fiber.Map{
		"evaluation": eval,
		"alerts":     synced,
	})
}

// ListAlertsAPI returns alerts, newest first, optionally filtered by
// student_id and/or status query parameters.
func ListAlertsAPI(c *fiber.Ctx) error {
	status := models.AlertStatus(c.Query("status"))
	if status != "" && !status.IsValid() {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid status. Must be active, acknowledged, or dismissed"})
	}

	store := &database.AlertStore{DB: config.GetDB()}
	alerts, err := store.List(c.Query("student_id"), status)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch alerts"})
	}

	return c.JSON(fiber.Map{
		"alerts": alerts,
		"count":  len(alerts),
	})
}

// AcknowledgeAlertAPI marks an active alert as seen. Acknowledging an alert
// that is already acknowledged or dismissed leaves it unchanged.
func AcknowledgeAlertAPI(c *fiber.Ctx) error {
	alert, err := alertService().Acknowledge(c.Params("id"))
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			return c.Status(404).JSON(fiber.Map{"error": "Alert not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to acknowledge alert"})
	}

	return c.JSON(fiber.Map{"alert": alert})
}

// DismissAlertAPI dismisses an active alert with an optional reason.
func DismissAlertAPI(c *fiber.Ctx) error {
	type DismissRequest struct {
		Reason string `json:"reason"`
	}

	var req DismissRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
		}
	}

	alert, err := alertService().Dismiss(c.Params("id"), req.Reason)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			return c.Status(404).JSON(fiber.Map{"error": "Alert not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to dismiss alert"})
	}

	return c.JSON(fiber.Map{"alert": alert})
}

// SweepAPI evaluates every active student against the configured rules, the
// same pass the nightly scheduler runs.
func SweepAPI(c *fiber.Ctx) error {
	directory := &database.StudentStore{DB: config.GetDB()}
	evaluated, err := alertService().SweepAll(directory, config.AlertRules)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to run sweep"})
	}

	return c.JSON(fiber.Map{
		"message":   "Sweep complete",
		"evaluated": evaluated,
	})
}
