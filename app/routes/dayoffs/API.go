package dayoffs

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/code-differently/cs-25-2-team6-sub003/app/config"
	"github.com/code-differently/cs-25-2-team6-sub003/app/database"
	"github.com/code-differently/cs-25-2-team6-sub003/app/models"
	"github.com/code-differently/cs-25-2-team6-sub003/app/services"
)

var validate = validator.New()

// PlanDayOffAPI schedules a non-instructional day. Planning does not touch
// attendance; the excusal fan-out happens on apply.
func PlanDayOffAPI(c *fiber.Ctx) error {
	type PlanRequest struct {
		Date       string   `json:"date" validate:"required"`
		Reason     string   `json:"reason" validate:"required,oneof=holiday prof_dev report_card other"`
		Scope      string   `json:"scope" validate:"required,oneof=all_students student_group"`
		StudentIDs []string `json:"student_ids"`
	}

	var req PlanRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	date, err := services.ParseDate(req.Date)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid date format. Use YYYY-MM-DD"})
	}

	scope := models.DayOffScope(req.Scope)
	if scope == models.StudentGroup && len(req.StudentIDs) == 0 {
		return c.Status(400).JSON(fiber.Map{"error": "student_ids is required for a student_group day off"})
	}

	off := &models.ScheduledDayOff{
		Date:       date,
		Reason:     models.DayOffReason(req.Reason),
		Scope:      scope,
		StudentIDs: req.StudentIDs,
	}
	if userID, ok := c.Locals("user_id").(string); ok {
		off.CreatedBy = &userID
	}

	store := &database.DayOffStore{DB: config.GetDB()}
	if err := store.Create(off); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create day off"})
	}

	return c.Status(201).JSON(fiber.Map{
		"message": "Day off scheduled",
		"day_off": off,
	})
}

// ListDayOffsAPI returns every scheduled day off ordered by date.
func ListDayOffsAPI(c *fiber.Ctx) error {
	store := &database.DayOffStore{DB: config.GetDB()}
	offs, err := store.List()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch day offs"})
	}

	return c.JSON(fiber.Map{
		"day_offs": offs,
		"count":    len(offs),
	})
}

// ApplyDayOffAPI fans the day off out as excused attendance for every student
// in scope. Re-applying is safe; students added to scope since the first
// application get covered.
func ApplyDayOffAPI(c *fiber.Ctx) error {
	store := &database.DayOffStore{DB: config.GetDB()}
	off, err := store.GetByID(c.Params("id"))
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch day off"})
	}
	if off == nil {
		return c.Status(404).JSON(fiber.Map{"error": "Day off not found"})
	}

	count, err := excusalService().ApplyDayOff(off)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to apply day off"})
	}

	return c.JSON(fiber.Map{
		"message":       "Day off applied",
		"excused_count": count,
		"day_off":       off,
	})
}
