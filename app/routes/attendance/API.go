package attendance

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

// MarkAttendanceAPI records (or overwrites) a student's attendance for one
// day. The write goes through the day-off guard, so marking on a scheduled
// day off lands as excused regardless of the requested status.
func MarkAttendanceAPI(c *fiber.Ctx) error {
	type MarkRequest struct {
		StudentID      string `json:"student_id" validate:"required"`
		Date           string `json:"date" validate:"required"`
		Status         string `json:"status" validate:"required,oneof=present absent late excused"`
		EarlyDismissal bool   `json:"early_dismissal"`
	}

	var req MarkRequest
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

	rec := &models.AttendanceRecord{
		StudentID:      req.StudentID,
		Date:           date,
		Status:         models.AttendanceStatus(req.Status),
		EarlyDismissal: req.EarlyDismissal,
	}
	if userID, ok := c.Locals("user_id").(string); ok {
		rec.MarkedBy = &userID
	}

	requested := rec.Status
	if err := excusalService().Mark(rec); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to save attendance"})
	}

	return c.JSON(fiber.Map{
		"message":    "Attendance recorded",
		"attendance": rec,
		"coerced":    rec.Status != requested,
	})
}

// GetStudentAttendanceAPI returns every attendance record for a student.
func GetStudentAttendanceAPI(c *fiber.Ctx) error {
	studentID := c.Params("studentId")
	if studentID == "" {
		return c.Status(400).JSON(fiber.Map{"error": "Student ID is required"})
	}

	store := &database.AttendanceStore{DB: config.GetDB()}
	records, err := store.GetRecords(studentID)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch attendance records"})
	}

	return c.JSON(fiber.Map{
		"attendance": records,
		"count":      len(records),
	})
}

// GetAttendanceByDateAPI returns a student's record for one day, if any.
func GetAttendanceByDateAPI(c *fiber.Ctx) error {
	studentID := c.Params("studentId")
	dateStr := c.Params("date")

	if _, err := services.ParseDate(dateStr); err != nil {
		if errors.Is(err, services.ErrInvalidDate) {
			return c.Status(400).JSON(fiber.Map{"error": "Invalid date format. Use YYYY-MM-DD"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to parse date"})
	}

	store := &database.AttendanceStore{DB: config.GetDB()}
	rec, err := store.GetByStudentAndDate(studentID, dateStr)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch attendance record"})
	}
	if rec == nil {
		return c.Status(404).JSON(fiber.Map{"error": "No attendance record for that date"})
	}

	return c.JSON(fiber.Map{"attendance": rec})
}
