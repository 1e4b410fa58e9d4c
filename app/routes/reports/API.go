package reports

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/code-differently/cs-25-2-team6-sub003/app/models"
	"github.com/code-differently/cs-25-2-team6-sub003/app/services"
)

// RollupAPI aggregates a student's attendance into daily, weekly, or monthly
// buckets. Weekend days and applied day offs are excluded from every bucket.
// Omitting start/end covers the student's full history.
func RollupAPI(c *fiber.Ctx) error {
	studentID := c.Params("studentId")
	granularity := models.Granularity(c.Query("granularity", string(models.Daily)))
	if !granularity.IsValid() {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid granularity. Must be daily, weekly, or monthly"})
	}

	buckets, err := rollupService().Rollup(studentID, granularity, c.Query("start"), c.Query("end"))
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidDate):
			return c.Status(400).JSON(fiber.Map{"error": "Invalid date format. Use YYYY-MM-DD"})
		case errors.Is(err, services.ErrInvalidRange):
			return c.Status(400).JSON(fiber.Map{"error": "Start date must not be after end date"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to build rollup"})
	}

	return c.JSON(fiber.Map{
		"student_id":  studentID,
		"granularity": granularity,
		"buckets":     buckets,
		"count":       len(buckets),
	})
}

// YearToDateAPI returns a student's cumulative counts for one calendar year.
// Without a year query parameter the current year is used.
func YearToDateAPI(c *fiber.Ctx) error {
	studentID := c.Params("studentId")

	year := 0
	if raw := c.Query("year"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "Invalid year"})
		}
		year = parsed
	}

	summary, err := rollupService().YearToDateSummary(studentID, year)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to build summary"})
	}

	return c.JSON(fiber.Map{
		"student_id": studentID,
		"summary":    summary,
	})
}
