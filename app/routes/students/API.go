package students

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

func GetStudentsAPI(c *fiber.Ctx) error {
	store := &database.StudentStore{DB: config.GetDB()}
	list, err := store.GetStudents()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch students"})
	}

	return c.JSON(fiber.Map{
		"students": list,
		"count":    len(list),
	})
}

func GetStudentAPI(c *fiber.Ctx) error {
	store := &database.StudentStore{DB: config.GetDB()}
	student, err := store.GetStudentByID(c.Params("id"))
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch student"})
	}
	if student == nil {
		return c.Status(404).JSON(fiber.Map{"error": "Student not found"})
	}

	return c.JSON(fiber.Map{"student": student})
}

func CreateStudentAPI(c *fiber.Ctx) error {
	type CreateRequest struct {
		StudentNo string `json:"student_no" validate:"required"`
		FirstName string `json:"first_name" validate:"required"`
		LastName  string `json:"last_name" validate:"required"`
	}

	var req CreateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	student := &models.Student{
		StudentNo: req.StudentNo,
		FirstName: req.FirstName,
		LastName:  req.LastName,
	}

	store := &database.StudentStore{DB: config.GetDB()}
	if err := store.CreateStudent(student); err != nil {
		if errors.Is(err, services.ErrDuplicateID) {
			return c.Status(409).JSON(fiber.Map{"error": "Student number already exists"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create student"})
	}

	return c.Status(201).JSON(fiber.Map{
		"message": "Student created",
		"student": student,
	})
}
