package problems

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/mayurii-26/drive-smart-portal/src/core/helpers"
	"github.com/mayurii-26/drive-smart-portal/src/core/middleware"
	"github.com/mayurii-26/drive-smart-portal/src/core/models"
	"github.com/mayurii-26/drive-smart-portal/src/core/store"
)

type submitInput struct {
	Problem  string `json:"problem" validate:"required"`
	Category string `json:"category"`
}

// Submit files a new problem ticket for the signed-in user.
func Submit(c *fiber.Ctx) error {
	identity, ok := middleware.CurrentIdentity(c)
	if !ok {
		return helpers.HandleError(c, fiber.StatusUnauthorized, "Not authenticated", nil)
	}

	body := new(submitInput)
	if err := c.BodyParser(body); err != nil {
		return helpers.HandleError(c, fiber.StatusBadRequest, "Invalid input data", err)
	}
	if err := helpers.Validate(body); err != nil {
		return helpers.HandleError(c, fiber.StatusBadRequest, "Problem description is required", err)
	}
	if body.Category == "" {
		body.Category = "general"
	}

	record := models.Problem{
		ID:          uuid.NewString(),
		UserID:      identity.ID,
		UserName:    identity.Name,
		UserEmail:   identity.Email,
		Problem:     body.Problem,
		Category:    body.Category,
		Status:      "pending",
		SubmittedAt: time.Now().UTC(),
	}
	if err := store.Problems.Append(record); err != nil {
		return helpers.HandleError(c, fiber.StatusInternalServerError, "Failed to submit problem", err)
	}

	store.Activities.Record(identity, models.ActionProblemSubmitted, map[string]interface{}{
		"problemId": record.ID,
		"category":  record.Category,
	})

	return helpers.HandleSuccess(c, fiber.StatusCreated, "Problem submitted successfully", record)
}
