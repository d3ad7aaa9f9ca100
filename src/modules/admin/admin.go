package admin

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/mayurii-26/drive-smart-portal/src/core/helpers"
	"github.com/mayurii-26/drive-smart-portal/src/core/models"
	"github.com/mayurii-26/drive-smart-portal/src/core/store"
)

// maxActivityRows caps the activity listing on the dashboard.
const maxActivityRows = 100

type stats struct {
	TotalUsers        int               `json:"totalUsers"`
	TotalAdmins       int               `json:"totalAdmins"`
	TotalActivities   int               `json:"totalActivities"`
	TotalUploads      int               `json:"totalUploads"`
	TotalProblems     int               `json:"totalProblems"`
	RecentLogins      []models.Activity `json:"recentLogins"`
	AssistantQueries  int               `json:"assistantQueries"`
	UploadsByCategory map[string]int    `json:"uploadsByCategory"`
	ProblemsByStatus  map[string]int    `json:"problemsByStatus"`
}

type userRow struct {
	ID              string     `json:"id"`
	Name            string     `json:"name"`
	Email           string     `json:"email"`
	Role            string     `json:"role"`
	CreatedAt       time.Time  `json:"createdAt"`
	LoginCount      int        `json:"loginCount"`
	LastLogin       *time.Time `json:"lastLogin,omitempty"`
	TotalActivities int        `json:"totalActivities"`
}

// GetStats aggregates counts over the flat-file stores for the dashboard.
func GetStats(c *fiber.Ctx) error {
	users, err := store.Users.All()
	if err != nil {
		return helpers.HandleError(c, fiber.StatusInternalServerError, "Failed to read users", err)
	}
	activities, err := store.Activities.All()
	if err != nil {
		return helpers.HandleError(c, fiber.StatusInternalServerError, "Failed to read activities", err)
	}
	uploads, err := store.Uploads.All()
	if err != nil {
		return helpers.HandleError(c, fiber.StatusInternalServerError, "Failed to read uploads", err)
	}
	problems, err := store.Problems.All()
	if err != nil {
		return helpers.HandleError(c, fiber.StatusInternalServerError, "Failed to read problems", err)
	}

	out := stats{
		TotalActivities:   len(activities),
		TotalUploads:      len(uploads),
		TotalProblems:     len(problems),
		RecentLogins:      []models.Activity{},
		UploadsByCategory: make(map[string]int),
		ProblemsByStatus:  make(map[string]int),
	}

	for _, u := range users {
		if u.Role == models.RoleAdmin {
			out.TotalAdmins++
		} else {
			out.TotalUsers++
		}
	}

	var logins []models.Activity
	for _, a := range activities {
		switch a.Action {
		case models.ActionLogin:
			logins = append(logins, a)
		case models.ActionAssistantQuery:
			out.AssistantQueries++
		}
	}
	if len(logins) > 10 {
		logins = logins[len(logins)-10:]
	}
	out.RecentLogins = append(out.RecentLogins, logins...)

	for _, u := range uploads {
		out.UploadsByCategory[u.Category]++
	}
	for _, p := range problems {
		out.ProblemsByStatus[p.Status]++
	}

	return helpers.HandleSuccess(c, fiber.StatusOK, "Stats fetched successfully", out)
}

// GetActivities returns the newest audit events first, capped at 100.
func GetActivities(c *fiber.Ctx) error {
	activities, err := store.Activities.All()
	if err != nil {
		return helpers.HandleError(c, fiber.StatusInternalServerError, "Failed to read activities", err)
	}

	reversed := make([]models.Activity, 0, len(activities))
	for i := len(activities) - 1; i >= 0; i-- {
		reversed = append(reversed, activities[i])
	}
	if len(reversed) > maxActivityRows {
		reversed = reversed[:maxActivityRows]
	}

	return helpers.HandleSuccess(c, fiber.StatusOK, "Activities fetched successfully", reversed)
}

// GetUsers lists accounts with login statistics. Password hashes never
// leave the credential store.
func GetUsers(c *fiber.Ctx) error {
	users, err := store.Users.All()
	if err != nil {
		return helpers.HandleError(c, fiber.StatusInternalServerError, "Failed to read users", err)
	}
	activities, err := store.Activities.All()
	if err != nil {
		return helpers.HandleError(c, fiber.StatusInternalServerError, "Failed to read activities", err)
	}

	rows := make([]userRow, 0, len(users))
	for _, u := range users {
		row := userRow{
			ID:        u.ID,
			Name:      u.Name,
			Email:     u.Email,
			Role:      u.Role,
			CreatedAt: u.CreatedAt,
		}
		for _, a := range activities {
			if a.UserID != u.ID {
				continue
			}
			row.TotalActivities++
			if a.Action == models.ActionLogin {
				row.LoginCount++
				ts := a.Timestamp
				row.LastLogin = &ts
			}
		}
		rows = append(rows, row)
	}

	return helpers.HandleSuccess(c, fiber.StatusOK, "Users fetched successfully", rows)
}

// GetProblems lists problem tickets, newest first.
func GetProblems(c *fiber.Ctx) error {
	problems, err := store.Problems.All()
	if err != nil {
		return helpers.HandleError(c, fiber.StatusInternalServerError, "Failed to read problems", err)
	}

	reversed := make([]models.Problem, 0, len(problems))
	for i := len(problems) - 1; i >= 0; i-- {
		reversed = append(reversed, problems[i])
	}

	return helpers.HandleSuccess(c, fiber.StatusOK, "Problems fetched successfully", reversed)
}
