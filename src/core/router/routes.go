package router

import (
	"fmt"
	"sort"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"

	"github.com/mayurii-26/drive-smart-portal/src/core/middleware"
	"github.com/mayurii-26/drive-smart-portal/src/modules/admin"
	"github.com/mayurii-26/drive-smart-portal/src/modules/assistant"
	"github.com/mayurii-26/drive-smart-portal/src/modules/authentication"
	"github.com/mayurii-26/drive-smart-portal/src/modules/practice"
	"github.com/mayurii-26/drive-smart-portal/src/modules/problems"
	"github.com/mayurii-26/drive-smart-portal/src/modules/uploads"
)

func InitialiseAndSetupRoutes(app *fiber.App) {
	root := app.Group("/", logger.New())

	root.Get("/ping", func(c *fiber.Ctx) error { return c.SendString("pong") })

	apiV1 := root.Group("/api/v1")
	setupAPIV1Routes(apiV1)

	// Static pages (login, signup, general information) are public.
	app.Static("/", "./public")

	routes := app.GetRoutes()
	sort.Slice(routes, func(i, j int) bool {
		return routes[i].Path < routes[j].Path
	})
	for _, route := range routes {
		fmt.Printf("%s\t%s\n", route.Method, route.Path)
	}
}

func setupAPIV1Routes(router fiber.Router) {
	// Grouped API endpoints
	authGroup := router.Group("/auth")
	assistantGroup := router.Group("/assistant")
	practiceGroup := router.Group("/practice", middleware.Protected())
	uploadGroup := router.Group("/uploads")
	problemGroup := router.Group("/problems")
	adminGroup := router.Group("/admin", middleware.AdminOnly())

	// Authentication routes (public allowlist: signup and signin)
	authGroup.Post("/signup", authentication.SignUp)
	authGroup.Post("/signin", authentication.SignIn)
	authGroup.Post("/signout", authentication.SignOut)
	authGroup.Get("/session", authentication.CurrentSession)

	// RTO assistant
	assistantGroup.Post("/", middleware.Protected(), assistant.Query)

	// Driving test practice quiz
	practiceGroup.Get("/start", practice.StartQuiz)
	practiceGroup.Get("/state", practice.GetState)
	practiceGroup.Post("/answer", practice.SelectAnswer)
	practiceGroup.Post("/next", practice.NextQuestion)
	practiceGroup.Post("/previous", practice.PreviousQuestion)
	practiceGroup.Post("/submit", practice.SubmitQuiz)
	practiceGroup.Post("/restart", practice.RestartQuiz)

	// Document uploads
	uploadGroup.Post("/", middleware.Protected(), uploads.UploadDocument)
	uploadGroup.Get("/", middleware.Protected(), uploads.ListUploads)

	// Problem tickets
	problemGroup.Post("/", middleware.Protected(), problems.Submit)

	// Admin dashboard
	adminGroup.Get("/stats", admin.GetStats)
	adminGroup.Get("/activities", admin.GetActivities)
	adminGroup.Get("/users", admin.GetUsers)
	adminGroup.Get("/problems", admin.GetProblems)
}
