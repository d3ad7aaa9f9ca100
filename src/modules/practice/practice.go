package practice

import (
	"encoding/json"
	"os"
	"sync"

	"github.com/gofiber/fiber/v2"

	"github.com/mayurii-26/drive-smart-portal/src/core/config"
	"github.com/mayurii-26/drive-smart-portal/src/core/helpers"
	"github.com/mayurii-26/drive-smart-portal/src/core/models"
)

// activeQuizzes holds the in-flight quiz of each signed-in user, keyed
// by user ID. Each user owns exactly one session; starting or restarting
// replaces it wholesale.
var activeQuizzes = struct {
	sync.Mutex
	byUser map[string]*Quiz
}{byUser: make(map[string]*Quiz)}

// State is the client-visible snapshot of a quiz. The correct answer
// index of the current question is never included; it only appears in
// the post-submission review.
type State struct {
	CurrentIndex   int      `json:"currentIndex"`
	TotalQuestions int      `json:"totalQuestions"`
	Question       string   `json:"question"`
	Options        []string `json:"options"`
	Answers        []int    `json:"answers"`
	Completed      bool     `json:"completed"`
}

func snapshot(q *Quiz) State {
	current := q.drawn[q.current]
	answers := make([]int, len(q.answers))
	copy(answers, q.answers)
	return State{
		CurrentIndex:   q.current,
		TotalQuestions: len(q.drawn),
		Question:       current.Question,
		Options:        current.Options,
		Answers:        answers,
		Completed:      q.completed,
	}
}

// LoadPool reads the static question pool from a JSON array file.
func LoadPool(path string) ([]models.Question, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var pool []models.Question
	if err := json.Unmarshal(raw, &pool); err != nil {
		return nil, err
	}
	return pool, nil
}

func poolPath() string {
	return config.ConfigOrDefault("QUESTIONS_FILE", "data/ll_questions.json")
}

func currentQuiz(c *fiber.Ctx) (*Quiz, bool) {
	userID, _ := c.Locals("user_id").(string)
	activeQuizzes.Lock()
	defer activeQuizzes.Unlock()
	quiz, ok := activeQuizzes.byUser[userID]
	return quiz, ok
}

// StartQuiz draws a fresh 20-question quiz for the signed-in user,
// replacing any quiz already in progress.
func StartQuiz(c *fiber.Ctx) error {
	userID, _ := c.Locals("user_id").(string)

	pool, err := LoadPool(poolPath())
	if err != nil {
		return helpers.HandleError(c, fiber.StatusInternalServerError, "Failed to load questions", err)
	}

	quiz, err := Start(pool)
	if err == ErrInsufficientData {
		return helpers.HandleError(c, fiber.StatusBadRequest, "Not enough questions available. Please try again later.", err)
	}
	if err != nil {
		return helpers.HandleError(c, fiber.StatusInternalServerError, "Failed to start quiz", err)
	}

	activeQuizzes.Lock()
	activeQuizzes.byUser[userID] = quiz
	activeQuizzes.Unlock()

	return helpers.HandleSuccess(c, fiber.StatusOK, "Quiz started", snapshot(quiz))
}

// GetState returns the snapshot of the quiz in progress.
func GetState(c *fiber.Ctx) error {
	quiz, ok := currentQuiz(c)
	if !ok {
		return helpers.HandleError(c, fiber.StatusBadRequest, "No quiz in progress", nil)
	}
	return helpers.HandleSuccess(c, fiber.StatusOK, "Quiz state", snapshot(quiz))
}

// SelectAnswer records an option for the current question.
func SelectAnswer(c *fiber.Ctx) error {
	quiz, ok := currentQuiz(c)
	if !ok {
		return helpers.HandleError(c, fiber.StatusBadRequest, "No quiz in progress", nil)
	}

	body := new(struct {
		OptionIndex *int `json:"optionIndex" validate:"required"`
	})
	if err := c.BodyParser(body); err != nil {
		return helpers.HandleError(c, fiber.StatusBadRequest, "Invalid input data", err)
	}
	if err := helpers.Validate(body); err != nil {
		return helpers.HandleError(c, fiber.StatusBadRequest, "optionIndex is required", err)
	}

	if err := quiz.SelectAnswer(*body.OptionIndex); err != nil {
		return helpers.HandleError(c, fiber.StatusBadRequest, "Failed to record answer", err)
	}
	return helpers.HandleSuccess(c, fiber.StatusOK, "Answer recorded", snapshot(quiz))
}

// NextQuestion advances the quiz; on the last answered question it
// submits instead, after which the result endpoint becomes available.
func NextQuestion(c *fiber.Ctx) error {
	quiz, ok := currentQuiz(c)
	if !ok {
		return helpers.HandleError(c, fiber.StatusBadRequest, "No quiz in progress", nil)
	}
	quiz.Next()
	if quiz.Completed() {
		result, _ := quiz.Result()
		return helpers.HandleSuccess(c, fiber.StatusOK, "Quiz submitted", result)
	}
	return helpers.HandleSuccess(c, fiber.StatusOK, "Moved to next question", snapshot(quiz))
}

// PreviousQuestion steps back one question.
func PreviousQuestion(c *fiber.Ctx) error {
	quiz, ok := currentQuiz(c)
	if !ok {
		return helpers.HandleError(c, fiber.StatusBadRequest, "No quiz in progress", nil)
	}
	quiz.Previous()
	return helpers.HandleSuccess(c, fiber.StatusOK, "Moved to previous question", snapshot(quiz))
}

// SubmitQuiz finalizes the quiz and returns score plus review.
func SubmitQuiz(c *fiber.Ctx) error {
	quiz, ok := currentQuiz(c)
	if !ok {
		return helpers.HandleError(c, fiber.StatusBadRequest, "No quiz in progress", nil)
	}

	if err := quiz.Submit(); err != nil && err != ErrQuizCompleted {
		return helpers.HandleError(c, fiber.StatusBadRequest, "Cannot submit yet", err)
	}
	result, err := quiz.Result()
	if err != nil {
		return helpers.HandleError(c, fiber.StatusInternalServerError, "Failed to compute result", err)
	}
	return helpers.HandleSuccess(c, fiber.StatusOK, "Quiz submitted", result)
}

// RestartQuiz discards the current quiz and draws a fresh one.
func RestartQuiz(c *fiber.Ctx) error {
	return StartQuiz(c)
}
