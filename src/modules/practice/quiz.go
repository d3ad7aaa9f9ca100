package practice

import (
	"errors"
	"math"
	"math/rand"

	"github.com/mayurii-26/drive-smart-portal/src/core/models"
)

// QuestionsPerQuiz is the number of questions drawn for one session.
const QuestionsPerQuiz = 20

// OptionsPerQuestion is the fixed option count of every question.
const OptionsPerQuestion = 4

// Unanswered marks a slot the user has not answered yet. It is never a
// valid option index, so "unanswered" stays distinguishable from a
// recorded answer of option 0.
const Unanswered = -1

var (
	// ErrInsufficientData is returned when the pool cannot supply a full draw.
	ErrInsufficientData = errors.New("not enough questions available to start a quiz")
	// ErrInvalidOption is returned for an option index outside [0,4).
	ErrInvalidOption = errors.New("option index out of range")
	// ErrQuizCompleted is returned for mutations on a submitted quiz.
	ErrQuizCompleted = errors.New("quiz already completed")
	// ErrQuizIncomplete is returned when Submit is called before the last
	// question has been answered.
	ErrQuizIncomplete = errors.New("quiz not finished yet")
	// ErrNotCompleted is returned when results are requested early.
	ErrNotCompleted = errors.New("quiz not submitted yet")
)

// Quiz is one user's practice session: 20 questions drawn without
// replacement from the pool, the cursor, and the recorded answers. All
// methods are single-actor; the HTTP layer serializes access per user.
type Quiz struct {
	drawn     []models.Question
	current   int
	answers   []int
	completed bool
	correct   int
	score     int
}

// Result is the immutable outcome of a submitted quiz.
type Result struct {
	CorrectCount   int           `json:"correctCount"`
	IncorrectCount int           `json:"incorrectCount"`
	Score          int           `json:"score"`
	Review         []ReviewEntry `json:"review"`
}

// ReviewEntry pairs one drawn question with the user's answer for the
// post-submission review screen.
type ReviewEntry struct {
	Question    string   `json:"question"`
	Options     []string `json:"options"`
	AnswerIndex int      `json:"answerIndex"`
	UserAnswer  int      `json:"userAnswer"`
	Correct     bool     `json:"correct"`
	Explanation string   `json:"explanation"`
}

// Start draws a fresh quiz from the pool. Every question is equally
// likely to be drawn and the drawn order is itself randomized. Pools
// smaller than the draw size are rejected outright rather than padded
// or deduplicated.
func Start(pool []models.Question) (*Quiz, error) {
	if len(pool) < QuestionsPerQuiz {
		return nil, ErrInsufficientData
	}

	drawn := make([]models.Question, 0, QuestionsPerQuiz)
	for _, i := range rand.Perm(len(pool))[:QuestionsPerQuiz] {
		drawn = append(drawn, pool[i])
	}

	answers := make([]int, QuestionsPerQuiz)
	for i := range answers {
		answers[i] = Unanswered
	}

	return &Quiz{drawn: drawn, answers: answers}, nil
}

// SelectAnswer records the option for the current question, overwriting
// any earlier choice for it.
func (q *Quiz) SelectAnswer(option int) error {
	if q.completed {
		return ErrQuizCompleted
	}
	if option < 0 || option >= OptionsPerQuestion {
		return ErrInvalidOption
	}
	q.answers[q.current] = option
	return nil
}

// Next advances to the following question. It is a no-op until the
// current question has been answered; on the last question it submits
// the quiz instead.
func (q *Quiz) Next() {
	if q.completed || q.answers[q.current] == Unanswered {
		return
	}
	if q.current == len(q.drawn)-1 {
		// The gate above guarantees the last answer is present.
		_ = q.Submit()
		return
	}
	q.current++
}

// Previous steps back one question. Backward navigation never requires
// the current question to be answered.
func (q *Quiz) Previous() {
	if q.completed || q.current == 0 {
		return
	}
	q.current--
}

// Submit finalizes the quiz and computes the score. It is reachable only
// once the last question is answered, and only once: afterwards the
// session is terminal and read-only.
func (q *Quiz) Submit() error {
	if q.completed {
		return ErrQuizCompleted
	}
	if q.answers[len(q.drawn)-1] == Unanswered {
		return ErrQuizIncomplete
	}

	correct := 0
	for i, question := range q.drawn {
		// An unanswered slot never counts as correct.
		if q.answers[i] != Unanswered && q.answers[i] == question.AnswerIndex {
			correct++
		}
	}

	q.correct = correct
	q.score = int(math.Round(float64(correct) / float64(len(q.drawn)) * 100))
	q.completed = true
	return nil
}

// Completed reports whether the quiz has been submitted.
func (q *Quiz) Completed() bool {
	return q.completed
}

// Result returns the score and per-question review of a submitted quiz.
func (q *Quiz) Result() (Result, error) {
	if !q.completed {
		return Result{}, ErrNotCompleted
	}

	review := make([]ReviewEntry, len(q.drawn))
	for i, question := range q.drawn {
		review[i] = ReviewEntry{
			Question:    question.Question,
			Options:     question.Options,
			AnswerIndex: question.AnswerIndex,
			UserAnswer:  q.answers[i],
			Correct:     q.answers[i] != Unanswered && q.answers[i] == question.AnswerIndex,
			Explanation: question.Explanation,
		}
	}
	return Result{
		CorrectCount:   q.correct,
		IncorrectCount: len(q.drawn) - q.correct,
		Score:          q.score,
		Review:         review,
	}, nil
}
