package practice

import (
	"fmt"
	"testing"

	"github.com/mayurii-26/drive-smart-portal/src/core/models"
)

func makePool(n int) []models.Question {
	pool := make([]models.Question, n)
	for i := range pool {
		pool[i] = models.Question{
			Question:    fmt.Sprintf("Question %d", i),
			Options:     []string{"A", "B", "C", "D"},
			AnswerIndex: i % OptionsPerQuestion,
			Explanation: fmt.Sprintf("Explanation %d", i),
		}
	}
	return pool
}

func TestStartDrawsTwentyDistinctQuestions(t *testing.T) {
	pool := makePool(35)

	quiz, err := Start(pool)
	if err != nil {
		t.Fatalf("Start() failed: %v", err)
	}
	if len(quiz.drawn) != QuestionsPerQuiz {
		t.Fatalf("drew %d questions, want %d", len(quiz.drawn), QuestionsPerQuiz)
	}

	inPool := make(map[string]bool, len(pool))
	for _, q := range pool {
		inPool[q.Question] = true
	}
	seen := make(map[string]bool, QuestionsPerQuiz)
	for _, q := range quiz.drawn {
		if !inPool[q.Question] {
			t.Fatalf("drawn question %q is not in the pool", q.Question)
		}
		if seen[q.Question] {
			t.Fatalf("question %q drawn twice", q.Question)
		}
		seen[q.Question] = true
	}

	if quiz.current != 0 {
		t.Errorf("currentIndex = %d, want 0", quiz.current)
	}
	for i, a := range quiz.answers {
		if a != Unanswered {
			t.Errorf("answers[%d] = %d, want Unanswered", i, a)
		}
	}
	if quiz.completed {
		t.Error("new quiz must not be completed")
	}
}

func TestStartRejectsSmallPool(t *testing.T) {
	quiz, err := Start(makePool(QuestionsPerQuiz - 1))
	if err != ErrInsufficientData {
		t.Fatalf("Start() error = %v, want ErrInsufficientData", err)
	}
	if quiz != nil {
		t.Fatal("Start() must not return a session on failure")
	}
}

func TestNextIsNoOpWhenUnanswered(t *testing.T) {
	quiz, err := Start(makePool(25))
	if err != nil {
		t.Fatalf("Start() failed: %v", err)
	}

	quiz.Next()
	if quiz.current != 0 {
		t.Fatalf("Next() advanced past an unanswered question to %d", quiz.current)
	}

	if err := quiz.SelectAnswer(2); err != nil {
		t.Fatalf("SelectAnswer() failed: %v", err)
	}
	quiz.Next()
	if quiz.current != 1 {
		t.Fatalf("currentIndex = %d after answering and Next(), want 1", quiz.current)
	}
}

func TestSelectAnswerOverwrites(t *testing.T) {
	quiz, err := Start(makePool(25))
	if err != nil {
		t.Fatalf("Start() failed: %v", err)
	}

	if err := quiz.SelectAnswer(1); err != nil {
		t.Fatalf("SelectAnswer(1) failed: %v", err)
	}
	if err := quiz.SelectAnswer(3); err != nil {
		t.Fatalf("SelectAnswer(3) failed: %v", err)
	}
	if quiz.answers[0] != 3 {
		t.Fatalf("answers[0] = %d, want 3 (overwrite, not append)", quiz.answers[0])
	}
}

func TestSelectAnswerValidatesOption(t *testing.T) {
	quiz, err := Start(makePool(25))
	if err != nil {
		t.Fatalf("Start() failed: %v", err)
	}

	for _, option := range []int{-1, OptionsPerQuestion} {
		if err := quiz.SelectAnswer(option); err != ErrInvalidOption {
			t.Errorf("SelectAnswer(%d) error = %v, want ErrInvalidOption", option, err)
		}
	}
}

func TestPreviousNeverRequiresAnswer(t *testing.T) {
	quiz, err := Start(makePool(25))
	if err != nil {
		t.Fatalf("Start() failed: %v", err)
	}

	quiz.Previous()
	if quiz.current != 0 {
		t.Fatalf("Previous() on first question moved to %d", quiz.current)
	}

	if err := quiz.SelectAnswer(0); err != nil {
		t.Fatalf("SelectAnswer() failed: %v", err)
	}
	quiz.Next()
	// Current question unanswered; backward navigation must still work.
	quiz.Previous()
	if quiz.current != 0 {
		t.Fatalf("Previous() from unanswered question moved to %d, want 0", quiz.current)
	}
}

func TestSubmitUnreachableUntilLastAnswered(t *testing.T) {
	quiz, err := Start(makePool(25))
	if err != nil {
		t.Fatalf("Start() failed: %v", err)
	}

	if err := quiz.Submit(); err != ErrQuizIncomplete {
		t.Fatalf("Submit() on fresh quiz error = %v, want ErrQuizIncomplete", err)
	}
	if quiz.completed {
		t.Fatal("failed Submit() must not complete the quiz")
	}

	// Answer everything except the last question.
	for i := 0; i < QuestionsPerQuiz-1; i++ {
		if err := quiz.SelectAnswer(0); err != nil {
			t.Fatalf("SelectAnswer() failed: %v", err)
		}
		quiz.Next()
	}
	if err := quiz.Submit(); err != ErrQuizIncomplete {
		t.Fatalf("Submit() with unanswered last question error = %v, want ErrQuizIncomplete", err)
	}
}

func TestScoringCountsPositionalMatches(t *testing.T) {
	quiz, err := Start(makePool(25))
	if err != nil {
		t.Fatalf("Start() failed: %v", err)
	}

	// Answer the first 10 correctly and the rest incorrectly.
	for i := 0; i < QuestionsPerQuiz; i++ {
		answer := quiz.drawn[i].AnswerIndex
		if i >= 10 {
			answer = (answer + 1) % OptionsPerQuestion
		}
		if err := quiz.SelectAnswer(answer); err != nil {
			t.Fatalf("SelectAnswer() failed: %v", err)
		}
		quiz.Next()
	}

	if !quiz.Completed() {
		t.Fatal("Next() on the answered last question must submit")
	}
	result, err := quiz.Result()
	if err != nil {
		t.Fatalf("Result() failed: %v", err)
	}
	if result.CorrectCount != 10 {
		t.Errorf("correctCount = %d, want 10", result.CorrectCount)
	}
	if result.Score != 50 {
		t.Errorf("score = %d, want 50", result.Score)
	}
}

func TestPerfectRun(t *testing.T) {
	quiz, err := Start(makePool(25))
	if err != nil {
		t.Fatalf("Start() failed: %v", err)
	}

	for i := 0; i < QuestionsPerQuiz; i++ {
		if err := quiz.SelectAnswer(quiz.drawn[i].AnswerIndex); err != nil {
			t.Fatalf("SelectAnswer() failed: %v", err)
		}
		quiz.Next()
	}

	result, err := quiz.Result()
	if err != nil {
		t.Fatalf("Result() failed: %v", err)
	}
	if result.Score != 100 || result.CorrectCount != QuestionsPerQuiz {
		t.Fatalf("got score %d (%d correct), want 100 (%d correct)",
			result.Score, result.CorrectCount, QuestionsPerQuiz)
	}
	if !quiz.Completed() {
		t.Fatal("quiz must be completed after the final Next()")
	}
}

func TestCompletedQuizIsTerminal(t *testing.T) {
	quiz, err := Start(makePool(25))
	if err != nil {
		t.Fatalf("Start() failed: %v", err)
	}
	for i := 0; i < QuestionsPerQuiz; i++ {
		if err := quiz.SelectAnswer(0); err != nil {
			t.Fatalf("SelectAnswer() failed: %v", err)
		}
		quiz.Next()
	}

	if err := quiz.SelectAnswer(1); err != ErrQuizCompleted {
		t.Errorf("SelectAnswer() after submit error = %v, want ErrQuizCompleted", err)
	}
	if err := quiz.Submit(); err != ErrQuizCompleted {
		t.Errorf("second Submit() error = %v, want ErrQuizCompleted", err)
	}

	index := quiz.current
	quiz.Next()
	quiz.Previous()
	if quiz.current != index {
		t.Error("navigation on a completed quiz must be a no-op")
	}
}

func TestRestartDiscardsPriorState(t *testing.T) {
	pool := makePool(25)
	quiz, err := Start(pool)
	if err != nil {
		t.Fatalf("Start() failed: %v", err)
	}
	if err := quiz.SelectAnswer(2); err != nil {
		t.Fatalf("SelectAnswer() failed: %v", err)
	}
	quiz.Next()

	restarted, err := Start(pool)
	if err != nil {
		t.Fatalf("restart Start() failed: %v", err)
	}
	if restarted.current != 0 {
		t.Errorf("restarted currentIndex = %d, want 0", restarted.current)
	}
	for i, a := range restarted.answers {
		if a != Unanswered {
			t.Errorf("restarted answers[%d] = %d, want Unanswered", i, a)
		}
	}
}
