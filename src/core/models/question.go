package models

// Question is a single multiple-choice entry from the static driving-test
// pool (data/ll_questions.json). Immutable once loaded.
type Question struct {
	Question    string   `json:"question"`
	Options     []string `json:"options"`
	AnswerIndex int      `json:"answerIndex"`
	Explanation string   `json:"explanation"`
}
