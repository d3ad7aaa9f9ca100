package store

import (
	"sync"

	"github.com/mayurii-26/drive-smart-portal/src/core/models"
)

// ProblemStore persists submitted problem tickets in problems.json.
type ProblemStore struct {
	mu   sync.Mutex
	path string
}

func NewProblemStore(path string) *ProblemStore {
	return &ProblemStore{path: path}
}

// Append adds one problem ticket.
func (s *ProblemStore) Append(problem models.Problem) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var problems []models.Problem
	if err := readJSON(s.path, &problems); err != nil {
		return err
	}
	problems = append(problems, problem)
	return writeJSON(s.path, problems)
}

// All returns every problem ticket in submission order.
func (s *ProblemStore) All() ([]models.Problem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var problems []models.Problem
	if err := readJSON(s.path, &problems); err != nil {
		return nil, err
	}
	return problems, nil
}
