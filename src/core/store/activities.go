package store

import (
	"log"
	"sync"
	"time"

	"github.com/mayurii-26/drive-smart-portal/src/core/models"
)

// ActivityStore is the append-only audit trail behind activities.json.
type ActivityStore struct {
	mu   sync.Mutex
	path string
}

func NewActivityStore(path string) *ActivityStore {
	return &ActivityStore{path: path}
}

// Append adds one audit event.
func (s *ActivityStore) Append(activity models.Activity) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var activities []models.Activity
	if err := readJSON(s.path, &activities); err != nil {
		return err
	}
	activities = append(activities, activity)
	return writeJSON(s.path, activities)
}

// All returns every audit event in append order.
func (s *ActivityStore) All() ([]models.Activity, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var activities []models.Activity
	if err := readJSON(s.path, &activities); err != nil {
		return nil, err
	}
	return activities, nil
}

// Record builds and appends an audit event for the given identity. A
// failed append is logged and swallowed: audit writes never fail the
// user-facing request they decorate.
func (s *ActivityStore) Record(identity models.Identity, action string, details map[string]interface{}) {
	err := s.Append(models.Activity{
		UserID:    identity.ID,
		UserName:  identity.Name,
		Action:    action,
		Timestamp: time.Now().UTC(),
		Details:   details,
	})
	if err != nil {
		log.Printf("Failed to record %s activity: %v", action, err)
	}
}
