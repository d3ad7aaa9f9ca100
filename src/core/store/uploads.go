package store

import (
	"sync"

	"github.com/mayurii-26/drive-smart-portal/src/core/models"
)

// UploadStore persists upload metadata in uploads.json.
type UploadStore struct {
	mu   sync.Mutex
	path string
}

func NewUploadStore(path string) *UploadStore {
	return &UploadStore{path: path}
}

// Append adds one upload record.
func (s *UploadStore) Append(upload models.Upload) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var uploads []models.Upload
	if err := readJSON(s.path, &uploads); err != nil {
		return err
	}
	uploads = append(uploads, upload)
	return writeJSON(s.path, uploads)
}

// All returns every upload record in append order.
func (s *UploadStore) All() ([]models.Upload, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var uploads []models.Upload
	if err := readJSON(s.path, &uploads); err != nil {
		return nil, err
	}
	return uploads, nil
}

// ByUser returns the upload records belonging to one user.
func (s *UploadStore) ByUser(userID string) ([]models.Upload, error) {
	all, err := s.All()
	if err != nil {
		return nil, err
	}
	var mine []models.Upload
	for _, u := range all {
		if u.UserID == userID {
			mine = append(mine, u)
		}
	}
	return mine, nil
}
