package store

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/mayurii-26/drive-smart-portal/src/core/models"
)

func newTestUserStore(t *testing.T) *UserStore {
	t.Helper()
	path := filepath.Join(t.TempDir(), "users.json")
	if err := initDataFile(path); err != nil {
		t.Fatalf("initDataFile() failed: %v", err)
	}
	return NewUserStore(path)
}

func TestAppendAndFindByEmail(t *testing.T) {
	users := newTestUserStore(t)

	user := models.User{
		ID:        "user-1",
		Name:      "Priya",
		Email:     "priya@example.com",
		Password:  "hashed",
		Role:      models.RoleUser,
		CreatedAt: time.Now().UTC(),
	}
	if err := users.Append(user); err != nil {
		t.Fatalf("Append() failed: %v", err)
	}

	got, err := users.FindByEmail("priya@example.com")
	if err != nil {
		t.Fatalf("FindByEmail() failed: %v", err)
	}
	if got.ID != user.ID || got.Role != user.Role {
		t.Fatalf("FindByEmail() = %+v, want %+v", got, user)
	}

	// Lookup is case-insensitive.
	if _, err := users.FindByEmail("PRIYA@example.com"); err != nil {
		t.Fatalf("case-insensitive FindByEmail() failed: %v", err)
	}
}

func TestFindByEmailNotFound(t *testing.T) {
	users := newTestUserStore(t)
	if _, err := users.FindByEmail("ghost@example.com"); err != ErrNotFound {
		t.Fatalf("FindByEmail() error = %v, want ErrNotFound", err)
	}
}

func TestAppendRejectsDuplicateEmail(t *testing.T) {
	users := newTestUserStore(t)

	user := models.User{ID: "user-1", Email: "priya@example.com"}
	if err := users.Append(user); err != nil {
		t.Fatalf("Append() failed: %v", err)
	}
	dup := models.User{ID: "user-2", Email: "Priya@Example.com"}
	if err := users.Append(dup); err != ErrDuplicateEmail {
		t.Fatalf("duplicate Append() error = %v, want ErrDuplicateEmail", err)
	}

	all, err := users.All()
	if err != nil {
		t.Fatalf("All() failed: %v", err)
	}
	if len(all) != 1 {
		t.Fatalf("store holds %d users after rejected duplicate, want 1", len(all))
	}
}

func TestInitSeedsDefaultAdminOnce(t *testing.T) {
	dir := t.TempDir()
	if err := Init(dir); err != nil {
		t.Fatalf("Init() failed: %v", err)
	}

	admin, err := Users.FindByEmail(DefaultAdminEmail)
	if err != nil {
		t.Fatalf("admin not seeded: %v", err)
	}
	if admin.Role != models.RoleAdmin {
		t.Fatalf("seeded admin role = %q", admin.Role)
	}

	// A second Init over the same directory must not duplicate the admin.
	if err := Init(dir); err != nil {
		t.Fatalf("second Init() failed: %v", err)
	}
	all, err := Users.All()
	if err != nil {
		t.Fatalf("All() failed: %v", err)
	}
	count := 0
	for _, u := range all {
		if u.Email == DefaultAdminEmail {
			count++
		}
	}
	if count != 1 {
		t.Fatalf("admin seeded %d times, want 1", count)
	}
}
