// Mr_Evra | 2025
// service_test.go

package user

import (
	"context"
	"errors"
	"testing"

	"github.com/mr-evra/portfolio-api/internal/core"
)

type fakeRepository struct {
	created    *User
	createErr  error
	byEmail    map[string]*User
	byID       map[string]*User
	versionFor string
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{
		byEmail: make(map[string]*User),
		byID:    make(map[string]*User),
	}
}

func (f *fakeRepository) Create(ctx context.Context, user *User) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.created = user
	f.byEmail[user.Email] = user
	f.byID[user.ID] = user
	return nil
}

func (f *fakeRepository) GetByID(ctx context.Context, id string) (*User, error) {
	if user, ok := f.byID[id]; ok {
		return user, nil
	}
	return nil, core.ErrNotFound
}

func (f *fakeRepository) GetByEmail(ctx context.Context, email string) (*User, error) {
	if user, ok := f.byEmail[email]; ok {
		return user, nil
	}
	return nil, core.ErrNotFound
}

func (f *fakeRepository) UpdatePassword(ctx context.Context, userID, passwordHash string) error {
	user, ok := f.byID[userID]
	if !ok {
		return core.ErrNotFound
	}
	user.PasswordHash = passwordHash
	return nil
}

func (f *fakeRepository) IncrementTokenVersion(ctx context.Context, userID string) error {
	user, ok := f.byID[userID]
	if !ok {
		return core.ErrNotFound
	}
	user.TokenVersion++
	f.versionFor = userID
	return nil
}

func TestCreateNormalizesEmail(t *testing.T) {
	repo := newFakeRepository()
	svc := NewService(repo)

	created, err := svc.Create(
		context.Background(),
		"Admin@Evradjigbe.COM",
		"hash",
		"Evra",
	)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.Email != "admin@evradjigbe.com" {
		t.Errorf("email = %q, want lowercased", created.Email)
	}
	if created.Role != RoleAdmin {
		t.Errorf("role = %q, want %q", created.Role, RoleAdmin)
	}
	if created.ID == "" {
		t.Error("expected a generated id")
	}
}

func TestGetByEmailLowercasesLookup(t *testing.T) {
	repo := newFakeRepository()
	svc := NewService(repo)

	if _, err := svc.Create(context.Background(), "admin@evradjigbe.com", "hash", "Evra"); err != nil {
		t.Fatalf("create: %v", err)
	}

	info, err := svc.GetByEmail(context.Background(), "ADMIN@evradjigbe.com")
	if err != nil {
		t.Fatalf("get by email: %v", err)
	}
	if info.Email != "admin@evradjigbe.com" {
		t.Errorf("email = %q", info.Email)
	}
	_, err = svc.GetByEmail(context.Background(), "nobody@example.com")
	if !errors.Is(err, core.ErrNotFound) {
		t.Errorf("unknown email error = %v, want ErrNotFound", err)
	}
}

func TestIncrementTokenVersion(t *testing.T) {
	repo := newFakeRepository()
	svc := NewService(repo)

	created, err := svc.Create(context.Background(), "admin@evradjigbe.com", "hash", "Evra")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	before := created.TokenVersion

	if err := svc.IncrementTokenVersion(context.Background(), created.ID); err != nil {
		t.Fatalf("increment: %v", err)
	}

	info, err := svc.GetByID(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("get by id: %v", err)
	}
	if info.TokenVersion != before+1 {
		t.Errorf("token version = %d, want %d", info.TokenVersion, before+1)
	}
}
