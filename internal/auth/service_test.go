// Mr_Evra | 2025
// service_test.go

package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/mr-evra/portfolio-api/internal/core"
)

type fakeRepository struct {
	tokens         map[string]*RefreshToken
	deletedExpired int64
	deleteErr      error
}

func newFakeAuthRepository() *fakeRepository {
	return &fakeRepository{tokens: make(map[string]*RefreshToken)}
}

func (f *fakeRepository) Create(ctx context.Context, token *RefreshToken) error {
	f.tokens[token.ID] = token
	return nil
}

func (f *fakeRepository) FindByHash(ctx context.Context, tokenHash string) (*RefreshToken, error) {
	for _, token := range f.tokens {
		if token.TokenHash == tokenHash {
			return token, nil
		}
	}
	return nil, core.ErrNotFound
}

func (f *fakeRepository) FindByID(ctx context.Context, id string) (*RefreshToken, error) {
	if token, ok := f.tokens[id]; ok {
		return token, nil
	}
	return nil, core.ErrNotFound
}

func (f *fakeRepository) MarkAsUsed(ctx context.Context, id string) error {
	token, ok := f.tokens[id]
	if !ok {
		return core.ErrNotFound
	}
	token.IsUsed = true
	return nil
}

func (f *fakeRepository) RevokeByID(ctx context.Context, id string) error {
	token, ok := f.tokens[id]
	if !ok {
		return core.ErrNotFound
	}
	now := time.Now()
	token.RevokedAt = &now
	return nil
}

func (f *fakeRepository) RevokeByFamilyID(ctx context.Context, familyID string) error {
	now := time.Now()
	for _, token := range f.tokens {
		if token.FamilyID == familyID {
			token.RevokedAt = &now
		}
	}
	return nil
}

func (f *fakeRepository) RevokeAllForUser(ctx context.Context, userID string) error {
	now := time.Now()
	for _, token := range f.tokens {
		if token.UserID == userID {
			token.RevokedAt = &now
		}
	}
	return nil
}

func (f *fakeRepository) GetActiveSessionsForUser(ctx context.Context, userID string) ([]RefreshToken, error) {
	out := make([]RefreshToken, 0)
	for _, token := range f.tokens {
		if token.UserID == userID && token.IsValid() {
			out = append(out, *token)
		}
	}
	return out, nil
}

func (f *fakeRepository) DeleteExpired(ctx context.Context) (int64, error) {
	if f.deleteErr != nil {
		return 0, f.deleteErr
	}
	return f.deletedExpired, nil
}

type fakeUserProvider struct {
	user *UserInfo
	err  error
}

func (f *fakeUserProvider) GetByEmail(ctx context.Context, email string) (*UserInfo, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.user, nil
}

func (f *fakeUserProvider) GetByID(ctx context.Context, id string) (*UserInfo, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.user, nil
}

func (f *fakeUserProvider) IncrementTokenVersion(ctx context.Context, userID string) error {
	f.user.TokenVersion++
	return nil
}

func (f *fakeUserProvider) UpdatePassword(ctx context.Context, userID, passwordHash string) error {
	f.user.PasswordHash = passwordHash
	return nil
}

type fakeBlacklist struct {
	entries map[string]time.Duration
}

func newFakeBlacklist() *fakeBlacklist {
	return &fakeBlacklist{entries: make(map[string]time.Duration)}
}

func (f *fakeBlacklist) Add(ctx context.Context, jti string, ttl time.Duration) error {
	f.entries[jti] = ttl
	return nil
}

func (f *fakeBlacklist) Contains(ctx context.Context, jti string) (bool, error) {
	_, ok := f.entries[jti]
	return ok, nil
}

func adminUser() *UserInfo {
	return &UserInfo{
		ID:           "user-1",
		Email:        "admin@evradjigbe.com",
		Name:         "Evra",
		Role:         "admin",
		TokenVersion: 1,
	}
}

func newServiceUnderTest(t *testing.T) (*Service, *fakeRepository, *fakeUserProvider, *fakeBlacklist) {
	t.Helper()

	repo := newFakeAuthRepository()
	provider := &fakeUserProvider{user: adminUser()}
	blacklist := newFakeBlacklist()
	manager := newTestJWTManager(t, 15*time.Minute)

	return NewService(repo, manager, provider, blacklist), repo, provider, blacklist
}

func TestVerifyAccessTokenRejectsRevoked(t *testing.T) {
	svc, _, _, _ := newServiceUnderTest(t)
	ctx := context.Background()

	signed, err := svc.jwt.CreateAccessToken(AccessTokenClaims{
		UserID:       "user-1",
		Role:         "admin",
		TokenVersion: 1,
	})
	if err != nil {
		t.Fatalf("create token: %v", err)
	}

	claims, err := svc.VerifyAccessToken(ctx, signed)
	if err != nil {
		t.Fatalf("verify before revocation: %v", err)
	}
	if claims.TokenID == "" {
		t.Fatal("expected a jti on the verified claims")
	}

	if err := svc.RevokeAccessToken(ctx, claims.TokenID, claims.ExpiresAt); err != nil {
		t.Fatalf("revoke: %v", err)
	}

	_, err = svc.VerifyAccessToken(ctx, signed)
	if !errors.Is(err, core.ErrTokenRevoked) {
		t.Errorf("error after revocation = %v, want ErrTokenRevoked", err)
	}
}

func TestVerifyAccessTokenRejectsStaleVersion(t *testing.T) {
	svc, _, provider, _ := newServiceUnderTest(t)
	ctx := context.Background()

	signed, err := svc.jwt.CreateAccessToken(AccessTokenClaims{
		UserID:       "user-1",
		Role:         "admin",
		TokenVersion: 1,
	})
	if err != nil {
		t.Fatalf("create token: %v", err)
	}

	if _, err := svc.VerifyAccessToken(ctx, signed); err != nil {
		t.Fatalf("verify with current version: %v", err)
	}

	provider.user.TokenVersion = 2

	_, err = svc.VerifyAccessToken(ctx, signed)
	if !errors.Is(err, core.ErrTokenRevoked) {
		t.Errorf("error with stale version = %v, want ErrTokenRevoked", err)
	}
}

func TestRevokeAccessTokenSkipsExpired(t *testing.T) {
	svc, _, _, blacklist := newServiceUnderTest(t)

	err := svc.RevokeAccessToken(
		context.Background(),
		"old-jti",
		time.Now().Add(-time.Minute),
	)
	if err != nil {
		t.Fatalf("revoke: %v", err)
	}
	if len(blacklist.entries) != 0 {
		t.Error("expired token should not be blacklisted")
	}
}

func TestPurgeExpiredTokens(t *testing.T) {
	svc, repo, _, _ := newServiceUnderTest(t)
	repo.deletedExpired = 4

	deleted, err := svc.PurgeExpiredTokens(context.Background())
	if err != nil {
		t.Fatalf("purge: %v", err)
	}
	if deleted != 4 {
		t.Errorf("deleted = %d, want 4", deleted)
	}

	repo.deleteErr = errors.New("connection refused")
	if _, err := svc.PurgeExpiredTokens(context.Background()); err == nil {
		t.Error("expected purge error to surface")
	}
}

func TestLoginThenLogoutAllInvalidatesAccessToken(t *testing.T) {
	svc, _, provider, _ := newServiceUnderTest(t)
	ctx := context.Background()

	hash, err := core.HashPassword("SecurePassword123!")
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	provider.user.PasswordHash = hash

	resp, err := svc.Login(ctx, LoginRequest{
		Email:    "admin@evradjigbe.com",
		Password: "SecurePassword123!",
	}, "agent", "127.0.0.1")
	if err != nil {
		t.Fatalf("login: %v", err)
	}

	if _, err := svc.VerifyAccessToken(ctx, resp.Tokens.AccessToken); err != nil {
		t.Fatalf("verify after login: %v", err)
	}

	if err := svc.LogoutAll(ctx, "user-1"); err != nil {
		t.Fatalf("logout all: %v", err)
	}

	_, err = svc.VerifyAccessToken(ctx, resp.Tokens.AccessToken)
	if !errors.Is(err, core.ErrTokenRevoked) {
		t.Errorf("error after logout-all = %v, want ErrTokenRevoked", err)
	}
}
