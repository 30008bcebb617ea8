package auth

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/lankagrow/backend/internal/application/adapter"
	"github.com/lankagrow/backend/internal/domain/entity"
	domainerror "github.com/lankagrow/backend/internal/domain/error"
)

type fakeUserRepo struct {
	byEmail map[string]*entity.User
	created []*entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byEmail: make(map[string]*entity.User)}
}

func (f *fakeUserRepo) Create(ctx context.Context, user *entity.User) error {
	f.byEmail[user.Email] = user
	f.created = append(f.created, user)
	return nil
}

func (f *fakeUserRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	for _, u := range f.byEmail {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, errors.New("user not found")
}

func (f *fakeUserRepo) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	u, ok := f.byEmail[email]
	if !ok {
		return nil, errors.New("user not found")
	}
	return u, nil
}

func (f *fakeUserRepo) Update(ctx context.Context, user *entity.User) error { return nil }

func (f *fakeUserRepo) Delete(ctx context.Context, id uuid.UUID) error { return nil }

func (f *fakeUserRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	_, ok := f.byEmail[email]
	return ok, nil
}

// fakePasswordService hashes by prefixing; strength check requires 8 chars.
type fakePasswordService struct{}

func (f *fakePasswordService) HashPassword(password string) (string, error) {
	return "hashed:" + password, nil
}

func (f *fakePasswordService) VerifyPassword(hashedPassword, password string) error {
	if hashedPassword != "hashed:"+password {
		return errors.New("password mismatch")
	}
	return nil
}

func (f *fakePasswordService) ValidatePasswordStrength(password string) error {
	if len(password) < 8 {
		return errors.New("too short")
	}
	return nil
}

// fakeTokenService issues sequential tokens and tracks invalidations.
type fakeTokenService struct {
	counter       int
	invalidated   map[string]bool
	claims        map[string]*adapter.TokenClaims
	revokedAllFor []uuid.UUID
}

func newFakeTokenService() *fakeTokenService {
	return &fakeTokenService{
		invalidated: make(map[string]bool),
		claims:      make(map[string]*adapter.TokenClaims),
	}
}

func (f *fakeTokenService) GenerateTokenPair(ctx context.Context, userID uuid.UUID, email string, rememberMe bool) (*adapter.TokenPair, error) {
	f.counter++
	access := "access-" + string(rune('0'+f.counter))
	refresh := "refresh-" + string(rune('0'+f.counter))
	f.claims[refresh] = &adapter.TokenClaims{UserID: userID, Email: email}
	return &adapter.TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}

func (f *fakeTokenService) ValidateAccessToken(ctx context.Context, token string) (*adapter.TokenClaims, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeTokenService) ValidateRefreshToken(ctx context.Context, token string) (*adapter.TokenClaims, error) {
	claims, ok := f.claims[token]
	if !ok {
		return nil, errors.New("invalid token")
	}
	return claims, nil
}

func (f *fakeTokenService) InvalidateRefreshToken(ctx context.Context, token string) error {
	f.invalidated[token] = true
	return nil
}

func (f *fakeTokenService) InvalidateAllUserTokens(ctx context.Context, userID uuid.UUID) error {
	f.revokedAllFor = append(f.revokedAllFor, userID)
	return nil
}

func (f *fakeTokenService) IsRefreshTokenValid(ctx context.Context, token string) (bool, error) {
	if _, ok := f.claims[token]; !ok {
		return false, nil
	}
	return !f.invalidated[token], nil
}

func authErrorCode(t *testing.T, err error) domainerror.AuthErrorCode {
	t.Helper()
	var authErr *domainerror.AuthError
	if !errors.As(err, &authErr) {
		t.Fatalf("expected AuthError, got %v", err)
	}
	return authErr.Code
}

func TestRegisterUserUseCase_Execute(t *testing.T) {
	ctx := context.Background()

	validInput := RegisterUserInput{
		Email:        "kamal@example.com",
		Name:         "Kamal",
		BusinessName: "Kamal Traders",
		Password:     "s3cret-password",
	}

	t.Run("registers a new user and returns tokens", func(t *testing.T) {
		repo := newFakeUserRepo()
		uc := NewRegisterUserUseCase(repo, &fakePasswordService{}, newFakeTokenService())

		output, err := uc.Execute(ctx, validInput)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.AccessToken == "" || output.RefreshToken == "" {
			t.Error("expected a token pair")
		}
		if output.User.BusinessName != "Kamal Traders" {
			t.Errorf("unexpected business name %q", output.User.BusinessName)
		}
		if output.User.PasswordHash == validInput.Password {
			t.Error("expected the password to be hashed")
		}
		if len(repo.created) != 1 {
			t.Errorf("expected 1 created user, got %d", len(repo.created))
		}
	})

	t.Run("rejects malformed email", func(t *testing.T) {
		uc := NewRegisterUserUseCase(newFakeUserRepo(), &fakePasswordService{}, newFakeTokenService())

		input := validInput
		input.Email = "not-an-email"
		_, err := uc.Execute(ctx, input)
		if code := authErrorCode(t, err); code != domainerror.ErrCodeInvalidEmail {
			t.Errorf("expected code %s, got %s", domainerror.ErrCodeInvalidEmail, code)
		}
	})

	t.Run("rejects weak password", func(t *testing.T) {
		uc := NewRegisterUserUseCase(newFakeUserRepo(), &fakePasswordService{}, newFakeTokenService())

		input := validInput
		input.Password = "short"
		_, err := uc.Execute(ctx, input)
		if code := authErrorCode(t, err); code != domainerror.ErrCodeWeakPassword {
			t.Errorf("expected code %s, got %s", domainerror.ErrCodeWeakPassword, code)
		}
	})

	t.Run("rejects duplicate email", func(t *testing.T) {
		repo := newFakeUserRepo()
		uc := NewRegisterUserUseCase(repo, &fakePasswordService{}, newFakeTokenService())

		if _, err := uc.Execute(ctx, validInput); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		_, err := uc.Execute(ctx, validInput)
		if code := authErrorCode(t, err); code != domainerror.ErrCodeEmailExists {
			t.Errorf("expected code %s, got %s", domainerror.ErrCodeEmailExists, code)
		}
	})
}

func TestLoginUserUseCase_Execute(t *testing.T) {
	ctx := context.Background()

	newFixture := func() (*fakeUserRepo, *entity.User) {
		repo := newFakeUserRepo()
		user := entity.NewUser("kamal@example.com", "Kamal", "Kamal Traders", "hashed:s3cret-password")
		repo.byEmail[user.Email] = user
		return repo, user
	}

	t.Run("logs in with valid credentials", func(t *testing.T) {
		repo, user := newFixture()
		uc := NewLoginUserUseCase(repo, &fakePasswordService{}, newFakeTokenService())

		output, err := uc.Execute(ctx, LoginUserInput{Email: "kamal@example.com", Password: "s3cret-password"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.User.ID != user.ID {
			t.Error("expected the stored user to be returned")
		}
		if output.AccessToken == "" || output.RefreshToken == "" {
			t.Error("expected a token pair")
		}
	})

	t.Run("wrong password yields invalid credentials", func(t *testing.T) {
		repo, _ := newFixture()
		uc := NewLoginUserUseCase(repo, &fakePasswordService{}, newFakeTokenService())

		_, err := uc.Execute(ctx, LoginUserInput{Email: "kamal@example.com", Password: "wrong"})
		if code := authErrorCode(t, err); code != domainerror.ErrCodeInvalidCredentials {
			t.Errorf("expected code %s, got %s", domainerror.ErrCodeInvalidCredentials, code)
		}
	})

	t.Run("unknown email yields the same invalid credentials code", func(t *testing.T) {
		repo, _ := newFixture()
		uc := NewLoginUserUseCase(repo, &fakePasswordService{}, newFakeTokenService())

		_, err := uc.Execute(ctx, LoginUserInput{Email: "stranger@example.com", Password: "s3cret-password"})
		if code := authErrorCode(t, err); code != domainerror.ErrCodeInvalidCredentials {
			t.Errorf("expected code %s, got %s", domainerror.ErrCodeInvalidCredentials, code)
		}
	})
}

func TestRefreshTokenUseCase_Execute(t *testing.T) {
	ctx := context.Background()

	t.Run("rotates the refresh token", func(t *testing.T) {
		tokens := newFakeTokenService()
		pair, err := tokens.GenerateTokenPair(ctx, uuid.New(), "kamal@example.com", false)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		uc := NewRefreshTokenUseCase(tokens)
		output, err := uc.Execute(ctx, RefreshTokenInput{RefreshToken: pair.RefreshToken})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.RefreshToken == pair.RefreshToken {
			t.Error("expected a new refresh token")
		}
		if !tokens.invalidated[pair.RefreshToken] {
			t.Error("expected the old refresh token to be invalidated")
		}
	})

	t.Run("rejects an unknown token", func(t *testing.T) {
		uc := NewRefreshTokenUseCase(newFakeTokenService())

		_, err := uc.Execute(ctx, RefreshTokenInput{RefreshToken: "bogus"})
		if code := authErrorCode(t, err); code != domainerror.ErrCodeInvalidToken {
			t.Errorf("expected code %s, got %s", domainerror.ErrCodeInvalidToken, code)
		}
	})

	t.Run("rejects a revoked token and revokes all sessions", func(t *testing.T) {
		tokens := newFakeTokenService()
		userID := uuid.New()
		pair, err := tokens.GenerateTokenPair(ctx, userID, "kamal@example.com", false)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if err := tokens.InvalidateRefreshToken(ctx, pair.RefreshToken); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		uc := NewRefreshTokenUseCase(tokens)
		_, err = uc.Execute(ctx, RefreshTokenInput{RefreshToken: pair.RefreshToken})
		if code := authErrorCode(t, err); code != domainerror.ErrCodeInvalidToken {
			t.Errorf("expected code %s, got %s", domainerror.ErrCodeInvalidToken, code)
		}
		if len(tokens.revokedAllFor) != 1 || tokens.revokedAllFor[0] != userID {
			t.Errorf("expected all sessions for %s to be revoked, got %v", userID, tokens.revokedAllFor)
		}
	})
}

func TestLogoutUserUseCase_Execute(t *testing.T) {
	ctx := context.Background()

	t.Run("invalidates the refresh token", func(t *testing.T) {
		tokens := newFakeTokenService()
		uc := NewLogoutUserUseCase(tokens)

		output, err := uc.Execute(ctx, LogoutUserInput{RefreshToken: "some-token"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !tokens.invalidated["some-token"] {
			t.Error("expected the refresh token to be invalidated")
		}
		if output.Message == "" {
			t.Error("expected a confirmation message")
		}
	})
}
