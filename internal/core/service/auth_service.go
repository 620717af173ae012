package service

import (
	"context"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/care-io/booking-system/internal/core/domain"
	"github.com/care-io/booking-system/internal/core/ports"
)

// AuthService implements registration, password login, and federated sign-in.
type AuthService struct {
	repo      ports.UserRepository
	jwtSecret string
	tokenTTL  time.Duration
}

func NewAuthService(repo ports.UserRepository, jwtSecret string, tokenTTL time.Duration) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}
	return &AuthService{repo: repo, jwtSecret: jwtSecret, tokenTTL: tokenTTL}
}

// Register creates a password account. Email, contact, and NID collisions are
// pre-checked so each conflict surfaces as a distinct error; the unique
// indexes on the collection back this up under concurrency.
func (s *AuthService) Register(ctx context.Context, input ports.RegisterInput) (*domain.User, error) {
	if input.Name == "" || input.Email == "" || input.Contact == "" || input.NID == "" || input.Password == "" {
		return nil, domain.ErrMissingField
	}

	email := strings.ToLower(input.Email)

	existing, err := s.repo.FindConflict(ctx, email, input.Contact, input.NID)
	if err != nil && err != domain.ErrUserNotFound {
		return nil, err
	}
	if existing != nil {
		switch {
		case strings.EqualFold(existing.Email, email):
			return nil, domain.ErrEmailTaken
		case existing.Contact == input.Contact:
			return nil, domain.ErrContactTaken
		default:
			return nil, domain.ErrNIDTaken
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	user := &domain.User{
		Name:         input.Name,
		Email:        email,
		PasswordHash: string(hash),
		Contact:      input.Contact,
		NID:          input.NID,
		Role:         domain.RoleUser,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	return s.repo.Create(ctx, user)
}

// Login verifies the password against the stored hash and issues a token.
// Password-less accounts (federated sign-ins) always fail the comparison.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	if email == "" || password == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	user, err := s.repo.FindByEmail(ctx, strings.ToLower(email))
	if err != nil {
		return "", nil, err
	}

	if user.PasswordHash == "" {
		return "", nil, domain.ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return "", nil, domain.ErrInvalidCredentials
	}

	token, err := s.generateToken(user)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}

// EnsureFederated upserts a password-less account for a federated identity
// and issues the same token a password login would.
func (s *AuthService) EnsureFederated(ctx context.Context, input ports.FederatedInput) (string, *domain.User, error) {
	if input.Email == "" {
		return "", nil, domain.ErrMissingField
	}

	email := strings.ToLower(input.Email)
	user, err := s.repo.FindByEmail(ctx, email)
	if err == domain.ErrUserNotFound {
		now := time.Now().UTC()
		user, err = s.repo.Create(ctx, &domain.User{
			Name:      input.Name,
			Email:     email,
			Image:     input.Image,
			Role:      domain.RoleUser,
			CreatedAt: now,
			UpdatedAt: now,
		})
	}
	if err != nil {
		return "", nil, err
	}

	token, err := s.generateToken(user)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}

func (s *AuthService) generateToken(user *domain.User) (string, error) {
	claims := jwt.MapClaims{
		"email": user.Email,
		"name":  user.Name,
		"role":  user.Role,
		"exp":   time.Now().Add(s.tokenTTL).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.jwtSecret))
}
