package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/care-io/booking-system/internal/core/domain"
	"github.com/care-io/booking-system/internal/core/ports"
)

// ---------------------------------------------------------------------------
// In-memory stub user repository
// ---------------------------------------------------------------------------

type stubUserRepo struct {
	byEmail map[string]*domain.User
	byID    map[string]*domain.User
	nextID  int
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{
		byEmail: make(map[string]*domain.User),
		byID:    make(map[string]*domain.User),
	}
}

func (r *stubUserRepo) Create(_ context.Context, u *domain.User) (*domain.User, error) {
	r.nextID++
	clone := *u
	clone.ID = fmt.Sprintf("usr_%d", r.nextID)
	r.byEmail[clone.Email] = &clone
	r.byID[clone.ID] = &clone
	out := clone
	return &out, nil
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	u, ok := r.byEmail[email]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	clone := *u
	return &clone, nil
}

func (r *stubUserRepo) FindConflict(_ context.Context, email, contact, nid string) (*domain.User, error) {
	for _, u := range r.byID {
		if email != "" && strings.EqualFold(u.Email, email) {
			clone := *u
			return &clone, nil
		}
		if contact != "" && u.Contact == contact {
			clone := *u
			return &clone, nil
		}
		if nid != "" && u.NID == nid {
			clone := *u
			return &clone, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) List(_ context.Context) ([]*domain.User, error) {
	var out []*domain.User
	for _, u := range r.byID {
		clone := *u
		out = append(out, &clone)
	}
	return out, nil
}

func (r *stubUserRepo) UpdateRole(_ context.Context, id, role string) (*domain.User, error) {
	u, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	u.Role = role
	u.UpdatedAt = time.Now().UTC()
	clone := *u
	return &clone, nil
}

func (r *stubUserRepo) UpdateProfile(_ context.Context, email string, update ports.ProfileUpdate) (*domain.User, error) {
	u, ok := r.byEmail[email]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	if update.Name != "" {
		u.Name = update.Name
	}
	if update.Image != "" {
		u.Image = update.Image
	}
	u.UpdatedAt = time.Now().UTC()
	clone := *u
	return &clone, nil
}

func (r *stubUserRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.byID)), nil
}

// ---------------------------------------------------------------------------
// Register tests
// ---------------------------------------------------------------------------

const testSecret = "test-secret"

func validRegister() ports.RegisterInput {
	return ports.RegisterInput{
		Name:     "Asha",
		Email:    "asha@x.com",
		Contact:  "01711000000",
		NID:      "1990123456",
		Password: "s3cret!",
	}
}

func TestAuthService_Register_Success(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewAuthService(repo, testSecret, time.Hour)

	user, err := svc.Register(context.Background(), validRegister())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if user.ID == "" {
		t.Error("user must receive an id")
	}
	if user.Role != domain.RoleUser {
		t.Errorf("new accounts must get role %q, got %q", domain.RoleUser, user.Role)
	}
	if user.PasswordHash == "" || user.PasswordHash == "s3cret!" {
		t.Error("password must be stored hashed")
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("s3cret!")) != nil {
		t.Error("stored hash must verify against the original password")
	}
}

func TestAuthService_Register_NormalizesEmail(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewAuthService(repo, testSecret, time.Hour)

	in := validRegister()
	in.Email = "Asha@X.Com"
	user, err := svc.Register(context.Background(), in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if user.Email != "asha@x.com" {
		t.Errorf("expected lower-cased email, got %q", user.Email)
	}
}

func TestAuthService_Register_MissingFields(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*ports.RegisterInput)
	}{
		{"name", func(in *ports.RegisterInput) { in.Name = "" }},
		{"email", func(in *ports.RegisterInput) { in.Email = "" }},
		{"contact", func(in *ports.RegisterInput) { in.Contact = "" }},
		{"nid", func(in *ports.RegisterInput) { in.NID = "" }},
		{"password", func(in *ports.RegisterInput) { in.Password = "" }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			repo := newStubUserRepo()
			svc := NewAuthService(repo, testSecret, time.Hour)

			in := validRegister()
			tc.mutate(&in)

			if _, err := svc.Register(context.Background(), in); !errors.Is(err, domain.ErrMissingField) {
				t.Fatalf("expected ErrMissingField, got %v", err)
			}
		})
	}
}

func TestAuthService_Register_Conflicts(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewAuthService(repo, testSecret, time.Hour)

	if _, err := svc.Register(context.Background(), validRegister()); err != nil {
		t.Fatalf("seed user: %v", err)
	}

	cases := []struct {
		name   string
		mutate func(*ports.RegisterInput)
		want   error
	}{
		{"email", func(in *ports.RegisterInput) {
			in.Contact = "01700000001"
			in.NID = "1991000001"
		}, domain.ErrEmailTaken},
		{"contact", func(in *ports.RegisterInput) {
			in.Email = "other@x.com"
			in.NID = "1991000001"
		}, domain.ErrContactTaken},
		{"nid", func(in *ports.RegisterInput) {
			in.Email = "other@x.com"
			in.Contact = "01700000001"
		}, domain.ErrNIDTaken},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := validRegister()
			tc.mutate(&in)

			if _, err := svc.Register(context.Background(), in); !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// Login tests
// ---------------------------------------------------------------------------

func TestAuthService_Login_Success(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewAuthService(repo, testSecret, time.Hour)

	if _, err := svc.Register(context.Background(), validRegister()); err != nil {
		t.Fatalf("seed user: %v", err)
	}

	token, user, err := svc.Login(context.Background(), "Asha@x.com", "s3cret!")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if user.Email != "asha@x.com" {
		t.Errorf("unexpected user %q", user.Email)
	}

	parsed, err := jwt.Parse(token, func(t *jwt.Token) (interface{}, error) {
		return []byte(testSecret), nil
	})
	if err != nil || !parsed.Valid {
		t.Fatalf("token must verify with the signing secret: %v", err)
	}
	claims := parsed.Claims.(jwt.MapClaims)
	if claims["email"] != "asha@x.com" || claims["role"] != domain.RoleUser {
		t.Errorf("unexpected claims: %v", claims)
	}
	if _, ok := claims["exp"]; !ok {
		t.Error("token must carry an expiry")
	}
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewAuthService(repo, testSecret, time.Hour)

	if _, err := svc.Register(context.Background(), validRegister()); err != nil {
		t.Fatalf("seed user: %v", err)
	}

	if _, _, err := svc.Login(context.Background(), "asha@x.com", "wrong"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Login_UnknownUser(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewAuthService(repo, testSecret, time.Hour)

	if _, _, err := svc.Login(context.Background(), "ghost@x.com", "whatever"); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestAuthService_Login_PasswordlessAccount(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewAuthService(repo, testSecret, time.Hour)

	_, _, err := svc.EnsureFederated(context.Background(), ports.FederatedInput{
		Name:  "Asha",
		Email: "asha@x.com",
	})
	if err != nil {
		t.Fatalf("seed federated user: %v", err)
	}

	if _, _, err := svc.Login(context.Background(), "asha@x.com", "anything"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("federated account must not log in with a password, got %v", err)
	}
}

// ---------------------------------------------------------------------------
// Federated sign-in tests
// ---------------------------------------------------------------------------

func TestAuthService_EnsureFederated_CreatesThenReuses(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewAuthService(repo, testSecret, time.Hour)

	in := ports.FederatedInput{Name: "Asha", Email: "Asha@X.com", Image: "https://img/x.png"}

	token, first, err := svc.EnsureFederated(context.Background(), in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if token == "" {
		t.Error("federated sign-in must issue a token")
	}
	if first.Email != "asha@x.com" || first.PasswordHash != "" {
		t.Errorf("expected normalized password-less account, got %+v", first)
	}
	if first.Role != domain.RoleUser {
		t.Errorf("expected role %q, got %q", domain.RoleUser, first.Role)
	}

	_, second, err := svc.EnsureFederated(context.Background(), in)
	if err != nil {
		t.Fatalf("unexpected error on repeat sign-in: %v", err)
	}
	if second.ID != first.ID {
		t.Errorf("repeat sign-in must reuse the account: %s vs %s", first.ID, second.ID)
	}
	if n, _ := repo.Count(context.Background()); n != 1 {
		t.Errorf("expected a single stored account, got %d", n)
	}
}

func TestAuthService_EnsureFederated_RequiresEmail(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewAuthService(repo, testSecret, time.Hour)

	if _, _, err := svc.EnsureFederated(context.Background(), ports.FederatedInput{Name: "Asha"}); !errors.Is(err, domain.ErrMissingField) {
		t.Fatalf("expected ErrMissingField, got %v", err)
	}
}
