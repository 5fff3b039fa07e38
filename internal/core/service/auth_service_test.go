package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/campushire/recruitment-system/internal/core/domain"
	"github.com/campushire/recruitment-system/internal/core/ports"
)

var discardLogger = zerolog.Nop()

func newAuthService(repo *stubAccountRepo) *AuthService {
	return NewAuthService(repo, "test-secret", time.Hour, discardLogger)
}

func TestAuthService_Register_Success(t *testing.T) {
	repo := newStubAccountRepo()
	svc := newAuthService(repo)

	result, err := svc.Register(context.Background(), ports.RegisterInput{
		Name: "Acme Corp", Email: "hr@acme.com", Password: "pass123", Role: domain.RoleCompany,
	})
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if result.Token == "" {
		t.Fatal("expected a token")
	}
	if result.Account.Role != domain.RoleCompany {
		t.Fatalf("unexpected role: %s", result.Account.Role)
	}

	stored, err := repo.FindByEmail(context.Background(), "hr@acme.com")
	if err != nil {
		t.Fatalf("account not stored: %v", err)
	}
	if stored.PasswordHash == "pass123" {
		t.Fatal("expected password to be hashed")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("pass123")); err != nil {
		t.Fatalf("stored hash does not match password: %v", err)
	}
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	repo := newStubAccountRepo()
	svc := newAuthService(repo)

	if _, err := svc.Register(context.Background(), ports.RegisterInput{
		Name: "A", Email: "dup@x.com", Password: "p", Role: domain.RoleStudent,
	}); err != nil {
		t.Fatalf("first register failed: %v", err)
	}

	_, err := svc.Register(context.Background(), ports.RegisterInput{
		Name: "B", Email: "dup@x.com", Password: "q", Role: domain.RoleCompany,
	})
	if !errors.Is(err, domain.ErrEmailExists) {
		t.Fatalf("expected ErrEmailExists, got %v", err)
	}
	if len(repo.byID) != 1 {
		t.Fatalf("duplicate registration must not create a record, have %d", len(repo.byID))
	}
}

func TestAuthService_Register_Validation(t *testing.T) {
	svc := newAuthService(newStubAccountRepo())

	if _, err := svc.Register(context.Background(), ports.RegisterInput{
		Email: "x@x.com", Password: "p", Role: domain.RoleStudent,
	}); !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for missing name, got %v", err)
	}

	if _, err := svc.Register(context.Background(), ports.RegisterInput{
		Name: "X", Email: "x@x.com", Password: "p", Role: "superuser",
	}); !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for unknown role, got %v", err)
	}
}

func TestAuthService_Login_TokenRoundTrip(t *testing.T) {
	repo := newStubAccountRepo()
	svc := newAuthService(repo)

	reg, err := svc.Register(context.Background(), ports.RegisterInput{
		Name: "Carol", Email: "carol@uni.edu", Password: "s3cret", Role: domain.RoleCollege,
	})
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}

	result, err := svc.Login(context.Background(), "carol@uni.edu", "s3cret")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}

	claims, err := svc.Verify(result.Token)
	if err != nil {
		t.Fatalf("token does not verify: %v", err)
	}
	if claims.AccountID != reg.Account.ID {
		t.Fatalf("token bound to %q, want %q", claims.AccountID, reg.Account.ID)
	}
	if claims.Role != domain.RoleCollege {
		t.Fatalf("unexpected role claim: %s", claims.Role)
	}
}

func TestAuthService_Login_UniformFailure(t *testing.T) {
	repo := newStubAccountRepo()
	svc := newAuthService(repo)

	_, _ = svc.Register(context.Background(), ports.RegisterInput{
		Name: "Dave", Email: "dave@x.com", Password: "goodpass", Role: domain.RoleStudent,
	})

	_, wrongPass := svc.Login(context.Background(), "dave@x.com", "badpass")
	_, unknownEmail := svc.Login(context.Background(), "ghost@x.com", "whatever")

	if !errors.Is(wrongPass, domain.ErrInvalidCredentials) {
		t.Fatalf("wrong password: expected ErrInvalidCredentials, got %v", wrongPass)
	}
	if !errors.Is(unknownEmail, domain.ErrInvalidCredentials) {
		t.Fatalf("unknown email: expected ErrInvalidCredentials, got %v", unknownEmail)
	}
	// Same sentinel, same message: account existence is not disclosed.
	if wrongPass.Error() != unknownEmail.Error() {
		t.Fatalf("failure messages differ: %q vs %q", wrongPass, unknownEmail)
	}
}

func TestAuthService_Login_ScopeResolution(t *testing.T) {
	repo := newStubAccountRepo()
	svc := newAuthService(repo)

	college, _ := svc.Register(context.Background(), ports.RegisterInput{
		Name: "IIT Indore", Email: "tpo@iiti.ac.in", Password: "p", Role: domain.RoleCollege,
	})
	// A college scopes to its own id.
	got, err := svc.Login(context.Background(), "tpo@iiti.ac.in", "p")
	if err != nil {
		t.Fatal(err)
	}
	if got.Account.CollegeID != college.Account.ID {
		t.Fatalf("college scope: want own id %q, got %q", college.Account.ID, got.Account.CollegeID)
	}

	// A staff member scopes to the owning college.
	_, _ = svc.Register(context.Background(), ports.RegisterInput{
		Name: "Staff", Email: "staff@iiti.ac.in", Password: "p", Role: domain.RoleCollegeMember,
		CollegeID: college.Account.ID,
	})
	got, err = svc.Login(context.Background(), "staff@iiti.ac.in", "p")
	if err != nil {
		t.Fatal(err)
	}
	if got.Account.CollegeID != college.Account.ID {
		t.Fatalf("staff scope: want %q, got %q", college.Account.ID, got.Account.CollegeID)
	}
}

func TestAuthService_ChangePassword(t *testing.T) {
	repo := newStubAccountRepo()
	svc := newAuthService(repo)

	// Seed an account the way a college would: default credential, first login set.
	hash, _ := bcrypt.GenerateFromPassword([]byte(domain.DefaultStudentPassword), bcrypt.DefaultCost)
	_, _ = repo.Create(context.Background(), &domain.Account{
		Name: "Eve", Email: "eve@x.com", PasswordHash: string(hash),
		Role: domain.RoleStudent, FirstLogin: true,
	})

	if err := svc.ChangePassword(context.Background(), "eve@x.com", "myownpass"); err != nil {
		t.Fatalf("change password failed: %v", err)
	}

	stored, _ := repo.FindByEmail(context.Background(), "eve@x.com")
	if stored.FirstLogin {
		t.Fatal("first-login flag must be cleared")
	}
	if bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte(domain.DefaultStudentPassword)) == nil {
		t.Fatal("old password must no longer verify")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("myownpass")); err != nil {
		t.Fatalf("new password must verify: %v", err)
	}
}

func TestAuthService_ChangePassword_UnknownEmail(t *testing.T) {
	svc := newAuthService(newStubAccountRepo())

	err := svc.ChangePassword(context.Background(), "nobody@x.com", "pass")
	if !errors.Is(err, domain.ErrAccountNotFound) {
		t.Fatalf("expected ErrAccountNotFound, got %v", err)
	}
}

func TestAuthService_Verify_RejectsForgedToken(t *testing.T) {
	svc := newAuthService(newStubAccountRepo())

	forged := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "000000000000000000000001",
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	signed, _ := forged.SignedString([]byte("other-secret"))

	if _, err := svc.Verify(signed); err == nil {
		t.Fatal("token signed with a different secret must not verify")
	}
}
