package jwt

import (
	"crypto/ed25519"
	"crypto/rand"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

// ============================================================================
// Test Helpers
// ============================================================================

func newLocalService(t *testing.T) *Service {
	t.Helper()
	_, privateKey, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		t.Fatalf("failed to generate Ed25519 key: %v", err)
	}
	return NewTestService(privateKey, "test-issuer", 15*time.Minute)
}

func newLocalServiceWithExpiration(t *testing.T, expiration time.Duration) *Service {
	t.Helper()
	_, privateKey, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		t.Fatalf("failed to generate Ed25519 key: %v", err)
	}
	return NewTestService(privateKey, "test-issuer", expiration)
}

// ============================================================================
// Claims.Valid() Tests
// ============================================================================

func TestClaims_Valid_NoExpiration_ReturnsNil(t *testing.T) {
	t.Parallel()
	claims := Claims{
		UserID: "4ca7f3a9",
		Email:  "planner@example.com",
	}

	err := claims.Valid()

	if err != nil {
		t.Errorf("expected no error for claims without expiration, got %v", err)
	}
}

func TestClaims_Valid_Expired_ReturnsErrTokenExpired(t *testing.T) {
	t.Parallel()
	claims := Claims{
		UserID:    "4ca7f3a9",
		ExpiresAt: time.Now().Add(-1 * time.Hour).Unix(),
	}

	err := claims.Valid()

	if err != ErrTokenExpired {
		t.Errorf("expected ErrTokenExpired, got %v", err)
	}
}

func TestClaims_Valid_NotYetValid_ReturnsErrTokenNotYetValid(t *testing.T) {
	t.Parallel()
	claims := Claims{
		UserID:    "4ca7f3a9",
		NotBefore: time.Now().Add(1 * time.Hour).Unix(),
	}

	err := claims.Valid()

	if err != ErrTokenNotYetValid {
		t.Errorf("expected ErrTokenNotYetValid, got %v", err)
	}
}

func TestClaims_IsAdmin_AdminRole_ReturnsTrue(t *testing.T) {
	t.Parallel()
	claims := Claims{Role: "admin"}

	if !claims.IsAdmin() {
		t.Error("expected IsAdmin to be true for admin role")
	}
}

func TestClaims_IsAdmin_PlannerRole_ReturnsFalse(t *testing.T) {
	t.Parallel()
	claims := Claims{Role: "planner"}

	if claims.IsAdmin() {
		t.Error("expected IsAdmin to be false for planner role")
	}
}

// ============================================================================
// Service.Sign() Tests
// ============================================================================

func TestSign_ValidClaims_ReturnsThreePartToken(t *testing.T) {
	t.Parallel()
	svc := newLocalService(t)
	claims := Claims{
		UserID: "4ca7f3a9",
		Email:  "planner@example.com",
	}

	token, err := svc.Sign(claims)

	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if token == "" {
		t.Error("expected non-empty token")
	}
	if parts := strings.Split(token, "."); len(parts) != 3 {
		t.Errorf("expected 3 token parts, got %d", len(parts))
	}
}

func TestSign_NoPrivateKey_ReturnsErrInvalidKey(t *testing.T) {
	t.Parallel()
	svc := &Service{issuer: "test-issuer"}

	_, err := svc.Sign(Claims{UserID: "4ca7f3a9"})

	if err != ErrInvalidKey {
		t.Errorf("expected ErrInvalidKey, got %v", err)
	}
}

// ============================================================================
// Service.Validate() Tests
// ============================================================================

func TestValidate_SignedToken_RoundTripsClaims(t *testing.T) {
	t.Parallel()
	svc := newLocalService(t)
	token, err := svc.Sign(Claims{
		Subject: "4ca7f3a9",
		UserID:  "4ca7f3a9",
		Email:   "planner@example.com",
		Name:    "Alex Planner",
		Role:    "planner",
	})
	if err != nil {
		t.Fatalf("failed to sign: %v", err)
	}

	claims, err := svc.Validate(token)

	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if claims.UserID != "4ca7f3a9" {
		t.Errorf("expected UserID 4ca7f3a9, got %q", claims.UserID)
	}
	if claims.Email != "planner@example.com" {
		t.Errorf("expected email planner@example.com, got %q", claims.Email)
	}
	if claims.Role != "planner" {
		t.Errorf("expected role planner, got %q", claims.Role)
	}
	if claims.Issuer != "test-issuer" {
		t.Errorf("expected issuer test-issuer, got %q", claims.Issuer)
	}
}

func TestValidate_ExpiredToken_ReturnsErrTokenExpired(t *testing.T) {
	t.Parallel()
	svc := newLocalServiceWithExpiration(t, -1*time.Hour)
	token, err := svc.Sign(Claims{UserID: "4ca7f3a9"})
	if err != nil {
		t.Fatalf("failed to sign: %v", err)
	}

	_, err = svc.Validate(token)

	if err != ErrTokenExpired {
		t.Errorf("expected ErrTokenExpired, got %v", err)
	}
}

func TestValidate_TamperedPayload_ReturnsErrInvalidSignature(t *testing.T) {
	t.Parallel()
	svc := newLocalService(t)
	token, err := svc.Sign(Claims{UserID: "4ca7f3a9", Role: "planner"})
	if err != nil {
		t.Fatalf("failed to sign: %v", err)
	}

	parts := strings.Split(token, ".")
	forged := base64URLEncode([]byte(`{"user_id":"4ca7f3a9","role":"admin"}`))
	tampered := parts[0] + "." + forged + "." + parts[2]

	_, err = svc.Validate(tampered)

	if err != ErrInvalidSignature {
		t.Errorf("expected ErrInvalidSignature, got %v", err)
	}
}

func TestValidate_WrongIssuer_ReturnsErrInvalidToken(t *testing.T) {
	t.Parallel()
	_, privateKey, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		t.Fatalf("failed to generate Ed25519 key: %v", err)
	}
	signer := NewTestService(privateKey, "other-issuer", 15*time.Minute)
	verifier := NewTestService(privateKey, "test-issuer", 15*time.Minute)

	token, err := signer.Sign(Claims{UserID: "4ca7f3a9"})
	if err != nil {
		t.Fatalf("failed to sign: %v", err)
	}

	_, err = verifier.Validate(token)

	if err != ErrInvalidToken {
		t.Errorf("expected ErrInvalidToken, got %v", err)
	}
}

func TestValidate_WrongKey_ReturnsErrInvalidSignature(t *testing.T) {
	t.Parallel()
	signer := newLocalService(t)
	verifier := newLocalService(t)

	token, err := signer.Sign(Claims{UserID: "4ca7f3a9"})
	if err != nil {
		t.Fatalf("failed to sign: %v", err)
	}

	_, err = verifier.Validate(token)

	if err != ErrInvalidSignature {
		t.Errorf("expected ErrInvalidSignature, got %v", err)
	}
}

func TestValidate_Garbage_ReturnsErrInvalidToken(t *testing.T) {
	t.Parallel()
	svc := newLocalService(t)

	for _, token := range []string{"", "abc", "a.b", "a.b.c.d"} {
		if _, err := svc.Validate(token); err != ErrInvalidToken {
			t.Errorf("token %q: expected ErrInvalidToken, got %v", token, err)
		}
	}
}

// ============================================================================
// Key Pair Tests
// ============================================================================

func TestGenerateKeyPair_WritesLoadableKeys(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	privPath := filepath.Join(dir, "jwt.pem")
	pubPath := filepath.Join(dir, "jwt.pub.pem")

	if err := GenerateKeyPair(privPath, pubPath); err != nil {
		t.Fatalf("failed to generate key pair: %v", err)
	}

	svc, err := NewService(Config{
		PrivateKeyPath: privPath,
		Issuer:         "test-issuer",
		ExpirationMins: 15,
	})
	if err != nil {
		t.Fatalf("failed to load private key: %v", err)
	}

	token, err := svc.Sign(Claims{UserID: "4ca7f3a9"})
	if err != nil {
		t.Fatalf("failed to sign with generated key: %v", err)
	}

	verifier, err := NewService(Config{
		PublicKeyPath:  pubPath,
		Issuer:         "test-issuer",
		ExpirationMins: 15,
	})
	if err != nil {
		t.Fatalf("failed to load public key: %v", err)
	}

	if _, err := verifier.Validate(token); err != nil {
		t.Errorf("expected public-key-only service to validate token, got %v", err)
	}
}

func TestNewService_MissingKeyFile_ReturnsError(t *testing.T) {
	t.Parallel()
	_, err := NewService(Config{
		PrivateKeyPath: filepath.Join(t.TempDir(), "missing.pem"),
		Issuer:         "test-issuer",
	})

	if err == nil {
		t.Error("expected error for missing key file")
	}
}
