package utils

import (
	"testing"
	"time"

	"github.com/paveldk/go-blog-api/models"
)

func TestGenerateJWTToken_Success(t *testing.T) {
	const (
		issuer = "blog-api"
		key    = "secret-key"
	)
	userID := int64(123)

	token, err := GenerateJWTToken(issuer, userID, models.RoleAuthor, time.Hour, key)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if token.SignedString == "" {
		t.Error("SignedString is empty")
	}
	if token.Token == nil {
		t.Error("jwt.Token object is nil")
	}

	claims, ok := token.Token.Claims.(*models.Token)
	if !ok {
		t.Fatal("claims are not *models.Token")
	}
	if claims.Issuer != issuer {
		t.Errorf("issuer = %q, want %q", claims.Issuer, issuer)
	}
	if claims.Subject != "123" {
		t.Errorf("subject = %q, want %q", claims.Subject, "123")
	}
	if claims.Role != models.RoleAuthor {
		t.Errorf("role = %q, want AUTHOR", claims.Role)
	}
}

func TestGenerateJWTToken_InvalidParams(t *testing.T) {
	tests := []struct {
		name     string
		issuer   string
		role     models.Role
		duration time.Duration
		key      string
	}{
		{"empty issuer", "", models.RoleUser, time.Hour, "key"},
		{"zero duration", "iss", models.RoleUser, 0, "key"},
		{"empty key", "iss", models.RoleUser, time.Hour, ""},
		{"unknown role", "iss", models.Role("ADMIN"), time.Hour, "key"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := GenerateJWTToken(tt.issuer, 1, tt.role, tt.duration, tt.key); err == nil {
				t.Error("want error for invalid parameters, got nil")
			}
		})
	}
}

func TestValidateAndParseJWTToken_Success(t *testing.T) {
	const (
		issuer = "blog-api"
		key    = "secret-key"
	)
	userID := int64(456)

	genToken, _ := GenerateJWTToken(issuer, userID, models.RoleUser, 5*time.Minute, key)

	parsed, err := ValidateAndParseJWTToken(genToken.SignedString, key, issuer)
	if err != nil {
		t.Fatalf("want valid token, got error: %v", err)
	}
	if parsed.UserID != userID {
		t.Errorf("userID = %d, want %d", parsed.UserID, userID)
	}
	if parsed.Role != models.RoleUser {
		t.Errorf("role = %q, want USER", parsed.Role)
	}
}

func TestValidateAndParseJWTToken_InvalidKey(t *testing.T) {
	genToken, _ := GenerateJWTToken("blog-api", 1, models.RoleUser, time.Hour, "correct-key")

	if _, err := ValidateAndParseJWTToken(genToken.SignedString, "wrong-key", "blog-api"); err == nil {
		t.Error("want error on signature mismatch, got nil")
	}
}

func TestValidateAndParseJWTToken_Expired(t *testing.T) {
	// token that expired one second ago
	genToken, _ := GenerateJWTToken("blog-api", 1, models.RoleUser, -time.Second, "key")

	if _, err := ValidateAndParseJWTToken(genToken.SignedString, "key", "blog-api"); err == nil {
		t.Error("want error for expired token, got nil")
	}
}

func TestValidateAndParseJWTToken_WrongIssuer(t *testing.T) {
	genToken, _ := GenerateJWTToken("real-issuer", 1, models.RoleUser, time.Hour, "key")

	if _, err := ValidateAndParseJWTToken(genToken.SignedString, "key", "fake-issuer"); err == nil {
		t.Error("want error on issuer mismatch, got nil")
	}
}

func TestValidateAndParseJWTToken_Malformed(t *testing.T) {
	if _, err := ValidateAndParseJWTToken("not.a.token", "key", "iss"); err == nil {
		t.Error("want error for malformed token string, got nil")
	}
}
