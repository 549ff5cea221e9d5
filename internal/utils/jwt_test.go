package utils

import (
	"errors"
	"slices"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/with-auth/models"
	"github.com/golang-jwt/jwt/v5"
)

const testSignKey = "secret-key"

var testNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func signClaims(t *testing.T, method jwt.SigningMethod, key any, claims jwt.Claims) string {
	t.Helper()
	s, err := jwt.NewWithClaims(method, claims).SignedString(key)
	if err != nil {
		t.Fatalf("failed to sign test token: %v", err)
	}
	return s
}

func validClaims() jwt.RegisteredClaims {
	return jwt.RegisteredClaims{
		Issuer:    TokenIssuer,
		Subject:   "42",
		Audience:  jwt.ClaimStrings{models.AudienceUser},
		IssuedAt:  jwt.NewNumericDate(testNow),
		ExpiresAt: jwt.NewNumericDate(testNow.Add(TokenLifetime)),
	}
}

func TestGenerateJWTToken_Success(t *testing.T) {
	token, err := GenerateJWTToken(123, models.RoleUser, testNow, testSignKey)

	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if token.SignedString == "" {
		t.Error("expected non-empty SignedString")
	}
	if token.Claims == nil {
		t.Fatal("expected non-nil claims")
	}
	if token.Claims.Issuer != "with" {
		t.Errorf("expected issuer 'with', got %s", token.Claims.Issuer)
	}
	if token.Claims.Subject != "123" {
		t.Errorf("expected subject '123', got %s", token.Claims.Subject)
	}
	if !token.Claims.IssuedAt.Time.Equal(testNow) {
		t.Errorf("expected iat %v, got %v", testNow, token.Claims.IssuedAt.Time)
	}
	if want := testNow.Add(35 * 24 * time.Hour); !token.Claims.ExpiresAt.Time.Equal(want) {
		t.Errorf("expected exp %v, got %v", want, token.Claims.ExpiresAt.Time)
	}
	if token.UserID != 123 {
		t.Errorf("expected userID 123, got %d", token.UserID)
	}
}

func TestGenerateJWTToken_AudienceByRole(t *testing.T) {
	tests := []struct {
		role models.Role
		want []string
	}{
		{models.RoleUser, []string{"with:user"}},
		{models.RoleAdmin, []string{"with:user", "with:admin"}},
	}

	for _, tt := range tests {
		t.Run(string(tt.role), func(t *testing.T) {
			token, err := GenerateJWTToken(1, tt.role, testNow, testSignKey)
			if err != nil {
				t.Fatalf("expected no error, got: %v", err)
			}
			if !slices.Equal([]string(token.Claims.Audience), tt.want) {
				t.Errorf("expected audience %v, got %v", tt.want, token.Claims.Audience)
			}
		})
	}
}

func TestGenerateJWTToken_InvalidParams(t *testing.T) {
	if _, err := GenerateJWTToken(1, models.RoleUser, testNow, ""); !errors.Is(err, ErrEmptySignKey) {
		t.Errorf("expected ErrEmptySignKey, got %v", err)
	}
	if _, err := GenerateJWTToken(1, models.Role("ROOT"), testNow, testSignKey); !errors.Is(err, models.ErrUnknownRole) {
		t.Errorf("expected ErrUnknownRole, got %v", err)
	}
}

func TestValidateAndParseJWTToken_RoundTrip(t *testing.T) {
	for _, role := range []models.Role{models.RoleUser, models.RoleAdmin} {
		genToken, err := GenerateJWTToken(456, role, testNow, testSignKey)
		if err != nil {
			t.Fatalf("failed to generate token: %v", err)
		}

		// any instant strictly inside [iat, exp)
		for _, at := range []time.Time{testNow, testNow.Add(time.Hour), testNow.Add(TokenLifetime - time.Second)} {
			parsed, err := ValidateAndParseJWTToken(genToken.SignedString, testSignKey, at)
			if err != nil {
				t.Fatalf("expected token to be valid at %v, got error: %v", at, err)
			}
			if parsed.UserID != 456 {
				t.Errorf("expected userID 456, got %d", parsed.UserID)
			}
		}
	}
}

func TestValidateAndParseJWTToken_Expired(t *testing.T) {
	genToken, _ := GenerateJWTToken(1, models.RoleUser, testNow, testSignKey)

	for _, at := range []time.Time{testNow.Add(TokenLifetime), testNow.Add(TokenLifetime + time.Hour)} {
		_, err := ValidateAndParseJWTToken(genToken.SignedString, testSignKey, at)
		if !errors.Is(err, jwt.ErrTokenExpired) {
			t.Errorf("expected ErrTokenExpired at %v, got %v", at, err)
		}
	}
}

func TestValidateAndParseJWTToken_WrongKey(t *testing.T) {
	genToken, _ := GenerateJWTToken(1, models.RoleUser, testNow, testSignKey)

	_, err := ValidateAndParseJWTToken(genToken.SignedString, "other-key", testNow)
	if !errors.Is(err, jwt.ErrTokenSignatureInvalid) {
		t.Errorf("expected signature error, got %v", err)
	}
}

func TestValidateAndParseJWTToken_SingleByteChange(t *testing.T) {
	genToken, _ := GenerateJWTToken(1, models.RoleUser, testNow, testSignKey)
	original := genToken.SignedString

	const alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789-_"

	for i := 0; i < len(original); i++ {
		idx := strings.IndexByte(alphabet, original[i])
		if idx < 0 {
			continue
		}
		// flipping the high bit of a sextet always changes the decoded bytes,
		// even for the trailing character of a segment
		replacement := alphabet[(idx+32)%64]
		mutated := original[:i] + string(replacement) + original[i+1:]

		if _, err := ValidateAndParseJWTToken(mutated, testSignKey, testNow); err == nil {
			t.Fatalf("expected mutated token at position %d to be rejected", i)
		}
	}
}

func TestValidateAndParseJWTToken_RejectsClaims(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *jwt.RegisteredClaims)
	}{
		{"wrong issuer", func(c *jwt.RegisteredClaims) { c.Issuer = "other" }},
		{"missing issuer", func(c *jwt.RegisteredClaims) { c.Issuer = "" }},
		{"missing exp", func(c *jwt.RegisteredClaims) { c.ExpiresAt = nil }},
		{"missing iat", func(c *jwt.RegisteredClaims) { c.IssuedAt = nil }},
		{"missing aud", func(c *jwt.RegisteredClaims) { c.Audience = nil }},
		{"foreign aud", func(c *jwt.RegisteredClaims) { c.Audience = jwt.ClaimStrings{"with:other"} }},
		{"non numeric sub", func(c *jwt.RegisteredClaims) { c.Subject = "abc" }},
		{"zero sub", func(c *jwt.RegisteredClaims) { c.Subject = "0" }},
		{"negative sub", func(c *jwt.RegisteredClaims) { c.Subject = "-5" }},
		{"empty sub", func(c *jwt.RegisteredClaims) { c.Subject = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims := validClaims()
			tt.mutate(&claims)
			signed := signClaims(t, jwt.SigningMethodHS256, []byte(testSignKey), claims)

			if _, err := ValidateAndParseJWTToken(signed, testSignKey, testNow); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}

func TestValidateAndParseJWTToken_AcceptsAdminOnlyAudience(t *testing.T) {
	claims := validClaims()
	claims.Audience = jwt.ClaimStrings{"with:admin"}
	signed := signClaims(t, jwt.SigningMethodHS256, []byte(testSignKey), claims)

	if _, err := ValidateAndParseJWTToken(signed, testSignKey, testNow); err != nil {
		t.Errorf("expected token to be valid, got %v", err)
	}
}

func TestValidateAndParseJWTToken_RejectsOtherAlgorithms(t *testing.T) {
	claims := validClaims()

	hs512 := signClaims(t, jwt.SigningMethodHS512, []byte(testSignKey), claims)
	if _, err := ValidateAndParseJWTToken(hs512, testSignKey, testNow); err == nil {
		t.Error("expected HS512 token to be rejected")
	}

	none := signClaims(t, jwt.SigningMethodNone, jwt.UnsafeAllowNoneSignatureType, claims)
	if _, err := ValidateAndParseJWTToken(none, testSignKey, testNow); err == nil {
		t.Error("expected unsigned token to be rejected")
	}
}

func TestValidateAndParseJWTToken_Garbage(t *testing.T) {
	for _, input := range []string{"", "abc", "a.b.c", strings.Repeat(".", 10)} {
		if _, err := ValidateAndParseJWTToken(input, testSignKey, testNow); err == nil {
			t.Errorf("expected error for %q, got nil", input)
		}
	}
}

func TestParseBearerToken(t *testing.T) {
	tests := []struct {
		header  string
		want    string
		wantErr bool
	}{
		{"Bearer abc.def.ghi", "abc.def.ghi", false},
		{"  Bearer abc  ", "abc", false},
		{"Bearer", "", false},
		{"Bearer ", "", false},
		{"Basic dXNlcjpwYXNz", "", true},
		{"bearer abc", "", true},
		{"abc", "", true},
	}

	for _, tt := range tests {
		got, err := ParseBearerToken(tt.header)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseBearerToken(%q) error = %v, wantErr %v", tt.header, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseBearerToken(%q) = %q, want %q", tt.header, got, tt.want)
		}
	}
}
