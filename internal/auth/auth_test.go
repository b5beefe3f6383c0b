package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const secret = "test-secret"

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("hunter2hunter2")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if hash == "hunter2hunter2" {
		t.Fatal("password stored in the clear")
	}
	if !CheckPassword(hash, "hunter2hunter2") {
		t.Error("correct password rejected")
	}
	if CheckPassword(hash, "wrong") {
		t.Error("wrong password accepted")
	}
}

func TestTokenRoundTrip(t *testing.T) {
	raw, err := MakeToken("u-1", "doctor", secret)
	if err != nil {
		t.Fatalf("make: %v", err)
	}
	c, err := ParseToken(raw, secret)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if c.UserID != "u-1" || c.Role != "doctor" {
		t.Errorf("claims: %+v", c)
	}

	ttl := time.Until(c.ExpiresAt.Time)
	if ttl < 14*time.Minute || ttl > 16*time.Minute {
		t.Errorf("access token ttl %v, want about 15m", ttl)
	}
}

func TestTokenWrongSecret(t *testing.T) {
	raw, _ := MakeToken("u-1", "patient", secret)
	if _, err := ParseToken(raw, "other-secret"); err == nil {
		t.Error("token verified with the wrong secret")
	}
}

func TestTokenExpired(t *testing.T) {
	c := Claims{
		UserID: "u-1",
		Role:   "patient",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-16 * time.Minute)),
		},
	}
	raw, err := jwt.NewWithClaims(jwt.SigningMethodHS256, c).SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	if _, err := ParseToken(raw, secret); err == nil {
		t.Error("expired token accepted")
	}
}

// A token signed with "none" must never verify, whatever its claims say.
func TestTokenAlgorithmConfusion(t *testing.T) {
	c := Claims{
		UserID: "u-1",
		Role:   "doctor",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(15 * time.Minute)),
		},
	}
	raw, err := jwt.NewWithClaims(jwt.SigningMethodNone, c).SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	if _, err := ParseToken(raw, secret); err == nil {
		t.Error("unsigned token accepted")
	}
}

func TestRefreshTokenHashing(t *testing.T) {
	raw, hash, err := GenerateRefreshToken()
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if raw == "" || hash == "" || raw == hash {
		t.Fatalf("raw=%q hash=%q", raw, hash)
	}
	if HashRefreshToken(raw) != hash {
		t.Error("hash does not match generated pair")
	}

	raw2, hash2, _ := GenerateRefreshToken()
	if raw2 == raw || hash2 == hash {
		t.Error("two generated tokens collided")
	}
}
