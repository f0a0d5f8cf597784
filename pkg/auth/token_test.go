package auth_test

import (
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/velora-commerce/velora-backend/pkg/auth"
	"github.com/velora-commerce/velora-backend/pkg/config"
	"github.com/velora-commerce/velora-backend/pkg/enums"
)

func testJWTConfig() config.JWTConfig {
	return config.JWTConfig{
		Secret:            "unit-test-secret",
		Issuer:            "velora-test",
		ExpirationMinutes: 15,
	}
}

func TestMintAndParseAccessToken(t *testing.T) {
	cfg := testJWTConfig()
	userID := uuid.New()
	now := time.Now()

	token, err := auth.MintAccessToken(cfg, now, auth.AccessTokenPayload{
		UserID:   userID,
		Email:    "shopper@example.com",
		UserType: enums.UserTypeBuyer,
	})
	if err != nil {
		t.Fatalf("MintAccessToken returned error: %v", err)
	}

	claims, err := auth.ParseAccessToken(cfg, token)
	if err != nil {
		t.Fatalf("ParseAccessToken returned error: %v", err)
	}
	if claims.UserID != userID {
		t.Fatalf("expected user id %s, got %s", userID, claims.UserID)
	}
	if claims.Email != "shopper@example.com" {
		t.Fatalf("unexpected email claim %q", claims.Email)
	}
	if claims.UserType != enums.UserTypeBuyer {
		t.Fatalf("unexpected user type claim %q", claims.UserType)
	}
	if claims.ID == "" {
		t.Fatal("expected a generated jti")
	}
	if claims.Issuer != cfg.Issuer {
		t.Fatalf("unexpected issuer %q", claims.Issuer)
	}
}

func TestMintAccessTokenValidation(t *testing.T) {
	now := time.Now()
	payload := auth.AccessTokenPayload{
		UserID:   uuid.New(),
		UserType: enums.UserTypeBuyer,
	}

	cases := []struct {
		name    string
		cfg     config.JWTConfig
		payload auth.AccessTokenPayload
	}{
		{name: "missing secret", cfg: config.JWTConfig{Issuer: "x", ExpirationMinutes: 5}, payload: payload},
		{name: "missing issuer", cfg: config.JWTConfig{Secret: "x", ExpirationMinutes: 5}, payload: payload},
		{name: "zero ttl", cfg: config.JWTConfig{Secret: "x", Issuer: "x"}, payload: payload},
		{name: "nil user id", cfg: testJWTConfig(), payload: auth.AccessTokenPayload{UserType: enums.UserTypeBuyer}},
		{name: "bad user type", cfg: testJWTConfig(), payload: auth.AccessTokenPayload{UserID: uuid.New(), UserType: enums.UserType("ghost")}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := auth.MintAccessToken(tc.cfg, now, tc.payload); err == nil {
				t.Fatal("expected error")
			}
		})
	}
}

func TestParseAccessTokenRejectsExpired(t *testing.T) {
	cfg := testJWTConfig()
	past := time.Now().Add(-time.Hour)

	token, err := auth.MintAccessToken(cfg, past, auth.AccessTokenPayload{
		UserID:   uuid.New(),
		UserType: enums.UserTypeBuyer,
	})
	if err != nil {
		t.Fatalf("MintAccessToken returned error: %v", err)
	}

	if _, err := auth.ParseAccessToken(cfg, token); err == nil {
		t.Fatal("expected expired token to be rejected")
	}
}

func TestParseAccessTokenRejectsWrongIssuer(t *testing.T) {
	cfg := testJWTConfig()
	token, err := auth.MintAccessToken(cfg, time.Now(), auth.AccessTokenPayload{
		UserID:   uuid.New(),
		UserType: enums.UserTypeBuyer,
	})
	if err != nil {
		t.Fatalf("MintAccessToken returned error: %v", err)
	}

	other := cfg
	other.Issuer = "someone-else"
	if _, err := auth.ParseAccessToken(other, token); err == nil {
		t.Fatal("expected issuer mismatch to be rejected")
	}
}
