package service_test

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"testing"

	"github.com/Ovtnc/Pos-System/internal/config"
	"github.com/Ovtnc/Pos-System/internal/dto"
	"github.com/Ovtnc/Pos-System/internal/model"
	"github.com/Ovtnc/Pos-System/internal/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func testAuthConfig() *config.Config {
	return &config.Config{
		JWTSecret:          "test-secret",
		JWTExpirationHours: 12,
	}
}

func seedBcryptUser(t *testing.T, repo *stubKullaniciRepo, password string) *model.Kullanici {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	subeID := uuid.New()
	return repo.add(&model.Kullanici{
		KullaniciAdi: "garson1",
		SifreHash:    string(hash),
		Rol:          "kasiyer",
		SubeID:       subeID,
		Aktif:        true,
		Sube:         &model.Sube{ID: subeID, SubeAdi: "Merkez"},
	})
}

func TestLoginIssuesToken(t *testing.T) {
	repo := newStubKullaniciRepo()
	user := seedBcryptUser(t, repo, "dogru-sifre")
	svc := service.NewAuthService(repo, testAuthConfig())

	resp, err := svc.Login(context.Background(), dto.LoginRequest{Username: "garson1", Password: "dogru-sifre"})
	require.NoError(t, err)
	assert.True(t, resp.Success)
	assert.Equal(t, "bearer", resp.TokenType)
	assert.Equal(t, 12*3600, resp.ExpiresIn)
	assert.Equal(t, user.ID.String(), resp.User.ID)
	assert.Equal(t, "Merkez", resp.User.Sube)

	// The token carries the identity claims and verifies with the secret.
	token, err := jwt.Parse(resp.AccessToken, func(tk *jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	})
	require.NoError(t, err)
	claims := token.Claims.(jwt.MapClaims)
	assert.Equal(t, user.ID.String(), claims["user_id"])
	assert.Equal(t, "garson1", claims["username"])
	assert.Equal(t, "kasiyer", claims["rol"])
	assert.Equal(t, user.SubeID.String(), claims["sube_id"])
}

func TestLoginWrongPassword(t *testing.T) {
	repo := newStubKullaniciRepo()
	seedBcryptUser(t, repo, "dogru-sifre")
	svc := service.NewAuthService(repo, testAuthConfig())

	_, err := svc.Login(context.Background(), dto.LoginRequest{Username: "garson1", Password: "yanlis"})
	assert.ErrorIs(t, err, service.ErrGecersizKimlik)
}

func TestLoginUnknownUser(t *testing.T) {
	svc := service.NewAuthService(newStubKullaniciRepo(), testAuthConfig())
	_, err := svc.Login(context.Background(), dto.LoginRequest{Username: "yok", Password: "x"})
	assert.ErrorIs(t, err, service.ErrGecersizKimlik)
}

func TestLoginInactiveUser(t *testing.T) {
	repo := newStubKullaniciRepo()
	user := seedBcryptUser(t, repo, "dogru-sifre")
	user.Aktif = false
	svc := service.NewAuthService(repo, testAuthConfig())

	_, err := svc.Login(context.Background(), dto.LoginRequest{Username: "garson1", Password: "dogru-sifre"})
	assert.ErrorIs(t, err, service.ErrGecersizKimlik)
}

// Legacy rows carry an unsalted SHA-256 hex digest. Login still works and
// transparently rewrites the stored hash as bcrypt.
func TestLoginLegacySha256UpgradesHash(t *testing.T) {
	repo := newStubKullaniciRepo()
	sum := sha256.Sum256([]byte("eski-sifre"))
	subeID := uuid.New()
	user := repo.add(&model.Kullanici{
		KullaniciAdi: "eski",
		SifreHash:    hex.EncodeToString(sum[:]),
		Rol:          "kasiyer",
		SubeID:       subeID,
		Aktif:        true,
		Sube:         &model.Sube{ID: subeID, SubeAdi: "Merkez"},
	})
	svc := service.NewAuthService(repo, testAuthConfig())

	resp, err := svc.Login(context.Background(), dto.LoginRequest{Username: "eski", Password: "eski-sifre"})
	require.NoError(t, err)
	assert.True(t, resp.Success)

	upgraded := repo.byID[user.ID].SifreHash
	assert.True(t, strings.HasPrefix(upgraded, "$2"), "hash must be upgraded to bcrypt, got %q", upgraded)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(upgraded), []byte("eski-sifre")))

	// Second login goes through the bcrypt path.
	_, err = svc.Login(context.Background(), dto.LoginRequest{Username: "eski", Password: "eski-sifre"})
	assert.NoError(t, err)
	_, err = svc.Login(context.Background(), dto.LoginRequest{Username: "eski", Password: "yanlis"})
	assert.ErrorIs(t, err, service.ErrGecersizKimlik)
}

func TestLoginLegacySha256WrongPassword(t *testing.T) {
	repo := newStubKullaniciRepo()
	sum := sha256.Sum256([]byte("eski-sifre"))
	repo.add(&model.Kullanici{
		KullaniciAdi: "eski",
		SifreHash:    hex.EncodeToString(sum[:]),
		Rol:          "kasiyer",
		SubeID:       uuid.New(),
		Aktif:        true,
	})
	svc := service.NewAuthService(repo, testAuthConfig())

	_, err := svc.Login(context.Background(), dto.LoginRequest{Username: "eski", Password: "yanlis"})
	assert.ErrorIs(t, err, service.ErrGecersizKimlik)
}

func TestKullanicilar(t *testing.T) {
	repo := newStubKullaniciRepo()
	seedKullanici(repo)
	svc := service.NewAuthService(repo, testAuthConfig())

	resp, err := svc.Kullanicilar(context.Background())
	require.NoError(t, err)
	require.Len(t, resp.Users, 1)
	assert.Equal(t, "kasiyer1", resp.Users[0].KullaniciAdi)
	assert.Equal(t, "Merkez", resp.Users[0].SubeAdi)
}
