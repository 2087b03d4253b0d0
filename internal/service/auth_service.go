package service

import (
	"context"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"strings"
	"time"

	"github.com/Ovtnc/Pos-System/internal/config"
	"github.com/Ovtnc/Pos-System/internal/dto"
	"github.com/Ovtnc/Pos-System/internal/model"
	"github.com/Ovtnc/Pos-System/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
)

type AuthService interface {
	Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error)
	Kullanicilar(ctx context.Context) (*dto.KullaniciListResponse, error)
}

type authService struct {
	repo repository.KullaniciRepository
	cfg  *config.Config
}

func NewAuthService(repo repository.KullaniciRepository, cfg *config.Config) AuthService {
	return &authService{repo: repo, cfg: cfg}
}

func (s *authService) Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := s.repo.FindByUsername(ctx, req.Username)
	if err != nil {
		return nil, ErrGecersizKimlik
	}
	if !user.Aktif {
		return nil, ErrGecersizKimlik
	}

	if !s.verifyPassword(ctx, user, req.Password) {
		return nil, ErrGecersizKimlik
	}

	accessToken, err := s.generateToken(user, time.Duration(s.cfg.JWTExpirationHours)*time.Hour)
	if err != nil {
		return nil, err
	}

	subeAdi := ""
	if user.Sube != nil {
		subeAdi = user.Sube.SubeAdi
	}
	return &dto.LoginResponse{
		Success: true,
		User: dto.KullaniciResponse{
			ID:       user.ID.String(),
			Username: user.KullaniciAdi,
			Name:     user.KullaniciAdi,
			Role:     user.Rol,
			SubeID:   user.SubeID.String(),
			Sube:     subeAdi,
		},
		AccessToken: accessToken,
		TokenType:   "bearer",
		ExpiresIn:   s.cfg.JWTExpirationHours * 3600,
	}, nil
}

// verifyPassword checks bcrypt hashes, falling back to legacy unsalted
// SHA-256 hex digests. A successful legacy login transparently upgrades the
// stored hash to bcrypt.
func (s *authService) verifyPassword(ctx context.Context, user *model.Kullanici, password string) bool {
	if strings.HasPrefix(user.SifreHash, "$2") {
		return bcrypt.CompareHashAndPassword([]byte(user.SifreHash), []byte(password)) == nil
	}

	sum := sha256.Sum256([]byte(password))
	digest := hex.EncodeToString(sum[:])
	if subtle.ConstantTimeCompare([]byte(digest), []byte(user.SifreHash)) != 1 {
		return false
	}

	if upgraded, err := bcrypt.GenerateFromPassword([]byte(password), 12); err == nil {
		user.SifreHash = string(upgraded)
		if err := s.repo.Update(ctx, user); err != nil {
			log.Warn().Err(err).Str("kullanici", user.KullaniciAdi).Msg("auth: hash upgrade failed")
		}
	}
	return true
}

func (s *authService) Kullanicilar(ctx context.Context) (*dto.KullaniciListResponse, error) {
	users, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	items := make([]dto.KullaniciListItem, 0, len(users))
	for _, u := range users {
		subeAdi := ""
		if u.Sube != nil {
			subeAdi = u.Sube.SubeAdi
		}
		items = append(items, dto.KullaniciListItem{
			ID:           u.ID.String(),
			KullaniciAdi: u.KullaniciAdi,
			SubeAdi:      subeAdi,
			SubeID:       u.SubeID.String(),
		})
	}
	return &dto.KullaniciListResponse{Success: true, Users: items}, nil
}

func (s *authService) generateToken(user *model.Kullanici, duration time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"user_id":  user.ID.String(),
		"username": user.KullaniciAdi,
		"rol":      user.Rol,
		"sube_id":  user.SubeID.String(),
		"exp":      time.Now().Add(duration).Unix(),
		"iat":      time.Now().Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.JWTSecret))
}
