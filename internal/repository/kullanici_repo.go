package repository

import (
	"context"

	"github.com/Ovtnc/Pos-System/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// KullaniciRepository defines the data access contract for users.
// Services depend on this interface, not on the concrete GORM implementation,
// enabling clean unit testing via stubs.
type KullaniciRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*model.Kullanici, error)
	FindByUsername(ctx context.Context, username string) (*model.Kullanici, error)
	List(ctx context.Context) ([]model.Kullanici, error)
	Create(ctx context.Context, k *model.Kullanici) error
	Update(ctx context.Context, k *model.Kullanici) error
}

type kullaniciRepo struct{ db *gorm.DB }

func NewKullaniciRepository(db *gorm.DB) KullaniciRepository { return &kullaniciRepo{db: db} }

func (r *kullaniciRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Kullanici, error) {
	var k model.Kullanici
	err := r.db.WithContext(ctx).Preload("Sube").First(&k, "id = ?", id).Error
	return &k, err
}

func (r *kullaniciRepo) FindByUsername(ctx context.Context, username string) (*model.Kullanici, error) {
	var k model.Kullanici
	err := r.db.WithContext(ctx).Preload("Sube").Where("kullanici_adi = ?", username).First(&k).Error
	return &k, err
}

func (r *kullaniciRepo) List(ctx context.Context) ([]model.Kullanici, error) {
	var users []model.Kullanici
	err := r.db.WithContext(ctx).Preload("Sube").Order("kullanici_adi ASC").Find(&users).Error
	return users, err
}

func (r *kullaniciRepo) Create(ctx context.Context, k *model.Kullanici) error {
	return r.db.WithContext(ctx).Create(k).Error
}

func (r *kullaniciRepo) Update(ctx context.Context, k *model.Kullanici) error {
	return r.db.WithContext(ctx).Save(k).Error
}
