package repository

import (
	"context"

	"github.com/Ovtnc/Pos-System/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SubeRepository interface {
	List(ctx context.Context) ([]model.Sube, error)
	FindByID(ctx context.Context, id uuid.UUID) (*model.Sube, error)
	Create(ctx context.Context, s *model.Sube) error
}

type subeRepo struct{ db *gorm.DB }

func NewSubeRepository(db *gorm.DB) SubeRepository { return &subeRepo{db: db} }

func (r *subeRepo) List(ctx context.Context) ([]model.Sube, error) {
	var subeler []model.Sube
	err := r.db.WithContext(ctx).Order("sube_adi ASC").Find(&subeler).Error
	return subeler, err
}

func (r *subeRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Sube, error) {
	var s model.Sube
	err := r.db.WithContext(ctx).First(&s, "id = ?", id).Error
	return &s, err
}

func (r *subeRepo) Create(ctx context.Context, s *model.Sube) error {
	return r.db.WithContext(ctx).Create(s).Error
}
