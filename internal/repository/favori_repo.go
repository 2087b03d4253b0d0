package repository

import (
	"context"

	"github.com/Ovtnc/Pos-System/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type FavoriRepository interface {
	ListByKullanici(ctx context.Context, kullaniciID uuid.UUID) ([]model.FavoriUrun, error)
	Add(ctx context.Context, f *model.FavoriUrun) error
	Remove(ctx context.Context, kullaniciID, urunID uuid.UUID) error
}

type favoriRepo struct{ db *gorm.DB }

func NewFavoriRepository(db *gorm.DB) FavoriRepository { return &favoriRepo{db: db} }

func (r *favoriRepo) ListByKullanici(ctx context.Context, kullaniciID uuid.UUID) ([]model.FavoriUrun, error) {
	var favoriler []model.FavoriUrun
	err := r.db.WithContext(ctx).Preload("Urun.Kategori").
		Where("kullanici_id = ?", kullaniciID).
		Order("created_at DESC").Find(&favoriler).Error
	return favoriler, err
}

func (r *favoriRepo) Add(ctx context.Context, f *model.FavoriUrun) error {
	return r.db.WithContext(ctx).Create(f).Error
}

func (r *favoriRepo) Remove(ctx context.Context, kullaniciID, urunID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Where("kullanici_id = ? AND urun_id = ?", kullaniciID, urunID).
		Delete(&model.FavoriUrun{}).Error
}
