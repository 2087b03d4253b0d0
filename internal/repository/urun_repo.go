package repository

import (
	"context"

	"github.com/Ovtnc/Pos-System/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UrunRepository interface {
	ListAktif(ctx context.Context) ([]model.Urun, error)
	ListByKategori(ctx context.Context, kategoriID uuid.UUID) ([]model.Urun, error)
	FindByID(ctx context.Context, id uuid.UUID) (*model.Urun, error)
	ListKategoriler(ctx context.Context) ([]model.Kategori, error)
	FindKategoriByID(ctx context.Context, id uuid.UUID) (*model.Kategori, error)
}

type urunRepo struct{ db *gorm.DB }

func NewUrunRepository(db *gorm.DB) UrunRepository { return &urunRepo{db: db} }

func (r *urunRepo) ListAktif(ctx context.Context) ([]model.Urun, error) {
	var urunler []model.Urun
	err := r.db.WithContext(ctx).Preload("Kategori").
		Where("aktif = true").Order("isim ASC").Find(&urunler).Error
	return urunler, err
}

func (r *urunRepo) ListByKategori(ctx context.Context, kategoriID uuid.UUID) ([]model.Urun, error) {
	var urunler []model.Urun
	err := r.db.WithContext(ctx).Preload("Kategori").
		Where("kategori_id = ? AND aktif = true", kategoriID).
		Order("isim ASC").Find(&urunler).Error
	return urunler, err
}

func (r *urunRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Urun, error) {
	var u model.Urun
	err := r.db.WithContext(ctx).Preload("Kategori").First(&u, "id = ?", id).Error
	return &u, err
}

func (r *urunRepo) ListKategoriler(ctx context.Context) ([]model.Kategori, error) {
	var kategoriler []model.Kategori
	err := r.db.WithContext(ctx).Order("sira ASC, ad ASC").Find(&kategoriler).Error
	return kategoriler, err
}

func (r *urunRepo) FindKategoriByID(ctx context.Context, id uuid.UUID) (*model.Kategori, error) {
	var k model.Kategori
	err := r.db.WithContext(ctx).First(&k, "id = ?", id).Error
	return &k, err
}
