package repository

import (
	"context"
	"time"

	"github.com/Ovtnc/Pos-System/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type MasaRepository interface {
	Create(ctx context.Context, m *model.Masa) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Masa, error)
	// ListAktif returns open and reserved tables; subeID nil = all branches.
	ListAktif(ctx context.Context, subeID *uuid.UUID) ([]model.Masa, error)
	ListAll(ctx context.Context) ([]model.Masa, error)
	UpdateDurum(ctx context.Context, id uuid.UUID, durum string) error
	Kapat(ctx context.Context, id uuid.UUID) error

	// Used inside transactions — callers must pass the tx instance.
	// AccrueTx adds tutar to toplam_tutar as a single SQL expression, so
	// concurrent accruals to the same table never lose updates.
	AccrueTx(tx *gorm.DB, id uuid.UUID, tutar decimal.Decimal) error
	// SettleTx accrues the settlement amount, flips the table to kapali and
	// stamps the closing time, all in one statement.
	SettleTx(tx *gorm.DB, id uuid.UUID, tutar decimal.Decimal) error

	// DB exposes the underlying *gorm.DB so services can open transactions.
	DB() *gorm.DB
}

type masaRepo struct{ db *gorm.DB }

func NewMasaRepository(db *gorm.DB) MasaRepository { return &masaRepo{db: db} }

func (r *masaRepo) DB() *gorm.DB { return r.db }

func (r *masaRepo) Create(ctx context.Context, m *model.Masa) error {
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *masaRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Masa, error) {
	var m model.Masa
	err := r.db.WithContext(ctx).Preload("AcanKullanici.Sube").First(&m, "id = ?", id).Error
	return &m, err
}

func (r *masaRepo) ListAktif(ctx context.Context, subeID *uuid.UUID) ([]model.Masa, error) {
	var masalar []model.Masa
	q := r.db.WithContext(ctx).Preload("AcanKullanici.Sube").
		Where("durum IN ?", []string{"acik", "rezerve"})
	if subeID != nil {
		q = q.Where("sube_id = ?", *subeID)
	}
	err := q.Order("masa_adi ASC").Find(&masalar).Error
	return masalar, err
}

func (r *masaRepo) ListAll(ctx context.Context) ([]model.Masa, error) {
	var masalar []model.Masa
	err := r.db.WithContext(ctx).Order("masa_adi ASC").Find(&masalar).Error
	return masalar, err
}

func (r *masaRepo) UpdateDurum(ctx context.Context, id uuid.UUID, durum string) error {
	return r.db.WithContext(ctx).Model(&model.Masa{}).Where("id = ?", id).
		Update("durum", durum).Error
}

func (r *masaRepo) Kapat(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Model(&model.Masa{}).Where("id = ?", id).
		Updates(map[string]interface{}{
			"durum":          "kapali",
			"kapanis_tarihi": time.Now(),
		}).Error
}

func (r *masaRepo) AccrueTx(tx *gorm.DB, id uuid.UUID, tutar decimal.Decimal) error {
	return tx.Model(&model.Masa{}).Where("id = ?", id).
		Update("toplam_tutar", gorm.Expr("toplam_tutar + ?", tutar)).Error
}

func (r *masaRepo) SettleTx(tx *gorm.DB, id uuid.UUID, tutar decimal.Decimal) error {
	return tx.Model(&model.Masa{}).Where("id = ?", id).
		Updates(map[string]interface{}{
			"toplam_tutar":   gorm.Expr("toplam_tutar + ?", tutar),
			"durum":          "kapali",
			"kapanis_tarihi": time.Now(),
		}).Error
}
