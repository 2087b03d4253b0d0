package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/Ovtnc/Pos-System/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// KapananMasaRow is one settled payment joined with its branch and table
// names, presented by the closed-tables screen.
type KapananMasaRow struct {
	ID            uuid.UUID
	OdemeNo       string
	ToplamTutar   decimal.Decimal
	OdemeTipi     string
	KapanisTarihi time.Time
	SubeAdi       string
	MasaAdi       string
}

type OdemeRepository interface {
	Create(ctx context.Context, tx *gorm.DB, o *model.Odeme) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Odeme, error)
	FindLatestByMasa(ctx context.Context, masaID uuid.UUID) (*model.Odeme, error)
	ListRecent(ctx context.Context, subeID *uuid.UUID, limit int) ([]model.Odeme, error)
	ListClosedTables(ctx context.Context, date string, subeID *uuid.UUID) ([]KapananMasaRow, error)
	UpdateTipVeTutar(ctx context.Context, id uuid.UUID, odemeTipi string, tutar decimal.Decimal) error
	NextOdemeNo(ctx context.Context, tx *gorm.DB) (string, error)
	DB() *gorm.DB
}

type odemeRepo struct{ db *gorm.DB }

func NewOdemeRepository(db *gorm.DB) OdemeRepository { return &odemeRepo{db: db} }

func (r *odemeRepo) DB() *gorm.DB { return r.db }

func (r *odemeRepo) Create(ctx context.Context, tx *gorm.DB, o *model.Odeme) error {
	return tx.WithContext(ctx).Create(o).Error
}

func (r *odemeRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Odeme, error) {
	var o model.Odeme
	err := r.db.WithContext(ctx).Preload("Siparis.Detaylar").First(&o, "id = ?", id).Error
	return &o, err
}

func (r *odemeRepo) FindLatestByMasa(ctx context.Context, masaID uuid.UUID) (*model.Odeme, error) {
	var o model.Odeme
	err := r.db.WithContext(ctx).Where("masa_id = ?", masaID).
		Order("odeme_tarihi DESC").First(&o).Error
	return &o, err
}

func (r *odemeRepo) ListRecent(ctx context.Context, subeID *uuid.UUID, limit int) ([]model.Odeme, error) {
	var odemeler []model.Odeme
	q := r.db.WithContext(ctx).Order("odeme_tarihi DESC").Limit(limit)
	if subeID != nil {
		q = q.Where("sube_id = ?", *subeID)
	}
	err := q.Find(&odemeler).Error
	return odemeler, err
}

func (r *odemeRepo) ListClosedTables(ctx context.Context, date string, subeID *uuid.UUID) ([]KapananMasaRow, error) {
	var rows []KapananMasaRow
	q := `
		SELECT o.id,
		       o.odeme_no,
		       o.tutar AS toplam_tutar,
		       o.odeme_tipi,
		       o.odeme_tarihi AS kapanis_tarihi,
		       COALESCE(s.sube_adi, 'Merkez') AS sube_adi,
		       COALESCE(m.masa_adi, 'Ödeme ' || o.odeme_no) AS masa_adi
		FROM odemeler o
		LEFT JOIN subeler s ON o.sube_id = s.id
		LEFT JOIN masalar m ON o.masa_id = m.id
		WHERE o.odeme_tarihi::date = ?`
	args := []interface{}{date}
	if subeID != nil {
		q += " AND o.sube_id = ?"
		args = append(args, *subeID)
	}
	q += " ORDER BY o.odeme_tarihi DESC"
	err := r.db.WithContext(ctx).Raw(q, args...).Scan(&rows).Error
	return rows, err
}

func (r *odemeRepo) UpdateTipVeTutar(ctx context.Context, id uuid.UUID, odemeTipi string, tutar decimal.Decimal) error {
	return r.db.WithContext(ctx).Model(&model.Odeme{}).Where("id = ?", id).
		Updates(map[string]interface{}{
			"odeme_tipi":   odemeTipi,
			"tutar":        tutar,
			"odeme_tarihi": time.Now(),
		}).Error
}

// NextOdemeNo draws from a PostgreSQL sequence for atomic, collision-free
// payment numbers.
func (r *odemeRepo) NextOdemeNo(ctx context.Context, tx *gorm.DB) (string, error) {
	var num int64
	err := tx.WithContext(ctx).Raw("SELECT nextval('odeme_no_seq')").Scan(&num).Error
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("OD%06d", num), nil
}
