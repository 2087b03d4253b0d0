package repository

import (
	"context"
	"fmt"

	"github.com/Ovtnc/Pos-System/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SiparisRepository interface {
	Create(ctx context.Context, tx *gorm.DB, s *model.Siparis) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Siparis, error)
	ListPendingByMasa(ctx context.Context, masaID uuid.UUID) ([]model.Siparis, error)
	UpdateDurum(ctx context.Context, id uuid.UUID, durum string) error
	NextSiparisNo(ctx context.Context, tx *gorm.DB) (string, error)
	DB() *gorm.DB // exposes the DB for transaction creation in service layer
}

type siparisRepo struct{ db *gorm.DB }

func NewSiparisRepository(db *gorm.DB) SiparisRepository { return &siparisRepo{db: db} }

func (r *siparisRepo) DB() *gorm.DB { return r.db }

func (r *siparisRepo) Create(ctx context.Context, tx *gorm.DB, s *model.Siparis) error {
	return tx.WithContext(ctx).Create(s).Error
}

func (r *siparisRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Siparis, error) {
	var s model.Siparis
	err := r.db.WithContext(ctx).Preload("Detaylar").First(&s, "id = ?", id).Error
	return &s, err
}

func (r *siparisRepo) ListPendingByMasa(ctx context.Context, masaID uuid.UUID) ([]model.Siparis, error) {
	var siparisler []model.Siparis
	err := r.db.WithContext(ctx).Preload("Detaylar").
		Where("masa_id = ? AND durum <> ?", masaID, "tamamlandi").
		Order("created_at DESC").
		Find(&siparisler).Error
	return siparisler, err
}

func (r *siparisRepo) UpdateDurum(ctx context.Context, id uuid.UUID, durum string) error {
	return r.db.WithContext(ctx).Model(&model.Siparis{}).Where("id = ?", id).
		Update("durum", durum).Error
}

// NextSiparisNo draws from a PostgreSQL sequence — atomic, collision-free
// under concurrent checkouts, unlike a timestamp-derived number.
func (r *siparisRepo) NextSiparisNo(ctx context.Context, tx *gorm.DB) (string, error) {
	var num int64
	err := tx.WithContext(ctx).Raw("SELECT nextval('siparis_no_seq')").Scan(&num).Error
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("SP%06d", num), nil
}
