package repository

import (
	"context"
	"time"

	"github.com/Ovtnc/Pos-System/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// StokRow is one stock snapshot joined with its linked product's price and
// category name for the stock screen.
type StokRow struct {
	ID            uuid.UUID
	UrunID        *uuid.UUID
	UrunAdi       string
	MevcutStok    int
	MinimumStok   int
	Birim         string
	SonGuncelleme time.Time
	Fiyat         decimal.Decimal
	KategoriAdi   string
}

// StokHareketRow is one ledger entry joined with item, branch and user names.
type StokHareketRow struct {
	ID           uuid.UUID
	HareketTipi  string
	Miktar       int
	OncekiStok   int
	YeniStok     int
	Aciklama     string
	CreatedAt    time.Time
	UrunAdi      string
	SubeAdi      string
	KullaniciAdi string
}

type StokRepository interface {
	List(ctx context.Context) ([]StokRow, error)
	FindByID(ctx context.Context, id uuid.UUID) (*model.Stok, error)

	// Used inside transactions — callers must pass the tx instance.
	// FindByIDForUpdateTx locks the snapshot row so the read-check-write of a
	// stock movement cannot race a concurrent movement on the same item.
	FindByIDForUpdateTx(tx *gorm.DB, id uuid.UUID) (*model.Stok, error)
	UpdateMevcutTx(tx *gorm.DB, id uuid.UUID, yeniStok int) error
	CreateHareketTx(tx *gorm.DB, h *model.StokHareket) error

	ListHareketler(ctx context.Context, limit int) ([]StokHareketRow, error)
	DB() *gorm.DB
}

type stokRepo struct{ db *gorm.DB }

func NewStokRepository(db *gorm.DB) StokRepository { return &stokRepo{db: db} }

func (r *stokRepo) DB() *gorm.DB { return r.db }

func (r *stokRepo) List(ctx context.Context) ([]StokRow, error) {
	var rows []StokRow
	err := r.db.WithContext(ctx).Raw(`
		SELECT s.id,
		       s.urun_id,
		       s.urun_adi,
		       s.mevcut_stok,
		       s.minimum_stok,
		       s.birim,
		       s.son_guncelleme,
		       COALESCE(u.fiyat, 0) AS fiyat,
		       COALESCE(k.ad, 'Malzeme') AS kategori_adi
		FROM stok s
		LEFT JOIN urunler u ON s.urun_id = u.id
		LEFT JOIN kategoriler k ON u.kategori_id = k.id
		ORDER BY s.urun_adi`).Scan(&rows).Error
	return rows, err
}

func (r *stokRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Stok, error) {
	var s model.Stok
	err := r.db.WithContext(ctx).First(&s, "id = ?", id).Error
	return &s, err
}

func (r *stokRepo) FindByIDForUpdateTx(tx *gorm.DB, id uuid.UUID) (*model.Stok, error) {
	var s model.Stok
	err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&s, "id = ?", id).Error
	return &s, err
}

func (r *stokRepo) UpdateMevcutTx(tx *gorm.DB, id uuid.UUID, yeniStok int) error {
	return tx.Model(&model.Stok{}).Where("id = ?", id).
		Updates(map[string]interface{}{
			"mevcut_stok":    yeniStok,
			"son_guncelleme": time.Now(),
		}).Error
}

func (r *stokRepo) CreateHareketTx(tx *gorm.DB, h *model.StokHareket) error {
	return tx.Create(h).Error
}

func (r *stokRepo) ListHareketler(ctx context.Context, limit int) ([]StokHareketRow, error) {
	var rows []StokHareketRow
	err := r.db.WithContext(ctx).Raw(`
		SELECT sh.id,
		       sh.hareket_tipi,
		       sh.miktar,
		       sh.onceki_stok,
		       sh.yeni_stok,
		       sh.aciklama,
		       sh.created_at,
		       s.urun_adi,
		       COALESCE(sub.sube_adi, '') AS sube_adi,
		       COALESCE(k.kullanici_adi, '') AS kullanici_adi
		FROM stok_hareketleri sh
		LEFT JOIN stok s ON sh.stok_id = s.id
		LEFT JOIN subeler sub ON sh.sube_id = sub.id
		LEFT JOIN kullanicilar k ON sh.kullanici_id = k.id
		ORDER BY sh.created_at DESC
		LIMIT ?`, limit).Scan(&rows).Error
	return rows, err
}
