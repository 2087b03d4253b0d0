package repository

import (
	"context"

	"github.com/Ovtnc/Pos-System/internal/dto"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RaporRepository runs the aggregate queries behind the dashboard and the
// revenue/sales reports. All queries are read-only raw SQL over the payment
// and order-line tables.
type RaporRepository interface {
	SatisOzeti(ctx context.Context, subeID uuid.UUID, window string) (*dto.SatisOzeti, error)
	OdemeTipleriBugun(ctx context.Context, subeID uuid.UUID) ([]dto.OdemeTipiDagilimi, error)
	SonSatislar(ctx context.Context, subeID uuid.UUID, limit int) ([]dto.OdemeListItem, error)
	GunlukSatislarBuAy(ctx context.Context, subeID uuid.UUID) ([]dto.GunlukSatis, error)
	EnCokSatanlarBuAy(ctx context.Context, subeID uuid.UUID, limit int) ([]dto.UrunSatisi, error)
	SaatlikSatislarBugun(ctx context.Context, subeID uuid.UUID) ([]dto.SaatlikSatis, error)
	OdemeTipiDagilimiBuAy(ctx context.Context, subeID uuid.UUID) ([]dto.OdemeTipiDagilimi, error)

	ToplamCiro(ctx context.Context, start, end string, subeID *uuid.UUID) (*dto.CiroOzeti, error)
	OdemeTipineGoreCiro(ctx context.Context, start, end string, subeID *uuid.UUID) ([]dto.OdemeTipiCiro, error)
	GunlukCiro(ctx context.Context, start, end string, subeID *uuid.UUID) ([]dto.GunlukCiro, error)
	SaatlikCiroBugun(ctx context.Context, subeID *uuid.UUID) ([]dto.SaatlikCiro, error)
	EnCokSatilanUrunler(ctx context.Context, start, end string, subeID *uuid.UUID, limit int) ([]dto.UrunRaporSatiri, error)
	KategoriBazindaSatis(ctx context.Context, start, end string, subeID *uuid.UUID) ([]dto.KategoriRaporSatiri, error)
}

type raporRepo struct{ db *gorm.DB }

func NewRaporRepository(db *gorm.DB) RaporRepository { return &raporRepo{db: db} }

// windowConds maps a report window to its WHERE fragment on odeme_tarihi.
var windowConds = map[string]string{
	"daily":   "odeme_tarihi::date = CURRENT_DATE",
	"weekly":  "date_trunc('week', odeme_tarihi) = date_trunc('week', now())",
	"monthly": "date_trunc('month', odeme_tarihi) = date_trunc('month', now())",
	"yearly":  "date_trunc('year', odeme_tarihi) = date_trunc('year', now())",
}

func (r *raporRepo) SatisOzeti(ctx context.Context, subeID uuid.UUID, window string) (*dto.SatisOzeti, error) {
	cond, ok := windowConds[window]
	if !ok {
		cond = windowConds["daily"]
	}
	var ozet dto.SatisOzeti
	err := r.db.WithContext(ctx).Raw(`
		SELECT COALESCE(SUM(tutar), 0) AS total_sales,
		       COUNT(*) AS transaction_count
		FROM odemeler
		WHERE `+cond+` AND sube_id = ?`, subeID).Scan(&ozet).Error
	return &ozet, err
}

func (r *raporRepo) OdemeTipleriBugun(ctx context.Context, subeID uuid.UUID) ([]dto.OdemeTipiDagilimi, error) {
	var rows []dto.OdemeTipiDagilimi
	err := r.db.WithContext(ctx).Raw(`
		SELECT odeme_tipi,
		       COUNT(*) AS count,
		       COALESCE(SUM(tutar), 0) AS total_amount
		FROM odemeler
		WHERE odeme_tarihi::date = CURRENT_DATE AND sube_id = ?
		GROUP BY odeme_tipi`, subeID).Scan(&rows).Error
	return rows, err
}

func (r *raporRepo) SonSatislar(ctx context.Context, subeID uuid.UUID, limit int) ([]dto.OdemeListItem, error) {
	var items []dto.OdemeListItem
	err := r.db.WithContext(ctx).Raw(`
		SELECT id::text AS id,
		       odeme_no,
		       siparis_id::text AS siparis_id,
		       tutar,
		       odeme_tipi,
		       to_char(odeme_tarihi, 'YYYY-MM-DD"T"HH24:MI:SS') AS odeme_tarihi
		FROM odemeler
		WHERE sube_id = ?
		ORDER BY odeme_tarihi DESC
		LIMIT ?`, subeID, limit).Scan(&items).Error
	return items, err
}

func (r *raporRepo) GunlukSatislarBuAy(ctx context.Context, subeID uuid.UUID) ([]dto.GunlukSatis, error) {
	var rows []dto.GunlukSatis
	err := r.db.WithContext(ctx).Raw(`
		SELECT to_char(odeme_tarihi::date, 'YYYY-MM-DD') AS date,
		       COALESCE(SUM(tutar), 0) AS total_sales,
		       COUNT(*) AS transaction_count
		FROM odemeler
		WHERE date_trunc('month', odeme_tarihi) = date_trunc('month', now())
		  AND sube_id = ?
		GROUP BY odeme_tarihi::date
		ORDER BY date`, subeID).Scan(&rows).Error
	return rows, err
}

func (r *raporRepo) EnCokSatanlarBuAy(ctx context.Context, subeID uuid.UUID, limit int) ([]dto.UrunSatisi, error) {
	var rows []dto.UrunSatisi
	err := r.db.WithContext(ctx).Raw(`
		SELECT sd.urun_adi AS product_name,
		       SUM(sd.adet) AS total_quantity,
		       SUM(sd.toplam_fiyat) AS total_revenue
		FROM siparis_detaylari sd
		JOIN siparisler s ON sd.siparis_id = s.id
		WHERE date_trunc('month', s.created_at) = date_trunc('month', now())
		  AND s.sube_id = ?
		GROUP BY sd.urun_adi
		ORDER BY total_quantity DESC
		LIMIT ?`, subeID, limit).Scan(&rows).Error
	return rows, err
}

func (r *raporRepo) SaatlikSatislarBugun(ctx context.Context, subeID uuid.UUID) ([]dto.SaatlikSatis, error) {
	var rows []dto.SaatlikSatis
	err := r.db.WithContext(ctx).Raw(`
		SELECT EXTRACT(HOUR FROM odeme_tarihi)::int AS hour,
		       COALESCE(SUM(tutar), 0) AS total_sales,
		       COUNT(*) AS transaction_count
		FROM odemeler
		WHERE odeme_tarihi::date = CURRENT_DATE AND sube_id = ?
		GROUP BY EXTRACT(HOUR FROM odeme_tarihi)
		ORDER BY hour`, subeID).Scan(&rows).Error
	return rows, err
}

func (r *raporRepo) OdemeTipiDagilimiBuAy(ctx context.Context, subeID uuid.UUID) ([]dto.OdemeTipiDagilimi, error) {
	var rows []dto.OdemeTipiDagilimi
	err := r.db.WithContext(ctx).Raw(`
		SELECT odeme_tipi,
		       COUNT(*) AS count,
		       COALESCE(SUM(tutar), 0) AS total_amount
		FROM odemeler
		WHERE date_trunc('month', odeme_tarihi) = date_trunc('month', now())
		  AND sube_id = ?
		GROUP BY odeme_tipi`, subeID).Scan(&rows).Error
	return rows, err
}

func (r *raporRepo) ToplamCiro(ctx context.Context, start, end string, subeID *uuid.UUID) (*dto.CiroOzeti, error) {
	var ozet dto.CiroOzeti
	q := `
		SELECT COALESCE(SUM(tutar), 0) AS toplam_ciro,
		       COUNT(*) AS toplam_islem
		FROM odemeler
		WHERE odeme_tarihi::date BETWEEN ? AND ?`
	args := []interface{}{start, end}
	if subeID != nil {
		q += " AND sube_id = ?"
		args = append(args, *subeID)
	}
	err := r.db.WithContext(ctx).Raw(q, args...).Scan(&ozet).Error
	return &ozet, err
}

func (r *raporRepo) OdemeTipineGoreCiro(ctx context.Context, start, end string, subeID *uuid.UUID) ([]dto.OdemeTipiCiro, error) {
	var rows []dto.OdemeTipiCiro
	q := `
		SELECT odeme_tipi,
		       SUM(tutar) AS toplam_tutar,
		       COUNT(*) AS islem_sayisi
		FROM odemeler
		WHERE odeme_tarihi::date BETWEEN ? AND ?`
	args := []interface{}{start, end}
	if subeID != nil {
		q += " AND sube_id = ?"
		args = append(args, *subeID)
	}
	q += " GROUP BY odeme_tipi ORDER BY toplam_tutar DESC"
	err := r.db.WithContext(ctx).Raw(q, args...).Scan(&rows).Error
	return rows, err
}

func (r *raporRepo) GunlukCiro(ctx context.Context, start, end string, subeID *uuid.UUID) ([]dto.GunlukCiro, error) {
	var rows []dto.GunlukCiro
	q := `
		SELECT to_char(odeme_tarihi::date, 'YYYY-MM-DD') AS tarih,
		       SUM(tutar) AS gunluk_ciro,
		       COUNT(*) AS islem_sayisi
		FROM odemeler
		WHERE odeme_tarihi::date BETWEEN ? AND ?`
	args := []interface{}{start, end}
	if subeID != nil {
		q += " AND sube_id = ?"
		args = append(args, *subeID)
	}
	q += " GROUP BY odeme_tarihi::date ORDER BY tarih"
	err := r.db.WithContext(ctx).Raw(q, args...).Scan(&rows).Error
	return rows, err
}

func (r *raporRepo) SaatlikCiroBugun(ctx context.Context, subeID *uuid.UUID) ([]dto.SaatlikCiro, error) {
	var rows []dto.SaatlikCiro
	q := `
		SELECT EXTRACT(HOUR FROM odeme_tarihi)::int AS saat,
		       SUM(tutar) AS saatlik_ciro,
		       COUNT(*) AS islem_sayisi
		FROM odemeler
		WHERE odeme_tarihi::date = CURRENT_DATE`
	var args []interface{}
	if subeID != nil {
		q += " AND sube_id = ?"
		args = append(args, *subeID)
	}
	q += " GROUP BY EXTRACT(HOUR FROM odeme_tarihi) ORDER BY saat"
	err := r.db.WithContext(ctx).Raw(q, args...).Scan(&rows).Error
	return rows, err
}

func (r *raporRepo) EnCokSatilanUrunler(ctx context.Context, start, end string, subeID *uuid.UUID, limit int) ([]dto.UrunRaporSatiri, error) {
	var rows []dto.UrunRaporSatiri
	q := `
		SELECT sd.urun_adi,
		       SUM(sd.adet) AS toplam_adet,
		       SUM(sd.toplam_fiyat) AS toplam_tutar,
		       COUNT(DISTINCT s.id) AS siparis_sayisi
		FROM siparis_detaylari sd
		JOIN siparisler s ON sd.siparis_id = s.id
		WHERE s.created_at::date BETWEEN ? AND ?`
	args := []interface{}{start, end}
	if subeID != nil {
		q += " AND s.sube_id = ?"
		args = append(args, *subeID)
	}
	q += " GROUP BY sd.urun_adi ORDER BY toplam_adet DESC LIMIT ?"
	args = append(args, limit)
	err := r.db.WithContext(ctx).Raw(q, args...).Scan(&rows).Error
	return rows, err
}

func (r *raporRepo) KategoriBazindaSatis(ctx context.Context, start, end string, subeID *uuid.UUID) ([]dto.KategoriRaporSatiri, error) {
	var rows []dto.KategoriRaporSatiri
	q := `
		SELECT k.ad AS kategori_adi,
		       SUM(sd.toplam_fiyat) AS toplam_tutar,
		       SUM(sd.adet) AS toplam_adet
		FROM siparis_detaylari sd
		JOIN siparisler s ON sd.siparis_id = s.id
		JOIN urunler u ON sd.urun_id = u.id
		JOIN kategoriler k ON u.kategori_id = k.id
		WHERE s.created_at::date BETWEEN ? AND ?`
	args := []interface{}{start, end}
	if subeID != nil {
		q += " AND s.sube_id = ?"
		args = append(args, *subeID)
	}
	q += " GROUP BY k.id, k.ad ORDER BY toplam_tutar DESC"
	err := r.db.WithContext(ctx).Raw(q, args...).Scan(&rows).Error
	return rows, err
}
