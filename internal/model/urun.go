package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Urun is a sellable menu product.
type Urun struct {
	ID         uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Isim       string          `gorm:"not null;index"`
	Fiyat      decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	KategoriID uuid.UUID       `gorm:"type:uuid;not null;index"`
	Aktif      bool            `gorm:"not null;default:true"`
	CreatedAt  time.Time
	UpdatedAt  time.Time

	Kategori *Kategori `gorm:"foreignKey:KategoriID"`
}

func (Urun) TableName() string { return "urunler" }

// Kategori groups products on the menu. Sira drives display order;
// HizliIslem marks the quick-actions pseudo-category whose contents are the
// caller's favorite products.
type Kategori struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Ad         string    `gorm:"not null;uniqueIndex"`
	Sira       int       `gorm:"not null;default:0"`
	HizliIslem bool      `gorm:"not null;default:false"`
	CreatedAt  time.Time
}

func (Kategori) TableName() string { return "kategoriler" }
