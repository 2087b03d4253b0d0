package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Siparis is a record of requested items and their total, independent of
// payment. Durum: "beklemede" | "tamamlandi". SiparisTipi: "masa" for orders
// added to an open tab, "self" for direct checkout.
type Siparis struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	SiparisNo     string          `gorm:"uniqueIndex;not null"`
	MasaID        *uuid.UUID      `gorm:"type:uuid;index"`
	ToplamTutar   decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	OdenecekTutar decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Durum         string          `gorm:"type:varchar(20);not null;default:'beklemede'"`
	SiparisTipi   string          `gorm:"type:varchar(20);not null"`
	SubeID        uuid.UUID       `gorm:"type:uuid;not null;index"`
	CreatedAt     time.Time
	UpdatedAt     time.Time

	Masa     *Masa          `gorm:"foreignKey:MasaID"`
	Detaylar []SiparisDetay `gorm:"foreignKey:SiparisID"`
}

func (Siparis) TableName() string { return "siparisler" }

// SiparisDetay is one cart line of an order. UrunAdi and BirimFiyat are
// copied at write time so later product renames or price changes do not
// retroactively alter historical receipts.
type SiparisDetay struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	SiparisID   uuid.UUID       `gorm:"type:uuid;not null;index"`
	UrunID      uuid.UUID       `gorm:"type:uuid;not null"`
	UrunAdi     string          `gorm:"not null"`
	Adet        int             `gorm:"not null"`
	BirimFiyat  decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	ToplamFiyat decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	CreatedAt   time.Time
}

func (SiparisDetay) TableName() string { return "siparis_detaylari" }
