package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Odeme is a record of money received. SiparisID links the payment to the
// order it settles — payments and orders are always created together inside
// one transaction.
// OdemeTipi: "nakit" | "kart" | "mudavim"
type Odeme struct {
	ID           uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	OdemeNo      string          `gorm:"uniqueIndex;not null"`
	SiparisID    uuid.UUID       `gorm:"type:uuid;not null;index"`
	MasaID       *uuid.UUID      `gorm:"type:uuid;index"`
	Tutar        decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	OdemeTipi    string          `gorm:"type:varchar(20);not null"`
	SubeID       uuid.UUID       `gorm:"type:uuid;not null;index"`
	OdemeTarihi  time.Time       `gorm:"not null;index"`

	Siparis *Siparis `gorm:"foreignKey:SiparisID"`
	Masa    *Masa    `gorm:"foreignKey:MasaID"`
}

func (Odeme) TableName() string { return "odemeler" }
