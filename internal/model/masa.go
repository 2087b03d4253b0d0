package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Masa is an open running bill tied to a physical seating area.
// Durum: "acik" | "rezerve" | "kapali"
//
// ToplamTutar accrues: every order added to the table and the final
// settlement payment each ADD their amount to it. Accrual always happens
// through a single SQL expression inside the owning transaction, never via
// read-then-write.
type Masa struct {
	ID              uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	MasaAdi         string          `gorm:"not null;index"`
	Durum           string          `gorm:"type:varchar(20);not null;default:'acik'"`
	AcilisTarihi    time.Time       `gorm:"not null"`
	KapanisTarihi   *time.Time
	ToplamTutar     decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`
	AcanKullaniciID uuid.UUID       `gorm:"type:uuid;not null"`
	SubeID          uuid.UUID       `gorm:"type:uuid;not null;index"`
	CreatedAt       time.Time
	UpdatedAt       time.Time

	AcanKullanici *Kullanici `gorm:"foreignKey:AcanKullaniciID"`
}

func (Masa) TableName() string { return "masalar" }
