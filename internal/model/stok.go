package model

import (
	"time"

	"github.com/google/uuid"
)

// Stok is the current-quantity snapshot for one inventory item.
// The snapshot and its ledger row are always written together inside one
// transaction, holding a row lock on the snapshot, so MevcutStok equals the
// YeniStok of the item's latest movement.
type Stok struct {
	ID             uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UrunID         *uuid.UUID `gorm:"type:uuid;index"`
	UrunAdi        string     `gorm:"not null;index"`
	MevcutStok     int        `gorm:"not null;default:0"`
	MinimumStok    int        `gorm:"not null;default:0"`
	Birim          string     `gorm:"not null;default:'adet'"`
	SonGuncelleme  time.Time
	CreatedAt      time.Time
}

func (Stok) TableName() string { return "stok" }

// StokHareket is an immutable event in the inventory ledger.
// HareketTipi: "giris" | "cikis". Movements are never modified or deleted.
type StokHareket struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	StokID      uuid.UUID `gorm:"type:uuid;not null;index"`
	HareketTipi string    `gorm:"type:varchar(20);not null"`
	Miktar      int       `gorm:"not null"`
	OncekiStok  int       `gorm:"not null"`
	YeniStok    int       `gorm:"not null"`
	Aciklama    string
	SubeID      *uuid.UUID `gorm:"type:uuid"`
	KullaniciID *uuid.UUID `gorm:"type:uuid"`
	CreatedAt   time.Time  `gorm:"index"`

	Stok *Stok `gorm:"foreignKey:StokID"`
}

func (StokHareket) TableName() string { return "stok_hareketleri" }
