package model

import (
	"time"

	"github.com/google/uuid"
)

// Kullanici stores system users. Every user belongs to exactly one branch;
// the branch scopes tables, orders and payments created by that user.
// Rol: "admin" | "kasiyer"
type Kullanici struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	KullaniciAdi string    `gorm:"uniqueIndex;not null"`
	SifreHash    string    `gorm:"not null"`
	Rol          string    `gorm:"type:varchar(20);not null;default:'kasiyer'"`
	SubeID       uuid.UUID `gorm:"type:uuid;not null;index"`
	Aktif        bool      `gorm:"not null;default:true"`
	CreatedAt    time.Time
	UpdatedAt    time.Time

	Sube *Sube `gorm:"foreignKey:SubeID"`
}

// TableName overrides GORM's default pluralization (kullanicis → kullanicilar).
func (Kullanici) TableName() string { return "kullanicilar" }
