package model

import (
	"time"

	"github.com/google/uuid"
)

// Sube is a physical store location. Most entities are scoped to one.
type Sube struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	SubeAdi   string    `gorm:"not null"`
	Adres     *string
	Telefon   *string
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (Sube) TableName() string { return "subeler" }
