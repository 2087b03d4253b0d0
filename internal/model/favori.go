package model

import (
	"time"

	"github.com/google/uuid"
)

// FavoriUrun pins a product to a user's quick-actions panel.
type FavoriUrun struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	KullaniciID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_favori_kullanici_urun"`
	UrunID      uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_favori_kullanici_urun"`
	CreatedAt   time.Time

	Urun *Urun `gorm:"foreignKey:UrunID"`
}

func (FavoriUrun) TableName() string { return "favori_urunler" }
