package infra

import (
	"fmt"

	"github.com/Ovtnc/Pos-System/internal/model"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewDatabase establishes a GORM connection backed by pgx, runs AutoMigrate
// to create / update all tables, then applies the idempotent SQL patches that
// GORM cannot express (sequences, the pgcrypto extension).
func NewDatabase(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(5)

	if err := RunMigrations(db); err != nil {
		return nil, err
	}

	return db, nil
}

// RunMigrations creates / updates the schema. Shared with the integration
// test harness so test databases match production exactly.
func RunMigrations(db *gorm.DB) error {
	// gen_random_uuid() column defaults need pgcrypto on Postgres < 13.
	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS pgcrypto`).Error; err != nil {
		return fmt.Errorf("pgcrypto: %w", err)
	}

	if err := db.AutoMigrate(
		&model.Sube{},
		&model.Kullanici{},
		&model.Kategori{},
		&model.Urun{},
		&model.FavoriUrun{},
		&model.Masa{},
		&model.Siparis{},
		&model.SiparisDetay{},
		&model.Odeme{},
		&model.Stok{},
		&model.StokHareket{},
	); err != nil {
		return fmt.Errorf("AutoMigrate: %w", err)
	}

	return applySchemaPatches(db)
}

// applySchemaPatches runs idempotent DDL that AutoMigrate cannot produce.
func applySchemaPatches(db *gorm.DB) error {
	patches := []string{
		// Document-number sequences; drawn with nextval() inside the
		// checkout / order transactions.
		`CREATE SEQUENCE IF NOT EXISTS siparis_no_seq START 1`,
		`CREATE SEQUENCE IF NOT EXISTS odeme_no_seq START 1`,
	}

	for _, sql := range patches {
		if err := db.Exec(sql).Error; err != nil {
			return fmt.Errorf("patch %q: %w", sql, err)
		}
	}
	return nil
}
