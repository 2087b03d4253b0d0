package service

import (
	"context"
	"time"

	"github.com/Ovtnc/Pos-System/internal/dto"
	"github.com/Ovtnc/Pos-System/internal/middleware"
	"github.com/Ovtnc/Pos-System/internal/model"
	"github.com/Ovtnc/Pos-System/internal/repository"
	"github.com/Ovtnc/Pos-System/internal/worker"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// maxHareketKaydi caps the movement history endpoint.
const maxHareketKaydi = 50

type StokService interface {
	Listele(ctx context.Context) (*dto.StokListResponse, error)
	Guncelle(ctx context.Context, stokID uuid.UUID, req dto.StokGuncelleRequest) (*dto.StokGuncelleResponse, error)
	Hareketler(ctx context.Context) (*dto.StokHareketListResponse, error)
}

type stokService struct {
	stokRepo   repository.StokRepository
	dispatcher *worker.Dispatcher
}

func NewStokService(stokRepo repository.StokRepository, dispatcher *worker.Dispatcher) StokService {
	return &stokService{stokRepo: stokRepo, dispatcher: dispatcher}
}

func (s *stokService) Listele(ctx context.Context) (*dto.StokListResponse, error) {
	rows, err := s.stokRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	items := make([]dto.StokItem, 0, len(rows))
	for _, row := range rows {
		var urunID *string
		if row.UrunID != nil {
			id := row.UrunID.String()
			urunID = &id
		}
		items = append(items, dto.StokItem{
			ID:            row.ID.String(),
			UrunID:        urunID,
			UrunAdi:       row.UrunAdi,
			MevcutStok:    row.MevcutStok,
			MinimumStok:   row.MinimumStok,
			Birim:         row.Birim,
			SonGuncelleme: row.SonGuncelleme.Format("2006-01-02T15:04:05Z"),
			Fiyat:         row.Fiyat,
			KategoriAdi:   row.KategoriAdi,
		})
	}
	return &dto.StokListResponse{Success: true, Stock: items}, nil
}

// ── Guncelle ──────────────────────────────────────────────────────────────────
// One stock movement. The snapshot row is locked for the whole transaction so
// a concurrent movement on the same item cannot interleave between the read
// and the write; giriş adds, çıkış subtracts, and a çıkış that would go
// negative rolls back with no ledger row.

func (s *stokService) Guncelle(ctx context.Context, stokID uuid.UUID, req dto.StokGuncelleRequest) (*dto.StokGuncelleResponse, error) {
	var subeID, kullaniciID *uuid.UUID
	if req.SubeID != nil {
		id, err := uuid.Parse(*req.SubeID)
		if err == nil {
			subeID = &id
		}
	}
	if req.KullaniciID != nil {
		id, err := uuid.Parse(*req.KullaniciID)
		if err == nil {
			kullaniciID = &id
		}
	}

	var stok *model.Stok
	var yeniStok int
	txErr := runTx(ctx, s.stokRepo.DB(), func(tx *gorm.DB) error {
		var err error
		stok, err = s.stokRepo.FindByIDForUpdateTx(tx, stokID)
		if err != nil {
			return ErrStokBulunamadi
		}

		onceki := stok.MevcutStok
		switch req.HareketTipi {
		case "giris":
			yeniStok = onceki + req.Miktar
		case "cikis":
			yeniStok = onceki - req.Miktar
			if yeniStok < 0 {
				return ErrYetersizStok
			}
		}

		if err := s.stokRepo.UpdateMevcutTx(tx, stokID, yeniStok); err != nil {
			return err
		}

		hareket := model.StokHareket{
			StokID:      stokID,
			HareketTipi: req.HareketTipi,
			Miktar:      req.Miktar,
			OncekiStok:  onceki,
			YeniStok:    yeniStok,
			Aciklama:    req.Aciklama,
			SubeID:      subeID,
			KullaniciID: kullaniciID,
			CreatedAt:   time.Now(),
		}
		return s.stokRepo.CreateHareketTx(tx, &hareket)
	})
	if txErr != nil {
		return nil, txErr
	}

	middleware.StokHareketleriToplam.WithLabelValues(req.HareketTipi).Inc()

	// Low-stock alarm — after commit, best effort.
	if s.dispatcher != nil && yeniStok < stok.MinimumStok {
		payload := worker.StokAlarmJobPayload{
			StokID:      stokID.String(),
			UrunAdi:     stok.UrunAdi,
			MevcutStok:  yeniStok,
			MinimumStok: stok.MinimumStok,
			Birim:       stok.Birim,
		}
		_ = s.dispatcher.EnqueueStokAlarm(ctx, payload)
	}

	return &dto.StokGuncelleResponse{
		Success:  true,
		Message:  "Stok güncellendi",
		YeniStok: yeniStok,
	}, nil
}

func (s *stokService) Hareketler(ctx context.Context) (*dto.StokHareketListResponse, error) {
	rows, err := s.stokRepo.ListHareketler(ctx, maxHareketKaydi)
	if err != nil {
		return nil, err
	}

	items := make([]dto.StokHareketItem, 0, len(rows))
	for _, row := range rows {
		items = append(items, dto.StokHareketItem{
			ID:           row.ID.String(),
			HareketTipi:  row.HareketTipi,
			Miktar:       row.Miktar,
			OncekiStok:   row.OncekiStok,
			YeniStok:     row.YeniStok,
			Aciklama:     row.Aciklama,
			CreatedAt:    row.CreatedAt.Format("2006-01-02T15:04:05Z"),
			UrunAdi:      row.UrunAdi,
			SubeAdi:      row.SubeAdi,
			KullaniciAdi: row.KullaniciAdi,
		})
	}
	return &dto.StokHareketListResponse{
		Success:    true,
		Movements:  items,
		Total:      len(items),
		MaxRecords: maxHareketKaydi,
	}, nil
}
