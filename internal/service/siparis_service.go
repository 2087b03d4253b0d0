package service

import (
	"context"

	"github.com/Ovtnc/Pos-System/internal/dto"
	"github.com/Ovtnc/Pos-System/internal/middleware"
	"github.com/Ovtnc/Pos-System/internal/model"
	"github.com/Ovtnc/Pos-System/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type SiparisService interface {
	Olustur(ctx context.Context, req dto.SiparisRequest) (*dto.SiparisResponse, error)
	MasaSiparisleri(ctx context.Context, masaID uuid.UUID) (*dto.MasaSiparisListResponse, error)
	DurumGuncelle(ctx context.Context, siparisID uuid.UUID, durum string) error
}

type siparisService struct {
	siparisRepo   repository.SiparisRepository
	masaRepo      repository.MasaRepository
	kullaniciRepo repository.KullaniciRepository
}

func NewSiparisService(
	siparisRepo repository.SiparisRepository,
	masaRepo repository.MasaRepository,
	kullaniciRepo repository.KullaniciRepository,
) SiparisService {
	return &siparisService{
		siparisRepo:   siparisRepo,
		masaRepo:      masaRepo,
		kullaniciRepo: kullaniciRepo,
	}
}

// ── Olustur ───────────────────────────────────────────────────────────────────
// Table order. The total is computed server-side from the lines; the order
// and the table-total accrual commit together. The accrual is a single SQL
// expression, never a read-then-write.

func (s *siparisService) Olustur(ctx context.Context, req dto.SiparisRequest) (*dto.SiparisResponse, error) {
	userID, err := uuid.Parse(req.UserID)
	if err != nil {
		return nil, ErrKullaniciBulunamadi
	}
	user, err := s.kullaniciRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, ErrKullaniciBulunamadi
	}

	var masaID *uuid.UUID
	if req.TableID != nil {
		id, err := uuid.Parse(*req.TableID)
		if err != nil {
			return nil, ErrMasaBulunamadi
		}
		if _, err := s.masaRepo.FindByID(ctx, id); err != nil {
			return nil, ErrMasaBulunamadi
		}
		masaID = &id
	}

	total := decimal.Zero
	detaylar := make([]model.SiparisDetay, 0, len(req.Items))
	for _, item := range req.Items {
		urunID, err := uuid.Parse(item.ID)
		if err != nil {
			return nil, ErrGecersizTutar
		}
		lineTotal := item.Price.Mul(decimal.NewFromInt(int64(item.Quantity)))
		total = total.Add(lineTotal)
		detaylar = append(detaylar, model.SiparisDetay{
			UrunID:      urunID,
			UrunAdi:     item.Name,
			Adet:        item.Quantity,
			BirimFiyat:  item.Price,
			ToplamFiyat: lineTotal,
		})
	}

	var siparis model.Siparis
	txErr := runTx(ctx, s.siparisRepo.DB(), func(tx *gorm.DB) error {
		siparisNo, err := s.siparisRepo.NextSiparisNo(ctx, tx)
		if err != nil {
			return err
		}

		siparis = model.Siparis{
			SiparisNo:     siparisNo,
			MasaID:        masaID,
			ToplamTutar:   total,
			OdenecekTutar: total,
			Durum:         "beklemede",
			SiparisTipi:   "masa",
			SubeID:        user.SubeID,
			Detaylar:      detaylar,
		}
		if err := s.siparisRepo.Create(ctx, tx, &siparis); err != nil {
			return err
		}

		if masaID != nil {
			if err := s.masaRepo.AccrueTx(tx, *masaID, total); err != nil {
				return err
			}
		}
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}

	middleware.SiparislerToplam.Inc()

	return &dto.SiparisResponse{
		Success:     true,
		Message:     "Sipariş oluşturuldu",
		OrderID:     siparis.ID.String(),
		OrderNumber: siparis.SiparisNo,
		TotalAmount: total,
	}, nil
}

// MasaSiparisleri returns a table's not-yet-completed orders with lines.
func (s *siparisService) MasaSiparisleri(ctx context.Context, masaID uuid.UUID) (*dto.MasaSiparisListResponse, error) {
	siparisler, err := s.siparisRepo.ListPendingByMasa(ctx, masaID)
	if err != nil {
		return nil, err
	}

	items := make([]dto.MasaSiparisItem, 0, len(siparisler))
	for _, sp := range siparisler {
		detaylar := make([]dto.SiparisDetayResponse, 0, len(sp.Detaylar))
		for _, d := range sp.Detaylar {
			detaylar = append(detaylar, dto.SiparisDetayResponse{
				UrunAdi:     d.UrunAdi,
				Adet:        d.Adet,
				BirimFiyat:  d.BirimFiyat,
				ToplamFiyat: d.ToplamFiyat,
			})
		}
		items = append(items, dto.MasaSiparisItem{
			ID:          sp.ID.String(),
			SiparisNo:   sp.SiparisNo,
			ToplamTutar: sp.ToplamTutar,
			Durum:       sp.Durum,
			CreatedAt:   sp.CreatedAt.Format("2006-01-02T15:04:05Z"),
			Detaylar:    detaylar,
		})
	}
	return &dto.MasaSiparisListResponse{Success: true, Orders: items}, nil
}

func (s *siparisService) DurumGuncelle(ctx context.Context, siparisID uuid.UUID, durum string) error {
	if _, err := s.siparisRepo.FindByID(ctx, siparisID); err != nil {
		return ErrSiparisBulunamadi
	}
	return s.siparisRepo.UpdateDurum(ctx, siparisID, durum)
}
