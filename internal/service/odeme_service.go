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
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type OdemeService interface {
	Kaydet(ctx context.Context, req dto.OdemeRequest) (*dto.OdemeResponse, error)
	Listele(ctx context.Context, userID *uuid.UUID, limit int) (*dto.OdemeListResponse, error)
	MasaOdemesiGuncelle(ctx context.Context, masaID uuid.UUID, req dto.OdemeGuncelleRequest) (*dto.MasaIslemResponse, error)
}

type odemeService struct {
	odemeRepo     repository.OdemeRepository
	siparisRepo   repository.SiparisRepository
	masaRepo      repository.MasaRepository
	kullaniciRepo repository.KullaniciRepository
	dispatcher    *worker.Dispatcher
}

func NewOdemeService(
	odemeRepo repository.OdemeRepository,
	siparisRepo repository.SiparisRepository,
	masaRepo repository.MasaRepository,
	kullaniciRepo repository.KullaniciRepository,
	dispatcher *worker.Dispatcher,
) OdemeService {
	return &odemeService{
		odemeRepo:     odemeRepo,
		siparisRepo:   siparisRepo,
		masaRepo:      masaRepo,
		kullaniciRepo: kullaniciRepo,
		dispatcher:    dispatcher,
	}
}

// runTx executes fn inside a GORM transaction when db is available,
// or calls fn(nil) directly when db is nil (unit test mode).
func runTx(ctx context.Context, db *gorm.DB, fn func(tx *gorm.DB) error) error {
	if db == nil {
		return fn(nil)
	}
	return db.WithContext(ctx).Transaction(fn)
}

// odemeTipi maps the wire payment-method names onto the stored values.
var odemeTipi = map[string]string{
	"cash":     "nakit",
	"card":     "kart",
	"customer": "mudavim",
}

// ── Kaydet ────────────────────────────────────────────────────────────────────
// Checkout / settlement. Pre-flight validation happens outside the
// transaction; the order, its lines, the payment and (when a table is given)
// the table settlement all commit or roll back together.

func (s *odemeService) Kaydet(ctx context.Context, req dto.OdemeRequest) (*dto.OdemeResponse, error) {
	if !req.Amount.IsPositive() {
		return nil, ErrGecersizTutar
	}

	// Resolve the cashier's branch before any write. No silent fallback:
	// an unknown user rejects the whole payment.
	userID, err := uuid.Parse(req.UserID)
	if err != nil {
		return nil, ErrKullaniciBulunamadi
	}
	user, err := s.kullaniciRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, ErrKullaniciBulunamadi
	}

	tip, ok := odemeTipi[req.PaymentMethod]
	if !ok {
		return nil, ErrGecersizTutar
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

	detaylar := make([]model.SiparisDetay, 0, len(req.Items))
	for _, item := range req.Items {
		urunID, err := uuid.Parse(item.ID)
		if err != nil {
			return nil, ErrGecersizTutar
		}
		detaylar = append(detaylar, model.SiparisDetay{
			UrunID:      urunID,
			UrunAdi:     item.Name,
			Adet:        item.Quantity,
			BirimFiyat:  item.Price,
			ToplamFiyat: item.Price.Mul(decimal.NewFromInt(int64(item.Quantity))),
		})
	}

	var siparis model.Siparis
	var odeme model.Odeme
	txErr := runTx(ctx, s.odemeRepo.DB(), func(tx *gorm.DB) error {
		siparisNo, err := s.siparisRepo.NextSiparisNo(ctx, tx)
		if err != nil {
			return err
		}

		siparis = model.Siparis{
			SiparisNo:     siparisNo,
			MasaID:        masaID,
			ToplamTutar:   req.Amount,
			OdenecekTutar: req.Amount,
			Durum:         "tamamlandi",
			SiparisTipi:   "self",
			SubeID:        user.SubeID,
			Detaylar:      detaylar,
		}
		if err := s.siparisRepo.Create(ctx, tx, &siparis); err != nil {
			return err
		}

		odemeNo, err := s.odemeRepo.NextOdemeNo(ctx, tx)
		if err != nil {
			return err
		}
		odeme = model.Odeme{
			OdemeNo:     odemeNo,
			SiparisID:   siparis.ID,
			MasaID:      masaID,
			Tutar:       req.Amount,
			OdemeTipi:   tip,
			SubeID:      user.SubeID,
			OdemeTarihi: time.Now(),
		}
		if err := s.odemeRepo.Create(ctx, tx, &odeme); err != nil {
			return err
		}

		// Settlement: the payment amount accrues onto the running total and
		// the table closes, atomically with the payment itself.
		if masaID != nil {
			if err := s.masaRepo.SettleTx(tx, *masaID, req.Amount); err != nil {
				return err
			}
		}
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}

	middleware.OdemelerToplam.Inc()

	// Receipt job — best effort, after commit.
	if s.dispatcher != nil {
		payload := worker.FisJobPayload{
			OdemeID:       odeme.ID.String(),
			CustomerEmail: req.CustomerEmail,
		}
		_ = s.dispatcher.EnqueueFis(ctx, payload)
	}

	return &dto.OdemeResponse{
		Success:   true,
		Message:   "Ödeme başarıyla kaydedildi",
		PaymentID: odeme.ID.String(),
		OrderID:   siparis.ID.String(),
	}, nil
}

// Listele returns the most recent payments, scoped to the caller's branch
// when a user is given.
func (s *odemeService) Listele(ctx context.Context, userID *uuid.UUID, limit int) (*dto.OdemeListResponse, error) {
	var subeID *uuid.UUID
	if userID != nil {
		user, err := s.kullaniciRepo.FindByID(ctx, *userID)
		if err != nil {
			return nil, ErrKullaniciBulunamadi
		}
		subeID = &user.SubeID
	}

	if limit <= 0 {
		limit = 10
	}
	odemeler, err := s.odemeRepo.ListRecent(ctx, subeID, limit)
	if err != nil {
		return nil, err
	}

	items := make([]dto.OdemeListItem, 0, len(odemeler))
	for _, o := range odemeler {
		items = append(items, dto.OdemeListItem{
			ID:          o.ID.String(),
			OdemeNo:     o.OdemeNo,
			SiparisID:   o.SiparisID.String(),
			Tutar:       o.Tutar,
			OdemeTipi:   o.OdemeTipi,
			OdemeTarihi: o.OdemeTarihi.Format("2006-01-02T15:04:05Z"),
		})
	}
	return &dto.OdemeListResponse{Success: true, Payments: items}, nil
}

// MasaOdemesiGuncelle rewrites the payment type and amount of a table's
// latest payment (closed-table correction screen).
func (s *odemeService) MasaOdemesiGuncelle(ctx context.Context, masaID uuid.UUID, req dto.OdemeGuncelleRequest) (*dto.MasaIslemResponse, error) {
	if !req.Tutar.IsPositive() {
		return nil, ErrGecersizTutar
	}
	odeme, err := s.odemeRepo.FindLatestByMasa(ctx, masaID)
	if err != nil {
		return nil, ErrOdemeBulunamadi
	}
	if err := s.odemeRepo.UpdateTipVeTutar(ctx, odeme.ID, req.OdemeTipi, req.Tutar); err != nil {
		return nil, err
	}
	return &dto.MasaIslemResponse{
		Success: true,
		Message: "Ödeme güncellendi",
		TableID: masaID.String(),
	}, nil
}
