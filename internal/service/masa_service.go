package service

import (
	"context"
	"time"

	"github.com/Ovtnc/Pos-System/internal/dto"
	"github.com/Ovtnc/Pos-System/internal/model"
	"github.com/Ovtnc/Pos-System/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type MasaService interface {
	Ac(ctx context.Context, req dto.MasaAcRequest) (*dto.MasaAcResponse, error)
	Rezerve(ctx context.Context, masaID uuid.UUID) (*dto.MasaIslemResponse, error)
	Kapat(ctx context.Context, masaID uuid.UUID) (*dto.MasaIslemResponse, error)
	Aktifler(ctx context.Context, userID *uuid.UUID) (*dto.MasaListResponse, error)
	Tumu(ctx context.Context) (*dto.MasaListResponse, error)
	Kapananlar(ctx context.Context, date string, userID *uuid.UUID) (*dto.KapananMasaListResponse, error)
	Detay(ctx context.Context, masaID uuid.UUID) (*dto.MasaDetayResponse, error)
}

type masaService struct {
	masaRepo      repository.MasaRepository
	odemeRepo     repository.OdemeRepository
	kullaniciRepo repository.KullaniciRepository
}

func NewMasaService(
	masaRepo repository.MasaRepository,
	odemeRepo repository.OdemeRepository,
	kullaniciRepo repository.KullaniciRepository,
) MasaService {
	return &masaService{
		masaRepo:      masaRepo,
		odemeRepo:     odemeRepo,
		kullaniciRepo: kullaniciRepo,
	}
}

// Ac opens a fresh tab with a zero total. The branch comes from the opening
// user, never from a default.
func (s *masaService) Ac(ctx context.Context, req dto.MasaAcRequest) (*dto.MasaAcResponse, error) {
	userID, err := uuid.Parse(req.UserID)
	if err != nil {
		return nil, ErrKullaniciBulunamadi
	}
	user, err := s.kullaniciRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, ErrKullaniciBulunamadi
	}

	masa := model.Masa{
		MasaAdi:         req.TableName,
		Durum:           "acik",
		AcilisTarihi:    time.Now(),
		ToplamTutar:     decimal.Zero,
		AcanKullaniciID: user.ID,
		SubeID:          user.SubeID,
	}
	if err := s.masaRepo.Create(ctx, &masa); err != nil {
		return nil, err
	}

	subeAdi := ""
	if user.Sube != nil {
		subeAdi = user.Sube.SubeAdi
	}
	return &dto.MasaAcResponse{
		Success:    true,
		Message:    "Masa açıldı",
		TableID:    masa.ID.String(),
		TableName:  masa.MasaAdi,
		BranchID:   user.SubeID.String(),
		BranchName: subeAdi,
	}, nil
}

func (s *masaService) Rezerve(ctx context.Context, masaID uuid.UUID) (*dto.MasaIslemResponse, error) {
	if _, err := s.masaRepo.FindByID(ctx, masaID); err != nil {
		return nil, ErrMasaBulunamadi
	}
	if err := s.masaRepo.UpdateDurum(ctx, masaID, "rezerve"); err != nil {
		return nil, err
	}
	return &dto.MasaIslemResponse{
		Success: true,
		Message: "Masa rezerve edildi",
		TableID: masaID.String(),
	}, nil
}

// Kapat closes the table unconditionally, stamping the closing time. The
// accumulated total stays on the row for the closed-tables history.
func (s *masaService) Kapat(ctx context.Context, masaID uuid.UUID) (*dto.MasaIslemResponse, error) {
	if _, err := s.masaRepo.FindByID(ctx, masaID); err != nil {
		return nil, ErrMasaBulunamadi
	}
	if err := s.masaRepo.Kapat(ctx, masaID); err != nil {
		return nil, err
	}
	return &dto.MasaIslemResponse{
		Success: true,
		Message: "Masa kapatıldı",
		TableID: masaID.String(),
	}, nil
}

// Aktifler lists open and reserved tables, branch-scoped when a user is given.
func (s *masaService) Aktifler(ctx context.Context, userID *uuid.UUID) (*dto.MasaListResponse, error) {
	var subeID *uuid.UUID
	if userID != nil {
		user, err := s.kullaniciRepo.FindByID(ctx, *userID)
		if err != nil {
			return nil, ErrKullaniciBulunamadi
		}
		subeID = &user.SubeID
	}

	masalar, err := s.masaRepo.ListAktif(ctx, subeID)
	if err != nil {
		return nil, err
	}
	return &dto.MasaListResponse{Success: true, Tables: masalarToItems(masalar)}, nil
}

func (s *masaService) Tumu(ctx context.Context) (*dto.MasaListResponse, error) {
	masalar, err := s.masaRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	return &dto.MasaListResponse{Success: true, Tables: masalarToItems(masalar)}, nil
}

// Kapananlar presents settled payments as the closed-tables history.
// date format: YYYY-MM-DD; empty means today.
func (s *masaService) Kapananlar(ctx context.Context, date string, userID *uuid.UUID) (*dto.KapananMasaListResponse, error) {
	if date == "" {
		date = time.Now().Format("2006-01-02")
	}

	var subeID *uuid.UUID
	if userID != nil {
		user, err := s.kullaniciRepo.FindByID(ctx, *userID)
		if err != nil {
			return nil, ErrKullaniciBulunamadi
		}
		subeID = &user.SubeID
	}

	rows, err := s.odemeRepo.ListClosedTables(ctx, date, subeID)
	if err != nil {
		return nil, err
	}

	items := make([]dto.KapananMasaItem, 0, len(rows))
	for _, row := range rows {
		items = append(items, dto.KapananMasaItem{
			ID:            row.ID.String(),
			OdemeNo:       row.OdemeNo,
			ToplamTutar:   row.ToplamTutar,
			OdemeTipi:     row.OdemeTipi,
			KapanisTarihi: row.KapanisTarihi.Format("2006-01-02T15:04:05Z"),
			SubeAdi:       row.SubeAdi,
			MasaAdi:       row.MasaAdi,
		})
	}
	return &dto.KapananMasaListResponse{Success: true, Tables: items}, nil
}

func (s *masaService) Detay(ctx context.Context, masaID uuid.UUID) (*dto.MasaDetayResponse, error) {
	masa, err := s.masaRepo.FindByID(ctx, masaID)
	if err != nil {
		return nil, ErrMasaBulunamadi
	}
	return &dto.MasaDetayResponse{Success: true, Table: masaToItem(masa)}, nil
}

func masaToItem(m *model.Masa) dto.MasaItem {
	item := dto.MasaItem{
		ID:              m.ID.String(),
		MasaAdi:         m.MasaAdi,
		Durum:           m.Durum,
		AcilisTarihi:    m.AcilisTarihi.Format("2006-01-02T15:04:05Z"),
		ToplamTutar:     m.ToplamTutar,
		AcanKullaniciID: m.AcanKullaniciID.String(),
	}
	if m.KapanisTarihi != nil {
		ts := m.KapanisTarihi.Format("2006-01-02T15:04:05Z")
		item.KapanisTarihi = &ts
	}
	if m.AcanKullanici != nil && m.AcanKullanici.Sube != nil {
		item.SubeAdi = m.AcanKullanici.Sube.SubeAdi
	}
	return item
}

func masalarToItems(masalar []model.Masa) []dto.MasaItem {
	items := make([]dto.MasaItem, 0, len(masalar))
	for i := range masalar {
		items = append(items, masaToItem(&masalar[i]))
	}
	return items
}
