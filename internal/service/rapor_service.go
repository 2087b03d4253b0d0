package service

import (
	"context"

	"github.com/Ovtnc/Pos-System/internal/dto"
	"github.com/Ovtnc/Pos-System/internal/repository"

	"github.com/google/uuid"
)

type RaporService interface {
	Dashboard(ctx context.Context, filter dto.DashboardFilter) (*dto.DashboardResponse, error)
	CiroRaporu(ctx context.Context, filter dto.RaporFilter) (*dto.CiroRaporuResponse, error)
	SatisRaporu(ctx context.Context, filter dto.RaporFilter) (*dto.SatisRaporuResponse, error)
}

type raporService struct {
	raporRepo     repository.RaporRepository
	kullaniciRepo repository.KullaniciRepository
}

func NewRaporService(raporRepo repository.RaporRepository, kullaniciRepo repository.KullaniciRepository) RaporService {
	return &raporService{raporRepo: raporRepo, kullaniciRepo: kullaniciRepo}
}

// resolveSube turns an explicit branch id or a user id into the branch to
// report on. Explicit branch wins.
func (s *raporService) resolveSube(ctx context.Context, subeIDStr, userIDStr string) (*uuid.UUID, error) {
	if subeIDStr != "" {
		id, err := uuid.Parse(subeIDStr)
		if err != nil {
			return nil, ErrSubeGerekli
		}
		return &id, nil
	}
	if userIDStr != "" {
		userID, err := uuid.Parse(userIDStr)
		if err != nil {
			return nil, ErrKullaniciBulunamadi
		}
		user, err := s.kullaniciRepo.FindByID(ctx, userID)
		if err != nil {
			return nil, ErrKullaniciBulunamadi
		}
		return &user.SubeID, nil
	}
	return nil, nil
}

func (s *raporService) Dashboard(ctx context.Context, filter dto.DashboardFilter) (*dto.DashboardResponse, error) {
	subeID, err := s.resolveSube(ctx, filter.SubeID, filter.UserID)
	if err != nil {
		return nil, err
	}
	if subeID == nil {
		return nil, ErrSubeGerekli
	}

	resp := &dto.DashboardResponse{Success: true}

	for _, w := range []struct {
		window string
		sales  func(o *dto.SatisOzeti)
	}{
		{"daily", func(o *dto.SatisOzeti) { resp.DailySales, resp.DailyTransactions = o.TotalSales, o.TransactionCount }},
		{"weekly", func(o *dto.SatisOzeti) { resp.WeeklySales, resp.WeeklyTransactions = o.TotalSales, o.TransactionCount }},
		{"monthly", func(o *dto.SatisOzeti) { resp.MonthlySales, resp.MonthlyTransactions = o.TotalSales, o.TransactionCount }},
		{"yearly", func(o *dto.SatisOzeti) { resp.YearlySales, resp.YearlyTransactions = o.TotalSales, o.TransactionCount }},
	} {
		ozet, err := s.raporRepo.SatisOzeti(ctx, *subeID, w.window)
		if err != nil {
			return nil, err
		}
		w.sales(ozet)
	}

	bugun, err := s.raporRepo.OdemeTipleriBugun(ctx, *subeID)
	if err != nil {
		return nil, err
	}
	for _, row := range bugun {
		switch row.OdemeTipi {
		case "nakit":
			resp.PaymentDetails.NakitSatis = row.TotalAmount
		case "kart":
			resp.PaymentDetails.KartSatis = row.TotalAmount
		case "mudavim":
			resp.PaymentDetails.MudavimSatis = row.TotalAmount
		}
	}

	if resp.RecentSales, err = s.raporRepo.SonSatislar(ctx, *subeID, 10); err != nil {
		return nil, err
	}
	if resp.DailySalesThisMonth, err = s.raporRepo.GunlukSatislarBuAy(ctx, *subeID); err != nil {
		return nil, err
	}
	if resp.TopProducts, err = s.raporRepo.EnCokSatanlarBuAy(ctx, *subeID, 10); err != nil {
		return nil, err
	}
	if resp.HourlySalesToday, err = s.raporRepo.SaatlikSatislarBugun(ctx, *subeID); err != nil {
		return nil, err
	}
	if resp.PaymentTypeDistribution, err = s.raporRepo.OdemeTipiDagilimiBuAy(ctx, *subeID); err != nil {
		return nil, err
	}

	return resp, nil
}

func (s *raporService) CiroRaporu(ctx context.Context, filter dto.RaporFilter) (*dto.CiroRaporuResponse, error) {
	subeID, err := s.resolveSube(ctx, filter.SubeID, "")
	if err != nil {
		return nil, err
	}

	var rapor dto.CiroRaporu

	toplam, err := s.raporRepo.ToplamCiro(ctx, filter.StartDate, filter.EndDate, subeID)
	if err != nil {
		return nil, err
	}
	rapor.TotalRevenue = *toplam

	if rapor.PaymentTypeRevenue, err = s.raporRepo.OdemeTipineGoreCiro(ctx, filter.StartDate, filter.EndDate, subeID); err != nil {
		return nil, err
	}
	if rapor.DailyRevenue, err = s.raporRepo.GunlukCiro(ctx, filter.StartDate, filter.EndDate, subeID); err != nil {
		return nil, err
	}
	if rapor.HourlyRevenue, err = s.raporRepo.SaatlikCiroBugun(ctx, subeID); err != nil {
		return nil, err
	}

	return &dto.CiroRaporuResponse{Success: true, Data: rapor}, nil
}

func (s *raporService) SatisRaporu(ctx context.Context, filter dto.RaporFilter) (*dto.SatisRaporuResponse, error) {
	subeID, err := s.resolveSube(ctx, filter.SubeID, "")
	if err != nil {
		return nil, err
	}

	var rapor dto.SatisRaporu
	if rapor.TopProducts, err = s.raporRepo.EnCokSatilanUrunler(ctx, filter.StartDate, filter.EndDate, subeID, 20); err != nil {
		return nil, err
	}
	if rapor.CategorySales, err = s.raporRepo.KategoriBazindaSatis(ctx, filter.StartDate, filter.EndDate, subeID); err != nil {
		return nil, err
	}

	return &dto.SatisRaporuResponse{Success: true, Data: rapor}, nil
}
