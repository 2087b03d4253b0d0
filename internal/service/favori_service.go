package service

import (
	"context"

	"github.com/Ovtnc/Pos-System/internal/dto"
	"github.com/Ovtnc/Pos-System/internal/model"
	"github.com/Ovtnc/Pos-System/internal/repository"

	"github.com/google/uuid"
)

type FavoriService interface {
	Listele(ctx context.Context, userID uuid.UUID) (*dto.FavoriListResponse, error)
	Ekle(ctx context.Context, req dto.FavoriRequest) error
	Sil(ctx context.Context, req dto.FavoriRequest) error
}

type favoriService struct {
	favoriRepo    repository.FavoriRepository
	kullaniciRepo repository.KullaniciRepository
}

func NewFavoriService(favoriRepo repository.FavoriRepository, kullaniciRepo repository.KullaniciRepository) FavoriService {
	return &favoriService{favoriRepo: favoriRepo, kullaniciRepo: kullaniciRepo}
}

func (s *favoriService) Listele(ctx context.Context, userID uuid.UUID) (*dto.FavoriListResponse, error) {
	favoriler, err := s.favoriRepo.ListByKullanici(ctx, userID)
	if err != nil {
		return nil, err
	}

	items := make([]dto.UrunItem, 0, len(favoriler))
	for _, f := range favoriler {
		if f.Urun == nil {
			continue
		}
		item := urunToItem(f.Urun)
		item.Type = "favori"
		items = append(items, item)
	}
	return &dto.FavoriListResponse{Success: true, Favorites: items}, nil
}

func (s *favoriService) Ekle(ctx context.Context, req dto.FavoriRequest) error {
	userID, err := uuid.Parse(req.UserID)
	if err != nil {
		return ErrKullaniciBulunamadi
	}
	if _, err := s.kullaniciRepo.FindByID(ctx, userID); err != nil {
		return ErrKullaniciBulunamadi
	}
	urunID, err := uuid.Parse(req.UrunID)
	if err != nil {
		return ErrUrunBulunamadi
	}

	return s.favoriRepo.Add(ctx, &model.FavoriUrun{
		KullaniciID: userID,
		UrunID:      urunID,
	})
}

func (s *favoriService) Sil(ctx context.Context, req dto.FavoriRequest) error {
	userID, err := uuid.Parse(req.UserID)
	if err != nil {
		return ErrKullaniciBulunamadi
	}
	urunID, err := uuid.Parse(req.UrunID)
	if err != nil {
		return ErrUrunBulunamadi
	}
	return s.favoriRepo.Remove(ctx, userID, urunID)
}
