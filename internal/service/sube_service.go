package service

import (
	"context"

	"github.com/Ovtnc/Pos-System/internal/dto"
	"github.com/Ovtnc/Pos-System/internal/repository"
)

type SubeService interface {
	Listele(ctx context.Context) (*dto.SubeListResponse, error)
}

type subeService struct {
	repo repository.SubeRepository
}

func NewSubeService(repo repository.SubeRepository) SubeService {
	return &subeService{repo: repo}
}

func (s *subeService) Listele(ctx context.Context) (*dto.SubeListResponse, error) {
	subeler, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	items := make([]dto.SubeItem, 0, len(subeler))
	for _, sb := range subeler {
		items = append(items, dto.SubeItem{
			ID:      sb.ID.String(),
			SubeAdi: sb.SubeAdi,
			Adres:   sb.Adres,
			Telefon: sb.Telefon,
		})
	}
	return &dto.SubeListResponse{Success: true, Subeler: items}, nil
}
