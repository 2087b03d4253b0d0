package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/Ovtnc/Pos-System/internal/dto"
	"github.com/Ovtnc/Pos-System/internal/model"
	"github.com/Ovtnc/Pos-System/internal/repository"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const (
	urunCacheKey = "cache:urunler"
	urunCacheTTL = 5 * time.Minute
)

type UrunService interface {
	Urunler(ctx context.Context) (*dto.UrunListResponse, error)
	KategoriUrunleri(ctx context.Context, kategoriID uuid.UUID, userID *uuid.UUID) (*dto.UrunListResponse, error)
	Kategoriler(ctx context.Context) (*dto.KategoriListResponse, error)
}

type urunService struct {
	urunRepo   repository.UrunRepository
	favoriRepo repository.FavoriRepository
	rdb        *redis.Client
}

func NewUrunService(urunRepo repository.UrunRepository, favoriRepo repository.FavoriRepository, rdb *redis.Client) UrunService {
	return &urunService{urunRepo: urunRepo, favoriRepo: favoriRepo, rdb: rdb}
}

// Urunler returns the active catalog, served from the Redis cache when warm.
func (s *urunService) Urunler(ctx context.Context) (*dto.UrunListResponse, error) {
	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, urunCacheKey).Result(); err == nil {
			var resp dto.UrunListResponse
			if json.Unmarshal([]byte(cached), &resp) == nil {
				return &resp, nil
			}
		}
	}

	urunler, err := s.urunRepo.ListAktif(ctx)
	if err != nil {
		return nil, err
	}
	resp := &dto.UrunListResponse{Success: true, Products: urunlerToItems(urunler)}

	if s.rdb != nil {
		if data, err := json.Marshal(resp); err == nil {
			if err := s.rdb.Set(ctx, urunCacheKey, data, urunCacheTTL).Err(); err != nil {
				log.Warn().Err(err).Msg("urun cache write failed")
			}
		}
	}
	return resp, nil
}

// KategoriUrunleri lists one category's products. The quick-actions category
// is virtual: its contents are the caller's favorite products.
func (s *urunService) KategoriUrunleri(ctx context.Context, kategoriID uuid.UUID, userID *uuid.UUID) (*dto.UrunListResponse, error) {
	kategori, err := s.urunRepo.FindKategoriByID(ctx, kategoriID)
	if err != nil {
		return nil, ErrKategoriBulunamadi
	}

	if kategori.HizliIslem {
		if userID == nil {
			return &dto.UrunListResponse{Success: true, Products: []dto.UrunItem{}}, nil
		}
		favoriler, err := s.favoriRepo.ListByKullanici(ctx, *userID)
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
		return &dto.UrunListResponse{Success: true, Products: items}, nil
	}

	urunler, err := s.urunRepo.ListByKategori(ctx, kategoriID)
	if err != nil {
		return nil, err
	}
	return &dto.UrunListResponse{Success: true, Products: urunlerToItems(urunler)}, nil
}

func (s *urunService) Kategoriler(ctx context.Context) (*dto.KategoriListResponse, error) {
	kategoriler, err := s.urunRepo.ListKategoriler(ctx)
	if err != nil {
		return nil, err
	}

	items := make([]dto.KategoriItem, 0, len(kategoriler))
	for _, k := range kategoriler {
		items = append(items, dto.KategoriItem{ID: k.ID.String(), Name: k.Ad})
	}
	return &dto.KategoriListResponse{Success: true, Categories: items}, nil
}

func urunToItem(u *model.Urun) dto.UrunItem {
	item := dto.UrunItem{
		ID:         u.ID.String(),
		Name:       u.Isim,
		Price:      u.Fiyat,
		KategoriID: u.KategoriID.String(),
	}
	if u.Kategori != nil {
		item.Category = u.Kategori.Ad
	}
	return item
}

func urunlerToItems(urunler []model.Urun) []dto.UrunItem {
	items := make([]dto.UrunItem, 0, len(urunler))
	for i := range urunler {
		items = append(items, urunToItem(&urunler[i]))
	}
	return items
}
