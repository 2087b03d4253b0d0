package service_test

// In-memory repository stubs shared by the service unit tests. They satisfy
// the repository interfaces with map-backed storage; DB() returns nil so the
// services run their transactional closures directly.

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Ovtnc/Pos-System/internal/model"
	"github.com/Ovtnc/Pos-System/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var errNotFound = errors.New("record not found")

// ── KullaniciRepository stub ─────────────────────────────────────────────────

type stubKullaniciRepo struct {
	byID       map[uuid.UUID]*model.Kullanici
	byUsername map[string]*model.Kullanici
}

func newStubKullaniciRepo() *stubKullaniciRepo {
	return &stubKullaniciRepo{
		byID:       make(map[uuid.UUID]*model.Kullanici),
		byUsername: make(map[string]*model.Kullanici),
	}
}

func (r *stubKullaniciRepo) add(k *model.Kullanici) *model.Kullanici {
	if k.ID == uuid.Nil {
		k.ID = uuid.New()
	}
	r.byID[k.ID] = k
	r.byUsername[k.KullaniciAdi] = k
	return k
}

func (r *stubKullaniciRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Kullanici, error) {
	k, ok := r.byID[id]
	if !ok {
		return nil, errNotFound
	}
	return k, nil
}

func (r *stubKullaniciRepo) FindByUsername(_ context.Context, username string) (*model.Kullanici, error) {
	k, ok := r.byUsername[username]
	if !ok {
		return nil, errNotFound
	}
	return k, nil
}

func (r *stubKullaniciRepo) List(_ context.Context) ([]model.Kullanici, error) {
	out := make([]model.Kullanici, 0, len(r.byID))
	for _, k := range r.byID {
		out = append(out, *k)
	}
	return out, nil
}

func (r *stubKullaniciRepo) Create(_ context.Context, k *model.Kullanici) error {
	r.add(k)
	return nil
}

func (r *stubKullaniciRepo) Update(_ context.Context, k *model.Kullanici) error {
	r.byID[k.ID] = k
	r.byUsername[k.KullaniciAdi] = k
	return nil
}

var _ repository.KullaniciRepository = (*stubKullaniciRepo)(nil)

// ── MasaRepository stub ──────────────────────────────────────────────────────

type stubMasaRepo struct {
	masalar map[uuid.UUID]*model.Masa
}

func newStubMasaRepo() *stubMasaRepo {
	return &stubMasaRepo{masalar: make(map[uuid.UUID]*model.Masa)}
}

func (r *stubMasaRepo) Create(_ context.Context, m *model.Masa) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	r.masalar[m.ID] = m
	return nil
}

func (r *stubMasaRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Masa, error) {
	m, ok := r.masalar[id]
	if !ok {
		return nil, errNotFound
	}
	return m, nil
}

func (r *stubMasaRepo) ListAktif(_ context.Context, subeID *uuid.UUID) ([]model.Masa, error) {
	var out []model.Masa
	for _, m := range r.masalar {
		if m.Durum == "kapali" {
			continue
		}
		if subeID != nil && m.SubeID != *subeID {
			continue
		}
		out = append(out, *m)
	}
	return out, nil
}

func (r *stubMasaRepo) ListAll(_ context.Context) ([]model.Masa, error) {
	out := make([]model.Masa, 0, len(r.masalar))
	for _, m := range r.masalar {
		out = append(out, *m)
	}
	return out, nil
}

func (r *stubMasaRepo) UpdateDurum(_ context.Context, id uuid.UUID, durum string) error {
	m, ok := r.masalar[id]
	if !ok {
		return errNotFound
	}
	m.Durum = durum
	return nil
}

func (r *stubMasaRepo) Kapat(_ context.Context, id uuid.UUID) error {
	m, ok := r.masalar[id]
	if !ok {
		return errNotFound
	}
	now := time.Now()
	m.Durum = "kapali"
	m.KapanisTarihi = &now
	return nil
}

func (r *stubMasaRepo) AccrueTx(_ *gorm.DB, id uuid.UUID, tutar decimal.Decimal) error {
	m, ok := r.masalar[id]
	if !ok {
		return errNotFound
	}
	m.ToplamTutar = m.ToplamTutar.Add(tutar)
	return nil
}

func (r *stubMasaRepo) SettleTx(_ *gorm.DB, id uuid.UUID, tutar decimal.Decimal) error {
	m, ok := r.masalar[id]
	if !ok {
		return errNotFound
	}
	now := time.Now()
	m.ToplamTutar = m.ToplamTutar.Add(tutar)
	m.Durum = "kapali"
	m.KapanisTarihi = &now
	return nil
}

func (r *stubMasaRepo) DB() *gorm.DB { return nil }

var _ repository.MasaRepository = (*stubMasaRepo)(nil)

// ── SiparisRepository stub ───────────────────────────────────────────────────

type stubSiparisRepo struct {
	siparisler map[uuid.UUID]*model.Siparis
	nextNo     int
}

func newStubSiparisRepo() *stubSiparisRepo {
	return &stubSiparisRepo{siparisler: make(map[uuid.UUID]*model.Siparis)}
}

func (r *stubSiparisRepo) Create(_ context.Context, _ *gorm.DB, s *model.Siparis) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	s.CreatedAt = time.Now()
	r.siparisler[s.ID] = s
	return nil
}

func (r *stubSiparisRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Siparis, error) {
	s, ok := r.siparisler[id]
	if !ok {
		return nil, errNotFound
	}
	return s, nil
}

func (r *stubSiparisRepo) ListPendingByMasa(_ context.Context, masaID uuid.UUID) ([]model.Siparis, error) {
	var out []model.Siparis
	for _, s := range r.siparisler {
		if s.MasaID != nil && *s.MasaID == masaID && s.Durum == "beklemede" {
			out = append(out, *s)
		}
	}
	return out, nil
}

func (r *stubSiparisRepo) UpdateDurum(_ context.Context, id uuid.UUID, durum string) error {
	s, ok := r.siparisler[id]
	if !ok {
		return errNotFound
	}
	s.Durum = durum
	return nil
}

func (r *stubSiparisRepo) NextSiparisNo(_ context.Context, _ *gorm.DB) (string, error) {
	r.nextNo++
	return fmt.Sprintf("SP%06d", r.nextNo), nil
}

func (r *stubSiparisRepo) DB() *gorm.DB { return nil }

var _ repository.SiparisRepository = (*stubSiparisRepo)(nil)

// ── OdemeRepository stub ─────────────────────────────────────────────────────

type stubOdemeRepo struct {
	odemeler map[uuid.UUID]*model.Odeme
	order    []uuid.UUID // insertion order, newest last
	closed   []repository.KapananMasaRow
	nextNo   int
}

func newStubOdemeRepo() *stubOdemeRepo {
	return &stubOdemeRepo{odemeler: make(map[uuid.UUID]*model.Odeme)}
}

func (r *stubOdemeRepo) Create(_ context.Context, _ *gorm.DB, o *model.Odeme) error {
	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}
	r.odemeler[o.ID] = o
	r.order = append(r.order, o.ID)
	return nil
}

func (r *stubOdemeRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Odeme, error) {
	o, ok := r.odemeler[id]
	if !ok {
		return nil, errNotFound
	}
	return o, nil
}

func (r *stubOdemeRepo) FindLatestByMasa(_ context.Context, masaID uuid.UUID) (*model.Odeme, error) {
	for i := len(r.order) - 1; i >= 0; i-- {
		o := r.odemeler[r.order[i]]
		if o.MasaID != nil && *o.MasaID == masaID {
			return o, nil
		}
	}
	return nil, errNotFound
}

func (r *stubOdemeRepo) ListRecent(_ context.Context, subeID *uuid.UUID, limit int) ([]model.Odeme, error) {
	var out []model.Odeme
	for i := len(r.order) - 1; i >= 0 && len(out) < limit; i-- {
		o := r.odemeler[r.order[i]]
		if subeID != nil && o.SubeID != *subeID {
			continue
		}
		out = append(out, *o)
	}
	return out, nil
}

func (r *stubOdemeRepo) ListClosedTables(_ context.Context, _ string, _ *uuid.UUID) ([]repository.KapananMasaRow, error) {
	return r.closed, nil
}

func (r *stubOdemeRepo) UpdateTipVeTutar(_ context.Context, id uuid.UUID, odemeTipi string, tutar decimal.Decimal) error {
	o, ok := r.odemeler[id]
	if !ok {
		return errNotFound
	}
	o.OdemeTipi = odemeTipi
	o.Tutar = tutar
	return nil
}

func (r *stubOdemeRepo) NextOdemeNo(_ context.Context, _ *gorm.DB) (string, error) {
	r.nextNo++
	return fmt.Sprintf("OD%06d", r.nextNo), nil
}

func (r *stubOdemeRepo) DB() *gorm.DB { return nil }

var _ repository.OdemeRepository = (*stubOdemeRepo)(nil)

// ── StokRepository stub ──────────────────────────────────────────────────────

type stubStokRepo struct {
	stoklar    map[uuid.UUID]*model.Stok
	hareketler []model.StokHareket
}

func newStubStokRepo() *stubStokRepo {
	return &stubStokRepo{stoklar: make(map[uuid.UUID]*model.Stok)}
}

func (r *stubStokRepo) add(s *model.Stok) *model.Stok {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	r.stoklar[s.ID] = s
	return s
}

func (r *stubStokRepo) List(_ context.Context) ([]repository.StokRow, error) {
	out := make([]repository.StokRow, 0, len(r.stoklar))
	for _, s := range r.stoklar {
		out = append(out, repository.StokRow{
			ID:            s.ID,
			UrunID:        s.UrunID,
			UrunAdi:       s.UrunAdi,
			MevcutStok:    s.MevcutStok,
			MinimumStok:   s.MinimumStok,
			Birim:         s.Birim,
			SonGuncelleme: s.SonGuncelleme,
		})
	}
	return out, nil
}

func (r *stubStokRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Stok, error) {
	s, ok := r.stoklar[id]
	if !ok {
		return nil, errNotFound
	}
	return s, nil
}

func (r *stubStokRepo) FindByIDForUpdateTx(_ *gorm.DB, id uuid.UUID) (*model.Stok, error) {
	s, ok := r.stoklar[id]
	if !ok {
		return nil, errNotFound
	}
	return s, nil
}

func (r *stubStokRepo) UpdateMevcutTx(_ *gorm.DB, id uuid.UUID, yeniStok int) error {
	s, ok := r.stoklar[id]
	if !ok {
		return errNotFound
	}
	s.MevcutStok = yeniStok
	s.SonGuncelleme = time.Now()
	return nil
}

func (r *stubStokRepo) CreateHareketTx(_ *gorm.DB, h *model.StokHareket) error {
	if h.ID == uuid.Nil {
		h.ID = uuid.New()
	}
	r.hareketler = append(r.hareketler, *h)
	return nil
}

func (r *stubStokRepo) ListHareketler(_ context.Context, limit int) ([]repository.StokHareketRow, error) {
	var out []repository.StokHareketRow
	for i := len(r.hareketler) - 1; i >= 0 && len(out) < limit; i-- {
		h := r.hareketler[i]
		out = append(out, repository.StokHareketRow{
			ID:          h.ID,
			HareketTipi: h.HareketTipi,
			Miktar:      h.Miktar,
			OncekiStok:  h.OncekiStok,
			YeniStok:    h.YeniStok,
			Aciklama:    h.Aciklama,
			CreatedAt:   h.CreatedAt,
		})
	}
	return out, nil
}

func (r *stubStokRepo) DB() *gorm.DB { return nil }

var _ repository.StokRepository = (*stubStokRepo)(nil)

// ── shared fixtures ──────────────────────────────────────────────────────────

func seedKullanici(repo *stubKullaniciRepo) *model.Kullanici {
	subeID := uuid.New()
	return repo.add(&model.Kullanici{
		KullaniciAdi: "kasiyer1",
		SifreHash:    "$2a$12$invalid",
		Rol:          "kasiyer",
		SubeID:       subeID,
		Aktif:        true,
		Sube:         &model.Sube{ID: subeID, SubeAdi: "Merkez"},
	})
}

func newAcikMasa(id, acanID, subeID uuid.UUID, toplam decimal.Decimal) *model.Masa {
	return &model.Masa{
		ID:              id,
		MasaAdi:         "Bahçe 1",
		Durum:           "acik",
		AcilisTarihi:    time.Now().Add(-time.Hour),
		ToplamTutar:     toplam,
		AcanKullaniciID: acanID,
		SubeID:          subeID,
	}
}

func odemeFixture(n int, subeID uuid.UUID, ts time.Time) model.Odeme {
	return model.Odeme{
		ID:          uuid.New(),
		OdemeNo:     fmt.Sprintf("OD%06d", 100+n),
		SiparisID:   uuid.New(),
		Tutar:       decimal.NewFromInt(int64(100 + n)),
		OdemeTipi:   "nakit",
		SubeID:      subeID,
		OdemeTarihi: ts,
	}
}
