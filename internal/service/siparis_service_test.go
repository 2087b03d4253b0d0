package service_test

import (
	"context"
	"testing"

	"github.com/Ovtnc/Pos-System/internal/dto"
	"github.com/Ovtnc/Pos-System/internal/service"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSiparisOlusturComputesTotalServerSide(t *testing.T) {
	kullaniciRepo := newStubKullaniciRepo()
	user := seedKullanici(kullaniciRepo)
	siparisRepo := newStubSiparisRepo()

	svc := service.NewSiparisService(siparisRepo, newStubMasaRepo(), kullaniciRepo)

	resp, err := svc.Olustur(context.Background(), dto.SiparisRequest{
		Items: []dto.SepetItem{
			{ID: uuid.NewString(), Name: "Çay", Price: decimal.NewFromInt(30), Quantity: 3},
			{ID: uuid.NewString(), Name: "Tost", Price: decimal.NewFromInt(95), Quantity: 2},
		},
		UserID: user.ID.String(),
	})
	require.NoError(t, err)
	assert.True(t, resp.Success)
	// 3×30 + 2×95 = 280, regardless of what the client claims.
	assert.True(t, resp.TotalAmount.Equal(decimal.NewFromInt(280)))
	assert.Equal(t, "SP000001", resp.OrderNumber)

	orderID, err := uuid.Parse(resp.OrderID)
	require.NoError(t, err)
	siparis, err := siparisRepo.FindByID(context.Background(), orderID)
	require.NoError(t, err)
	assert.Equal(t, "beklemede", siparis.Durum)
	assert.Equal(t, "masa", siparis.SiparisTipi)
	assert.Equal(t, user.SubeID, siparis.SubeID)
}

func TestSiparisOlusturAccruesOntoTable(t *testing.T) {
	kullaniciRepo := newStubKullaniciRepo()
	user := seedKullanici(kullaniciRepo)
	masaRepo := newStubMasaRepo()
	masaID := uuid.New()
	masaRepo.masalar[masaID] = newAcikMasa(masaID, user.ID, user.SubeID, decimal.NewFromInt(120))

	svc := service.NewSiparisService(newStubSiparisRepo(), masaRepo, kullaniciRepo)

	tableID := masaID.String()
	_, err := svc.Olustur(context.Background(), dto.SiparisRequest{
		Items: []dto.SepetItem{
			{ID: uuid.NewString(), Name: "Latte", Price: decimal.NewFromInt(90), Quantity: 2},
		},
		TableID: &tableID,
		UserID:  user.ID.String(),
	})
	require.NoError(t, err)

	m := masaRepo.masalar[masaID]
	assert.True(t, m.ToplamTutar.Equal(decimal.NewFromInt(300)),
		"expected 120 + 180 = 300, got %s", m.ToplamTutar)
	assert.Equal(t, "acik", m.Durum, "an order must not close the table")
}

func TestSiparisOlusturRejectsUnknownTable(t *testing.T) {
	kullaniciRepo := newStubKullaniciRepo()
	user := seedKullanici(kullaniciRepo)
	siparisRepo := newStubSiparisRepo()
	svc := service.NewSiparisService(siparisRepo, newStubMasaRepo(), kullaniciRepo)

	tableID := uuid.NewString()
	_, err := svc.Olustur(context.Background(), dto.SiparisRequest{
		Items:   []dto.SepetItem{{ID: uuid.NewString(), Name: "Çay", Price: decimal.NewFromInt(30), Quantity: 1}},
		TableID: &tableID,
		UserID:  user.ID.String(),
	})
	assert.ErrorIs(t, err, service.ErrMasaBulunamadi)
	assert.Empty(t, siparisRepo.siparisler)
}

func TestMasaSiparisleriReturnsPendingWithLines(t *testing.T) {
	kullaniciRepo := newStubKullaniciRepo()
	user := seedKullanici(kullaniciRepo)
	masaRepo := newStubMasaRepo()
	siparisRepo := newStubSiparisRepo()
	masaID := uuid.New()
	masaRepo.masalar[masaID] = newAcikMasa(masaID, user.ID, user.SubeID, decimal.Zero)

	svc := service.NewSiparisService(siparisRepo, masaRepo, kullaniciRepo)

	tableID := masaID.String()
	for i := 0; i < 2; i++ {
		_, err := svc.Olustur(context.Background(), dto.SiparisRequest{
			Items:   []dto.SepetItem{{ID: uuid.NewString(), Name: "Su", Price: decimal.NewFromInt(15), Quantity: 1}},
			TableID: &tableID,
			UserID:  user.ID.String(),
		})
		require.NoError(t, err)
	}

	resp, err := svc.MasaSiparisleri(context.Background(), masaID)
	require.NoError(t, err)
	require.Len(t, resp.Orders, 2)
	require.Len(t, resp.Orders[0].Detaylar, 1)
	assert.Equal(t, "Su", resp.Orders[0].Detaylar[0].UrunAdi)
}

func TestSiparisDurumGuncelle(t *testing.T) {
	kullaniciRepo := newStubKullaniciRepo()
	user := seedKullanici(kullaniciRepo)
	siparisRepo := newStubSiparisRepo()
	svc := service.NewSiparisService(siparisRepo, newStubMasaRepo(), kullaniciRepo)

	resp, err := svc.Olustur(context.Background(), dto.SiparisRequest{
		Items:  []dto.SepetItem{{ID: uuid.NewString(), Name: "Çay", Price: decimal.NewFromInt(30), Quantity: 1}},
		UserID: user.ID.String(),
	})
	require.NoError(t, err)

	orderID := uuid.MustParse(resp.OrderID)
	require.NoError(t, svc.DurumGuncelle(context.Background(), orderID, "tamamlandi"))
	siparis, err := siparisRepo.FindByID(context.Background(), orderID)
	require.NoError(t, err)
	assert.Equal(t, "tamamlandi", siparis.Durum)

	err = svc.DurumGuncelle(context.Background(), uuid.New(), "tamamlandi")
	assert.ErrorIs(t, err, service.ErrSiparisBulunamadi)
}
