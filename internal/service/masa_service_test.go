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

func newMasaFixtureSvc(t *testing.T) (service.MasaService, *stubMasaRepo, *stubKullaniciRepo) {
	t.Helper()
	masaRepo := newStubMasaRepo()
	kullaniciRepo := newStubKullaniciRepo()
	return service.NewMasaService(masaRepo, newStubOdemeRepo(), kullaniciRepo), masaRepo, kullaniciRepo
}

func TestMasaAcStartsAtZero(t *testing.T) {
	svc, masaRepo, kullaniciRepo := newMasaFixtureSvc(t)
	user := seedKullanici(kullaniciRepo)

	resp, err := svc.Ac(context.Background(), dto.MasaAcRequest{
		TableName: "Bahçe 3",
		UserID:    user.ID.String(),
	})
	require.NoError(t, err)
	assert.True(t, resp.Success)
	assert.Equal(t, "Masa açıldı", resp.Message)
	assert.Equal(t, user.SubeID.String(), resp.BranchID)
	assert.Equal(t, "Merkez", resp.BranchName)

	m := masaRepo.masalar[uuid.MustParse(resp.TableID)]
	require.NotNil(t, m)
	assert.Equal(t, "acik", m.Durum)
	assert.True(t, m.ToplamTutar.IsZero())
	assert.Equal(t, user.SubeID, m.SubeID)
}

func TestMasaAcUnknownUser(t *testing.T) {
	svc, _, _ := newMasaFixtureSvc(t)
	_, err := svc.Ac(context.Background(), dto.MasaAcRequest{
		TableName: "Bahçe 3",
		UserID:    uuid.NewString(),
	})
	assert.ErrorIs(t, err, service.ErrKullaniciBulunamadi)
}

func TestMasaRezerveVeKapat(t *testing.T) {
	svc, masaRepo, kullaniciRepo := newMasaFixtureSvc(t)
	user := seedKullanici(kullaniciRepo)
	masaID := uuid.New()
	masaRepo.masalar[masaID] = newAcikMasa(masaID, user.ID, user.SubeID, decimal.NewFromInt(45))

	resp, err := svc.Rezerve(context.Background(), masaID)
	require.NoError(t, err)
	assert.Equal(t, "Masa rezerve edildi", resp.Message)
	assert.Equal(t, "rezerve", masaRepo.masalar[masaID].Durum)

	resp, err = svc.Kapat(context.Background(), masaID)
	require.NoError(t, err)
	assert.Equal(t, "Masa kapatıldı", resp.Message)

	m := masaRepo.masalar[masaID]
	assert.Equal(t, "kapali", m.Durum)
	require.NotNil(t, m.KapanisTarihi)
	// Closing keeps the accumulated total for the history view.
	assert.True(t, m.ToplamTutar.Equal(decimal.NewFromInt(45)))
}

func TestMasaRezerveUnknownTable(t *testing.T) {
	svc, _, _ := newMasaFixtureSvc(t)
	_, err := svc.Rezerve(context.Background(), uuid.New())
	assert.ErrorIs(t, err, service.ErrMasaBulunamadi)
}

func TestMasaAktiflerFiltersBranchAndClosed(t *testing.T) {
	svc, masaRepo, kullaniciRepo := newMasaFixtureSvc(t)
	user := seedKullanici(kullaniciRepo)

	own := uuid.New()
	masaRepo.masalar[own] = newAcikMasa(own, user.ID, user.SubeID, decimal.Zero)

	otherBranch := uuid.New()
	masaRepo.masalar[otherBranch] = newAcikMasa(otherBranch, user.ID, uuid.New(), decimal.Zero)

	closed := uuid.New()
	kapali := newAcikMasa(closed, user.ID, user.SubeID, decimal.Zero)
	kapali.Durum = "kapali"
	masaRepo.masalar[closed] = kapali

	resp, err := svc.Aktifler(context.Background(), &user.ID)
	require.NoError(t, err)
	require.Len(t, resp.Tables, 1)
	assert.Equal(t, own.String(), resp.Tables[0].ID)

	// No user: all branches, still excluding closed tables.
	resp, err = svc.Aktifler(context.Background(), nil)
	require.NoError(t, err)
	assert.Len(t, resp.Tables, 2)
}

// Accrual compounding across orders and settlement: 0 + 25 + 35 = 60.
func TestMasaLifecycleAccrual(t *testing.T) {
	kullaniciRepo := newStubKullaniciRepo()
	user := seedKullanici(kullaniciRepo)
	masaRepo := newStubMasaRepo()
	odemeRepo := newStubOdemeRepo()
	siparisRepo := newStubSiparisRepo()

	masaSvc := service.NewMasaService(masaRepo, odemeRepo, kullaniciRepo)
	siparisSvc := service.NewSiparisService(siparisRepo, masaRepo, kullaniciRepo)
	odemeSvc := service.NewOdemeService(odemeRepo, siparisRepo, masaRepo, kullaniciRepo, nil)

	acResp, err := masaSvc.Ac(context.Background(), dto.MasaAcRequest{TableName: "İç 2", UserID: user.ID.String()})
	require.NoError(t, err)
	tableID := acResp.TableID

	_, err = siparisSvc.Olustur(context.Background(), dto.SiparisRequest{
		Items:   []dto.SepetItem{{ID: uuid.NewString(), Name: "Çay", Price: decimal.NewFromInt(25), Quantity: 1}},
		TableID: &tableID,
		UserID:  user.ID.String(),
	})
	require.NoError(t, err)

	req := buildOdemeRequest(user.ID.String(),
		[]dto.SepetItem{{ID: uuid.NewString(), Name: "Kek", Price: decimal.NewFromInt(35), Quantity: 1}},
		decimal.NewFromInt(35))
	req.TableID = &tableID
	_, err = odemeSvc.Kaydet(context.Background(), req)
	require.NoError(t, err)

	m := masaRepo.masalar[uuid.MustParse(tableID)]
	assert.True(t, m.ToplamTutar.Equal(decimal.NewFromInt(60)),
		"expected 25 + 35 = 60, got %s", m.ToplamTutar)
	assert.Equal(t, "kapali", m.Durum)
}

func TestMasaKapananlar(t *testing.T) {
	masaRepo := newStubMasaRepo()
	kullaniciRepo := newStubKullaniciRepo()
	odemeRepo := newStubOdemeRepo()
	svc := service.NewMasaService(masaRepo, odemeRepo, kullaniciRepo)

	resp, err := svc.Kapananlar(context.Background(), "", nil)
	require.NoError(t, err)
	assert.True(t, resp.Success)
	assert.Empty(t, resp.Tables)
}
