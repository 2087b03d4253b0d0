package dto

import "github.com/shopspring/decimal"

// StokGuncelleRequest is the body of PUT /api/stock/:id. Field names follow
// the established wire format of the stock screen.
type StokGuncelleRequest struct {
	Miktar      int     `json:"miktar"       validate:"required,min=1"`
	HareketTipi string  `json:"hareket_tipi" validate:"required,oneof=giris cikis"`
	Aciklama    string  `json:"aciklama"`
	SubeID      *string `json:"sube_id"      validate:"omitempty,uuid"`
	KullaniciID *string `json:"kullanici_id" validate:"omitempty,uuid"`
}

type StokGuncelleResponse struct {
	Success  bool   `json:"success"`
	Message  string `json:"message"`
	YeniStok int    `json:"yeni_stok"`
}

type StokItem struct {
	ID            string          `json:"id"`
	UrunID        *string         `json:"urun_id"`
	UrunAdi       string          `json:"urun_adi"`
	MevcutStok    int             `json:"mevcut_stok"`
	MinimumStok   int             `json:"minimum_stok"`
	Birim         string          `json:"birim"`
	SonGuncelleme string          `json:"son_guncelleme"`
	Fiyat         decimal.Decimal `json:"fiyat"`
	KategoriAdi   string          `json:"kategori_adi"`
}

type StokListResponse struct {
	Success bool       `json:"success"`
	Stock   []StokItem `json:"stock"`
}

type StokHareketItem struct {
	ID           string `json:"id"`
	HareketTipi  string `json:"hareket_tipi"`
	Miktar       int    `json:"miktar"`
	OncekiStok   int    `json:"onceki_stok"`
	YeniStok     int    `json:"yeni_stok"`
	Aciklama     string `json:"aciklama"`
	CreatedAt    string `json:"created_at"`
	UrunAdi      string `json:"urun_adi"`
	SubeAdi      string `json:"sube_adi,omitempty"`
	KullaniciAdi string `json:"kullanici_adi,omitempty"`
}

type StokHareketListResponse struct {
	Success    bool              `json:"success"`
	Movements  []StokHareketItem `json:"movements"`
	Total      int               `json:"total"`
	MaxRecords int               `json:"maxRecords"`
}
