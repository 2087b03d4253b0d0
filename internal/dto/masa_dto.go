package dto

import "github.com/shopspring/decimal"

type MasaAcRequest struct {
	TableName string `json:"tableName" validate:"required"`
	UserID    string `json:"userId"    validate:"required,uuid"`
}

type MasaAcResponse struct {
	Success    bool   `json:"success"`
	Message    string `json:"message"`
	TableID    string `json:"tableId"`
	TableName  string `json:"tableName"`
	BranchID   string `json:"branchId"`
	BranchName string `json:"branchName"`
}

// MasaIslemRequest covers close and reserve — both take only the table id.
type MasaIslemRequest struct {
	TableID string `json:"tableId" validate:"required,uuid"`
}

type MasaIslemResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	TableID string `json:"tableId"`
}

type MasaItem struct {
	ID              string          `json:"id"`
	MasaAdi         string          `json:"masa_adi"`
	Durum           string          `json:"durum"`
	AcilisTarihi    string          `json:"acilis_tarihi"`
	KapanisTarihi   *string         `json:"kapanis_tarihi,omitempty"`
	ToplamTutar     decimal.Decimal `json:"toplam_tutar"`
	AcanKullaniciID string          `json:"acan_kullanici_id"`
	SubeAdi         string          `json:"sube_adi,omitempty"`
}

type MasaListResponse struct {
	Success bool       `json:"success"`
	Tables  []MasaItem `json:"tables"`
}

type MasaDetayResponse struct {
	Success bool     `json:"success"`
	Table   MasaItem `json:"table"`
}

// KapananMasaItem is one row of GET /api/tables/closed — settled payments
// presented as closed tabs.
type KapananMasaItem struct {
	ID            string          `json:"id"`
	OdemeNo       string          `json:"odeme_no"`
	ToplamTutar   decimal.Decimal `json:"toplam_tutar"`
	OdemeTipi     string          `json:"odeme_tipi"`
	KapanisTarihi string          `json:"kapanis_tarihi"`
	SubeAdi       string          `json:"sube_adi"`
	MasaAdi       string          `json:"masa_adi"`
}

type KapananMasaListResponse struct {
	Success bool              `json:"success"`
	Tables  []KapananMasaItem `json:"tables"`
}
