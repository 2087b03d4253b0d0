package dto

import "github.com/shopspring/decimal"

// SiparisRequest is the body of POST /api/orders (table order).
// The total is computed server-side from the lines.
type SiparisRequest struct {
	Items   []SepetItem `json:"items"   validate:"required,min=1,dive"`
	TableID *string     `json:"tableId" validate:"omitempty,uuid"`
	UserID  string      `json:"userId"  validate:"required,uuid"`
}

type SiparisResponse struct {
	Success     bool            `json:"success"`
	Message     string          `json:"message"`
	OrderID     string          `json:"orderId"`
	OrderNumber string          `json:"orderNumber"`
	TotalAmount decimal.Decimal `json:"totalAmount"`
}

type SiparisDetayResponse struct {
	UrunAdi     string          `json:"urun_adi"`
	Adet        int             `json:"adet"`
	BirimFiyat  decimal.Decimal `json:"birim_fiyat"`
	ToplamFiyat decimal.Decimal `json:"toplam_fiyat"`
}

// MasaSiparisItem is one pending order of a table with its nested lines.
type MasaSiparisItem struct {
	ID          string                 `json:"id"`
	SiparisNo   string                 `json:"siparis_no"`
	ToplamTutar decimal.Decimal        `json:"toplam_tutar"`
	Durum       string                 `json:"durum"`
	CreatedAt   string                 `json:"created_at"`
	Detaylar    []SiparisDetayResponse `json:"detaylar"`
}

type MasaSiparisListResponse struct {
	Success bool              `json:"success"`
	Orders  []MasaSiparisItem `json:"orders"`
}

type SiparisDurumRequest struct {
	Status string `json:"status" validate:"required"`
}
