package dto

import "github.com/shopspring/decimal"

// SepetItem is one cart line as sent by the client. Name and Price are
// persisted as-is on the order line (historical-accuracy denormalization).
type SepetItem struct {
	ID       string          `json:"id"       validate:"required,uuid"`
	Name     string          `json:"name"     validate:"required"`
	Price    decimal.Decimal `json:"price"    validate:"min=0"`
	Quantity int             `json:"quantity" validate:"required,min=1"`
}

// OdemeRequest is the body of POST /api/payments (checkout / settlement).
type OdemeRequest struct {
	Items         []SepetItem     `json:"items"         validate:"required,min=1,dive"`
	Amount        decimal.Decimal `json:"amount"        validate:"required"`
	TableID       *string         `json:"tableId"       validate:"omitempty,uuid"`
	PaymentMethod string          `json:"paymentMethod" validate:"required,oneof=cash card customer"`
	UserID        string          `json:"userId"        validate:"required,uuid"`
	// CustomerEmail: optional — when present, the receipt worker mails the PDF.
	CustomerEmail *string `json:"customerEmail" validate:"omitempty,email"`
}

type OdemeResponse struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	PaymentID string `json:"paymentId"`
	OrderID   string `json:"orderId"`
}

// OdemeListItem is returned by GET /api/payments.
type OdemeListItem struct {
	ID          string          `json:"id"`
	OdemeNo     string          `json:"odeme_no"`
	SiparisID   string          `json:"siparis_id"`
	Tutar       decimal.Decimal `json:"tutar"`
	OdemeTipi   string          `json:"odeme_tipi"`
	OdemeTarihi string          `json:"odeme_tarihi"`
}

type OdemeListResponse struct {
	Success  bool            `json:"success"`
	Payments []OdemeListItem `json:"payments"`
}

// OdemeGuncelleRequest is the body of PUT /api/tables/:tableId/payment.
type OdemeGuncelleRequest struct {
	OdemeTipi string          `json:"odeme_tipi" validate:"required,oneof=nakit kart mudavim"`
	Tutar     decimal.Decimal `json:"tutar"      validate:"required"`
}
