package dto

import "github.com/shopspring/decimal"

type UrunItem struct {
	ID         string          `json:"id"`
	Name       string          `json:"name"`
	Price      decimal.Decimal `json:"price"`
	KategoriID string          `json:"kategori_id"`
	Category   string          `json:"category"`
	// Type distinguishes quick-action favorites from normal catalog entries.
	Type string `json:"type,omitempty"`
}

type UrunListResponse struct {
	Success  bool       `json:"success"`
	Products []UrunItem `json:"products"`
}

type KategoriItem struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type KategoriListResponse struct {
	Success    bool           `json:"success"`
	Categories []KategoriItem `json:"categories"`
}
