package dto

type FavoriRequest struct {
	UserID string `json:"userId" validate:"required,uuid"`
	UrunID string `json:"urunId" validate:"required,uuid"`
}

type FavoriListResponse struct {
	Success   bool       `json:"success"`
	Favorites []UrunItem `json:"favorites"`
}
