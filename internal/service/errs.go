package service

import "errors"

// Sentinel errors of the service layer. Handlers map these to HTTP status
// codes; any other error is logged and surfaced as a generic message.
var (
	ErrGecersizKimlik      = errors.New("Kullanıcı adı veya şifre hatalı")
	ErrKullaniciBulunamadi = errors.New("Kullanıcı bulunamadı")
	ErrMasaBulunamadi      = errors.New("Masa bulunamadı")
	ErrSiparisBulunamadi   = errors.New("Sipariş bulunamadı")
	ErrOdemeBulunamadi     = errors.New("Ödeme bulunamadı")
	ErrStokBulunamadi      = errors.New("Stok kaydı bulunamadı")
	ErrKategoriBulunamadi  = errors.New("Kategori bulunamadı")
	ErrUrunBulunamadi      = errors.New("Ürün bulunamadı")
	ErrGecersizTutar       = errors.New("Geçersiz tutar")
	ErrYetersizStok        = errors.New("Yetersiz stok")
	ErrSubeGerekli         = errors.New("Şube veya kullanıcı belirtilmeli")
)

// IsNotFound reports whether err should surface as HTTP 404.
func IsNotFound(err error) bool {
	switch {
	case errors.Is(err, ErrKullaniciBulunamadi),
		errors.Is(err, ErrMasaBulunamadi),
		errors.Is(err, ErrSiparisBulunamadi),
		errors.Is(err, ErrOdemeBulunamadi),
		errors.Is(err, ErrStokBulunamadi),
		errors.Is(err, ErrKategoriBulunamadi),
		errors.Is(err, ErrUrunBulunamadi):
		return true
	}
	return false
}
