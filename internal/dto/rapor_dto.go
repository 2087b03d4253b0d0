package dto

import "github.com/shopspring/decimal"

// ─── Dashboard ──────────────────────────────────────────────────────────────

// SatisOzeti is a (sum, count) pair for one time window.
type SatisOzeti struct {
	TotalSales       decimal.Decimal `json:"total_sales"`
	TransactionCount int64           `json:"transaction_count"`
}

type OdemeDagilimi struct {
	NakitSatis   decimal.Decimal `json:"nakit_satis"`
	KartSatis    decimal.Decimal `json:"kart_satis"`
	MudavimSatis decimal.Decimal `json:"mudavim_satis"`
}

type GunlukSatis struct {
	Date             string          `json:"date"`
	TotalSales       decimal.Decimal `json:"total_sales"`
	TransactionCount int64           `json:"transaction_count"`
}

type SaatlikSatis struct {
	Hour             int             `json:"hour"`
	TotalSales       decimal.Decimal `json:"total_sales"`
	TransactionCount int64           `json:"transaction_count"`
}

type UrunSatisi struct {
	ProductName   string          `json:"product_name"`
	TotalQuantity int64           `json:"total_quantity"`
	TotalRevenue  decimal.Decimal `json:"total_revenue"`
}

type OdemeTipiDagilimi struct {
	OdemeTipi   string          `json:"odeme_tipi"`
	Count       int64           `json:"count"`
	TotalAmount decimal.Decimal `json:"total_amount"`
}

type DashboardFilter struct {
	SubeID string `form:"subeId" validate:"omitempty,uuid"`
	UserID string `form:"userId" validate:"omitempty,uuid"`
}

type DashboardResponse struct {
	Success                 bool                `json:"success"`
	DailySales              decimal.Decimal     `json:"dailySales"`
	DailyTransactions       int64               `json:"dailyTransactions"`
	WeeklySales             decimal.Decimal     `json:"weeklySales"`
	WeeklyTransactions      int64               `json:"weeklyTransactions"`
	MonthlySales            decimal.Decimal     `json:"monthlySales"`
	MonthlyTransactions     int64               `json:"monthlyTransactions"`
	YearlySales             decimal.Decimal     `json:"yearlySales"`
	YearlyTransactions      int64               `json:"yearlyTransactions"`
	PaymentDetails          OdemeDagilimi       `json:"paymentDetails"`
	RecentSales             []OdemeListItem     `json:"recentSales"`
	DailySalesThisMonth     []GunlukSatis       `json:"dailySalesThisMonth"`
	TopProducts             []UrunSatisi        `json:"topProducts"`
	HourlySalesToday        []SaatlikSatis      `json:"hourlySalesToday"`
	PaymentTypeDistribution []OdemeTipiDagilimi `json:"paymentTypeDistribution"`
}

// ─── Reports ────────────────────────────────────────────────────────────────

type RaporFilter struct {
	StartDate string `form:"startDate" validate:"required"`
	EndDate   string `form:"endDate"   validate:"required"`
	SubeID    string `form:"subeId"    validate:"omitempty,uuid"`
}

type CiroOzeti struct {
	ToplamCiro  decimal.Decimal `json:"toplam_ciro"`
	ToplamIslem int64           `json:"toplam_islem"`
}

type OdemeTipiCiro struct {
	OdemeTipi   string          `json:"odeme_tipi"`
	ToplamTutar decimal.Decimal `json:"toplam_tutar"`
	IslemSayisi int64           `json:"islem_sayisi"`
}

type GunlukCiro struct {
	Tarih       string          `json:"tarih"`
	GunlukCiro  decimal.Decimal `json:"gunluk_ciro"`
	IslemSayisi int64           `json:"islem_sayisi"`
}

type SaatlikCiro struct {
	Saat        int             `json:"saat"`
	SaatlikCiro decimal.Decimal `json:"saatlik_ciro"`
	IslemSayisi int64           `json:"islem_sayisi"`
}

type CiroRaporu struct {
	TotalRevenue       CiroOzeti       `json:"totalRevenue"`
	PaymentTypeRevenue []OdemeTipiCiro `json:"paymentTypeRevenue"`
	DailyRevenue       []GunlukCiro    `json:"dailyRevenue"`
	HourlyRevenue      []SaatlikCiro   `json:"hourlyRevenue"`
}

type CiroRaporuResponse struct {
	Success bool       `json:"success"`
	Data    CiroRaporu `json:"data"`
}

type UrunRaporSatiri struct {
	UrunAdi       string          `json:"urun_adi"`
	ToplamAdet    int64           `json:"toplam_adet"`
	ToplamTutar   decimal.Decimal `json:"toplam_tutar"`
	SiparisSayisi int64           `json:"siparis_sayisi"`
}

type KategoriRaporSatiri struct {
	KategoriAdi string          `json:"kategori_adi"`
	ToplamTutar decimal.Decimal `json:"toplam_tutar"`
	ToplamAdet  int64           `json:"toplam_adet"`
}

type SatisRaporu struct {
	TopProducts   []UrunRaporSatiri     `json:"topProducts"`
	CategorySales []KategoriRaporSatiri `json:"categorySales"`
}

type SatisRaporuResponse struct {
	Success bool        `json:"success"`
	Data    SatisRaporu `json:"data"`
}

// ─── Misc lists ─────────────────────────────────────────────────────────────

type SubeItem struct {
	ID      string  `json:"id"`
	SubeAdi string  `json:"sube_adi"`
	Adres   *string `json:"adres"`
	Telefon *string `json:"telefon"`
}

type SubeListResponse struct {
	Success bool       `json:"success"`
	Subeler []SubeItem `json:"subeler"`
}

type KullaniciListItem struct {
	ID           string `json:"id"`
	KullaniciAdi string `json:"kullanici_adi"`
	SubeAdi      string `json:"sube_adi"`
	SubeID       string `json:"sube_id"`
}

type KullaniciListResponse struct {
	Success bool                `json:"success"`
	Users   []KullaniciListItem `json:"users"`
}
