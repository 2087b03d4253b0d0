package router

import (
	"time"

	"github.com/Ovtnc/Pos-System/internal/config"
	"github.com/Ovtnc/Pos-System/internal/handler"
	"github.com/Ovtnc/Pos-System/internal/middleware"
	"github.com/Ovtnc/Pos-System/internal/repository"
	"github.com/Ovtnc/Pos-System/internal/service"
	"github.com/Ovtnc/Pos-System/internal/worker"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← DB/Redis
func New(cfg *config.Config, db *gorm.DB, rdb *redis.Client, dispatcher *worker.Dispatcher) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimiter(1000, time.Minute)) // 1000 req/min per IP
	r.Use(middleware.Metrics())

	// ── Repositories ─────────────────────────────────────────────────────────
	kullaniciRepo := repository.NewKullaniciRepository(db)
	subeRepo := repository.NewSubeRepository(db)
	masaRepo := repository.NewMasaRepository(db)
	siparisRepo := repository.NewSiparisRepository(db)
	odemeRepo := repository.NewOdemeRepository(db)
	urunRepo := repository.NewUrunRepository(db)
	favoriRepo := repository.NewFavoriRepository(db)
	stokRepo := repository.NewStokRepository(db)
	raporRepo := repository.NewRaporRepository(db)

	// ── Services ─────────────────────────────────────────────────────────────
	authSvc := service.NewAuthService(kullaniciRepo, cfg)
	odemeSvc := service.NewOdemeService(odemeRepo, siparisRepo, masaRepo, kullaniciRepo, dispatcher)
	siparisSvc := service.NewSiparisService(siparisRepo, masaRepo, kullaniciRepo)
	masaSvc := service.NewMasaService(masaRepo, odemeRepo, kullaniciRepo)
	stokSvc := service.NewStokService(stokRepo, dispatcher)
	urunSvc := service.NewUrunService(urunRepo, favoriRepo, rdb)
	favoriSvc := service.NewFavoriService(favoriRepo, kullaniciRepo)
	raporSvc := service.NewRaporService(raporRepo, kullaniciRepo)
	subeSvc := service.NewSubeService(subeRepo)

	// ── Handlers ─────────────────────────────────────────────────────────────
	authH := handler.NewAuthHandler(authSvc)
	odemelerH := handler.NewOdemelerHandler(odemeSvc)
	siparislerH := handler.NewSiparislerHandler(siparisSvc)
	masalarH := handler.NewMasalarHandler(masaSvc)
	stokH := handler.NewStokHandler(stokSvc)
	urunlerH := handler.NewUrunlerHandler(urunSvc)
	favorilerH := handler.NewFavorilerHandler(favoriSvc)
	raporlarH := handler.NewRaporlarHandler(raporSvc, subeSvc)

	// ── Routes ───────────────────────────────────────────────────────────────

	// Public
	r.GET("/api/health", handler.Health)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	r.POST("/api/auth/login", middleware.LoginRateLimiter(), authH.Login)

	// Protected routes
	api := r.Group("/api", middleware.JWTAuth(cfg.JWTSecret))
	{
		api.POST("/payments", odemelerH.Kaydet)
		api.GET("/payments", odemelerH.Listele)

		api.POST("/orders", siparislerH.Olustur)
		api.GET("/orders/table/:tableId", siparislerH.MasaSiparisleri)
		api.PUT("/orders/:orderId/status", siparislerH.DurumGuncelle)

		api.POST("/tables/open", masalarH.Ac)
		api.POST("/tables/reserve", masalarH.Rezerve)
		api.POST("/tables/close", masalarH.Kapat)
		api.GET("/tables", masalarH.Aktifler)
		api.GET("/tables/all", masalarH.Tumu)
		api.GET("/tables/closed", masalarH.Kapananlar)
		api.GET("/tables/:tableId", masalarH.Detay)
		api.PUT("/tables/:tableId/payment", odemelerH.MasaOdemesiGuncelle)

		api.GET("/stock", stokH.Listele)
		api.GET("/stock/movements", stokH.Hareketler)
		api.PUT("/stock/:id", stokH.Guncelle)

		api.GET("/products", urunlerH.Listele)
		api.GET("/products/category/:categoryId", urunlerH.KategoriUrunleri)
		api.GET("/categories", urunlerH.Kategoriler)

		api.GET("/favorites/:userId", favorilerH.Listele)
		api.POST("/favorites/add", favorilerH.Ekle)
		api.DELETE("/favorites/remove", favorilerH.Sil)

		api.GET("/dashboard", raporlarH.Dashboard)
		api.GET("/reports/revenue", raporlarH.CiroRaporu)
		api.GET("/reports/sales", raporlarH.SatisRaporu)
		api.GET("/subeler", raporlarH.Subeler)
		api.GET("/users", authH.Kullanicilar)
	}

	// Swagger UI — only enabled outside production
	if cfg.Env != "production" {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	return r
}
