//go:build integration

package e2e

// End-to-end tests against real Postgres + Redis via testcontainers.
// Run with: go test -tags integration ./tests/e2e/... -v

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Ovtnc/Pos-System/internal/config"
	"github.com/Ovtnc/Pos-System/internal/infra"
	"github.com/Ovtnc/Pos-System/internal/model"
	"github.com/Ovtnc/Pos-System/internal/router"
	"github.com/Ovtnc/Pos-System/internal/worker"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcPostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	tcRedis "github.com/testcontainers/testcontainers-go/modules/redis"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// ── Helpers ──────────────────────────────────────────────────────────────────

func jsonBody(t *testing.T, v any) *bytes.Buffer {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return bytes.NewBuffer(b)
}

func do(t *testing.T, srv *httptest.Server, method, path string, body *bytes.Buffer, token string) *http.Response {
	t.Helper()
	var req *http.Request
	var err error
	if body != nil {
		req, err = http.NewRequest(method, srv.URL+path, body)
	} else {
		req, err = http.NewRequest(method, srv.URL+path, nil)
	}
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := srv.Client().Do(req)
	require.NoError(t, err)
	return resp
}

func decodeJSON(t *testing.T, resp *http.Response, dest any) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(dest))
}

// ── Test Suite Setup ─────────────────────────────────────────────────────────

type testEnv struct {
	server *httptest.Server
	db     *gorm.DB
	token  string
	userID string
}

func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()
	ctx := context.Background()

	pgC, err := tcPostgres.RunContainer(ctx,
		testcontainers.WithImage("postgres:15-alpine"),
		tcPostgres.WithDatabase("kafepos_test"),
		tcPostgres.WithUsername("kafepos"),
		tcPostgres.WithPassword("kafepos"),
		testcontainers.WithWaitStrategy(
			tcPostgres.BasicWaitStrategies()...,
		),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = pgC.Terminate(ctx) })

	pgURL, err := pgC.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	rdC, err := tcRedis.RunContainer(ctx,
		testcontainers.WithImage("redis:7-alpine"),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = rdC.Terminate(ctx) })

	rdURL, err := rdC.ConnectionString(ctx)
	require.NoError(t, err)

	cfg := &config.Config{
		Port:               5001,
		Env:                "test",
		JWTSecret:          "test-secret-key",
		JWTExpirationHours: 8,
		WorkerPoolSize:     1,
		DatabaseURL:        pgURL,
		RedisURL:           rdURL,
		PDFStoragePath:     t.TempDir(),
	}

	db, err := infra.NewDatabase(cfg.DatabaseURL)
	require.NoError(t, err)

	rdb, err := infra.NewRedis(cfg.RedisURL)
	require.NoError(t, err)

	// Seed branch + cashier
	sube := model.Sube{SubeAdi: "Merkez"}
	require.NoError(t, db.Create(&sube).Error)

	hash, err := bcrypt.GenerateFromPassword([]byte("kafepos2026"), bcrypt.MinCost)
	require.NoError(t, err)
	user := model.Kullanici{
		KullaniciAdi: "kasiyer.e2e",
		SifreHash:    string(hash),
		Rol:          "kasiyer",
		SubeID:       sube.ID,
		Aktif:        true,
	}
	require.NoError(t, db.Create(&user).Error)

	dispatcher := worker.NewDispatcher(rdb)
	r := router.New(cfg, db, rdb, dispatcher)
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)

	loginResp := do(t, srv, "POST", "/api/auth/login",
		jsonBody(t, map[string]string{"username": "kasiyer.e2e", "password": "kafepos2026"}),
		"",
	)
	require.Equal(t, http.StatusOK, loginResp.StatusCode)
	var loginBody struct {
		AccessToken string `json:"accessToken"`
	}
	decodeJSON(t, loginResp, &loginBody)
	require.NotEmpty(t, loginBody.AccessToken)

	return &testEnv{
		server: srv,
		db:     db,
		token:  loginBody.AccessToken,
		userID: user.ID.String(),
	}
}

// ── Tests ────────────────────────────────────────────────────────────────────

// Table lifecycle: open → order accrues → settlement closes with the full total.
func TestE2E_TableLifecycle(t *testing.T) {
	env := setupTestEnv(t)
	urunID := uuid.NewString()

	openResp := do(t, env.server, "POST", "/api/tables/open",
		jsonBody(t, map[string]any{"tableName": "Bahçe 1", "userId": env.userID}),
		env.token)
	require.Equal(t, http.StatusCreated, openResp.StatusCode)
	var opened struct {
		TableID string `json:"tableId"`
	}
	decodeJSON(t, openResp, &opened)
	require.NotEmpty(t, opened.TableID)

	orderResp := do(t, env.server, "POST", "/api/orders",
		jsonBody(t, map[string]any{
			"items": []map[string]any{
				{"id": urunID, "name": "Çay", "price": "25", "quantity": 1},
			},
			"tableId": opened.TableID,
			"userId":  env.userID,
		}),
		env.token)
	require.Equal(t, http.StatusCreated, orderResp.StatusCode)
	var order struct {
		OrderNumber string `json:"orderNumber"`
		TotalAmount string `json:"totalAmount"`
	}
	decodeJSON(t, orderResp, &order)
	assert.Equal(t, "SP000001", order.OrderNumber)

	payResp := do(t, env.server, "POST", "/api/payments",
		jsonBody(t, map[string]any{
			"items": []map[string]any{
				{"id": urunID, "name": "Kek", "price": "35", "quantity": 1},
			},
			"amount":        "35",
			"tableId":       opened.TableID,
			"paymentMethod": "cash",
			"userId":        env.userID,
		}),
		env.token)
	require.Equal(t, http.StatusCreated, payResp.StatusCode)

	detailResp := do(t, env.server, "GET", "/api/tables/"+opened.TableID, nil, env.token)
	require.Equal(t, http.StatusOK, detailResp.StatusCode)
	var detail struct {
		Table struct {
			Durum       string `json:"durum"`
			ToplamTutar string `json:"toplam_tutar"`
		} `json:"table"`
	}
	decodeJSON(t, detailResp, &detail)
	assert.Equal(t, "kapali", detail.Table.Durum)
	toplam, err := decimal.NewFromString(detail.Table.ToplamTutar)
	require.NoError(t, err)
	assert.True(t, toplam.Equal(decimal.NewFromInt(60)), "expected 25 + 35 = 60, got %s", toplam)
}

// Checkout without a table still creates a linked order + payment.
func TestE2E_SelfCheckout(t *testing.T) {
	env := setupTestEnv(t)

	payResp := do(t, env.server, "POST", "/api/payments",
		jsonBody(t, map[string]any{
			"items": []map[string]any{
				{"id": uuid.NewString(), "name": "Filtre Kahve", "price": "80", "quantity": 2},
			},
			"amount":        "160",
			"paymentMethod": "card",
			"userId":        env.userID,
		}),
		env.token)
	require.Equal(t, http.StatusCreated, payResp.StatusCode)
	var pay struct {
		Success   bool   `json:"success"`
		PaymentID string `json:"paymentId"`
		OrderID   string `json:"orderId"`
	}
	decodeJSON(t, payResp, &pay)
	assert.True(t, pay.Success)
	require.NotEmpty(t, pay.PaymentID)
	require.NotEmpty(t, pay.OrderID)

	listResp := do(t, env.server, "GET", "/api/payments?limit=5", nil, env.token)
	require.Equal(t, http.StatusOK, listResp.StatusCode)
	var list struct {
		Payments []struct {
			SiparisID string `json:"siparis_id"`
			OdemeTipi string `json:"odeme_tipi"`
		} `json:"payments"`
	}
	decodeJSON(t, listResp, &list)
	require.Len(t, list.Payments, 1)
	assert.Equal(t, pay.OrderID, list.Payments[0].SiparisID)
	assert.Equal(t, "kart", list.Payments[0].OdemeTipi)
}

// Stock movements: giriş adds, çıkış subtracts, a çıkış below zero is rejected
// without touching the snapshot or the ledger.
func TestE2E_StockMovements(t *testing.T) {
	env := setupTestEnv(t)

	stok := model.Stok{UrunAdi: "Süt", MevcutStok: 10, MinimumStok: 2, Birim: "litre"}
	require.NoError(t, env.db.Create(&stok).Error)

	upResp := do(t, env.server, "PUT", "/api/stock/"+stok.ID.String(),
		jsonBody(t, map[string]any{"miktar": 5, "hareket_tipi": "giris", "aciklama": "teslimat"}),
		env.token)
	require.Equal(t, http.StatusOK, upResp.StatusCode)
	var up struct {
		YeniStok int `json:"yeni_stok"`
	}
	decodeJSON(t, upResp, &up)
	assert.Equal(t, 15, up.YeniStok)

	downResp := do(t, env.server, "PUT", "/api/stock/"+stok.ID.String(),
		jsonBody(t, map[string]any{"miktar": 20, "hareket_tipi": "cikis"}),
		env.token)
	assert.Equal(t, http.StatusBadRequest, downResp.StatusCode)
	downResp.Body.Close()

	var current model.Stok
	require.NoError(t, env.db.First(&current, "id = ?", stok.ID).Error)
	assert.Equal(t, 15, current.MevcutStok)

	movResp := do(t, env.server, "GET", "/api/stock/movements", nil, env.token)
	require.Equal(t, http.StatusOK, movResp.StatusCode)
	var mov struct {
		Total int `json:"total"`
	}
	decodeJSON(t, movResp, &mov)
	assert.Equal(t, 1, mov.Total, "the rejected çıkış must not appear in the ledger")
}

// Requests without a token are rejected before reaching any handler.
func TestE2E_AuthRequired(t *testing.T) {
	env := setupTestEnv(t)

	resp := do(t, env.server, "GET", "/api/tables", nil, "")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	resp.Body.Close()

	resp = do(t, env.server, "GET", "/api/health", nil, "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()
}
