package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Ovtnc/Pos-System/internal/dto"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newValidationTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/payments", func(c *gin.Context) {
		var req dto.OdemeRequest
		if !bindAndValidate(c, &req) {
			return
		}
		c.JSON(http.StatusCreated, gin.H{"success": true})
	})
	return r
}

func postJSON(r *gin.Engine, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/payments", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

// Tag-level validation failures answer 400 with the field map, the same
// status class as every other input error.
func TestBindAndValidateTagFailuresAre400(t *testing.T) {
	r := newValidationTestRouter()

	w := postJSON(r, `{"items":[],"amount":"0","paymentMethod":"cash","userId":"not-a-uuid"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp struct {
		Success bool              `json:"success"`
		Error   string            `json:"error"`
		Fields  map[string]string `json:"fields"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	assert.Equal(t, "Doğrulama hatası", resp.Error)
	assert.Contains(t, resp.Fields, "Items")
	assert.Contains(t, resp.Fields, "UserID")
}

func TestBindAndValidateMalformedJSONIs400(t *testing.T) {
	r := newValidationTestRouter()

	w := postJSON(r, `{"items":`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp struct {
		Success bool   `json:"success"`
		Error   string `json:"error"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	assert.Contains(t, resp.Error, "Geçersiz JSON")
}
