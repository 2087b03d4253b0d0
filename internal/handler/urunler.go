package handler

import (
	"net/http"

	"github.com/Ovtnc/Pos-System/internal/apierror"
	"github.com/Ovtnc/Pos-System/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type UrunlerHandler struct{ svc service.UrunService }

func NewUrunlerHandler(svc service.UrunService) *UrunlerHandler {
	return &UrunlerHandler{svc: svc}
}

func (h *UrunlerHandler) Listele(c *gin.Context) {
	resp, err := h.svc.Urunler(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// KategoriUrunleri lists one category's products. The quick-actions category
// returns the caller's favorites; userId comes from the query string.
func (h *UrunlerHandler) KategoriUrunleri(c *gin.Context) {
	kategoriID, err := uuid.Parse(c.Param("categoryId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("Geçersiz kategori ID"))
		return
	}
	userID, ok := optionalUserID(c)
	if !ok {
		return
	}

	resp, err := h.svc.KategoriUrunleri(c.Request.Context(), kategoriID, userID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *UrunlerHandler) Kategoriler(c *gin.Context) {
	resp, err := h.svc.Kategoriler(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
