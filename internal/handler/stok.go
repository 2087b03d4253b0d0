package handler

import (
	"net/http"

	"github.com/Ovtnc/Pos-System/internal/apierror"
	"github.com/Ovtnc/Pos-System/internal/dto"
	"github.com/Ovtnc/Pos-System/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type StokHandler struct{ svc service.StokService }

func NewStokHandler(svc service.StokService) *StokHandler { return &StokHandler{svc: svc} }

func (h *StokHandler) Listele(c *gin.Context) {
	resp, err := h.svc.Listele(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Guncelle godoc
// @Summary      Stok hareketi işle
// @Description  Giriş ekler, çıkış düşer; negatif sonuç veren çıkış hiçbir değişiklik yapmadan reddedilir. Hareket kaydı aynı transaction içinde yazılır.
// @Tags         stok
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id   path string                 true "Stok kaydı UUID"
// @Param        body body dto.StokGuncelleRequest true "Hareket detayı"
// @Success      200  {object} dto.StokGuncelleResponse
// @Failure      400  {object} apierror.APIError
// @Failure      404  {object} apierror.APIError
// @Router       /stock/{id} [put]
func (h *StokHandler) Guncelle(c *gin.Context) {
	stokID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("Geçersiz stok ID"))
		return
	}
	var req dto.StokGuncelleRequest
	if !bindAndValidate(c, &req) {
		return
	}

	resp, err := h.svc.Guncelle(c.Request.Context(), stokID, req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *StokHandler) Hareketler(c *gin.Context) {
	resp, err := h.svc.Hareketler(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
