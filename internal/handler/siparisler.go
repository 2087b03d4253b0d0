package handler

import (
	"net/http"

	"github.com/Ovtnc/Pos-System/internal/apierror"
	"github.com/Ovtnc/Pos-System/internal/dto"
	"github.com/Ovtnc/Pos-System/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type SiparislerHandler struct{ svc service.SiparisService }

func NewSiparislerHandler(svc service.SiparisService) *SiparislerHandler {
	return &SiparislerHandler{svc: svc}
}

// Olustur godoc
// @Summary      Masaya sipariş ekle
// @Description  Bekleyen sipariş oluşturur; toplam sunucuda hesaplanır ve masa toplamına aynı transaction içinde eklenir.
// @Tags         siparisler
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body dto.SiparisRequest true "Sipariş detayı"
// @Success      201  {object} dto.SiparisResponse
// @Failure      400  {object} apierror.APIError
// @Failure      404  {object} apierror.APIError
// @Router       /orders [post]
func (h *SiparislerHandler) Olustur(c *gin.Context) {
	var req dto.SiparisRequest
	if !bindAndValidate(c, &req) {
		return
	}

	resp, err := h.svc.Olustur(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// MasaSiparisleri returns a table's pending orders with their lines.
func (h *SiparislerHandler) MasaSiparisleri(c *gin.Context) {
	masaID, err := uuid.Parse(c.Param("tableId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("Geçersiz masa ID"))
		return
	}

	resp, err := h.svc.MasaSiparisleri(c.Request.Context(), masaID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// DurumGuncelle updates an order's status.
func (h *SiparislerHandler) DurumGuncelle(c *gin.Context) {
	siparisID, err := uuid.Parse(c.Param("orderId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("Geçersiz sipariş ID"))
		return
	}
	var req dto.SiparisDurumRequest
	if !bindAndValidate(c, &req) {
		return
	}

	if err := h.svc.DurumGuncelle(c.Request.Context(), siparisID, req.Status); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Sipariş durumu güncellendi"})
}
