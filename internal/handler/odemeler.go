package handler

import (
	"net/http"
	"strconv"

	"github.com/Ovtnc/Pos-System/internal/apierror"
	"github.com/Ovtnc/Pos-System/internal/dto"
	"github.com/Ovtnc/Pos-System/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type OdemelerHandler struct{ svc service.OdemeService }

func NewOdemelerHandler(svc service.OdemeService) *OdemelerHandler {
	return &OdemelerHandler{svc: svc}
}

// Kaydet godoc
// @Summary      Ödeme kaydet (checkout)
// @Description  Sepeti tamamlanmış siparişe çevirir, ödemeyi kaydeder; masa verildiyse masayı aynı transaction içinde kapatır.
// @Tags         odemeler
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body dto.OdemeRequest true "Ödeme detayı"
// @Success      201  {object} dto.OdemeResponse
// @Failure      400  {object} apierror.APIError
// @Failure      404  {object} apierror.APIError
// @Router       /payments [post]
func (h *OdemelerHandler) Kaydet(c *gin.Context) {
	var req dto.OdemeRequest
	if !bindAndValidate(c, &req) {
		return
	}

	resp, err := h.svc.Kaydet(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// Listele returns the most recent payments, optionally branch-scoped via
// the userId query parameter.
func (h *OdemelerHandler) Listele(c *gin.Context) {
	var userID *uuid.UUID
	if raw := c.Query("userId"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, apierror.New("Geçersiz userId"))
			return
		}
		userID = &id
	}

	limit, err := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if err != nil || limit <= 0 {
		limit = 10
	}

	resp, err := h.svc.Listele(c.Request.Context(), userID, limit)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// MasaOdemesiGuncelle rewrites a closed table's latest payment.
func (h *OdemelerHandler) MasaOdemesiGuncelle(c *gin.Context) {
	masaID, err := uuid.Parse(c.Param("tableId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("Geçersiz masa ID"))
		return
	}
	var req dto.OdemeGuncelleRequest
	if !bindAndValidate(c, &req) {
		return
	}

	resp, err := h.svc.MasaOdemesiGuncelle(c.Request.Context(), masaID, req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
