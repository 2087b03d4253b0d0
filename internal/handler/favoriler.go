package handler

import (
	"net/http"

	"github.com/Ovtnc/Pos-System/internal/apierror"
	"github.com/Ovtnc/Pos-System/internal/dto"
	"github.com/Ovtnc/Pos-System/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type FavorilerHandler struct{ svc service.FavoriService }

func NewFavorilerHandler(svc service.FavoriService) *FavorilerHandler {
	return &FavorilerHandler{svc: svc}
}

func (h *FavorilerHandler) Listele(c *gin.Context) {
	userID, err := uuid.Parse(c.Param("userId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("Geçersiz userId"))
		return
	}

	resp, err := h.svc.Listele(c.Request.Context(), userID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *FavorilerHandler) Ekle(c *gin.Context) {
	var req dto.FavoriRequest
	if !bindAndValidate(c, &req) {
		return
	}

	if err := h.svc.Ekle(c.Request.Context(), req); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "message": "Favorilere eklendi"})
}

func (h *FavorilerHandler) Sil(c *gin.Context) {
	var req dto.FavoriRequest
	if !bindAndValidate(c, &req) {
		return
	}

	if err := h.svc.Sil(c.Request.Context(), req); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Favorilerden çıkarıldı"})
}
