package handler

import (
	"net/http"

	"github.com/Ovtnc/Pos-System/internal/apierror"
	"github.com/Ovtnc/Pos-System/internal/dto"
	"github.com/Ovtnc/Pos-System/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type MasalarHandler struct{ svc service.MasaService }

func NewMasalarHandler(svc service.MasaService) *MasalarHandler {
	return &MasalarHandler{svc: svc}
}

// Ac godoc
// @Summary      Masa aç
// @Description  Açan kullanıcının şubesinde sıfır toplamla yeni masa açar.
// @Tags         masalar
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body dto.MasaAcRequest true "Masa bilgisi"
// @Success      201  {object} dto.MasaAcResponse
// @Failure      404  {object} apierror.APIError
// @Router       /tables/open [post]
func (h *MasalarHandler) Ac(c *gin.Context) {
	var req dto.MasaAcRequest
	if !bindAndValidate(c, &req) {
		return
	}

	resp, err := h.svc.Ac(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *MasalarHandler) Rezerve(c *gin.Context) {
	var req dto.MasaIslemRequest
	if !bindAndValidate(c, &req) {
		return
	}
	masaID, err := uuid.Parse(req.TableID)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("Geçersiz masa ID"))
		return
	}

	resp, err := h.svc.Rezerve(c.Request.Context(), masaID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *MasalarHandler) Kapat(c *gin.Context) {
	var req dto.MasaIslemRequest
	if !bindAndValidate(c, &req) {
		return
	}
	masaID, err := uuid.Parse(req.TableID)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("Geçersiz masa ID"))
		return
	}

	resp, err := h.svc.Kapat(c.Request.Context(), masaID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Aktifler lists open and reserved tables; userId scopes to that user's branch.
func (h *MasalarHandler) Aktifler(c *gin.Context) {
	userID, ok := optionalUserID(c)
	if !ok {
		return
	}

	resp, err := h.svc.Aktifler(c.Request.Context(), userID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *MasalarHandler) Tumu(c *gin.Context) {
	resp, err := h.svc.Tumu(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Kapananlar lists settled payments as closed tables. Query: date
// (YYYY-MM-DD, default today), userId (branch scope).
func (h *MasalarHandler) Kapananlar(c *gin.Context) {
	userID, ok := optionalUserID(c)
	if !ok {
		return
	}

	resp, err := h.svc.Kapananlar(c.Request.Context(), c.Query("date"), userID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *MasalarHandler) Detay(c *gin.Context) {
	masaID, err := uuid.Parse(c.Param("tableId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("Geçersiz masa ID"))
		return
	}

	resp, err := h.svc.Detay(c.Request.Context(), masaID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// optionalUserID parses the userId query parameter when present. Returns
// ok=false after writing the 400 response.
func optionalUserID(c *gin.Context) (*uuid.UUID, bool) {
	raw := c.Query("userId")
	if raw == "" {
		return nil, true
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("Geçersiz userId"))
		return nil, false
	}
	return &id, true
}
