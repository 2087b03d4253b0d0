package handler

import (
	"net/http"

	"github.com/Ovtnc/Pos-System/internal/apierror"
	"github.com/Ovtnc/Pos-System/internal/dto"
	"github.com/Ovtnc/Pos-System/internal/service"

	"github.com/gin-gonic/gin"
)

type RaporlarHandler struct {
	svc     service.RaporService
	subeSvc service.SubeService
}

func NewRaporlarHandler(svc service.RaporService, subeSvc service.SubeService) *RaporlarHandler {
	return &RaporlarHandler{svc: svc, subeSvc: subeSvc}
}

// Dashboard godoc
// @Summary      Satış özeti panosu
// @Description  Günlük/haftalık/aylık/yıllık satışlar, ödeme tipi dağılımı, son satışlar ve seriler.
// @Tags         raporlar
// @Produce      json
// @Security     BearerAuth
// @Param        subeId query string false "Şube UUID"
// @Param        userId query string false "Kullanıcı UUID (şube çözümü için)"
// @Success      200 {object} dto.DashboardResponse
// @Failure      400 {object} apierror.APIError
// @Router       /dashboard [get]
func (h *RaporlarHandler) Dashboard(c *gin.Context) {
	var filter dto.DashboardFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}

	resp, err := h.svc.Dashboard(c.Request.Context(), filter)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *RaporlarHandler) CiroRaporu(c *gin.Context) {
	filter, ok := bindRaporFilter(c)
	if !ok {
		return
	}

	resp, err := h.svc.CiroRaporu(c.Request.Context(), filter)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *RaporlarHandler) SatisRaporu(c *gin.Context) {
	filter, ok := bindRaporFilter(c)
	if !ok {
		return
	}

	resp, err := h.svc.SatisRaporu(c.Request.Context(), filter)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *RaporlarHandler) Subeler(c *gin.Context) {
	resp, err := h.subeSvc.Listele(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func bindRaporFilter(c *gin.Context) (dto.RaporFilter, bool) {
	var filter dto.RaporFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return filter, false
	}
	if err := validate.Struct(filter); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("startDate ve endDate zorunludur"))
		return filter, false
	}
	return filter, true
}
