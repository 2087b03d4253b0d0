package handler

import (
	"net/http"

	"github.com/Ovtnc/Pos-System/internal/dto"
	"github.com/Ovtnc/Pos-System/internal/service"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct{ svc service.AuthService }

func NewAuthHandler(svc service.AuthService) *AuthHandler { return &AuthHandler{svc: svc} }

// Login godoc
// @Summary      Kullanıcı girişi
// @Description  Kullanıcı adı ve şifre ile giriş yapar, JWT erişim tokeni döner.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body body dto.LoginRequest true "Giriş bilgileri"
// @Success      200  {object} dto.LoginResponse
// @Failure      401  {object} apierror.APIError
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if !bindAndValidate(c, &req) {
		return
	}

	resp, err := h.svc.Login(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Kullanicilar godoc
// @Summary      Kullanıcıları listele
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} dto.KullaniciListResponse
// @Router       /users [get]
func (h *AuthHandler) Kullanicilar(c *gin.Context) {
	resp, err := h.svc.Kullanicilar(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
