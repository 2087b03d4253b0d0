package dto

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// KullaniciResponse mirrors the profile shape the POS client stores after login.
type KullaniciResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Name     string `json:"name"`
	Role     string `json:"role"`
	SubeID   string `json:"sube_id"`
	Sube     string `json:"sube"`
}

type LoginResponse struct {
	Success     bool              `json:"success"`
	User        KullaniciResponse `json:"user"`
	AccessToken string            `json:"accessToken"`
	TokenType   string            `json:"tokenType"`
	ExpiresIn   int               `json:"expiresIn"`
}
