package domain

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims são as credenciais extraídas do token JWT emitido pelo console.
// Este serviço apenas valida o token; emissão e sessão ficam no console.
type Claims struct {
	UserID     string `json:"user_id"`
	UserRoleID int    `json:"user_role_id"`
	jwt.RegisteredClaims
}

// UserCredential agrega as credenciais externas vinculadas a um usuário do
// console: o token da plataforma de anúncios e os tokens OAuth do serviço de
// planilhas.
type UserCredential struct {
	UserID               string     `json:"user_id"`
	FacebookToken        *string    `json:"facebook_token"`
	GoogleAccessToken    *string    `json:"google_access_token"`
	GoogleRefreshToken   *string    `json:"google_refresh_token"`
	GoogleTokenExpiresAt *time.Time `json:"google_token_expires_at"`
}

// HasGoogleAccount indica se o usuário possui conta Google vinculada.
func (c *UserCredential) HasGoogleAccount() bool {
	return c != nil && (c.GoogleAccessToken != nil || c.GoogleRefreshToken != nil)
}

// HasRefreshToken indica se há refresh token disponível para renovação.
func (c *UserCredential) HasRefreshToken() bool {
	return c != nil && c.GoogleRefreshToken != nil && *c.GoogleRefreshToken != ""
}

// HasFacebookToken indica se há token da plataforma de anúncios.
func (c *UserCredential) HasFacebookToken() bool {
	return c != nil && c.FacebookToken != nil && *c.FacebookToken != ""
}
