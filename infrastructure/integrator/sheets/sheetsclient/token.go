package sheetsclient

import (
	"encoding/json"
	"net/http"
	"net/url"
	"strings"

	"github.com/sirupsen/logrus"
)

// TokenResponse é a resposta do endpoint OAuth de renovação. O Google pode
// rotacionar o refresh token; quando RefreshToken vem vazio, o anterior
// continua válido.
type TokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int    `json:"expires_in"`
	TokenType    string `json:"token_type"`
	Scope        string `json:"scope"`
}

// RefreshAccessToken troca o refresh token por um novo access token usando o
// fluxo padrão do OAuth 2.0 (grant_type=refresh_token).
func (c *SheetsClient) RefreshAccessToken(refreshToken string) (*TokenResponse, error) {
	form := url.Values{}
	form.Add("client_id", c.Cfg.Google.ClientID)
	form.Add("client_secret", c.Cfg.Google.ClientSecret)
	form.Add("refresh_token", refreshToken)
	form.Add("grant_type", "refresh_token")

	req, err := http.NewRequest(http.MethodPost, c.Cfg.Google.TokenURL, strings.NewReader(form.Encode()))
	if err != nil {
		logrus.WithError(err).Error("Erro ao criar a requisição")
		return nil, err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		logrus.WithError(err).Error("Erro ao fazer a requisição")
		return nil, err
	}
	defer resp.Body.Close()

	body, err := c.handleResponse(resp)
	if err != nil {
		return nil, err
	}

	var token TokenResponse
	if err := json.Unmarshal(body, &token); err != nil {
		logrus.WithError(err).Error("Erro ao decodificar JSON")
		return nil, err
	}

	return &token, nil
}
