package sheets

import (
	"fmt"
	"time"

	"github.com/vfg2006/ads-console-api/infrastructure/integrator/sheets/sheetsclient"
)

// RefreshedToken é o resultado de uma renovação de credencial do Google,
// pronto para ser persistido na credencial do usuário.
type RefreshedToken struct {
	AccessToken  string
	RefreshToken string
	ExpiresAt    time.Time
}

// Integrator expõe as operações do Google usadas pelo pipeline de
// exportação: renovar a credencial e anexar linhas na planilha.
type Integrator interface {
	RefreshAccessToken(refreshToken string) (*RefreshedToken, error)
	AppendValues(accessToken, spreadsheetID, sheetName string, values [][]string) error
}

type SheetsIntegrator struct {
	client sheetsclient.Client
}

func NewIntegrator(client sheetsclient.Client) Integrator {
	return &SheetsIntegrator{client: client}
}

// RefreshAccessToken renova o access token e calcula o instante de expiração.
// Quando o Google não rotaciona o refresh token, o anterior é mantido.
func (i *SheetsIntegrator) RefreshAccessToken(refreshToken string) (*RefreshedToken, error) {
	token, err := i.client.RefreshAccessToken(refreshToken)
	if err != nil {
		return nil, err
	}

	if token.AccessToken == "" {
		return nil, fmt.Errorf("renovação de credencial retornou access token vazio")
	}

	refreshed := &RefreshedToken{
		AccessToken:  token.AccessToken,
		RefreshToken: token.RefreshToken,
		ExpiresAt:    time.Now().Add(time.Duration(token.ExpiresIn) * time.Second),
	}
	if refreshed.RefreshToken == "" {
		refreshed.RefreshToken = refreshToken
	}

	return refreshed, nil
}

func (i *SheetsIntegrator) AppendValues(accessToken, spreadsheetID, sheetName string, values [][]string) error {
	return i.client.AppendValues(accessToken, spreadsheetID, sheetName, values)
}
