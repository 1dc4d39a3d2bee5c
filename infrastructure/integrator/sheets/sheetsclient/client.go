package sheetsclient

import (
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/vfg2006/ads-console-api/internal/config"
)

type Client interface {
	RefreshAccessToken(refreshToken string) (*TokenResponse, error)
	AppendValues(accessToken, spreadsheetID, sheetName string, values [][]string) error
}

// SheetsClient consome as APIs do Google (OAuth e Sheets) com os tokens do
// usuário dono do job, passados a cada chamada.
type SheetsClient struct {
	Cfg        *config.Config
	httpClient *http.Client
}

func NewClient(cfg *config.Config) Client {
	return &SheetsClient{
		Cfg: cfg,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// handleResponse lê o corpo e valida o status HTTP da resposta.
func (c *SheetsClient) handleResponse(resp *http.Response) ([]byte, error) {
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("erro ao ler resposta: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("erro na resposta da API do Google. Status: %d, Corpo: %s", resp.StatusCode, string(body))
	}

	return body, nil
}
