package fbclient

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
	fbdomain "github.com/vfg2006/ads-console-api/infrastructure/integrator/facebook/domain"
	"github.com/vfg2006/ads-console-api/internal/config"
)

// ErrTokenExpired indica que o token de acesso do usuário expirou na
// plataforma. A renovação é responsabilidade do fluxo OAuth do console; aqui
// o erro apenas propaga para o job registrar a falha.
var ErrTokenExpired = errors.New("token de acesso da plataforma de anúncios expirado")

type Client interface {
	GetAdAccountByID(accessToken, accountID string) (*fbdomain.AdAccount, error)
	GetCampaignsByAccountID(accessToken, accountID string) ([]fbdomain.Campaign, error)
	GetAdSetsByAccountID(accessToken, accountID string) ([]fbdomain.AdSet, error)
	GetAdsByAccountID(accessToken, accountID string) ([]fbdomain.Ad, error)
	GetInsightsByAccountID(accessToken, accountID, level string, since, until time.Time) ([]fbdomain.Insight, error)
	GetPageByID(accessToken, pageID string) (*fbdomain.Page, error)
}

// FacebookClient consome a Graph API com o token de acesso do usuário dono
// do job, passado a cada chamada. Nenhum token é mantido como estado do
// processo.
type FacebookClient struct {
	Cfg        *config.Config
	httpClient *http.Client
}

func NewClient(cfg *config.Config) Client {
	return &FacebookClient{
		Cfg: cfg,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// get executa a requisição e devolve o corpo já validado.
func (c *FacebookClient) get(url string) ([]byte, error) {
	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		logrus.WithError(err).Error("Erro ao criar a requisição")
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		logrus.WithError(err).Error("Erro ao fazer a requisição")
		return nil, err
	}
	defer resp.Body.Close()

	return c.HandleResponse(resp)
}

// HandleResponse manipula a resposta HTTP e traduz o envelope de erro da
// Graph API, detectando token expirado.
func (c *FacebookClient) HandleResponse(resp *http.Response) ([]byte, error) {
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("erro ao ler resposta: %w", err)
	}

	if resp.StatusCode == http.StatusOK {
		return body, nil
	}

	var errorResp fbdomain.ErrorResponse
	if parseErr := json.Unmarshal(body, &errorResp); parseErr == nil && errorResp.Error.Code != 0 {
		if errorResp.IsTokenExpired() {
			logrus.Warnf("Token expirado detectado pela Graph API. Código: %d, Subcódigo: %d",
				errorResp.Error.Code, errorResp.Error.ErrorSubcode)
			return nil, fmt.Errorf("%w: %s", ErrTokenExpired, errorResp.Error.Message)
		}

		return nil, fmt.Errorf("erro da Graph API (código %d, tipo %s): %s",
			errorResp.Error.Code, errorResp.Error.Type, errorResp.Error.Message)
	}

	return nil, fmt.Errorf("erro na resposta da API. Status: %d, Corpo: %s", resp.StatusCode, string(body))
}
