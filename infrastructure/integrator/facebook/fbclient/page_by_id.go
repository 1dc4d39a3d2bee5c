package fbclient

import (
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/sirupsen/logrus"
	fbdomain "github.com/vfg2006/ads-console-api/infrastructure/integrator/facebook/domain"
)

// GetPageByID resolve o nome de uma página promovida. Usado com cache por
// execução: contas costumam anunciar poucas páginas distintas.
func (c *FacebookClient) GetPageByID(accessToken, pageID string) (*fbdomain.Page, error) {
	baseURL := fmt.Sprintf("%s/%s", c.Cfg.Facebook.URL, pageID)

	params := url.Values{}
	params.Add("fields", "id,name")
	params.Add("access_token", accessToken)

	body, err := c.get(baseURL + "?" + params.Encode())
	if err != nil {
		return nil, err
	}

	var page fbdomain.Page
	if err := json.Unmarshal(body, &page); err != nil {
		logrus.WithError(err).Error("Erro ao decodificar JSON")
		return nil, err
	}

	return &page, nil
}
