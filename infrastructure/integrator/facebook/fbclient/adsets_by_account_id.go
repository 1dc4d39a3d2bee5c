package fbclient

import (
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/sirupsen/logrus"
	fbdomain "github.com/vfg2006/ads-console-api/infrastructure/integrator/facebook/domain"
)

type ResponseAdSets struct {
	Data   []fbdomain.AdSet `json:"data"`
	Paging fbdomain.Paging  `json:"paging"`
}

// GetAdSetsByAccountID busca todos os conjuntos de anúncios da conta em uma
// única listagem paginada; o agrupamento por campanha é feito pelo chamador.
func (c *FacebookClient) GetAdSetsByAccountID(accessToken, accountID string) ([]fbdomain.AdSet, error) {
	baseURL := fmt.Sprintf("%s/act_%s/adsets", c.Cfg.Facebook.URL, accountID)

	params := url.Values{}
	params.Add("fields", "id,name,status,effective_status,daily_budget,lifetime_budget,campaign_id")
	params.Add("limit", "200")
	params.Add("access_token", accessToken)

	adsets := make([]fbdomain.AdSet, 0)

	for {
		body, err := c.get(baseURL + "?" + params.Encode())
		if err != nil {
			return nil, err
		}

		var response ResponseAdSets
		if err := json.Unmarshal(body, &response); err != nil {
			logrus.WithError(err).Error("Erro ao decodificar JSON")
			return nil, err
		}

		adsets = append(adsets, response.Data...)

		if response.Paging.Next == "" || response.Paging.Cursors.After == "" {
			break
		}
		params.Set("after", response.Paging.Cursors.After)
	}

	return adsets, nil
}
