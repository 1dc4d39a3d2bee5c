package fbclient

import (
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/sirupsen/logrus"
	fbdomain "github.com/vfg2006/ads-console-api/infrastructure/integrator/facebook/domain"
)

type ResponseCampaigns struct {
	Data   []fbdomain.Campaign `json:"data"`
	Paging fbdomain.Paging     `json:"paging"`
}

// GetCampaignsByAccountID busca todas as campanhas da conta, percorrendo a
// paginação por cursor até o fim.
func (c *FacebookClient) GetCampaignsByAccountID(accessToken, accountID string) ([]fbdomain.Campaign, error) {
	baseURL := fmt.Sprintf("%s/act_%s/campaigns", c.Cfg.Facebook.URL, accountID)

	params := url.Values{}
	params.Add("fields", "id,name,status,effective_status,objective,daily_budget,lifetime_budget")
	params.Add("limit", "200")
	params.Add("access_token", accessToken)

	campaigns := make([]fbdomain.Campaign, 0)

	for {
		body, err := c.get(baseURL + "?" + params.Encode())
		if err != nil {
			return nil, err
		}

		var response ResponseCampaigns
		if err := json.Unmarshal(body, &response); err != nil {
			logrus.WithError(err).Error("Erro ao decodificar JSON")
			return nil, err
		}

		campaigns = append(campaigns, response.Data...)

		if response.Paging.Next == "" || response.Paging.Cursors.After == "" {
			break
		}
		params.Set("after", response.Paging.Cursors.After)
	}

	return campaigns, nil
}
