package fbclient

import (
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/sirupsen/logrus"
	fbdomain "github.com/vfg2006/ads-console-api/infrastructure/integrator/facebook/domain"
)

type ResponseAds struct {
	Data   []fbdomain.Ad   `json:"data"`
	Paging fbdomain.Paging `json:"paging"`
}

// GetAdsByAccountID busca todos os anúncios da conta com o criativo, de onde
// saem o thumbnail e a página promovida.
func (c *FacebookClient) GetAdsByAccountID(accessToken, accountID string) ([]fbdomain.Ad, error) {
	baseURL := fmt.Sprintf("%s/act_%s/ads", c.Cfg.Facebook.URL, accountID)

	params := url.Values{}
	params.Add("fields", "id,name,status,effective_status,adset_id,creative{id,thumbnail_url,effective_object_story_id}")
	params.Add("limit", "200")
	params.Add("access_token", accessToken)

	ads := make([]fbdomain.Ad, 0)

	for {
		body, err := c.get(baseURL + "?" + params.Encode())
		if err != nil {
			return nil, err
		}

		var response ResponseAds
		if err := json.Unmarshal(body, &response); err != nil {
			logrus.WithError(err).Error("Erro ao decodificar JSON")
			return nil, err
		}

		ads = append(ads, response.Data...)

		if response.Paging.Next == "" || response.Paging.Cursors.After == "" {
			break
		}
		params.Set("after", response.Paging.Cursors.After)
	}

	return ads, nil
}
