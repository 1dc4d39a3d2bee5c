package fbclient

import (
	"encoding/json"
	"fmt"
	"net/url"
	"time"

	"github.com/sirupsen/logrus"
	fbdomain "github.com/vfg2006/ads-console-api/infrastructure/integrator/facebook/domain"
)

// Níveis aceitos pelo endpoint de insights da Graph API.
const (
	InsightLevelAccount  = "account"
	InsightLevelCampaign = "campaign"
	InsightLevelAdSet    = "adset"
	InsightLevelAd       = "ad"
)

type ResponseInsights struct {
	Data   []fbdomain.Insight `json:"data"`
	Paging fbdomain.Paging    `json:"paging"`
}

// GetInsightsByAccountID busca as métricas da conta no nível pedido
// (account, campaign, adset ou ad) para o intervalo informado.
func (c *FacebookClient) GetInsightsByAccountID(accessToken, accountID, level string, since, until time.Time) ([]fbdomain.Insight, error) {
	baseURL := fmt.Sprintf("%s/act_%s/insights", c.Cfg.Facebook.URL, accountID)

	timeRange := fmt.Sprintf("{\"since\":\"%s\",\"until\":\"%s\"}", since.Format(time.DateOnly), until.Format(time.DateOnly))

	params := url.Values{}
	params.Add("fields", "account_id,campaign_id,adset_id,ad_id,spend,impressions,clicks,reach,actions,cost_per_action_type,video_p25_watched_actions,video_p50_watched_actions,video_p75_watched_actions,video_p100_watched_actions,video_avg_time_watched_actions")
	params.Add("level", level)
	params.Add("time_range", timeRange)
	params.Add("limit", "500")
	params.Add("access_token", accessToken)

	insights := make([]fbdomain.Insight, 0)

	for {
		body, err := c.get(baseURL + "?" + params.Encode())
		if err != nil {
			return nil, err
		}

		var response ResponseInsights
		if err := json.Unmarshal(body, &response); err != nil {
			logrus.WithError(err).Error("Erro ao decodificar JSON")
			return nil, err
		}

		insights = append(insights, response.Data...)

		if response.Paging.Next == "" || response.Paging.Cursors.After == "" {
			break
		}
		params.Set("after", response.Paging.Cursors.After)
	}

	return insights, nil
}
