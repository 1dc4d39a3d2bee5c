package fbclient

import (
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/sirupsen/logrus"
	fbdomain "github.com/vfg2006/ads-console-api/infrastructure/integrator/facebook/domain"
)

// GetAdAccountByID busca os campos da conta necessários para derivar o
// status de entrega no nível de conta.
func (c *FacebookClient) GetAdAccountByID(accessToken, accountID string) (*fbdomain.AdAccount, error) {
	baseURL := fmt.Sprintf("%s/act_%s", c.Cfg.Facebook.URL, accountID)

	params := url.Values{}
	params.Add("fields", "account_id,name,currency,timezone_name,business_country_code,account_status,disable_reason,spend_cap,amount_spent,funding_source_details")
	params.Add("access_token", accessToken)

	body, err := c.get(baseURL + "?" + params.Encode())
	if err != nil {
		return nil, err
	}

	var account fbdomain.AdAccount
	if err := json.Unmarshal(body, &account); err != nil {
		logrus.WithError(err).Error("Erro ao decodificar JSON")
		return nil, err
	}

	return &account, nil
}
