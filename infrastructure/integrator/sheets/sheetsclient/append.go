package sheetsclient

import (
	"bytes"
	"fmt"
	"net/http"
	"net/url"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
)

type appendRequest struct {
	Values [][]string `json:"values"`
}

// AppendValues adiciona linhas ao fim da aba informada. O modo USER_ENTERED
// deixa a planilha interpretar números e datas como se digitados à mão.
func (c *SheetsClient) AppendValues(accessToken, spreadsheetID, sheetName string, values [][]string) error {
	if len(values) == 0 {
		return nil
	}

	sheetRange := url.PathEscape(fmt.Sprintf("%s!A1", sheetName))
	endpoint := fmt.Sprintf("%s/spreadsheets/%s/values/%s:append?valueInputOption=USER_ENTERED&insertDataOption=INSERT_ROWS",
		c.Cfg.Google.SheetsURL, spreadsheetID, sheetRange)

	payload, err := jsoniter.Marshal(appendRequest{Values: values})
	if err != nil {
		logrus.WithError(err).Error("Erro ao codificar JSON")
		return err
	}

	req, err := http.NewRequest(http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		logrus.WithError(err).Error("Erro ao criar a requisição")
		return err
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		logrus.WithError(err).Error("Erro ao fazer a requisição")
		return err
	}
	defer resp.Body.Close()

	if _, err := c.handleResponse(resp); err != nil {
		return err
	}

	return nil
}
