package fbdomain

// Action é um par (tipo de ação → valor) retornado pela Graph API.
type Action struct {
	ActionType string `json:"action_type"`
	Value      string `json:"value"`
}

// Insight é o payload bruto de métricas em qualquer nível (account,
// campaign, adset, ad). Os IDs vêm preenchidos conforme o nível solicitado.
type Insight struct {
	AccountID      string   `json:"account_id"`
	CampaignID     string   `json:"campaign_id"`
	AdSetID        string   `json:"adset_id"`
	AdID           string   `json:"ad_id"`
	Spend          string   `json:"spend"`
	Impressions    string   `json:"impressions"`
	Clicks         string   `json:"clicks"`
	Reach          string   `json:"reach"`
	Actions        []Action `json:"actions"`
	CostPerActions []Action `json:"cost_per_action_type"`
	VideoP25       []Action `json:"video_p25_watched_actions"`
	VideoP50       []Action `json:"video_p50_watched_actions"`
	VideoP75       []Action `json:"video_p75_watched_actions"`
	VideoP100      []Action `json:"video_p100_watched_actions"`
	VideoAvgTime   []Action `json:"video_avg_time_watched_actions"`
	DateStart      string   `json:"date_start"`
	DateStop       string   `json:"date_stop"`
}

// EntityID retorna o ID da entidade dona do insight conforme o nível.
func (i *Insight) EntityID(level string) string {
	switch level {
	case "ad":
		return i.AdID
	case "adset":
		return i.AdSetID
	case "campaign":
		return i.CampaignID
	default:
		return i.AccountID
	}
}
