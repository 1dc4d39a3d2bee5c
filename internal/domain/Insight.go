package domain

// Action é um par (tipo de ação → valor) reportado pela plataforma, usado
// tanto para contagens quanto para custo por ação.
type Action struct {
	ActionType string `json:"action_type"`
	Value      string `json:"value"`
}

// Insight é o registro de métricas de performance de uma entidade (conta,
// campanha, conjunto ou anúncio), chaveado pelo ID da entidade.
type Insight struct {
	EntityID          string   `json:"entity_id"`
	Spend             string   `json:"spend"` // em unidades menores (centavos)
	Impressions       int64    `json:"impressions"`
	Clicks            int64    `json:"clicks"`
	Reach             int64    `json:"reach"`
	Actions           []Action `json:"actions"`
	CostPerActions    []Action `json:"cost_per_action_type"`
	VideoWatchP25     int64    `json:"video_p25_watched"`
	VideoWatchP50     int64    `json:"video_p50_watched"`
	VideoWatchP75     int64    `json:"video_p75_watched"`
	VideoWatchP100    int64    `json:"video_p100_watched"`
	VideoAvgWatchSecs int64    `json:"video_avg_time_watched"`
}

// EmptyInsight retorna o insight padrão para entidades sem métricas no
// período: zeros e listas vazias, nunca nulos, para que a formatação a
// jusante não precise tratar ausência.
func EmptyInsight(entityID string) *Insight {
	return &Insight{
		EntityID:       entityID,
		Spend:          "0",
		Actions:        []Action{},
		CostPerActions: []Action{},
	}
}
