package domain

// AdSet é o snapshot de um conjunto de anúncios com seus anúncios já
// resolvidos para a execução corrente.
type AdSet struct {
	ID              string         `json:"id"`
	Name            string         `json:"name"`
	Status          string         `json:"status"`
	EffectiveStatus string         `json:"effective_status"`
	DeliveryStatus  DeliveryStatus `json:"delivery_status"`
	DailyBudget     *int64         `json:"daily_budget"`
	LifetimeBudget  *int64         `json:"lifetime_budget"`
	CampaignID      string         `json:"campaign_id"`
	Ads             []*Ad          `json:"ads,omitempty"`
}

// IsPaused indica se o conjunto está pausado pelo status bruto.
func (s *AdSet) IsPaused() bool {
	return s.Status == RawStatusPaused
}

// HasBudget indica se o conjunto possui orçamento próprio.
func (s *AdSet) HasBudget() bool {
	return s.DailyBudget != nil || s.LifetimeBudget != nil
}
