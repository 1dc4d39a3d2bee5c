package domain

// Status brutos (liga/desliga) das entidades da hierarquia.
const (
	RawStatusActive = "ACTIVE"
	RawStatusPaused = "PAUSED"
)

// Campaign é o snapshot de uma campanha com seus conjuntos de anúncios já
// resolvidos para a execução corrente.
type Campaign struct {
	ID              string         `json:"id"`
	Name            string         `json:"name"`
	Status          string         `json:"status"`           // ACTIVE | PAUSED
	EffectiveStatus string         `json:"effective_status"` // status calculado pela plataforma
	DeliveryStatus  DeliveryStatus `json:"delivery_status"`
	Objective       string         `json:"objective"`
	DailyBudget     *int64         `json:"daily_budget"`    // em unidades menores
	LifetimeBudget  *int64         `json:"lifetime_budget"` // em unidades menores
	AccountID       string         `json:"account_id"`
	AdSets          []*AdSet       `json:"adsets,omitempty"`
}

// IsPaused indica se a campanha está pausada pelo status bruto.
func (c *Campaign) IsPaused() bool {
	return c.Status == RawStatusPaused
}

// HasBudget indica se a campanha possui orçamento próprio (CBO).
func (c *Campaign) HasBudget() bool {
	return c.DailyBudget != nil || c.LifetimeBudget != nil
}
