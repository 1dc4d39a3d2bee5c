package domain

// BudgetSource identifica de onde veio o orçamento resolvido de um anúncio.
type BudgetSource string

const (
	BudgetSourceAdSet    BudgetSource = "adset"
	BudgetSourceCampaign BudgetSource = "campaign"
	BudgetSourceNone     BudgetSource = "none"
)

// Ad é o snapshot de um anúncio. O orçamento é resolvido por herança: o
// orçamento do próprio AdSet vence; na ausência dele, herda o da campanha
// quando ela opera com otimização de orçamento (CBO).
type Ad struct {
	ID              string         `json:"id"`
	Name            string         `json:"name"`
	Status          string         `json:"status"`
	EffectiveStatus string         `json:"effective_status"`
	DeliveryStatus  DeliveryStatus `json:"delivery_status"`
	AdSetID         string         `json:"adset_id"`
	DailyBudget     *int64         `json:"daily_budget"`
	LifetimeBudget  *int64         `json:"lifetime_budget"`
	BudgetSource    BudgetSource   `json:"budget_source"`
	ThumbnailURL    string         `json:"thumbnail_url"`
	PageID          string         `json:"page_id"`
	PageName        string         `json:"page_name"`
}

// IsPaused indica se o anúncio está pausado pelo status bruto.
func (a *Ad) IsPaused() bool {
	return a.Status == RawStatusPaused
}

// IsEffectivelyActive indica se a plataforma reporta o anúncio como ativo.
func (a *Ad) IsEffectivelyActive() bool {
	return a.EffectiveStatus == RawStatusActive
}

// ResolveBudget aplica a herança de orçamento a partir do AdSet e da campanha
// donos do anúncio, marcando a origem em BudgetSource.
func (a *Ad) ResolveBudget(adset *AdSet, campaign *Campaign) {
	switch {
	case adset != nil && adset.HasBudget():
		a.DailyBudget = adset.DailyBudget
		a.LifetimeBudget = adset.LifetimeBudget
		a.BudgetSource = BudgetSourceAdSet
	case campaign != nil && campaign.HasBudget():
		a.DailyBudget = campaign.DailyBudget
		a.LifetimeBudget = campaign.LifetimeBudget
		a.BudgetSource = BudgetSourceCampaign
	default:
		a.BudgetSource = BudgetSourceNone
	}
}
