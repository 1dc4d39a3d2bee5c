package fbdomain

// Campaign é o payload bruto de uma campanha. Orçamentos são strings em
// unidades menores; ausentes quando a campanha não usa CBO.
type Campaign struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	Status          string `json:"status"`
	EffectiveStatus string `json:"effective_status"`
	Objective       string `json:"objective"`
	DailyBudget     string `json:"daily_budget"`
	LifetimeBudget  string `json:"lifetime_budget"`
}

// AdSet é o payload bruto de um conjunto de anúncios.
type AdSet struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	Status          string `json:"status"`
	EffectiveStatus string `json:"effective_status"`
	DailyBudget     string `json:"daily_budget"`
	LifetimeBudget  string `json:"lifetime_budget"`
	CampaignID      string `json:"campaign_id"`
}

// Ad é o payload bruto de um anúncio, com o criativo necessário para
// resolver thumbnail e página.
type Ad struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	Status          string    `json:"status"`
	EffectiveStatus string    `json:"effective_status"`
	AdSetID         string    `json:"adset_id"`
	Creative        *Creative `json:"creative"`
}

// Creative carrega o thumbnail e o story de onde a página é derivada.
type Creative struct {
	ID                     string `json:"id"`
	ThumbnailURL           string `json:"thumbnail_url"`
	EffectiveObjectStoryID string `json:"effective_object_story_id"`
}

// Page é o payload mínimo de uma página do Facebook.
type Page struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
