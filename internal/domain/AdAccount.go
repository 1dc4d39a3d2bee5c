package domain

// Valores de account_status reportados pela plataforma de anúncios.
const (
	AccountStatusEnabled   = 1
	AccountStatusDisabled  = 2
	AccountStatusUnsettled = 3
)

// AdAccount é o snapshot de uma conta de anúncios obtido da plataforma em
// cada execução do pipeline. Nunca é persistido além da execução.
type AdAccount struct {
	ID             string         `json:"id"`
	Name           string         `json:"name"`
	Currency       string         `json:"currency"`
	Timezone       string         `json:"timezone_name"`
	Country        string         `json:"business_country_code"`
	PaymentMethod  string         `json:"payment_method"`
	SpendCap       *int64         `json:"spend_cap"`    // em unidades menores (centavos)
	AmountSpent    int64          `json:"amount_spent"` // em unidades menores (centavos)
	AccountStatus  int            `json:"account_status"`
	DisableReason  int            `json:"disable_reason"`
	DeliveryStatus DeliveryStatus `json:"delivery_status"`
	ActiveAdsCount int            `json:"active_ads_count"`
}

// IsDisabled indica se a conta está desabilitada na plataforma. A
// desabilitação da conta é absoluta: sobrepõe o status derivado de todos os
// descendentes.
func (a *AdAccount) IsDisabled() bool {
	return a.AccountStatus == AccountStatusDisabled || a.DisableReason != 0
}

// AccountSnapshot agrupa a hierarquia completa de uma conta com os insights
// já mesclados, pronta para ser achatada pelo exportador.
type AccountSnapshot struct {
	Account   *AdAccount
	Campaigns []*Campaign
	Insights  map[string]*Insight // chaveado por ID da entidade (todos os níveis)
}
