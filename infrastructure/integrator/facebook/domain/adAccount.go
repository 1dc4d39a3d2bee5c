package fbdomain

// AdAccount é o payload bruto de uma conta retornado pela Graph API. Os
// valores monetários chegam como strings em unidades menores.
type AdAccount struct {
	ID            string `json:"id"`
	AccountID     string `json:"account_id"`
	Name          string `json:"name"`
	Currency      string `json:"currency"`
	TimezoneName  string `json:"timezone_name"`
	Country       string `json:"business_country_code"`
	AccountStatus int    `json:"account_status"`
	DisableReason int    `json:"disable_reason"`
	SpendCap      string `json:"spend_cap"`
	AmountSpent   string `json:"amount_spent"`
	FundingSource *FundingSourceDetails `json:"funding_source_details"`
}

// FundingSourceDetails descreve o meio de pagamento da conta.
type FundingSourceDetails struct {
	ID          string `json:"id"`
	DisplayString string `json:"display_string"`
	Type        int    `json:"type"`
}

type Cursors struct {
	Before string `json:"before"`
	After  string `json:"after"`
}

type Paging struct {
	Cursors Cursors `json:"cursors"`
	Next    string  `json:"next"`
}
