package delivering

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/ads-console-api/internal/domain"
)

func activeAd(id string) *domain.Ad {
	return &domain.Ad{ID: id, Status: domain.RawStatusActive, EffectiveStatus: domain.RawStatusActive}
}

func pausedAd(id string) *domain.Ad {
	return &domain.Ad{ID: id, Status: domain.RawStatusPaused, EffectiveStatus: domain.RawStatusPaused}
}

func TestDeriveCampaignStatus(t *testing.T) {
	tests := []struct {
		name            string
		campaign        *domain.Campaign
		accountDisabled bool
		expected        domain.DeliveryStatus
	}{
		{
			name:     "Campanha sem conjuntos - NO_ADSETS",
			campaign: &domain.Campaign{Status: domain.RawStatusActive},
			expected: domain.StatusNoAdSets,
		},
		{
			name: "Campanha com conjuntos mas sem anúncios - NO_ADS",
			campaign: &domain.Campaign{
				Status: domain.RawStatusActive,
				AdSets: []*domain.AdSet{
					{ID: "AS1", Status: domain.RawStatusActive},
					{ID: "AS2", Status: domain.RawStatusActive},
				},
			},
			expected: domain.StatusNoAds,
		},
		{
			name: "Campanha pausada - CAMPAIGN_OFF mesmo com anúncios ativos",
			campaign: &domain.Campaign{
				Status: domain.RawStatusPaused,
				AdSets: []*domain.AdSet{
					{ID: "AS1", Status: domain.RawStatusActive, Ads: []*domain.Ad{activeAd("AD1")}},
				},
			},
			expected: domain.StatusCampaignOff,
		},
		{
			name: "Exatamente um anúncio pausado - AD_OFF",
			campaign: &domain.Campaign{
				Status: domain.RawStatusActive,
				AdSets: []*domain.AdSet{
					{ID: "AS1", Status: domain.RawStatusActive, Ads: []*domain.Ad{pausedAd("AD1")}},
				},
			},
			expected: domain.StatusAdOff,
		},
		{
			name: "Três anúncios todos pausados - ADS_OFF",
			campaign: &domain.Campaign{
				Status: domain.RawStatusActive,
				AdSets: []*domain.AdSet{
					{ID: "AS1", Status: domain.RawStatusActive, Ads: []*domain.Ad{pausedAd("AD1"), pausedAd("AD2")}},
					{ID: "AS2", Status: domain.RawStatusActive, Ads: []*domain.Ad{pausedAd("AD3")}},
				},
			},
			expected: domain.StatusAdsOff,
		},
		{
			name: "Um anúncio ativo entre pausados - ACTIVE",
			campaign: &domain.Campaign{
				Status: domain.RawStatusActive,
				AdSets: []*domain.AdSet{
					{ID: "AS1", Status: domain.RawStatusActive, Ads: []*domain.Ad{pausedAd("AD1"), activeAd("AD2"), pausedAd("AD3")}},
				},
			},
			expected: domain.StatusActive,
		},
		{
			name: "Todos os conjuntos pausados com anúncios em estado misto - ADSET_OFF",
			campaign: &domain.Campaign{
				Status: domain.RawStatusActive,
				AdSets: []*domain.AdSet{
					{
						ID:     "AS1",
						Status: domain.RawStatusPaused,
						Ads: []*domain.Ad{
							pausedAd("AD1"),
							{ID: "AD2", Status: domain.RawStatusActive, EffectiveStatus: "PENDING_REVIEW"},
						},
					},
				},
			},
			expected: domain.StatusAdSetOff,
		},
		{
			name: "Vários conjuntos pausados - ADSETS_INACTIVE",
			campaign: &domain.Campaign{
				Status: domain.RawStatusActive,
				AdSets: []*domain.AdSet{
					{
						ID:     "AS1",
						Status: domain.RawStatusPaused,
						Ads:    []*domain.Ad{{ID: "AD1", Status: domain.RawStatusActive, EffectiveStatus: "WITH_ISSUES"}},
					},
					{
						ID:     "AS2",
						Status: domain.RawStatusPaused,
						Ads:    []*domain.Ad{{ID: "AD2", Status: domain.RawStatusActive, EffectiveStatus: "WITH_ISSUES"}},
					},
				},
			},
			expected: domain.StatusAdSetsInactive,
		},
		{
			name: "Estado misto sem conjuntos ativos - ADSETS_INACTIVE",
			campaign: &domain.Campaign{
				Status: domain.RawStatusActive,
				AdSets: []*domain.AdSet{
					{
						ID:     "AS1",
						Status: domain.RawStatusActive,
						Ads:    []*domain.Ad{{ID: "AD1", Status: domain.RawStatusActive, EffectiveStatus: "DISAPPROVED"}},
					},
				},
			},
			expected: domain.StatusAdSetsInactive,
		},
		{
			name: "Conta desabilitada domina campanha que seria ACTIVE",
			campaign: &domain.Campaign{
				Status: domain.RawStatusActive,
				AdSets: []*domain.AdSet{
					{ID: "AS1", Status: domain.RawStatusActive, Ads: []*domain.Ad{activeAd("AD1")}},
				},
			},
			accountDisabled: true,
			expected:        domain.StatusAccountDisabled,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DeriveCampaignStatus(tt.campaign, tt.accountDisabled)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestDeriveAdSetStatus(t *testing.T) {
	tests := []struct {
		name            string
		adset           *domain.AdSet
		accountDisabled bool
		expected        domain.DeliveryStatus
	}{
		{
			name:     "Conjunto pausado - ADSET_OFF",
			adset:    &domain.AdSet{Status: domain.RawStatusPaused, Ads: []*domain.Ad{activeAd("AD1")}},
			expected: domain.StatusAdSetOff,
		},
		{
			name:     "Conjunto sem anúncios - NO_ADS",
			adset:    &domain.AdSet{Status: domain.RawStatusActive},
			expected: domain.StatusNoAds,
		},
		{
			name:     "Anúncio ativo presente - ACTIVE",
			adset:    &domain.AdSet{Status: domain.RawStatusActive, Ads: []*domain.Ad{pausedAd("AD1"), activeAd("AD2")}},
			expected: domain.StatusActive,
		},
		{
			name:     "Um único anúncio pausado - AD_OFF",
			adset:    &domain.AdSet{Status: domain.RawStatusActive, Ads: []*domain.Ad{pausedAd("AD1")}},
			expected: domain.StatusAdOff,
		},
		{
			name:     "Vários anúncios todos pausados - ADS_INACTIVE",
			adset:    &domain.AdSet{Status: domain.RawStatusActive, Ads: []*domain.Ad{pausedAd("AD1"), pausedAd("AD2")}},
			expected: domain.StatusAdsInactive,
		},
		{
			name: "Estado misto - effective_status passa adiante",
			adset: &domain.AdSet{
				Status:          domain.RawStatusActive,
				EffectiveStatus: "PENDING_REVIEW",
				Ads:             []*domain.Ad{{ID: "AD1", Status: domain.RawStatusActive, EffectiveStatus: "PENDING_REVIEW"}},
			},
			expected: domain.StatusPendingReview,
		},
		{
			name:            "Conta desabilitada domina - ACCOUNT_DISABLED",
			adset:           &domain.AdSet{Status: domain.RawStatusActive, Ads: []*domain.Ad{activeAd("AD1")}},
			accountDisabled: true,
			expected:        domain.StatusAccountDisabled,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DeriveAdSetStatus(tt.adset, tt.accountDisabled)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestDeriveAccountStatus(t *testing.T) {
	spendCap := func(v int64) *int64 { return &v }

	tests := []struct {
		name     string
		account  *domain.AdAccount
		expected domain.DeliveryStatus
	}{
		{
			name:     "Conta habilitada - ACTIVE",
			account:  &domain.AdAccount{AccountStatus: domain.AccountStatusEnabled},
			expected: domain.StatusActive,
		},
		{
			name:     "Conta com disable_reason - DISABLED mesmo abaixo do limite de gastos",
			account:  &domain.AdAccount{AccountStatus: domain.AccountStatusDisabled, DisableReason: 1, SpendCap: spendCap(10000), AmountSpent: 20000},
			expected: domain.StatusDisabled,
		},
		{
			name:     "Limite de gastos atingido - SPEND_LIMIT_REACHED",
			account:  &domain.AdAccount{AccountStatus: domain.AccountStatusUnsettled, SpendCap: spendCap(10000), AmountSpent: 10000},
			expected: domain.StatusSpendLimitReached,
		},
		{
			name:     "Sem limite e não habilitada - INACTIVE",
			account:  &domain.AdAccount{AccountStatus: domain.AccountStatusUnsettled},
			expected: domain.StatusInactive,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, DeriveAccountStatus(tt.account))
		})
	}
}

func TestDeriveAdStatus(t *testing.T) {
	ad := &domain.Ad{Status: domain.RawStatusActive, EffectiveStatus: "WITH_ISSUES"}

	assert.Equal(t, domain.StatusWithIssues, DeriveAdStatus(ad, false))
	assert.Equal(t, domain.StatusAccountDisabled, DeriveAdStatus(ad, true))
}

func TestApply(t *testing.T) {
	acc := &domain.AdAccount{ID: "ACC1", AccountStatus: domain.AccountStatusEnabled}
	campaigns := []*domain.Campaign{
		{
			ID:     "C1",
			Status: domain.RawStatusActive,
			AdSets: []*domain.AdSet{
				{ID: "AS1", Status: domain.RawStatusActive, Ads: []*domain.Ad{activeAd("AD1"), pausedAd("AD2")}},
			},
		},
	}

	Apply(acc, campaigns)

	assert.Equal(t, domain.StatusActive, acc.DeliveryStatus)
	assert.Equal(t, 1, acc.ActiveAdsCount)
	assert.Equal(t, domain.StatusActive, campaigns[0].DeliveryStatus)
	assert.Equal(t, domain.StatusActive, campaigns[0].AdSets[0].DeliveryStatus)
	assert.Equal(t, domain.StatusActive, campaigns[0].AdSets[0].Ads[0].DeliveryStatus)
	assert.Equal(t, domain.StatusPaused, campaigns[0].AdSets[0].Ads[1].DeliveryStatus)
}

func TestStatusPriorityTotalOrder(t *testing.T) {
	// Grupos de empate explícitos do vocabulário.
	ties := map[domain.DeliveryStatus]int{
		domain.StatusInProcess: 2, domain.StatusPendingReview: 2,
		domain.StatusPaused: 6, domain.StatusCampaignOff: 6, domain.StatusCampaignPaused: 6,
		domain.StatusAdSetOff: 6, domain.StatusAdSetPaused: 6, domain.StatusAdOff: 6, domain.StatusAdsOff: 6,
		domain.StatusAdSetsInactive: 7, domain.StatusAdsInactive: 7,
		domain.StatusNoAds: 8, domain.StatusNoAdSets: 8,
		domain.StatusDisabled: 13, domain.StatusAccountDisabled: 13,
	}

	statuses := domain.KnownStatuses()
	assert.Len(t, statuses, 26)

	for _, a := range statuses {
		assert.Less(t, a.Priority(), domain.UnknownStatusPriority)

		for _, b := range statuses {
			if a == b {
				continue
			}
			if a.Priority() == b.Priority() {
				// Empates só são permitidos dentro dos grupos explícitos.
				pa, okA := ties[a]
				pb, okB := ties[b]
				assert.True(t, okA && okB && pa == pb,
					"empate não previsto entre %s e %s", a, b)
			}
		}
	}

	assert.Equal(t, domain.UnknownStatusPriority, domain.DeliveryStatus("SOMETHING_NEW").Priority())
	assert.Less(t, domain.StatusActive.Priority(), domain.StatusPaused.Priority())
	assert.Less(t, domain.StatusSpendLimitReached.Priority(), domain.StatusDisapproved.Priority())
	assert.Less(t, domain.StatusDeleted.Priority(), domain.StatusArchived.Priority())
}

func TestResolveBudgetInheritance(t *testing.T) {
	daily := func(v int64) *int64 { return &v }

	tests := []struct {
		name           string
		adset          *domain.AdSet
		campaign       *domain.Campaign
		expectedDaily  *int64
		expectedSource domain.BudgetSource
	}{
		{
			name:           "Orçamento do próprio conjunto vence",
			adset:          &domain.AdSet{DailyBudget: daily(30000)},
			campaign:       &domain.Campaign{DailyBudget: daily(50000)},
			expectedDaily:  daily(30000),
			expectedSource: domain.BudgetSourceAdSet,
		},
		{
			name:           "Conjunto sem orçamento herda da campanha (CBO)",
			adset:          &domain.AdSet{},
			campaign:       &domain.Campaign{DailyBudget: daily(50000)},
			expectedDaily:  daily(50000),
			expectedSource: domain.BudgetSourceCampaign,
		},
		{
			name:           "Sem orçamento em nenhum nível",
			adset:          &domain.AdSet{},
			campaign:       &domain.Campaign{},
			expectedDaily:  nil,
			expectedSource: domain.BudgetSourceNone,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ad := &domain.Ad{}
			ad.ResolveBudget(tt.adset, tt.campaign)

			assert.Equal(t, tt.expectedSource, ad.BudgetSource)
			if tt.expectedDaily == nil {
				assert.Nil(t, ad.DailyBudget)
			} else {
				assert.NotNil(t, ad.DailyBudget)
				assert.Equal(t, *tt.expectedDaily, *ad.DailyBudget)
			}
		})
	}
}
