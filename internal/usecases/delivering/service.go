package delivering

import (
	"github.com/vfg2006/ads-console-api/internal/domain"
)

// Pacote delivering deriva o status de entrega normalizado de cada entidade
// da hierarquia a partir dos flags brutos da plataforma e dos filhos já
// resolvidos. Todas as funções são puras: nenhum acesso externo.

// DeriveAccountStatus deriva o status de entrega de uma conta de anúncios.
// A desabilitação (status ou disable_reason) vence o limite de gastos.
func DeriveAccountStatus(acc *domain.AdAccount) domain.DeliveryStatus {
	switch {
	case acc.AccountStatus == domain.AccountStatusEnabled && acc.DisableReason == 0:
		return domain.StatusActive
	case acc.IsDisabled():
		return domain.StatusDisabled
	case acc.SpendCap != nil && *acc.SpendCap > 0 && acc.AmountSpent >= *acc.SpendCap:
		return domain.StatusSpendLimitReached
	default:
		return domain.StatusInactive
	}
}

// DeriveCampaignStatus deriva o status de uma campanha a partir dos seus
// conjuntos de anúncios já resolvidos. accountDisabled é absoluto.
func DeriveCampaignStatus(campaign *domain.Campaign, accountDisabled bool) domain.DeliveryStatus {
	if accountDisabled {
		return domain.StatusAccountDisabled
	}

	if campaign.IsPaused() {
		return domain.StatusCampaignOff
	}

	if len(campaign.AdSets) == 0 {
		return domain.StatusNoAdSets
	}

	ads := collectAds(campaign.AdSets)
	if len(ads) == 0 {
		return domain.StatusNoAds
	}

	if anyEffectivelyActive(ads) {
		return domain.StatusActive
	}

	if allPausedAds(ads) {
		if len(ads) == 1 {
			return domain.StatusAdOff
		}
		return domain.StatusAdsOff
	}

	if allPausedAdSets(campaign.AdSets) {
		if len(campaign.AdSets) == 1 {
			return domain.StatusAdSetOff
		}
		return domain.StatusAdSetsInactive
	}

	// Nenhum conjunto ativo e estado misto não-pausado: inativo por conjuntos.
	return domain.StatusAdSetsInactive
}

// DeriveAdSetStatus deriva o status de um conjunto de anúncios a partir dos
// seus anúncios. Sem regra aplicável, o effective_status da plataforma passa
// adiante sem alteração.
func DeriveAdSetStatus(adset *domain.AdSet, accountDisabled bool) domain.DeliveryStatus {
	if accountDisabled {
		return domain.StatusAccountDisabled
	}

	if adset.IsPaused() {
		return domain.StatusAdSetOff
	}

	if len(adset.Ads) == 0 {
		return domain.StatusNoAds
	}

	if anyEffectivelyActive(adset.Ads) {
		return domain.StatusActive
	}

	if allPausedAds(adset.Ads) {
		if len(adset.Ads) == 1 {
			return domain.StatusAdOff
		}
		return domain.StatusAdsInactive
	}

	return domain.DeliveryStatus(adset.EffectiveStatus)
}

// DeriveAdStatus deriva o status de um anúncio: passa o effective_status da
// plataforma adiante, exceto quando a conta está desabilitada.
func DeriveAdStatus(ad *domain.Ad, accountDisabled bool) domain.DeliveryStatus {
	if accountDisabled {
		return domain.StatusAccountDisabled
	}
	return domain.DeliveryStatus(ad.EffectiveStatus)
}

// Apply percorre a hierarquia de uma conta atribuindo o status derivado a
// cada entidade e contabilizando os anúncios efetivamente ativos.
func Apply(acc *domain.AdAccount, campaigns []*domain.Campaign) {
	acc.DeliveryStatus = DeriveAccountStatus(acc)
	accountDisabled := acc.IsDisabled()

	activeAds := 0
	for _, campaign := range campaigns {
		for _, adset := range campaign.AdSets {
			for _, ad := range adset.Ads {
				ad.DeliveryStatus = DeriveAdStatus(ad, accountDisabled)
				if ad.IsEffectivelyActive() {
					activeAds++
				}
			}
			adset.DeliveryStatus = DeriveAdSetStatus(adset, accountDisabled)
		}
		campaign.DeliveryStatus = DeriveCampaignStatus(campaign, accountDisabled)
	}

	acc.ActiveAdsCount = activeAds
}

// ErrorCampaign devolve o registro mínimo de uma campanha cujo processamento
// falhou: status ERROR e contagens zeradas, sem abortar a listagem.
func ErrorCampaign(id, name, accountID string) *domain.Campaign {
	return &domain.Campaign{
		ID:             id,
		Name:           name,
		AccountID:      accountID,
		DeliveryStatus: domain.StatusError,
		AdSets:         []*domain.AdSet{},
	}
}

func collectAds(adsets []*domain.AdSet) []*domain.Ad {
	ads := make([]*domain.Ad, 0)
	for _, adset := range adsets {
		ads = append(ads, adset.Ads...)
	}
	return ads
}

func anyEffectivelyActive(ads []*domain.Ad) bool {
	for _, ad := range ads {
		if ad.IsEffectivelyActive() {
			return true
		}
	}
	return false
}

func allPausedAds(ads []*domain.Ad) bool {
	for _, ad := range ads {
		if !ad.IsPaused() {
			return false
		}
	}
	return len(ads) > 0
}

func allPausedAdSets(adsets []*domain.AdSet) bool {
	for _, adset := range adsets {
		if !adset.IsPaused() {
			return false
		}
	}
	return len(adsets) > 0
}
