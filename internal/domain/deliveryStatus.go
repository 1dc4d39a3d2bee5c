package domain

// DeliveryStatus é o status de entrega normalizado de uma entidade da
// hierarquia, derivado dos flags brutos da plataforma e dos filhos. O
// vocabulário é fixo e totalmente ordenado pela prioridade (ver Priority).
type DeliveryStatus string

const (
	StatusActive             DeliveryStatus = "ACTIVE"
	StatusInProcess          DeliveryStatus = "IN_PROCESS"
	StatusPendingReview      DeliveryStatus = "PENDING_REVIEW"
	StatusPreapproved        DeliveryStatus = "PREAPPROVED"
	StatusWithIssues         DeliveryStatus = "WITH_ISSUES"
	StatusNotDelivering      DeliveryStatus = "NOT_DELIVERING"
	StatusPaused             DeliveryStatus = "PAUSED"
	StatusCampaignOff        DeliveryStatus = "CAMPAIGN_OFF"
	StatusCampaignPaused     DeliveryStatus = "CAMPAIGN_PAUSED"
	StatusAdSetOff           DeliveryStatus = "ADSET_OFF"
	StatusAdSetPaused        DeliveryStatus = "ADSET_PAUSED"
	StatusAdOff              DeliveryStatus = "AD_OFF"
	StatusAdsOff             DeliveryStatus = "ADS_OFF"
	StatusAdSetsInactive     DeliveryStatus = "ADSETS_INACTIVE"
	StatusAdsInactive        DeliveryStatus = "ADS_INACTIVE"
	StatusNoAds              DeliveryStatus = "NO_ADS"
	StatusNoAdSets           DeliveryStatus = "NO_ADSETS"
	StatusSpendLimitReached  DeliveryStatus = "SPEND_LIMIT_REACHED"
	StatusPendingBillingInfo DeliveryStatus = "PENDING_BILLING_INFO"
	StatusDisapproved        DeliveryStatus = "DISAPPROVED"
	StatusError              DeliveryStatus = "ERROR"
	StatusDisabled           DeliveryStatus = "DISABLED"
	StatusAccountDisabled    DeliveryStatus = "ACCOUNT_DISABLED"
	StatusInactive           DeliveryStatus = "INACTIVE"
	StatusDeleted            DeliveryStatus = "DELETED"
	StatusArchived           DeliveryStatus = "ARCHIVED"
)

// UnknownStatusPriority é a prioridade de qualquer status fora do vocabulário
// (a plataforma pode introduzir valores novos de effective_status a qualquer
// momento). Vai para o fim de qualquer ordenação.
const UnknownStatusPriority = 99

// statusPriority ordena o vocabulário do mais saudável para o menos saudável.
// Status no mesmo grupo (pausas, inativos por filhos, sem filhos,
// desabilitados) empatam de propósito.
var statusPriority = map[DeliveryStatus]int{
	StatusActive:             1,
	StatusInProcess:          2,
	StatusPendingReview:      2,
	StatusPreapproved:        3,
	StatusWithIssues:         4,
	StatusNotDelivering:      5,
	StatusPaused:             6,
	StatusCampaignOff:        6,
	StatusCampaignPaused:     6,
	StatusAdSetOff:           6,
	StatusAdSetPaused:        6,
	StatusAdOff:              6,
	StatusAdsOff:             6,
	StatusAdSetsInactive:     7,
	StatusAdsInactive:        7,
	StatusNoAds:              8,
	StatusNoAdSets:           8,
	StatusSpendLimitReached:  9,
	StatusPendingBillingInfo: 10,
	StatusDisapproved:        11,
	StatusError:              12,
	StatusDisabled:           13,
	StatusAccountDisabled:    13,
	StatusInactive:           14,
	StatusDeleted:            15,
	StatusArchived:           16,
}

// Priority retorna a prioridade de ordenação do status (menor = mais
// saudável). Status desconhecidos retornam UnknownStatusPriority.
func (s DeliveryStatus) Priority() int {
	if priority, ok := statusPriority[s]; ok {
		return priority
	}
	return UnknownStatusPriority
}

// KnownStatuses retorna o vocabulário completo de status de entrega.
func KnownStatuses() []DeliveryStatus {
	statuses := make([]DeliveryStatus, 0, len(statusPriority))
	for status := range statusPriority {
		statuses = append(statuses, status)
	}
	return statuses
}
