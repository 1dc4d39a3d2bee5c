package facebook

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	fbdomain "github.com/vfg2006/ads-console-api/infrastructure/integrator/facebook/domain"
	"github.com/vfg2006/ads-console-api/infrastructure/integrator/facebook/fbclient"
	"github.com/vfg2006/ads-console-api/internal/domain"
	"github.com/vfg2006/ads-console-api/internal/usecases/delivering"
)

// Integrator monta o snapshot completo de uma conta de anúncios: hierarquia
// com status de entrega derivados e insights do nível exportado.
type Integrator interface {
	GetAccountSnapshot(accessToken, accountID string, dataType domain.ExportDataType, asOf time.Time) (*domain.AccountSnapshot, error)
}

type FacebookIntegrator struct {
	client fbclient.Client
}

func NewIntegrator(client fbclient.Client) Integrator {
	return &FacebookIntegrator{client: client}
}

// GetAccountSnapshot busca conta, campanhas, conjuntos e anúncios, deriva os
// status de entrega e mescla os insights do nível pedido. Campanhas que
// falham na montagem degradam para o status ERROR sem abortar a conta.
func (i *FacebookIntegrator) GetAccountSnapshot(accessToken, accountID string, dataType domain.ExportDataType, asOf time.Time) (*domain.AccountSnapshot, error) {
	rawAccount, err := i.client.GetAdAccountByID(accessToken, accountID)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar a conta %s: %w", accountID, err)
	}

	rawCampaigns, err := i.client.GetCampaignsByAccountID(accessToken, accountID)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar as campanhas da conta %s: %w", accountID, err)
	}

	rawAdSets, err := i.client.GetAdSetsByAccountID(accessToken, accountID)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar os conjuntos da conta %s: %w", accountID, err)
	}

	rawAds, err := i.client.GetAdsByAccountID(accessToken, accountID)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar os anúncios da conta %s: %w", accountID, err)
	}

	account := convertAccount(rawAccount)
	campaigns := i.assembleHierarchy(accessToken, accountID, rawCampaigns, rawAdSets, rawAds)

	delivering.Apply(account, campaigns)

	insights, err := i.fetchInsights(accessToken, accountID, dataType, asOf)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar os insights da conta %s: %w", accountID, err)
	}

	return &domain.AccountSnapshot{
		Account:   account,
		Campaigns: campaigns,
		Insights:  insights,
	}, nil
}

// assembleHierarchy agrupa conjuntos por campanha e anúncios por conjunto,
// resolvendo orçamento herdado e página promovida de cada anúncio.
func (i *FacebookIntegrator) assembleHierarchy(accessToken, accountID string, rawCampaigns []fbdomain.Campaign, rawAdSets []fbdomain.AdSet, rawAds []fbdomain.Ad) []*domain.Campaign {
	adsByAdSet := make(map[string][]*domain.Ad)
	pageCache := make(map[string]string)

	for idx := range rawAds {
		ad := i.convertAd(accessToken, &rawAds[idx], pageCache)
		adsByAdSet[ad.AdSetID] = append(adsByAdSet[ad.AdSetID], ad)
	}

	adsetsByCampaign := make(map[string][]*domain.AdSet)
	for idx := range rawAdSets {
		adset := convertAdSet(&rawAdSets[idx])
		adset.Ads = adsByAdSet[adset.ID]
		if adset.Ads == nil {
			adset.Ads = []*domain.Ad{}
		}
		adsetsByCampaign[adset.CampaignID] = append(adsetsByCampaign[adset.CampaignID], adset)
	}

	campaigns := make([]*domain.Campaign, 0, len(rawCampaigns))
	for idx := range rawCampaigns {
		raw := &rawCampaigns[idx]

		campaign, err := convertCampaign(raw, accountID)
		if err != nil {
			logrus.WithError(err).WithField("campaign_id", raw.ID).
				Warn("Erro ao montar a campanha. Degradando para ERROR")
			campaigns = append(campaigns, delivering.ErrorCampaign(raw.ID, raw.Name, accountID))
			continue
		}

		campaign.AdSets = adsetsByCampaign[campaign.ID]
		if campaign.AdSets == nil {
			campaign.AdSets = []*domain.AdSet{}
		}

		for _, adset := range campaign.AdSets {
			for _, ad := range adset.Ads {
				ad.ResolveBudget(adset, campaign)
			}
		}

		campaigns = append(campaigns, campaign)
	}

	return campaigns
}

// fetchInsights busca as métricas do dia no nível correspondente ao tipo de
// dado exportado e as indexa pelo ID da entidade.
func (i *FacebookIntegrator) fetchInsights(accessToken, accountID string, dataType domain.ExportDataType, asOf time.Time) (map[string]*domain.Insight, error) {
	level := insightLevel(dataType)

	rawInsights, err := i.client.GetInsightsByAccountID(accessToken, accountID, level, asOf, asOf)
	if err != nil {
		return nil, err
	}

	insights := make(map[string]*domain.Insight, len(rawInsights))
	for idx := range rawInsights {
		raw := &rawInsights[idx]
		entityID := raw.EntityID(level)
		if entityID == "" {
			continue
		}
		insights[entityID] = convertInsight(raw, entityID)
	}

	return insights, nil
}

func insightLevel(dataType domain.ExportDataType) string {
	switch dataType {
	case domain.ExportDataTypeCampaigns:
		return fbclient.InsightLevelCampaign
	case domain.ExportDataTypeAdSets:
		return fbclient.InsightLevelAdSet
	case domain.ExportDataTypeAds:
		return fbclient.InsightLevelAd
	default:
		return fbclient.InsightLevelAccount
	}
}

func convertAccount(raw *fbdomain.AdAccount) *domain.AdAccount {
	account := &domain.AdAccount{
		ID:            raw.AccountID,
		Name:          raw.Name,
		Currency:      raw.Currency,
		Timezone:      raw.TimezoneName,
		Country:       raw.Country,
		AccountStatus: raw.AccountStatus,
		DisableReason: raw.DisableReason,
		SpendCap:      parseMinorUnits(raw.SpendCap),
	}

	if account.ID == "" {
		account.ID = strings.TrimPrefix(raw.ID, "act_")
	}

	if spent := parseMinorUnits(raw.AmountSpent); spent != nil {
		account.AmountSpent = *spent
	}

	if raw.FundingSource != nil {
		account.PaymentMethod = raw.FundingSource.DisplayString
	}

	return account
}

func convertCampaign(raw *fbdomain.Campaign, accountID string) (*domain.Campaign, error) {
	daily, err := parseBudget(raw.DailyBudget)
	if err != nil {
		return nil, err
	}
	lifetime, err := parseBudget(raw.LifetimeBudget)
	if err != nil {
		return nil, err
	}

	return &domain.Campaign{
		ID:              raw.ID,
		Name:            raw.Name,
		Status:          raw.Status,
		EffectiveStatus: raw.EffectiveStatus,
		Objective:       raw.Objective,
		DailyBudget:     daily,
		LifetimeBudget:  lifetime,
		AccountID:       accountID,
	}, nil
}

func convertAdSet(raw *fbdomain.AdSet) *domain.AdSet {
	return &domain.AdSet{
		ID:              raw.ID,
		Name:            raw.Name,
		Status:          raw.Status,
		EffectiveStatus: raw.EffectiveStatus,
		DailyBudget:     parseMinorUnits(raw.DailyBudget),
		LifetimeBudget:  parseMinorUnits(raw.LifetimeBudget),
		CampaignID:      raw.CampaignID,
	}
}

// convertAd resolve thumbnail e página do criativo. A falha na busca da
// página degrada silenciosamente: o anúncio sai sem nome de página.
func (i *FacebookIntegrator) convertAd(accessToken string, raw *fbdomain.Ad, pageCache map[string]string) *domain.Ad {
	ad := &domain.Ad{
		ID:              raw.ID,
		Name:            raw.Name,
		Status:          raw.Status,
		EffectiveStatus: raw.EffectiveStatus,
		AdSetID:         raw.AdSetID,
	}

	if raw.Creative == nil {
		return ad
	}

	ad.ThumbnailURL = raw.Creative.ThumbnailURL

	// effective_object_story_id tem o formato <pageID>_<postID>.
	storyID := raw.Creative.EffectiveObjectStoryID
	if idx := strings.Index(storyID, "_"); idx > 0 {
		ad.PageID = storyID[:idx]
	}

	if ad.PageID == "" {
		return ad
	}

	if name, ok := pageCache[ad.PageID]; ok {
		ad.PageName = name
		return ad
	}

	page, err := i.client.GetPageByID(accessToken, ad.PageID)
	if err != nil {
		logrus.WithError(err).WithField("page_id", ad.PageID).
			Warn("Erro ao buscar a página do anúncio")
		pageCache[ad.PageID] = ""
		return ad
	}

	pageCache[ad.PageID] = page.Name
	ad.PageName = page.Name
	return ad
}

func convertInsight(raw *fbdomain.Insight, entityID string) *domain.Insight {
	insight := domain.EmptyInsight(entityID)

	insight.Spend = decimalToMinorUnits(raw.Spend)
	insight.Impressions = parseCount(raw.Impressions)
	insight.Clicks = parseCount(raw.Clicks)
	insight.Reach = parseCount(raw.Reach)

	if len(raw.Actions) > 0 {
		insight.Actions = convertActions(raw.Actions)
	}
	if len(raw.CostPerActions) > 0 {
		insight.CostPerActions = convertActions(raw.CostPerActions)
	}

	insight.VideoWatchP25 = sumActionValues(raw.VideoP25)
	insight.VideoWatchP50 = sumActionValues(raw.VideoP50)
	insight.VideoWatchP75 = sumActionValues(raw.VideoP75)
	insight.VideoWatchP100 = sumActionValues(raw.VideoP100)
	insight.VideoAvgWatchSecs = sumActionValues(raw.VideoAvgTime)

	return insight
}

func convertActions(raw []fbdomain.Action) []domain.Action {
	actions := make([]domain.Action, 0, len(raw))
	for _, a := range raw {
		actions = append(actions, domain.Action{ActionType: a.ActionType, Value: a.Value})
	}
	return actions
}

// sumActionValues soma os valores de uma lista de ações de vídeo. A Graph API
// normalmente retorna uma única entrada video_view por percentil.
func sumActionValues(actions []fbdomain.Action) int64 {
	var total int64
	for _, a := range actions {
		v, err := strconv.ParseFloat(a.Value, 64)
		if err != nil {
			continue
		}
		total += int64(v)
	}
	return total
}

func parseCount(value string) int64 {
	if value == "" {
		return 0
	}
	v, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		logrus.WithField("value", value).Warn("Contagem inválida retornada pela plataforma")
		return 0
	}
	return v
}

// parseMinorUnits converte uma string de unidades menores em *int64. Strings
// vazias ou inválidas retornam nil.
func parseMinorUnits(value string) *int64 {
	if value == "" {
		return nil
	}
	v, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		logrus.WithField("value", value).Warn("Valor monetário inválido retornado pela plataforma")
		return nil
	}
	return &v
}

// parseBudget é como parseMinorUnits, mas propaga a falha para que a
// campanha degrade para ERROR em vez de silenciar um orçamento corrompido.
func parseBudget(value string) (*int64, error) {
	if value == "" {
		return nil, nil
	}
	v, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("orçamento inválido %q: %w", value, err)
	}
	return &v, nil
}

// decimalToMinorUnits converte o gasto decimal da Graph API ("12.34") para a
// representação interna em unidades menores ("1234").
func decimalToMinorUnits(spend string) string {
	if spend == "" {
		return "0"
	}

	whole, frac, _ := strings.Cut(spend, ".")
	if frac == "" {
		frac = "00"
	} else if len(frac) == 1 {
		frac += "0"
	} else if len(frac) > 2 {
		frac = frac[:2]
	}

	negative := strings.HasPrefix(whole, "-")
	whole = strings.TrimPrefix(whole, "-")

	w, err := strconv.ParseInt(whole, 10, 64)
	if err != nil {
		logrus.WithField("spend", spend).Warn("Gasto inválido retornado pela plataforma")
		return "0"
	}
	f, err := strconv.ParseInt(frac, 10, 64)
	if err != nil {
		logrus.WithField("spend", spend).Warn("Gasto inválido retornado pela plataforma")
		return "0"
	}

	cents := w*100 + f
	if negative {
		cents = -cents
	}
	return strconv.FormatInt(cents, 10)
}
