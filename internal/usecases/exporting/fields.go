package exporting

import (
	"fmt"
	"strconv"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ads-console-api/internal/domain"
)

// ExportRecord é uma linha achatada da hierarquia já mesclada com insights.
// Apenas os níveis pertinentes ao dataType do job ficam preenchidos: uma
// exportação de anúncios carrega Ad + AdSet + Campaign + Account; uma de
// contas carrega apenas Account.
type ExportRecord struct {
	Account  *domain.AdAccount
	Campaign *domain.Campaign
	AdSet    *domain.AdSet
	Ad       *domain.Ad
	Insight  *domain.Insight
}

// Classes de formatação de valores de célula.
const (
	formatPlain     = "plain"
	formatMoney     = "money"     // unidades menores ÷ 100, duas casas
	formatWatchTime = "watchtime" // segundos como mm:ss
)

// fieldSpec descreve um campo exportável: rótulo de cabeçalho, classe de
// formatação e extrator sobre o registro achatado.
type fieldSpec struct {
	Label   string
	Format  string
	Extract func(*ExportRecord) (string, bool)
}

// DateFieldLabel é o rótulo da coluna de data reservada (coluna A).
const DateFieldLabel = "Date"

// fieldRegistry mapeia as chaves de campo aceitas em columnMapping.
var fieldRegistry = map[string]fieldSpec{
	"name": {Label: "Name", Format: formatPlain, Extract: func(r *ExportRecord) (string, bool) {
		switch {
		case r.Ad != nil:
			return r.Ad.Name, true
		case r.AdSet != nil:
			return r.AdSet.Name, true
		case r.Campaign != nil:
			return r.Campaign.Name, true
		case r.Account != nil:
			return r.Account.Name, true
		}
		return "", false
	}},
	"deliveryStatus": {Label: "Delivery Status", Format: formatPlain, Extract: func(r *ExportRecord) (string, bool) {
		switch {
		case r.Ad != nil:
			return string(r.Ad.DeliveryStatus), true
		case r.AdSet != nil:
			return string(r.AdSet.DeliveryStatus), true
		case r.Campaign != nil:
			return string(r.Campaign.DeliveryStatus), true
		case r.Account != nil:
			return string(r.Account.DeliveryStatus), true
		}
		return "", false
	}},
	"effectiveStatus": {Label: "Effective Status", Format: formatPlain, Extract: func(r *ExportRecord) (string, bool) {
		switch {
		case r.Ad != nil:
			return r.Ad.EffectiveStatus, true
		case r.AdSet != nil:
			return r.AdSet.EffectiveStatus, true
		case r.Campaign != nil:
			return r.Campaign.EffectiveStatus, true
		}
		return "", false
	}},
	"objective": {Label: "Objective", Format: formatPlain, Extract: func(r *ExportRecord) (string, bool) {
		if r.Campaign == nil {
			return "", false
		}
		return r.Campaign.Objective, true
	}},
	"budget": {Label: "Budget", Format: formatMoney, Extract: func(r *ExportRecord) (string, bool) {
		daily, lifetime := resolvedBudget(r)
		if daily != nil {
			return strconv.FormatInt(*daily, 10), true
		}
		if lifetime != nil {
			return strconv.FormatInt(*lifetime, 10), true
		}
		return "", false
	}},
	"budgetSource": {Label: "Budget Source", Format: formatPlain, Extract: func(r *ExportRecord) (string, bool) {
		if r.Ad == nil {
			return "", false
		}
		return string(r.Ad.BudgetSource), true
	}},
	"currency": {Label: "Currency", Format: formatPlain, Extract: func(r *ExportRecord) (string, bool) {
		if r.Account == nil {
			return "", false
		}
		return r.Account.Currency, true
	}},
	"timezone": {Label: "Timezone", Format: formatPlain, Extract: func(r *ExportRecord) (string, bool) {
		if r.Account == nil {
			return "", false
		}
		return r.Account.Timezone, true
	}},
	"country": {Label: "Country", Format: formatPlain, Extract: func(r *ExportRecord) (string, bool) {
		if r.Account == nil {
			return "", false
		}
		return r.Account.Country, true
	}},
	"paymentMethod": {Label: "Payment Method", Format: formatPlain, Extract: func(r *ExportRecord) (string, bool) {
		if r.Account == nil {
			return "", false
		}
		return r.Account.PaymentMethod, true
	}},
	"spendCap": {Label: "Spend Cap", Format: formatMoney, Extract: func(r *ExportRecord) (string, bool) {
		if r.Account == nil || r.Account.SpendCap == nil {
			return "", false
		}
		return strconv.FormatInt(*r.Account.SpendCap, 10), true
	}},
	"amountSpent": {Label: "Amount Spent", Format: formatMoney, Extract: func(r *ExportRecord) (string, bool) {
		if r.Account == nil {
			return "", false
		}
		return strconv.FormatInt(r.Account.AmountSpent, 10), true
	}},
	"activeAdsCount": {Label: "Active Ads", Format: formatPlain, Extract: func(r *ExportRecord) (string, bool) {
		if r.Account == nil {
			return "", false
		}
		return strconv.Itoa(r.Account.ActiveAdsCount), true
	}},
	"pageId": {Label: "Page ID", Format: formatPlain, Extract: func(r *ExportRecord) (string, bool) {
		if r.Ad == nil {
			return "", false
		}
		return r.Ad.PageID, true
	}},
	"pageName": {Label: "Page Name", Format: formatPlain, Extract: func(r *ExportRecord) (string, bool) {
		if r.Ad == nil {
			return "", false
		}
		return r.Ad.PageName, true
	}},
	"thumbnailUrl": {Label: "Thumbnail", Format: formatPlain, Extract: func(r *ExportRecord) (string, bool) {
		if r.Ad == nil {
			return "", false
		}
		return r.Ad.ThumbnailURL, true
	}},
	"spend": {Label: "Spend", Format: formatMoney, Extract: func(r *ExportRecord) (string, bool) {
		if r.Insight == nil {
			return "0", true
		}
		return r.Insight.Spend, true
	}},
	"impressions": {Label: "Impressions", Format: formatPlain, Extract: insightCount(func(i *domain.Insight) int64 { return i.Impressions })},
	"clicks":      {Label: "Clicks", Format: formatPlain, Extract: insightCount(func(i *domain.Insight) int64 { return i.Clicks })},
	"reach":       {Label: "Reach", Format: formatPlain, Extract: insightCount(func(i *domain.Insight) int64 { return i.Reach })},
	"videoWatch25": {Label: "Video 25%", Format: formatPlain,
		Extract: insightCount(func(i *domain.Insight) int64 { return i.VideoWatchP25 })},
	"videoWatch50": {Label: "Video 50%", Format: formatPlain,
		Extract: insightCount(func(i *domain.Insight) int64 { return i.VideoWatchP50 })},
	"videoWatch75": {Label: "Video 75%", Format: formatPlain,
		Extract: insightCount(func(i *domain.Insight) int64 { return i.VideoWatchP75 })},
	"videoWatch100": {Label: "Video 100%", Format: formatPlain,
		Extract: insightCount(func(i *domain.Insight) int64 { return i.VideoWatchP100 })},
	"watchTime": {Label: "Watch Time", Format: formatWatchTime,
		Extract: insightCount(func(i *domain.Insight) int64 { return i.VideoAvgWatchSecs })},
}

func insightCount(get func(*domain.Insight) int64) func(*ExportRecord) (string, bool) {
	return func(r *ExportRecord) (string, bool) {
		if r.Insight == nil {
			return "0", true
		}
		return strconv.FormatInt(get(r.Insight), 10), true
	}
}

// resolvedBudget devolve o orçamento do nível mais específico do registro,
// respeitando a herança já resolvida nos anúncios.
func resolvedBudget(r *ExportRecord) (daily, lifetime *int64) {
	switch {
	case r.Ad != nil:
		return r.Ad.DailyBudget, r.Ad.LifetimeBudget
	case r.AdSet != nil:
		return r.AdSet.DailyBudget, r.AdSet.LifetimeBudget
	case r.Campaign != nil:
		return r.Campaign.DailyBudget, r.Campaign.LifetimeBudget
	}
	return nil, nil
}

// formatValue aplica a classe de formatação ao valor bruto extraído.
func formatValue(raw, format string) string {
	switch format {
	case formatMoney:
		return formatMinorUnits(raw)
	case formatWatchTime:
		secs, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			logrus.WithField("value", raw).Warn("Valor de tempo assistido não numérico")
			return raw
		}
		return fmt.Sprintf("%02d:%02d", secs/60, secs%60)
	default:
		return raw
	}
}

// formatMinorUnits converte um inteiro em unidades menores (centavos) para o
// valor monetário com duas casas decimais.
func formatMinorUnits(raw string) string {
	cents, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		logrus.WithField("value", raw).Warn("Valor monetário não inteiro, mantendo original")
		return raw
	}
	return fmt.Sprintf("%.2f", float64(cents)/100)
}
