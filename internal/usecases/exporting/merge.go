package exporting

import (
	"github.com/vfg2006/ads-console-api/internal/domain"
)

// BuildInsightIndex indexa os insights pelo ID da entidade para mesclagem em
// O(n+m), evitando a iteração aninhada entidade×insight.
func BuildInsightIndex(insights []*domain.Insight) map[string]*domain.Insight {
	index := make(map[string]*domain.Insight, len(insights))
	for _, insight := range insights {
		if insight == nil || insight.EntityID == "" {
			continue
		}
		index[insight.EntityID] = insight
	}
	return index
}

// InsightFor retorna o insight da entidade ou o padrão zerado quando não há
// métricas para o período. Nunca retorna nil.
func InsightFor(index map[string]*domain.Insight, entityID string) *domain.Insight {
	if insight, ok := index[entityID]; ok {
		return insight
	}
	return domain.EmptyInsight(entityID)
}
