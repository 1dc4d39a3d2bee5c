package exporting

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/ads-console-api/internal/domain"
)

func campaignRecord(name, spend string) *ExportRecord {
	insight := domain.EmptyInsight("cmp-1")
	insight.Spend = spend

	return &ExportRecord{
		Account: &domain.AdAccount{ID: "acc-1", Name: "Conta Teste"},
		Campaign: &domain.Campaign{
			ID:             "cmp-1",
			Name:           name,
			DeliveryStatus: domain.StatusActive,
		},
		Insight: insight,
	}
}

func TestMapRows(t *testing.T) {
	asOf := time.Date(2024, 3, 10, 9, 15, 0, 0, time.UTC)

	tests := []struct {
		name        string
		records     []*ExportRecord
		mapping     map[string]string
		includeDate bool
		expected    [][]string
		expectError error
	}{
		{
			name:    "Mapeamento básico posiciona campos nas colunas corretas",
			records: []*ExportRecord{campaignRecord("Campanha A", "1234")},
			mapping: map[string]string{
				"name":  "B",
				"spend": "K",
			},
			expected: [][]string{
				{"", "Name", "", "", "", "", "", "", "", "", "Spend"},
				{"", "Campanha A", "", "", "", "", "", "", "", "", "12.34"},
			},
		},
		{
			name:        "includeDate reserva a coluna A com a data de referência",
			records:     []*ExportRecord{campaignRecord("Campanha A", "500")},
			mapping:     map[string]string{"name": "B"},
			includeDate: true,
			expected: [][]string{
				{"Date", "Name"},
				{"10/03/2024", "Campanha A"},
			},
		},
		{
			name:    "Campos com skip são ignorados",
			records: []*ExportRecord{campaignRecord("Campanha A", "0")},
			mapping: map[string]string{
				"name":  "A",
				"spend": "skip",
			},
			expected: [][]string{
				{"Name"},
				{"Campanha A"},
			},
		},
		{
			name:    "Letra de coluna inválida é ignorada com aviso",
			records: []*ExportRecord{campaignRecord("Campanha A", "0")},
			mapping: map[string]string{
				"name":  "A",
				"spend": "AA",
			},
			expected: [][]string{
				{"Name"},
				{"Campanha A"},
			},
		},
		{
			name:    "Campo desconhecido é ignorado com aviso",
			records: []*ExportRecord{campaignRecord("Campanha A", "0")},
			mapping: map[string]string{
				"name":        "A",
				"ghostMetric": "B",
			},
			expected: [][]string{
				{"Name"},
				{"Campanha A"},
			},
		},
		{
			name:    "Valores monetários saem com duas casas decimais",
			records: []*ExportRecord{campaignRecord("Campanha A", "1234")},
			mapping: map[string]string{"spend": "A"},
			expected: [][]string{
				{"Spend"},
				{"12.34"},
			},
		},
		{
			name: "Tempo assistido sai como mm:ss",
			records: func() []*ExportRecord {
				record := campaignRecord("Campanha A", "0")
				record.Insight.VideoAvgWatchSecs = 125
				return []*ExportRecord{record}
			}(),
			mapping: map[string]string{"watchTime": "A"},
			expected: [][]string{
				{"Watch Time"},
				{"02:05"},
			},
		},
		{
			name: "Campos mapeados na mesma coluna vencem em ordem alfabética",
			records: []*ExportRecord{
				campaignRecord("Campanha A", "1234"),
			},
			mapping: map[string]string{
				"name":  "A",
				"spend": "A",
			},
			// "spend" vem depois de "name" na ordem das chaves e sobrescreve.
			expected: [][]string{
				{"Spend"},
				{"12.34"},
			},
		},
		{
			name:        "Mapeamento sem colunas válidas falha",
			records:     []*ExportRecord{campaignRecord("Campanha A", "0")},
			mapping:     map[string]string{"name": "skip"},
			expectError: ErrRowTransform,
		},
		{
			name:        "Mapeamento vazio com includeDate produz só a coluna de data",
			records:     []*ExportRecord{campaignRecord("Campanha A", "0")},
			mapping:     map[string]string{},
			includeDate: true,
			expected: [][]string{
				{"Date"},
				{"10/03/2024"},
			},
		},
		{
			name:    "Sem registros produz apenas o cabeçalho",
			records: []*ExportRecord{},
			mapping: map[string]string{"name": "A"},
			expected: [][]string{
				{"Name"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			values, err := MapRows(tt.records, tt.mapping, tt.includeDate, asOf)

			if tt.expectError != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.expectError)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.expected, values)
		})
	}
}

func TestMapRows_TrimsTrailingBlanks(t *testing.T) {
	record := campaignRecord("Campanha A", "0")

	values, err := MapRows([]*ExportRecord{record}, map[string]string{
		"name":           "C",
		"deliveryStatus": "F",
	}, false, time.Now())

	require.NoError(t, err)
	require.Len(t, values, 2)

	// As linhas terminam na última coluna preenchida (F = índice 5)
	assert.Len(t, values[0], 6)
	assert.Len(t, values[1], 6)
	assert.Equal(t, "Delivery Status", values[0][5])
	assert.Equal(t, string(domain.StatusActive), values[1][5])
}
