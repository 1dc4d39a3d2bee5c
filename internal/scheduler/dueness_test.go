package scheduler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/ads-console-api/internal/domain"
)

func defaultRules() DuenessRules {
	return DuenessRules{
		DailyWindowMinutes:    14,
		DebounceHours:         12,
		DefaultHourlyInterval: 6,
	}
}

func timePtr(t time.Time) *time.Time {
	return &t
}

func TestIsDue_Daily(t *testing.T) {
	// Job diário agendado para as 09:15
	baseConfig := func() *domain.ExportConfig {
		return &domain.ExportConfig{
			ID:              "cfg-daily",
			ExportFrequency: domain.ExportFrequencyDaily,
			ExportHour:      9,
			ExportMinute:    15,
		}
	}

	tests := []struct {
		name     string
		now      time.Time
		modify   func(cfg *domain.ExportConfig)
		expected bool
	}{
		{
			name:     "Dispara dentro da janela - 09:10 para alvo 09:15",
			now:      time.Date(2024, 3, 10, 9, 10, 0, 0, time.Local),
			expected: true,
		},
		{
			name:     "Dispara no minuto exato",
			now:      time.Date(2024, 3, 10, 9, 15, 0, 0, time.Local),
			expected: true,
		},
		{
			name:     "Não dispara fora da janela - 09:29 para alvo 09:15",
			now:      time.Date(2024, 3, 10, 9, 29, 0, 0, time.Local),
			expected: false,
		},
		{
			name:     "Não dispara em hora diferente",
			now:      time.Date(2024, 3, 10, 10, 15, 0, 0, time.Local),
			expected: false,
		},
		{
			name: "Não dispara dentro do debounce de 12 horas",
			now:  time.Date(2024, 3, 10, 9, 15, 0, 0, time.Local),
			modify: func(cfg *domain.ExportConfig) {
				cfg.LastExportAt = timePtr(time.Date(2024, 3, 10, 9, 1, 0, 0, time.Local))
			},
			expected: false,
		},
		{
			name: "Dispara quando a última execução passou do debounce",
			now:  time.Date(2024, 3, 10, 9, 15, 0, 0, time.Local),
			modify: func(cfg *domain.ExportConfig) {
				cfg.LastExportAt = timePtr(time.Date(2024, 3, 9, 9, 14, 0, 0, time.Local))
			},
			expected: true,
		},
		{
			name: "Avalia no fuso da conta quando configurado",
			// 12:10 UTC = 09:10 em São Paulo (UTC-3)
			now: time.Date(2024, 3, 10, 12, 10, 0, 0, time.UTC),
			modify: func(cfg *domain.ExportConfig) {
				cfg.UseAdAccountTimezone = true
				cfg.AdAccountTimezone = "America/Sao_Paulo"
			},
			expected: true,
		},
		{
			name: "Fuso inválido cai para o fuso do processo",
			now:  time.Date(2024, 3, 10, 9, 15, 0, 0, time.Local),
			modify: func(cfg *domain.ExportConfig) {
				cfg.UseAdAccountTimezone = true
				cfg.AdAccountTimezone = "Marte/Olympus_Mons"
			},
			expected: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := baseConfig()
			if tt.modify != nil {
				tt.modify(cfg)
			}

			assert.Equal(t, tt.expected, IsDue(cfg, tt.now, defaultRules()))
		})
	}
}

func TestIsDue_Hourly(t *testing.T) {
	now := time.Date(2024, 3, 10, 18, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		config   *domain.ExportConfig
		expected bool
	}{
		{
			name: "Dispara quando o intervalo foi alcançado - 7h para intervalo de 6h",
			config: &domain.ExportConfig{
				ExportFrequency: domain.ExportFrequencyHourly,
				ExportInterval:  6,
				LastExportAt:    timePtr(now.Add(-7 * time.Hour)),
			},
			expected: true,
		},
		{
			name: "Não dispara antes do intervalo - 5h para intervalo de 6h",
			config: &domain.ExportConfig{
				ExportFrequency: domain.ExportFrequencyHourly,
				ExportInterval:  6,
				LastExportAt:    timePtr(now.Add(-5 * time.Hour)),
			},
			expected: false,
		},
		{
			name: "Dispara exatamente no intervalo",
			config: &domain.ExportConfig{
				ExportFrequency: domain.ExportFrequencyHourly,
				ExportInterval:  6,
				LastExportAt:    timePtr(now.Add(-6 * time.Hour)),
			},
			expected: true,
		},
		{
			name: "Job nunca executado dispara no primeiro tick",
			config: &domain.ExportConfig{
				ExportFrequency: domain.ExportFrequencyHourly,
				ExportInterval:  6,
			},
			expected: true,
		},
		{
			name: "Intervalo não configurado usa o padrão de 6 horas",
			config: &domain.ExportConfig{
				ExportFrequency: domain.ExportFrequencyHourly,
				LastExportAt:    timePtr(now.Add(-5 * time.Hour)),
			},
			expected: false,
		},
		{
			name: "Intervalo de 1 hora dispara a cada hora",
			config: &domain.ExportConfig{
				ExportFrequency: domain.ExportFrequencyHourly,
				ExportInterval:  1,
				LastExportAt:    timePtr(now.Add(-61 * time.Minute)),
			},
			expected: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsDue(tt.config, now, defaultRules()))
		})
	}
}
