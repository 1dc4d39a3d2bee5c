package scheduler

import (
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ads-console-api/internal/domain"
)

// DuenessRules parametriza a avaliação de agendamento. Os valores vêm da
// configuração do serviço; os padrões refletem o comportamento do console.
type DuenessRules struct {
	DailyWindowMinutes    int // janela de disparo em torno do minuto alvo (modo daily)
	DebounceHours         int // intervalo mínimo entre execuções no modo daily
	DefaultHourlyInterval int // intervalo em horas quando o job não define um (modo hourly)
}

// IsDue decide se um job de exportação deve disparar no instante informado.
// Todas as regras são puras: o chamador injeta o relógio.
//
// Modo daily: dispara quando a hora local bate com a configurada e o minuto
// está dentro da janela (|minuto−alvo| < janela), no fuso da conta quando o
// job pede e o fuso é válido (fallback silencioso para o fuso do processo).
// O debounce impede disparo duplo no mesmo dia quando ticks consecutivos caem
// dentro da janela.
//
// Modo hourly: dispara quando o tempo desde a última execução alcança o
// intervalo configurado. Jobs nunca executados contam a partir do epoch e
// portanto disparam no primeiro tick.
func IsDue(cfg *domain.ExportConfig, now time.Time, rules DuenessRules) bool {
	switch cfg.ExportFrequency {
	case domain.ExportFrequencyHourly:
		return isDueHourly(cfg, now, rules)
	default:
		return isDueDaily(cfg, now, rules)
	}
}

func isDueDaily(cfg *domain.ExportConfig, now time.Time, rules DuenessRules) bool {
	local := now.In(resolveLocation(cfg))

	if local.Hour() != cfg.ExportHour {
		return false
	}

	delta := local.Minute() - cfg.ExportMinute
	if delta < 0 {
		delta = -delta
	}
	if delta >= rules.DailyWindowMinutes {
		return false
	}

	return !withinDebounce(cfg.LastExportAt, now, rules.DebounceHours)
}

func isDueHourly(cfg *domain.ExportConfig, now time.Time, rules DuenessRules) bool {
	interval := cfg.ExportInterval
	if interval <= 0 {
		interval = rules.DefaultHourlyInterval
	}

	var last time.Time // zero: job nunca executado dispara no primeiro tick
	if cfg.LastExportAt != nil {
		last = *cfg.LastExportAt
	}

	return now.Sub(last) >= time.Duration(interval)*time.Hour
}

// withinDebounce indica se a última execução é recente demais para um novo
// disparo.
func withinDebounce(lastExportAt *time.Time, now time.Time, debounceHours int) bool {
	if lastExportAt == nil {
		return false
	}
	return now.Sub(*lastExportAt) < time.Duration(debounceHours)*time.Hour
}

// resolveLocation resolve o fuso horário de avaliação do job. Fuso inválido
// não derruba o job: cai para o fuso do processo com aviso.
func resolveLocation(cfg *domain.ExportConfig) *time.Location {
	if !cfg.UseAdAccountTimezone || cfg.AdAccountTimezone == "" {
		return time.Local
	}

	loc, err := time.LoadLocation(cfg.AdAccountTimezone)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"config_id": cfg.ID,
			"timezone":  cfg.AdAccountTimezone,
		}).Warn("Fuso horário inválido na configuração de exportação, usando o fuso do processo")
		return time.Local
	}

	return loc
}
