package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ads-console-api/infrastructure/repository"
	"github.com/vfg2006/ads-console-api/internal/config"
	"github.com/vfg2006/ads-console-api/internal/domain"
	"github.com/vfg2006/ads-console-api/internal/usecases/exporting"
	"github.com/vfg2006/ads-console-api/pkg/utils"
)

// ErrExportConfigNotFound indica que o job de exportação solicitado não existe
var ErrExportConfigNotFound = errors.New("job de exportação não encontrado")

// ExportSyncConfig representa a configuração do agendador de exportações
type ExportSyncConfig struct {
	TickIntervalMinutes   int
	DailyWindowMinutes    int
	DebounceHours         int
	DefaultHourlyInterval int
	SyncEnabled           bool
}

// ExportSyncService gerencia o tick periódico que avalia e executa os jobs de
// exportação para planilha
type ExportSyncService struct {
	scheduler           *gocron.Scheduler
	config              ExportSyncConfig
	exportConfigRepo    repository.ExportConfigRepository
	exportService       exporting.Service
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
}

// NewExportSyncService cria uma nova instância do agendador de exportações
func NewExportSyncService(
	exportConfigRepo repository.ExportConfigRepository,
	exportService exporting.Service,
	appConfig *config.Config,
) *ExportSyncService {
	syncConfig := ExportSyncConfig{
		TickIntervalMinutes:   appConfig.ExportSync.TickIntervalMinutes,
		DailyWindowMinutes:    appConfig.ExportSync.DailyWindowMinutes,
		DebounceHours:         appConfig.ExportSync.DebounceHours,
		DefaultHourlyInterval: appConfig.ExportSync.DefaultHourlyInterval,
		SyncEnabled:           appConfig.ExportSync.Enabled,
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"tick_interval_minutes":   syncConfig.TickIntervalMinutes,
		"daily_window_minutes":    syncConfig.DailyWindowMinutes,
		"debounce_hours":          syncConfig.DebounceHours,
		"default_hourly_interval": syncConfig.DefaultHourlyInterval,
		"sync_enabled":            syncConfig.SyncEnabled,
	}).Info("Configuração do agendador de exportações carregada")

	return &ExportSyncService{
		scheduler:        scheduler,
		config:           syncConfig,
		exportConfigRepo: exportConfigRepo,
		exportService:    exportService,
		syncRunning:      false,
	}
}

// Start inicia o agendador
func (s *ExportSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Agendador de exportações desabilitado por configuração")
		return nil
	}

	logrus.WithField("tick_interval_minutes", s.config.TickIntervalMinutes).
		Info("Iniciando agendador de exportações")

	_, err := s.scheduler.Every(s.config.TickIntervalMinutes).Minutes().Do(func() {
		s.syncDueExports(ctx)
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar o tick de exportações: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de exportações")
		s.scheduler.Stop()
	}()

	return nil
}

// syncDueExports avalia todos os jobs habilitados e executa os que estão no
// horário. Um tick que ainda estiver em andamento faz o próximo ser ignorado
// por inteiro.
func (s *ExportSyncService) syncDueExports(ctx context.Context) {
	startTime := time.Now()

	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Tick de exportações já em andamento, ignorando")
		return
	}
	s.syncRunning = true
	s.lastSyncStartedAt = startTime
	s.syncMutex.Unlock()

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.syncMutex.Unlock()
	}()

	logrus.Info("Iniciando tick de avaliação dos jobs de exportação")

	configs, err := s.exportConfigRepo.ListEnabled()
	if err != nil {
		logrus.WithError(err).Error("Erro ao buscar os jobs de exportação habilitados")
		return
	}

	if len(configs) == 0 {
		logrus.Info("Nenhum job de exportação habilitado")
		return
	}

	rules := s.duenessRules()
	executed := 0

	for _, cfg := range configs {
		if ctx.Err() != nil {
			logrus.Info("Tick de exportações interrompido pelo encerramento do serviço")
			break
		}

		if !IsDue(cfg, time.Now(), rules) {
			continue
		}

		executed++
		s.runExport(ctx, cfg)
	}

	duration := time.Since(startTime)
	logrus.WithFields(logrus.Fields{
		"duration": duration.String(),
		"jobs":     len(configs),
		"executed": executed,
	}).Info("Tick de exportações concluído")

	s.syncMutex.Lock()
	s.lastSyncCompletedAt = time.Now()
	s.syncMutex.Unlock()
}

// runExport executa um job isoladamente: a falha de um job não interrompe os
// demais do tick. O resultado é gravado na telemetria do job, exceto quando o
// job é pulado por pré-requisito ausente.
func (s *ExportSyncService) runExport(ctx context.Context, cfg *domain.ExportConfig) {
	runID, err := utils.GenerateID()
	if err != nil {
		runID = "unknown"
	}

	logger := logrus.WithFields(logrus.Fields{
		"run_id":    runID,
		"config_id": cfg.ID,
		"user_id":   cfg.UserID,
		"data_type": cfg.DataType,
		"frequency": cfg.ExportFrequency,
	})

	logger.Info("Executando job de exportação")
	startTime := time.Now()

	rows, err := s.exportService.RunExport(ctx, cfg)
	completedAt := time.Now()

	if err != nil {
		if exporting.IsSkip(err) {
			// Pré-requisito ausente não é falha do job: nada de telemetria.
			logger.WithError(err).Info("Job de exportação pulado por pré-requisito ausente")
			return
		}

		logger.WithError(err).Error("Erro ao executar job de exportação")

		if telemetryErr := s.exportConfigRepo.UpdateTelemetryFailure(cfg.ID, completedAt, err.Error()); telemetryErr != nil {
			logger.WithError(telemetryErr).Error("Erro ao gravar telemetria de falha do job")
		}
		return
	}

	if telemetryErr := s.exportConfigRepo.UpdateTelemetrySuccess(cfg.ID, completedAt, rows); telemetryErr != nil {
		logger.WithError(telemetryErr).Error("Erro ao gravar telemetria de sucesso do job")
	}

	logger.WithFields(logrus.Fields{
		"rows":     rows,
		"duration": completedAt.Sub(startTime).String(),
	}).Info("Job de exportação concluído com sucesso")
}

// RunExportByID executa imediatamente um job específico ("exportar agora"),
// ignorando a avaliação de horário. A telemetria é gravada como em um tick.
func (s *ExportSyncService) RunExportByID(ctx context.Context, configID string) error {
	cfg, err := s.exportConfigRepo.GetByID(configID)
	if err != nil {
		return errors.Wrapf(err, "erro ao buscar o job de exportação %s", configID)
	}
	if cfg == nil {
		return errors.Wrapf(ErrExportConfigNotFound, "job %s", configID)
	}

	logrus.WithField("config_id", configID).Info("Execução manual de job de exportação solicitada")
	s.runExport(ctx, cfg)
	return nil
}

// TriggerManualSync inicia manualmente um tick de avaliação dos jobs
func (s *ExportSyncService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Tick de exportações já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando tick manual de exportações")
	go s.syncDueExports(context.Background())
}

// GetStatus retorna o status atual do agendador
func (s *ExportSyncService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	lastStartedAt := s.lastSyncStartedAt
	lastCompletedAt := s.lastSyncCompletedAt
	s.syncMutex.Unlock()

	return map[string]any{
		"sync_enabled":            s.config.SyncEnabled,
		"tick_interval_minutes":   s.config.TickIntervalMinutes,
		"daily_window_minutes":    s.config.DailyWindowMinutes,
		"debounce_hours":          s.config.DebounceHours,
		"default_hourly_interval": s.config.DefaultHourlyInterval,
		"last_sync_started_at":    lastStartedAt,
		"last_sync_completed_at":  lastCompletedAt,
	}
}

func (s *ExportSyncService) duenessRules() DuenessRules {
	return DuenessRules{
		DailyWindowMinutes:    s.config.DailyWindowMinutes,
		DebounceHours:         s.config.DebounceHours,
		DefaultHourlyInterval: s.config.DefaultHourlyInterval,
	}
}
