package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/ads-console-api/infrastructure/repository/mocks"
	"github.com/vfg2006/ads-console-api/internal/domain"
	"github.com/vfg2006/ads-console-api/internal/usecases/exporting"
	exportingmocks "github.com/vfg2006/ads-console-api/internal/usecases/exporting/mocks"
	"go.uber.org/mock/gomock"
)

func newTestService(configRepo *mocks.MockExportConfigRepository, exportService *exportingmocks.MockService) *ExportSyncService {
	return &ExportSyncService{
		config: ExportSyncConfig{
			TickIntervalMinutes:   15,
			DailyWindowMinutes:    14,
			DebounceHours:         12,
			DefaultHourlyInterval: 6,
			SyncEnabled:           true,
		},
		exportConfigRepo: configRepo,
		exportService:    exportService,
	}
}

// Jobs hourly nunca executados disparam em qualquer tick, o que permite
// exercitar o loop sem depender do relógio.
func dueConfig(id string) *domain.ExportConfig {
	return &domain.ExportConfig{
		ID:              id,
		UserID:          "user-1",
		DataType:        domain.ExportDataTypeCampaigns,
		ExportFrequency: domain.ExportFrequencyHourly,
		ExportInterval:  1,
	}
}

func TestExportSyncService_syncDueExports(t *testing.T) {
	tests := []struct {
		name  string
		setup func(configRepo *mocks.MockExportConfigRepository, exportService *exportingmocks.MockService)
	}{
		{
			name: "Job com sucesso grava telemetria de sucesso",
			setup: func(configRepo *mocks.MockExportConfigRepository, exportService *exportingmocks.MockService) {
				cfg := dueConfig("cfg-1")

				configRepo.EXPECT().
					ListEnabled().
					Return([]*domain.ExportConfig{cfg}, nil)

				exportService.EXPECT().
					RunExport(gomock.Any(), cfg).
					Return(42, nil)

				configRepo.EXPECT().
					UpdateTelemetrySuccess("cfg-1", gomock.Any(), 42).
					Return(nil)
			},
		},
		{
			name: "Job com falha grava telemetria de falha",
			setup: func(configRepo *mocks.MockExportConfigRepository, exportService *exportingmocks.MockService) {
				cfg := dueConfig("cfg-1")

				configRepo.EXPECT().
					ListEnabled().
					Return([]*domain.ExportConfig{cfg}, nil)

				exportService.EXPECT().
					RunExport(gomock.Any(), cfg).
					Return(0, exporting.NewExportError(exporting.ErrSheetWrite, "cfg-1", "quota excedida"))

				configRepo.EXPECT().
					UpdateTelemetryFailure("cfg-1", gomock.Any(), gomock.Any()).
					Return(nil)
			},
		},
		{
			name: "Job pulado por pré-requisito não grava telemetria",
			setup: func(configRepo *mocks.MockExportConfigRepository, exportService *exportingmocks.MockService) {
				cfg := dueConfig("cfg-1")

				configRepo.EXPECT().
					ListEnabled().
					Return([]*domain.ExportConfig{cfg}, nil)

				exportService.EXPECT().
					RunExport(gomock.Any(), cfg).
					Return(0, exporting.NewExportError(exporting.ErrNoGoogleAccount, "cfg-1", ""))

				// Nenhuma chamada de telemetria esperada
			},
		},
		{
			name: "Falha de um job não interrompe os demais do tick",
			setup: func(configRepo *mocks.MockExportConfigRepository, exportService *exportingmocks.MockService) {
				failing := dueConfig("cfg-1")
				healthy := dueConfig("cfg-2")

				configRepo.EXPECT().
					ListEnabled().
					Return([]*domain.ExportConfig{failing, healthy}, nil)

				exportService.EXPECT().
					RunExport(gomock.Any(), failing).
					Return(0, exporting.NewExportError(exporting.ErrUpstreamFetch, "cfg-1", "timeout"))

				configRepo.EXPECT().
					UpdateTelemetryFailure("cfg-1", gomock.Any(), gomock.Any()).
					Return(nil)

				exportService.EXPECT().
					RunExport(gomock.Any(), healthy).
					Return(7, nil)

				configRepo.EXPECT().
					UpdateTelemetrySuccess("cfg-2", gomock.Any(), 7).
					Return(nil)
			},
		},
		{
			name: "Job fora do horário não executa",
			setup: func(configRepo *mocks.MockExportConfigRepository, exportService *exportingmocks.MockService) {
				notDue := dueConfig("cfg-1")
				lastRun := time.Now().Add(-10 * time.Minute)
				notDue.LastExportAt = &lastRun

				configRepo.EXPECT().
					ListEnabled().
					Return([]*domain.ExportConfig{notDue}, nil)

				// Nenhuma execução esperada
			},
		},
		{
			name: "Erro ao listar jobs encerra o tick sem executar nada",
			setup: func(configRepo *mocks.MockExportConfigRepository, exportService *exportingmocks.MockService) {
				configRepo.EXPECT().
					ListEnabled().
					Return(nil, errors.New("banco indisponível"))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			configRepo := mocks.NewMockExportConfigRepository(ctrl)
			exportService := exportingmocks.NewMockService(ctrl)
			tt.setup(configRepo, exportService)

			service := newTestService(configRepo, exportService)
			service.syncDueExports(context.Background())
		})
	}
}

func TestExportSyncService_GetStatusDuringTick(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	configRepo := mocks.NewMockExportConfigRepository(ctrl)
	exportService := exportingmocks.NewMockService(ctrl)

	cfg := dueConfig("cfg-1")
	configRepo.EXPECT().ListEnabled().Return([]*domain.ExportConfig{cfg}, nil)
	exportService.EXPECT().RunExport(gomock.Any(), cfg).Return(5, nil)
	configRepo.EXPECT().UpdateTelemetrySuccess("cfg-1", gomock.Any(), 5).Return(nil)

	service := newTestService(configRepo, exportService)

	done := make(chan struct{})
	go func() {
		defer close(done)
		service.syncDueExports(context.Background())
	}()

	// Leituras concorrentes ao tick: os timestamps do agendador são lidos sob
	// o mesmo mutex que os protege na escrita.
	for i := 0; i < 50; i++ {
		status := service.GetStatus()
		assert.Contains(t, status, "last_sync_started_at")
		assert.Contains(t, status, "last_sync_completed_at")
	}

	<-done

	status := service.GetStatus()
	completedAt, ok := status["last_sync_completed_at"].(time.Time)
	assert.True(t, ok)
	assert.False(t, completedAt.IsZero())
}

func TestExportSyncService_RunExportByID(t *testing.T) {
	tests := []struct {
		name        string
		setup       func(configRepo *mocks.MockExportConfigRepository, exportService *exportingmocks.MockService)
		expectError string
	}{
		{
			name: "Executa o job e grava telemetria de sucesso",
			setup: func(configRepo *mocks.MockExportConfigRepository, exportService *exportingmocks.MockService) {
				cfg := dueConfig("cfg-1")

				configRepo.EXPECT().
					GetByID("cfg-1").
					Return(cfg, nil)

				exportService.EXPECT().
					RunExport(gomock.Any(), cfg).
					Return(3, nil)

				configRepo.EXPECT().
					UpdateTelemetrySuccess("cfg-1", gomock.Any(), 3).
					Return(nil)
			},
		},
		{
			name: "Job inexistente retorna erro",
			setup: func(configRepo *mocks.MockExportConfigRepository, exportService *exportingmocks.MockService) {
				configRepo.EXPECT().
					GetByID("cfg-1").
					Return(nil, nil)
			},
			expectError: "não encontrado",
		},
		{
			name: "Erro de busca é propagado",
			setup: func(configRepo *mocks.MockExportConfigRepository, exportService *exportingmocks.MockService) {
				configRepo.EXPECT().
					GetByID("cfg-1").
					Return(nil, errors.New("banco indisponível"))
			},
			expectError: "banco indisponível",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			configRepo := mocks.NewMockExportConfigRepository(ctrl)
			exportService := exportingmocks.NewMockService(ctrl)
			tt.setup(configRepo, exportService)

			service := newTestService(configRepo, exportService)
			err := service.RunExportByID(context.Background(), "cfg-1")

			if tt.expectError != "" {
				assert.ErrorContains(t, err, tt.expectError)
				return
			}
			assert.NoError(t, err)
		})
	}
}
