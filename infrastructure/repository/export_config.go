package repository

import (
	"database/sql"
	"time"

	"github.com/Masterminds/squirrel"
	jsoniter "github.com/json-iterator/go"
	"github.com/lib/pq"
	_ "github.com/lib/pq"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ads-console-api/infrastructure/database/postgres"
	"github.com/vfg2006/ads-console-api/internal/domain"
)

const exportConfigsTable = "export_configs ec"

var exportConfigColumns = []string{
	"ec.id", "ec.user_id", "ec.spreadsheet_id", "ec.sheet_name", "ec.data_type",
	"ec.column_mapping", "ec.auto_export_enabled", "ec.export_frequency",
	"ec.export_hour", "ec.export_minute", "ec.export_interval",
	"ec.use_ad_account_timezone", "ec.ad_account_timezone",
	"ec.append_mode", "ec.include_date", "ec.account_ids",
	"ec.last_export_at", "ec.last_export_status", "ec.last_export_rows", "ec.last_export_error",
}

type ExportConfigRepository interface {
	ListEnabled() ([]*domain.ExportConfig, error)
	GetByID(configID string) (*domain.ExportConfig, error)
	UpdateTelemetrySuccess(configID string, exportedAt time.Time, rows int) error
	UpdateTelemetryFailure(configID string, exportedAt time.Time, message string) error
}

type exportConfigRepository struct {
	conn *postgres.Connection
}

func NewExportConfigRepository(conn *postgres.Connection) ExportConfigRepository {
	return &exportConfigRepository{
		conn: conn,
	}
}

// ListEnabled retorna as configurações com exportação automática habilitada,
// candidatas à avaliação de agendamento em cada tick.
func (r *exportConfigRepository) ListEnabled() ([]*domain.ExportConfig, error) {
	configsSQL, configsArgs, err := squirrel.
		Select(exportConfigColumns...).
		From(exportConfigsTable).
		Where(squirrel.Eq{"ec.auto_export_enabled": true}).
		OrderBy("ec.id ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.conn.Query(configsSQL, configsArgs...)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	defer rows.Close()

	configs := make([]*domain.ExportConfig, 0)
	for rows.Next() {
		config, err := r.deserializeConfig(rows)
		if err != nil {
			return nil, err
		}
		configs = append(configs, config)
	}

	return configs, rows.Err()
}

func (r *exportConfigRepository) GetByID(configID string) (*domain.ExportConfig, error) {
	configSQL, configArgs, err := squirrel.
		Select(exportConfigColumns...).
		From(exportConfigsTable).
		Where(squirrel.Eq{"ec.id": configID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.conn.Query(configSQL, configArgs...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if !rows.Next() {
		return nil, rows.Err()
	}

	return r.deserializeConfig(rows)
}

func (r *exportConfigRepository) deserializeConfig(rows *sql.Rows) (*domain.ExportConfig, error) {
	config := &domain.ExportConfig{}

	var (
		mappingJSON []byte
		accountIDs  pq.StringArray
	)

	if err := rows.Scan(
		&config.ID,
		&config.UserID,
		&config.SpreadsheetID,
		&config.SheetName,
		&config.DataType,
		&mappingJSON,
		&config.AutoExportEnabled,
		&config.ExportFrequency,
		&config.ExportHour,
		&config.ExportMinute,
		&config.ExportInterval,
		&config.UseAdAccountTimezone,
		&config.AdAccountTimezone,
		&config.AppendMode,
		&config.IncludeDate,
		&accountIDs,
		&config.LastExportAt,
		&config.LastExportStatus,
		&config.LastExportRows,
		&config.LastExportError,
	); err != nil {
		return nil, err
	}

	config.AccountIDs = accountIDs

	config.ColumnMapping = make(map[string]string)
	if len(mappingJSON) > 0 {
		if err := jsoniter.Unmarshal(mappingJSON, &config.ColumnMapping); err != nil {
			logrus.WithError(err).WithField("config_id", config.ID).
				Error("Erro ao decodificar o mapeamento de colunas")
			return nil, err
		}
	}

	return config, nil
}

// UpdateTelemetrySuccess grava o resultado da última execução bem-sucedida,
// limpando a mensagem de erro anterior.
func (r *exportConfigRepository) UpdateTelemetrySuccess(configID string, exportedAt time.Time, rowCount int) error {
	updateSQL, updateArgs, err := squirrel.
		Update("export_configs").
		Set("last_export_at", exportedAt).
		Set("last_export_status", domain.ExportStatusSuccess).
		Set("last_export_rows", rowCount).
		Set("last_export_error", nil).
		Where(squirrel.Eq{"id": configID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return err
	}

	_, err = r.conn.Exec(updateSQL, updateArgs...)
	return err
}

// UpdateTelemetryFailure grava o resultado da última execução com falha. A
// contagem de linhas anterior é mantida para referência.
func (r *exportConfigRepository) UpdateTelemetryFailure(configID string, exportedAt time.Time, message string) error {
	updateSQL, updateArgs, err := squirrel.
		Update("export_configs").
		Set("last_export_at", exportedAt).
		Set("last_export_status", domain.ExportStatusFailed).
		Set("last_export_error", message).
		Where(squirrel.Eq{"id": configID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return err
	}

	_, err = r.conn.Exec(updateSQL, updateArgs...)
	return err
}
