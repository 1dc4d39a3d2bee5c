package domain

import "time"

// ExportDataType define qual nível da hierarquia é exportado.
type ExportDataType string

const (
	ExportDataTypeAccounts  ExportDataType = "accounts"
	ExportDataTypeCampaigns ExportDataType = "campaigns"
	ExportDataTypeAdSets    ExportDataType = "adsets"
	ExportDataTypeAds       ExportDataType = "ads"
)

// ExportFrequency define o modo de agendamento de um job de exportação.
type ExportFrequency string

const (
	ExportFrequencyDaily  ExportFrequency = "daily"
	ExportFrequencyHourly ExportFrequency = "hourly"
)

// Resultados possíveis da última execução de um job.
const (
	ExportStatusSuccess = "success"
	ExportStatusFailed  = "failed"
)

// ColumnSkip é o valor sentinela em um mapeamento de colunas indicando que o
// campo não deve ser exportado.
const ColumnSkip = "skip"

// ExportConfig é a definição persistida de um job de exportação para
// planilha. Criada e editada pelo console; este serviço apenas a lê e
// atualiza os campos de telemetria da última execução.
type ExportConfig struct {
	ID                   string            `json:"id"`
	UserID               string            `json:"user_id"`
	SpreadsheetID        string            `json:"spreadsheet_id"`
	SheetName            string            `json:"sheet_name"`
	DataType             ExportDataType    `json:"data_type"`
	ColumnMapping        map[string]string `json:"column_mapping"` // campo → letra da coluna ou "skip"
	AutoExportEnabled    bool              `json:"auto_export_enabled"`
	ExportFrequency      ExportFrequency   `json:"export_frequency"`
	ExportHour           int               `json:"export_hour"`
	ExportMinute         int               `json:"export_minute"`
	ExportInterval       int               `json:"export_interval"` // horas, modo hourly
	UseAdAccountTimezone bool              `json:"use_ad_account_timezone"`
	AdAccountTimezone    string            `json:"ad_account_timezone"`
	AppendMode           bool              `json:"append_mode"`
	IncludeDate          bool              `json:"include_date"`
	AccountIDs           []string          `json:"account_ids"`

	// Telemetria da última execução. Apenas o resultado mais recente é
	// retido; jobs pulados por pré-requisito ausente não escrevem nada.
	LastExportAt     *time.Time `json:"last_export_at"`
	LastExportStatus *string    `json:"last_export_status"`
	LastExportRows   *int       `json:"last_export_rows"`
	LastExportError  *string    `json:"last_export_error"`
}

// ExportTelemetry é o registro de resultado gravado após uma execução.
type ExportTelemetry struct {
	ConfigID   string
	ExportedAt time.Time
	Status     string
	Rows       int
	Error      *string
}
