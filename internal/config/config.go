package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App        App        `mapstructure:",squash"`
	Server     Server     `mapstructure:",squash"`
	Database   Database   `mapstructure:",squash"`
	Facebook   Facebook   `mapstructure:",squash"`
	Google     Google     `mapstructure:",squash"`
	Auth       Auth       `mapstructure:",squash"`
	ExportSync ExportSync `mapstructure:",squash"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
}

type Facebook struct {
	BaseURL string `mapstructure:"facebook_base_url"`
	URL     string `mapstructure:"-"`
	Version string `mapstructure:"facebook_version"`
}

type Google struct {
	ClientID     string `mapstructure:"google_client_id"`
	ClientSecret string `mapstructure:"google_client_secret"`
	TokenURL     string `mapstructure:"google_token_url"`
	SheetsURL    string `mapstructure:"google_sheets_url"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Auth struct {
	Secret string `mapstructure:"auth_secret"`
}

type ExportSync struct {
	TickIntervalMinutes   int  `mapstructure:"export_sync_tick_interval_minutes"`
	DailyWindowMinutes    int  `mapstructure:"export_sync_daily_window_minutes"`
	DebounceHours         int  `mapstructure:"export_sync_debounce_hours"`
	DefaultHourlyInterval int  `mapstructure:"export_sync_default_hourly_interval"`
	Enabled               bool `mapstructure:"export_sync_enabled"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/adsconsole")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("FACEBOOK_BASE_URL", "https://graph.facebook.com")
	viper.SetDefault("FACEBOOK_VERSION", "v22.0")

	viper.SetDefault("GOOGLE_CLIENT_ID", "your_client_id")
	viper.SetDefault("GOOGLE_CLIENT_SECRET", "your_client_secret")
	viper.SetDefault("GOOGLE_TOKEN_URL", "https://oauth2.googleapis.com/token")
	viper.SetDefault("GOOGLE_SHEETS_URL", "https://sheets.googleapis.com/v4")

	viper.SetDefault("AUTH_SECRET", "your_auth_secret")

	// Defaults do agendador de exportação
	viper.SetDefault("EXPORT_SYNC_TICK_INTERVAL_MINUTES", 15)  // Tick a cada 15 minutos
	viper.SetDefault("EXPORT_SYNC_DAILY_WINDOW_MINUTES", 14)   // Janela de disparo do modo diário
	viper.SetDefault("EXPORT_SYNC_DEBOUNCE_HOURS", 12)         // Debounce contra disparo duplo no mesmo dia
	viper.SetDefault("EXPORT_SYNC_DEFAULT_HOURLY_INTERVAL", 6) // Intervalo padrão do modo hourly
	viper.SetDefault("EXPORT_SYNC_ENABLED", true)

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	// Configurar valores padrão
	SetDefaults()

	// Configurar o Viper
	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	// Tentar ler o arquivo .env com o Viper (opcional, já que usamos godotenv)
	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
	} else {
		logrus.Info("Arquivo .env lido pelo Viper com sucesso")
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	config.Facebook.URL = fmt.Sprintf("%s/%s", config.Facebook.BaseURL, config.Facebook.Version)

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	return config, nil
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	// Tentar várias localizações possíveis para o arquivo .env
	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../.env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		err := godotenv.Load(location)
		if err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Info("Nenhum arquivo .env encontrado, usando variáveis de ambiente")
}
