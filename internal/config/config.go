package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// Fontes de dados de vendas suportadas
const (
	SalesSourceMemory   = "memory"
	SalesSourcePostgres = "postgres"
)

type Config struct {
	App              App              `mapstructure:",squash"`
	Server           Server           `mapstructure:",squash"`
	Database         Database         `mapstructure:",squash"`
	Dashboard        Dashboard        `mapstructure:",squash"`
	Auth             Auth             `mapstructure:",squash"`
	Cors             Cors             `mapstructure:",squash"`
	YearlyTotalsSync YearlyTotalsSync `mapstructure:",squash"`
	SecretKey        string           `mapstructure:"secret_key"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
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

type Dashboard struct {
	SalesSource      string `mapstructure:"sales_source"`
	DefaultYear      int    `mapstructure:"dashboard_default_year"`
	DefaultChart     string `mapstructure:"dashboard_default_chart"`
	DefaultThreshold int    `mapstructure:"dashboard_default_threshold"`
}

type Auth struct {
	AdminEmail        string `mapstructure:"admin_email"`
	AdminPasswordHash string `mapstructure:"admin_password_hash"`
}

type Cors struct {
	AllowedOrigins []string `mapstructure:"cors_allowed_origins"`
}

type YearlyTotalsSync struct {
	CronSchedule string `mapstructure:"yearly_totals_sync_cron"`
	Enabled      bool   `mapstructure:"yearly_totals_sync_enabled"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/sales?sslmode=disable")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("SALES_SOURCE", SalesSourceMemory)
	viper.SetDefault("DASHBOARD_DEFAULT_YEAR", 2024)
	viper.SetDefault("DASHBOARD_DEFAULT_CHART", "bar")
	viper.SetDefault("DASHBOARD_DEFAULT_THRESHOLD", 0)

	viper.SetDefault("SECRET_KEY", "your_secret_key")
	viper.SetDefault("ADMIN_EMAIL", "admin@localhost")
	viper.SetDefault("ADMIN_PASSWORD_HASH", "")

	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000,http://localhost:4001")

	viper.SetDefault("YEARLY_TOTALS_SYNC_CRON", "0 2 * * *") // Todos os dias às 2h da manhã
	viper.SetDefault("YEARLY_TOTALS_SYNC_ENABLED", false)

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis de ambiente (viper não conseguiu ler .env): ", err)
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

	if err := config.Validate(); err != nil {
		return nil, err
	}

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	return config, nil
}

// Validate verifica os valores que o painel não consegue corrigir sozinho
func (c *Config) Validate() error {
	c.Dashboard.SalesSource = strings.ToLower(strings.TrimSpace(c.Dashboard.SalesSource))
	switch c.Dashboard.SalesSource {
	case SalesSourceMemory, SalesSourcePostgres:
	default:
		return fmt.Errorf("SALES_SOURCE inválido: %q (use memory ou postgres)", c.Dashboard.SalesSource)
	}

	switch strings.ToLower(c.Dashboard.DefaultChart) {
	case "line", "bar", "pie":
	default:
		return fmt.Errorf("DASHBOARD_DEFAULT_CHART inválido: %q", c.Dashboard.DefaultChart)
	}

	if c.Dashboard.DefaultThreshold < 0 {
		return fmt.Errorf("DASHBOARD_DEFAULT_THRESHOLD não pode ser negativo: %d", c.Dashboard.DefaultThreshold)
	}

	if c.YearlyTotalsSync.Enabled && c.Dashboard.SalesSource != SalesSourcePostgres {
		return fmt.Errorf("YEARLY_TOTALS_SYNC_ENABLED exige SALES_SOURCE=postgres")
	}

	return nil
}

// UsesDatabase indica se a aplicação precisa abrir conexão com o PostgreSQL
func (c *Config) UsesDatabase() bool {
	return c.Dashboard.SalesSource == SalesSourcePostgres
}

func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		if err := godotenv.Load(location); err == nil {
			logrus.Info("Arquivo .env carregado de: ", location)
			return
		}
	}

	logrus.Debug("Nenhum arquivo .env encontrado; usando apenas variáveis de ambiente")
}
