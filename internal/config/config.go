package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App        App        `mapstructure:",squash"`
	Server     Server     `mapstructure:",squash"`
	Database   Database   `mapstructure:",squash"`
	Redis      Redis      `mapstructure:",squash"`
	Auth       Auth       `mapstructure:",squash"`
	Karrot     Karrot     `mapstructure:",squash"`
	KarrotSync KarrotSync `mapstructure:",squash"`
	Dashboard  Dashboard  `mapstructure:",squash"`
	Cors       Cors       `mapstructure:",squash"`
	SecretKey  string     `mapstructure:"secret_key"`
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
	Migrate  bool   `mapstructure:"database_migrate"`
}

type Redis struct {
	Addr     string `mapstructure:"redis_addr"`
	Password string `mapstructure:"redis_password"`
	DB       int    `mapstructure:"redis_db"`
}

// Enabled indica se a revogação de tokens via Redis está configurada
func (r Redis) Enabled() bool {
	return r.Addr != ""
}

type Auth struct {
	TokenTTLHours int `mapstructure:"jwt_ttl_hours"`
}

// TokenTTL retorna a duração de validade dos tokens JWT
func (a Auth) TokenTTL() time.Duration {
	if a.TokenTTLHours <= 0 {
		return 7 * 24 * time.Hour
	}
	return time.Duration(a.TokenTTLHours) * time.Hour
}

type Karrot struct {
	TimeoutSeconds int    `mapstructure:"karrot_timeout_seconds"`
	UserAgent      string `mapstructure:"karrot_user_agent"`
	AcceptLanguage string `mapstructure:"karrot_accept_language"`
}

// Timeout retorna o timeout explícito do cliente de scraping
func (k Karrot) Timeout() time.Duration {
	if k.TimeoutSeconds <= 0 {
		return 15 * time.Second
	}
	return time.Duration(k.TimeoutSeconds) * time.Second
}

type KarrotSync struct {
	CronSchedule        string `mapstructure:"karrot_sync_cron"`
	RequestDelaySeconds int    `mapstructure:"karrot_sync_request_delay_seconds"`
	Enabled             bool   `mapstructure:"karrot_sync_enabled"`
}

type Dashboard struct {
	BudgetWarningThreshold   float64 `mapstructure:"budget_warning_threshold"`
	BudgetOverspentThreshold float64 `mapstructure:"budget_overspent_threshold"`
	InsightsDefaultLimit     int     `mapstructure:"insights_default_limit"`
	InsightsMaxLimit         int     `mapstructure:"insights_max_limit"`
}

type Cors struct {
	AllowedOrigins []string `mapstructure:"cors_allowed_origins"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/channel_marketing?sslmode=disable")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")
	viper.SetDefault("DATABASE_MIGRATE", true)

	viper.SetDefault("REDIS_ADDR", "")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_DB", 0)

	viper.SetDefault("SECRET_KEY", "your_secret_key")
	viper.SetDefault("JWT_TTL_HOURS", 168) // 7 dias

	viper.SetDefault("KARROT_TIMEOUT_SECONDS", 15)
	viper.SetDefault("KARROT_USER_AGENT", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36")
	viper.SetDefault("KARROT_ACCEPT_LANGUAGE", "ko-KR,ko;q=0.9,en-US;q=0.8,en;q=0.7")

	viper.SetDefault("KARROT_SYNC_CRON", "0 2 * * *")         // Todos os dias às 2h da manhã
	viper.SetDefault("KARROT_SYNC_REQUEST_DELAY_SECONDS", 2) // 2 segundos entre páginas
	viper.SetDefault("KARROT_SYNC_ENABLED", false)

	viper.SetDefault("BUDGET_WARNING_THRESHOLD", 80)
	viper.SetDefault("BUDGET_OVERSPENT_THRESHOLD", 100)
	viper.SetDefault("INSIGHTS_DEFAULT_LIMIT", 10)
	viper.SetDefault("INSIGHTS_MAX_LIMIT", 100)

	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:5173,http://localhost:3000")

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile()

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

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

// Validate garante que os limites do dashboard sejam coerentes entre si
func (c *Config) Validate() error {
	if c.Dashboard.BudgetWarningThreshold <= 0 || c.Dashboard.BudgetOverspentThreshold < c.Dashboard.BudgetWarningThreshold {
		return fmt.Errorf("limites de orçamento inválidos: warning=%.2f overspent=%.2f",
			c.Dashboard.BudgetWarningThreshold, c.Dashboard.BudgetOverspentThreshold)
	}

	if c.Dashboard.InsightsDefaultLimit <= 0 || c.Dashboard.InsightsMaxLimit < c.Dashboard.InsightsDefaultLimit {
		return fmt.Errorf("limites de insights inválidos: default=%d max=%d",
			c.Dashboard.InsightsDefaultLimit, c.Dashboard.InsightsMaxLimit)
	}

	return nil
}

// Função auxiliar para carregar o arquivo .env usando godotenv
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
		logrus.Debug("Tentando carregar .env de:", location)
		if err := godotenv.Load(location); err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
