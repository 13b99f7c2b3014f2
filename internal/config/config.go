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
	App            App            `mapstructure:",squash"`
	Server         Server         `mapstructure:",squash"`
	Database       Database       `mapstructure:",squash"`
	Dataset        Dataset        `mapstructure:",squash"`
	DatasetRefresh DatasetRefresh `mapstructure:",squash"`
	Chart          Chart          `mapstructure:",squash"`
	Auth           Auth           `mapstructure:",squash"`
	SecretKey      string         `mapstructure:"secret_key"`
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
	Enabled  bool   `mapstructure:"database_enabled"`
}

type Dataset struct {
	// Janela padrão do filtro ao iniciar: últimos N dias
	DefaultLookbackDays int `mapstructure:"dataset_default_lookback_days"`
}

type DatasetRefresh struct {
	CronSchedule string `mapstructure:"dataset_refresh_cron"`
	SourceURL    string `mapstructure:"dataset_refresh_source_url"`
	Enabled      bool   `mapstructure:"dataset_refresh_enabled"`
}

type Chart struct {
	// Limite padrão de pontos retornados por série quando o cliente não informa max_points
	DefaultMaxPoints int `mapstructure:"chart_default_max_points"`
}

type Auth struct {
	AdminUsername string `mapstructure:"auth_admin_username"`
	// Hash bcrypt da senha do operador do painel
	AdminPasswordHash string `mapstructure:"auth_admin_password_hash"`
	TokenTTLHours     int    `mapstructure:"auth_token_ttl_hours"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/sales_dashboard")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")
	viper.SetDefault("DATABASE_ENABLED", true)

	viper.SetDefault("DATASET_DEFAULT_LOOKBACK_DAYS", 30)

	// Defaults para atualização agendada do dataset
	viper.SetDefault("DATASET_REFRESH_CRON", "0 5 * * *") // Todos os dias às 5h da manhã
	viper.SetDefault("DATASET_REFRESH_SOURCE_URL", "")
	viper.SetDefault("DATASET_REFRESH_ENABLED", false)

	viper.SetDefault("CHART_DEFAULT_MAX_POINTS", 200)

	viper.SetDefault("AUTH_ADMIN_USERNAME", "admin")
	viper.SetDefault("AUTH_ADMIN_PASSWORD_HASH", "")
	viper.SetDefault("AUTH_TOKEN_TTL_HOURS", 24)

	viper.SetDefault("SECRET_KEY", "your_secret_key")

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	SetDefaults()

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

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
