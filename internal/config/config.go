package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App      App      `mapstructure:",squash"`
	Server   Server   `mapstructure:",squash"`
	Meta     Meta     `mapstructure:",squash"`
	Session  Session  `mapstructure:",squash"`
	Campaign Campaign `mapstructure:",squash"`
	Cors     Cors     `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Meta struct {
	BaseURL        string        `mapstructure:"meta_base_url"`
	URL            string        `mapstructure:"-"`
	Version        string        `mapstructure:"meta_version"`
	TimeoutSeconds int           `mapstructure:"meta_request_timeout_seconds"`
	RequestTimeout time.Duration `mapstructure:"-"`
}

// Session guarda os valores iniciais da sessão do operador. Os IDs padrão
// são sobrescritos assim que as listagens de páginas e contas retornam dados.
type Session struct {
	DefaultAdAccountID string `mapstructure:"default_ad_account_id"`
	DefaultPageID      string `mapstructure:"default_page_id"`
}

type Campaign struct {
	NamePrefix string `mapstructure:"campaign_name_prefix"`
}

type Cors struct {
	AllowedOrigins    []string `mapstructure:"-"`
	AllowedOriginsRaw string   `mapstructure:"cors_allowed_origins"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 3000)

	viper.SetDefault("META_BASE_URL", "https://graph.facebook.com")
	viper.SetDefault("META_VERSION", "v20.0")
	viper.SetDefault("META_REQUEST_TIMEOUT_SECONDS", 30)

	// IDs usados enquanto o operador ainda não listou páginas e contas
	viper.SetDefault("DEFAULT_AD_ACCOUNT_ID", "3833310993548191")
	viper.SetDefault("DEFAULT_PAGE_ID", "619312814603108")

	viper.SetDefault("CAMPAIGN_NAME_PREFIX", "CrewAI - ")

	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000,http://localhost:4001")

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

	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
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

	config.Meta.URL = fmt.Sprintf("%s/%s", config.Meta.BaseURL, config.Meta.Version)
	config.Meta.RequestTimeout = time.Duration(config.Meta.TimeoutSeconds) * time.Second

	config.Cors.AllowedOrigins = splitOrigins(config.Cors.AllowedOriginsRaw)

	return config, nil
}

func splitOrigins(raw string) []string {
	origins := make([]string, 0)
	for _, origin := range strings.Split(raw, ",") {
		origin = strings.TrimSpace(origin)
		if origin != "" {
			origins = append(origins, origin)
		}
	}
	return origins
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
	}

	for _, location := range locations {
		if err := godotenv.Load(location); err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Info("Nenhum arquivo .env encontrado, usando variáveis de ambiente")
}
