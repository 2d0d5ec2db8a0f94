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
	App    App    `mapstructure:",squash"`
	Server Server `mapstructure:",squash"`
	POS    POS    `mapstructure:",squash"`
	Auth   Auth   `mapstructure:",squash"`
	Images Images `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

// POS descreve o acesso ao núcleo do POS (a API que detém o catálogo, os
// usuários e os relatórios).
type POS struct {
	URL            string        `mapstructure:"pos_url"`
	ServiceToken   string        `mapstructure:"pos_service_token"`
	RequestTimeout time.Duration `mapstructure:"pos_request_timeout"`
	ReportTimeout  time.Duration `mapstructure:"pos_report_timeout"`
}

type Auth struct {
	Secret   string        `mapstructure:"auth_secret"`
	TokenTTL time.Duration `mapstructure:"auth_token_ttl"`
}

// Images configura o cache local de imagens de produto.
type Images struct {
	CacheDir    string `mapstructure:"image_cache_dir"`
	MaxSizeByte int64  `mapstructure:"image_max_size_bytes"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("POS_URL", "http://localhost:8080/api/v1")
	viper.SetDefault("POS_SERVICE_TOKEN", "")
	viper.SetDefault("POS_REQUEST_TIMEOUT", "30s")
	viper.SetDefault("POS_REPORT_TIMEOUT", "45s")

	viper.SetDefault("AUTH_SECRET", "your_secret_key")
	viper.SetDefault("AUTH_TOKEN_TTL", "12h")

	viper.SetDefault("IMAGE_CACHE_DIR", "")
	viper.SetDefault("IMAGE_MAX_SIZE_BYTES", 5*1024*1024)

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

	if config.Images.CacheDir == "" {
		config.Images.CacheDir = filepath.Join(os.TempDir(), "restaurant-admin-images")
	}

	if config.POS.URL == "" {
		return nil, fmt.Errorf("POS_URL é obrigatório")
	}

	return config, nil
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
		if err := godotenv.Load(location); err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
