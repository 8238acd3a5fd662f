package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Backends de armazenamento de linhas aceitos em ROW_STORE.
const (
	RowStoreSheets = "sheets"
	RowStoreMemory = "memory"
)

// Config agrupa a configuração da aplicação (lida via Viper a partir do ambiente e, opcionalmente, de arquivo).
type Config struct {
	App    AppConfig
	JWT    JWTConfig
	HTTP   HTTPConfig
	Sheets SheetsConfig
	Redis  RedisConfig
}

// AppConfig configuração geral da aplicação.
type AppConfig struct {
	Env      string // development, staging, production
	Name     string
	LogLevel string
	DocsPath string // swagger.json servido em /docs quando o arquivo existe
}

// JWTConfig configuração dos tokens de acesso.
type JWTConfig struct {
	Secret     string
	Expiration int // minutos
	Issuer     string
}

// HTTPConfig configuração do servidor HTTP.
type HTTPConfig struct {
	Host        string
	Port        int
	CORSOrigins string
}

// Addr devolve o endereço de escuta (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// SheetsConfig configuração da planilha que serve de armazenamento.
type SheetsConfig struct {
	Backend         string // sheets | memory
	SpreadsheetID   string
	CredentialsFile string
}

// RedisConfig configuração opcional do Redis usado para serializar escritas entre processos.
// Com Addr vazio as escritas são serializadas apenas dentro do processo.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
	LockTTL  time.Duration
}

// Enabled indica se o lock distribuído deve ser usado.
func (c RedisConfig) Enabled() bool {
	return c.Addr != ""
}

// Load lê a configuração das variáveis de ambiente (e opcionalmente de .env / config.env).
// As variáveis de ambiente têm prioridade.
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignorado se não existir

	v.SetConfigName("config")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	_ = v.ReadInConfig()

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := &Config{
		App: AppConfig{
			Env:      getString(v, "APP_ENV", "development"),
			Name:     getString(v, "APP_NAME", "fazenda-api"),
			LogLevel: getString(v, "LOG_LEVEL", "info"),
			DocsPath: getString(v, "DOCS_PATH", "./docs/swagger.json"),
		},
		JWT: JWTConfig{
			Secret:     getString(v, "JWT_SECRET", ""),
			Expiration: getInt(v, "JWT_EXPIRATION_MINUTES", 60),
			Issuer:     getString(v, "JWT_ISSUER", "fazenda-api"),
		},
		HTTP: HTTPConfig{
			Host:        getString(v, "HTTP_HOST", "0.0.0.0"),
			Port:        getInt(v, "HTTP_PORT", 8080),
			CORSOrigins: getString(v, "CORS_ORIGINS", "*"),
		},
		Sheets: SheetsConfig{
			Backend:         strings.ToLower(getString(v, "ROW_STORE", RowStoreSheets)),
			SpreadsheetID:   getString(v, "SHEET_ID", ""),
			CredentialsFile: getString(v, "GOOGLE_CREDENTIALS_FILE", "credentials/credentials.json"),
		},
		Redis: RedisConfig{
			Addr:     getString(v, "REDIS_ADDR", ""),
			Password: getString(v, "REDIS_PASSWORD", ""),
			DB:       getInt(v, "REDIS_DB", 0),
			LockTTL:  time.Duration(getInt(v, "LOCK_TTL_SECONDS", 15)) * time.Second,
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate verifica as combinações obrigatórias.
func (c *Config) Validate() error {
	if c.JWT.Secret == "" {
		return fmt.Errorf("config: JWT_SECRET é obrigatório")
	}
	switch c.Sheets.Backend {
	case RowStoreSheets:
		if c.Sheets.SpreadsheetID == "" {
			return fmt.Errorf("config: SHEET_ID é obrigatório com ROW_STORE=%s", RowStoreSheets)
		}
	case RowStoreMemory:
	default:
		return fmt.Errorf("config: ROW_STORE inválido %q", c.Sheets.Backend)
	}
	if c.Redis.LockTTL <= 0 {
		return fmt.Errorf("config: LOCK_TTL_SECONDS deve ser positivo")
	}
	return nil
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		return v.GetString(key)
	}
	return def
}

func getInt(v *viper.Viper, key string, def int) int {
	if v.IsSet(key) {
		switch v.Get(key).(type) {
		case int:
			return v.GetInt(key)
		case string:
			n, err := strconv.Atoi(v.GetString(key))
			if err != nil {
				return def
			}
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}
