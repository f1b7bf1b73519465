package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"github.com/somewherelostt/KaizenX/pkg/logger"
)

type Config struct {
	App     *AppConfig
	DB      *DBConfig
	Redis   *RedisConfig
	Auth    *AuthConfig
	Stellar *StellarConfig
	Wallet  *WalletConfig
	Upload  *UploadConfig
	Worker  *WorkerConfig
}

type AppConfig struct {
	Name        string
	Env         string
	Port        string
	LogFilePath string
	BinFilePath string
}

type DBConfig struct {
	DBWrite *DBWriteConfig
	DBRead  *DBReadConfig
	DBPool  *DBPooling
}

type DBWriteConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string
}

type DBReadConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string
}

type DBPooling struct {
	MaxIdleConns    int
	MaxOpenConns    int
	ConnMaxLifetime int
	ConnMaxIdleTime int
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       string
}

type AuthConfig struct {
	JWTSecret string
	TokenTTL  time.Duration
}

type StellarConfig struct {
	HorizonURL        string
	NetworkPassphrase string
	FriendbotURL      string
}

type WalletConfig struct {
	// FreshnessWindow bounds how old a persisted session record may be
	// before silent restore is refused.
	FreshnessWindow time.Duration
	// RestoreTimeout bounds the bridge check during silent restore.
	RestoreTimeout time.Duration
	StateDir       string
}

type UploadConfig struct {
	Dir        string
	MaxSizeMB  int
	PublicPath string
}

type WorkerConfig struct {
	WorkerCount int
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		logger.Error("failed, No .env file found")
	}

	return &Config{
		App:     LoadAppConfig(),
		DB:      LoadDBConfig(),
		Redis:   LoadRedisConfig(),
		Auth:    LoadAuthConfig(),
		Stellar: LoadStellarConfig(),
		Wallet:  LoadWalletConfig(),
		Upload:  LoadUploadConfig(),
		Worker:  LoadWorkerConfig(),
	}
}

func LoadAppConfig() *AppConfig {
	return &AppConfig{
		Name:        getEnv("APP_NAME", "kaizenx"),
		Env:         getEnv("APP_ENV", "development"),
		Port:        getEnv("APP_PORT", "4000"),
		LogFilePath: getEnv("APP_LOG_FILE", "logs/app.log"),
		BinFilePath: getEnv("APP_BIN_FILE", "./bin/kaizenx"),
	}
}

func LoadDBConfig() *DBConfig {
	dbWrite := &DBWriteConfig{
		Host:     getEnv("DB_WRITE_HOST", "localhost"),
		Port:     getEnv("DB_WRITE_PORT", "5432"),
		User:     getEnv("DB_WRITE_USER", "postgres"),
		Password: getEnv("DB_WRITE_PASSWORD", "password"),
		Name:     getEnv("DB_WRITE_NAME", "kaizenx"),
		SSLMode:  getEnv("DB_WRITE_SSL_MODE", "disable"),
	}

	dbRead := &DBReadConfig{
		Host:     getEnv("DB_READ_HOST", "localhost"),
		Port:     getEnv("DB_READ_PORT", "5432"),
		User:     getEnv("DB_READ_USER", "postgres"),
		Password: getEnv("DB_READ_PASSWORD", "password"),
		Name:     getEnv("DB_READ_NAME", "kaizenx"),
		SSLMode:  getEnv("DB_READ_SSL_MODE", "disable"),
	}

	dbPool := &DBPooling{
		MaxIdleConns:    getEnvAsInt("DB_MAX_IDLE_CONNS", 10),
		MaxOpenConns:    getEnvAsInt("DB_MAX_OPEN_CONNS", 100),
		ConnMaxLifetime: getEnvAsInt("DB_CONN_MAX_LIFETIME", 3600),
		ConnMaxIdleTime: getEnvAsInt("DB_CONN_MAX_IDLE_TIME", 300),
	}

	return &DBConfig{
		DBWrite: dbWrite,
		DBRead:  dbRead,
		DBPool:  dbPool,
	}
}

func LoadRedisConfig() *RedisConfig {
	return &RedisConfig{
		Host:     getEnv("REDIS_HOST", "localhost"),
		Port:     getEnv("REDIS_PORT", "6379"),
		Password: getEnv("REDIS_PASSWORD", "password"),
		DB:       getEnv("REDIS_DB", "0"),
	}
}

func LoadAuthConfig() *AuthConfig {
	return &AuthConfig{
		JWTSecret: getEnv("JWT_SECRET", "changeme"),
		TokenTTL:  time.Duration(getEnvAsInt("TOKEN_TTL_HOURS", 24)) * time.Hour,
	}
}

func LoadStellarConfig() *StellarConfig {
	return &StellarConfig{
		HorizonURL:        getEnv("HORIZON_URL", "https://horizon-testnet.stellar.org"),
		NetworkPassphrase: getEnv("NETWORK_PASSPHRASE", "Test SDF Network ; September 2015"),
		FriendbotURL:      getEnv("FRIENDBOT_URL", "https://friendbot.stellar.org"),
	}
}

func LoadWalletConfig() *WalletConfig {
	return &WalletConfig{
		FreshnessWindow: time.Duration(getEnvAsInt("WALLET_FRESHNESS_HOURS", 24)) * time.Hour,
		RestoreTimeout:  time.Duration(getEnvAsInt("WALLET_RESTORE_TIMEOUT_SECONDS", 5)) * time.Second,
		StateDir:        getEnv("WALLET_STATE_DIR", ".kaizen"),
	}
}

func LoadUploadConfig() *UploadConfig {
	return &UploadConfig{
		Dir:        getEnv("UPLOAD_DIR", "uploads"),
		MaxSizeMB:  getEnvAsInt("UPLOAD_MAX_SIZE_MB", 8),
		PublicPath: getEnv("UPLOAD_PUBLIC_PATH", "/uploads"),
	}
}

func LoadWorkerConfig() *WorkerConfig {
	return &WorkerConfig{
		WorkerCount: getEnvAsInt("WORKER_COUNT", 1),
	}
}

// =========================================================

func GetAppPort() string {
	return getEnv("APP_PORT", "4000")
}

func GetAppEnv() string {
	return getEnv("APP_ENV", "development")
}

func GetAppBinFile() string {
	return getEnv("APP_BIN_FILE", "./bin/kaizenx")
}

//============================================================

// getEnv returns the value of the environment variable or a default value if not set
func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

// getEnvAsInt returns the value of the environment variable as an integer or a default value if not set
func getEnvAsInt(key string, defaultVal int) int {
	if val := os.Getenv(key); val != "" {
		if intVal, err := strconv.Atoi(val); err == nil {
			return intVal
		}
	}
	return defaultVal
}
