package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Env         string
	RapidAPIKey string

	WalmartBaseURL string
	WalmartHost    string
	TargetBaseURL  string
	TargetHost     string
	Stores         []string

	HTTPTimeout       time.Duration
	FetchRetries      int
	FetchRetryDelay   time.Duration
	RetryClientErrors bool

	InputPath  string
	OutputPath string
	UseMock    bool
	SKUSource  string
	Currency   string

	DatabaseURL string
	RedisURL    string
	CacheTTL    time.Duration
	MetricsPort string
}

func Load() *Config {
	// .env da raiz do projeto, depois o diretório atual
	_ = godotenv.Load("../../.env")
	_ = godotenv.Load()
	return &Config{
		Env:         getEnv("APP_ENV", "development"),
		RapidAPIKey: os.Getenv("RAPIDAPI_KEY"),

		WalmartBaseURL: getEnv("WALMART_BASE_URL", "https://walmart-data.p.rapidapi.com"),
		WalmartHost:    getEnv("WALMART_HOST", "walmart-data.p.rapidapi.com"),
		TargetBaseURL:  getEnv("TARGET_BASE_URL", "https://target1.p.rapidapi.com"),
		TargetHost:     getEnv("TARGET_HOST", "target1.p.rapidapi.com"),
		Stores:         splitList(getEnv("STORES", "walmart,target")),

		HTTPTimeout:       getDuration("HTTP_TIMEOUT", 10*time.Second),
		FetchRetries:      getInt("FETCH_RETRIES", 3),
		FetchRetryDelay:   getDuration("FETCH_RETRY_DELAY", 5*time.Second),
		RetryClientErrors: getBool("RETRY_CLIENT_ERRORS", false),

		InputPath:  getEnv("INPUT_PATH", "data/sku_master.csv"),
		OutputPath: getEnv("OUTPUT_PATH", "data/price_comparison.csv"),
		UseMock:    getBool("USE_MOCK", true),
		SKUSource:  getEnv("SKU_SOURCE", "csv"), // "csv" ou "db"
		Currency:   "USD",

		DatabaseURL: os.Getenv("DATABASE_URL"),
		RedisURL:    os.Getenv("REDIS_URL"),
		CacheTTL:    getDuration("CACHE_TTL", 6*time.Hour),
		MetricsPort: os.Getenv("METRICS_PORT"),
	}
}

// StoreEnabled diz se a loja está em STORES (sem diferenciar maiúsculas).
func (c *Config) StoreEnabled(name string) bool {
	for _, s := range c.Stores {
		if strings.EqualFold(s, name) {
			return true
		}
	}
	return false
}

func getEnv(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}

func getInt(k string, d int) int {
	n, err := strconv.Atoi(os.Getenv(k))
	if err != nil {
		return d
	}
	return n
}

func getBool(k string, d bool) bool {
	b, err := strconv.ParseBool(os.Getenv(k))
	if err != nil {
		return d
	}
	return b
}

// getDuration aceita "5s", "250ms" ou um número puro de segundos.
func getDuration(k string, d time.Duration) time.Duration {
	v := os.Getenv(k)
	if v == "" {
		return d
	}
	if dur, err := time.ParseDuration(v); err == nil {
		return dur
	}
	if secs, err := strconv.ParseFloat(v, 64); err == nil {
		return time.Duration(secs * float64(time.Second))
	}
	return d
}

func splitList(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
