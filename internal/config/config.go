package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Data source kinds
const (
	SourceCSV    = "csv"
	SourceSQLite = "sqlite"
)

// Config 应用配置
type Config struct {
	Port        string
	DBPath      string
	JWTSecret   string
	AuthEnabled bool
	LogLevel    string

	LocationRateLimit  int           // location updates per client per window, 0 disables
	LocationRateWindow time.Duration

	DataSource string   // csv or sqlite
	DataFiles  []string // CSV paths, one per day
	DataDays   []string // day names in the database; empty means all
	CSVHeader  bool     // whether CSV files start with a header line
}

// Load 加载配置
func Load() *Config {
	return &Config{
		Port:        getEnv("PORT", ":8080"),
		DBPath:      getEnv("DB_PATH", "./data/carrier/carrier.db"),
		JWTSecret:   getEnv("JWT_SECRET", "your-secret-key-change-in-production"),
		AuthEnabled: getBool("AUTH_ENABLED", true),
		LogLevel:    getEnv("LOG_LEVEL", "info"),

		LocationRateLimit:  getInt("LOCATION_RATE_LIMIT", 20),
		LocationRateWindow: getDuration("LOCATION_RATE_WINDOW", time.Second),

		DataSource: strings.ToLower(getEnv("DATA_SOURCE", SourceCSV)),
		DataFiles:  getList("DATA_FILES"),
		DataDays:   getList("DATA_DAYS"),
		CSVHeader:  getBool("CSV_HEADER", true),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getBool(key string, fallback bool) bool {
	v, err := strconv.ParseBool(os.Getenv(key))
	if err != nil {
		return fallback
	}
	return v
}

func getInt(key string, fallback int) int {
	v, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return fallback
	}
	return v
}

func getDuration(key string, fallback time.Duration) time.Duration {
	v, err := time.ParseDuration(os.Getenv(key))
	if err != nil || v <= 0 {
		return fallback
	}
	return v
}

// getList splits a comma-separated variable, dropping empty entries
func getList(key string) []string {
	var out []string
	for _, part := range strings.Split(os.Getenv(key), ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
