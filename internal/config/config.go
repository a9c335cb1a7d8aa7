// Package config loads process configuration from the environment, with an
// optional .env file. Every value has a default, so a bare `server` run works
// out of the box; the engine itself never reads the environment - main hands
// it an explicit payroll.Config built here.
package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/shakedr2/salary-tracker/payroll"
)

// Store backend selectors.
const (
	StoreSQLite   = "sqlite"
	StoreJSONFile = "json"
)

type Config struct {
	// Server
	Port        int
	CORSOrigins []string

	// Pay rules. Rate125/Rate150 of zero mean "derive from RateRegular".
	RateRegular  float64
	Rate125      float64
	Rate150      float64
	RegularLimit float64
	Limit125     float64

	// Weekend premium window. Weekdays use Go's convention (Sunday = 0).
	WeekendStartWeekday int
	WeekendStartHour    int
	WeekendStartMinute  int
	WeekendEndWeekday   int
	WeekendEndHour      int
	WeekendEndMinute    int

	// Persistence and data sources
	StoreBackend string // "sqlite" or "json"
	SQLitePath   string
	JSONPath     string
	RecordsPath  string // attendance JSON export consumed by /api/refresh
}

// Load reads configuration from the environment. A missing .env file is not
// an error.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		logrus.Debug("no .env file found, using environment and defaults")
	}

	return &Config{
		Port:        getEnvAsInt("PORT", 8080),
		CORSOrigins: getEnvAsList("CORS_ORIGINS", []string{"http://localhost:5173", "http://localhost:8080"}),

		RateRegular:  getEnvAsFloat("RATE_REGULAR", 75.0),
		Rate125:      getEnvAsFloat("RATE_125", 0),
		Rate150:      getEnvAsFloat("RATE_150", 0),
		RegularLimit: getEnvAsFloat("REGULAR_LIMIT", 8),
		Limit125:     getEnvAsFloat("LIMIT_125", 10),

		WeekendStartWeekday: getEnvAsInt("WEEKEND_PREMIUM_START_WEEKDAY", int(time.Friday)),
		WeekendStartHour:    getEnvAsInt("WEEKEND_PREMIUM_START_HOUR", 17),
		WeekendStartMinute:  getEnvAsInt("WEEKEND_PREMIUM_START_MINUTE", 0),
		WeekendEndWeekday:   getEnvAsInt("WEEKEND_PREMIUM_END_WEEKDAY", int(time.Sunday)),
		WeekendEndHour:      getEnvAsInt("WEEKEND_PREMIUM_END_HOUR", 5),
		WeekendEndMinute:    getEnvAsInt("WEEKEND_PREMIUM_END_MINUTE", 0),

		StoreBackend: getEnv("STORE_BACKEND", StoreJSONFile),
		SQLitePath:   getEnv("SQLITE_PATH", "./data/salary.db"),
		JSONPath:     getEnv("SALARY_JSON_PATH", "./data/salary_data.json"),
		RecordsPath:  getEnv("ATTENDANCE_RECORDS_PATH", "./data/attendance.json"),
	}
}

// PayrollConfig converts the environment values into the engine's explicit
// config. Zero rates stay zero so the engine derives 125%/150%.
func (c *Config) PayrollConfig() payroll.Config {
	return payroll.Config{
		RateRegular:  decimal.NewFromFloat(c.RateRegular),
		Rate125:      decimal.NewFromFloat(c.Rate125),
		Rate150:      decimal.NewFromFloat(c.Rate150),
		RegularLimit: c.RegularLimit,
		Limit125:     c.Limit125,
		Window: payroll.WeekendWindow{
			StartWeekday: time.Weekday(c.WeekendStartWeekday),
			Start:        payroll.TimeOfDay{Hour: c.WeekendStartHour, Minute: c.WeekendStartMinute},
			EndWeekday:   time.Weekday(c.WeekendEndWeekday),
			End:          payroll.TimeOfDay{Hour: c.WeekendEndHour, Minute: c.WeekendEndMinute},
		},
	}
}

func getEnv(key string, defaultVal string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultVal
}

func getEnvAsInt(name string, defaultVal int) int {
	if val, err := strconv.Atoi(getEnv(name, "")); err == nil {
		return val
	}
	return defaultVal
}

func getEnvAsFloat(name string, defaultVal float64) float64 {
	if val, err := strconv.ParseFloat(getEnv(name, ""), 64); err == nil {
		return val
	}
	return defaultVal
}

func getEnvAsList(name string, defaultVal []string) []string {
	raw := getEnv(name, "")
	if raw == "" {
		return defaultVal
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	if len(out) == 0 {
		return defaultVal
	}
	return out
}
