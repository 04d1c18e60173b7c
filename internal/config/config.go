package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/gotify/configor"
	"github.com/joho/godotenv"
)

type Configuration struct {
	App struct {
		Port                string `default:"3000" env:"PORT"`
		ReadTimeoutSeconds  int    `default:"5" env:"APP_READ_TIMEOUT_SECONDS"`
		WriteTimeoutSeconds int    `default:"10" env:"APP_WRITE_TIMEOUT_SECONDS"`
		IdleTimeoutSeconds  int    `default:"60" env:"APP_IDLE_TIMEOUT_SECONDS"`
		RateLimitPerSecond  int    `default:"10" env:"APP_RATE_LIMIT_PER_SECOND"`
		RateLimitBurst      int    `default:"20" env:"APP_RATE_LIMIT_BURST"`
	}
	Database struct {
		Host       string `default:"127.0.0.1" env:"DB_HOST"`
		Port       string `default:"5432" env:"DB_PORT"`
		Name       string `default:"hris" env:"DB_NAME"`
		User       string `default:"postgres" env:"DB_USER"`
		Password   string `default:"postgres" env:"DB_PASSWORD"`
		SSLMode    string `default:"disable" env:"DB_SSLMODE"`
		MaxRetries int    `default:"5" env:"DB_MAX_RETRIES"`
		Migrations string `default:"migrations" env:"DB_MIGRATIONS_DIR"`
	}
	Redis struct {
		Addr string `default:"127.0.0.1:6379" env:"REDIS_ADDR"`
	}
	Kafka struct {
		Broker              string `default:"" env:"KAFKA_BROKER"`
		GroupID             string `default:"hris-onboarding" env:"KAFKA_GROUP_ID"`
		AutoStartOnboarding *bool  `default:"false" env:"KAFKA_AUTO_START_ONBOARDING"`
		PollIntervalSeconds int    `default:"3" env:"KAFKA_OUTBOX_POLL_SECONDS"`
	}
	JWT struct {
		Secret string `default:"" env:"JWT_SECRET"`
	}
	Onboarding struct {
		BulkConcurrency              int    `default:"8" env:"ONBOARDING_BULK_CONCURRENCY"`
		FileCompleteRequiresPhaseOne *bool  `default:"true" env:"ONBOARDING_FILE_COMPLETE_REQUIRES_PHASE_ONE"`
		DefaultDueDays               int    `default:"7" env:"ONBOARDING_DEFAULT_DUE_DAYS"`
		ProbationCheckinDays         string `default:"30,60,90" env:"ONBOARDING_PROBATION_CHECKIN_DAYS"`
		CatalogFile                  string `default:"" env:"ONBOARDING_CATALOG_FILE"`
		CatalogCacheTTLSeconds       int    `default:"3600" env:"ONBOARDING_CATALOG_CACHE_TTL_SECONDS"`
		CatalogLocalCacheTTLSeconds  int    `default:"60" env:"ONBOARDING_CATALOG_LOCAL_CACHE_TTL_SECONDS"`
	}
}

func configFiles() []string {
	var files []string
	if _, err := os.Stat("config.yml"); err == nil {
		files = append(files, "config.yml")
	}
	return files
}

// Load reads .env (if any) into the process environment, then config.yml and env tags.
func Load() (*Configuration, error) {
	_ = godotenv.Load()

	conf := new(Configuration)
	if err := configor.New(&configor.Config{}).Load(conf, configFiles()...); err != nil {
		return nil, fmt.Errorf("load configuration: %w", err)
	}
	return conf, nil
}

func (c *Configuration) ServerTimeouts() (read, write, idle time.Duration) {
	return time.Duration(c.App.ReadTimeoutSeconds) * time.Second,
		time.Duration(c.App.WriteTimeoutSeconds) * time.Second,
		time.Duration(c.App.IdleTimeoutSeconds) * time.Second
}

func (c *Configuration) DSN() string {
	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		c.Database.Host, c.Database.User, c.Database.Password, c.Database.Name, c.Database.Port, c.Database.SSLMode,
	)
}

// MigrateURL is the postgres:// form golang-migrate expects.
func (c *Configuration) MigrateURL() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.Database.User, c.Database.Password, c.Database.Host, c.Database.Port, c.Database.Name, c.Database.SSLMode,
	)
}

func (c *Configuration) AutoStartOnboarding() bool {
	return boolValue(c.Kafka.AutoStartOnboarding, false)
}

func (c *Configuration) FileCompleteRequiresPhaseOne() bool {
	return boolValue(c.Onboarding.FileCompleteRequiresPhaseOne, true)
}

// ProbationCheckinDays parses "30,60,90". Invalid or non-positive entries fail the load.
func (c *Configuration) ProbationCheckinDays() ([]int, error) {
	return ParseDays(c.Onboarding.ProbationCheckinDays)
}

func ParseDays(raw string) ([]int, error) {
	var days []int
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		d, err := strconv.Atoi(part)
		if err != nil || d <= 0 {
			return nil, fmt.Errorf("invalid probation check-in day %q", part)
		}
		days = append(days, d)
	}
	return days, nil
}

func boolValue(v *bool, fallback bool) bool {
	if v == nil {
		return fallback
	}
	return *v
}
