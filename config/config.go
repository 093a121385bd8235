package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App       AppConfig
	DB        DBConfig
	Redis     RedisConfig
	Booking   BookingConfig
	Scheduler SchedulerConfig
}

type AppConfig struct {
	Port           string
	Env            string
	LogLevel       string
	MigrateOnStart bool
}

type DBConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	TimeZone string
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

// BookingConfig tunes the availability and booking engine.
type BookingConfig struct {
	SlotStep           time.Duration
	LockTTL            time.Duration
	VacationOverlapAll bool // true checks vacation overlap clinic-wide instead of per doctor
}

type SchedulerConfig struct {
	DailyJobSpec string
}

// Overlap scopes accepted by VACATION_OVERLAP_SCOPE.
const (
	VacationOverlapDoctor = "doctor"
	VacationOverlapClinic = "clinic"
)

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.SetConfigType("env")
	viper.AutomaticEnv()

	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("DB_TIMEZONE", "UTC")
	viper.SetDefault("SLOT_STEP_MINUTES", 30)
	viper.SetDefault("BOOKING_LOCK_TTL", "5s")
	viper.SetDefault("VACATION_OVERLAP_SCOPE", VacationOverlapDoctor)
	viper.SetDefault("DAILY_JOB_SPEC", "5 0 * * *")

	if err := viper.ReadInConfig(); err != nil {
		// Environment variables alone are enough in containers
		var pathErr *fs.PathError
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &pathErr) && !errors.As(err, &notFound) {
			return nil, err
		}
	}

	lockTTL, err := time.ParseDuration(viper.GetString("BOOKING_LOCK_TTL"))
	if err != nil {
		lockTTL = 5 * time.Second
	}

	slotStep := viper.GetInt("SLOT_STEP_MINUTES")
	if slotStep <= 0 {
		return nil, fmt.Errorf("SLOT_STEP_MINUTES must be positive, got %d", slotStep)
	}

	scope := strings.ToLower(viper.GetString("VACATION_OVERLAP_SCOPE"))
	if scope != VacationOverlapDoctor && scope != VacationOverlapClinic {
		return nil, fmt.Errorf("VACATION_OVERLAP_SCOPE must be %q or %q, got %q", VacationOverlapDoctor, VacationOverlapClinic, scope)
	}

	config := &Config{
		App: AppConfig{
			Port:           viper.GetString("APP_PORT"),
			Env:            viper.GetString("APP_ENV"),
			LogLevel:       viper.GetString("LOG_LEVEL"),
			MigrateOnStart: viper.GetBool("MIGRATE_ON_START"),
		},
		DB: DBConfig{
			Host:     viper.GetString("DB_HOST"),
			Port:     viper.GetString("DB_PORT"),
			User:     viper.GetString("DB_USER"),
			Password: viper.GetString("DB_PASSWORD"),
			Name:     viper.GetString("DB_NAME"),
			TimeZone: viper.GetString("DB_TIMEZONE"),
		},
		Redis: RedisConfig{
			Host:     viper.GetString("REDIS_HOST"),
			Port:     viper.GetString("REDIS_PORT"),
			Password: viper.GetString("REDIS_PASSWORD"),
			DB:       viper.GetInt("REDIS_DB"),
		},
		Booking: BookingConfig{
			SlotStep:           time.Duration(slotStep) * time.Minute,
			LockTTL:            lockTTL,
			VacationOverlapAll: scope == VacationOverlapClinic,
		},
		Scheduler: SchedulerConfig{
			DailyJobSpec: viper.GetString("DAILY_JOB_SPEC"),
		},
	}

	return config, nil
}

// DSN returns the gorm/pgx connection string.
func (c DBConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable TimeZone=%s",
		c.Host, c.User, c.Password, c.Name, c.Port, c.TimeZone,
	)
}

// MigrateURL returns the URL understood by golang-migrate's pgx/v5 driver.
func (c DBConfig) MigrateURL() string {
	u := url.URL{
		Scheme:   "pgx5",
		User:     url.UserPassword(c.User, c.Password),
		Host:     fmt.Sprintf("%s:%s", c.Host, c.Port),
		Path:     "/" + c.Name,
		RawQuery: "sslmode=disable",
	}
	return u.String()
}
