package config

import (
	"fmt"
	"log"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort  string `mapstructure:"APP_PORT"`
	Env      string `mapstructure:"ENV"`
	LogLevel string `mapstructure:"LOG_LEVEL"`
	AdminKey string `mapstructure:"ADMIN_API_KEY"`

	// Hotel profile.
	HotelName       string  `mapstructure:"HOTEL_NAME"`
	HotelLocation   string  `mapstructure:"HOTEL_LOCATION"`
	TotalRooms      int     `mapstructure:"TOTAL_ROOMS"`
	TargetOccupancy float64 `mapstructure:"TARGET_OCCUPANCY"`

	// Nightly rates by guest category.
	LocalRate    float64 `mapstructure:"LOCAL_RATE"`
	StandardRate float64 `mapstructure:"STANDARD_RATE"`
	WalkInRate   float64 `mapstructure:"WALK_IN_RATE"`

	// Alert thresholds.
	LowOccupancyThreshold float64 `mapstructure:"LOW_OCCUPANCY_THRESHOLD"`
	HighExpenseThreshold  float64 `mapstructure:"HIGH_EXPENSE_THRESHOLD"`

	// Telegram bot configuration.
	TelegramBotToken string `mapstructure:"TELEGRAM_BOT_TOKEN"`
	TelegramChatID   string `mapstructure:"TELEGRAM_CHAT_ID"`

	// Google Sheets configuration.
	SheetsCredentialsFile string `mapstructure:"SHEETS_CREDENTIALS_FILE"`
	SpreadsheetID         string `mapstructure:"SPREADSHEET_ID"`

	// Scheduled report times (HH:MM, local time).
	MorningReportTime  string `mapstructure:"MORNING_REPORT_TIME"`
	AfternoonCheckTime string `mapstructure:"AFTERNOON_CHECK_TIME"`
	EveningReportTime  string `mapstructure:"EVENING_REPORT_TIME"`

	// Redis configuration.
	RedisAddr     string `mapstructure:"REDIS_ADDR"`
	RedisPassword string `mapstructure:"REDIS_PASSWORD"`
	RedisCacheDB  int    `mapstructure:"REDIS_CACHE_DB"`
	RedisQueueDB  int    `mapstructure:"REDIS_QUEUE_DB"`
}

var AppConfig Config

func LoadConfig() {
	// Look for a config file named "config.yaml" in the current and "config" directory.
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	// Automatically use environment variables where available.
	viper.AutomaticEnv()

	// Set default values.
	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("ENV", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("HOTEL_NAME", "Hotel Nico")
	viper.SetDefault("HOTEL_LOCATION", "Phoenix Bay, Port Blair")
	viper.SetDefault("TOTAL_ROOMS", 10)
	viper.SetDefault("TARGET_OCCUPANCY", 80)
	viper.SetDefault("LOCAL_RATE", 799)
	viper.SetDefault("STANDARD_RATE", 1500)
	viper.SetDefault("WALK_IN_RATE", 1200)
	viper.SetDefault("LOW_OCCUPANCY_THRESHOLD", 60)
	viper.SetDefault("HIGH_EXPENSE_THRESHOLD", 5000)
	viper.SetDefault("SHEETS_CREDENTIALS_FILE", "credentials.json")
	viper.SetDefault("MORNING_REPORT_TIME", "08:00")
	viper.SetDefault("AFTERNOON_CHECK_TIME", "14:00")
	viper.SetDefault("EVENING_REPORT_TIME", "21:00")
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_CACHE_DB", 0)
	viper.SetDefault("REDIS_QUEUE_DB", 1)

	if err := viper.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := AppConfig.Validate(); err != nil {
		log.Fatalf("Invalid config: %v", err)
	}
}

// Validate checks that required configuration is present. Missing configuration
// fails here at startup, never deep inside an aggregation call.
func (c Config) Validate() error {
	if c.SpreadsheetID == "" {
		return fmt.Errorf("SPREADSHEET_ID is not set")
	}
	if c.TelegramBotToken == "" {
		return fmt.Errorf("TELEGRAM_BOT_TOKEN is not set")
	}
	if c.TotalRooms <= 0 {
		return fmt.Errorf("TOTAL_ROOMS must be positive, got %d", c.TotalRooms)
	}
	return nil
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return GetEnv() == "production"
}
