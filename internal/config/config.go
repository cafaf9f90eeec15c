package config

import (
	"errors"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application.
// The values are read by Viper from a config file or environment variables.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	S3       S3Config       `mapstructure:"s3"`
	JWT      JWTConfig      `mapstructure:"jwt"`
	Log      LogConfig      `mapstructure:"log"`
	Goals    GoalsConfig    `mapstructure:"goals"`
	Auth     AuthConfig     `mapstructure:"auth"`
}

type ServerConfig struct {
	Address string `mapstructure:"address"`
}

type DatabaseConfig struct {
	URI  string `mapstructure:"uri"`
	Name string `mapstructure:"name"`
}

type S3Config struct {
	Endpoint        string `mapstructure:"endpoint"`
	Region          string `mapstructure:"region"`
	AccessKeyID     string `mapstructure:"access_key_id"`
	SecretAccessKey string `mapstructure:"secret_access_key"`
	BucketName      string `mapstructure:"bucket_name"`
	UseSSL          bool   `mapstructure:"use_ssl"`
}

// JWTConfig defines JWT specific configuration
type JWTConfig struct {
	Secret     string        `mapstructure:"secret"`
	Expiration time.Duration `mapstructure:"expiration"` // duration string in YAML/env, e.g. "60m"
}

// AuthConfig holds account settings.
type AuthConfig struct {
	// AdminEmails register with the admin role; comma separated in env.
	AdminEmails []string `mapstructure:"admin_emails"`
}

// LogConfig controls the zerolog global logger.
type LogConfig struct {
	Level  string `mapstructure:"level"`  // debug, info, warn, error
	Format string `mapstructure:"format"` // json or console
}

// GoalsConfig holds the targets applied to users who have not set their own.
type GoalsConfig struct {
	DailyCalories     int     `mapstructure:"daily_calories"`
	ProteinPct        int     `mapstructure:"protein_pct"`
	CarbsPct          int     `mapstructure:"carbs_pct"`
	FatPct            int     `mapstructure:"fat_pct"`
	StepGoal          int     `mapstructure:"step_goal"`
	WaterGoalML       float64 `mapstructure:"water_goal_ml"`
	SleepGoalHours    float64 `mapstructure:"sleep_goal_hours"`
	BurnKcalPerMinute float64 `mapstructure:"burn_kcal_per_minute"`
}

// LoadConfig reads configuration from an optional .env file, a config.yaml in path,
// and environment variables (server.address -> SERVER_ADDRESS).
func LoadConfig(path string) (config Config, err error) {
	// A missing .env is normal outside local development.
	_ = godotenv.Load(strings.TrimSuffix(path, "/") + "/.env")

	v := viper.New()
	v.AddConfigPath(path)
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(`.`, `_`))

	setDefaults(v)

	err = v.ReadInConfig()
	var notFound viper.ConfigFileNotFoundError
	if errors.As(err, &notFound) {
		err = nil // Proceed on defaults/env vars only
	} else if err != nil {
		return
	}

	if err = v.Unmarshal(&config); err != nil {
		return
	}
	return config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.address", ":8080")
	v.SetDefault("database.uri", "mongodb://localhost:27017")
	v.SetDefault("database.name", "fittrack")
	// Keys need a default for AutomaticEnv to pick them up during Unmarshal.
	v.SetDefault("s3.endpoint", "")
	v.SetDefault("s3.region", "us-east-1")
	v.SetDefault("s3.access_key_id", "")
	v.SetDefault("s3.secret_access_key", "")
	v.SetDefault("s3.bucket_name", "fittrack-progress")
	v.SetDefault("s3.use_ssl", true)
	v.SetDefault("jwt.secret", "")
	v.SetDefault("jwt.expiration", "1h")
	v.SetDefault("auth.admin_emails", []string{})
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")

	v.SetDefault("goals.daily_calories", 2000)
	v.SetDefault("goals.protein_pct", 30)
	v.SetDefault("goals.carbs_pct", 40)
	v.SetDefault("goals.fat_pct", 30)
	v.SetDefault("goals.step_goal", 10000)
	v.SetDefault("goals.water_goal_ml", 2500)
	v.SetDefault("goals.sleep_goal_hours", 8)
	v.SetDefault("goals.burn_kcal_per_minute", 7)
}
