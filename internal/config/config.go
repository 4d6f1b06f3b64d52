package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	Cache    CacheConfig
	Log      LogConfig
	Solver   SolverConfig
}

type ServerConfig struct {
	Host string
	Port int
	Env  string
}

type DatabaseConfig struct {
	Host            string
	Port            int
	User            string
	Password        string
	DBName          string
	SSLMode         string
	MaxConns        int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
}

type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

type CacheConfig struct {
	PlanCacheTTL time.Duration
}

type LogConfig struct {
	Level string
}

// SolverConfig tunes the route optimization.
type SolverConfig struct {
	// TimeBudget caps the search per meal combination.
	TimeBudget time.Duration
	// SkipPenalty is the objective cost of dropping an optional place.
	SkipPenalty int64
	// LatenessCoeff is the per-minute cost of arriving past closing time.
	LatenessCoeff int64
	// GraceMinutes widens every non-anchor time window on both sides.
	GraceMinutes int
	// MaxParallel bounds concurrently solved meal combinations.
	MaxParallel int
	// MaxPlaces bounds the candidate list per request.
	MaxPlaces int
}

func Load() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := &Config{
		Server: ServerConfig{
			Host: viper.GetString("API_HOST"),
			Port: viper.GetInt("API_PORT"),
			Env:  viper.GetString("API_ENV"),
		},
		Database: DatabaseConfig{
			Host:            viper.GetString("DB_HOST"),
			Port:            viper.GetInt("DB_PORT"),
			User:            viper.GetString("DB_USER"),
			Password:        viper.GetString("DB_PASSWORD"),
			DBName:          viper.GetString("DB_NAME"),
			SSLMode:         viper.GetString("DB_SSLMODE"),
			MaxConns:        viper.GetInt("DB_MAX_CONNS"),
			MaxIdleConns:    viper.GetInt("DB_MAX_IDLE_CONNS"),
			ConnMaxLifetime: time.Duration(viper.GetInt("DB_CONN_MAX_LIFETIME")) * time.Second,
			ConnMaxIdleTime: time.Duration(viper.GetInt("DB_CONN_MAX_IDLE_TIME")) * time.Second,
		},
		Redis: RedisConfig{
			Host:     viper.GetString("REDIS_HOST"),
			Port:     viper.GetInt("REDIS_PORT"),
			Password: viper.GetString("REDIS_PASSWORD"),
			DB:       viper.GetInt("REDIS_DB"),
		},
		Cache: CacheConfig{
			PlanCacheTTL: time.Duration(viper.GetInt("PLAN_CACHE_TTL")) * time.Second,
		},
		Log: LogConfig{
			Level: viper.GetString("LOG_LEVEL"),
		},
		Solver: SolverConfig{
			TimeBudget:    time.Duration(viper.GetInt("SOLVER_TIME_BUDGET_MS")) * time.Millisecond,
			SkipPenalty:   viper.GetInt64("SOLVER_SKIP_PENALTY"),
			LatenessCoeff: viper.GetInt64("SOLVER_LATENESS_COEFF"),
			GraceMinutes:  viper.GetInt("SOLVER_GRACE_MINUTES"),
			MaxParallel:   viper.GetInt("SOLVER_MAX_PARALLEL"),
			MaxPlaces:     viper.GetInt("SOLVER_MAX_PLACES"),
		},
	}

	// Set default values if not provided
	if cfg.Cache.PlanCacheTTL == 0 {
		cfg.Cache.PlanCacheTTL = time.Hour
	}
	if cfg.Solver.TimeBudget == 0 {
		cfg.Solver.TimeBudget = 10 * time.Second
	}
	if cfg.Solver.SkipPenalty == 0 {
		cfg.Solver.SkipPenalty = 1000
	}
	if cfg.Solver.LatenessCoeff == 0 {
		cfg.Solver.LatenessCoeff = 10
	}
	if cfg.Solver.GraceMinutes == 0 {
		cfg.Solver.GraceMinutes = 10
	}
	if cfg.Solver.MaxParallel == 0 {
		cfg.Solver.MaxParallel = 4
	}
	if cfg.Solver.MaxPlaces == 0 {
		cfg.Solver.MaxPlaces = 25
	}

	return cfg, nil
}

func (c *Config) GetServerAddr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

func (c *Config) GetDatabaseDSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Database.Host,
		c.Database.Port,
		c.Database.User,
		c.Database.Password,
		c.Database.DBName,
		c.Database.SSLMode,
	)
}

func (c *Config) GetRedisAddr() string {
	return fmt.Sprintf("%s:%d", c.Redis.Host, c.Redis.Port)
}
