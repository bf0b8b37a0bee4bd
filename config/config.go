package config

import (
	"errors"
	"fmt"
	"strings"

	"cpu-scheduler/internal/logger"
	"github.com/spf13/viper"
)

type HistoryConfig struct {
	DSN string // empty disables history
}

type MetricsConfig struct {
	Enabled bool
	Path    string
}

type SchedulerConfig struct {
	Port                                 int
	RoundRobinTimeQuantum                int
	MultilevelFeedbackQueueAgingInterval int
	Log                                  logger.Config
	History                              HistoryConfig
	Metrics                              MetricsConfig
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("port", 9095)
	v.SetDefault("scheduler.round_robin.time_quantum", 2)
	v.SetDefault("scheduler.multilevel_feedback_queue.aging_interval", 20)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
	v.SetDefault("history.dsn", "")
	v.SetDefault("metrics.enabled", true)
	v.SetDefault("metrics.path", "/metrics")
}

// Load reads the YAML config at path, or config.yaml from the working
// directory when path is empty. A missing default file is not an error.
// SCHEDULER_* environment variables override file values.
func Load(path string) (*SchedulerConfig, error) {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix("SCHEDULER")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("./")
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	config := &SchedulerConfig{}
	config.Port = v.GetInt("port")
	config.RoundRobinTimeQuantum = v.GetInt("scheduler.round_robin.time_quantum")
	config.MultilevelFeedbackQueueAgingInterval = v.GetInt("scheduler.multilevel_feedback_queue.aging_interval")
	config.Log = logger.Config{
		Level:      v.GetString("log.level"),
		Format:     v.GetString("log.format"),
		File:       v.GetString("log.file"),
		MaxSizeMB:  v.GetInt("log.max_size_mb"),
		MaxBackups: v.GetInt("log.max_backups"),
		MaxAgeDays: v.GetInt("log.max_age_days"),
		Compress:   v.GetBool("log.compress"),
	}
	config.History.DSN = v.GetString("history.dsn")
	config.Metrics.Enabled = v.GetBool("metrics.enabled")
	config.Metrics.Path = v.GetString("metrics.path")

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

func (c *SchedulerConfig) Validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("invalid port %d", c.Port)
	}
	if c.RoundRobinTimeQuantum <= 0 {
		return fmt.Errorf("scheduler.round_robin.time_quantum must be positive, got %d", c.RoundRobinTimeQuantum)
	}
	if c.MultilevelFeedbackQueueAgingInterval <= 0 {
		return fmt.Errorf("scheduler.multilevel_feedback_queue.aging_interval must be positive, got %d", c.MultilevelFeedbackQueueAgingInterval)
	}
	if c.Metrics.Enabled && !strings.HasPrefix(c.Metrics.Path, "/") {
		return fmt.Errorf("metrics.path must start with '/', got %q", c.Metrics.Path)
	}
	if _, err := logger.ParseLevel(c.Log.Level); err != nil {
		return err
	}
	return nil
}
