package config

import (
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/viper"

	"github.com/mahmoudkheyrati/cpu-scheduler-simulator/internal/schedulers"
)

// ErrInvalidConfig is returned by Validate.
var ErrInvalidConfig = errors.New("invalid config")

const (
	keyPort                                     = "port"
	keyLogLevel                                 = "log_level"
	keyRoundRobinTimeQuantum                    = "scheduler.round_robin.time_quantum"
	keyMultilevelFeedbackQueueLevelsTimeQuantum = "scheduler.multilevel_feedback_queue.levels_time_quantum"
	keyCacheTTL                                 = "cache.ttl"
)

type SchedulerConfig struct {
	Port                                     int
	LogLevel                                 string
	RoundRobinTimeQuantum                    int
	MultilevelFeedbackQueueLevelsTimeQuantum []int
	ResultCacheTTL                           time.Duration
}

// Load reads configFile, or ./config.yaml when configFile is empty, on top of
// the built-in defaults. Environment variables prefixed with CPUSCHED_ win
// over the file, e.g. CPUSCHED_SCHEDULER_ROUND_ROBIN_TIME_QUANTUM.
// A missing ./config.yaml is not an error; a missing explicit file is.
func Load(configFile string) (*SchedulerConfig, error) {
	v := viper.New()
	v.SetDefault(keyPort, 9095)
	v.SetDefault(keyLogLevel, "warn")
	v.SetDefault(keyRoundRobinTimeQuantum, 4)
	v.SetDefault(keyMultilevelFeedbackQueueLevelsTimeQuantum, []int{4, 8, 16})
	v.SetDefault(keyCacheTTL, 10*time.Minute)

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("./")
	}
	v.SetEnvPrefix("CPUSCHED")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return nil, errors.Wrap(err, "reading config")
		}
	}

	cfg := &SchedulerConfig{
		Port:                                     v.GetInt(keyPort),
		LogLevel:                                 v.GetString(keyLogLevel),
		RoundRobinTimeQuantum:                    v.GetInt(keyRoundRobinTimeQuantum),
		MultilevelFeedbackQueueLevelsTimeQuantum: v.GetIntSlice(keyMultilevelFeedbackQueueLevelsTimeQuantum),
		ResultCacheTTL:                           v.GetDuration(keyCacheTTL),
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *SchedulerConfig) Validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return errors.Wrapf(ErrInvalidConfig, "port %d out of range", c.Port)
	}
	if c.RoundRobinTimeQuantum <= 0 {
		return errors.Wrapf(ErrInvalidConfig, "round robin time quantum must be positive, got %d", c.RoundRobinTimeQuantum)
	}
	if len(c.MultilevelFeedbackQueueLevelsTimeQuantum) == 0 {
		return errors.Wrap(ErrInvalidConfig, "multilevel feedback queue needs at least one level")
	}
	for level, q := range c.MultilevelFeedbackQueueLevelsTimeQuantum {
		if q <= 0 {
			return errors.Wrapf(ErrInvalidConfig, "multilevel feedback queue level %d time quantum must be positive, got %d", level, q)
		}
	}
	if c.ResultCacheTTL < 0 {
		return errors.Wrapf(ErrInvalidConfig, "cache ttl must not be negative, got %s", c.ResultCacheTTL)
	}
	return nil
}

// Options returns the scheduler parameters carried by the config.
func (c *SchedulerConfig) Options() schedulers.Options {
	levels := make([]int, len(c.MultilevelFeedbackQueueLevelsTimeQuantum))
	copy(levels, c.MultilevelFeedbackQueueLevelsTimeQuantum)
	return schedulers.Options{
		RoundRobinTimeQuantum:                    c.RoundRobinTimeQuantum,
		MultilevelFeedbackQueueLevelsTimeQuantum: levels,
	}
}
