// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: MIT-0

package provider

import (
	"fmt"

	"github.com/spf13/viper"
	"go.uber.org/zap"
)

const envPrefix = "SSM_PROVIDER"

const (
	keyCallbackDelaySeconds = "callback_delay_seconds"
	keyStabilizationRetries = "stabilization_retries"
	keySDKMaxAttempts       = "sdk_max_attempts"
	keyLogLevel             = "log_level"
)

// Config holds the settings shared by every resource handler. Values come
// from SSM_PROVIDER_* environment variables of the handler function.
type Config struct {
	CallbackDelaySeconds int64
	StabilizationRetries int
	SDKMaxAttempts       int
	LogLevel             zap.AtomicLevel
}

// LoadConfig reads the configuration from the environment.
func LoadConfig() (*Config, error) {
	return loadConfig(viper.New())
}

func loadConfig(v *viper.Viper) (*Config, error) {
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()
	v.SetDefault(keyCallbackDelaySeconds, 15)
	v.SetDefault(keyStabilizationRetries, 40)
	v.SetDefault(keySDKMaxAttempts, 5)
	v.SetDefault(keyLogLevel, "info")

	cfg := &Config{
		CallbackDelaySeconds: v.GetInt64(keyCallbackDelaySeconds),
		StabilizationRetries: v.GetInt(keyStabilizationRetries),
		SDKMaxAttempts:       v.GetInt(keySDKMaxAttempts),
	}
	if cfg.CallbackDelaySeconds <= 0 {
		return nil, fmt.Errorf("%s_%s must be positive", envPrefix, "CALLBACK_DELAY_SECONDS")
	}
	if cfg.StabilizationRetries <= 0 {
		return nil, fmt.Errorf("%s_%s must be positive", envPrefix, "STABILIZATION_RETRIES")
	}
	if cfg.SDKMaxAttempts <= 0 {
		return nil, fmt.Errorf("%s_%s must be positive", envPrefix, "SDK_MAX_ATTEMPTS")
	}
	level, err := zap.ParseAtomicLevel(v.GetString(keyLogLevel))
	if err != nil {
		return nil, err
	}
	cfg.LogLevel = level
	return cfg, nil
}

// DefaultConfig returns the configuration used when no overrides are set.
func DefaultConfig() *Config {
	return &Config{
		CallbackDelaySeconds: 15,
		StabilizationRetries: 40,
		SDKMaxAttempts:       5,
		LogLevel:             zap.NewAtomicLevelAt(zap.InfoLevel),
	}
}
