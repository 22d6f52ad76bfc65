// Package configpkg provides parsing functionality for environment variables.
package configpkg

import (
	"time"

	"github.com/spf13/viper"
)

// Config stores all configuration of the application.
//
// The values are read by viper from a config file or environment variables.
type Config struct {
	ServerAddress           string        `mapstructure:"SERVER_ADDRESS"`
	TokenSymmetricKey       string        `mapstructure:"TOKEN_SYMMETRIC_KEY"`
	AccessTokenDuration     time.Duration `mapstructure:"ACCESS_TOKEN_DURATION"`
	RefreshTokenDuration    time.Duration `mapstructure:"REFRESH_TOKEN_DURATION"`
	MinimumWithdrawal       string        `mapstructure:"MINIMUM_WITHDRAWAL"`
	WithdrawalFeeRate       string        `mapstructure:"WITHDRAWAL_FEE_RATE"`
	OpeningAvailableAmount  string        `mapstructure:"OPENING_AVAILABLE_AMOUNT"`
	OpeningFrozenAmount     string        `mapstructure:"OPENING_FROZEN_AMOUNT"`
	OpeningProcessingAmount string        `mapstructure:"OPENING_PROCESSING_AMOUNT"`
	OpeningTotalWithdrawn   string        `mapstructure:"OPENING_TOTAL_WITHDRAWN"`
	Environment             string        `mapstructure:"GO_ENV"`
}

// Load read configuration from file or environment variables.
func Load(path string) (Config, error) {
	var c Config

	viper.AddConfigPath(path)
	viper.SetConfigName("app")
	viper.SetConfigType("env")

	viper.AutomaticEnv()

	err := viper.ReadInConfig()
	if err != nil {
		return c, err
	}

	err = viper.Unmarshal(&c)
	if err != nil {
		return c, err
	}

	return c, nil
}
