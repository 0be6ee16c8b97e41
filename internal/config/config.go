package config

import (
	"github.com/spf13/viper"
)

// Config holds the application settings, read from configs/app.env with
// environment-variable overrides.
type Config struct {
	ServerAddress string `mapstructure:"SERVER_ADDRESS"`
	IncidentsPath string `mapstructure:"INCIDENTS_PATH"`
	GeocodesPath  string `mapstructure:"GEOCODES_PATH"`
	PageTitle     string `mapstructure:"PAGE_TITLE"`
}

// LoadConfig reads configuration from the given directory.
func LoadConfig(path string) (config Config, err error) {
	viper.AddConfigPath(path)
	viper.SetConfigName("app")
	viper.SetConfigType("env")

	viper.AutomaticEnv()

	err = viper.ReadInConfig()
	if err != nil {
		return
	}

	err = viper.Unmarshal(&config)
	return
}
