package config

import (
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	APIBaseURL   string `mapstructure:"API_BASE_URL"`
	HTTPTimeout  int    `mapstructure:"HTTP_TIMEOUT_SECONDS"`
	PhotoQuality int    `mapstructure:"PHOTO_QUALITY"`
	LocationCmd  string `mapstructure:"LOCATION_CMD"`
	CameraCmd    string `mapstructure:"CAMERA_CMD"`
}

func Load() Config {
	_ = godotenv.Load()

	viper.AutomaticEnv()
	viper.SetDefault("API_BASE_URL", "http://localhost:3333")
	viper.SetDefault("HTTP_TIMEOUT_SECONDS", 15)
	viper.SetDefault("PHOTO_QUALITY", 50)
	viper.SetDefault("LOCATION_CMD", "termux-location")
	viper.SetDefault("CAMERA_CMD", "termux-camera-photo")

	var cfg Config
	_ = viper.Unmarshal(&cfg)
	return cfg
}
