package configuration

import (
	"fmt"
	"os"
	"strconv"

	"video-uploader/infrastructure/logger"

	"github.com/spf13/viper"
)

type Config struct {
	App     App     `json:"app"`
	Backend Backend `json:"backend"`
	Upload  Upload  `json:"upload"`
	Cors    Cors    `json:"cors"`
}

type App struct {
	Port int `json:"port"`
}

// Backend points at the remote video service that owns authentication,
// asset metadata and capability issuance.
type Backend struct {
	Host           string `json:"host"`
	TimeoutSeconds int    `json:"timeoutSeconds"`
}

// Upload constrains the media family accepted by the upload dialog. The
// backend currently processes a single container format.
type Upload struct {
	AllowedType string `json:"allowedType"`
}

type Cors struct {
	Origins []string `json:"origins"`
}

var C Config

func init() {
	LoadConfig()
	initApp(&C)
	initBackend(&C)
}

func LoadConfig() {
	name := getConfig()
	viper.SetConfigName(name)
	viper.SetConfigType("json")
	viper.AddConfigPath(".")
	viper.AddConfigPath("../")
	viper.AddConfigPath("../../")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			logger.GetLogger().Warn("Config file not found")
		} else {
			logger.GetLogger().WithField("error", err).Error("Error reading config file")
		}
	}

	if err := viper.Unmarshal(&C); err != nil {
		logger.GetLogger().WithField("error", err).Error("Viper unable to decode into struct")
	}
	logger.GetLogger().WithField("config", name).Info("Config set up successfully")
}

func getConfig() string {
	name := "config"
	env := os.Getenv("ENV")
	if env != "" {
		name = fmt.Sprintf("%s-%s", name, env)
	}
	return name
}

func initApp(C *Config) {
	// Port resolution order (env overrides config): APP_PORT -> PORT -> config -> default 10002
	if v := os.Getenv("APP_PORT"); v != "" {
		if p, err := strconv.Atoi(v); err == nil {
			C.App.Port = p
		}
	} else if v := os.Getenv("PORT"); v != "" {
		if p, err := strconv.Atoi(v); err == nil {
			C.App.Port = p
		}
	}
	if C.App.Port == 0 {
		C.App.Port = 10002
	}
}

func initBackend(C *Config) {
	if v := os.Getenv("BACKEND_HOST"); v != "" {
		C.Backend.Host = v
	}
	if C.Backend.TimeoutSeconds == 0 {
		C.Backend.TimeoutSeconds = 60
	}
	if C.Upload.AllowedType == "" {
		C.Upload.AllowedType = "video/mp4"
	}
	if len(C.Cors.Origins) == 0 {
		C.Cors.Origins = []string{"http://localhost:4200", "http://localhost:3000"}
	}
	if C.Backend.Host == "" {
		logger.GetLogger().Warn("Backend.Host not set; every backend call will fail. Provide BACKEND_HOST via environment.")
	}
}
