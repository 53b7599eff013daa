package config

import (
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	App      AppConfig      `mapstructure:"app"`
	Server   ServerConfig   `mapstructure:"server"`
	Log      LogConfig      `mapstructure:"log"`
	Prices   PriceConfig    `mapstructure:"prices"`
	Forecast ForecastConfig `mapstructure:"forecast"`
	Upload   UploadConfig   `mapstructure:"upload"`
}

type AppConfig struct {
	Env string `mapstructure:"env"`
}

type ServerConfig struct {
	HTTPAddr string `mapstructure:"http_addr"`
}

type LogConfig struct {
	Level             string `mapstructure:"level"`
	Encoding          string `mapstructure:"encoding"`
	Development       bool   `mapstructure:"development"`
	Sampling          bool   `mapstructure:"sampling"`
	DisableCaller     bool   `mapstructure:"disable_caller"`
	DisableStacktrace bool   `mapstructure:"disable_stacktrace"`
}

// PriceConfig holds the fallback unit prices assigned when a source file
// carries no price columns.
type PriceConfig struct {
	Adult      float64 `mapstructure:"adult"`
	Child      float64 `mapstructure:"child"`
	Foreigner  float64 `mapstructure:"foreigner"`
	Camera     float64 `mapstructure:"camera"`
	HendCamera float64 `mapstructure:"hend_camera"`
}

type ForecastConfig struct {
	// YearlyThreshold is the number of historical rows above which yearly
	// seasonality is fitted.
	YearlyThreshold       int     `mapstructure:"yearly_threshold"`
	SeasonalityPriorScale float64 `mapstructure:"seasonality_prior_scale"`
	ChangepointPriorScale float64 `mapstructure:"changepoint_prior_scale"`
	Changepoints          int     `mapstructure:"changepoints"`
	HolidayCountry        string  `mapstructure:"holiday_country"`
	Horizons              []int   `mapstructure:"horizons"`
}

type UploadConfig struct {
	MaxBytes int64 `mapstructure:"max_bytes"`
}

func Load(path string, envOnly bool) (Config, error) {
	v := viper.New()
	v.SetEnvPrefix("ZP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	v.AutomaticEnv()

	v.SetDefault("app.env", "dev")
	v.SetDefault("server.http_addr", ":8080")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.encoding", "console")
	v.SetDefault("log.development", true)
	v.SetDefault("log.sampling", false)
	v.SetDefault("log.disable_caller", false)
	v.SetDefault("log.disable_stacktrace", false)

	v.SetDefault("prices.adult", 25.00)
	v.SetDefault("prices.child", 15.00)
	v.SetDefault("prices.foreigner", 50.00)
	v.SetDefault("prices.camera", 10.00)
	v.SetDefault("prices.hend_camera", 20.00)

	v.SetDefault("forecast.yearly_threshold", 360)
	v.SetDefault("forecast.seasonality_prior_scale", 0.1)
	v.SetDefault("forecast.changepoint_prior_scale", 0.05)
	v.SetDefault("forecast.changepoints", 25)
	v.SetDefault("forecast.holiday_country", "US")
	v.SetDefault("forecast.horizons", []int{30, 90, 180, 365})

	v.SetDefault("upload.max_bytes", 16<<20)

	if !envOnly {
		if err := v.ReadInConfig(); err != nil {
			return Config{}, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, err
	}

	return cfg, nil
}
