package shared

import (
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

type Config struct {
	AppEnv         string
	HTTPAddr       string
	MetricsAddr    string
	MongoURI       string
	MongoDB        string
	CORSOrigins    []string
	RateRPS        int
	RateBurst      int
	RequestTimeout time.Duration
	SeedFile       string
	SeedWorkers    int
}

// Load reads configuration env-first with an optional config.yaml alongside
// the binary. Env keys are the upper-cased setting names (HTTP_ADDR, MONGO_URI, ...).
func Load() Config {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AutomaticEnv()

	v.SetDefault("app_env", "prod")
	v.SetDefault("http_addr", ":8080")
	v.SetDefault("metrics_addr", "")
	v.SetDefault("mongo_uri", "mongodb://localhost:27017")
	v.SetDefault("mongo_db", "milliondb")
	v.SetDefault("cors_origins", "http://localhost:3000,http://localhost:5173")
	v.SetDefault("rate_rps", 20)
	v.SetDefault("rate_burst", 40)
	v.SetDefault("request_timeout_seconds", 15)
	v.SetDefault("seed_file", "fixtures/properties.json")
	v.SetDefault("seed_workers", 8)

	if err := v.ReadInConfig(); err == nil {
		log.Info().Str("file", v.ConfigFileUsed()).Msg("loaded config file")
	}

	return Config{
		AppEnv:         v.GetString("app_env"),
		HTTPAddr:       v.GetString("http_addr"),
		MetricsAddr:    v.GetString("metrics_addr"),
		MongoURI:       v.GetString("mongo_uri"),
		MongoDB:        v.GetString("mongo_db"),
		CORSOrigins:    splitCSV(v.GetString("cors_origins")),
		RateRPS:        v.GetInt("rate_rps"),
		RateBurst:      v.GetInt("rate_burst"),
		RequestTimeout: time.Duration(v.GetInt("request_timeout_seconds")) * time.Second,
		SeedFile:       v.GetString("seed_file"),
		SeedWorkers:    v.GetInt("seed_workers"),
	}
}

func splitCSV(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if t := strings.TrimSpace(p); t != "" {
			out = append(out, t)
		}
	}
	return out
}
