// Package config loads the run configuration: a YAML file, overridden by environment
// variables, with a .env file loaded into the environment first.
package config

import(
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

type Config struct {
	Log        Log        `yaml:"log"`
	Input      Input      `yaml:"input"`
	Output     Output     `yaml:"output"`
	Geocode    Geocode    `yaml:"geocode"`
	Redis      Redis      `yaml:"redis"`
	Translate  Translate  `yaml:"translate"`
	BigQuery   BigQuery   `yaml:"bigquery"`
	Analysis   Analysis   `yaml:"analysis"`
	Render     Render     `yaml:"render"`
}

type Log struct {
	Level string `yaml:"level" env:"FQ_LOG_LEVEL" env-default:"info"`
}

type Input struct {
	Flights          string `yaml:"flights" env:"FQ_FLIGHTS" env-default:"民航航班信息.xlsx"`
	FlightsSheet     string `yaml:"flights_sheet" env:"FQ_FLIGHTS_SHEET"`
	Populations      string `yaml:"populations" env:"FQ_POPULATIONS" env-default:"海外华人人口.xlsx"`
	PopulationsSheet string `yaml:"populations_sheet" env:"FQ_POPULATIONS_SHEET"`
	Continents       string `yaml:"continents" env:"FQ_CONTINENTS" env-default:"country_code.csv"`
}

type Output struct {
	Dest string `yaml:"dest" env:"FQ_OUTPUT" env-default:"out"`
}

type Geocode struct {
	Endpoint   string        `yaml:"endpoint" env:"FQ_GEOCODE_ENDPOINT" env-default:"https://nominatim.openstreetmap.org/search"`
	UserAgent  string        `yaml:"user_agent" env:"FQ_GEOCODE_USER_AGENT" env-default:"flightquota/1.0"`
	Timeout    time.Duration `yaml:"timeout" env:"FQ_GEOCODE_TIMEOUT" env-default:"10s"`
	RatePerSec float64       `yaml:"rate_per_sec" env:"FQ_GEOCODE_RATE" env-default:"1"`
	Offline    bool          `yaml:"offline" env:"FQ_GEOCODE_OFFLINE" env-default:"false"`
}

// Redis caches geocoder answers; a blank address turns the cache off.
type Redis struct {
	Addr     string        `yaml:"addr" env:"FQ_REDIS_ADDR"`
	Password string        `yaml:"password" env:"FQ_REDIS_PASSWORD"`
	DB       int           `yaml:"db" env:"FQ_REDIS_DB" env-default:"0"`
	TTL      time.Duration `yaml:"ttl" env:"FQ_REDIS_TTL" env-default:"720h"`
}

type Translate struct {
	APIKey string `yaml:"api_key" env:"FQ_TRANSLATE_API_KEY"`
	Target string `yaml:"target" env:"FQ_TRANSLATE_TARGET" env-default:"en"`
	Source string `yaml:"source" env:"FQ_TRANSLATE_SOURCE"`
}

type BigQuery struct {
	Project string `yaml:"project" env:"FQ_BQ_PROJECT"`
	Dataset string `yaml:"dataset" env:"FQ_BQ_DATASET" env-default:"flightquota"`
	Table   string `yaml:"table" env:"FQ_BQ_TABLE" env-default:"country_quota"`
	Mode    string `yaml:"mode" env:"FQ_BQ_MODE" env-default:"stream"` // stream|load
}

type Analysis struct {
	HomeCountry  string `yaml:"home_country" env:"FQ_HOME_COUNTRY" env-default:"中国"`
	FocusCountry string `yaml:"focus_country" env:"FQ_FOCUS_COUNTRY" env-default:"美国"`
}

type Render struct {
	Font string `yaml:"font" env:"FQ_FONT"` // a TTF with CJK glyphs
}

// {{{ Load

// Load reads the config file if there is one; without it, environment and defaults
// still apply.
func Load(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("config .env: %w", err)
	}

	cfg := &Config{}

	if _,err := os.Stat(path); path != "" && err == nil {
		if err := cleanenv.ReadConfig(path, cfg); err != nil {
			return nil, fmt.Errorf("config error: %w", err)
		}
	} else {
		if err := cleanenv.ReadEnv(cfg); err != nil {
			return nil, fmt.Errorf("config error: %w", err)
		}
	}

	if err := cfg.Validate(); err != nil { return nil, err }
	return cfg, nil
}

// }}}
// {{{ cfg.Validate

func (cfg *Config)Validate() error {
	if cfg.Input.Flights == "" { return fmt.Errorf("config: input.flights not set") }
	if cfg.Output.Dest == "" { return fmt.Errorf("config: output.dest not set") }
	if cfg.Geocode.RatePerSec <= 0 {
		return fmt.Errorf("config: geocode.rate_per_sec must be positive, have %v", cfg.Geocode.RatePerSec)
	}
	if cfg.Analysis.HomeCountry == "" { return fmt.Errorf("config: analysis.home_country not set") }
	switch cfg.BigQuery.Mode {
	case "stream", "load":
	default: return fmt.Errorf("config: bigquery.mode '%s' not stream|load", cfg.BigQuery.Mode)
	}
	if _,err := ParseLevel(cfg.Log.Level); err != nil { return err }
	return nil
}

// }}}

// {{{ -------------------------={ E N D }=----------------------------------

// Local variables:
// folded-file: t
// end:

// }}}
