package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"geodraw/internal/geom"
)

// Config holds all application configuration.
type Config struct {
	Log    LogConfig    `mapstructure:"log"`
	Editor EditorConfig `mapstructure:"editor"`
	Map    MapConfig    `mapstructure:"map"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	// File receives the log output. The terminal belongs to the UI, so an
	// empty value discards logs.
	File string `mapstructure:"file"`
}

type EditorConfig struct {
	Units string `mapstructure:"units"`
	// Data is a file loaded into the collection at start.
	Data string `mapstructure:"data"`
}

// MapConfig sets the initial viewport when no data is loaded.
type MapConfig struct {
	BBox []float64 `mapstructure:"bbox"`
}

func (e EditorConfig) DistanceUnits() geom.Units {
	u, err := geom.ParseUnits(e.Units)
	if err != nil {
		return geom.Kilometers
	}
	return u
}

func (m MapConfig) Bounds() geom.BBox {
	if len(m.BBox) != 4 {
		return geom.BBox{MinX: -180, MinY: -85, MaxX: 180, MaxY: 85}
	}
	return geom.BBox{MinX: m.BBox[0], MinY: m.BBox[1], MaxX: m.BBox[2], MaxY: m.BBox[3]}
}

// Load reads configuration from an optional file and environment variables.
// path may be empty, in which case config.yaml is looked up in the working
// directory and ./configs.
func Load(path string) (*Config, error) {
	v := viper.New()

	// Defaults
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")
	v.SetDefault("log.file", "")
	v.SetDefault("editor.units", "kilometers")
	v.SetDefault("editor.data", "")
	v.SetDefault("map.bbox", []float64{-180, -85, 180, 85})

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./configs")
		_ = v.ReadInConfig() // OK if missing
	}

	// Environment variables: GEODRAW_LOG_LEVEL → log.level
	v.SetEnvPrefix("GEODRAW")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks that configuration fields are sane.
func (c *Config) Validate() error {
	var errs []string

	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "error":
	default:
		errs = append(errs, fmt.Sprintf("log.level must be debug, info, warn or error, got %q", c.Log.Level))
	}
	switch strings.ToLower(c.Log.Format) {
	case "json", "text":
	default:
		errs = append(errs, fmt.Sprintf("log.format must be json or text, got %q", c.Log.Format))
	}
	if _, err := geom.ParseUnits(c.Editor.Units); err != nil {
		errs = append(errs, "editor.units: "+err.Error())
	}
	if len(c.Map.BBox) != 4 {
		errs = append(errs, fmt.Sprintf("map.bbox needs 4 values, got %d", len(c.Map.BBox)))
	} else if !c.Map.Bounds().Valid() {
		errs = append(errs, "map.bbox must be [minX, minY, maxX, maxY] with min < max")
	}

	if len(errs) > 0 {
		return fmt.Errorf("config validation failed:\n  - %s", strings.Join(errs, "\n  - "))
	}
	return nil
}
