package territory

import (
	"io"

	yaml "gopkg.in/yaml.v2"
)

const (
	DefaultPriceCap        float64 = 2_000_000_000
	DefaultPricePerAreaCap float64 = 30_000_000
	DefaultHotThreshold    float64 = 0.7
)

type Config struct {
	PriceCap        float64 `yaml:"priceCap"`
	PricePerAreaCap float64 `yaml:"pricePerAreaCap"`
	HotThreshold    float64 `yaml:"hotThreshold"`
}

func DefaultConfig() Config {
	return Config{
		PriceCap:        DefaultPriceCap,
		PricePerAreaCap: DefaultPricePerAreaCap,
		HotThreshold:    DefaultHotThreshold,
	}
}

// WithDefaults fills in any caps that are missing or not positive.
func (c Config) WithDefaults() Config {
	d := DefaultConfig()
	if c.PriceCap <= 0 {
		c.PriceCap = d.PriceCap
	}
	if c.PricePerAreaCap <= 0 {
		c.PricePerAreaCap = d.PricePerAreaCap
	}
	if c.HotThreshold <= 0 || c.HotThreshold > 1 {
		c.HotThreshold = d.HotThreshold
	}
	return c
}

func LoadConfiguration(data io.Reader) (*Config, error) {
	buf, err := io.ReadAll(data)
	if err != nil {
		return nil, err
	}

	cfg := Config{}
	if err := yaml.Unmarshal(buf, &cfg); err != nil {
		return nil, err
	}

	cfg = cfg.WithDefaults()
	return &cfg, nil
}
