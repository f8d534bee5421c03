package config

import (
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/railscout/railscout/pkg/util"
)

// Endpoint describes the booking interface a searcher talks to.
type Endpoint struct {
	BaseURL   string `yaml:"baseUrl"`
	UserAgent string `yaml:"userAgent"`
}

type API struct {
	Listen string `yaml:"listen"`
}

type Cache struct {
	TTLMinutes int `yaml:"ttlMinutes"`
}

func (c Cache) TTL() time.Duration {
	return time.Duration(c.TTLMinutes) * time.Minute
}

type Config struct {
	Endpoint Endpoint `yaml:"endpoint"`
	API      API      `yaml:"api"`
	Cache    Cache    `yaml:"cache"`
}

func Defaults() Config {
	return Config{
		Endpoint: Endpoint{
			BaseURL:   "https://reiseauskunft.bahn.de/bin/query.exe/dn",
			UserAgent: "railscout",
		},
		API: API{
			Listen: ":8080",
		},
		Cache: Cache{
			TTLMinutes: 5,
		},
	}
}

// Load reads a yaml config file over the defaults. An empty path just
// returns defaults; environment variables win over both.
func Load(path string) (Config, error) {
	config := Defaults()

	if path != "" {
		configYaml, err := os.ReadFile(path)
		if err != nil {
			return config, err
		}

		if err := yaml.Unmarshal(configYaml, &config); err != nil {
			return config, err
		}
	}

	env := util.GetEnvironmentVariables()

	if env["RAILSCOUT_ENDPOINT_URL"] != "" {
		config.Endpoint.BaseURL = env["RAILSCOUT_ENDPOINT_URL"]
	}
	if env["RAILSCOUT_USER_AGENT"] != "" {
		config.Endpoint.UserAgent = env["RAILSCOUT_USER_AGENT"]
	}
	if env["RAILSCOUT_API_LISTEN"] != "" {
		config.API.Listen = env["RAILSCOUT_API_LISTEN"]
	}

	return config, nil
}
