package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/limaJavier/permtable/pkg/permutation"
	"github.com/mitchellh/mapstructure"
	"github.com/pkg/errors"
	"github.com/samber/lo"
	"gopkg.in/yaml.v3"
)

var ValidFormats = []string{"text", "cbor"}

type Config struct {
	Limit     uint64 `mapstructure:"limit"`
	Workers   int    `mapstructure:"workers"`
	ChunkSize uint64 `mapstructure:"chunkSize"`
	Order     string `mapstructure:"order"`
	Format    string `mapstructure:"format"`
	Compress  bool   `mapstructure:"compress"`
	Out       string `mapstructure:"out"`
	Verify    bool   `mapstructure:"verify"`
}

func Default() Config {
	return Config{
		Limit:   3,
		Workers: 1,
		Order:   permutation.Descending.String(),
		Format:  "text",
	}
}

// FromFile reads a JSON or YAML (by extension) config file on top of Default.
// Keys that are not fields of Config are rejected.
func FromFile(path string) (Config, error) {
	bytes, err := os.ReadFile(path)
	if err != nil {
		return Config{}, errors.Wrapf(err, "cannot read config file %v", path)
	}

	var raw map[string]any
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(bytes, &raw)
	default:
		err = json.Unmarshal(bytes, &raw)
	}
	if err != nil {
		return Config{}, errors.Wrapf(err, "cannot parse config file %v", path)
	}

	config := Default()
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		ErrorUnused: true,
		Result:      &config,
	})
	if err != nil {
		return Config{}, err
	}
	if err := decoder.Decode(raw); err != nil {
		return Config{}, errors.Wrapf(err, "invalid config file %v", path)
	}
	return config, nil
}

func (config Config) Validate() error {
	if config.Limit > permutation.MaxTableLimit {
		return errors.Errorf("limit must be at most %v: %v", permutation.MaxTableLimit, config.Limit)
	} else if config.Workers < 0 {
		return errors.Errorf("workers must not be negative: %v", config.Workers)
	} else if !lo.Contains(ValidFormats, strings.ToLower(config.Format)) {
		return errors.Errorf("%v is not a valid format, allowed values are: %v", config.Format, strings.Join(ValidFormats, ", "))
	}

	if _, err := permutation.ParseDecodeOrder(config.Order); err != nil {
		return err
	}
	return nil
}

// Options converts the config into build options; it assumes Validate succeeded.
func (config Config) Options() permutation.Options {
	order, _ := permutation.ParseDecodeOrder(config.Order)
	return permutation.Options{
		Workers:   config.Workers,
		ChunkSize: config.ChunkSize,
		Order:     order,
	}
}
