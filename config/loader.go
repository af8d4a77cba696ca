package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment override, e.g. HEAVYEDGE_MEAN_GRID_NUM.
const EnvPrefix = "HEAVYEDGE"

// Load reads the configuration from path, or from ./heavyedge.yaml,
// ./configs/heavyedge.yaml or $HOME/.config/heavyedge/heavyedge.yaml when
// path is empty.
// A missing default file is not an error.
func Load(path string) (*Config, error) {
	return LoadViper(viper.New(), path)
}

// LoadViper is Load on a caller-provided viper instance, so flags bound
// with BindPFlag beforehand take precedence over file and environment.
func LoadViper(v *viper.Viper, path string) (*Config, error) {
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("heavyedge")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./configs")
		v.AddConfigPath("$HOME/.config/heavyedge")
	}

	SetDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("config: read %s: %w", v.ConfigFileUsed(), err)
		}
	}

	return parse(v)
}

// SetDefaults registers the values of Default on v.
func SetDefaults(v *viper.Viper) {
	d := Default()
	v.SetDefault("mean.grid_num", d.Mean.GridNum)
	v.SetDefault("mean.batch_size", d.Mean.BatchSize)
	v.SetDefault("segreg.tol", d.Segreg.Tol)
	v.SetDefault("segreg.max_iter", d.Segreg.MaxIter)
	v.SetDefault("segreg.max_halvings", d.Segreg.MaxHalvings)
	v.SetDefault("logging.level", d.Logging.Level)
	v.SetDefault("logging.format", d.Logging.Format)
	v.SetDefault("logging.output_path", d.Logging.OutputPath)
	v.SetDefault("store.path", d.Store.Path)
}

func parse(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config: unmarshal: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}
