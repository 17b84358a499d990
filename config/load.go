package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/MoeraOrg/moera-tools/naming"
	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
)

// EnvPrefix is the prefix of environment variables overriding config file
// values, e.g. MOERA_NAMING_SERVER.
const EnvPrefix = "MOERA"

// Load reads the configuration. cfgFile overrides the default search when
// non-empty; a missing default file is not an error, the defaults apply.
func Load(cfgFile string) (*Config, error) {
	v := viper.New()

	v.SetDefault("naming-server", naming.MainServer)

	if cfgFile == "" {
		cfgFile = os.Getenv(EnvPrefix + "_CONFIG")
	}
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName(".moerc")
		v.SetConfigType("yaml")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(home)
		}
		v.AddConfigPath(".")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	for _, key := range []string{"naming-server", "host", "keys"} {
		_ = v.BindEnv(key)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("couldn't read config: %w", err)
		}
	}

	cfg := &Config{}
	err := v.Unmarshal(cfg, viper.DecodeHook(mapstructure.TextUnmarshallerHookFunc()))
	if err != nil {
		return nil, fmt.Errorf("couldn't parse config: %w", err)
	}
	return cfg, nil
}
