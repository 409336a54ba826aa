package cli

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	configName = ".meretable"
	envPrefix  = "meretable"
)

// loadConfig reads the config file and environment into a fresh viper
// instance. An explicit cfgFile must exist; the default locations (home and
// working directory) are optional.
func loadConfig(cfgFile string, logger *log.Logger) (*viper.Viper, error) {
	v := viper.New()
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(home)
		}
		v.AddConfigPath(".")
		v.SetConfigType("toml")
		v.SetConfigName(configName)
	}
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
		logger.Debug("no config file found")
	} else {
		logger.Debug("using config file", "path", v.ConfigFileUsed())
	}
	return v, nil
}

// bindFlags copies config values onto flags that were not set explicitly.
func bindFlags(cmd *cobra.Command, v *viper.Viper, logger *log.Logger) error {
	var errs []error
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		if f.Changed || !v.IsSet(f.Name) {
			return
		}
		val := v.Get(f.Name)
		if err := cmd.Flags().Set(f.Name, fmt.Sprintf("%v", val)); err != nil {
			errs = append(errs, fmt.Errorf("config value for %q: %w", f.Name, err))
			return
		}
		logger.Debug("flag set from config", "flag", f.Name, "value", val)
	})
	return errors.Join(errs...)
}
