package cmd

import (
	"github.com/pkg/errors"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"sortbench/harness"
)

// cfg layers the config file under the benchmark flags. A flag that was set
// on the command line always wins.
var cfg = viper.New()

// bindings maps config keys to the flags that override them.
var bindings = map[string]string{
	"sizes":      "sizes",
	"trials":     "trials",
	"seed":       "seed",
	"range":      "range",
	"algorithms": "algorithms",
	"bogo_size":  "bogo-size",
	"bogo_max":   "bogo-max",
	"summary":    "summary",
}

func bindFlags(flags *pflag.FlagSet) {
	for key, name := range bindings {
		if err := cfg.BindPFlag(key, flags.Lookup(name)); err != nil {
			panic(err)
		}
	}
}

func loadConfig() error {
	if cfgFile == "" {
		return nil
	}
	cfg.SetConfigFile(cfgFile)
	if err := cfg.ReadInConfig(); err != nil {
		return errors.Wrapf(err, "could not read config file %s", cfgFile)
	}
	log.Infof("using config file %s", cfg.ConfigFileUsed())
	return nil
}

// programSettings collects the benchmark settings from flags and config.
func programSettings() (harness.Settings, error) {
	s := harness.Settings{
		Sizes:       cfg.GetIntSlice("sizes"),
		Trials:      cfg.GetInt("trials"),
		Seed:        cfg.GetInt64("seed"),
		Bound:       cfg.GetInt("range"),
		Algorithms:  cfg.GetStringSlice("algorithms"),
		BogoSize:    cfg.GetInt("bogo_size"),
		BogoMaxSize: cfg.GetInt("bogo_max"),
		Summary:     cfg.GetBool("summary"),
	}
	if err := s.Validate(); err != nil {
		return s, errors.Wrap(err, "invalid settings")
	}
	return s, nil
}
