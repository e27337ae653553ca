package main

import (
	"github.com/aretw0/crib/pkg/adapters/fs"
	"github.com/spf13/viper"
)

// envPrefix namespaces every setting: CRIB_NOTES, CRIB_PATTERN, ...
const envPrefix = "CRIB"

// config is read from the environment only; argv belongs to the filters.
type config struct {
	Notes   string
	Pattern string
	Strict  bool
	Verbose bool
}

func loadConfig() config {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()

	v.SetDefault("notes", "")
	v.SetDefault("pattern", fs.DefaultPattern)
	v.SetDefault("strict", false)
	v.SetDefault("verbose", false)

	return config{
		Notes:   v.GetString("notes"),
		Pattern: v.GetString("pattern"),
		Strict:  v.GetBool("strict"),
		Verbose: v.GetBool("verbose"),
	}
}
