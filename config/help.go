package config

import (
	"encoding/json"
	"flag"
	"fmt"
)

const HelpMessage = `
  Identity service

  Usage:
    identity [flags]

  Flags:
    -config-path string   Path to the config yaml file (default "config.yaml")
    -help                 Show this help message

  Configuration is read from the yaml file and the environment; environment
  variables win.
`

func PrintHelp() {
	if HelpMessage != "" {
		fmt.Printf("%s", HelpMessage)
	} else {
		flag.Usage()
	}
}

// PrintConfig dumps the effective configuration with secrets masked.
func PrintConfig(cfg *Config) {
	masked := *cfg
	masked.Database.Password = "***"
	masked.Auth.JWTAccessSecret = "***"
	masked.Auth.JWTRefreshSecret = "***"

	out, err := json.MarshalIndent(masked, "", "  ")
	if err != nil {
		return
	}
	fmt.Println(string(out))
}
