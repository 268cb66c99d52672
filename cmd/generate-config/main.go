package main

import (
	"os"

	"gopkg.in/yaml.v2"
	"karma/internal/config"
)

func main() {
	if err := yaml.NewEncoder(os.Stdout).Encode(config.DefaultConfig()); err != nil {
		panic(err)
	}
}
