package main

import (
	"flag"
	"os"

	"github.com/rangelab/rangectl/internal/logging"
	"github.com/rangelab/rangectl/internal/master"
	"github.com/rangelab/rangectl/internal/operator"
)

func main() {
	configPath := flag.String("config", "", "path to masterctl TOML config")
	flag.Parse()

	log := logging.Init("masterctl")

	cfg := master.DefaultConfig()
	if *configPath != "" {
		loaded, err := loadConfig(*configPath)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to load master config")
		}
		cfg = loaded
		log.Info().Str("path", *configPath).Msg("loaded master config")
	}

	prompt := operator.NewPrompter(os.Stdin, os.Stdout)
	svc := master.NewService(cfg, prompt, os.Stdout, log)
	if err := svc.Run(); err != nil {
		log.Fatal().Err(err).Msg("exchange failed")
	}
}
