package main

import (
	"flag"
	"os"

	"github.com/rangelab/rangectl/internal/logging"
	"github.com/rangelab/rangectl/internal/operator"
	"github.com/rangelab/rangectl/internal/slave"
)

func main() {
	configPath := flag.String("config", "", "path to slavectl TOML config")
	flag.Parse()

	log := logging.Init("slavectl")

	cfg := slave.DefaultServiceConfig()
	if *configPath != "" {
		loaded, err := loadConfig(*configPath)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to load slave config")
		}
		cfg = loaded
		log.Info().Str("path", *configPath).Msg("loaded slave config")
	}

	prompt := operator.NewPrompter(os.Stdin, os.Stdout)
	source := slave.DistanceSourceFunc(func() (float64, error) {
		return prompt.Distance("distance from node B to detected device")
	})

	svc := slave.NewService(cfg, source, log)
	if err := svc.Run(); err != nil {
		log.Fatal().Err(err).Msg("slave stopped")
	}
}
