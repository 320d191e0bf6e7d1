package cmd

import (
	"github.com/achilleasa/trirender/config"
	"github.com/achilleasa/trirender/log"
	"github.com/urfave/cli"
)

var logger = log.New("trirender")

func setupLogging(ctx *cli.Context, cfg *config.Config) {
	if cfg != nil && cfg.Diagnostics.LogLevel != "" {
		level, err := log.ParseLevel(cfg.Diagnostics.LogLevel)
		if err != nil {
			logger.Warning(err.Error())
		} else {
			log.SetLevel(level)
		}
	}

	if ctx.GlobalBool("v") {
		log.SetLevel(log.Info)
	}

	if ctx.GlobalBool("vv") {
		log.SetLevel(log.Debug)
	}
}
