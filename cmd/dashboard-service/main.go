package main

import (
	"os"

	"github.com/rs/zerolog/log"

	"github.com/francescofano/langgraph-telegram-bot/dashboardservice"
)

func main() {
	if err := dashboardservice.Run(); err != nil {
		log.Error().Err(err).Msg("dashboard-service exited with error")
		os.Exit(1)
	}
}
