package main

import (
	"github.com/mhtoin/pong-bot/internal/bot"
	"github.com/mhtoin/pong-bot/internal/bot/commands"
	"github.com/mhtoin/pong-bot/internal/config"
)

func main() {
	logger := bot.NewLogger()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatalf("Missing or invalid configuration: %v", err)
	}

	hooks := bot.Hooks{Logger: logger}

	discordBot, err := bot.New(cfg, bot.Options{
		Commands:    commands.All(),
		Prefix:      cfg.Prefix,
		OnError:     hooks.OnError,
		PreCommand:  hooks.PreCommand,
		PostCommand: hooks.PostCommand,
		Setup:       bot.Setup(cfg.GuildID),
		Logger:      logger,
	})
	if err != nil {
		logger.Fatalf("Failed to create bot: %v", err)
	}

	if err := discordBot.Run(); err != nil {
		logger.Fatalf("Error running bot: %v", err)
	}
}
