package commands

import (
	"github.com/mhtoin/pong-bot/internal/bot"
)

func init() {
	RegisterCommand(&bot.Command{
		Name:        "ping",
		Description: "Check if the bot is alive",
		Run: func(ctx bot.Context) error {
			if err := ctx.Say("Pong!"); err != nil {
				ctx.Logger().Printf("[ERR] Error while sending message: %v", err)
			}
			return nil
		},
	})
}
