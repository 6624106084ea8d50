package bot

import (
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/bwmarrin/discordgo"
	"github.com/mhtoin/pong-bot/internal/config"
)

const Intents = discordgo.IntentsAllWithoutPrivileged | discordgo.IntentMessageContent

type Bot struct {
	Session   *discordgo.Session
	Token     string
	Framework *Framework
}

func New(cfg *config.Config, opts Options) (*Bot, error) {
	if cfg == nil || cfg.Token == "" {
		return nil, errors.New("missing BOT_TOKEN")
	}
	if opts.Prefix == "" {
		opts.Prefix = cfg.Prefix
	}

	bot := &Bot{
		Token:     cfg.Token,
		Framework: NewFramework(opts),
	}

	return bot, nil
}

func (b *Bot) Start() error {
	session, err := discordgo.New("Bot " + b.Token)
	if err != nil {
		return fmt.Errorf("error creating Discord session: %w", err)
	}
	b.Session = session

	b.Session.Identify.Intents = Intents
	b.Session.AddHandler(b.Framework.onReady)
	b.Session.AddHandler(b.Framework.onInteractionCreate)
	b.Session.AddHandler(b.Framework.onMessageCreate)

	err = b.Session.Open()
	if err != nil {
		return fmt.Errorf("error opening connection: %w", err)
	}

	b.Framework.Logger().Println("[INFO] Bot is now running. Press CTRL-C to exit.")
	return nil
}

func (b *Bot) Stop() {
	if b.Session != nil {
		b.Session.Close()
	}
}

func (b *Bot) Run() error {
	if err := b.Start(); err != nil {
		return err
	}

	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM)
	<-sc

	// Clean shutdown
	b.Stop()
	return nil
}
