package bot

import (
	"fmt"
	"log"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/bwmarrin/discordgo"
)

// Data is shared by every invocation. It carries no fields yet; anything
// added here must be safe for concurrent use.
type Data struct{}

// Session is the part of *discordgo.Session the framework talks to.
type Session interface {
	ChannelMessageSend(channelID string, content string, options ...discordgo.RequestOption) (*discordgo.Message, error)
	InteractionRespond(interaction *discordgo.Interaction, resp *discordgo.InteractionResponse, options ...discordgo.RequestOption) error
	ApplicationCommandBulkOverwrite(appID string, guildID string, commands []*discordgo.ApplicationCommand, options ...discordgo.RequestOption) ([]*discordgo.ApplicationCommand, error)
	UpdateStatusComplex(usd discordgo.UpdateStatusData) error
}

type Command struct {
	Name        string
	Description string
	Run         func(ctx Context) error
}

func (c *Command) ApplicationCommand() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        c.Name,
		Description: c.Description,
	}
}

// SetupFunc runs once, on the first Ready event.
type SetupFunc func(s Session, r *discordgo.Ready, f *Framework) (*Data, error)

type Options struct {
	Commands    []*Command
	Prefix      string
	OnError     func(err FrameworkError)
	PreCommand  func(ctx Context)
	PostCommand func(ctx Context)
	Setup       SetupFunc
	Logger      *log.Logger
}

type Framework struct {
	opts     Options
	commands map[string]*Command
	log      *log.Logger

	setupOnce sync.Once
	data      atomic.Pointer[Data]
}

func NewFramework(opts Options) *Framework {
	if opts.Prefix == "" {
		opts.Prefix = "!"
	}
	if opts.Logger == nil {
		opts.Logger = defaultLogger
	}
	if opts.OnError == nil {
		logger := opts.Logger
		opts.OnError = func(err FrameworkError) {
			if e := DefaultOnError(logger, err); e != nil {
				logger.Printf("[ERR] Error while handling error: %v", e)
			}
		}
	}

	f := &Framework{
		opts:     opts,
		commands: make(map[string]*Command, len(opts.Commands)),
		log:      opts.Logger,
	}
	for _, cmd := range opts.Commands {
		f.commands[cmd.Name] = cmd
	}
	return f
}

func (f *Framework) Commands() []*Command {
	return f.opts.Commands
}

func (f *Framework) Logger() *log.Logger {
	return f.log
}

func (f *Framework) Prefix() string {
	return f.opts.Prefix
}

func (f *Framework) onReady(s *discordgo.Session, r *discordgo.Ready) {
	f.setup(s, r)
}

func (f *Framework) onInteractionCreate(s *discordgo.Session, i *discordgo.InteractionCreate) {
	f.handleInteraction(s, i)
}

func (f *Framework) onMessageCreate(s *discordgo.Session, m *discordgo.MessageCreate) {
	if s.State == nil || s.State.User == nil {
		return
	}
	f.handleMessage(s, s.State.User.ID, m)
}

func (f *Framework) setup(s Session, r *discordgo.Ready) {
	f.setupOnce.Do(func() {
		if f.opts.Setup == nil {
			f.data.Store(&Data{})
			return
		}

		data, err := f.opts.Setup(s, r, f)
		if err != nil {
			f.opts.OnError(&SetupError{Err: err})
			return
		}
		if data == nil {
			data = &Data{}
		}
		f.data.Store(data)
	})
}

func (f *Framework) handleInteraction(s Session, i *discordgo.InteractionCreate) {
	if i.Type != discordgo.InteractionApplicationCommand {
		return
	}

	name := i.ApplicationCommandData().Name
	cmd, ok := f.commands[name]
	if !ok {
		f.opts.OnError(&UnknownCommandError{Name: name})
		return
	}

	f.dispatch(&slashContext{
		baseContext: baseContext{session: s, command: cmd, log: f.log},
		event:       i,
	})
}

func (f *Framework) handleMessage(s Session, selfID string, m *discordgo.MessageCreate) {
	if m.Author == nil || m.Author.ID == selfID || m.Author.Bot {
		return
	}
	if !strings.HasPrefix(m.Content, f.opts.Prefix) {
		return
	}

	name, args := splitInvocation(strings.TrimPrefix(m.Content, f.opts.Prefix))
	cmd, ok := f.commands[name]
	if !ok {
		return
	}

	f.dispatch(&prefixContext{
		baseContext: baseContext{session: s, command: cmd, log: f.log},
		event:       m,
		args:        args,
	})
}

func splitInvocation(content string) (name, args string) {
	content = strings.TrimLeft(content, " \t\n")
	if idx := strings.IndexAny(content, " \t\n"); idx >= 0 {
		return content[:idx], strings.TrimSpace(content[idx+1:])
	}
	return content, ""
}

func (f *Framework) dispatch(ctx commandContext) {
	data := f.data.Load()
	if data == nil {
		f.log.Printf("[WARN] Ignoring command %s, setup has not finished", ctx.Command().Name)
		return
	}
	ctx.setData(data)

	defer func() {
		if r := recover(); r != nil {
			f.opts.OnError(&CommandPanic{Ctx: ctx, Payload: fmt.Sprint(r)})
		}
	}()

	if f.opts.PreCommand != nil {
		f.opts.PreCommand(ctx)
	}

	if err := ctx.Command().Run(ctx); err != nil {
		f.opts.OnError(&CommandError{Ctx: ctx, Err: err})
		return
	}

	if f.opts.PostCommand != nil {
		f.opts.PostCommand(ctx)
	}
}
