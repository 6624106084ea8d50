package bot

import (
	"log"

	"github.com/bwmarrin/discordgo"
)

// Context is handed to a command for a single invocation.
type Context interface {
	Command() *Command
	ChannelID() string
	Author() *discordgo.User
	Args() string
	Data() *Data
	Logger() *log.Logger
	Say(content string) error
}

type commandContext interface {
	Context
	setData(d *Data)
}

type baseContext struct {
	session Session
	command *Command
	data    *Data
	log     *log.Logger
}

func (c *baseContext) Command() *Command   { return c.command }
func (c *baseContext) Data() *Data         { return c.data }
func (c *baseContext) Logger() *log.Logger { return c.log }
func (c *baseContext) setData(d *Data)     { c.data = d }

// prefixContext is an invocation from a text message such as "!ping".
type prefixContext struct {
	baseContext
	event *discordgo.MessageCreate
	args  string
}

func (c *prefixContext) ChannelID() string       { return c.event.ChannelID }
func (c *prefixContext) Author() *discordgo.User { return c.event.Author }
func (c *prefixContext) Args() string            { return c.args }

func (c *prefixContext) Say(content string) error {
	_, err := c.session.ChannelMessageSend(c.event.ChannelID, content)
	return err
}

// slashContext is an invocation from an application command interaction.
// The first Say answers the interaction, later ones go to the channel.
type slashContext struct {
	baseContext
	event     *discordgo.InteractionCreate
	responded bool
}

func (c *slashContext) ChannelID() string { return c.event.ChannelID }
func (c *slashContext) Args() string      { return "" }

func (c *slashContext) Author() *discordgo.User {
	if c.event.Member != nil && c.event.Member.User != nil {
		return c.event.Member.User
	}
	return c.event.User
}

func (c *slashContext) Say(content string) error {
	if c.responded {
		_, err := c.session.ChannelMessageSend(c.event.ChannelID, content)
		return err
	}

	err := c.session.InteractionRespond(c.event.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: content,
		},
	})
	if err != nil {
		return err
	}
	c.responded = true
	return nil
}
