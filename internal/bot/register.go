package bot

import (
	"fmt"
	"log"

	"github.com/bwmarrin/discordgo"
	"github.com/jedib0t/go-pretty/v6/table"
)

// RegisterGlobally replaces the application's global command list with cmds.
func RegisterGlobally(logger *log.Logger, s Session, appID string, cmds []*Command) error {
	return RegisterInGuild(logger, s, appID, "", cmds)
}

// RegisterInGuild replaces the command list of one guild. An empty guildID
// means global.
func RegisterInGuild(logger *log.Logger, s Session, appID, guildID string, cmds []*Command) error {
	appCommands := make([]*discordgo.ApplicationCommand, 0, len(cmds))
	for _, cmd := range cmds {
		appCommands = append(appCommands, cmd.ApplicationCommand())
	}

	registered, err := s.ApplicationCommandBulkOverwrite(appID, guildID, appCommands)
	if err != nil {
		return fmt.Errorf("error registering commands: %w", err)
	}

	scope := "globally"
	if guildID != "" {
		scope = "in guild " + guildID
	}
	logger.Printf("[INFO] Registered %d commands %s\n%s", len(registered), scope, commandTable(appCommands))
	return nil
}

func commandTable(cmds []*discordgo.ApplicationCommand) string {
	t := table.NewWriter()
	t.AppendHeader(table.Row{"Command", "Description", "Options"})
	for _, cmd := range cmds {
		t.AppendRow(table.Row{"/" + cmd.Name, cmd.Description, len(cmd.Options)})
	}
	return t.Render()
}

func UpdateBotStatus(s Session, status string, activityType discordgo.ActivityType, activityName string) error {
	activity := discordgo.Activity{
		Name: activityName,
		Type: activityType,
	}

	updateData := discordgo.UpdateStatusData{
		Activities: []*discordgo.Activity{&activity},
		Status:     status,
		AFK:        false,
	}

	return s.UpdateStatusComplex(updateData)
}

// Setup registers the framework's commands, in guildID if set, and
// advertises the prefix form in the bot's presence.
func Setup(guildID string) SetupFunc {
	return func(s Session, r *discordgo.Ready, f *Framework) (*Data, error) {
		if err := RegisterInGuild(f.Logger(), s, r.User.ID, guildID, f.Commands()); err != nil {
			return nil, err
		}

		if cmds := f.Commands(); len(cmds) > 0 {
			if err := UpdateBotStatus(s, "online", discordgo.ActivityTypeListening, f.Prefix()+cmds[0].Name); err != nil {
				f.Logger().Printf("[WARN] Error updating bot status: %v", err)
			}
		}

		return &Data{}, nil
	}
}
