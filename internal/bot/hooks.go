package bot

import (
	"fmt"
	"log"
	"os"
)

// NewLogger returns the logger used for lifecycle and error lines. They go
// to standard output.
func NewLogger() *log.Logger {
	return log.New(os.Stdout, "", log.LstdFlags)
}

var defaultLogger = NewLogger()

// Hooks holds the process-level callbacks installed into Options.
type Hooks struct {
	Logger *log.Logger
}

func (h Hooks) logger() *log.Logger {
	if h.Logger == nil {
		return defaultLogger
	}
	return h.Logger
}

// OnError panics on setup failures, logs command failures and hands
// everything else to DefaultOnError.
func (h Hooks) OnError(err FrameworkError) {
	switch e := err.(type) {
	case *SetupError:
		panic(fmt.Sprintf("Failed to start bot: %v", e.Err))
	case *CommandError:
		h.logger().Printf("Error in command `%s`: %v", e.Ctx.Command().Name, e.Err)
	default:
		if hErr := DefaultOnError(h.logger(), err); hErr != nil {
			h.logger().Printf("Error while handling error: %v", hErr)
		}
	}
}

func (h Hooks) PreCommand(ctx Context) {
	h.logger().Printf("[LOG] Executing command %s...", ctx.Command().Name)
}

// PostCommand only runs when the command returned nil.
func (h Hooks) PostCommand(ctx Context) {
	h.logger().Printf("[LOG] Executed command %s!", ctx.Command().Name)
}
