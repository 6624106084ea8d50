package bot

import (
	"fmt"
	"log"
)

// FrameworkError is one of SetupError, CommandError, CommandPanic or
// UnknownCommandError.
type FrameworkError interface {
	error
	frameworkError()
}

// SetupError means the setup callback failed. The bot cannot serve.
type SetupError struct {
	Err error
}

func (e *SetupError) Error() string   { return fmt.Sprintf("setup failed: %v", e.Err) }
func (e *SetupError) Unwrap() error   { return e.Err }
func (e *SetupError) frameworkError() {}

// CommandError wraps an error returned by a command's Run.
type CommandError struct {
	Ctx Context
	Err error
}

func (e *CommandError) Error() string {
	return fmt.Sprintf("command %s: %v", e.Ctx.Command().Name, e.Err)
}
func (e *CommandError) Unwrap() error   { return e.Err }
func (e *CommandError) frameworkError() {}

// CommandPanic is a panic recovered from a command's Run.
type CommandPanic struct {
	Ctx     Context
	Payload string
}

func (e *CommandPanic) Error() string {
	return fmt.Sprintf("command %s panicked: %s", e.Ctx.Command().Name, e.Payload)
}
func (e *CommandPanic) frameworkError() {}

// UnknownCommandError is raised for interactions naming a command this
// process does not know, usually a stale registration.
type UnknownCommandError struct {
	Name string
}

func (e *UnknownCommandError) Error() string   { return fmt.Sprintf("unknown command %q", e.Name) }
func (e *UnknownCommandError) frameworkError() {}

// DefaultOnError prints err. For a panic it also tells the user something
// went wrong; the returned error is the failure of that reply.
func DefaultOnError(logger *log.Logger, err FrameworkError) error {
	switch e := err.(type) {
	case *SetupError:
		logger.Printf("[ERR] Error during setup: %v", e.Err)
	case *CommandError:
		logger.Printf("[ERR] Error in command %s: %v", e.Ctx.Command().Name, e.Err)
	case *CommandPanic:
		logger.Printf("[ERR] Command %s panicked: %s", e.Ctx.Command().Name, e.Payload)
		if sayErr := e.Ctx.Say("An internal error occurred."); sayErr != nil {
			return fmt.Errorf("error sending panic notice: %w", sayErr)
		}
	case *UnknownCommandError:
		logger.Printf("[WARN] Received unknown command %q", e.Name)
	default:
		logger.Printf("[ERR] %v", err)
	}
	return nil
}
