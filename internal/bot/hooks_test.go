package bot

import (
	"bytes"
	"errors"
	"log"
	"os"
	"strings"
	"testing"
)

func newTestHooks() (Hooks, *bytes.Buffer) {
	var buf bytes.Buffer
	return Hooks{Logger: log.New(&buf, "", 0)}, &buf
}

func TestHooksLogLines(t *testing.T) {
	hooks, buf := newTestHooks()
	f, s, _ := newTestFramework(Options{
		OnError:     hooks.OnError,
		PreCommand:  hooks.PreCommand,
		PostCommand: hooks.PostCommand,
	})

	f.handleMessage(s, selfID, messageEvent("chan", "user", "!ping"))
	f.handleInteraction(s, interactionEvent("chan", "ping"))

	want := "[LOG] Executing command ping...\n[LOG] Executed command ping!\n" +
		"[LOG] Executing command ping...\n[LOG] Executed command ping!\n"
	if buf.String() != want {
		t.Errorf("log = %q, want %q", buf.String(), want)
	}
}

func TestOnErrorSetupPanics(t *testing.T) {
	hooks, _ := newTestHooks()

	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected panic")
		}
		if msg, _ := r.(string); !strings.Contains(msg, "Failed to start bot: bad token") {
			t.Errorf("panic = %v", r)
		}
	}()

	hooks.OnError(&SetupError{Err: errors.New("bad token")})
}

func TestOnErrorCommandLogged(t *testing.T) {
	hooks, buf := newTestHooks()
	f, s, _ := newTestFramework(Options{
		Commands: []*Command{
			{Name: "fail", Run: func(Context) error { return errors.New("send failed") }},
			pingCommand(),
		},
		OnError:     hooks.OnError,
		PostCommand: hooks.PostCommand,
	})

	f.handleMessage(s, selfID, messageEvent("chan", "user", "!fail"))
	f.handleMessage(s, selfID, messageEvent("chan", "user", "!ping"))

	out := buf.String()
	if !strings.Contains(out, "Error in command `fail`: send failed") {
		t.Errorf("log = %q", out)
	}
	if strings.Contains(out, "Executed command fail!") {
		t.Errorf("post hook ran for failed command: %q", out)
	}
	if len(s.sent) != 1 || s.sent[0].Content != "Pong!" {
		t.Errorf("later invocation not served: %+v", s.sent)
	}
}

func TestOnErrorDefaultHandlerFailure(t *testing.T) {
	hooks, buf := newTestHooks()
	f, s, _ := newTestFramework(Options{
		Commands: []*Command{{Name: "explode", Run: func(Context) error { panic("kaboom") }}},
		OnError:  hooks.OnError,
	})
	s.sendErr = errors.New("missing permissions")

	f.handleMessage(s, selfID, messageEvent("chan", "user", "!explode"))

	out := buf.String()
	if !strings.Contains(out, "Command explode panicked: kaboom") {
		t.Errorf("log = %q", out)
	}
	if !strings.Contains(out, "Error while handling error: error sending panic notice: missing permissions") {
		t.Errorf("log = %q", out)
	}
}

func TestOnErrorUnknownCommand(t *testing.T) {
	hooks, buf := newTestHooks()

	hooks.OnError(&UnknownCommandError{Name: "stale"})

	if !strings.Contains(buf.String(), `Received unknown command "stale"`) {
		t.Errorf("log = %q", buf.String())
	}
}

func TestDefaultLoggersWriteToStdout(t *testing.T) {
	if w := NewLogger().Writer(); w != os.Stdout {
		t.Errorf("NewLogger writes to %v, want stdout", w)
	}
	if w := (Hooks{}).logger().Writer(); w != os.Stdout {
		t.Errorf("Hooks default logger writes to %v, want stdout", w)
	}
	if w := NewFramework(Options{}).Logger().Writer(); w != os.Stdout {
		t.Errorf("Framework default logger writes to %v, want stdout", w)
	}
}

func TestContextSharesFrameworkLogger(t *testing.T) {
	var got *log.Logger
	f, s, _ := newTestFramework(Options{
		Commands: []*Command{{
			Name: "ping",
			Run: func(ctx Context) error {
				got = ctx.Logger()
				return nil
			},
		}},
	})

	f.handleMessage(s, selfID, messageEvent("chan", "user", "!ping"))
	if got == nil || got != f.Logger() {
		t.Errorf("context logger = %p, want framework logger %p", got, f.Logger())
	}
}
