package screen

import (
	tea "charm.land/bubbletea/v2"

	"github.com/sthiel/mentiq/internal/ui/layout"
)

// Screen is the interface every application screen implements.
type Screen interface {
	// Init returns an initial command when the screen is first created.
	Init() tea.Cmd

	// Update handles messages and returns the updated screen plus a command.
	Update(msg tea.Msg) (Screen, tea.Cmd)

	// View renders the screen content, excluding header and footer.
	View(width, height int) string

	// Title returns the screen name for the header.
	Title() string
}

// KeyHintProvider is an optional interface for screens that supply
// custom footer key hints.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}

// StatusProvider is an optional interface for screens that supply the
// right-aligned header slot; the session screen shows its countdown
// there.
type StatusProvider interface {
	HeaderStatus() string
}

// QuitInterceptor is an optional interface for screens that must flush
// state before the program exits. When the returned command is non-nil
// it runs instead of an immediate quit and must end in tea.QuitMsg.
type QuitInterceptor interface {
	InterceptQuit() tea.Cmd
}
