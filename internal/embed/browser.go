package embed

import (
	"context"
	"fmt"
	"os/exec"
	"runtime"
	"time"
)

// EmbedBase is where widget players are served from.
const EmbedBase = "https://www.youtube.com/embed/"

// Opener shows a URL to the user.
type Opener func(ctx context.Context, url string) error

// BrowserWidget mounts players by opening the embed page in the system
// browser. The browser owns playback from there on.
type BrowserWidget struct {
	open    Opener
	timeout time.Duration
}

// NewBrowserWidget returns a widget that opens embed URLs with open, or the
// platform's default browser when open is nil.
func NewBrowserWidget(open Opener) *BrowserWidget {
	if open == nil {
		open = OpenBrowser
	}
	return &BrowserWidget{open: open, timeout: 5 * time.Second}
}

// EmbedURL builds the player URL for id.
func EmbedURL(id string, vars PlayerVars) string {
	return EmbedBase + id + "?" + vars.Values().Encode()
}

// Mount opens the player for id.
func (w *BrowserWidget) Mount(_ string, id string, vars PlayerVars) (Instance, error) {
	if !ValidID(id) {
		return nil, &WidgetError{Code: ErrInvalidParam}
	}
	ctx, cancel := context.WithTimeout(context.Background(), w.timeout)
	defer cancel()
	if err := w.open(ctx, EmbedURL(id, vars)); err != nil {
		return nil, fmt.Errorf("open browser: %w", err)
	}
	state := StateUnstarted
	if vars.Autoplay {
		state = StatePlaying
	}
	return &browserInstance{state: state}, nil
}

type browserInstance struct {
	state     WidgetState
	destroyed bool
}

func (i *browserInstance) State() WidgetState { return i.state }

// Stop marks the instance ended. The page itself stays with the browser.
func (i *browserInstance) Stop() {
	if !i.destroyed {
		i.state = StateEnded
	}
}

func (i *browserInstance) Destroy() {
	i.destroyed = true
	i.state = StateUnstarted
}

// OpenBrowser opens url with the platform's default handler.
func OpenBrowser(ctx context.Context, url string) error {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.CommandContext(ctx, "open", url)
	case "windows":
		cmd = exec.CommandContext(ctx, "rundll32", "url.dll,FileProtocolHandler", url)
	default:
		cmd = exec.CommandContext(ctx, "xdg-open", url)
	}
	return cmd.Run()
}
