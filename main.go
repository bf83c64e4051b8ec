package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"sync/atomic"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/flicks/internal/app"
	"github.com/llehouerou/flicks/internal/catalog"
	"github.com/llehouerou/flicks/internal/config"
	"github.com/llehouerou/flicks/internal/embed"
	"github.com/llehouerou/flicks/internal/errmsg"
	"github.com/llehouerou/flicks/internal/icons"
	"github.com/llehouerou/flicks/internal/mpris"
	"github.com/llehouerou/flicks/internal/notify"
	"github.com/llehouerou/flicks/internal/player"
	"github.com/llehouerou/flicks/internal/stderr"
	"github.com/llehouerou/flicks/internal/ui/poster"
)

// programSender forwards media-key commands once the program exists. The
// adapter starts before tea.NewProgram so the model can carry it.
type programSender struct {
	p atomic.Pointer[tea.Program]
}

func (s *programSender) Send(msg tea.Msg) {
	if p := s.p.Load(); p != nil {
		p.Send(msg)
	}
}

type instance struct {
	model   app.Model
	player  *player.Player
	desktop *notify.Desktop
	mpris   *mpris.Adapter
	sender  *programSender
	logFile *os.File
}

func (r *instance) close() {
	if r.mpris != nil {
		_ = r.mpris.Close()
	}
	if r.desktop != nil {
		_ = r.desktop.Close()
	}
	if r.player != nil {
		r.player.Close()
	}
	stderr.Stop()
	if r.logFile != nil {
		r.logFile.Close()
	}
}

func initialModel() (*instance, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	r := &instance{sender: &programSender{}}

	if path, err := cfg.LogPath(); err == nil {
		if f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644); err == nil {
			level := slog.LevelInfo
			if cfg.Debug {
				level = slog.LevelDebug
			}
			slog.SetDefault(slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: level})))
			r.logFile = f
		}
	}

	icons.Init(cfg.Icons)

	cat, err := catalog.Load(cfg.CatalogPath(), cfg.MediaDir)
	if err != nil {
		r.close()
		return nil, errors.New(errmsg.Format(errmsg.OpCatalogLoad, err))
	}

	// Capture stderr so ALSA and decoder chatter does not tear the screen
	if err := stderr.Start(); err != nil {
		slog.Warn("stderr capture unavailable", "err", err)
	}

	r.player = player.New()
	r.player.SetVolume(cfg.GetPlayerConfig().Volume)

	if cfg.Notifications.Desktop {
		if n, err := notify.New(); err == nil {
			r.desktop = notify.NewDesktop(n)
		} else {
			slog.Warn(errmsg.Format(errmsg.OpNotify, err))
		}
	}

	var posters *poster.Renderer
	if proto := poster.Detect(); proto != nil {
		cache, err := poster.NewCache("")
		if err != nil {
			slog.Debug("poster cache unavailable", "err", err)
		}
		posters = poster.New(proto, cache)
	}

	r.model = app.New(app.Deps{
		Config:  cfg,
		Catalog: cat,
		Player:  r.player,
		Widget:  embed.NewBrowserWidget(nil),
		Desktop: r.desktop,
		Posters: posters,
		Stderr:  stderr.Messages(),
	})

	if cfg.MPRISEnabled() {
		adapter, err := mpris.New(r.sender)
		if err != nil {
			slog.Warn(errmsg.Format(errmsg.OpMediaKeys, err))
		} else {
			r.mpris = adapter
			r.model.SetMediaKeys(adapter)
		}
	}

	return r, nil
}

func main() {
	r, err := initialModel()
	if err != nil {
		fmt.Printf("Error initializing: %v\n", err)
		os.Exit(1)
	}
	defer r.close()

	p := tea.NewProgram(r.model, tea.WithAltScreen(), tea.WithMouseAllMotion())
	r.sender.p.Store(p)
	if _, err := p.Run(); err != nil {
		r.close()
		fmt.Printf("Error running program: %v\n", err)
		os.Exit(1)
	}
}
