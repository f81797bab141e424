package app

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/uprooted/ogcard/internal/card"
	"github.com/uprooted/ogcard/internal/fonts"
	"github.com/uprooted/ogcard/internal/output"
	"github.com/uprooted/ogcard/internal/render"
)

type App struct {
	Config     Config
	Card       card.Card
	Candidates []string
	Logger     Logger
	Stdout     io.Writer
}

// Result describes a finished run.
type Result struct {
	Path   string
	Size   int64
	Fonts  fonts.Set
	Layout card.Layout
}

func New(cfg Config) *App {
	c := card.Default()
	c.QRBadge = cfg.QRBadge
	return &App{Config: cfg, Card: c, Candidates: fonts.Candidates, Logger: NoopLogger{}, Stdout: os.Stdout}
}

// Run renders the card, writes it and prints the confirmation line. A
// framebuffer preview, when configured, is best-effort and never fails the
// run.
func (app *App) Run(ctx context.Context) (Result, error) {
	if app.Logger == nil {
		app.Logger = NoopLogger{}
	}
	if app.Stdout == nil {
		app.Stdout = os.Stdout
	}

	faces, err := fonts.Select(app.Candidates, app.Logger)
	if err != nil {
		return Result{}, fmt.Errorf("fonts: %w", err)
	}

	canvas, l, err := card.Render(app.Card, faces, app.Logger)
	if err != nil {
		return Result{}, fmt.Errorf("render: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}

	path := app.Config.OutputPath
	size, err := output.WriteFile(path, canvas.Image())
	if err != nil {
		app.Logger.Errorf("output", "write failed: %v", err)
		return Result{}, err
	}
	app.Logger.Infof("output", "wrote %s, %d bytes", path, size)
	if err := output.Report(app.Stdout, path, size); err != nil {
		return Result{}, err
	}

	if app.Config.Framebuffer != "" {
		if err := render.PreviewOnFramebuffer(app.Config.Framebuffer, canvas.Image(), app.Logger); err != nil {
			app.Logger.Errorf("fb", "preview failed: %v", err)
		}
	}

	return Result{Path: path, Size: size, Fonts: faces, Layout: l}, nil
}
