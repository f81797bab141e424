package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"runtime"

	"github.com/uprooted/ogcard/internal/app"
)

func main() {
	_, sourceFile, _, _ := runtime.Caller(0)
	defaults := app.DefaultConfig(app.OutputPathFor(sourceFile))

	// Flags
	out := flag.String("out", defaults.OutputPath, "output PNG path")
	qr := flag.Bool("qr", defaults.QRBadge, "draw a QR code of the URL in the bottom-right corner")
	fbDev := flag.String("fb", defaults.Framebuffer, "framebuffer device to preview the card on (optional)")
	debug := flag.Bool("debug", false, "enable debug logging to ./ogcard-debug.log")
	stdioLog := flag.String("stdio-log", defaults.StdioLog, "redirect stdout+stderr (including panics) to this file")
	flag.Parse()

	if *stdioLog != "" {
		if err := redirectStdIO(*stdioLog); err != nil {
			fmt.Println("stdio log redirect error:", err)
		}
	}

	var logger app.Logger = app.NoopLogger{}
	if *debug {
		f, err := os.OpenFile("./ogcard-debug.log", os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
		if err == nil {
			defer f.Close()
			logger = app.NewFileLogger(f)
			logger.Infof("main", "debug logging enabled")
		} else {
			fmt.Println("debug log open error:", err)
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	a := app.New(app.Config{OutputPath: *out, QRBadge: *qr, Framebuffer: *fbDev, StdioLog: *stdioLog})
	a.Logger = logger
	if _, err := a.Run(ctx); err != nil {
		fmt.Println("ogcard error:", err)
		stop()
		os.Exit(1)
	}
}
