package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"

	"github.com/seagrayinc/wsbright/internal/hid"
	"github.com/seagrayinc/wsbright/internal/log"
	"github.com/seagrayinc/wsbright/internal/usbprobe"
	"github.com/seagrayinc/wsbright/internal/ws170120"
)

type cli struct {
	Brightness *int `arg:"" optional:"" help:"Brightness percentage (0-100)."`
	Verbose    int  `short:"v" type:"counter" help:"Increase verbosity."`
}

func main() {
	// kong spells help as -h/--help; accept the vendor tool's -? too.
	for i, a := range os.Args {
		if i > 0 && a == "-?" {
			os.Args[i] = "--help"
		}
	}

	var args cli
	ctx := kong.Parse(&args,
		kong.Name("wsctl"),
		kong.Description("Control the brightness of a Waveshare WS170120 display."),
		kong.UsageOnError(),
	)

	if args.Brightness == nil {
		_ = ctx.PrintUsage(false)
		os.Exit(0)
	}

	b := *args.Brightness
	if b < 0 || b > 100 {
		fail(ws170120.ErrInvalidInput)
	}

	logger := log.New(args.Verbose)
	logger.Info("setting brightness", slog.Int("percent", b))

	mgr, err := hid.NewManager()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize HID manager: %v\n", err)
		os.Exit(1)
	}

	if err := ws170120.Set(logger, mgr, byte(b)); err != nil {
		if ws170120.Classify(err) == ws170120.ClassDeviceNotFound && args.Verbose > 0 {
			// The HID layer saw nothing; a raw bus snapshot tells a
			// missing cable apart from a driver binding problem.
			if entries, perr := usbprobe.Snapshot(); perr == nil {
				logger.Info("raw USB snapshot", slog.Int("devices", len(entries)))
			}
		}
		fail(err)
	}
}

func fail(err error) {
	class := ws170120.Classify(err)
	fmt.Fprintln(os.Stderr, class.Message(err))
	os.Exit(class.ExitCode())
}
