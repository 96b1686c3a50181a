// main.go - host controller entry point for the RV64IM sandbox interpreter

package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"golang.org/x/sync/errgroup"
)

// boot holds the parsed command-line configuration.
type boot struct {
	baseDir   string
	timeoutMs int64
	image     string
	guestArgv []string
}

// parseBoot parses the base directory, terminal timeout, image path, and
// guest argv from the command line. Build with -tags headless to swap
// the Display facility's backend; that selection is compile-time, not a
// runtime flag, so it has no entry here.
func parseBoot(args []string) (*boot, error) {
	fs := flag.NewFlagSet("rvhost", flag.ContinueOnError)
	baseDir := fs.String("basedir", ".", "sandbox filesystem and NVS root")
	timeoutMs := fs.Int64("timeout", 1000, "terminal read timeout in milliseconds")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	rest := fs.Args()
	if len(rest) < 1 {
		return nil, fmt.Errorf("usage: rvhost [-basedir dir] [-timeout ms] <image> [guest-args...]")
	}
	return &boot{
		baseDir:   *baseDir,
		timeoutMs: *timeoutMs,
		image:     rest[0],
		guestArgv: rest,
	}, nil
}

func main() {
	cfg, err := parseBoot(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	img, err := os.ReadFile(cfg.image)
	if err != nil {
		fmt.Fprintf(os.Stderr, "cannot read image %q: %v\n", cfg.image, err)
		os.Exit(1)
	}

	baseDir, err := filepath.Abs(cfg.baseDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "cannot resolve basedir: %v\n", err)
		os.Exit(1)
	}
	if err := os.MkdirAll(baseDir, 0755); err != nil {
		fmt.Fprintf(os.Stderr, "cannot create basedir %q: %v\n", baseDir, err)
		os.Exit(1)
	}

	terminal := NewTerminalChannel(os.Stdout)
	terminal.SetTimeoutMs(cfg.timeoutMs)
	terminal.StartHostReader()
	defer terminal.StopHostReader()

	facilities := NewDefaultFacilities(baseDir)

	vm := NewVM(terminal, facilities)
	if err := vm.Load(img); err != nil {
		fmt.Fprintf(os.Stderr, "cannot load image: %v\n", err)
		os.Exit(1)
	}

	// Two long-lived goroutines: the interpreter's own fetch/execute loop,
	// and a signal listener that calls vm.Stop() on SIGINT/SIGTERM. The
	// interpreter observes Stop() after the instruction in flight (rv64_execute.go),
	// the same bounded-latency relationship runtime_ipc.go's accept loop has
	// with the CPU goroutine it runs alongside.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)

	var exitCode int64
	g.Go(func() error {
		exitCode = vm.Run(cfg.guestArgv)
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		vm.Stop()
		return nil
	})

	_ = g.Wait()
	os.Exit(int(exitCode))
}
