// Command stabsim runs stabilizer-code error-correction simulations.
//
// Subcommands:
//
//	run    execute the trials of a JSON input spec and persist the results
//	ls     list code families, noise models and decoders
//	serve  start the HTTP simulation server
//
// A .env file in the working directory supplies defaults for STABSIM_ADDR,
// STABSIM_OUTPUT and STABSIM_TRIALS.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	slogmulti "github.com/samber/slog-multi"

	"github.com/katalvlaran/stabsim/code"
	"github.com/katalvlaran/stabsim/decoder"
	"github.com/katalvlaran/stabsim/results"
	"github.com/katalvlaran/stabsim/server"
	"github.com/katalvlaran/stabsim/sim"
)

func main() {
	_ = godotenv.Load()

	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	var err error
	switch os.Args[1] {
	case "run":
		err = runCmd(os.Args[2:])
	case "ls":
		err = lsCmd(os.Args[2:])
	case "serve":
		err = serveCmd(os.Args[2:])
	case "help", "-h", "--help":
		usage()
	default:
		fmt.Fprintf(os.Stderr, "stabsim: unknown command %q\n", os.Args[1])
		usage()
		os.Exit(2)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "stabsim:", err)
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprint(os.Stderr, `usage: stabsim <command> [flags]

commands:
  run    execute the trials of a JSON input spec
  ls     list codes, noise models and decoders
  serve  start the HTTP simulation server
`)
}

func runCmd(args []string) error {
	fs := flag.NewFlagSet("run", flag.ExitOnError)
	file := fs.String("f", "", "input spec file (JSON)")
	trials := fs.Int("t", envInt("STABSIM_TRIALS", 100), "trials per run point")
	outDir := fs.String("o", envStr("STABSIM_OUTPUT", "results"), "output directory")
	workers := fs.Int("w", 0, "worker count (0 = GOMAXPROCS)")
	seed := fs.Int64("seed", 0, "base RNG seed")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *file == "" {
		return errors.New("run: missing -f input file")
	}

	spec, err := sim.ReadInputFile(*file)
	if err != nil {
		return err
	}
	cfgs, err := spec.Expand()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(*outDir, 0o750); err != nil {
		return err
	}
	runID := uuid.NewString()
	logger, closeLog, err := newLogger(*outDir, runID)
	if err != nil {
		return err
	}
	defer func() { _ = closeLog.Close() }()

	jsonlFile, err := os.Create(filepath.Join(*outDir, runID+".jsonl"))
	if err != nil {
		return err
	}
	lines := results.NewJSONLWriter(jsonlFile)
	defer func() { _ = lines.Close() }()

	store, err := results.NewStore(filepath.Join(*outDir, runID+".db"))
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info("run starting",
		"run_id", runID, "input", *file, "points", len(cfgs), "trials", *trials)

	for _, cfg := range cfgs {
		sink := func(r sim.Result) {
			rec := results.NewRecord(runID, cfg, r)
			if err := lines.Write(rec); err != nil {
				logger.Error("write jsonl record", "err", err)
			}
			if err := store.Write(rec); err != nil {
				logger.Error("write sqlite record", "err", err)
			}
		}
		opts := []sim.Option{sim.WithSeed(*seed), sim.WithResultSink(sink)}
		if *workers > 0 {
			opts = append(opts, sim.WithWorkers(*workers))
		}

		start := time.Now()
		stats, err := sim.Run(ctx, cfg, *trials, opts...)
		if err != nil {
			if errors.Is(err, context.Canceled) {
				logger.Warn("run interrupted", "run_id", runID, "trials_done", stats.Trials)

				return nil
			}

			return err
		}
		logger.Info("run point finished",
			"label", cfg.Label,
			"family", cfg.Family,
			"size", fmt.Sprintf("%dx%dx%d", cfg.Lx, cfg.Ly, cfg.Lz),
			"p", cfg.Probability,
			"decoder", cfg.Decoder,
			"trials", stats.Trials,
			"failure_rate", stats.FailureRate(),
			"std_error", stats.StdError(),
			"elapsed", time.Since(start).Round(time.Millisecond))
	}
	logger.Info("run finished", "run_id", runID)

	return nil
}

func lsCmd(args []string) error {
	what := ""
	if len(args) > 0 {
		what = args[0]
	}
	if what == "" || what == "codes" {
		fmt.Println("Codes:")
		for _, name := range code.List(0) {
			fmt.Println("    " + name)
		}
	}
	if what == "" || what == "noise" {
		fmt.Println("Error Models (Noise):")
		for _, name := range sim.NoiseModels() {
			fmt.Println("    " + name)
		}
	}
	if what == "" || what == "decoders" {
		fmt.Println("Decoders:")
		for _, name := range decoder.List() {
			fmt.Println("    " + name)
		}
	}

	return nil
}

func serveCmd(args []string) error {
	fs := flag.NewFlagSet("serve", flag.ExitOnError)
	addr := fs.String("addr", envStr("STABSIM_ADDR", ":8080"), "listen address")
	seed := fs.Int64("seed", 0, "sampling seed (0 = clock)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	srv := &http.Server{
		Addr:              *addr,
		Handler:           server.New(server.WithSeed(*seed)),
		ReadHeaderTimeout: 5 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	logger.Info("listening", "addr", *addr)
	if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	logger.Info("server stopped")

	return nil
}

// newLogger fans log records out to a readable stderr stream and a JSON
// file next to the run artifacts.
func newLogger(outDir, runID string) (*slog.Logger, io.Closer, error) {
	f, err := os.Create(filepath.Join(outDir, runID+".log"))
	if err != nil {
		return nil, nil, err
	}
	handler := slogmulti.Fanout(
		slog.NewTextHandler(os.Stderr, nil),
		slog.NewJSONHandler(f, nil),
	)

	return slog.New(handler), f, nil
}

func envStr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}

	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}

	return fallback
}
