// Command ferrolsp is a Language Server for Rust: hover, inlay hints, and
// cargo-check diagnostics over stdio.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/creachadair/jrpc2"
	"github.com/creachadair/jrpc2/channel"
	"github.com/karlding/ferrolsp/pkg/lsp"
	"github.com/spf13/cobra"
)

// config holds the flags ferrolsp's root command accepts.
type config struct {
	Debug       bool
	LogFile     string
	CheckOnSave bool
}

func main() {
	var cfg config

	rootCmd := &cobra.Command{
		Use:   "ferrolsp",
		Short: "Rust language server",
		Long: `ferrolsp speaks the Language Server Protocol over stdin/stdout,
providing hover, inlay hints, and cargo-check diagnostics for Rust.`,
		Example: `  # Run as a language server (what editors invoke)
  ferrolsp

  # Run with debug logging to a file
  ferrolsp --debug --log-file /tmp/ferrolsp.log`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), cfg)
		},
	}

	rootCmd.Flags().BoolVarP(&cfg.Debug, "debug", "d", false, "Enable debug logging")
	rootCmd.Flags().StringVar(&cfg.LogFile, "log-file", "", "Path to log file (stderr if not specified)")
	rootCmd.Flags().BoolVar(&cfg.CheckOnSave, "check-on-save", true, "Run cargo check on textDocument/didSave")

	ctx := context.Background()
	if err := fang.Execute(ctx, rootCmd,
		fang.WithVersion("v0.1.0"),
		fang.WithCommit("dev"),
		fang.WithErrorHandler(func(w io.Writer, styles fang.Styles, err error) {
			_, _ = fmt.Fprintln(w, err.Error())
		}),
	); err != nil {
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg config) error {
	var logDest io.Writer
	if cfg.LogFile != "" {
		logFile, err := os.Create(cfg.LogFile)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		defer logFile.Close() //nolint:errcheck
		logDest = logFile
	} else {
		logDest = os.Stderr
	}

	level := slog.LevelInfo
	if cfg.Debug {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(logDest, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	logger.InfoContext(ctx, "starting ferrolsp")

	h := lsp.NewHandler()
	h.SetCheckOnSave(cfg.CheckOnSave)
	srv := jrpc2.NewServer(h.Assigner(), &jrpc2.ServerOptions{
		AllowPush: true,
		Logger:    func(text string) { logger.Debug(text) },
	})
	h.SetServer(srv)

	srv.Start(channel.LSP(stdrwc{}, stdrwc{}))
	logger.InfoContext(ctx, "ferrolsp closed", "error", srv.Wait())
	return nil
}

// stdrwc adapts os.Stdin/os.Stdout to the io.ReadWriteCloser channel.LSP
// wants, closing both streams together on shutdown.
type stdrwc struct{}

func (stdrwc) Read(p []byte) (int, error) {
	return os.Stdin.Read(p)
}

func (stdrwc) Write(p []byte) (int, error) {
	return os.Stdout.Write(p)
}

func (stdrwc) Close() error {
	if err := os.Stdin.Close(); err != nil {
		return err
	}
	return os.Stdout.Close()
}
