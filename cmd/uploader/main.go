package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/gabriel-vasile/mimetype"
	"github.com/spf13/cobra"

	"github.com/fhuszti/wedding-medias-go/internal/uploader"
)

var (
	serverURL string
	timeout   time.Duration
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "uploader [flags] file...",
	Short: "Upload wedding photos and videos to the media service",
	Long: `uploader sends every given file to the media service concurrently and
prints the progress of each upload.

Examples:
  uploader --server http://localhost:3000 beso.jpg vals.mp4
  uploader -s https://fotos.example.com ~/Fotos/*.jpg`,
	Args:         cobra.MinimumNArgs(1),
	SilenceUsage: true,
	RunE:         runUpload,
}

func init() {
	rootCmd.Flags().StringVarP(&serverURL, "server", "s", "http://localhost:3000", "Base URL of the media service")
	rootCmd.Flags().DurationVar(&timeout, "timeout", 10*time.Minute, "Timeout of a single upload")
}

func runUpload(cmd *cobra.Command, args []string) error {
	files := make([]uploader.File, 0, len(args))
	for _, p := range args {
		data, err := os.ReadFile(p)
		if err != nil {
			return fmt.Errorf("reading %s: %w", p, err)
		}
		files = append(files, uploader.File{
			Name:        filepath.Base(p),
			ContentType: mimetype.Detect(data).String(),
			Data:        data,
		})
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	out := cmd.OutOrStdout()
	board := newProgressBoard(out)
	orch := uploader.NewOrchestrator(uploader.NewHTTPTransport(serverURL, timeout), uploader.Options{
		OnChange: board.update,
	})

	results := orch.Run(ctx, files)
	fmt.Fprintln(out)

	failed := 0
	for _, r := range results {
		if r.Err != nil {
			failed++
			fmt.Fprintf(out, "❌  %s: %v\n", r.Name, r.Err)
			continue
		}
		fmt.Fprintf(out, "✅  %s → %s\n", r.Name, r.Asset.URL)
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d uploads failed", failed, len(results))
	}
	return nil
}
