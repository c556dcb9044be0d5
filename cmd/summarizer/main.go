package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/nguyentantai21042004/meeting-notes/internal/backend"
	"github.com/nguyentantai21042004/meeting-notes/internal/config"
	"github.com/nguyentantai21042004/meeting-notes/internal/export"
	"github.com/nguyentantai21042004/meeting-notes/internal/logger"
	"github.com/nguyentantai21042004/meeting-notes/internal/session"
	"github.com/nguyentantai21042004/meeting-notes/internal/tui"
	"github.com/nguyentantai21042004/meeting-notes/internal/watcher"
	"github.com/nguyentantai21042004/meeting-notes/internal/workflow"
)

func main() {
	var opts headlessOptions
	configPath := flag.String("config", "config.yaml", "path to the YAML config file")
	headless := flag.Bool("headless", false, "run once without the terminal UI")
	flag.StringVar(&opts.transcriptPath, "transcript", "", "headless: transcript text file to summarize (- for stdin)")
	flag.StringVar(&opts.filePath, "file", "", "headless: transcript file to upload instead of -transcript")
	flag.StringVar(&opts.instruction, "prompt", "", "headless: custom instruction")
	flag.StringVar(&opts.recipients, "to", "", "headless: comma-separated recipients to email the summary to")
	flag.StringVar(&opts.exportFormat, "export", "", "headless: also export the summary (docx or md)")
	flag.Parse()

	if err := config.LoadDotEnv(".env"); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load .env: %v\n", err)
		os.Exit(1)
	}

	cfg, err := config.LoadOrDefault(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	// The terminal UI owns stdout, so it only ever logs to the file sink.
	log := logger.NewWithOptions(logger.Options{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		File:   cfg.Logging.File,
		Quiet:  !*headless,
	})
	defer log.Sync()

	log.Info(ctx, "Backend: %s", cfg.Backend.BaseURL)

	be := backend.New(cfg.Backend, log)
	exp := export.New(cfg.Export.Dir, log)

	if *headless {
		if err := runHeadless(ctx, be, exp, log, opts); err != nil {
			if !surfaced(err) {
				fmt.Fprintf(os.Stderr, "%v\n", err)
			}
			os.Exit(1)
		}
		return
	}

	if err := runUI(ctx, cfg, be, exp, log); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runUI(ctx context.Context, cfg *config.Config, be backend.Backend, exp export.Exporter, log logger.Logger) error {
	notifier := tui.NewNotifier()
	ctrl := workflow.New(be, notifier, log)

	p := tea.NewProgram(tui.NewModel(ctx, ctrl, exp, notifier), tea.WithAltScreen(), tea.WithContext(ctx))

	if cfg.Inbox.Dir != "" {
		w, err := startInbox(ctx, cfg, ctrl, log, func(name string) {
			p.Send(tui.FileSelectedMsg{Name: name})
		})
		if err != nil {
			return err
		}
		defer w.Stop()
	}

	_, err := p.Run()
	if err != nil && ctx.Err() != nil {
		// interrupted by a signal
		return nil
	}
	return err
}

// startInbox watches the configured inbox and selects every dropped transcript file.
func startInbox(ctx context.Context, cfg *config.Config, ctrl workflow.Controller, log logger.Logger, selected func(name string)) (watcher.Watcher, error) {
	if err := os.MkdirAll(cfg.Inbox.Dir, 0755); err != nil {
		return nil, fmt.Errorf("create inbox %s: %w", cfg.Inbox.Dir, err)
	}

	handler := func(ctx context.Context, path string) error {
		f, err := session.ReadFile(path)
		if err != nil {
			return err
		}
		ctrl.SetMode(session.ModeFile)
		ctrl.SelectFile(f)
		log.Info(ctx, "Selected %s from inbox", f.Name)
		selected(f.Name)
		return nil
	}

	w, err := watcher.New(cfg.Inbox.Dir, cfg.Inbox.Extensions, handler, log, watcher.DefaultSettle)
	if err != nil {
		return nil, fmt.Errorf("create inbox watcher: %w", err)
	}

	go func() {
		if err := w.Start(ctx); err != nil && err != context.Canceled {
			log.Error(ctx, "Inbox watcher error: %v", err)
		}
	}()

	return w, nil
}
