package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/nguyentantai21042004/meeting-notes/internal/backend"
	"github.com/nguyentantai21042004/meeting-notes/internal/gate"
	"github.com/nguyentantai21042004/meeting-notes/internal/export"
	"github.com/nguyentantai21042004/meeting-notes/internal/logger"
	"github.com/nguyentantai21042004/meeting-notes/internal/session"
	"github.com/nguyentantai21042004/meeting-notes/internal/workflow"
)

type headlessOptions struct {
	transcriptPath string
	filePath       string
	instruction    string
	recipients     string
	exportFormat   string
}

// runHeadless drives one summarize → (email) → (export) pass and prints the summary to stdout.
func runHeadless(ctx context.Context, be backend.Backend, exp export.Exporter, log logger.Logger, opts headlessOptions) error {
	notifier := workflow.NotifierFunc(func(_ context.Context, n workflow.Notice) {
		fmt.Fprintln(os.Stderr, n.Text)
	})
	ctrl := workflow.New(be, notifier, log)
	ctrl.SetInstruction(opts.instruction)

	switch {
	case opts.filePath != "":
		f, err := session.ReadFile(opts.filePath)
		if err != nil {
			return err
		}
		ctrl.SetMode(session.ModeFile)
		ctrl.SelectFile(f)
		if err := ctrl.ProcessFile(ctx); err != nil {
			return err
		}

	case opts.transcriptPath != "":
		text, err := readTranscript(opts.transcriptPath)
		if err != nil {
			return err
		}
		ctrl.SetTranscript(text)
		if err := ctrl.GenerateSummary(ctx); err != nil {
			return err
		}

	default:
		return errors.New("headless mode needs -transcript or -file")
	}

	s := ctrl.Snapshot()
	fmt.Println(s.SummaryText)

	if opts.recipients != "" {
		ctrl.SetRecipients(opts.recipients)
		if err := ctrl.SendEmail(ctx); err != nil {
			return err
		}
	}

	if opts.exportFormat != "" {
		path, err := exp.Export(ctx, s.SummaryID, s.EditedSummaryText, export.Format(opts.exportFormat))
		if err != nil {
			return fmt.Errorf("export: %w", err)
		}
		fmt.Fprintf(os.Stderr, "Exported to %s\n", path)
	}

	return nil
}

// surfaced reports whether err was already shown to the user through the notifier.
func surfaced(err error) bool {
	var verr *gate.ValidationError
	var terr *backend.TransportError
	return errors.As(err, &verr) || errors.As(err, &terr)
}

func readTranscript(path string) (string, error) {
	if path == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read transcript: %w", err)
	}
	return string(data), nil
}
