package workflow

import (
	"context"
	"errors"
	"fmt"

	"github.com/nguyentantai21042004/meeting-notes/internal/backend"
	"github.com/nguyentantai21042004/meeting-notes/internal/gate"
	"github.com/nguyentantai21042004/meeting-notes/internal/session"
)

const msgEmailSent = "Email sent successfully!"

// ProcessFile uploads the selected file. On success the summary fields are
// replaced and the file selection is cleared; on failure the file stays selected.
func (c *implController) ProcessFile(ctx context.Context) error {
	var req backend.UploadRequest
	err := c.begin(ctx, LaneFile, func(s *session.Session) {
		req = backend.UploadRequest{
			FileName:     s.SelectedFile.Name,
			FileData:     s.SelectedFile.Data,
			CustomPrompt: s.CustomInstruction,
		}
	})
	if err != nil {
		return err
	}
	defer c.end(LaneFile)

	c.logger.Info(ctx, "Processing file %s (%d bytes)", req.FileName, len(req.FileData))

	res, err := c.backend.Upload(ctx, req)
	if err != nil {
		return c.fail(ctx, LaneFile, err)
	}

	c.update(func(s *session.Session) {
		s.ApplySummary(res.Summary, res.SummaryID)
		s.SelectedFile = nil
	})
	c.logger.Info(ctx, "File %s summarized (summary %s)", req.FileName, res.SummaryID)
	return nil
}

// GenerateSummary summarizes the typed transcript. On failure the previous
// summary is kept.
func (c *implController) GenerateSummary(ctx context.Context) error {
	var req backend.SummarizeRequest
	err := c.begin(ctx, LaneText, func(s *session.Session) {
		req = backend.SummarizeRequest{
			Transcript:   s.Transcript,
			CustomPrompt: s.CustomInstruction,
		}
	})
	if err != nil {
		return err
	}
	defer c.end(LaneText)

	c.logger.Info(ctx, "Generating summary (%d chars of transcript)", len(req.Transcript))

	res, err := c.backend.Summarize(ctx, req)
	if err != nil {
		return c.fail(ctx, LaneText, err)
	}

	c.update(func(s *session.Session) {
		s.ApplySummary(res.Summary, res.SummaryID)
	})
	c.logger.Info(ctx, "Summary generated (summary %s)", res.SummaryID)
	return nil
}

// SendEmail dispatches the edited summary. The recipient field is cleared
// only on success; the summary and its identifier are never touched.
func (c *implController) SendEmail(ctx context.Context) error {
	var req backend.EmailRequest
	err := c.begin(ctx, LaneEmail, func(s *session.Session) {
		req = backend.EmailRequest{
			SummaryID:     s.SummaryID,
			Recipients:    ParseRecipients(s.RecipientsRaw),
			EditedSummary: s.EditedSummaryText,
		}
	})
	if err != nil {
		return err
	}
	defer c.end(LaneEmail)

	c.logger.Info(ctx, "Sending summary %s to %d recipient(s)", req.SummaryID, len(req.Recipients))

	if err := c.backend.Email(ctx, req); err != nil {
		return c.fail(ctx, LaneEmail, err)
	}

	c.update(func(s *session.Session) {
		s.RecipientsRaw = ""
	})
	c.logger.Info(ctx, "Summary %s sent", req.SummaryID)
	c.notifier.Notify(ctx, Notice{Level: LevelInfo, Text: msgEmailSent})
	return nil
}

// begin moves lane from idle to busy. It rejects re-entrant calls, runs the
// precondition and lets capture copy the request inputs while the lock is held.
func (c *implController) begin(ctx context.Context, lane Lane, capture func(s *session.Session)) error {
	c.mu.Lock()

	busy := busyFlag(c.state, lane)
	if *busy {
		c.mu.Unlock()
		c.logger.Debug(ctx, "Dropped %s request: lane busy", lane)
		return ErrLaneBusy
	}

	if err := gate.Check(lane.operation(), c.state); err != nil {
		c.mu.Unlock()
		c.logger.Debug(ctx, "Rejected %s request: %v", lane, err)
		c.notifier.Notify(ctx, Notice{Level: LevelError, Text: err.Error()})
		return err
	}

	capture(c.state)
	*busy = true
	c.mu.Unlock()
	return nil
}

func (c *implController) end(lane Lane) {
	c.update(func(s *session.Session) {
		*busyFlag(s, lane) = false
	})
}

// fail surfaces a failed exchange. The session is left as it was.
func (c *implController) fail(ctx context.Context, lane Lane, err error) error {
	detail := err.Error()
	var terr *backend.TransportError
	if errors.As(err, &terr) {
		detail = terr.Detail()
	}

	c.logger.Warn(ctx, "%s lane failed: %v", lane, err)
	c.notifier.Notify(ctx, Notice{Level: LevelError, Text: fmt.Sprintf("%s: %s", lane.failurePrefix(), detail)})
	return fmt.Errorf("%s: %w", lane.operation(), err)
}
