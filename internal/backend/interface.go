package backend

import "context"

// Backend is the remote summarizer service.
type Backend interface {
	// Upload sends a transcript file and instruction and returns the generated summary.
	Upload(ctx context.Context, req UploadRequest) (SummaryResult, error)
	// Summarize sends a typed transcript and instruction and returns the generated summary.
	Summarize(ctx context.Context, req SummarizeRequest) (SummaryResult, error)
	// Email dispatches an (edited) summary to the given recipients.
	Email(ctx context.Context, req EmailRequest) error
}
