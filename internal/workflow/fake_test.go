package workflow

import (
	"context"
	"sync"

	"github.com/nguyentantai21042004/meeting-notes/internal/backend"
)

// fakeBackend records requests and returns canned results. When gate is
// non-nil every call waits on it before answering.
type fakeBackend struct {
	mu sync.Mutex

	uploadRes    backend.SummaryResult
	summarizeRes backend.SummaryResult
	err          error
	gate         chan struct{}
	started      chan struct{}

	uploads    []backend.UploadRequest
	summarizes []backend.SummarizeRequest
	emails     []backend.EmailRequest
}

func (f *fakeBackend) wait(ctx context.Context) {
	if f.started != nil {
		f.started <- struct{}{}
	}
	if f.gate != nil {
		select {
		case <-f.gate:
		case <-ctx.Done():
		}
	}
}

func (f *fakeBackend) Upload(ctx context.Context, req backend.UploadRequest) (backend.SummaryResult, error) {
	f.mu.Lock()
	f.uploads = append(f.uploads, req)
	f.mu.Unlock()
	f.wait(ctx)
	if f.err != nil {
		return backend.SummaryResult{}, f.err
	}
	return f.uploadRes, nil
}

func (f *fakeBackend) Summarize(ctx context.Context, req backend.SummarizeRequest) (backend.SummaryResult, error) {
	f.mu.Lock()
	f.summarizes = append(f.summarizes, req)
	f.mu.Unlock()
	f.wait(ctx)
	if f.err != nil {
		return backend.SummaryResult{}, f.err
	}
	return f.summarizeRes, nil
}

func (f *fakeBackend) Email(ctx context.Context, req backend.EmailRequest) error {
	f.mu.Lock()
	f.emails = append(f.emails, req)
	f.mu.Unlock()
	f.wait(ctx)
	return f.err
}

func (f *fakeBackend) calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.uploads) + len(f.summarizes) + len(f.emails)
}

// recorder collects notices.
type recorder struct {
	mu      sync.Mutex
	notices []Notice
}

func (r *recorder) Notify(_ context.Context, n Notice) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.notices = append(r.notices, n)
}

func (r *recorder) all() []Notice {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Notice(nil), r.notices...)
}
