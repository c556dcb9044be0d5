package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"time"

	"github.com/google/uuid"
)

const (
	endpointUpload    = "/upload"
	endpointSummarize = "/summarize"
	endpointEmail     = "/email"

	headerRequestID = "X-Request-ID"
)

// Upload posts the file and instruction as multipart/form-data.
func (b *implBackend) Upload(ctx context.Context, req UploadRequest) (SummaryResult, error) {
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)

	part, err := mw.CreateFormFile("file", req.FileName)
	if err != nil {
		return SummaryResult{}, fmt.Errorf("create form file: %w", err)
	}
	if _, err := part.Write(req.FileData); err != nil {
		return SummaryResult{}, fmt.Errorf("write form file: %w", err)
	}
	if err := mw.WriteField("customPrompt", req.CustomPrompt); err != nil {
		return SummaryResult{}, fmt.Errorf("write customPrompt: %w", err)
	}
	if err := mw.Close(); err != nil {
		return SummaryResult{}, fmt.Errorf("close multipart: %w", err)
	}

	var resp summaryResponse
	if err := b.post(ctx, endpointUpload, mw.FormDataContentType(), &body, &resp); err != nil {
		return SummaryResult{}, err
	}
	if !resp.Success {
		return SummaryResult{}, &TransportError{Endpoint: endpointUpload}
	}

	return SummaryResult{Summary: resp.Summary, SummaryID: resp.SummaryID}, nil
}

// Summarize posts the typed transcript and instruction as JSON.
func (b *implBackend) Summarize(ctx context.Context, req SummarizeRequest) (SummaryResult, error) {
	payload, err := json.Marshal(req)
	if err != nil {
		return SummaryResult{}, fmt.Errorf("marshal summarize request: %w", err)
	}

	var resp summaryResponse
	if err := b.post(ctx, endpointSummarize, "application/json", bytes.NewReader(payload), &resp); err != nil {
		return SummaryResult{}, err
	}
	if !resp.Success {
		return SummaryResult{}, &TransportError{Endpoint: endpointSummarize}
	}

	return SummaryResult{Summary: resp.Summary, SummaryID: resp.SummaryID}, nil
}

// Email posts the dispatch request as JSON.
func (b *implBackend) Email(ctx context.Context, req EmailRequest) error {
	if req.Recipients == nil {
		req.Recipients = []string{}
	}
	payload, err := json.Marshal(req)
	if err != nil {
		return fmt.Errorf("marshal email request: %w", err)
	}

	var resp emailResponse
	if err := b.post(ctx, endpointEmail, "application/json", bytes.NewReader(payload), &resp); err != nil {
		return err
	}
	if !resp.Success {
		return &TransportError{Endpoint: endpointEmail}
	}

	return nil
}

// post performs a single exchange and decodes a 2xx JSON body into out.
// Every failure comes back as a *TransportError.
func (b *implBackend) post(ctx context.Context, endpoint, contentType string, body io.Reader, out interface{}) error {
	requestID := uuid.NewString()
	start := time.Now()

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, b.baseURL+endpoint, body)
	if err != nil {
		return &TransportError{Endpoint: endpoint, Err: err}
	}
	httpReq.Header.Set("Content-Type", contentType)
	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set(headerRequestID, requestID)

	b.logger.Debug(ctx, "POST %s (request %s)", endpoint, requestID)

	resp, err := b.client.Do(httpReq)
	if err != nil {
		b.logger.Warn(ctx, "POST %s failed after %s: %v", endpoint, time.Since(start), err)
		return &TransportError{Endpoint: endpoint, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// Drain so the connection can be reused.
		_, _ = io.Copy(io.Discard, resp.Body)
		b.logger.Warn(ctx, "POST %s returned %d (request %s)", endpoint, resp.StatusCode, requestID)
		return &TransportError{Endpoint: endpoint, StatusCode: resp.StatusCode}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &TransportError{Endpoint: endpoint, StatusCode: resp.StatusCode, Err: fmt.Errorf("decode response: %w", err)}
	}

	b.logger.Info(ctx, "POST %s completed in %s", endpoint, time.Since(start))
	return nil
}
