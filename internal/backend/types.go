package backend

// UploadRequest is sent as multipart/form-data to POST /upload.
type UploadRequest struct {
	FileName     string
	FileData     []byte
	CustomPrompt string
}

// SummarizeRequest is the JSON body of POST /summarize.
type SummarizeRequest struct {
	Transcript   string `json:"transcript"`
	CustomPrompt string `json:"customPrompt"`
}

// EmailRequest is the JSON body of POST /email.
type EmailRequest struct {
	SummaryID     string   `json:"summaryId"`
	Recipients    []string `json:"recipients"`
	EditedSummary string   `json:"editedSummary"`
}

// SummaryResult is what both summary-producing endpoints return on success.
type SummaryResult struct {
	Summary   string
	SummaryID string
}

type summaryResponse struct {
	Success   bool   `json:"success"`
	Summary   string `json:"summary"`
	SummaryID string `json:"summaryId"`
}

type emailResponse struct {
	Success bool `json:"success"`
}
