package api

// BatchVerifyRequest is the body of POST verify/email/batch.
type BatchVerifyRequest struct {
	Emails []string `json:"emails"`
}

// StartUploadRequest is the body of POST uploads/.
type StartUploadRequest struct {
	Filename        string `json:"filename" validate:"required"`
	FileType        string `json:"file_type" validate:"required"`
	TotalChunkCount int    `json:"total_chunk_count" validate:"gte=1"`
	MaxChunkSize    int    `json:"max_chunk_size" validate:"gte=1"`
}

// ResultType names a download bucket.
type ResultType string

// Download buckets accepted by the downloads endpoints.
const (
	ResultClean   ResultType = "clean"
	ResultDirty   ResultType = "dirty"
	ResultUnknown ResultType = "unknown"
)
