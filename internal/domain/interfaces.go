package domain

import (
	"context"
	"io"
)

// TextExtractor turns a PDF on disk into one text blob, pages concatenated in order
type TextExtractor interface {
	ExtractFile(path string) (*ExtractedText, error)
}

// SummaryRepository defines the key-value operations used for session summaries
type SummaryRepository interface {
	Store(ctx context.Context, sessionID string, summary string) error
	Retrieve(ctx context.Context, sessionID string) (string, error)
}

// DocumentArchive keeps a copy of the source PDF outside the session directory
type DocumentArchive interface {
	Archive(ctx context.Context, sessionID string, filename string, file io.Reader) error
}

// AnalysisLauncher starts the analysis of a session's PDF without waiting for it
type AnalysisLauncher interface {
	Launch(ctx context.Context, sessionID string, pdfPath string) error
}

// PaperFetcher downloads the open-access PDF for a DOI
type PaperFetcher interface {
	FetchByDOI(ctx context.Context, doi string, dst io.Writer) error
}

// Logger defines the interface for logging operations
type Logger interface {
	Info(msg string, fields ...interface{})
	Error(msg string, err error, fields ...interface{})
	Debug(msg string, fields ...interface{})
	Warn(msg string, fields ...interface{})
}

// Config defines the interface for configuration management
type Config interface {
	GetServerPort() string
	GetLogLevel() string
	GetRedisAddr() string
	GetRedisPassword() string
	GetRedisDB() int
	GetPDFEngine() string
	GetSessionsDir() string
	GetMaxFileSize() int64
	GetWorkerMode() string
	GetWorkerImage() string
	GetUnpaywallEmail() string
	GetSupabaseURL() string
	GetSupabaseKey() string
	GetSupabaseBucket() string
	GetAllowedOrigins() []string
}

// SessionService defines the session operations exposed over HTTP
type SessionService interface {
	CreateFromUpload(ctx context.Context, filename string, file io.Reader) (*Session, error)
	CreateFromDOI(ctx context.Context, doi string) (*Session, error)
	Summary(ctx context.Context, sessionID string) (*SessionSummary, error)
}
