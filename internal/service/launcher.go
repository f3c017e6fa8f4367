package service

import (
	"context"
	"sync"

	"paper-analyzer/internal/domain"
)

type sessionAnalyzer interface {
	Analyze(ctx context.Context, sessionID string, pdfPath string) (string, error)
}

// InProcessLauncher runs each analysis on its own goroutine inside the server
type InProcessLauncher struct {
	analyzer sessionAnalyzer
	logger   domain.Logger
	wg       sync.WaitGroup
}

// NewInProcessLauncher creates a launcher around the analysis pipeline
func NewInProcessLauncher(analyzer sessionAnalyzer, logger domain.Logger) *InProcessLauncher {
	return &InProcessLauncher{
		analyzer: analyzer,
		logger:   logger,
	}
}

// Launch starts the analysis and returns immediately. The request context is
// not used for the analysis itself, which outlives the request.
func (l *InProcessLauncher) Launch(ctx context.Context, sessionID string, pdfPath string) error {
	l.wg.Add(1)
	go func() {
		defer l.wg.Done()
		if _, err := l.analyzer.Analyze(context.Background(), sessionID, pdfPath); err != nil {
			l.logger.Warn("Analysis failed", "session", sessionID, "error", err)
		}
	}()
	l.logger.Info("Worker started", "session", sessionID, "mode", "inprocess")
	return nil
}

// Wait blocks until every launched analysis has finished
func (l *InProcessLauncher) Wait() {
	l.wg.Wait()
}
