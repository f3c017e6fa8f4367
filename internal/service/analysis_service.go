package service

import (
	"context"

	"paper-analyzer/internal/domain"
)

// AnalysisService runs the extract, summarize, store pipeline for one session
type AnalysisService struct {
	extractor  domain.TextExtractor
	repository domain.SummaryRepository
	logger     domain.Logger
}

// NewAnalysisService creates a new analysis service instance
func NewAnalysisService(
	extractor domain.TextExtractor,
	repository domain.SummaryRepository,
	logger domain.Logger,
) *AnalysisService {
	return &AnalysisService{
		extractor:  extractor,
		repository: repository,
		logger:     logger,
	}
}

// Analyze extracts the text of the PDF at pdfPath, derives its summary and
// writes it under summary:<sessionID>. Nothing is written if extraction fails.
func (s *AnalysisService) Analyze(ctx context.Context, sessionID string, pdfPath string) (string, error) {
	s.logger.Info("Processing session", "session", sessionID, "file", pdfPath)

	extracted, err := s.extractor.ExtractFile(pdfPath)
	if err != nil {
		s.logger.Error("Failed to extract text", err, "session", sessionID, "file", pdfPath)
		return "", err
	}
	s.logger.Debug("Extracted text",
		"session", sessionID,
		"pages", extracted.PageCount,
		"failed_pages", extracted.FailedPages,
		"bytes", len(extracted.Content),
	)

	summary := Summarize(extracted.Content)

	if err := s.repository.Store(ctx, sessionID, summary); err != nil {
		s.logger.Error("Failed to store summary", err, "session", sessionID)
		return "", err
	}

	s.logger.Info("Stored summary", "session", sessionID, "key", domain.SummaryKey(sessionID))
	return summary, nil
}
