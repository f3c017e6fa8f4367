package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"paper-analyzer/internal/domain"
	apperrors "paper-analyzer/pkg/errors"
)

// SessionPDFName is the file name every session's PDF is saved under
const SessionPDFName = "paper.pdf"

// SessionService creates analysis sessions and reports their summaries
type SessionService struct {
	sessionsDir string
	launcher    domain.AnalysisLauncher
	fetcher     domain.PaperFetcher
	archive     domain.DocumentArchive
	repository  domain.SummaryRepository
	logger      domain.Logger
	now         func() time.Time

	mu      sync.Mutex
	counter int
}

// NewSessionService creates a new session service. archive may be nil.
func NewSessionService(
	sessionsDir string,
	launcher domain.AnalysisLauncher,
	fetcher domain.PaperFetcher,
	archive domain.DocumentArchive,
	repository domain.SummaryRepository,
	logger domain.Logger,
) *SessionService {
	return &SessionService{
		sessionsDir: sessionsDir,
		launcher:    launcher,
		fetcher:     fetcher,
		archive:     archive,
		repository:  repository,
		logger:      logger,
		now:         time.Now,
	}
}

// NewSessionID returns YYMMDD followed by a per-process counter, e.g. 2610191
func (s *SessionService) NewSessionID(now time.Time) string {
	s.mu.Lock()
	s.counter++
	count := s.counter
	s.mu.Unlock()
	return fmt.Sprintf("%s%d", now.Format("060102"), count)
}

// CreateFromUpload saves an uploaded PDF into a new session and launches its analysis
func (s *SessionService) CreateFromUpload(ctx context.Context, filename string, file io.Reader) (*domain.Session, error) {
	name := strings.TrimSpace(filepath.Base(filename))
	if !strings.EqualFold(filepath.Ext(name), ".pdf") {
		return nil, apperrors.NewValidationError("Unsupported file type. Only PDF (.pdf) is accepted.", name)
	}

	return s.create(ctx, func(dst io.Writer) error {
		if _, err := io.Copy(dst, file); err != nil {
			return apperrors.NewInternalError("failed to save upload", err)
		}
		return nil
	})
}

// CreateFromDOI downloads the open-access PDF for doi into a new session and launches its analysis
func (s *SessionService) CreateFromDOI(ctx context.Context, doi string) (*domain.Session, error) {
	return s.create(ctx, func(dst io.Writer) error {
		return s.fetcher.FetchByDOI(ctx, doi, dst)
	})
}

func (s *SessionService) create(ctx context.Context, fill func(dst io.Writer) error) (*domain.Session, error) {
	now := s.now()
	session := &domain.Session{
		ID:        s.NewSessionID(now),
		CreatedAt: now,
	}

	sessionDir := filepath.Join(s.sessionsDir, session.ID)
	if err := os.MkdirAll(sessionDir, 0o755); err != nil {
		return nil, apperrors.NewInternalError("failed to create session directory", err)
	}
	session.FilePath = filepath.Join(sessionDir, SessionPDFName)

	if err := writeFile(session.FilePath, fill); err != nil {
		_ = os.RemoveAll(sessionDir)
		return nil, err
	}
	s.logger.Info("Session PDF saved", "session", session.ID, "path", session.FilePath)

	s.archivePDF(ctx, session)

	if err := s.launcher.Launch(ctx, session.ID, session.FilePath); err != nil {
		return nil, err
	}
	return session, nil
}

func writeFile(path string, fill func(dst io.Writer) error) error {
	out, err := os.Create(path)
	if err != nil {
		return apperrors.NewInternalError("error creating PDF file", err)
	}
	if err := fill(out); err != nil {
		out.Close()
		return err
	}
	if err := out.Close(); err != nil {
		return apperrors.NewInternalError("error saving PDF file", err)
	}
	return nil
}

// archivePDF copies the session PDF to the archive; failures are only logged
func (s *SessionService) archivePDF(ctx context.Context, session *domain.Session) {
	if s.archive == nil {
		return
	}
	f, err := os.Open(session.FilePath)
	if err != nil {
		s.logger.Warn("Failed to reopen PDF for archive", "session", session.ID, "error", err)
		return
	}
	defer f.Close()

	if err := s.archive.Archive(ctx, session.ID, SessionPDFName, f); err != nil {
		s.logger.Warn("Failed to archive PDF", "session", session.ID, "error", err)
	}
}

// Summary reports the stored summary for a session, or pending if none has
// been written yet. A session with neither a summary nor a directory is unknown.
func (s *SessionService) Summary(ctx context.Context, sessionID string) (*domain.SessionSummary, error) {
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return nil, apperrors.NewValidationError("session id is required")
	}
	if sessionID != filepath.Base(sessionID) || sessionID == "." || sessionID == ".." {
		return nil, apperrors.NewValidationError("invalid session id", sessionID)
	}

	summary, err := s.repository.Retrieve(ctx, sessionID)
	if errors.Is(err, domain.ErrSummaryNotFound) {
		if _, statErr := os.Stat(filepath.Join(s.sessionsDir, sessionID)); errors.Is(statErr, os.ErrNotExist) {
			return nil, apperrors.NewNotFoundError("session not found", domain.ErrSessionNotFound)
		}
		return &domain.SessionSummary{SessionID: sessionID, Status: domain.SummaryStatusPending}, nil
	}
	if err != nil {
		return nil, err
	}
	return &domain.SessionSummary{
		SessionID: sessionID,
		Status:    domain.SummaryStatusReady,
		Summary:   summary,
	}, nil
}
