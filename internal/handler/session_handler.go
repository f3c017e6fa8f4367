package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"paper-analyzer/internal/domain"
	apperrors "paper-analyzer/pkg/errors"
)

// multipartHeadroom covers form boundaries and part headers on top of the file itself
const multipartHeadroom = 1 << 20

// SessionHandler handles HTTP requests for analysis sessions
type SessionHandler struct {
	sessions    domain.SessionService
	maxFileSize int64
	logger      domain.Logger
}

type createSessionResponse struct {
	SessionID    string `json:"session_id"`
	CreationDate string `json:"creation_date"`
}

// NewSessionHandler creates a new session handler instance
func NewSessionHandler(sessions domain.SessionService, maxFileSize int64, logger domain.Logger) *SessionHandler {
	return &SessionHandler{
		sessions:    sessions,
		maxFileSize: maxFileSize,
		logger:      logger,
	}
}

// CreateSession starts an analysis from a "doi" form value or an uploaded "pdf" file
func (h *SessionHandler) CreateSession(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxFileSize+multipartHeadroom)
	if err := r.ParseMultipartForm(h.maxFileSize); err != nil && !errors.Is(err, http.ErrNotMultipart) {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, http.StatusRequestEntityTooLarge, "File too large")
			return
		}
		writeError(w, http.StatusBadRequest, "Invalid form data")
		return
	}

	var (
		session *domain.Session
		err     error
	)
	if doi := strings.TrimSpace(r.FormValue("doi")); doi != "" {
		session, err = h.sessions.CreateFromDOI(r.Context(), doi)
		if err != nil {
			h.logger.Error("Failed to fetch PDF from DOI", err, "doi", doi, "request_id", requestID(r))
			if apperrors.IsType(err, apperrors.ErrorTypeNetwork) || apperrors.IsType(err, apperrors.ErrorTypeValidation) {
				writeError(w, http.StatusBadRequest, "Failed to fetch PDF from DOI: "+err.Error())
				return
			}
			writeAppError(w, err)
			return
		}
	} else {
		file, header, ferr := r.FormFile("pdf")
		if ferr != nil {
			writeError(w, http.StatusBadRequest, domain.ErrNoPDFSource.Error())
			return
		}
		defer file.Close()

		session, err = h.sessions.CreateFromUpload(r.Context(), header.Filename, file)
		if err != nil {
			h.logger.Error("Failed to create session from upload", err, "filename", header.Filename, "request_id", requestID(r))
			writeAppError(w, err)
			return
		}
	}

	h.logger.Info("Session created", "session", session.ID, "request_id", requestID(r))
	writeJSON(w, http.StatusCreated, createSessionResponse{
		SessionID:    session.ID,
		CreationDate: session.CreatedAt.Format("2006-01-02"),
	})
}

// GetSummary reports the summary of a session; 202 while it is still pending
func (h *SessionHandler) GetSummary(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["id"]

	summary, err := h.sessions.Summary(r.Context(), sessionID)
	if err != nil {
		h.logger.Error("Failed to read summary", err, "session", sessionID, "request_id", requestID(r))
		writeAppError(w, err)
		return
	}

	status := http.StatusOK
	if summary.Status == domain.SummaryStatusPending {
		status = http.StatusAccepted
	}
	writeJSON(w, status, summary)
}
