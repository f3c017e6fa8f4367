package repository

import (
	"context"
	"fmt"
	"io"
	"path"

	"github.com/supabase-community/supabase-go"

	"paper-analyzer/internal/domain"
	apperrors "paper-analyzer/pkg/errors"
)

// SupabaseArchive implements domain.DocumentArchive on Supabase Storage.
// Source PDFs land at <bucket>/<sessionID>/<filename>.
type SupabaseArchive struct {
	client *supabase.Client
	bucket string
	logger domain.Logger
}

// NewSupabaseArchive connects to the configured Supabase project
func NewSupabaseArchive(config domain.Config, logger domain.Logger) (*SupabaseArchive, error) {
	supabaseURL := config.GetSupabaseURL()
	supabaseKey := config.GetSupabaseKey()

	if supabaseURL == "" || supabaseKey == "" {
		return nil, fmt.Errorf("supabase URL and key must be provided")
	}

	client, err := supabase.NewClient(supabaseURL, supabaseKey, &supabase.ClientOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to create Supabase client: %w", err)
	}

	logger.Info("Supabase archive initialized", "url", supabaseURL, "bucket", config.GetSupabaseBucket())
	return &SupabaseArchive{
		client: client,
		bucket: config.GetSupabaseBucket(),
		logger: logger,
	}, nil
}

// Archive uploads the file under the session's folder
func (a *SupabaseArchive) Archive(ctx context.Context, sessionID string, filename string, file io.Reader) error {
	objectPath := path.Join(sessionID, filename)
	if _, err := a.client.Storage.UploadFile(a.bucket, objectPath, file); err != nil {
		return apperrors.NewNetworkError("failed to archive PDF", err)
	}
	a.logger.Debug("PDF archived", "bucket", a.bucket, "path", objectPath)
	return nil
}
