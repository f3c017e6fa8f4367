package service

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"paper-analyzer/internal/domain"
	apperrors "paper-analyzer/pkg/errors"
)

func TestAnalyze_StoresShortTextUnchanged(t *testing.T) {
	doc := &fakeDocument{pages: []fakePage{{text: "Hello "}, {text: "World "}, {text: "Again"}}}
	repo := NewMockSummaryRepository()
	svc := NewAnalysisService(newTextExtractor(openerFor(doc), &MockLogger{}), repo, &MockLogger{})

	summary, err := svc.Analyze(context.Background(), "abc123", "/data/paper.pdf")

	require.NoError(t, err)
	require.Equal(t, "Hello World Again", summary)
	stored, ok := repo.get("summary:abc123")
	require.True(t, ok)
	require.Equal(t, "Hello World Again", stored)
	require.Equal(t, 1, repo.setCalls)
}

func TestAnalyze_TruncatesLongText(t *testing.T) {
	repo := NewMockSummaryRepository()
	svc := NewAnalysisService(&MockTextExtractor{text: strings.Repeat("a", 1001)}, repo, &MockLogger{})

	_, err := svc.Analyze(context.Background(), "s1", "paper.pdf")

	require.NoError(t, err)
	stored, _ := repo.get("summary:s1")
	require.Equal(t, strings.Repeat("a", 1000)+"...", stored)
}

func TestAnalyze_ExactLimitStoredWithoutMarker(t *testing.T) {
	repo := NewMockSummaryRepository()
	text := strings.Repeat("c", 1000)
	svc := NewAnalysisService(&MockTextExtractor{text: text}, repo, &MockLogger{})

	_, err := svc.Analyze(context.Background(), "s2", "paper.pdf")

	require.NoError(t, err)
	stored, _ := repo.get("summary:s2")
	require.Equal(t, text, stored)
}

func TestAnalyze_EmptyDocumentStoresEmptyValue(t *testing.T) {
	repo := NewMockSummaryRepository()
	doc := &fakeDocument{pages: []fakePage{{}, {}}}
	svc := NewAnalysisService(newTextExtractor(openerFor(doc), &MockLogger{}), repo, &MockLogger{})

	_, err := svc.Analyze(context.Background(), "scan", "scan.pdf")

	require.NoError(t, err)
	stored, ok := repo.get("summary:scan")
	require.True(t, ok)
	require.Equal(t, "", stored)
}

func TestAnalyze_MissingFileNeverWrites(t *testing.T) {
	repo := NewMockSummaryRepository()
	extractor, err := NewTextExtractor(domain.PDFEngineNative, &MockLogger{})
	require.NoError(t, err)
	svc := NewAnalysisService(extractor, repo, &MockLogger{})

	_, err = svc.Analyze(context.Background(), "abc123", filepath.Join(t.TempDir(), "missing.pdf"))

	require.Error(t, err)
	require.Equal(t, apperrors.ExitExtraction, apperrors.GetExitCode(err))
	require.Equal(t, 0, repo.setCalls)
	_, ok := repo.get("summary:abc123")
	require.False(t, ok)
}

func TestAnalyze_StoreFailureIsReturned(t *testing.T) {
	repo := NewMockSummaryRepository()
	repo.err = apperrors.NewStoreError("failed to store summary", errConnRefused)
	svc := NewAnalysisService(&MockTextExtractor{text: "text"}, repo, &MockLogger{})

	_, err := svc.Analyze(context.Background(), "abc123", "paper.pdf")

	require.ErrorIs(t, err, errConnRefused)
	require.Equal(t, apperrors.ExitStore, apperrors.GetExitCode(err))
	require.Equal(t, 1, repo.setCalls)
}
