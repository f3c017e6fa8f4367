package service

import (
	"fmt"
	"strings"

	"paper-analyzer/internal/domain"
	apperrors "paper-analyzer/pkg/errors"
)

// pageDocument is an open PDF whose pages are read one at a time (0-indexed)
type pageDocument interface {
	NumPage() int
	PageText(index int) (string, error)
	Close() error
}

type documentOpener func(path string) (pageDocument, error)

// PDFTextExtractor implements domain.TextExtractor on top of a PDF engine
type PDFTextExtractor struct {
	open   documentOpener
	logger domain.Logger
}

// NewTextExtractor creates an extractor backed by the named engine
func NewTextExtractor(engine domain.PDFEngine, logger domain.Logger) (*PDFTextExtractor, error) {
	switch engine {
	case domain.PDFEngineFitz, "":
		return newTextExtractor(openFitzDocument, logger), nil
	case domain.PDFEngineNative:
		return newTextExtractor(openNativeDocument, logger), nil
	default:
		return nil, fmt.Errorf("unknown pdf engine %q", engine)
	}
}

func newTextExtractor(open documentOpener, logger domain.Logger) *PDFTextExtractor {
	return &PDFTextExtractor{
		open:   open,
		logger: logger,
	}
}

// ExtractFile opens the PDF at path and concatenates the text of every page in
// order, with no separator. A page that fails to extract contributes nothing.
// Only a failure to open the document is returned as an error.
func (e *PDFTextExtractor) ExtractFile(path string) (*domain.ExtractedText, error) {
	doc, err := e.open(path)
	if err != nil {
		return nil, apperrors.NewExtractionError("failed to open PDF", err)
	}
	defer func() {
		if cerr := doc.Close(); cerr != nil {
			e.logger.Warn("Failed to close PDF", "path", path, "error", cerr)
		}
	}()

	numPages := doc.NumPage()
	var sb strings.Builder
	failed := 0

	for pageNum := 0; pageNum < numPages; pageNum++ {
		text, err := pageText(doc, pageNum)
		if err != nil {
			failed++
			e.logger.Debug("Failed to extract text from page", "page_num", pageNum+1, "total", numPages, "error", err)
			continue
		}
		sb.WriteString(text)
	}

	return &domain.ExtractedText{
		Content:     sb.String(),
		PageCount:   numPages,
		FailedPages: failed,
	}, nil
}

// pageText turns an engine panic on a malformed page into an error
func pageText(doc pageDocument, index int) (text string, err error) {
	defer func() {
		if r := recover(); r != nil {
			text = ""
			err = fmt.Errorf("page %d: %v", index+1, r)
		}
	}()
	return doc.PageText(index)
}
