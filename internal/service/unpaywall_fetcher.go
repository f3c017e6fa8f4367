package service

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"paper-analyzer/internal/domain"
	apperrors "paper-analyzer/pkg/errors"
)

const defaultUnpaywallURL = "https://api.unpaywall.org/v2"

// UnpaywallFetcher implements domain.PaperFetcher using the Unpaywall API
type UnpaywallFetcher struct {
	httpClient *http.Client
	baseURL    string
	email      string
	logger     domain.Logger
}

type unpaywallResponse struct {
	BestOA struct {
		URLForPDF string `json:"url_for_pdf"`
	} `json:"best_oa_location"`
}

// NewUnpaywallFetcher creates a fetcher identifying itself with email
func NewUnpaywallFetcher(email string, logger domain.Logger) *UnpaywallFetcher {
	return &UnpaywallFetcher{
		httpClient: http.DefaultClient,
		baseURL:    defaultUnpaywallURL,
		email:      email,
		logger:     logger,
	}
}

// FetchByDOI resolves the best open-access PDF for doi and copies it into dst
func (f *UnpaywallFetcher) FetchByDOI(ctx context.Context, doi string, dst io.Writer) error {
	doi = strings.TrimSpace(doi)
	if doi == "" {
		return apperrors.NewValidationError("DOI is required")
	}

	apiURL := fmt.Sprintf("%s/%s?email=%s", f.baseURL, doi, url.QueryEscape(f.email))
	resp, err := f.get(ctx, apiURL)
	if err != nil {
		return apperrors.NewNetworkError("error fetching metadata from Unpaywall", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return apperrors.NewNetworkError(fmt.Sprintf("Unpaywall API returned status %d", resp.StatusCode), nil)
	}

	var data unpaywallResponse
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return apperrors.NewNetworkError("error decoding Unpaywall response", err)
	}

	pdfURL := data.BestOA.URLForPDF
	if pdfURL == "" {
		return apperrors.NewNetworkError("no open-access PDF for DOI", domain.ErrPDFNotFound)
	}
	f.logger.Debug("Resolved DOI", "doi", doi, "pdf_url", pdfURL)

	pdfResp, err := f.get(ctx, pdfURL)
	if err != nil {
		return apperrors.NewNetworkError("error downloading PDF", err)
	}
	defer pdfResp.Body.Close()

	if pdfResp.StatusCode != http.StatusOK {
		return apperrors.NewNetworkError(fmt.Sprintf("PDF download returned status %d", pdfResp.StatusCode), nil)
	}

	if _, err := io.Copy(dst, pdfResp.Body); err != nil {
		return apperrors.NewNetworkError("error saving PDF file", err)
	}
	return nil
}

func (f *UnpaywallFetcher) get(ctx context.Context, rawURL string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, err
	}
	return f.httpClient.Do(req)
}
