package service

import (
	"context"
	"errors"
	"io"
	"sync"

	"paper-analyzer/internal/domain"
)

// Mock logger used by service package tests.
type MockLogger struct{}

func (l *MockLogger) Info(msg string, fields ...interface{})             {}
func (l *MockLogger) Error(msg string, err error, fields ...interface{}) {}
func (l *MockLogger) Debug(msg string, fields ...interface{})            {}
func (l *MockLogger) Warn(msg string, fields ...interface{})             {}

// fakePage is what a fake document returns for one page
type fakePage struct {
	text  string
	err   error
	panic bool
}

type fakeDocument struct {
	pages  []fakePage
	closed bool
}

func (d *fakeDocument) NumPage() int { return len(d.pages) }

func (d *fakeDocument) PageText(index int) (string, error) {
	p := d.pages[index]
	if p.panic {
		panic("malformed content stream")
	}
	return p.text, p.err
}

func (d *fakeDocument) Close() error {
	d.closed = true
	return nil
}

func openerFor(doc *fakeDocument) documentOpener {
	return func(path string) (pageDocument, error) {
		return doc, nil
	}
}

// MockSummaryRepository is an in-memory domain.SummaryRepository
type MockSummaryRepository struct {
	mu       sync.Mutex
	data     map[string]string
	setCalls int
	err      error
}

func NewMockSummaryRepository() *MockSummaryRepository {
	return &MockSummaryRepository{data: make(map[string]string)}
}

func (m *MockSummaryRepository) Store(ctx context.Context, sessionID string, summary string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.setCalls++
	if m.err != nil {
		return m.err
	}
	m.data[domain.SummaryKey(sessionID)] = summary
	return nil
}

func (m *MockSummaryRepository) Retrieve(ctx context.Context, sessionID string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return "", m.err
	}
	v, ok := m.data[domain.SummaryKey(sessionID)]
	if !ok {
		return "", domain.ErrSummaryNotFound
	}
	return v, nil
}

func (m *MockSummaryRepository) get(key string) (string, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.data[key]
	return v, ok
}

// MockTextExtractor returns fixed text or an error
type MockTextExtractor struct {
	text string
	err  error
}

func (m *MockTextExtractor) ExtractFile(path string) (*domain.ExtractedText, error) {
	if m.err != nil {
		return nil, m.err
	}
	return &domain.ExtractedText{Content: m.text, PageCount: 1}, nil
}

// MockLauncher records launches
type MockLauncher struct {
	mu       sync.Mutex
	launches map[string]string
	err      error
}

func NewMockLauncher() *MockLauncher {
	return &MockLauncher{launches: make(map[string]string)}
}

func (m *MockLauncher) Launch(ctx context.Context, sessionID string, pdfPath string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	m.launches[sessionID] = pdfPath
	return nil
}

// MockFetcher writes canned bytes for any DOI
type MockFetcher struct {
	body    []byte
	err     error
	lastDOI string
}

func (m *MockFetcher) FetchByDOI(ctx context.Context, doi string, dst io.Writer) error {
	m.lastDOI = doi
	if m.err != nil {
		return m.err
	}
	_, err := dst.Write(m.body)
	return err
}

// MockArchive records archived files
type MockArchive struct {
	archived map[string][]byte
	err      error
}

func (m *MockArchive) Archive(ctx context.Context, sessionID string, filename string, file io.Reader) error {
	if m.err != nil {
		return m.err
	}
	data, err := io.ReadAll(file)
	if err != nil {
		return err
	}
	if m.archived == nil {
		m.archived = make(map[string][]byte)
	}
	m.archived[sessionID+"/"+filename] = data
	return nil
}

var errConnRefused = errors.New("dial tcp 127.0.0.1:6379: connect: connection refused")
