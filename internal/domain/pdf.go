package domain

// PDFEngine names a text extraction backend
type PDFEngine string

const (
	PDFEngineFitz   PDFEngine = "fitz"
	PDFEngineNative PDFEngine = "native"
)

// ExtractedText is the concatenated text of a document plus page bookkeeping
type ExtractedText struct {
	Content     string `json:"content"`
	PageCount   int    `json:"page_count"`
	FailedPages int    `json:"failed_pages"`
}
