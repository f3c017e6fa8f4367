package service

import (
	"fmt"
	"os"

	"github.com/ledongthuc/pdf"
)

// nativeDocument reads pages with the pure-Go parser; no cgo required
type nativeDocument struct {
	file   *os.File
	reader *pdf.Reader
	fonts  map[string]*pdf.Font
}

func openNativeDocument(path string) (pageDocument, error) {
	f, r, err := pdf.Open(path)
	if err != nil {
		// pdf.Open hands back the file even when the parse fails
		if f != nil {
			_ = f.Close()
		}
		return nil, fmt.Errorf("pdf: %w", err)
	}
	return &nativeDocument{
		file:   f,
		reader: r,
		fonts:  make(map[string]*pdf.Font),
	}, nil
}

func (d *nativeDocument) NumPage() int {
	return d.reader.NumPage()
}

func (d *nativeDocument) PageText(index int) (string, error) {
	p := d.reader.Page(index + 1)
	if p.V.IsNull() {
		return "", nil
	}

	for _, name := range p.Fonts() {
		if _, ok := d.fonts[name]; !ok {
			font := p.Font(name)
			d.fonts[name] = &font
		}
	}

	return p.GetPlainText(d.fonts)
}

func (d *nativeDocument) Close() error {
	return d.file.Close()
}
