package service

import (
	"fmt"

	"github.com/gen2brain/go-fitz"
)

// fitzDocument reads pages through MuPDF
type fitzDocument struct {
	doc *fitz.Document
}

func openFitzDocument(path string) (pageDocument, error) {
	doc, err := fitz.New(path)
	if err != nil {
		return nil, fmt.Errorf("fitz: %w", err)
	}
	return &fitzDocument{doc: doc}, nil
}

func (d *fitzDocument) NumPage() int {
	return d.doc.NumPage()
}

func (d *fitzDocument) PageText(index int) (string, error) {
	return d.doc.Text(index)
}

func (d *fitzDocument) Close() error {
	return d.doc.Close()
}
