package payslip

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/ledongthuc/pdf"
)

// Document yields the ordered page texts of one source document. It is
// read to completion once and closed on every exit path.
type Document interface {
	PageTexts() ([]string, error)
	Close() error
}

// OpenFunc opens the document at path, optionally protected by a password.
// The reader takes one so tests can substitute in-memory fixtures for real
// PDF files.
type OpenFunc func(path, password string) (Document, error)

// OpenPDF opens a payslip PDF. A missing file is reported as
// ErrDocumentNotFound so the caller can tell the user to check the
// year/month rather than show a raw I/O error.
func OpenPDF(path, password string) (Document, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrDocumentNotFound, filepath.Base(path))
		}
		return nil, err
	}
	st, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, err
	}
	r, err := pdf.NewReaderEncrypted(f, st.Size(), func() string { return password })
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("open %s: %w", filepath.Base(path), err)
	}
	return &pdfDocument{f: f, r: r}, nil
}

type pdfDocument struct {
	f *os.File
	r *pdf.Reader
}

func (d *pdfDocument) PageTexts() ([]string, error) {
	var pages []string
	for i := 1; i <= d.r.NumPage(); i++ {
		p := d.r.Page(i)
		if p.V.IsNull() {
			continue
		}
		text, err := p.GetPlainText(nil)
		if err != nil {
			return nil, fmt.Errorf("page %d: %w", i, err)
		}
		pages = append(pages, text)
	}
	return pages, nil
}

func (d *pdfDocument) Close() error { return d.f.Close() }
