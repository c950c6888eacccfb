package payslip

import (
	"fmt"
	"path/filepath"

	"kyuyo/internal/core"
	"kyuyo/internal/dictionary"
	"kyuyo/internal/log"
)

// DictionaryKey is the dictionary section listing the deduction items.
const DictionaryKey = "deduction"

// Reader runs the extraction pipeline for one period: derive the source
// filename, load the item dictionary, tokenize the PDF text, extract the
// labeled amounts and reconcile them against the stated total. It
// implements core.DeductionSource.
type Reader struct {
	Year       int
	Month      int
	Kind       core.Kind
	EmployeeNo string
	Password   string

	// ItemsFile and SalaryDir locate the two external resources.
	ItemsFile string
	SalaryDir string

	// SectionKey and SumLabel default to DictionaryKey and
	// DeductionSumLabel when empty.
	SectionKey string
	SumLabel   string

	// Open defaults to OpenPDF; tests inject fixture documents.
	Open OpenFunc

	Logger *log.Logger
}

// ReadDeductions returns the itemized deduction records in extraction order
// with the validated deduction-sum record appended last.
func (r *Reader) ReadDeductions() ([]core.Item, error) {
	sectionKey := r.SectionKey
	if sectionKey == "" {
		sectionKey = DictionaryKey
	}
	sumLabel := r.SumLabel
	if sumLabel == "" {
		sumLabel = DeductionSumLabel
	}
	open := r.Open
	if open == nil {
		open = OpenPDF
	}
	logger := r.Logger
	if logger == nil {
		logger = log.Discard()
	}

	filename, err := Filename(r.Year, r.Month, r.Kind, r.EmployeeNo)
	if err != nil {
		return nil, err
	}
	logger.Debug("reading payslip", log.FieldFilename, filename,
		log.FieldYear, r.Year, log.FieldMonth, r.Month, log.FieldKind, r.Kind.Label())

	dict, err := dictionary.Load(r.ItemsFile)
	if err != nil {
		return nil, err
	}
	defs, ok := dict.Section(sectionKey)
	if !ok {
		return nil, &dictionary.LoadError{
			Path: r.ItemsFile,
			Err:  fmt.Errorf("missing section %q", sectionKey),
		}
	}

	doc, err := open(filepath.Join(r.SalaryDir, filename), r.Password)
	if err != nil {
		return nil, err
	}
	defer doc.Close()

	pages, err := doc.PageTexts()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}

	items, total := NewExtractor(defs, sumLabel, logger).Extract(Tokenize(pages))
	if total == nil {
		return nil, fmt.Errorf("%s: %w", filename, ErrTotalMissing)
	}
	if err := Reconcile(items, *total); err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	logger.Debug("deduction sum reconciled", log.FieldAmount, total.Amount)

	return append(items, *total), nil
}
