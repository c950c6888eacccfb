package payslip

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"kyuyo/internal/core"
	"kyuyo/internal/dictionary"
)

const testItemsYAML = `deduction:
  - name: 健康保険
    category: 保険
    subcategory: 健康保険
  - name: 厚生年金
    category: 保険
    subcategory: 年金
  - name: 控除合計
    category: その他
    subcategory: 集計
`

type fakeDocument struct {
	pages  []string
	closed bool
}

func (d *fakeDocument) PageTexts() ([]string, error) { return d.pages, nil }
func (d *fakeDocument) Close() error                 { d.closed = true; return nil }

func writeItemsFile(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "items.yml")
	if err := os.WriteFile(path, []byte(testItemsYAML), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func newTestReader(t *testing.T, doc *fakeDocument) (*Reader, *string) {
	t.Helper()
	var opened string
	r := &Reader{
		Year:       2024,
		Month:      11,
		Kind:       core.KindNormal,
		EmployeeNo: "12345",
		ItemsFile:  writeItemsFile(t),
		SalaryDir:  "salaryData",
		Open: func(path, password string) (Document, error) {
			opened = path
			return doc, nil
		},
	}
	return r, &opened
}

func TestReadDeductions(t *testing.T) {
	doc := &fakeDocument{pages: []string{
		"健康保険 10,000 厚生年金 20,000",
		"控除合計 30,000",
	}}
	r, opened := newTestReader(t, doc)

	items, err := r.ReadDeductions()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(items) != 3 {
		t.Fatalf("got %d records, want 3", len(items))
	}
	if items[2].Name != "控除合計" || items[2].Amount != 30000 {
		t.Fatalf("the deduction sum must come last: %+v", items[2])
	}
	if !doc.closed {
		t.Fatal("document must be closed after a successful read")
	}
	if want := filepath.Join("salaryData", "202411_kyuyo_12345.pdf"); *opened != want {
		t.Fatalf("opened %q, want %q", *opened, want)
	}
}

func TestReadDeductionsTotalMissing(t *testing.T) {
	doc := &fakeDocument{pages: []string{"健康保険 10,000"}}
	r, _ := newTestReader(t, doc)

	_, err := r.ReadDeductions()
	if !errors.Is(err, ErrTotalMissing) {
		t.Fatalf("expected ErrTotalMissing, got %v", err)
	}
	if !doc.closed {
		t.Fatal("document must be closed on failure too")
	}
}

func TestReadDeductionsReconciliationFailure(t *testing.T) {
	doc := &fakeDocument{pages: []string{"健康保険 10,000 控除合計 99,999"}}
	r, _ := newTestReader(t, doc)

	_, err := r.ReadDeductions()
	var re *ReconciliationError
	if !errors.As(err, &re) {
		t.Fatalf("expected *ReconciliationError, got %v", err)
	}
	if re.Sum != 10000 || re.Stated != 99999 {
		t.Fatalf("payload = %+v", re)
	}
}

func TestReadDeductionsDictionaryMissing(t *testing.T) {
	r := &Reader{
		Year: 2024, Month: 11, Kind: core.KindNormal, EmployeeNo: "12345",
		ItemsFile: filepath.Join(t.TempDir(), "nope.yml"),
		Open: func(path, password string) (Document, error) {
			t.Fatal("document must not be opened when the dictionary fails to load")
			return nil, nil
		},
	}
	_, err := r.ReadDeductions()
	var le *dictionary.LoadError
	if !errors.As(err, &le) {
		t.Fatalf("expected *dictionary.LoadError, got %v", err)
	}
}

func TestReadDeductionsMissingSection(t *testing.T) {
	doc := &fakeDocument{}
	r, _ := newTestReader(t, doc)
	r.SectionKey = "income"

	_, err := r.ReadDeductions()
	var le *dictionary.LoadError
	if !errors.As(err, &le) {
		t.Fatalf("expected *dictionary.LoadError for a missing section, got %v", err)
	}
}

func TestReadDeductionsDocumentNotFound(t *testing.T) {
	r := &Reader{
		Year: 2024, Month: 11, Kind: core.KindNormal, EmployeeNo: "12345",
		ItemsFile: writeItemsFile(t),
		SalaryDir: t.TempDir(), // no PDFs in here
	}
	_, err := r.ReadDeductions()
	if !errors.Is(err, ErrDocumentNotFound) {
		t.Fatalf("expected ErrDocumentNotFound, got %v", err)
	}
}

func TestReadDeductionsEmptyDocument(t *testing.T) {
	doc := &fakeDocument{pages: nil}
	r, _ := newTestReader(t, doc)

	_, err := r.ReadDeductions()
	// No tokens, so no total record either; the reader refuses quietly
	// empty payslips rather than validating nothing.
	if !errors.Is(err, ErrTotalMissing) {
		t.Fatalf("expected ErrTotalMissing on an empty document, got %v", err)
	}
}
