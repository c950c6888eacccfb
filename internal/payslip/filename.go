package payslip

import (
	"fmt"
	"strings"

	"kyuyo/internal/core"
)

const pdfExtension = ".pdf"

// Filename derives the source PDF name for a period: plain year, zero-padded
// month, the kind's infix, the employee number verbatim, then ".pdf"
// (e.g. 202411_kyuyo_12345.pdf).
func Filename(year, month int, kind core.Kind, employeeNo string) (string, error) {
	if strings.TrimSpace(employeeNo) == "" {
		return "", fmt.Errorf("%w: employee number is empty", ErrFilename)
	}
	if !kind.Valid() {
		return "", fmt.Errorf("%w: %v", ErrFilename, core.ErrUnknownKind)
	}
	return fmt.Sprintf("%d%02d%s%s%s", year, month, kind.Infix(), employeeNo, pdfExtension), nil
}
