package log

// Common field names for structured logging
const (
	FieldComponent = "component"
	FieldError     = "error"
	FieldYear      = "year"
	FieldMonth     = "month"
	FieldKind      = "kind"
	FieldFilename  = "filename"
	FieldItemName  = "item"
	FieldAmount    = "amount_yen"
	FieldToken     = "token"
	FieldRowRef    = "row_ref"
	FieldBackend   = "backend"
)

// Components defines standard component names
const (
	ComponentApp     = "app"
	ComponentPayslip = "payslip"
	ComponentLedger  = "ledger"
	ComponentSheets  = "sheets"
)
