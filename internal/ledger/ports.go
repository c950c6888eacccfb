// Package ledger defines the outbound boundary the finished salary period
// is handed to. Implementations record deduction items in a personal
// ledger; they read the period's records and payday only and never mutate
// the item list.
package ledger

import (
	"context"

	"kyuyo/internal/core"
)

// RecordWriter appends one deduction record dated at the confirmed payday.
type RecordWriter interface {
	Append(ctx context.Context, payday string, it core.Item) (rowRef string, err error)
}
