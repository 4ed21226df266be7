package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/go-sql-driver/mysql"

	"posbackend/internal/domain"
	"posbackend/internal/utils"
)

// Numbering scopes. Receipts restart daily, rental agreements yearly.
const (
	ReceiptPrefix   = "POS"
	AgreementPrefix = "RA"
)

// ReceiptScopeKey is the counter key for receipt numbers issued on day t.
func ReceiptScopeKey(t time.Time) string {
	return "receipt:" + utils.DayScope(t)
}

// AgreementScopeKey is the counter key for agreement numbers issued in the year of t.
func AgreementScopeKey(t time.Time) string {
	return "agreement:" + utils.YearScope(t)
}

// FormatReceiptNumber renders e.g. POS-20250214-0007.
func FormatReceiptNumber(t time.Time, seq int64) string {
	return fmt.Sprintf("%s-%s-%04d", ReceiptPrefix, utils.DayScope(t), seq)
}

// FormatAgreementNumber renders e.g. RA-2025-0012.
func FormatAgreementNumber(t time.Time, seq int64) string {
	return fmt.Sprintf("%s-%s-%04d", AgreementPrefix, utils.YearScope(t), seq)
}

// SequenceRepository hands out document numbers from per-scope counters.
// Increments run inside the caller's transaction so a rolled-back checkout
// never commits the bump; a number may be burned, never reused.
type SequenceRepository struct{}

// NextInScope reads and increments the scope counter as one atomic step
// relative to all concurrent callers. The row lock serializes checkouts in
// the same scope; an absent row means first of scope. A duplicate-key race
// on the very first insert of a scope gets one retry through the lock path.
func (SequenceRepository) NextInScope(ctx context.Context, tx *sql.Tx, scopeKey string) (int64, error) {
	for attempt := 0; attempt < 2; attempt++ {
		var current int64
		err := tx.QueryRowContext(ctx, `
			SELECT value FROM sequence_counters WHERE scope_key = ? FOR UPDATE
		`, scopeKey).Scan(&current)

		switch {
		case err == nil:
			next := current + 1
			if _, err := tx.ExecContext(ctx, `
				UPDATE sequence_counters SET value = ? WHERE scope_key = ?
			`, next, scopeKey); err != nil {
				return 0, domain.StorageError{Op: "sequence increment", Err: err}
			}
			return next, nil

		case errors.Is(err, sql.ErrNoRows):
			// first number of a fresh scope
			if _, err := tx.ExecContext(ctx, `
				INSERT INTO sequence_counters (scope_key, value) VALUES (?, 1)
			`, scopeKey); err != nil {
				if isDuplicateKey(err) {
					continue
				}
				return 0, domain.StorageError{Op: "sequence insert", Err: err}
			}
			return 1, nil

		default:
			return 0, domain.StorageError{Op: "sequence read", Err: err}
		}
	}

	return 0, domain.ConflictError{Resource: "sequence", Msg: "could not obtain document number for scope " + scopeKey}
}

func isDuplicateKey(err error) bool {
	var me *mysql.MySQLError
	return errors.As(err, &me) && me.Number == 1062
}
