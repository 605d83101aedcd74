// internals/features/school/deletions/service/errors.go
package service

import (
	"fmt"

	"schoolku_backend/internals/features/school/deletions/registry"
	"schoolku_backend/internals/features/school/deletions/repository"
)

type NotFoundError struct {
	Entity registry.EntityType
	ID     int64
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %d not found", e.Entity, e.ID)
}

// DependencyConflictError: root BLOCK masih punya dependen. Conflicts berisi
// jumlah per report key, termasuk yang nol.
type DependencyConflictError struct {
	Entity    registry.EntityType
	ID        int64
	Conflicts map[string]int64
}

func (e *DependencyConflictError) Error() string {
	return fmt.Sprintf("%s %d still has dependents: %v", e.Entity, e.ID, e.Conflicts)
}

// TransactionError: kegagalan selama cascade; seluruh transaksi sudah di-rollback.
// Step 0 = gagal saat planning, Step = Total+1 = gagal saat commit.
type TransactionError struct {
	Entity registry.EntityType
	Step   int
	Total  int
	Reason repository.Reason
	Err    error
}

func (e *TransactionError) Error() string {
	switch {
	case e.Step == 0:
		return fmt.Sprintf("cascade planning failed at %s: %s", e.Entity, e.Reason)
	case e.Step > e.Total:
		return fmt.Sprintf("cascade commit failed for %s: %s", e.Entity, e.Reason)
	default:
		return fmt.Sprintf("cascade step %d/%d (%s) failed: %s", e.Step, e.Total, e.Entity, e.Reason)
	}
}

// Unwrap membuka error storage asli untuk log; jangan dikirim ke client.
func (e *TransactionError) Unwrap() error { return e.Err }

func newTransactionError(entity registry.EntityType, step, total int, err error) *TransactionError {
	return &TransactionError{
		Entity: entity,
		Step:   step,
		Total:  total,
		Reason: repository.Classify(err),
		Err:    err,
	}
}
