// internals/features/school/deletions/service/executor.go
package service

import (
	"context"
	"errors"
	"time"

	"schoolku_backend/internals/features/school/deletions/registry"
	"schoolku_backend/internals/features/school/deletions/repository"
)

var errRootVanished = errors.New("root row was not deleted")

type StepCount struct {
	Entity    registry.EntityType
	ReportKey string
	Count     int64
	Root      bool
}

type Outcome struct {
	Counts      []StepCount
	RootDeleted bool
}

// Executor tidak menyimpan state antar pemanggilan.
type Executor struct {
	store  repository.Store
	budget time.Duration
}

// NewExecutor: budget <= 0 berarti tanpa batas waktu tambahan.
func NewExecutor(store repository.Store, budget time.Duration) *Executor {
	return &Executor{store: store, budget: budget}
}

// PlanFunc membangun plan di dalam transaksi yang akan mengeksekusinya.
type PlanFunc func(ctx context.Context, tx repository.Tx) (*Plan, error)

// Execute membuka satu transaksi ber-budget, membangun plan lewat build lalu
// menjalankan semua step-nya. Step gagal → rollback total.
func (e *Executor) Execute(ctx context.Context, root registry.EntityType, build PlanFunc) (*Plan, *Outcome, error) {
	ctx, cancel := e.withBudget(ctx)
	defer cancel()

	var (
		plan *Plan
		out  *Outcome
	)
	err := e.store.Transaction(ctx, func(tx repository.Tx) error {
		p, err := build(ctx, tx)
		if err != nil {
			return err
		}
		plan = p

		o, err := e.run(ctx, tx, p)
		if err != nil {
			return err
		}
		out = o
		return nil
	})
	if err != nil {
		return nil, nil, settle(root, plan, err)
	}
	return plan, out, nil
}

func (e *Executor) run(ctx context.Context, tx repository.Tx, plan *Plan) (*Outcome, error) {
	total := len(plan.Steps)
	out := &Outcome{Counts: make([]StepCount, 0, total)}

	for i, st := range plan.Steps {
		if err := ctx.Err(); err != nil {
			return nil, newTransactionError(st.Entity, i+1, total, err)
		}
		n, err := tx.DeleteMany(ctx, st.Filter)
		if err != nil {
			return nil, newTransactionError(st.Entity, i+1, total, err)
		}
		if st.Root {
			if n == 0 {
				return nil, newTransactionError(st.Entity, i+1, total, errRootVanished)
			}
			out.RootDeleted = true
		}
		out.Counts = append(out.Counts, StepCount{Entity: st.Entity, ReportKey: st.ReportKey, Count: n, Root: st.Root})
	}
	return out, nil
}

func (e *Executor) withBudget(ctx context.Context) (context.Context, context.CancelFunc) {
	if e.budget <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, e.budget)
}

// settle: error bertipe diteruskan apa adanya; selain itu berarti transaksi
// gagal dibuka (plan == nil) atau gagal commit.
func settle(root registry.EntityType, plan *Plan, err error) error {
	var (
		te  *TransactionError
		nf  *NotFoundError
		dc  *DependencyConflictError
		cfg *registry.ConfigurationError
	)
	if errors.As(err, &te) || errors.As(err, &nf) || errors.As(err, &dc) || errors.As(err, &cfg) {
		return err
	}
	if plan == nil {
		return newTransactionError(root, 0, 0, err)
	}
	total := len(plan.Steps)
	return newTransactionError(root, total+1, total, err)
}
