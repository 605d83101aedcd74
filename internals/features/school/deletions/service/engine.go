// internals/features/school/deletions/service/engine.go
package service

import (
	"context"
	"errors"
	"log"
	"time"

	"schoolku_backend/internals/features/school/deletions/registry"
	"schoolku_backend/internals/features/school/deletions/repository"
)

var errPreviewRollback = errors.New("preview rollback")

type Options struct {
	// Budget: batas waktu satu penghapusan (plan + eksekusi + commit).
	Budget time.Duration
}

// Engine adalah satu-satunya pintu penghapusan untuk layer CRUD.
// Tidak ada lock in-process; konsistensi antar request diserahkan ke
// isolasi transaksi database (minimal read committed + row lock).
type Engine struct {
	reg      *registry.Registry
	store    repository.Store
	planner  *Planner
	guard    *Guard
	executor *Executor
}

func NewEngine(reg *registry.Registry, store repository.Store, opt Options) *Engine {
	return &Engine{
		reg:      reg,
		store:    store,
		planner:  NewPlanner(reg),
		guard:    NewGuard(reg),
		executor: NewExecutor(store, opt.Budget),
	}
}

func (e *Engine) Registry() *registry.Registry { return e.reg }

// DeleteEntity menghapus root sesuai policy-nya.
// Error: *NotFoundError, *DependencyConflictError, *TransactionError,
// atau *registry.ConfigurationError.
func (e *Engine) DeleteEntity(ctx context.Context, root registry.EntityType, id int64) (*Report, error) {
	start := time.Now()

	policy, err := e.reg.RootPolicy(root)
	if err != nil {
		log.Printf("[CASCADE][CONFIG] %v", err)
		return nil, err
	}
	desc, err := e.reg.Describe(root)
	if err != nil {
		log.Printf("[CASCADE][CONFIG] %v", err)
		return nil, err
	}

	var rep *Report
	if policy == registry.Block {
		rep, err = e.hardDelete(ctx, desc, id)
	} else {
		rep, err = e.cascadeDelete(ctx, desc, id)
	}
	logOutcome(root, id, policy, rep, err, time.Since(start))
	return rep, err
}

func (e *Engine) cascadeDelete(ctx context.Context, desc registry.Descriptor, id int64) (*Report, error) {
	plan, out, err := e.executor.Execute(ctx, desc.Type, func(ctx context.Context, tx repository.Tx) (*Plan, error) {
		return e.planner.Plan(ctx, tx, desc.Type, id, true)
	})
	if err != nil {
		return nil, err
	}
	return BuildReport(desc, id, plan.Label, KindCascade, out.Counts), nil
}

func (e *Engine) hardDelete(ctx context.Context, desc registry.Descriptor, id int64) (*Report, error) {
	ctx, cancel := e.executor.withBudget(ctx)
	defer cancel()

	var (
		label   string
		deleted int64
	)
	err := e.store.Transaction(ctx, func(tx repository.Tx) error {
		l, err := tx.FindByID(ctx, desc.Table, desc.PrimaryKey, desc.LabelColumn, id, true)
		if err != nil {
			if repository.IsNotFound(err) {
				return &NotFoundError{Entity: desc.Type, ID: id}
			}
			return newTransactionError(desc.Type, 0, 1, err)
		}

		check, err := e.guard.CheckBlocking(ctx, tx, desc.Type, id)
		if err != nil {
			return checkError(desc.Type, err)
		}
		if !check.Deletable {
			return &DependencyConflictError{Entity: desc.Type, ID: id, Conflicts: check.Conflicts}
		}

		n, err := tx.DeleteMany(ctx, repository.Filter{Table: desc.Table, Column: desc.PrimaryKey, Values: []int64{id}})
		if err != nil {
			return newTransactionError(desc.Type, 1, 1, err)
		}
		label, deleted = l, n
		return nil
	})
	if err != nil {
		return nil, settle(desc.Type, &Plan{Root: desc.Type, Steps: make([]Step, 1)}, err)
	}

	counts := []StepCount{{Entity: desc.Type, ReportKey: desc.ReportKey, Count: deleted, Root: true}}
	return BuildReport(desc, id, label, KindHard, counts), nil
}

// PreviewEntity menghitung apa yang akan terhapus tanpa mengubah data:
// transaksi selalu di-rollback.
func (e *Engine) PreviewEntity(ctx context.Context, root registry.EntityType, id int64) (*Preview, error) {
	policy, err := e.reg.RootPolicy(root)
	if err != nil {
		return nil, err
	}
	desc, err := e.reg.Describe(root)
	if err != nil {
		return nil, err
	}

	ctx, cancel := e.executor.withBudget(ctx)
	defer cancel()

	var preview *Preview
	err = e.store.Transaction(ctx, func(tx repository.Tx) error {
		if policy == registry.Block {
			label, err := tx.FindByID(ctx, desc.Table, desc.PrimaryKey, desc.LabelColumn, id, false)
			if err != nil {
				if repository.IsNotFound(err) {
					return &NotFoundError{Entity: root, ID: id}
				}
				return newTransactionError(root, 0, 1, err)
			}
			check, err := e.guard.CheckBlocking(ctx, tx, root, id)
			if err != nil {
				return checkError(root, err)
			}
			preview = BuildPreview(desc, id, label, KindHard, check.Deletable, check.Conflicts)
			return errPreviewRollback
		}

		plan, err := e.planner.Plan(ctx, tx, root, id, false)
		if err != nil {
			return err
		}
		details := make(map[string]int64, len(plan.Steps))
		for i, st := range plan.Steps {
			if st.Root {
				continue
			}
			n, err := tx.Count(ctx, st.Filter)
			if err != nil {
				return newTransactionError(st.Entity, i+1, len(plan.Steps), err)
			}
			details[st.ReportKey] += n
		}
		preview = BuildPreview(desc, id, plan.Label, KindCascade, true, details)
		return errPreviewRollback
	})
	if err != nil && !errors.Is(err, errPreviewRollback) {
		return nil, settle(root, nil, err)
	}
	return preview, nil
}

// checkError: ConfigurationError diteruskan apa adanya, error storage saat
// menghitung dependen jadi TransactionError step 0.
func checkError(root registry.EntityType, err error) error {
	var cfg *registry.ConfigurationError
	if errors.As(err, &cfg) {
		return err
	}
	return newTransactionError(root, 0, 1, err)
}

func logOutcome(root registry.EntityType, id int64, policy registry.Policy, rep *Report, err error, dur time.Duration) {
	var (
		nf *NotFoundError
		dc *DependencyConflictError
		te *TransactionError
	)
	switch {
	case err == nil && policy == registry.Block:
		log.Printf("[GUARD] %s id=%d state=DELETED dur=%s", root, id, dur)
	case err == nil:
		log.Printf("[CASCADE] %s id=%d state=COMMITTED detalhes=%v dur=%s", root, id, rep.Details, dur)
	case errors.As(err, &nf):
		log.Printf("[CASCADE] %s id=%d state=NOT_FOUND dur=%s", root, id, dur)
	case errors.As(err, &dc):
		log.Printf("[GUARD] %s id=%d state=CONFLICT conflicts=%v dur=%s", root, id, dc.Conflicts, dur)
	case errors.As(err, &te):
		// error asli hanya ke log, tidak ke client
		log.Printf("[CASCADE][ERROR] %s id=%d state=ROLLED_BACK step=%d/%d entity=%s reason=%s cause=%v dur=%s",
			root, id, te.Step, te.Total, te.Entity, te.Reason, te.Err, dur)
	default:
		log.Printf("[CASCADE][ERROR] %s id=%d err=%v dur=%s", root, id, err, dur)
	}
}
