// internals/features/school/deletions/service/planner.go
package service

import (
	"context"

	"schoolku_backend/internals/features/school/deletions/registry"
	"schoolku_backend/internals/features/school/deletions/repository"
)

// Step: satu DELETE yang filternya sudah final.
type Step struct {
	Entity    registry.EntityType
	ReportKey string
	Filter    repository.Filter
	Root      bool
}

// Plan: urutan step leaf-first, step terakhir selalu root.
type Plan struct {
	Root   registry.EntityType
	RootID int64
	Label  string
	Steps  []Step
}

type Planner struct {
	reg *registry.Registry
}

func NewPlanner(reg *registry.Registry) *Planner {
	return &Planner{reg: reg}
}

// Plan memastikan root ada lalu me-resolve semua id perantara (turma milik
// classe, aluno milik user, ...) sebelum satu baris pun dihapus.
// lock=true mengunci baris root sampai transaksi selesai.
func (p *Planner) Plan(ctx context.Context, tx repository.Tx, root registry.EntityType, id int64, lock bool) (*Plan, error) {
	desc, err := p.reg.Describe(root)
	if err != nil {
		return nil, err
	}
	routes, err := p.reg.CascadeRoutes(root)
	if err != nil {
		return nil, err
	}

	label, err := tx.FindByID(ctx, desc.Table, desc.PrimaryKey, desc.LabelColumn, id, lock)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, &NotFoundError{Entity: root, ID: id}
		}
		return nil, newTransactionError(root, 0, len(routes)+1, err)
	}

	r := &resolver{reg: p.reg, tx: tx, rootID: id, total: len(routes) + 1, ids: map[string][]int64{}}
	plan := &Plan{Root: root, RootID: id, Label: label, Steps: make([]Step, 0, len(routes)+1)}

	for _, route := range routes {
		parentIDs, err := r.resolve(ctx, route.Parent())
		if err != nil {
			return nil, err
		}
		edge := route.Target()
		child, err := p.reg.Describe(edge.Child)
		if err != nil {
			return nil, err
		}
		plan.Steps = append(plan.Steps, Step{
			Entity:    edge.Child,
			ReportKey: child.ReportKey,
			Filter:    repository.Filter{Table: child.Table, Column: edge.ForeignKey, Values: parentIDs},
		})
	}

	plan.Steps = append(plan.Steps, Step{
		Entity:    root,
		ReportKey: desc.ReportKey,
		Filter:    repository.Filter{Table: desc.Table, Column: desc.PrimaryKey, Values: []int64{id}},
		Root:      true,
	})
	return plan, nil
}

// resolver menyimpan id per route supaya tiap level cukup di-query sekali.
type resolver struct {
	reg    *registry.Registry
	tx     repository.Tx
	rootID int64
	total  int
	ids    map[string][]int64
}

func (r *resolver) resolve(ctx context.Context, route registry.Route) ([]int64, error) {
	if route.Depth() == 0 {
		return []int64{r.rootID}, nil
	}
	key := route.Key()
	if ids, ok := r.ids[key]; ok {
		return ids, nil
	}

	parentIDs, err := r.resolve(ctx, route.Parent())
	if err != nil {
		return nil, err
	}
	edge := route.Target()
	child, err := r.reg.Describe(edge.Child)
	if err != nil {
		return nil, err
	}
	ids, err := r.tx.PluckIDs(ctx, repository.Filter{Table: child.Table, Column: edge.ForeignKey, Values: parentIDs}, child.PrimaryKey)
	if err != nil {
		return nil, newTransactionError(edge.Child, 0, r.total, err)
	}
	r.ids[key] = ids
	return ids, nil
}
