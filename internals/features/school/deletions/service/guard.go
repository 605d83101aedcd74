// internals/features/school/deletions/service/guard.go
package service

import (
	"context"

	"schoolku_backend/internals/features/school/deletions/registry"
	"schoolku_backend/internals/features/school/deletions/repository"
)

type BlockCheck struct {
	Deletable bool
	Conflicts map[string]int64
}

// Guard hanya menghitung dependen langsung, tidak pernah menghapus.
type Guard struct {
	reg *registry.Registry
}

func NewGuard(reg *registry.Registry) *Guard {
	return &Guard{reg: reg}
}

func (g *Guard) CheckBlocking(ctx context.Context, tx repository.Tx, root registry.EntityType, id int64) (*BlockCheck, error) {
	edges, err := g.reg.BlockingEdges(root)
	if err != nil {
		return nil, err
	}

	check := &BlockCheck{Deletable: true, Conflicts: make(map[string]int64, len(edges))}
	for _, e := range edges {
		child, err := g.reg.Describe(e.Child)
		if err != nil {
			return nil, err
		}
		n, err := tx.Count(ctx, repository.Filter{Table: child.Table, Column: e.ForeignKey, Values: []int64{id}})
		if err != nil {
			return nil, err
		}
		check.Conflicts[child.ReportKey] += n
		if n > 0 {
			check.Deletable = false
		}
	}
	return check, nil
}
