// internals/features/school/deletions/registry/registry.go
package registry

import (
	"fmt"
	"sort"

	set "github.com/hashicorp/go-set/v2"
)

// Graph adalah deklarasi mentah dependency graph.
type Graph struct {
	Descriptors []Descriptor
	Edges       []Edge
	Roots       map[EntityType]Policy
}

// Registry adalah versi tervalidasi dari Graph. Dibangun sekali saat start,
// setelah itu hanya dibaca (aman dipakai bersamaan oleh banyak request).
type Registry struct {
	descriptors map[EntityType]Descriptor
	children    map[EntityType][]Edge
	policies    map[EntityType]Policy
	roots       map[EntityType]Policy
	cascade     map[EntityType][]Route
}

func NewRegistry(g Graph) (*Registry, error) {
	r := &Registry{
		descriptors: make(map[EntityType]Descriptor, len(g.Descriptors)),
		children:    make(map[EntityType][]Edge),
		policies:    make(map[EntityType]Policy),
		roots:       make(map[EntityType]Policy, len(g.Roots)),
		cascade:     make(map[EntityType][]Route),
	}

	for _, d := range g.Descriptors {
		if d.Type == "" {
			return nil, &ConfigurationError{Reason: "descriptor without entity type"}
		}
		if _, dup := r.descriptors[d.Type]; dup {
			return nil, &ConfigurationError{Entity: d.Type, Reason: "described twice"}
		}
		if d.Table == "" || d.PrimaryKey == "" || d.ReportKey == "" {
			return nil, &ConfigurationError{Entity: d.Type, Reason: "descriptor needs table, primary key and report key"}
		}
		r.descriptors[d.Type] = d
	}

	for _, e := range g.Edges {
		if _, ok := r.descriptors[e.Parent]; !ok {
			return nil, &ConfigurationError{Entity: e.Parent, Reason: "edge parent is not described"}
		}
		if _, ok := r.descriptors[e.Child]; !ok {
			return nil, &ConfigurationError{Entity: e.Child, Reason: "edge child is not described"}
		}
		if e.ForeignKey == "" {
			return nil, &ConfigurationError{Entity: e.Child, Reason: "edge from " + string(e.Parent) + " has no foreign key"}
		}
		if e.Policy != Cascade && e.Policy != Block {
			return nil, &ConfigurationError{Entity: e.Parent, Reason: fmt.Sprintf("unknown policy %q", e.Policy)}
		}
		if p, ok := r.policies[e.Parent]; ok && p != e.Policy {
			return nil, &ConfigurationError{Entity: e.Parent, Reason: "outgoing edges mix cascade and block policies"}
		}
		r.policies[e.Parent] = e.Policy
		r.children[e.Parent] = append(r.children[e.Parent], e)
	}

	for t, p := range g.Roots {
		if _, ok := r.descriptors[t]; !ok {
			return nil, &ConfigurationError{Entity: t, Reason: "root is not described"}
		}
		if p != Cascade && p != Block {
			return nil, &ConfigurationError{Entity: t, Reason: fmt.Sprintf("unknown policy %q", p)}
		}
		if ep, ok := r.policies[t]; ok && ep != p {
			return nil, &ConfigurationError{Entity: t, Reason: fmt.Sprintf("root policy %s conflicts with edge policy %s", p, ep)}
		}
		r.roots[t] = p
	}

	// child yang ikut di-cascade tidak boleh punya dependen BLOCK,
	// kalau tidak cascade akan gagal di tengah jalan
	for _, edges := range r.children {
		for _, e := range edges {
			if e.Policy == Cascade && r.policies[e.Child] == Block {
				return nil, &ConfigurationError{Entity: e.Child, Reason: "cascaded from " + string(e.Parent) + " but guarded by block edges"}
			}
		}
	}

	if err := r.checkAcyclic(); err != nil {
		return nil, err
	}

	for t, p := range r.roots {
		if p == Cascade {
			r.cascade[t] = r.buildCascadeRoutes(t)
		}
	}
	return r, nil
}

// MustNewRegistry untuk dipakai saat start: graph salah = bug, langsung panic.
func MustNewRegistry(g Graph) *Registry {
	r, err := NewRegistry(g)
	if err != nil {
		panic(err)
	}
	return r
}

func (r *Registry) checkAcyclic() error {
	done := set.New[EntityType](len(r.descriptors))
	onStack := set.New[EntityType](8)

	var visit func(t EntityType) error
	visit = func(t EntityType) error {
		if done.Contains(t) {
			return nil
		}
		if !onStack.Insert(t) {
			return &ConfigurationError{Entity: t, Reason: "dependency cycle detected"}
		}
		for _, e := range r.children[t] {
			if err := visit(e.Child); err != nil {
				return err
			}
		}
		onStack.Remove(t)
		done.Insert(t)
		return nil
	}

	for _, t := range r.sortedTypes() {
		if err := visit(t); err != nil {
			return err
		}
	}
	return nil
}

// buildCascadeRoutes: semua route CASCADE dari root, yang paling dalam duluan.
// Dalam kedalaman yang sama urutan deklarasi dipertahankan (stable sort).
func (r *Registry) buildCascadeRoutes(root EntityType) []Route {
	var routes []Route
	var walk func(prefix []Edge, t EntityType)
	walk = func(prefix []Edge, t EntityType) {
		for _, e := range r.children[t] {
			if e.Policy != Cascade {
				continue
			}
			path := make([]Edge, len(prefix)+1)
			copy(path, prefix)
			path[len(prefix)] = e
			routes = append(routes, Route{Path: path})
			walk(path, e.Child)
		}
	}
	walk(nil, root)

	sort.SliceStable(routes, func(i, j int) bool {
		return routes[i].Depth() > routes[j].Depth()
	})
	return routes
}

func (r *Registry) sortedTypes() []EntityType {
	out := make([]EntityType, 0, len(r.descriptors))
	for t := range r.descriptors {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

/* =========================== Lookups =========================== */

func (r *Registry) Describe(t EntityType) (Descriptor, error) {
	d, ok := r.descriptors[t]
	if !ok {
		return Descriptor{}, &ConfigurationError{Entity: t, Reason: "entity type is not registered"}
	}
	return d, nil
}

// RootPolicy mengembalikan policy penghapusan untuk root yang terdaftar.
func (r *Registry) RootPolicy(t EntityType) (Policy, error) {
	p, ok := r.roots[t]
	if !ok {
		return "", &ConfigurationError{Entity: t, Reason: "entity type is not a registered deletion root"}
	}
	return p, nil
}

// CascadeRoutes: edge-edge (beserta jalurnya) yang harus dihapus sebelum root,
// sudah terurut leaf-first.
func (r *Registry) CascadeRoutes(t EntityType) ([]Route, error) {
	p, err := r.RootPolicy(t)
	if err != nil {
		return nil, err
	}
	if p != Cascade {
		return nil, &ConfigurationError{Entity: t, Reason: "root is not registered with cascade policy"}
	}
	routes := r.cascade[t]
	out := make([]Route, len(routes))
	copy(out, routes)
	return out, nil
}

// BlockingEdges: edge langsung yang perlu dihitung sebelum hard delete.
func (r *Registry) BlockingEdges(t EntityType) ([]Edge, error) {
	p, err := r.RootPolicy(t)
	if err != nil {
		return nil, err
	}
	if p != Block {
		return nil, &ConfigurationError{Entity: t, Reason: "root is not registered with block policy"}
	}
	edges := r.children[t]
	out := make([]Edge, len(edges))
	copy(out, edges)
	return out, nil
}

// Roots: semua root terdaftar, urut nama.
func (r *Registry) Roots() []EntityType {
	out := make([]EntityType, 0, len(r.roots))
	for t := range r.roots {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
