// internals/features/school/deletions/service/report.go
package service

import (
	"fmt"

	"schoolku_backend/internals/features/school/deletions/registry"
)

type Kind string

const (
	KindCascade Kind = "cascade_delete"
	KindHard    Kind = "hard_delete"
)

type Report struct {
	Entity  registry.EntityType `json:"entity"`
	ID      int64               `json:"id"`
	Label   string              `json:"label"`
	Kind    Kind                `json:"tipo"`
	Details map[string]int64    `json:"detalhes"`
	Message string              `json:"message"`
}

type Preview struct {
	Entity    registry.EntityType `json:"entity"`
	ID        int64               `json:"id"`
	Label     string              `json:"label"`
	Kind      Kind                `json:"tipo"`
	Deletable bool                `json:"deletable"`
	Details   map[string]int64    `json:"detalhes"`
	Message   string              `json:"message"`
}

// BuildReport tanpa I/O. Label harus diambil sebelum penghapusan.
// Step root tidak masuk detalhes.
func BuildReport(desc registry.Descriptor, id int64, label string, kind Kind, counts []StepCount) *Report {
	details := make(map[string]int64, len(counts))
	var total int64
	for _, c := range counts {
		if c.Root {
			continue
		}
		details[c.ReportKey] += c.Count
		total += c.Count
	}

	msg := fmt.Sprintf("%s %q eliminado(a) com sucesso", desc.DisplayName, label)
	if kind == KindCascade {
		msg = fmt.Sprintf("%s %q eliminado(a) juntamente com %d registo(s) dependente(s)", desc.DisplayName, label, total)
	}

	return &Report{
		Entity:  desc.Type,
		ID:      id,
		Label:   label,
		Kind:    kind,
		Details: details,
		Message: msg,
	}
}

func BuildPreview(desc registry.Descriptor, id int64, label string, kind Kind, deletable bool, details map[string]int64) *Preview {
	var total int64
	for _, n := range details {
		total += n
	}

	var msg string
	switch {
	case !deletable:
		msg = fmt.Sprintf("%s %q não pode ser eliminado(a): existem %d registo(s) dependente(s)", desc.DisplayName, label, total)
	case kind == KindCascade:
		msg = fmt.Sprintf("%s %q será eliminado(a) juntamente com %d registo(s) dependente(s)", desc.DisplayName, label, total)
	default:
		msg = fmt.Sprintf("%s %q pode ser eliminado(a)", desc.DisplayName, label)
	}

	return &Preview{
		Entity:    desc.Type,
		ID:        id,
		Label:     label,
		Kind:      kind,
		Deletable: deletable,
		Details:   details,
		Message:   msg,
	}
}
