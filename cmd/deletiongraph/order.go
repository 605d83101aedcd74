package main

import (
	"github.com/spf13/cobra"

	"schoolku_backend/internals/features/school/deletions/registry"
)

var orderCmd = &cobra.Command{
	Use:   "order <entity>",
	Short: "Print the leaf-first deletion order of a root entity",
	Args:  cobra.ExactArgs(1),
	RunE:  runOrder,
}

var rootsCmd = &cobra.Command{
	Use:   "roots",
	Short: "List registered deletion roots with their policy",
	Args:  cobra.NoArgs,
	RunE:  runRoots,
}

func init() {
	rootCmd.AddCommand(orderCmd)
	rootCmd.AddCommand(rootsCmd)
}

type orderStep struct {
	Step       int    `yaml:"step"`
	Entity     string `yaml:"entity"`
	Table      string `yaml:"table"`
	ForeignKey string `yaml:"foreign_key,omitempty"`
	Depth      int    `yaml:"depth"`
	Via        string `yaml:"via,omitempty"`
}

type blockingEdge struct {
	Entity     string `yaml:"entity"`
	Table      string `yaml:"table"`
	ForeignKey string `yaml:"foreign_key"`
	ReportKey  string `yaml:"report_key"`
}

type orderDoc struct {
	Entity   string         `yaml:"entity"`
	Policy   string         `yaml:"policy"`
	Steps    []orderStep    `yaml:"steps,omitempty"`
	Blocking []blockingEdge `yaml:"blocking,omitempty"`
}

func buildOrder(reg *registry.Registry, root registry.EntityType) (*orderDoc, error) {
	policy, err := reg.RootPolicy(root)
	if err != nil {
		return nil, err
	}
	rootDesc, err := reg.Describe(root)
	if err != nil {
		return nil, err
	}
	doc := &orderDoc{Entity: string(root), Policy: string(policy)}

	if policy == registry.Block {
		edges, err := reg.BlockingEdges(root)
		if err != nil {
			return nil, err
		}
		for _, e := range edges {
			d, err := reg.Describe(e.Child)
			if err != nil {
				return nil, err
			}
			doc.Blocking = append(doc.Blocking, blockingEdge{
				Entity:     string(e.Child),
				Table:      d.Table,
				ForeignKey: e.ForeignKey,
				ReportKey:  d.ReportKey,
			})
		}
		return doc, nil
	}

	routes, err := reg.CascadeRoutes(root)
	if err != nil {
		return nil, err
	}
	for i, r := range routes {
		target := r.Target()
		d, err := reg.Describe(target.Child)
		if err != nil {
			return nil, err
		}
		doc.Steps = append(doc.Steps, orderStep{
			Step:       i + 1,
			Entity:     string(target.Child),
			Table:      d.Table,
			ForeignKey: target.ForeignKey,
			Depth:      r.Depth(),
			Via:        r.Key(),
		})
	}
	// root selalu terakhir
	doc.Steps = append(doc.Steps, orderStep{
		Step:   len(routes) + 1,
		Entity: string(root),
		Table:  rootDesc.Table,
	})
	return doc, nil
}

func runOrder(cmd *cobra.Command, args []string) error {
	doc, err := buildOrder(schoolRegistry(), registry.EntityType(args[0]))
	if err != nil {
		return err
	}
	return writeYAML(cmd.OutOrStdout(), doc)
}

func runRoots(cmd *cobra.Command, _ []string) error {
	reg := schoolRegistry()
	out := make(map[string]string)
	for _, r := range reg.Roots() {
		p, err := reg.RootPolicy(r)
		if err != nil {
			return err
		}
		out[string(r)] = string(p)
	}
	return writeYAML(cmd.OutOrStdout(), out)
}
