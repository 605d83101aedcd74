package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"schoolku_backend/internals/features/school/deletions/registry"
)

var rootCmd = &cobra.Command{
	Use:          "deletiongraph [command]",
	Short:        "Inspect the school deletion graph",
	Long:         `Print the cascade order of a deletion root, or preview what deleting one row would remove, as YAML.`,
	SilenceUsage: true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func schoolRegistry() *registry.Registry {
	return registry.MustNewRegistry(registry.SchoolGraph())
}

func writeYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}
