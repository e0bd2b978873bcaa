package main

import (
	"fmt"
	"io"
	"os"

	"hbs-jsx/packages/compiler/config"
	"hbs-jsx/packages/compiler/glimmer"
	"hbs-jsx/packages/compiler/output"
	"hbs-jsx/packages/compiler/transform"

	"github.com/spf13/cobra"
)

const appName = "hbs-jsx"

// version is overridden at build time with -ldflags "-X main.version=...".
var version = "dev"

var (
	flagConfig  string
	flagVerbose bool
	flagOut     string
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           appName + " <command> [args]",
		Short:         "Convert parsed Glimmer templates into JSX",
		Long:          appName + " converts a parsed Glimmer/Handlebars template tree (YAML or JSON) into a JS/JSX expression.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVarP(&flagConfig, "config", "c", "", "transform config file (YAML)")
	root.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "report progress on stderr")

	transformCmd := &cobra.Command{
		Use:   "transform [file|-]",
		Short: "Transform one template tree and print the JSX expression",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "-"
			if len(args) == 1 {
				path = args[0]
			}
			return runTransform(cmd, path)
		},
	}

	compileCmd := &cobra.Command{
		Use:   "compile <dir>",
		Short: "Compile every *.hbs.yaml / *.hbs.json tree under dir into .jsx modules",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) == 1 {
				dir = args[0]
			}
			cfg, err := config.LoadFile(flagConfig)
			if err != nil {
				return err
			}
			return CompileProject(dir, flagOut, transform.New(cfg), cmd.OutOrStdout())
		},
	}
	compileCmd.Flags().StringVarP(&flagOut, "out", "o", "", "output directory (default <dir>/dist/"+appName+")")

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", appName, version)
		},
	}

	root.AddCommand(transformCmd, compileCmd, versionCmd)
	return root
}

func runTransform(cmd *cobra.Command, path string) error {
	cfg, err := config.LoadFile(flagConfig)
	if err != nil {
		return err
	}

	var data []byte
	if path == "-" {
		data, err = io.ReadAll(cmd.InOrStdin())
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return fmt.Errorf("error reading %s: %w", path, err)
	}
	verbosef(cmd, "read %s (%d bytes)\n", path, len(data))

	template, err := glimmer.Decode(data)
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", path, err)
	}
	verbosef(cmd, "decoded %d top-level statements\n", len(template.Body))

	result, err := transform.New(cfg).Transform(template)
	if err != nil {
		return fmt.Errorf("error transforming %s: %w", path, err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), output.Emit(result))
	return nil
}

func verbosef(cmd *cobra.Command, format string, args ...interface{}) {
	if flagVerbose {
		fmt.Fprintf(cmd.ErrOrStderr(), format, args...)
	}
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", appName, err)
		os.Exit(1)
	}
}
