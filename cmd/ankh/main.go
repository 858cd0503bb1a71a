package main

import (
	"fmt"
	"os"

	"github.com/jsvensson/ankh"
	"github.com/jsvensson/ankh/internal/color"
	"github.com/jsvensson/ankh/internal/engine"
	"github.com/jsvensson/ankh/internal/format"
	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"
	_ "github.com/tliron/commonlog/simple"
)

var (
	flagVerbose   int
	flagPalette   string
	flagOut       string
	flagTemplates string
	flagApp       []string
	flagCheck     bool
	version       = "dev" // Injected at build time via ldflags
)

var log = commonlog.GetLogger("ankh.cli")

// reporter logs every parse and convert failure before it is returned.
var reporter = color.Reporter{Sink: color.CommonlogSink(commonlog.GetLogger("ankh.color"))}

var rootCmd = &cobra.Command{
	Use:          "ankh",
	Short:        "Parse, convert and classify colors, and render palettes into application themes",
	Version:      version,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		commonlog.Configure(flagVerbose, nil)
	},
}

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate theme files from templates",
	RunE:  runGenerate,
}

var fmtCmd = &cobra.Command{
	Use:   "fmt [files...]",
	Short: "Format palette files",
	Long:  "Format one or more palette files in-place. Prints the name of each file that was modified.",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runFmt,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), version)
	},
}

func init() {
	rootCmd.PersistentFlags().CountVarP(&flagVerbose, "verbose", "v", "increase log verbosity (repeatable)")

	generateCmd.Flags().StringVar(&flagPalette, "palette", "palette.ankh", "path to palette HCL file")
	generateCmd.Flags().StringVar(&flagOut, "out", "output", "output directory")
	generateCmd.Flags().StringVar(&flagTemplates, "templates", "templates", "templates directory")
	generateCmd.Flags().StringArrayVar(&flagApp, "app", nil, "generate only for specific apps (can be repeated)")
	fmtCmd.Flags().BoolVarP(&flagCheck, "check", "c", false, "check if files are formatted (do not write changes)")

	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(fmtCmd)
	rootCmd.AddCommand(versionCmd)
	addColorCommands(rootCmd)
}

func runGenerate(cmd *cobra.Command, args []string) error {
	p, err := ankh.Load(flagPalette)
	if err != nil {
		return err
	}
	if err := p.CheckTone(); err != nil {
		log.Warningf("%s: %s", flagPalette, err)
	}

	e := &engine.Engine{
		TemplatesDir: flagTemplates,
		OutputDir:    flagOut,
		Apps:         flagApp,
	}

	if err := e.Run(p); err != nil {
		return fmt.Errorf("generating: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Generated theme files in %s\n", flagOut)
	return nil
}

func runFmt(cmd *cobra.Command, args []string) error {
	hasErrors := false
	needsFormatting := false

	for _, path := range args {
		data, err := os.ReadFile(path)
		if err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "Error reading %s: %v\n", path, err)
			hasErrors = true
			continue
		}

		content := string(data)
		formatted, err := format.Format(content)
		if err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "Error formatting %s: %v\n", path, err)
			hasErrors = true
			continue
		}

		if formatted == content {
			continue
		}

		fmt.Fprintln(cmd.OutOrStdout(), path)
		needsFormatting = true

		if !flagCheck {
			if err := os.WriteFile(path, []byte(formatted), 0o644); err != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "Error writing %s: %v\n", path, err)
				hasErrors = true
			}
		}
	}

	if hasErrors || (flagCheck && needsFormatting) {
		os.Exit(1)
	}

	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
