// Package cmd provides the root command and CLI setup for survivors.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"gooze.dev/pkg/survivors/internal/adapter"
	"gooze.dev/pkg/survivors/internal/controller"
	"gooze.dev/pkg/survivors/internal/domain"
)

var fsAdapter adapter.ReportFSAdapter
var reportStore adapter.ReportStore
var processor domain.ReportProcessor
var workflow domain.Workflow
var ui controller.UI

var (
	reportFlag      string
	outputFlag      string
	outputRootFlag  string
	stripPrefixFlag string
	logFileFlag     string
	verboseFlag     bool
)

func init() {
	configureRootFlags(rootCmd)

	// Initialize shared dependencies.
	ui = controller.NewUI(rootCmd, controller.IsTTY(os.Stdout))
	fsAdapter = adapter.NewLocalReportFSAdapter()
	reportStore = adapter.NewReportStore(fsAdapter)
	processor = domain.NewReportProcessor(fsAdapter, reportStore)
	workflow = domain.NewWorkflow(fsAdapter, processor, ui)
}

const rootLongDescription = `Survivors turns the survived mutants of a Stryker mutation report into
prompts asking for unit tests that would kill them. Prompts are written to
one file per mutator.

Without --report the newest StrykerOutput/<run>/coverage/stryker.json is
used, falling back to coverage/stryker.json.`

// rootCmd represents the base command when called without any subcommands.
// On its own it behaves like "generate".
var rootCmd = baseRootCmd()

func baseRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:          "survivors",
		Short:        "Generate test-writing prompts from survived mutants",
		Long:         rootLongDescription,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE:         runGenerate,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			configureLogger(viper.GetString(logFilenameKey), viper.GetBool(logVerboseKey))
		},
	}
}

// newRootCmd returns a root command with its persistent flags configured.
func newRootCmd() *cobra.Command {
	cmd := baseRootCmd()
	configureRootFlags(cmd)

	return cmd
}

func configureRootFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().StringVarP(&reportFlag, reportFlagName, "r", viper.GetString(reportConfigKey), "mutation report to read (skips locating the latest report)")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(reportFlagName), reportConfigKey)

	cmd.PersistentFlags().
		StringVarP(
			&outputFlag, outputFlagName, "o",
			viper.GetString(outputConfigKey),
			"output directory for prompt files",
		)
	bindFlagToConfig(cmd.PersistentFlags().Lookup(outputFlagName), outputConfigKey)

	cmd.PersistentFlags().StringVar(&outputRootFlag, outputRootFlagName, viper.GetString(outputRootConfigKey), "directory holding timestamped Stryker runs")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(outputRootFlagName), outputRootConfigKey)

	cmd.PersistentFlags().StringVar(&stripPrefixFlag, stripPrefixFlagName, viper.GetString(stripPrefixConfigKey), "prefix removed from report file paths (default: current directory)")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(stripPrefixFlagName), stripPrefixConfigKey)

	cmd.PersistentFlags().StringVar(&logFileFlag, logFileFlagName, viper.GetString(logFilenameKey), "log file path")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(logFileFlagName), logFilenameKey)

	cmd.PersistentFlags().BoolVarP(&verboseFlag, verboseFlagName, "v", viper.GetBool(logVerboseKey), "log at debug level")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(verboseFlagName), logVerboseKey)
}

// bindFlagToConfig wires a Cobra flag to a Viper key so config/env values feed the flag.
func bindFlagToConfig(flag *pflag.Flag, key string) {
	if flag == nil {
		cobra.CheckErr(fmt.Errorf("flag for config key %q not found", key))
		return
	}

	cobra.CheckErr(viper.BindPFlag(key, flag))
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}
