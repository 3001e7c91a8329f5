package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"gooze.dev/pkg/survivors/internal/domain"
	m "gooze.dev/pkg/survivors/internal/model"
)

const generateLongDescription = `Locate the mutation report, build one prompt per survived mutant and
write the prompts grouped by mutator into the output directory.

Each <mutator>_prompts.txt file is overwritten on every run.`

func newGenerateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "generate",
		Short: "Write prompt files for survived mutants",
		Long:  generateLongDescription,
		Args:  cobra.NoArgs,
		RunE:  runGenerate,
	}
}

func runGenerate(cmd *cobra.Command, _ []string) error {
	prefix, err := stripPrefix()
	if err != nil {
		return err
	}

	return workflow.Generate(cmd.Context(), domain.GenerateArgs{
		Report:      m.Path(viper.GetString(reportConfigKey)),
		Locate:      locatorConfig(),
		Output:      m.Path(viper.GetString(outputConfigKey)),
		StripPrefix: prefix,
	})
}

func init() {
	rootCmd.AddCommand(newGenerateCmd())
}
