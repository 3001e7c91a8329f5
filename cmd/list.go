package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"gooze.dev/pkg/survivors/internal/controller"
	"gooze.dev/pkg/survivors/internal/domain"
	m "gooze.dev/pkg/survivors/internal/model"
)

var listFormatFlag string

func newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List survived mutants grouped by mutator",
		Long:  "List the survived mutants of the report grouped by mutator without writing any prompt files.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			format, err := controller.ParseListFormat(viper.GetString(listFormatConfigKey))
			if err != nil {
				return err
			}

			prefix, err := stripPrefix()
			if err != nil {
				return err
			}

			return workflow.List(cmd.Context(), domain.ListArgs{
				Report:      m.Path(viper.GetString(reportConfigKey)),
				Locate:      locatorConfig(),
				StripPrefix: prefix,
				Format:      format,
			})
		},
	}

	configureListFlags(cmd)

	return cmd
}

func configureListFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&listFormatFlag, formatFlagName, "f", viper.GetString(listFormatConfigKey), "output format: table, json or yaml")
	bindFlagToConfig(cmd.Flags().Lookup(formatFlagName), listFormatConfigKey)
}

func init() {
	rootCmd.AddCommand(newListCmd())
}
