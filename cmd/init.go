package cmd

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var initForceFlag bool

func newInitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a survivors.yaml holding the current settings",
		Long: `Write survivors.yaml to the current directory with the effective settings
(defaults, environment and flags merged) so they can be edited and reused.
An existing file is kept unless --force is given.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			targetPath := filepath.Join(configFolderPath, configFileName)

			write := viper.SafeWriteConfigAs
			if initForceFlag {
				write = viper.WriteConfigAs
			}

			if err := write(targetPath); err != nil {
				var exists viper.ConfigFileAlreadyExistsError
				if errors.As(err, &exists) {
					return fmt.Errorf("%s already exists (use --force to overwrite)", targetPath)
				}

				return fmt.Errorf("write config %s: %w", targetPath, err)
			}

			cmd.Printf("Wrote %s\n", targetPath)

			return nil
		},
	}

	cmd.Flags().BoolVar(&initForceFlag, "force", false, "overwrite an existing survivors.yaml")

	return cmd
}

func init() {
	rootCmd.AddCommand(newInitCmd())
}
