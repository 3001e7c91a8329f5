package cmd

import (
	"runtime/debug"

	"github.com/spf13/cobra"
)

const unknownVersion = "(devel)"

var versionShortFlag bool

type buildVersion struct {
	Version  string
	Go       string
	Revision string
}

func readBuildVersion() buildVersion {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return buildVersion{Version: unknownVersion}
	}

	v := buildVersion{Version: info.Main.Version, Go: info.GoVersion}
	if v.Version == "" {
		v.Version = unknownVersion
	}

	for _, setting := range info.Settings {
		if setting.Key == "vcs.revision" {
			v.Revision = setting.Value
		}
	}

	return v
}

func newVersionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Show the version information",
		Long:  "Displays the survivors build version, VCS revision and the Go version used to build it.",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			v := readBuildVersion()
			if versionShortFlag {
				cmd.Println(v.Version)
				return
			}

			cmd.Println("survivors\t", v.Version)

			if v.Revision != "" {
				cmd.Println("revision\t", v.Revision)
			}

			if v.Go != "" {
				cmd.Println("go version\t", v.Go)
			}
		},
	}

	cmd.Flags().BoolVar(&versionShortFlag, "short", false, "print only the version")

	return cmd
}

func init() {
	rootCmd.AddCommand(newVersionCmd())
}
