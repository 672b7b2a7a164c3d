package cmd

import (
	"github.com/fatih/color"
	"github.com/konradit/lrv2csv/pkg/exiftool"
	"github.com/spf13/cobra"
)

var version = "dev"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print lrv2csv and exiftool versions",
	Run: func(cmd *cobra.Command, args []string) {
		color.Cyan("lrv2csv %s", version)

		et := exiftool.New(nil)
		etVersion, err := et.Version()
		if err != nil {
			color.Red("exiftool not found")
			return
		}
		color.Cyan("exiftool %s", etVersion)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
