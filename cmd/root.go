package cmd

import (
	"github.com/erdaltsksn/cui"
	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "lrv2csv <path> [output.csv]",
	Short: "Batch-extract GPS telemetry from LRV files into CSV",
	Long: `lrv2csv scans a directory (or a single file) for low resolution proxy
videos, pulls their embedded GPS track with exiftool -ee and writes every
point into one CSV file.`,
	Args: cobra.RangeArgs(1, 2),
	Run:  runExtract,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		cui.Error(err.Error())
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Config file (default is $HOME/.lrv2csv.yaml)")
	rootCmd.Flags().StringP("exiftool", "x", "", "Path to the exiftool binary")
	rootCmd.Flags().StringP("timeout", "t", "", "Per-file extraction timeout in seconds")
	rootCmd.Flags().StringSliceP("extensions", "e", []string{}, "Additional extensions to scan besides .lrv, eg: mp4,360")
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := homedir.Dir()
		if err != nil {
			cui.Error(err.Error())
		}
		viper.AddConfigPath(home)
		viper.SetConfigName(".lrv2csv")
	}

	viper.AutomaticEnv()
	_ = viper.ReadInConfig()
}
