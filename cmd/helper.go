package cmd

import (
	"strconv"

	"github.com/erdaltsksn/cui"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func getFlagString(cmd *cobra.Command, name, defaultValue string) string {
	value, err := cmd.Flags().GetString(name)
	if err != nil {
		cui.Error("Problem parsing "+name, err)
	}
	if value == "" {
		value = viper.GetString(name)
	}
	if value == "" {
		value = defaultValue
	}
	return value
}

func getFlagSlice(cmd *cobra.Command, name string) []string {
	value, err := cmd.Flags().GetStringSlice(name)
	if err != nil {
		cui.Error("Problem parsing "+name, err)
	}
	if len(value) == 0 {
		value = viper.GetStringSlice(name)
	}
	return value
}

func getFlagInt(cmd *cobra.Command, name, defaultInt string) int {
	value := getFlagString(cmd, name, defaultInt)
	parsed, err := strconv.Atoi(value)
	if err != nil {
		cui.Error("Problem parsing "+name, err)
	}
	return parsed
}
