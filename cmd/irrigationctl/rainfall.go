package main

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/nelsonchoo456/lepark-sub001/pkg/irrigation"
)

var rainfallIntensityCmd = &cobra.Command{
	Use:   "rainfall-intensity",
	Short: "Print the daily rainfall area under curve between two dates",
	RunE:  runRainfallIntensity,
}

func init() {
	rootCmd.AddCommand(rainfallIntensityCmd)

	rainfallIntensityCmd.Flags().String("start", "", "first day, YYYY-MM-DD")
	rainfallIntensityCmd.Flags().String("end", "", "last day, YYYY-MM-DD")
	_ = rainfallIntensityCmd.MarkFlagRequired("start")
	_ = rainfallIntensityCmd.MarkFlagRequired("end")
}

func runRainfallIntensity(cmd *cobra.Command, _ []string) error {
	startFlag, _ := cmd.Flags().GetString("start")
	endFlag, _ := cmd.Flags().GetString("end")

	start, err := irrigation.ParseDate(startFlag)
	if err != nil {
		return err
	}
	end, err := irrigation.ParseDate(endFlag)
	if err != nil {
		return err
	}
	if end.Before(start) {
		return errors.New("end is before start")
	}

	core, err := openCore()
	if err != nil {
		return err
	}

	days, err := core.RainfallIntensity(cmd.Context(), start.Start(), end.End())
	if err != nil {
		return err
	}
	return printJSON(cmd.OutOrStdout(), days)
}
