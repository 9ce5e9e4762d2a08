package main

import (
	"github.com/spf13/cobra"

	"github.com/nelsonchoo456/lepark-sub001/pkg/irrigation"
)

var predictCmd = &cobra.Command{
	Use:   "predict <hub-id>",
	Short: "Predict whether a hub needs irrigation today",
	Args:  cobra.ExactArgs(1),
	RunE:  runPredict,
}

func init() {
	rootCmd.AddCommand(predictCmd)

	predictCmd.Flags().String("forecast", "", `today's forecast text, e.g. "Thundery Showers"`)
	predictCmd.Flags().Bool("fallback", false, "use the irrigation rule when the hub has no model")
}

func runPredict(cmd *cobra.Command, args []string) error {
	forecast, _ := cmd.Flags().GetString("forecast")
	fallback, _ := cmd.Flags().GetBool("fallback")

	core, err := openCore()
	if err != nil {
		return err
	}

	var p *irrigation.Prediction
	if fallback {
		p, err = core.PredictOrRule(cmd.Context(), args[0], forecast)
	} else {
		p, err = core.PredictToday(cmd.Context(), args[0], forecast)
	}
	if err != nil {
		return err
	}
	return printJSON(cmd.OutOrStdout(), p)
}
