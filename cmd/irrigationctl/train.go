package main

import (
	"github.com/spf13/cobra"

	"github.com/nelsonchoo456/lepark-sub001/pkg/irrigation"
)

var trainCmd = &cobra.Command{
	Use:   "train [hub-id...]",
	Short: "Train the given hubs, or every hub when none is given",
	RunE:  runTrain,
}

func init() {
	rootCmd.AddCommand(trainCmd)
}

func runTrain(cmd *cobra.Command, args []string) error {
	core, err := openCore()
	if err != nil {
		return err
	}

	if len(args) == 0 {
		report, err := core.TrainAll(cmd.Context())
		if report != nil {
			if perr := printJSON(cmd.OutOrStdout(), report); perr != nil {
				return perr
			}
		}
		return err
	}

	infos := make([]irrigation.ModelInfo, 0, len(args))
	for _, hubID := range args {
		m, err := core.TrainHubByID(cmd.Context(), hubID)
		if err != nil {
			return err
		}
		infos = append(infos, irrigation.ModelInfo{
			HubID:       m.HubID,
			SampleCount: m.SampleCount,
			TrainedAt:   m.TrainedAt,
			Trees:       len(m.Forest.Trees),
		})
	}
	return printJSON(cmd.OutOrStdout(), infos)
}
