package main

import (
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/nelsonchoo456/lepark-sub001/pkg/common"
	"github.com/nelsonchoo456/lepark-sub001/pkg/irrigation"
	"github.com/nelsonchoo456/lepark-sub001/pkg/models"
	"github.com/nelsonchoo456/lepark-sub001/pkg/seed"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Generate synthetic hubs, sensor readings and rainfall records",
	RunE:  runSeed,
}

func init() {
	rootCmd.AddCommand(seedCmd)

	def := seed.DefaultOptions()
	seedCmd.Flags().Int("hubs", def.Hubs, "number of hubs")
	seedCmd.Flags().Int("stations", def.Stations, "number of rainfall stations")
	seedCmd.Flags().Int("days", def.Days, "days of history ending at --end")
	seedCmd.Flags().Int("readings-per-day", def.ReadingsPerDay, "readings per sensor per day")
	seedCmd.Flags().Uint("zone", def.ZoneID, "zone id of the generated hubs")
	seedCmd.Flags().Uint64("seed", def.Seed, "random seed")
	seedCmd.Flags().String("end", "", "last day to generate, YYYY-MM-DD (default today)")
}

func runSeed(cmd *cobra.Command, _ []string) error {
	flags := cmd.Flags()
	opts := seed.DefaultOptions()
	opts.Hubs, _ = flags.GetInt("hubs")
	opts.Stations, _ = flags.GetInt("stations")
	opts.Days, _ = flags.GetInt("days")
	opts.ReadingsPerDay, _ = flags.GetInt("readings-per-day")
	opts.ZoneID, _ = flags.GetUint("zone")
	opts.Seed, _ = flags.GetUint64("seed")

	if end, _ := flags.GetString("end"); end != "" {
		d, err := irrigation.ParseDate(end)
		if err != nil {
			return err
		}
		opts.End = d.Start().Add(12 * time.Hour)
	}

	core, err := openCore()
	if err != nil {
		return err
	}

	ds, err := seed.New(opts).Generate()
	if err != nil {
		return err
	}
	if err := seed.Load(cmd.Context(), core, ds); err != nil {
		return err
	}

	logger := common.GetLoggerWith(common.LoggerNameCli)
	logger.Info("Seeded database",
		zap.Int("hubs", len(ds.Hubs)),
		zap.Int("sensors", len(ds.Sensors)),
		zap.Int("readings", len(ds.Readings)),
		zap.Int("rainfall_records", len(ds.Rainfall)))

	hubIDs := common.Mapper(ds.Hubs, func(h models.Hub) string { return h.ID })
	return printJSON(cmd.OutOrStdout(), map[string]any{
		"hubs":             hubIDs,
		"readings":         len(ds.Readings),
		"rainfall_records": len(ds.Rainfall),
	})
}
