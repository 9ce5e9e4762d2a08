// Command irrigationctl runs the irrigation pipeline from the shell: seeding, training,
// prediction and rainfall reports against the configured database.
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/nelsonchoo456/lepark-sub001/pkg/common"
	"github.com/nelsonchoo456/lepark-sub001/pkg/db"
	"github.com/nelsonchoo456/lepark-sub001/pkg/irrigation"
)

var (
	windowDays int
	workers    int

	rootCmd = &cobra.Command{
		Use:   "irrigationctl",
		Short: "Predictive irrigation pipeline",
		Long: `Operate the predictive irrigation pipeline:
- seed: generate synthetic hubs, readings and rainfall
- train: train one hub or every hub
- predict: predict today's irrigation for a hub
- rainfall-intensity: daily rainfall area under curve`,
		SilenceUsage: true,
	}
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(func() {
		// .env is optional for the cli, the environment may already be set
		_ = godotenv.Load()
	})

	rootCmd.PersistentFlags().IntVar(&windowDays, "window-days",
		common.GetEnvInt(common.EnvKeyIrrigationTrainWindowDays, common.DefaultTrainWindowDays),
		"days of history in each training set")
	rootCmd.PersistentFlags().IntVar(&workers, "workers",
		common.GetEnvInt(common.EnvKeyIrrigationTrainWorkers, common.DefaultTrainWorkers),
		"hubs trained concurrently")
}

func openCore() (*irrigation.Core, error) {
	dialector, err := db.UseDialectorFromEnv()
	if err != nil {
		return nil, err
	}
	core := &irrigation.Core{
		Db:         *db.GetInstance(dialector),
		WindowDays: windowDays,
		Workers:    workers,
	}
	return core.WithDefaultServices(), nil
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
