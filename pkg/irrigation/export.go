package irrigation

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
)

const trainingSetSheet = "training_set"

// WriteTrainingSetXLSX writes one spreadsheet row per sample below a header row.
func WriteTrainingSetXLSX(w io.Writer, hubID string, samples []TrainingSample) error {
	x := excelize.NewFile()
	defer x.Close()

	if err := x.SetSheetName("Sheet1", trainingSetSheet); err != nil {
		return err
	}

	header := []any{"date", "season"}
	for _, name := range FeatureNames {
		header = append(header, name)
	}
	header = append(header, "label")
	if err := x.SetSheetRow(trainingSetSheet, "A1", &header); err != nil {
		return err
	}

	for i, s := range samples {
		row := []any{s.Date.String(), string(SeasonOf(s.Date))}
		for _, v := range s.Row.Vector() {
			row = append(row, v)
		}
		row = append(row, s.Label)

		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := x.SetSheetRow(trainingSetSheet, cell, &row); err != nil {
			return err
		}
	}

	if err := x.SetDocProps(&excelize.DocProperties{
		Title:   fmt.Sprintf("Training set for hub %s", hubID),
		Creator: "irrigation",
	}); err != nil {
		return err
	}

	_, err := x.WriteTo(w)
	return err
}
