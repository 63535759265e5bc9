package experiment

import (
	"encoding/csv"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/cachesim/cachesim/sim"
)

// WriteCSV persists result records as tabular rows: one header row, then
// one comma-separated row per run, matching sim.ResultColumns.
func WriteCSV(path string, records []sim.ResultRecord) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating results file: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(sim.ResultColumns); err != nil {
		return fmt.Errorf("writing results header: %w", err)
	}
	for _, rec := range records {
		if err := w.Write(rec.Row()); err != nil {
			return fmt.Errorf("writing result row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flushing results file: %w", err)
	}
	logrus.Infof("wrote %d result rows to %s", len(records), path)
	return nil
}
