package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/kubev2v/panorama-mock/internal/config"
	"github.com/kubev2v/panorama-mock/internal/models"
	"github.com/kubev2v/panorama-mock/internal/report"
	"github.com/kubev2v/panorama-mock/internal/services"
	"github.com/kubev2v/panorama-mock/internal/util"
)

const dateLayout = "2006-01-02"

func newReportCommand(cfg *config.Configuration) *cobra.Command {
	var (
		customerID  string
		output      string
		start, end  string
		granularity string
	)

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Export every query of one customer into an xlsx workbook",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if customerID == "" {
				return errors.New("--customer is required")
			}
			window, err := reportWindow(start, end, granularity, time.Now().UTC())
			if err != nil {
				return err
			}

			st, err := openStore(cmd, cfg.Store)
			if err != nil {
				return err
			}
			defer st.Close()

			clock := services.SystemClock{}
			src := report.Sources{
				Volumes:      services.NewVolumeService(st, clock),
				Snapshots:    services.NewSnapshotService(st, clock),
				Clones:       services.NewCloneService(st, clock),
				Applications: services.NewApplicationService(st),
				Inventory:    services.NewInventoryService(st, clock),
			}

			sheets, err := report.Collect(cmd.Context(), src, customerID, window)
			if err != nil {
				return err
			}
			if err := report.Export(cmd.Context(), output, sheets); err != nil {
				return err
			}

			printSheets(output, sheets)
			return nil
		},
	}

	registerStoreFlags(cmd.Flags(), &cfg.Store)
	cmd.Flags().StringVar(&customerID, "customer", "", "customer id")
	cmd.Flags().StringVar(&output, "output", "golden.xlsx", "workbook path")
	cmd.Flags().StringVar(&start, "start", "", "start of the trend window (YYYY-MM-DD), 12 months before end when empty")
	cmd.Flags().StringVar(&end, "end", "", "end of the trend window (YYYY-MM-DD), today when empty")
	cmd.Flags().StringVar(&granularity, "granularity", "", "collectionHour, day or week, derived from the window when empty")

	return cmd
}

func reportWindow(start, end, granularity string, now time.Time) (report.Window, error) {
	w := report.Window{End: util.StartOfDay(now), Granularity: models.Granularity(granularity)}
	if granularity != "" && !w.Granularity.Valid() {
		return w, fmt.Errorf("invalid granularity %q", granularity)
	}

	if end != "" {
		t, err := time.Parse(dateLayout, end)
		if err != nil {
			return w, fmt.Errorf("invalid --end: %w", err)
		}
		w.End = t
	}

	w.Start = util.AddMonths(w.End, -12)
	if start != "" {
		t, err := time.Parse(dateLayout, start)
		if err != nil {
			return w, fmt.Errorf("invalid --start: %w", err)
		}
		w.Start = t
	}

	return w, nil
}

func printSheets(path string, sheets []report.Sheet) {
	color.New(color.FgGreen).Fprintf(os.Stdout, "wrote %s\n", path)
	name := color.New(color.FgCyan)
	for _, s := range sheets {
		name.Fprintf(os.Stdout, "  %-28s", s.Name)
		fmt.Fprintf(os.Stdout, "%5d rows\n", len(s.Rows))
	}
}
