package cmd

import (
	"errors"
	"fmt"
	"io"

	"github.com/nfrund/bloomly/internal/dashboard"
	"github.com/nfrund/bloomly/internal/domain"
	"github.com/nfrund/bloomly/internal/nav"
	"github.com/spf13/cobra"
)

// noTrackingData matches the web dashboard's empty state.
const noTrackingData = "No tracking data found."

func newTrackingCmd(a *cliApp) *cobra.Command {
	var id string

	cmd := &cobra.Command{
		Use:   "tracking",
		Short: "Show the health tracking dashboard",
		Long: `Fetch the tracking record (TRACKING_RECORD_ID by default) and print the
stat cards, weight and BMI trends and hormone levels. Requires a signed-in
session.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.open(nav.Tracking); err != nil {
				return err
			}
			if id == "" {
				id = a.cfg.GetTrackingRecordID()
			}

			rec, err := a.deps.Backend.Tracking(cmd.Context(), id)
			if errors.Is(err, domain.ErrNotFound) {
				return fmt.Errorf("%s (record %q does not exist)", noTrackingData, id)
			}
			if err != nil {
				return fmt.Errorf("%s (%w)", noTrackingData, err)
			}

			board := dashboard.Build(*rec)
			if a.jsonOutput() {
				return writeJSON(cmd.OutOrStdout(), board)
			}
			return printDashboard(cmd.OutOrStdout(), board)
		},
	}

	cmd.Flags().StringVar(&id, "id", "", "tracking record id (defaults to TRACKING_RECORD_ID)")
	return cmd
}

func printDashboard(out io.Writer, board dashboard.Dashboard) error {
	w := newTable(out)

	fmt.Fprintln(w, "METRIC\tVALUE\tCHANGE")
	for _, s := range board.Stats {
		fmt.Fprintf(w, "%s\t%s\t%s\n", s.Label, s.Value, s.Change)
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "MONTH\tWEIGHT (KG)\tBMI")
	for i, p := range board.Weight {
		bmi := "-"
		if i < len(board.BMI) {
			bmi = fmt.Sprintf("%.1f", board.BMI[i].Value)
		}
		fmt.Fprintf(w, "%s\t%.1f\t%s\n", p.Label, p.Value, bmi)
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "HORMONE\tLEVEL\tTARGET")
	for _, b := range board.Hormones {
		fmt.Fprintf(w, "%s\t%.1f\t%.1f\n", b.Name, b.Value, b.Target)
	}

	if board.WeightSynthesized || board.BMISynthesized {
		fmt.Fprintln(w)
		fmt.Fprintln(w, "History not recorded yet; trends are estimated from your current BMI.")
	}
	return w.Flush()
}
