// Package report renders forecast reports for the command line.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	"github.com/kilianp07/picapacity/core/forecast"
	"github.com/kilianp07/picapacity/core/model"
)

// Format names an output format.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
)

// ParseFormat validates a format name.
func ParseFormat(s string) (Format, error) {
	switch f := Format(s); f {
	case FormatText, FormatJSON:
		return f, nil
	default:
		return "", fmt.Errorf("%w: unknown output format %q", model.ErrConfiguration, s)
	}
}

// Write renders rep in the given format.
func Write(w io.Writer, f Format, rep *forecast.Report) error {
	switch f {
	case FormatJSON:
		return WriteJSON(w, rep)
	case FormatText:
		return WriteText(w, rep)
	default:
		return fmt.Errorf("%w: unknown output format %q", model.ErrConfiguration, f)
	}
}

// WriteJSON writes rep as indented JSON.
func WriteJSON(w io.Writer, rep *forecast.Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(rep)
}

// WriteText writes a table with one row per contributor followed by the team
// total.
func WriteText(w io.Writer, rep *forecast.Report) error {
	rank := "p" + strconv.FormatFloat(rep.Team.Summary.PercentileRank, 'f', -1, 64)
	if _, err := fmt.Fprintf(w, "Forecast %s: %d trials, %s strategy, seed %d\n\n",
		rep.RunID, rep.Trials, rep.Strategy.Kind, rep.Seed); err != nil {
		return err
	}
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintf(tw, "contributor\tmean\tstd dev\tmedian\t%s\tmin\tmax\t\n", rank)
	for _, c := range rep.Contributors {
		row(tw, c)
	}
	row(tw, rep.Team)
	if err := tw.Flush(); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "\nTotal team capacity for next PI: %.2f story points (%s %.2f)\n",
		rep.Team.Summary.Mean, rank, rep.Team.Summary.Percentile)
	return err
}

func row(w io.Writer, c forecast.ContributorReport) {
	s := c.Summary
	fmt.Fprintf(w, "%s\t%.2f\t%.2f\t%.2f\t%.2f\t%.2f\t%.2f\t\n",
		c.Name, s.Mean, s.StdDev, s.Median, s.Percentile, s.Min, s.Max)
}
