package forecast

import (
	"slices"

	"github.com/kilianp07/picapacity/core/stats"
)

// TrialResult is the output of one trial: one value per contributor in team
// order and their sum.
type TrialResult struct {
	Values []float64
	Total  float64
}

// Outcome holds every simulated value of a run. It is never modified after
// Engine.Run returns; accessors hand out copies.
type Outcome struct {
	runID    string
	seed     uint64
	strategy Strategy
	names    []string
	index    map[string]int
	perDev   [][]float64
	team     []float64
}

func newOutcome(runID string, seed uint64, strategy Strategy, names []string, trials int) *Outcome {
	o := &Outcome{
		runID:    runID,
		seed:     seed,
		strategy: strategy,
		names:    names,
		index:    make(map[string]int, len(names)),
		perDev:   make([][]float64, len(names)),
		team:     make([]float64, trials),
	}
	for i, n := range names {
		o.index[n] = i
		o.perDev[i] = make([]float64, trials)
	}
	return o
}

// store writes a trial result at position t. Distinct trials touch distinct
// slots so concurrent stores for different t are safe.
func (o *Outcome) store(t int, res TrialResult) {
	for i, v := range res.Values {
		o.perDev[i][t] = v
	}
	o.team[t] = res.Total
}

// RunID identifies the run in logs and metrics.
func (o *Outcome) RunID() string { return o.runID }

// Seed returns the seed the random streams were derived from.
func (o *Outcome) Seed() uint64 { return o.seed }

// Strategy returns the strategy used for the run.
func (o *Outcome) Strategy() Strategy { return o.strategy }

// Trials returns the number of trials.
func (o *Outcome) Trials() int { return len(o.team) }

// Names returns the contributor names in input order.
func (o *Outcome) Names() []string { return slices.Clone(o.names) }

// Contributor returns the simulated values of one contributor.
func (o *Outcome) Contributor(name string) ([]float64, bool) {
	i, ok := o.index[name]
	if !ok {
		return nil, false
	}
	return slices.Clone(o.perDev[i]), true
}

// Team returns the simulated team totals.
func (o *Outcome) Team() []float64 { return slices.Clone(o.team) }

// ContributorReport is the aggregate of one contributor's trials.
type ContributorReport struct {
	Name         string       `json:"name"`
	Summary      stats.Summary `json:"summary"`
	Distribution []stats.Bin  `json:"distribution,omitempty"`
}

// Report aggregates an Outcome for presentation.
type Report struct {
	RunID        string              `json:"run_id"`
	Seed         uint64              `json:"seed"`
	Strategy     Strategy            `json:"strategy"`
	Trials       int                 `json:"trials"`
	Contributors []ContributorReport `json:"contributors"`
	Team         ContributorReport   `json:"team"`
}

// TeamName labels the team aggregate in a Report.
const TeamName = "team"

// Summarize computes the statistics of every contributor and of the team
// total. bins > 0 also attaches a histogram to each entry.
func (o *Outcome) Summarize(percentile float64, bins int) (*Report, error) {
	rep := &Report{
		RunID:        o.runID,
		Seed:         o.seed,
		Strategy:     o.strategy,
		Trials:       o.Trials(),
		Contributors: make([]ContributorReport, 0, len(o.names)),
	}
	for i, n := range o.names {
		cr, err := aggregate(n, o.perDev[i], percentile, bins)
		if err != nil {
			return nil, err
		}
		rep.Contributors = append(rep.Contributors, cr)
	}
	team, err := aggregate(TeamName, o.team, percentile, bins)
	if err != nil {
		return nil, err
	}
	rep.Team = team
	return rep, nil
}

func aggregate(name string, xs []float64, percentile float64, bins int) (ContributorReport, error) {
	s, err := stats.Summarize(xs, percentile)
	if err != nil {
		return ContributorReport{}, err
	}
	cr := ContributorReport{Name: name, Summary: s}
	if bins > 0 {
		if cr.Distribution, err = stats.Histogram(xs, bins); err != nil {
			return ContributorReport{}, err
		}
	}
	return cr, nil
}
