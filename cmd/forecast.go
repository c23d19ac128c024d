package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/kilianp07/picapacity/app"
	"github.com/kilianp07/picapacity/config"
	"github.com/kilianp07/picapacity/core/forecast"
	coremetrics "github.com/kilianp07/picapacity/core/metrics"
	"github.com/kilianp07/picapacity/core/model"
	"github.com/kilianp07/picapacity/infra/logger"
	_ "github.com/kilianp07/picapacity/infra/metrics" // registers prometheus and influx sinks
	"github.com/kilianp07/picapacity/internal/input"
	"github.com/kilianp07/picapacity/internal/report"
)

type forecastFlags struct {
	team        string
	devs        []string
	example     int
	future      float64
	strategy    string
	trials      int
	seed        uint64
	workers     int
	uncertainty float64
	low         float64
	high        float64
	percentile  float64
	bins        int
	output      string
}

var ff forecastFlags

var forecastCmd = &cobra.Command{
	Use:   "forecast",
	Short: "Simulate the story points a team can deliver next planning interval",
	Example: `  picapacity forecast --example 4
  picapacity forecast --dev "Dev1:15,20:12,18:15" --dev "Dev2:10,12:9,10:12" --strategy resampling
  picapacity forecast --team team.yaml --trials 5000 --output json`,
	RunE: runForecast,
}

func init() {
	f := forecastCmd.Flags()
	f.StringVarP(&ff.team, "team", "t", "", "team file (yaml or json)")
	f.StringArrayVarP(&ff.devs, "dev", "d", nil, `contributor as "name:capacities:story_points:future_capacity"`)
	f.IntVar(&ff.example, "example", 0, "use N sample contributors (capacity 15,20, story points 12,18)")
	f.Float64Var(&ff.future, "future-capacity", 15, "future capacity of the sample contributors")
	f.StringVarP(&ff.strategy, "strategy", "s", "", "estimator: ratio or resampling")
	f.IntVarP(&ff.trials, "trials", "n", 0, "number of trials")
	f.Uint64Var(&ff.seed, "seed", 0, "random seed, 0 picks one")
	f.IntVar(&ff.workers, "workers", 0, "goroutines running trials")
	f.Float64Var(&ff.uncertainty, "uncertainty", 0, "absence uncertainty factor of the ratio strategy, in [0,1]")
	f.Float64Var(&ff.low, "low", 0, "low capacity variability bound of the resampling strategy")
	f.Float64Var(&ff.high, "high", 0, "high capacity variability bound of the resampling strategy")
	f.Float64VarP(&ff.percentile, "percentile", "p", 0, "reported upper percentile")
	f.IntVar(&ff.bins, "bins", 0, "histogram bins per distribution, 0 omits them")
	f.StringVarP(&ff.output, "output", "o", "", "output format: text or json")
	rootCmd.AddCommand(forecastCmd)
}

func runForecast(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	applyFlags(cmd, cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}
	format, err := report.ParseFormat(cfg.Report.Format)
	if err != nil {
		return err
	}

	team, err := assembleTeam()
	if err != nil {
		return err
	}

	logg := logger.New("forecast-command")
	sink, err := coremetrics.NewMetricsSink(cfg.Metrics.Sinks)
	if err != nil {
		return fmt.Errorf("metrics sink: %w", err)
	}
	svc, err := app.New(cfg, sink, logg)
	if err != nil {
		return err
	}
	defer func() {
		if err := svc.Close(); err != nil {
			logg.Errorf("flush metrics: %v", err)
		}
	}()

	res, err := svc.Forecast(ctx, team)
	if err != nil {
		return err
	}
	return report.Write(cmd.OutOrStdout(), format, res.Report)
}

// applyFlags overrides configuration values with the flags that were set.
func applyFlags(cmd *cobra.Command, cfg *config.Config) {
	f := cmd.Flags()
	sim := &cfg.Simulation
	if f.Changed("strategy") {
		sim.Strategy.Kind = forecast.Kind(ff.strategy)
	}
	if f.Changed("trials") {
		sim.Trials = ff.trials
	}
	if f.Changed("seed") {
		sim.Seed = ff.seed
	}
	if f.Changed("workers") {
		sim.Workers = ff.workers
	}
	if f.Changed("uncertainty") {
		sim.Strategy.UncertaintyFactor = ff.uncertainty
	}
	if f.Changed("low") {
		sim.Strategy.VariabilityLow = forecast.Bound(ff.low)
	}
	if f.Changed("high") {
		sim.Strategy.VariabilityHigh = forecast.Bound(ff.high)
	}
	if f.Changed("percentile") {
		cfg.Report.Percentile = ff.percentile
	}
	if f.Changed("bins") {
		cfg.Report.Bins = ff.bins
	}
	if f.Changed("output") {
		cfg.Report.Format = ff.output
	}
}

// assembleTeam combines the team file, --dev specs and sample contributors
// in that order.
func assembleTeam() ([]model.ContributorProfile, error) {
	var team []model.ContributorProfile
	if ff.team != "" {
		t, err := input.LoadTeam(ff.team)
		if err != nil {
			return nil, fmt.Errorf("load team: %w", err)
		}
		team = append(team, t...)
	}
	for _, spec := range ff.devs {
		p, err := input.ParseContributor(spec)
		if err != nil {
			return nil, err
		}
		team = append(team, p)
	}
	if ff.example > 0 {
		team = append(team, input.ExampleTeam(ff.example, ff.future)...)
	}
	if len(team) == 0 {
		return nil, fmt.Errorf("%w: no contributors, use --team, --dev or --example", model.ErrInvalidInput)
	}
	return team, model.ValidateTeam(team)
}
