// Package forecast runs Monte Carlo trials that project a team's story point
// output for the next planning interval.
//
// An Engine draws Config.Trials independent trials. In every trial each
// contributor's Estimator turns a historical efficiency ratio and the
// projected capacity into one simulated value; the team total is the sum of
// those values. Two strategies are available:
//
//   - ratio: mean historical ratio, future capacity reduced by
//     noise*UncertaintyFactor with noise ~ U(0,1).
//   - resampling: one historical observation drawn at random per trial,
//     future capacity scaled by a factor ~ U(VariabilityLow, VariabilityHigh).
//
// Each trial reads from its own random stream derived from the seed and the
// trial index, so an Outcome is reproducible for a given seed regardless of
// the number of workers used to compute it.
package forecast
