// Package bench runs the shortest-path searches over named graph scenarios,
// checks that they agree, and reports timings.
//
// A run builds each scenario's graph once, times every selected algorithm
// (best of Runs), validates each returned path with core.PathWeight and
// cross-checks the distances. Disagreements do not abort the run: they are
// collected and returned joined, next to the complete Report.
//
// Reports carry a random run ID and render as table, JSON or YAML.
// Prometheus metrics are recorded when a Metrics value is supplied.
package bench
