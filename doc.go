// Package bankviz loads daily stock closing prices from a CSV file into a
// per-ticker wide table and derives the figures of a descriptive analysis:
// daily returns, pairwise return correlations, and summary statistics.
//
// The chart and renderer subpackages turn those tables into a composite PNG
// figure and a markdown report; the cmd subpackage exposes both as a CLI.
package bankviz
