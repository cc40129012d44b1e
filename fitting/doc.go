// Package fitting recovers power-law exponents from the degree statistics of
// a finished graph.
//
// The only model is y = b·xᵃ. Fit solves it by nonlinear least squares:
// a log–log linear regression seeds (a, b), then gonum's optimize package
// refines them on the sum of squared residuals in linear space.
//
// Two statistics are provided:
//
//	DegreeDistribution  – (k, fraction of nodes with degree k)
//	DegreeCorrelation   – (k, mean neighbor-average-degree over nodes of degree k)
//
// Both are sorted by k descending and include k = 0 when isolated nodes
// exist; Fit drops non-positive x because xᵃ is undefined there for a < 0.
//
// Plot renders a log–log scatter of a series with its fitted curve. It only
// reads the series; nothing in this package mutates a graph.
package fitting
