// Package sampler draws node indices for growth models from weight vectors.
//
// Every function takes the *rand.Rand to draw from as its first argument;
// there is no package-level generator. Seed one with NewRand and the whole
// growth trajectory that consumes it becomes reproducible.
//
// Weighted draws are delegated to gonum's stat/sampleuv (a heap-backed
// weighted sampler) and Bernoulli trials to stat/distuv.
//
// Errors (sentinels, check with errors.Is):
//
//	ErrInvalidParameter        – negative/NaN weight, k < 0, p ∉ [0,1]
//	ErrInsufficientPopulation  – k distinct draws requested from fewer than k items
//	ErrDegenerateWeights       – no positive weight mass left to draw from
package sampler
