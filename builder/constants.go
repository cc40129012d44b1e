// Package builder defines shared constants used by growth models, keeping
// error prefixes and parameter domains consistent across constructors.
package builder

//-----------------------------------------------------------------------------
// Method Name Constants
//   used to prefix errors with the constructor name for context.
//-----------------------------------------------------------------------------

const (
	// MethodNoPreferentialAttachment names the model A constructor.
	MethodNoPreferentialAttachment = "NoPreferentialAttachment"
	// MethodNoGrowthBarabasi names the model B constructor.
	MethodNoGrowthBarabasi = "NoGrowthBarabasi"
	// MethodAddBANode names the preferential node-addition primitive.
	MethodAddBANode = "AddBANode"
	// MethodAddRandomNode names the Bernoulli node-addition primitive.
	MethodAddRandomNode = "AddRandomNode"
	// MethodSchedule names the pattern-driven constructor.
	MethodSchedule = "Schedule"
)

//-----------------------------------------------------------------------------
// Parameter domains
//-----------------------------------------------------------------------------

// MinNodes is the smallest node count a growth model accepts.
const MinNodes = 1

// MinEdgesPerNode is the smallest m accepted by NoPreferentialAttachment.
const MinEdgesPerNode = 1

// MinRewireNodes is the smallest graph on which NoGrowthBarabasi can place
// an edge without a self-loop.
const MinRewireNodes = 2

// MinProbability is the lower bound for p in AddRandomNode, inclusive.
const MinProbability = 0.0

// MaxProbability is the upper bound for p in AddRandomNode, inclusive.
const MaxProbability = 1.0

//-----------------------------------------------------------------------------
// Pattern tokens for ParsePattern
//-----------------------------------------------------------------------------

const (
	// PatternBA selects an AddBANode step.
	PatternBA = 'B'
	// PatternRandom selects an AddRandomNode step.
	PatternRandom = 'R'
)
