// Doost!

package system

/// system wide constants //////////////////////////////////////////////////////

const Version = "0.1.0"

// Output formats of the wahl command.
const (
	FormatBits      = "bits"      // '0'/'1' string
	FormatBlocks    = "blocks"    // block listing
	FormatPositions = "positions" // set bit positions
)

// permissions of wahl file-system artifacts
const (
	FilePerm = 0644 // all files are -rw-r--r--
)

// bench defaults
const (
	DefaultBenchReps    = 1000
	DefaultBenchMinPow  = 10
	DefaultBenchMaxPow  = 22
	DefaultBenchPowStep = 4
)
