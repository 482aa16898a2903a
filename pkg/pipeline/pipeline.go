// Package pipeline runs counting computations for the CLI and the HTTP
// server.
//
// A [Runner] validates [Options], consults the cache, runs the brute-force
// counter from package necklace and stores the result. Centralizing this
// keeps validation, size limits, caching and logging identical for every
// entry point.
//
// # Usage
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	result, err := runner.Run(ctx, pipeline.Options{
//	    Partition: multiset.Partition{2, 3, 1},
//	    Group:     necklace.Dihedral,
//	    Output:    necklace.OutputReps,
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(result.Count, result.Reps)
//
// Independent jobs can run concurrently with [Runner.Batch].
package pipeline

import (
	"math/big"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/necklace/pkg/errors"
	"github.com/matzehuels/necklace/pkg/multiset"
	"github.com/matzehuels/necklace/pkg/necklace"
)

// =============================================================================
// Default Values - Single Source of Truth for CLI and API
// =============================================================================

const (
	// DefaultMaxConfigs bounds the size of the configuration set a run may
	// materialize. Larger inputs fail with TOO_LARGE before enumeration.
	DefaultMaxConfigs = 2_000_000

	// DefaultGroup is the group used when none is given.
	DefaultGroup = necklace.Cyclic

	// DefaultOutput is the output mode used when none is given.
	DefaultOutput = necklace.OutputNum

	// DefaultBatchLimit is the number of batch jobs run concurrently.
	DefaultBatchLimit = 4
)

// Drawing formats.
const (
	FormatDOT = "dot"
	FormatSVG = "svg"
)

// ValidFormats is the set of supported drawing formats.
var ValidFormats = map[string]bool{
	FormatDOT: true,
	FormatSVG: true,
}

// =============================================================================
// Options - Run Configuration
// =============================================================================

// Options contains the configuration of one counting run.
// This struct supports JSON serialization for batch files and API requests.
type Options struct {
	Partition multiset.Partition `json:"partition"`
	Group     necklace.Group     `json:"group,omitempty"`
	Output    necklace.Output    `json:"output,omitempty"`

	// MaxConfigs caps the number of arrangements enumerated. Zero uses
	// DefaultMaxConfigs; a negative value disables the check.
	MaxConfigs int64 `json:"max_configs,omitempty"`

	// Refresh bypasses cached results and overwrites them.
	Refresh bool `json:"refresh,omitempty"`

	// Logger overrides the runner's logger for this run (not serialized).
	Logger *log.Logger `json:"-"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool
}

// Result contains the outputs of a run.
type Result struct {
	necklace.Result

	// Stats contains timing and size information.
	Stats Stats `json:"stats"`

	// CacheHit reports whether the result came from the cache.
	CacheHit bool `json:"cache_hit"`
}

// Stats contains run statistics.
type Stats struct {
	// Configs is the size of the configuration set.
	Configs int64 `json:"configs"`

	// Orbits is the number of orbits found.
	Orbits int `json:"orbits"`

	// Duration is the wall time of the run, including cache access.
	Duration time.Duration `json:"duration"`
}

// =============================================================================
// Validation Functions
// =============================================================================

// ValidateFormat checks that a drawing format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return errors.New(errors.ErrCodeInvalidInput, "invalid format: %q (must be one of: dot, svg)", format)
	}
	return nil
}

// CheckSize fails with TOO_LARGE when p has more than limit arrangements.
// A negative limit disables the check.
func CheckSize(p multiset.Partition, limit int64) error {
	if limit < 0 {
		return nil
	}
	if size := multiset.Multinomial(p); size.Cmp(big.NewInt(limit)) > 0 {
		return errors.New(errors.ErrCodeTooLarge,
			"partition %s has %s arrangements, limit is %d", p, size, limit)
	}
	return nil
}

// =============================================================================
// Options Methods
// =============================================================================

// ValidateAndSetDefaults checks every field and applies defaults.
// This method is idempotent - calling it multiple times has the same effect as calling it once.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	o.SetDefaults()
	if err := o.Partition.Validate(); err != nil {
		return err
	}
	if err := o.Group.Validate(); err != nil {
		return err
	}
	if err := o.Output.Validate(); err != nil {
		return err
	}
	o.validated = true
	return nil
}

// SetDefaults fills empty fields with their defaults.
func (o *Options) SetDefaults() {
	if o.Group == "" {
		o.Group = DefaultGroup
	}
	if o.Output == "" {
		o.Output = DefaultOutput
	}
	if o.MaxConfigs == 0 {
		o.MaxConfigs = DefaultMaxConfigs
	}
}

// WantsCosets reports whether the output mode needs the orbits recorded.
func (o *Options) WantsCosets() bool {
	return o.Output != necklace.OutputNum
}
