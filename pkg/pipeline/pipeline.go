// Package pipeline provides the parse → layout → render pipeline behind the
// displaytree CLI.
//
// # Architecture
//
// The pipeline consists of three stages:
//
//  1. Parse: Decode a JSON or TOML tree document into a [tree.Node]
//  2. Layout: Run the upward and downward metric passes
//  3. Render: Produce each requested output format (text, dot, svg, json, toml)
//
// Rendered artifacts are cached by a hash of the input document together
// with every option that changes their bytes.
//
// # Usage
//
//	runner := pipeline.NewRunner(cache, logger)
//	result, err := runner.Execute(ctx, pipeline.Options{
//	    Path:    "tree.json",
//	    Formats: []string{"text", "svg"},
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(string(result.Artifacts["text"]))
package pipeline

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/displaytree/pkg/cache"
	"github.com/matzehuels/displaytree/pkg/errors"
	dtio "github.com/matzehuels/displaytree/pkg/io"
	"github.com/matzehuels/displaytree/pkg/tree"
)

// =============================================================================
// Default Values - Single Source of Truth for CLI and Library Callers
// =============================================================================

const (
	// DefaultPadding is the sibling gap for nodes that don't set their own.
	DefaultPadding = tree.DefaultPadding

	// DefaultFormat is the output format when none is requested.
	DefaultFormat = FormatText

	// DefaultInputFormat is assumed for stdin and for paths without a
	// recognised extension.
	DefaultInputFormat = dtio.FormatJSON
)

// DefaultBranches is the glyph triple for nodes that don't set their own.
var DefaultBranches = tree.DefaultBranches.String()

// Format constants for output formats.
const (
	FormatText = "text"
	FormatDOT  = "dot"
	FormatSVG  = "svg"
	FormatJSON = "json"
	FormatTOML = "toml"
)

// Formats lists every supported output format in display order.
var Formats = []string{FormatText, FormatDOT, FormatSVG, FormatJSON, FormatTOML}

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for one pipeline run.
type Options struct {
	// Input options. Input takes precedence over Path; Path is still used
	// to name the source in logs and to infer InputFormat.
	Path        string
	Input       []byte
	InputFormat string

	// Layout options. A nil Padding means DefaultPadding.
	Padding  *int
	Branches string

	// Render options
	Formats  []string
	Detailed bool // include metrics in dot/svg node labels
	Refresh  bool // ignore cached artifacts (results are still stored)

	// Runtime options
	Logger *log.Logger

	validated bool
	style     dtio.Style
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Tree is the parsed and laid-out tree.
	Tree *tree.Node

	// DocumentHash is the content hash of the input document.
	DocumentHash string

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	// Stats contains timing and size information.
	Stats Stats

	// CacheInfo tracks which artifacts came from the cache.
	CacheInfo CacheInfo
}

// Stats contains pipeline execution statistics.
type Stats struct {
	NodeCount  int
	Height     int
	Width      int
	ParseTime  time.Duration
	LayoutTime time.Duration
	RenderTime time.Duration
}

// CacheInfo tracks cache hits for the render stage.
type CacheInfo struct {
	Hits      []string // formats served from the cache
	RenderHit bool     // whether every artifact came from the cache
}

// =============================================================================
// Validation Functions
// =============================================================================

// ValidateFormat checks that an output format is supported.
func ValidateFormat(format string) error {
	return errors.ValidateFormat(format, Formats...)
}

// ValidateFormats checks that all formats are supported.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// =============================================================================
// Options Methods
// =============================================================================

// ValidateAndSetDefaults checks the options and fills in defaults.
// This method is idempotent - calling it multiple times has the same effect as calling it once.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if o.Input == nil && o.Path == "" {
		return errors.New(errors.ErrCodeInvalidInput, "path or input is required")
	}
	if o.InputFormat == "" {
		o.InputFormat = DefaultInputFormat
		if o.Path != "" && o.Path != "-" {
			if f, err := dtio.FormatFromPath(o.Path); err == nil {
				o.InputFormat = f
			}
		}
	}
	if err := errors.ValidateFormat(o.InputFormat, dtio.Formats...); err != nil {
		return err
	}

	if len(o.Formats) == 0 {
		o.Formats = []string{DefaultFormat}
	}
	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}

	if o.Padding == nil {
		p := DefaultPadding
		o.Padding = &p
	}
	if o.Branches == "" {
		o.Branches = DefaultBranches
	}
	branches, err := tree.ParseBranches(o.Branches)
	if err != nil {
		return err
	}
	if err := errors.ValidatePadding(*o.Padding); err != nil {
		return err
	}
	o.style = dtio.Style{Padding: *o.Padding, Branches: branches}

	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	o.validated = true
	return nil
}

// Style returns the document defaults derived from Padding and Branches.
// Only meaningful after ValidateAndSetDefaults.
func (o *Options) Style() dtio.Style {
	return o.style
}

// Source names the input for logs and hooks.
func (o *Options) Source() string {
	if o.Path != "" {
		return o.Path
	}
	return "-"
}

// ArtifactKeyOpts returns cache key options for one output format.
func (o *Options) ArtifactKeyOpts(format string) cache.ArtifactKeyOpts {
	opts := cache.ArtifactKeyOpts{
		Format:   format,
		Padding:  o.style.Padding,
		Branches: o.style.Branches.String(),
	}
	if format == FormatDOT || format == FormatSVG {
		opts.Detailed = o.Detailed
	}
	return opts
}

// documentHash hashes the input together with its format, so the same
// bytes read as JSON and as TOML never share cache entries.
func documentHash(format string, input []byte) string {
	return cache.Hash(append([]byte(fmt.Sprintf("%s\x00", format)), input...))
}
