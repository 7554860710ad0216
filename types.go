package pinpoint

import (
	"github.com/jward/pinpoint/internal/locate"
	"github.com/jward/pinpoint/internal/match"
	"github.com/jward/pinpoint/internal/profile"
	"github.com/jward/pinpoint/internal/region"
	"github.com/jward/pinpoint/internal/store"
)

// Public type aliases for the internal pipeline types. These are Go type
// aliases (=), identical to the internal types at compile time; external
// consumers use these names and no conversion is needed.

type Span = match.Span
type Candidate = match.Candidate
type Query = locate.Query
type Region = region.Region
type Mode = region.Mode
type Kind = profile.Kind
type Profile = profile.Profile
type IndentationInfo = region.IndentationInfo
type Definition = store.Definition
type Filter = store.Filter

// Definition kinds.
const (
	KindFunction = profile.KindFunction
	KindClass    = profile.KindClass
)

// Insertion modes.
const (
	WholeDefinition = region.WholeDefinition
	BodyOnly        = region.BodyOnly
	Before          = region.Before
	After           = region.After
	TopOfBody       = region.TopOfBody
	BottomOfBody    = region.BottomOfBody
)

// Error taxonomy. All are terminal for the single query being processed and
// carry enough context to attribute the failure precisely.

type UnsupportedLanguageError = profile.UnsupportedLanguageError
type NotFoundError = locate.NotFoundError
type AmbiguousError = locate.AmbiguousError
type InvalidOrdinalError = locate.InvalidOrdinalError

// ParseMode converts a mode name ("whole", "body", "before", "after",
// "top", "bottom") to a Mode.
func ParseMode(name string) (Mode, error) {
	return region.ParseMode(name)
}

// SupportedLanguages returns the canonical names of all registered
// language profiles, sorted.
func SupportedLanguages() []string {
	return profile.Supported()
}

// LanguageForFile maps a file path to its canonical language name by
// extension. Returns ("", false) for unrecognized extensions.
func LanguageForFile(path string) (string, bool) {
	return profile.LanguageForFile(path)
}
