package contentgap

// Tag is a coarse part-of-speech category.
type Tag string

// Coarse part-of-speech tags. Anything outside the first three collapses
// into TagOther.
const (
	TagNoun       Tag = "noun"
	TagProperNoun Tag = "propn"
	TagVerb       Tag = "verb"
	TagOther      Tag = "other"
)

// TaggedToken is one linguistic token with its coarse part-of-speech tag.
// Tagged tokens are ephemeral; they never outlive the analysis step that
// consumes them.
type TaggedToken struct {
	Text string
	Tag  Tag
}

// Tagger assigns coarse part-of-speech tags to the tokens of a text.
// Implementations must be deterministic for identical input and safe for
// concurrent use: the underlying language model is constructed once at
// process start and read-only thereafter.
type Tagger interface {
	Tag(text string) ([]TaggedToken, error)
}
