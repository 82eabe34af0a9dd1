package classifier

// Platform labels stored alongside each record. The last two are
// user-facing Arabic strings, matching what the submission site displays.
const (
	PlatformYouTube   = "YouTube"
	PlatformTikTok    = "TikTok"
	PlatformInstagram = "Instagram"
	PlatformTwitter   = "Twitter/X"
	PlatformDirect    = "فيديو مباشر"
	PlatformExternal  = "رابط خارجي"
)

// Result is the outcome of classifying a submitted link: the URL to place
// in the page's embedded player and a human-readable platform label.
type Result struct {
	EmbedURL string `json:"embed_url"`
	Platform string `json:"platform"`
}

// rule recognizes one platform's URL family and rewrites a matching URL to
// an embeddable form. Resolve is only called after CanHandle returns true.
type rule interface {
	// CanHandle reports whether this rule claims the URL.
	CanHandle(rawURL string) bool

	// Resolve maps the URL to its embed form and platform label.
	Resolve(rawURL string) Result
}

// Classifier maps raw submitted URLs to embed URLs through an ordered rule
// list. First matching rule wins; within a rule the more specific pattern
// is tried first.
type Classifier struct {
	rules []rule
}

// New creates a classifier with the built-in platform rules.
//
// Rules match on substrings and patterns over the raw string, not on a
// parsed host: a URL carrying a platform domain anywhere in the string is
// claimed by that platform. That is intentionally permissive; switching to
// strict host parsing would reject inputs the form currently accepts.
func New() *Classifier {
	return &Classifier{
		rules: []rule{
			newYouTubeRule(),
			newTikTokRule(),
			newInstagramRule(),
			newTwitterRule(),
			directFileRule{},
		},
	}
}

// Classify maps a raw URL to its embed URL and platform label. It is total:
// input no rule recognizes passes through unchanged with the external-link
// label. It never fails and performs no I/O.
func (c *Classifier) Classify(rawURL string) Result {
	for _, r := range c.rules {
		if r.CanHandle(rawURL) {
			return r.Resolve(rawURL)
		}
	}
	return Result{EmbedURL: rawURL, Platform: PlatformExternal}
}
