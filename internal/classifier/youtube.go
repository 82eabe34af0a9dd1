package classifier

import "regexp"

// youtubeRule extracts an 11-character video id from the known YouTube URL
// forms and rewrites to the canonical embed URL.
type youtubeRule struct {
	// Ordered: watch/short-link/shorts marker first, then an already
	// embedded URL, then the youtu.be shortener.
	patterns []*regexp.Regexp
}

func newYouTubeRule() *youtubeRule {
	return &youtubeRule{
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`(?:v=|be/|shorts/)([\w-]{11})`),
			regexp.MustCompile(`youtube\.com/embed/([\w-]{11})`),
			regexp.MustCompile(`youtu\.be/([\w-]{11})`),
		},
	}
}

func (r *youtubeRule) CanHandle(rawURL string) bool {
	for _, p := range r.patterns {
		if p.MatchString(rawURL) {
			return true
		}
	}
	return false
}

func (r *youtubeRule) Resolve(rawURL string) Result {
	for _, p := range r.patterns {
		if m := p.FindStringSubmatch(rawURL); m != nil {
			return Result{
				EmbedURL: "https://www.youtube.com/embed/" + m[1],
				Platform: PlatformYouTube,
			}
		}
	}
	return Result{EmbedURL: rawURL, Platform: PlatformYouTube}
}
