package classifier

import (
	"regexp"
	"strings"
)

// twitterRule sends status links through the twitframe embed viewer, which
// renders tweets from a canonical status URL passed as a query parameter.
// Non-status twitter.com/x.com links pass through.
type twitterRule struct {
	statusID *regexp.Regexp
}

func newTwitterRule() *twitterRule {
	return &twitterRule{
		statusID: regexp.MustCompile(`(?:twitter\.com|x\.com)/(?:\w+)/status/(\d+)`),
	}
}

func (r *twitterRule) CanHandle(rawURL string) bool {
	return strings.Contains(rawURL, "twitter.com") || strings.Contains(rawURL, "x.com")
}

func (r *twitterRule) Resolve(rawURL string) Result {
	if m := r.statusID.FindStringSubmatch(rawURL); m != nil {
		return Result{
			EmbedURL: "https://twitframe.com/show?url=https://twitter.com/i/status/" + m[1],
			Platform: PlatformTwitter,
		}
	}
	return Result{EmbedURL: rawURL, Platform: PlatformTwitter}
}
