package classifier

import (
	"regexp"
	"strings"
)

// instagramRule rewrites post and reel links to the captioned embed page;
// other instagram.com links pass through.
type instagramRule struct {
	postID *regexp.Regexp
}

func newInstagramRule() *instagramRule {
	return &instagramRule{
		postID: regexp.MustCompile(`instagram\.com/(?:p|reels)/([^/?]+)`),
	}
}

func (r *instagramRule) CanHandle(rawURL string) bool {
	return strings.Contains(rawURL, "instagram.com")
}

func (r *instagramRule) Resolve(rawURL string) Result {
	if m := r.postID.FindStringSubmatch(rawURL); m != nil {
		return Result{
			EmbedURL: "https://www.instagram.com/p/" + m[1] + "/embed/captioned/",
			Platform: PlatformInstagram,
		}
	}
	return Result{EmbedURL: rawURL, Platform: PlatformInstagram}
}
