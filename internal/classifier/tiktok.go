package classifier

import (
	"net/url"
	"regexp"
	"strings"
)

// cdnRedirectFragment marks TikTok CDN redirect links that carry no video
// id; those are wrapped whole into the embed proxy instead.
const cdnRedirectFragment = "bytedance.map.fastly.net"

// tiktokRule handles tiktok.com links: profile-video, /v/ and /embed/ paths
// carry a numeric id and get the official embed URL; CDN redirect links are
// proxy-wrapped; anything else passes through.
type tiktokRule struct {
	videoID *regexp.Regexp
}

func newTikTokRule() *tiktokRule {
	return &tiktokRule{
		videoID: regexp.MustCompile(`tiktok\.com/(?:@[\w.-]+/video/|v/|embed/)(\d+)`),
	}
}

func (r *tiktokRule) CanHandle(rawURL string) bool {
	return strings.Contains(rawURL, "tiktok.com")
}

func (r *tiktokRule) Resolve(rawURL string) Result {
	if m := r.videoID.FindStringSubmatch(rawURL); m != nil {
		return Result{
			EmbedURL: "https://www.tiktok.com/embed/v2/" + m[1],
			Platform: PlatformTikTok,
		}
	}

	if strings.Contains(rawURL, cdnRedirectFragment) {
		// The whole original URL becomes a query value, so its own
		// '='/'&'/'/' characters must be percent-encoded. QueryEscape
		// emits '+' for space; the proxy expects %20.
		encoded := strings.ReplaceAll(url.QueryEscape(rawURL), "+", "%20")
		return Result{
			EmbedURL: "https://www.tiktok.com/embed?url=" + encoded,
			Platform: PlatformTikTok,
		}
	}

	return Result{EmbedURL: rawURL, Platform: PlatformTikTok}
}
