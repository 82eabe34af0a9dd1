package classifier

import "strings"

// videoExtensions are the file types the player element can render without
// any embed rewriting.
var videoExtensions = []string{".mp4", ".webm", ".mov", ".ogg"}

// directFileRule labels links pointing straight at a video file. The URL is
// used as-is.
type directFileRule struct{}

func (directFileRule) CanHandle(rawURL string) bool {
	for _, ext := range videoExtensions {
		if strings.HasSuffix(rawURL, ext) {
			return true
		}
	}
	return false
}

func (directFileRule) Resolve(rawURL string) Result {
	return Result{EmbedURL: rawURL, Platform: PlatformDirect}
}
