package page

import (
	"regexp"
	"strings"
)

// SlugPattern matches the characters a slug may contain: lowercase letters,
// digits, and hyphens. ValidSlug additionally rejects leading and trailing
// hyphens.
var SlugPattern = regexp.MustCompile(`^[a-z0-9-]+$`)

// Slugify derives a URL slug from a page title: lowercase the title, collapse
// every run of characters outside [a-z0-9] into a single hyphen, then strip
// leading and trailing hyphens. "Beranda Utama!" becomes "beranda-utama".
func Slugify(title string) string {
	lowered := strings.ToLower(title)

	var b strings.Builder
	b.Grow(len(lowered))
	pendingHyphen := false
	for _, r := range lowered {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			if pendingHyphen && b.Len() > 0 {
				b.WriteByte('-')
			}
			pendingHyphen = false
			b.WriteRune(r)
			continue
		}
		pendingHyphen = true
	}
	return b.String()
}

// ValidSlug reports whether raw is a well-formed slug: SlugPattern characters
// only, with no leading or trailing hyphen.
func ValidSlug(raw string) bool {
	if !SlugPattern.MatchString(raw) {
		return false
	}
	return !strings.HasPrefix(raw, "-") && !strings.HasSuffix(raw, "-")
}
