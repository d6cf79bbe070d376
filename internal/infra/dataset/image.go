package dataset

import (
	"net/url"
	"regexp"
	"strings"
)

// Image values arrive in three shapes across dataset revisions: a bare URL
// string, a list of candidates, or an object keyed by one of several common
// names. ImageRef makes that duck typing explicit: parsing produces a tagged
// variant, and resolution walks it with a fixed priority order so the
// recursion terminates and stays testable.
type ImageRef interface {
	// Resolve returns the first usable image URL in the reference, or ""
	// when nothing usable is found.
	Resolve() string
}

// keyedRefPriority is the fixed key order tried inside object-shaped values.
var keyedRefPriority = []string{"url", "src", "imageUrl", "image_url", "image"}

// naverPlacePattern recognizes Naver map/place page links. Upstream sheets
// frequently paste a place link into an image column; those are rejected
// because a place page is not an image.
var naverPlacePattern = regexp.MustCompile(`(?i)(^https?://(map|place)\.naver\.com)|(\.naver\.com/place)`)

type directRef string

func (r directRef) Resolve() string {
	return normalizeImageURL(string(r))
}

type listRef []ImageRef

func (r listRef) Resolve() string {
	for _, ref := range r {
		if resolved := ref.Resolve(); resolved != "" {
			return resolved
		}
	}

	return ""
}

type keyedRef map[string]ImageRef

func (r keyedRef) Resolve() string {
	for _, key := range keyedRefPriority {
		ref, ok := r[key]
		if !ok {
			continue
		}
		if resolved := ref.Resolve(); resolved != "" {
			return resolved
		}
	}

	return ""
}

type emptyRef struct{}

func (emptyRef) Resolve() string { return "" }

// ParseImageRef converts a raw dataset value into a tagged image reference.
// Unknown shapes parse to an empty reference rather than an error.
func ParseImageRef(value any) ImageRef {
	switch v := value.(type) {
	case string:
		return directRef(v)
	case []any:
		refs := make(listRef, 0, len(v))
		for _, entry := range v {
			refs = append(refs, ParseImageRef(entry))
		}

		return refs
	case []string:
		refs := make(listRef, 0, len(v))
		for _, entry := range v {
			refs = append(refs, directRef(entry))
		}

		return refs
	case map[string]any:
		keyed := make(keyedRef, len(v))
		for _, key := range keyedRefPriority {
			if entry, ok := v[key]; ok {
				keyed[key] = ParseImageRef(entry)
			}
		}

		return keyed
	default:
		return emptyRef{}
	}
}

// ResolveImageURL parses and resolves a raw image value in one step.
func ResolveImageURL(value any) string {
	return ParseImageRef(value).Resolve()
}

// normalizeImageURL validates a candidate image URL. Map/place links and
// values that fail URL parsing are rejected; protocol-relative URLs are
// rewritten to explicit HTTPS.
func normalizeImageURL(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}
	if naverPlacePattern.MatchString(trimmed) {
		return ""
	}
	if strings.HasPrefix(trimmed, "//") {
		trimmed = "https:" + trimmed
	}
	if _, err := url.Parse(trimmed); err != nil {
		return ""
	}

	return trimmed
}
