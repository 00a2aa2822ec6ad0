// Package slug derives URL identifiers for articles and finds free ones.
package slug

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

const (
	// MaxAttempts bounds how many suffixes are probed for a single base.
	MaxAttempts = 1000
	// MaxLen is the slug column size, in characters.
	MaxLen = 255
	// maxDerivedLen caps slugs built from a title, leaving room for a suffix.
	maxDerivedLen = 200
)

var ErrExhausted = errors.New("no free slug found")

// Slugify lower-cases s and keeps only letters, digits and combining marks of
// any script, joining words with single hyphens. Accents on Latin letters are
// dropped ("Café" becomes "cafe"); marks on other scripts are kept since they
// carry vowels. Other punctuation is removed without adding a separator.
func Slugify(s string) string {
	var b strings.Builder
	pendingSep := false
	prevLatin := false

	for _, r := range norm.NFKD.String(s) {
		switch {
		case unicode.IsSpace(r) || r == '-':
			pendingSep = b.Len() > 0
			prevLatin = false
		case unicode.In(r, unicode.Mn, unicode.Mc, unicode.Me):
			if prevLatin || b.Len() == 0 {
				continue
			}
			b.WriteRune(r)
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			if pendingSep {
				b.WriteByte('-')
				pendingSep = false
			}
			b.WriteRune(unicode.ToLower(r))
			prevLatin = unicode.Is(unicode.Latin, r)
		}
	}

	return truncateAtHyphen(norm.NFC.String(b.String()), maxDerivedLen)
}

// truncateAtHyphen shortens s to at most max runes, preferring to cut at the
// last word boundary.
func truncateAtHyphen(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	cut := string(r[:max])
	if r[max] != '-' {
		if i := strings.LastIndexByte(cut, '-'); i > 0 {
			cut = cut[:i]
		}
	}
	return strings.TrimRight(cut, "-")
}

// truncate shortens s to at most max runes.
func truncate(s string, max int) string {
	if utf8.RuneCountInString(s) <= max {
		return s
	}
	return string([]rune(s)[:max])
}

// Base picks the slug stem for an article. A caller-supplied candidate is used
// as is, cut to MaxLen, unless it is blank or only hyphens, in which case the
// title is slugified. fallback is returned when neither yields anything.
func Base(candidate, title, fallback string) string {
	if c := strings.TrimSpace(candidate); strings.Trim(c, "-") != "" {
		return truncate(c, MaxLen)
	}
	if s := Slugify(title); s != "" {
		return s
	}
	return fallback
}

// Candidate returns base for n == 0 and base-n otherwise. The base is
// shortened when needed so the result never exceeds MaxLen.
func Candidate(base string, n int) string {
	if n == 0 {
		return truncate(base, MaxLen)
	}
	suffix := "-" + strconv.Itoa(n)
	return truncate(base, MaxLen-len(suffix)) + suffix
}

type Checker interface {
	SlugExists(ctx context.Context, slug, excludeID string) (bool, error)
}

type Assigner struct {
	checker     Checker
	maxAttempts int
}

func NewAssigner(checker Checker) *Assigner {
	return &Assigner{checker: checker, maxAttempts: MaxAttempts}
}

// Next probes Candidate(base, n) for n = from, from+1, ... and returns the
// first one not used by any article other than excludeID, together with n.
// The store's unique index stays authoritative: callers that lose a race on
// insert resume from n+1.
func (a *Assigner) Next(ctx context.Context, base, excludeID string, from int) (string, int, error) {
	for n := from; n < a.maxAttempts; n++ {
		candidate := Candidate(base, n)
		taken, err := a.checker.SlugExists(ctx, candidate, excludeID)
		if err != nil {
			return "", n, err
		}
		if !taken {
			return candidate, n, nil
		}
	}
	return "", a.maxAttempts, fmt.Errorf("%w for %q after %d attempts", ErrExhausted, base, a.maxAttempts)
}
