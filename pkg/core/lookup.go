package core

import (
	"regexp"
	"strings"
)

// MatchTitles returns every title the query matches, case-insensitively,
// keeping the order of titles. The query is tried as a regular expression
// first; a query that does not compile is matched as a literal substring.
func MatchTitles(titles []string, query string) []string {
	re, err := regexp.Compile("(?i)" + query)
	if err != nil {
		re = regexp.MustCompile("(?i)" + regexp.QuoteMeta(query))
	}

	matches := []string{}
	for _, title := range titles {
		if re.MatchString(title) {
			matches = append(matches, title)
		}
	}
	return matches
}

// TitleTaken reports whether candidate equals any title under case folding.
func TitleTaken(titles []string, candidate string) bool {
	for _, title := range titles {
		if strings.EqualFold(title, candidate) {
			return true
		}
	}
	return false
}

// PickTitle chooses uniformly among titles other than excluding.
// A single title is returned even when it equals excluding.
// intn must return a value in [0, n).
func PickTitle(titles []string, excluding string, intn func(n int) int) (string, error) {
	switch len(titles) {
	case 0:
		return "", ErrEmptyStore
	case 1:
		return titles[0], nil
	}

	candidates := make([]string, 0, len(titles))
	for _, title := range titles {
		if title != excluding {
			candidates = append(candidates, title)
		}
	}
	return candidates[intn(len(candidates))], nil
}
