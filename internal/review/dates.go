package review

import "time"

const dateLayout = "2006-01-02"

// dateStrategy attempts to resolve a note's date from its frontmatter or
// filename. It reports false when it cannot.
type dateStrategy func(fm map[string]interface{}, filename string) (time.Time, bool)

// Resolution order: frontmatter date first, filename prefix second.
var dateStrategies = []dateStrategy{frontmatterDate, filenameDate}

// ResolveDate resolves a note's effective date by trying each strategy in
// order; the first success wins. It is a pure function with no filesystem
// access. A false return means the note has no resolvable date and is
// excluded from the review.
func ResolveDate(fm map[string]interface{}, filename string) (time.Time, bool) {
	for _, strategy := range dateStrategies {
		if d, ok := strategy(fm, filename); ok {
			return d, true
		}
	}
	return time.Time{}, false
}

// frontmatterDate reads the "date" key, accepting either a native YAML
// timestamp or a YYYY-MM-DD string.
func frontmatterDate(fm map[string]interface{}, _ string) (time.Time, bool) {
	if fm == nil {
		return time.Time{}, false
	}
	raw, ok := fm["date"]
	if !ok {
		return time.Time{}, false
	}
	switch v := raw.(type) {
	case time.Time:
		return time.Date(v.Year(), v.Month(), v.Day(), 0, 0, 0, 0, time.UTC), true
	case string:
		if d, err := time.Parse(dateLayout, v); err == nil {
			return d, true
		}
	}
	return time.Time{}, false
}

// filenameDate interprets the first 10 characters of the file name as a
// YYYY-MM-DD date.
func filenameDate(_ map[string]interface{}, filename string) (time.Time, bool) {
	if len(filename) < len(dateLayout) {
		return time.Time{}, false
	}
	d, err := time.Parse(dateLayout, filename[:len(dateLayout)])
	if err != nil {
		return time.Time{}, false
	}
	return d, true
}
