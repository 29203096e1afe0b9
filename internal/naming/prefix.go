package naming

import "regexp"

// DateLayout is the Go time layout for the filename prefix date.
const DateLayout = "2006-01-02"

// datePrefixRe matches a "YYYY-MM-DD " prefix: 10 date characters plus
// one space. Only this exact shape is ever stripped.
var datePrefixRe = regexp.MustCompile(`^\d{4}-\d{2}-\d{2} `)

// HasDatePrefix reports whether name starts with a "YYYY-MM-DD " prefix.
func HasDatePrefix(name string) bool {
	return datePrefixRe.MatchString(name)
}

// StripDatePrefix removes a leading "YYYY-MM-DD " prefix from name.
// Names without the prefix are returned unchanged.
func StripDatePrefix(name string) string {
	return datePrefixRe.ReplaceAllString(name, "")
}

// ApplyDatePrefix prepends "date " to name. date must already be in
// DateLayout form.
func ApplyDatePrefix(date, name string) string {
	return date + " " + name
}
