package doc

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	dateRe = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}([Tt ]\d{2}:\d{2}:\d{2}(\.\d+)?([Zz]|[+-]\d{2}:\d{2})?)?$`)
	timeRe = regexp.MustCompile(`^\d{2}:\d{2}:\d{2}(\.\d+)?$`)
)

// Classify determines the value type of a non-string scalar's source text.
// Strings are recognized by their delimiter before this is consulted.
// Returns InvalidType when the text matches no TOML scalar form.
func Classify(raw string) Type {
	switch raw {
	case "true", "false":
		return BoolType
	case "inf", "+inf", "-inf", "nan", "+nan", "-nan":
		return FloatType
	}
	if dateRe.MatchString(raw) || timeRe.MatchString(raw) {
		return DatetimeType
	}
	plain := strings.ReplaceAll(raw, "_", "")
	if _, err := strconv.ParseInt(plain, 0, 64); err == nil {
		return IntegerType
	}
	if _, err := strconv.ParseUint(plain, 0, 64); err == nil {
		return IntegerType
	}
	if _, err := strconv.ParseFloat(plain, 64); err == nil {
		return FloatType
	}
	return InvalidType
}
