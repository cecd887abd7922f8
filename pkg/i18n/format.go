package i18n

import (
	"fmt"
	"log/slog"
	"regexp"
	"strconv"
)

var placeholderRegex = regexp.MustCompile(`#(\d{1,2})#`)

// Format replaces the numbered placeholders #1#, #2#, ... in template with
// args in order. A placeholder without a corresponding argument is left as
// is and reported to logger. An empty template yields an empty string.
func Format(logger *slog.Logger, template string, args ...any) string {
	if template == "" {
		return ""
	}
	return placeholderRegex.ReplaceAllStringFunc(template, func(match string) string {
		n, err := strconv.Atoi(match[1 : len(match)-1])
		if err != nil || n < 1 || n > len(args) {
			if logger != nil {
				logger.Warn("replacement for placeholder was not found",
					slog.String("placeholder", match),
					slog.Int("args", len(args)),
				)
			}
			return match
		}
		if args[n-1] == nil {
			return ""
		}
		return fmt.Sprint(args[n-1])
	})
}
