package services

import (
	"regexp"
	"strconv"
	"strings"

	"deliverymanager/internal/core/domain/model/order"
)

// productEntryPattern matches one product entry at the start of a token:
// a code, optionally followed by a quantity introduced by ":", "x", a space,
// or nothing. The quantity sign is captured so over-corrected input like
// "CA x -2" reads as a recognizable entry instead of a bare code.
var productEntryPattern = regexp.MustCompile(`^([A-Za-z0-9]+)\s*(?:[:xX]?\s*(-?\d+))?`)

// entrySeparatorPattern splits the product field into entries on commas or
// semicolons.
var entrySeparatorPattern = regexp.MustCompile(`[;,]`)

// ParseProductField converts one free-text Product(s) string into order lines.
//
// Grammar, informally: entries separated by comma or semicolon; each entry is
// "CODE", "CODE x N", "CODE:N", or "CODE N" with N a positive integer and an
// omitted N defaulting to 1. Whitespace around separators is ignored and codes
// are uppercased.
//
// Parsing is deliberately tolerant:
//   - a code the catalog does not know is still emitted (resolution is not the
//     parser's concern; downstream pricing and flagging handle it)
//   - a token that fits no form is treated as a bare code with quantity 1
//   - a non-positive quantity is clamped to 1, the smallest a line allows
//   - empty or blank input yields no lines and no error
func ParseProductField(text string) []order.Line {
	if strings.TrimSpace(text) == "" {
		return nil
	}

	var lines []order.Line
	for _, entry := range entrySeparatorPattern.Split(text, -1) {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}

		code, quantity := parseEntry(entry)
		line, err := order.NewLine(code, quantity)
		if err != nil {
			// cannot happen for a non-empty entry with a clamped quantity
			continue
		}
		lines = append(lines, line)
	}
	return lines
}

// parseEntry reads one entry into a code and quantity, falling back to the
// whole entry as a bare code with quantity 1 when it fits no form.
func parseEntry(entry string) (string, int) {
	m := productEntryPattern.FindStringSubmatch(entry)
	if m == nil {
		return strings.ToUpper(entry), 1
	}

	code := strings.ToUpper(m[1])
	quantity := 1
	if m[2] != "" {
		n, err := strconv.Atoi(m[2])
		if err == nil {
			quantity = n
		}
	}
	if quantity < 1 {
		quantity = 1
	}
	return code, quantity
}
