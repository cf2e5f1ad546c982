package model

import "strings"

func cutTrim(s, sep string) (string, string, bool) {
	before, after, found := strings.Cut(s, sep)

	return strings.TrimSpace(before), strings.TrimSpace(after), found
}
