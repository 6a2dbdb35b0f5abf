package core

import (
	"errors"
	"strconv"
	"strings"
	"unicode"
)

// ID addresses a quiz record. Values only come from ValidateID or the repository.
type ID int64

func (id ID) String() string {
	return strconv.FormatInt(int64(id), 10)
}

// ValidateID parses a raw <id> argument. An empty raw value means the
// argument was not given. Parsing takes the leading integer and ignores any
// trailing content, so "12abc" is 12 and "3.7" is 3. Integers out of the
// int64 range saturate to its bounds. Existence is not checked here.
func ValidateID(raw string) (ID, error) {
	if raw == "" {
		return 0, ErrMissingParameter("id")
	}

	s := strings.TrimLeftFunc(raw, unicode.IsSpace)
	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	digits := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digits {
		return 0, ErrNotANumber("id", nil)
	}

	n, err := strconv.ParseInt(s[:end], 10, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, ErrNotANumber("id", err)
	}
	return ID(n), nil
}
