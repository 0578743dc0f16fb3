// Package expand implements replacement templates and match-driven splitting
// for engines whose libraries do not provide them natively.
//
// Templates follow the Go regexp.Expand syntax, which is also the syntax of
// the Rust regex crate: $1 or ${1} for a numbered group, $name or ${name} for
// a named group and $$ for a literal dollar sign. A name is taken to be as
// long as possible, so $1x is ${1x}, not ${1}x. References to missing or
// non-participating groups expand to nothing.
package expand

import "strings"

// Append appends template to dst with group references replaced by the text
// of the corresponding groups of src. match holds index pairs as returned by
// FindStringSubmatchIndex; names holds the group names, names[0] being "".
func Append(dst []byte, template, src string, match []int, names []string) []byte {
	for len(template) > 0 {
		before, after, ok := strings.Cut(template, "$")
		if !ok {
			break
		}
		dst = append(dst, before...)
		template = after
		if template != "" && template[0] == '$' {
			// $$ -> $
			dst = append(dst, '$')
			template = template[1:]
			continue
		}
		name, num, rest, ok := extract(template)
		if !ok {
			// Malformed; treat $ as literal.
			dst = append(dst, '$')
			continue
		}
		template = rest
		if num >= 0 {
			if 2*num+1 < len(match) && match[2*num] >= 0 {
				dst = append(dst, src[match[2*num]:match[2*num+1]]...)
			}
			continue
		}
		for i, n := range names {
			if n == name && 2*i+1 < len(match) && match[2*i] >= 0 {
				dst = append(dst, src[match[2*i]:match[2*i+1]]...)
				break
			}
		}
	}
	return append(dst, template...)
}

// extract returns the name from a leading "name" or "{name}" in str.
// If it is a number, extract returns num set to that number; otherwise num = -1.
func extract(str string) (name string, num int, rest string, ok bool) {
	if str == "" {
		return
	}
	brace := false
	if str[0] == '{' {
		brace = true
		str = str[1:]
	}
	i := 0
	for i < len(str) && isNameByte(str[i]) {
		i++
	}
	if i == 0 {
		// empty name is not okay
		return
	}
	name = str[:i]
	if brace {
		if i >= len(str) || str[i] != '}' {
			// missing closing brace
			return
		}
		i++
	}

	num = 0
	for j := 0; j < len(name); j++ {
		if name[j] < '0' || '9' < name[j] || num >= 1e8 {
			num = -1
			break
		}
		num = num*10 + int(name[j]) - '0'
	}
	// Disallow leading zeros.
	if name[0] == '0' && len(name) > 1 {
		num = -1
	}

	rest = str[i:]
	ok = true
	return
}

func isNameByte(c byte) bool {
	return c == '_' || '0' <= c && c <= '9' || 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z'
}

// Replace returns a copy of src with every match in locs replaced by the
// expansion of template. locs must be ordered and non-overlapping.
func Replace(src, template string, names []string, locs [][]int) string {
	if len(locs) == 0 {
		return src
	}
	var dst []byte
	lastEnd := 0
	for _, loc := range locs {
		dst = append(dst, src[lastEnd:loc[0]]...)
		dst = Append(dst, template, src, loc, names)
		lastEnd = loc[1]
	}
	dst = append(dst, src[lastEnd:]...)
	return string(dst)
}

// Split slices s around the matches in locs, as regexp.Regexp.Split does.
// If n > 0 at most n substrings are returned, the last one being the unsplit
// remainder; otherwise all substrings are returned. An empty s yields a single
// empty substring.
func Split(s string, locs [][]int, n int) []string {
	if len(s) == 0 {
		return []string{""}
	}

	result := make([]string, 0, len(locs)+1)
	beg, end := 0, 0
	for _, loc := range locs {
		if n > 0 && len(result) == n-1 {
			break
		}
		end = loc[0]
		// An empty match at offset 0 yields no leading empty substring.
		if loc[1] != 0 {
			result = append(result, s[beg:end])
		}
		beg = loc[1]
	}
	if end != len(s) {
		result = append(result, s[beg:])
	}
	return result
}
