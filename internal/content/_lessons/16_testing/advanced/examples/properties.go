// Property checks: the assertions fuzzing automates.
package main

import (
	"fmt"
	"strings"
)

// encode escapes separators; decode must invert it exactly
func encode(fields []string) string {
	escaped := make([]string, len(fields))
	for i, f := range fields {
		f = strings.ReplaceAll(f, `\`, `\\`)
		f = strings.ReplaceAll(f, `,`, `\,`)
		escaped[i] = f
	}
	return strings.Join(escaped, ",")
}

func decode(s string) []string {
	var fields []string
	var cur strings.Builder
	escaped := false
	for _, r := range s {
		switch {
		case escaped:
			cur.WriteRune(r)
			escaped = false
		case r == '\\':
			escaped = true
		case r == ',':
			fields = append(fields, cur.String())
			cur.Reset()
		default:
			cur.WriteRune(r)
		}
	}
	fields = append(fields, cur.String())
	return fields
}

func equal(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func main() {
	// Seed-corpus style cases, including the adversarial shapes
	// a fuzzer would discover
	cases := [][]string{
		{"plain", "fields"},
		{"with,comma", "x"},
		{`back\slash`, "y"},
		{`both\,together`},
		{"", ""},
		{`\`},
		{`,`},
		{`\,\\,`},
	}

	failures := 0
	for _, fields := range cases {
		wire := encode(fields)
		back := decode(wire)
		// The property: decode(encode(x)) == x for every x
		if !equal(fields, back) {
			fmt.Printf("FAIL round-trip %q -> %q -> %q\n", fields, wire, back)
			failures++
			continue
		}
		fmt.Printf("ok   %-24q wire=%q\n", fields, wire)
	}

	if failures == 0 {
		fmt.Printf("round-trip property held for %d cases\n", len(cases))
	}
}
