// The stateFn pattern: each state is a function returning the next
// state, driven by a trivial loop. Scans key=value pairs from a line.
package main

import "fmt"

type scanner struct {
	input string
	pos   int
	start int
	pairs map[string]string
	key   string
}

// stateFn consumes input and names its successor; nil means stop.
type stateFn func(*scanner) stateFn

func (s *scanner) run() {
	for st := scanKey; st != nil; {
		st = st(s)
	}
}

func scanKey(s *scanner) stateFn {
	s.start = s.pos
	for s.pos < len(s.input) {
		if s.input[s.pos] == '=' {
			s.key = s.input[s.start:s.pos]
			s.pos++
			return scanValue
		}
		s.pos++
	}
	return nil // trailing bare word: ignore
}

func scanValue(s *scanner) stateFn {
	s.start = s.pos
	for s.pos < len(s.input) && s.input[s.pos] != ' ' {
		s.pos++
	}
	s.pairs[s.key] = s.input[s.start:s.pos]
	return scanSpace
}

func scanSpace(s *scanner) stateFn {
	for s.pos < len(s.input) && s.input[s.pos] == ' ' {
		s.pos++
	}
	if s.pos >= len(s.input) {
		return nil
	}
	return scanKey
}

func main() {
	s := &scanner{
		input: "host=db1   port=5432 mode=verify-full region=eu",
		pairs: map[string]string{},
	}
	s.run()

	for _, k := range []string{"host", "port", "mode", "region"} {
		fmt.Printf("%-8s = %s\n", k, s.pairs[k])
	}
	fmt.Println("pairs scanned:", len(s.pairs))
}
