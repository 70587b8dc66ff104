// Dynamic method dispatch and its cost-conscious alternative.
package main

import (
	"fmt"
	"reflect"
	"strings"
)

type calculator struct {
	acc float64
}

func (c *calculator) Add(x float64) float64 {
	c.acc += x
	return c.acc
}

func (c *calculator) Mul(x float64) float64 {
	c.acc *= x
	return c.acc
}

func (c *calculator) Reset() float64 {
	c.acc = 0
	return 0
}

func main() {
	c := &calculator{}

	// MethodByName: string-driven dispatch, checked at runtime
	script := []struct {
		op  string
		arg float64
	}{
		{"Add", 5},
		{"Mul", 3},
		{"Add", 1},
	}

	cv := reflect.ValueOf(c)
	for _, step := range script {
		m := cv.MethodByName(step.op)
		if !m.IsValid() {
			fmt.Printf("unknown op %q\n", step.op)
			continue
		}
		var args []reflect.Value
		if m.Type().NumIn() == 1 {
			args = []reflect.Value{reflect.ValueOf(step.arg)}
		}
		out := m.Call(args)
		fmt.Printf("%s(%v) -> %.1f\n", step.op, step.arg, out[0].Float())
	}

	// Enumerate the method set reflectively
	t := reflect.TypeOf(c)
	names := make([]string, 0, t.NumMethod())
	for i := 0; i < t.NumMethod(); i++ {
		names = append(names, t.Method(i).Name)
	}
	fmt.Printf("methods: %s\n", strings.Join(names, ", "))

	// The hot-path alternative: build the dispatch table once,
	// pay reflection cost zero times per call
	c.Reset()
	table := map[string]func(float64) float64{
		"Add": c.Add,
		"Mul": c.Mul,
	}
	for _, step := range script {
		if fn, ok := table[step.op]; ok {
			fmt.Printf("table %s(%v) -> %.1f\n", step.op, step.arg, fn(step.arg))
		}
	}
}
