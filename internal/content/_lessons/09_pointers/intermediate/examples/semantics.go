// Value slices vs pointer slices, and nil receivers with meaning.
package main

import "fmt"

type user struct {
	Name   string
	Visits int
}

// A nil *list is a valid empty list
type list struct {
	head *node
}

type node struct {
	val  int
	next *node
}

func (l *list) Len() int {
	if l == nil {
		return 0
	}
	n := 0
	for c := l.head; c != nil; c = c.next {
		n++
	}
	return n
}

func main() {
	// []user: range copies elements, mutate via index
	vals := []user{{Name: "a"}, {Name: "b"}}
	for _, u := range vals {
		u.Visits++ // lost: u is a copy
	}
	fmt.Printf("value slice after range:  %+v\n", vals)
	for i := range vals {
		vals[i].Visits++
	}
	fmt.Printf("value slice after index:  %+v\n", vals)

	// []*user: elements are shared identities
	ptrs := []*user{{Name: "a"}, {Name: "b"}}
	for _, u := range ptrs {
		u.Visits++ // sticks: u points at the element
	}
	fmt.Printf("ptr slice:   %+v %+v\n", *ptrs[0], *ptrs[1])

	// Pointer equality is identity
	a, b := &user{}, &user{}
	fmt.Printf("a == b: %v, a == a: %v\n", a == b, a == a)

	// Calling a method on nil works when the method allows it
	var empty *list
	fmt.Printf("nil list len: %d\n", empty.Len())

	full := &list{head: &node{1, &node{2, &node{3, nil}}}}
	fmt.Printf("full list len: %d\n", full.Len())
}
