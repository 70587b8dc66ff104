// Struct values: literals, copies, and pointer mutation.
package main

import "fmt"

type User struct {
	Name  string
	Email string
	Age   int
}

// Value receiver parameter: the callee gets a copy
func birthdayCopy(u User) {
	u.Age++
}

// Pointer parameter: mutation reaches the caller
func birthday(u *User) {
	u.Age++
}

func main() {
	// Field-name literal: order-independent, partial
	u := User{Name: "alice", Email: "a@example.com", Age: 30}
	fmt.Printf("user: %+v\n", u)

	// Zero value: every field at its zero
	var empty User
	fmt.Printf("zero: %+v\n", empty)

	// Assignment copies all fields
	v := u
	v.Name = "bob"
	fmt.Printf("u.Name=%s v.Name=%s\n", u.Name, v.Name)

	// Copy in, no effect; pointer in, effect
	birthdayCopy(u)
	fmt.Printf("after copy call:    %d\n", u.Age)
	birthday(&u)
	fmt.Printf("after pointer call: %d\n", u.Age)

	// The dot auto-dereferences pointers: no -> operator
	p := &User{Name: "carol", Age: 40}
	p.Age++
	fmt.Printf("via pointer: %s is %d\n", p.Name, p.Age)

	// Comparable structs support == field by field
	a := User{Name: "x", Age: 1}
	b := User{Name: "x", Age: 1}
	fmt.Printf("a == b: %v\n", a == b)

	// Anonymous struct for a one-off shape
	point := struct{ X, Y int }{3, 4}
	fmt.Printf("point: %+v\n", point)
}
