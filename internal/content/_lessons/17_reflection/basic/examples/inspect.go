// TypeOf, ValueOf, and the Type vs Kind distinction.
package main

import (
	"fmt"
	"reflect"
)

type celsius float64

type user struct {
	Name string
	Age  int
}

func describe(x any) {
	t := reflect.TypeOf(x)
	v := reflect.ValueOf(x)
	fmt.Printf("value=%-12v type=%-12v kind=%v\n", v, t, t.Kind())
}

func main() {
	describe(3.4)
	describe("hello")
	describe(celsius(21.5)) // type celsius, kind float64
	describe([]int{1, 2})
	describe(map[string]int{"a": 1})
	describe(user{"alice", 30})

	// Kind tells generic code how to traverse; Type names identity
	c := celsius(100)
	t := reflect.TypeOf(c)
	fmt.Printf("Name=%s Kind=%s same-kind-as-float64=%v\n",
		t.Name(), t.Kind(), t.Kind() == reflect.Float64)

	// Struct fields enumerate with names, types, and values
	u := user{Name: "bob", Age: 25}
	ut := reflect.TypeOf(u)
	uv := reflect.ValueOf(u)
	for i := 0; i < ut.NumField(); i++ {
		f := ut.Field(i)
		fmt.Printf("  field %s %s = %v\n", f.Name, f.Type, uv.Field(i))
	}

	// Slices support Len and Index through reflect
	nums := reflect.ValueOf([]int{10, 20, 30})
	sum := 0
	for i := 0; i < nums.Len(); i++ {
		sum += int(nums.Index(i).Int())
	}
	fmt.Printf("sum via reflect: %d\n", sum)

	// Interface() goes back to ordinary Go values
	back := nums.Index(2).Interface()
	fmt.Printf("back out: %v (%T)\n", back, back)
}
