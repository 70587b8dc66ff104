// A tag-driven struct filler: the skeleton of every config binder.
package main

import (
	"fmt"
	"reflect"
	"strconv"
)

type serverConfig struct {
	Host    string `conf:"host" default:"localhost"`
	Port    int    `conf:"port" default:"8080"`
	Debug   bool   `conf:"debug" default:"false"`
	private string // unexported: skipped (CanSet is false)
}

// fill populates tagged fields from the source map, falling back
// to each field's default tag
func fill(dst any, src map[string]string) error {
	v := reflect.ValueOf(dst)
	if v.Kind() != reflect.Ptr || v.IsNil() {
		return fmt.Errorf("need non-nil pointer, got %T", dst)
	}
	v = v.Elem()
	if v.Kind() != reflect.Struct {
		return fmt.Errorf("need pointer to struct, got %s", v.Kind())
	}

	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		key := field.Tag.Get("conf")
		if key == "" || !v.Field(i).CanSet() {
			continue
		}

		raw, ok := src[key]
		if !ok {
			raw, ok = field.Tag.Lookup("default")
			if !ok {
				continue
			}
		}

		f := v.Field(i)
		switch f.Kind() {
		case reflect.String:
			f.SetString(raw)
		case reflect.Int:
			n, err := strconv.Atoi(raw)
			if err != nil {
				return fmt.Errorf("field %s: %w", field.Name, err)
			}
			f.SetInt(int64(n))
		case reflect.Bool:
			b, err := strconv.ParseBool(raw)
			if err != nil {
				return fmt.Errorf("field %s: %w", field.Name, err)
			}
			f.SetBool(b)
		}
	}
	return nil
}

func main() {
	var cfg serverConfig

	// Partial source: Port comes from the map, the rest from defaults
	err := fill(&cfg, map[string]string{"port": "9090"})
	if err != nil {
		fmt.Println("fill:", err)
		return
	}
	fmt.Printf("config: %+v\n", cfg)

	// Bad data surfaces as an error naming the field
	err = fill(&cfg, map[string]string{"port": "not-a-number"})
	fmt.Printf("bad input: %v\n", err)

	// Passing a non-pointer is caught at the entry contract
	err = fill(serverConfig{}, nil)
	fmt.Printf("non-pointer: %v\n", err)
}
