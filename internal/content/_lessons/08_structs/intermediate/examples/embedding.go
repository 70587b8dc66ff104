// Embedding promotes fields and methods; it is not inheritance.
package main

import "fmt"

type Logger struct {
	Prefix string
}

func (l *Logger) Log(msg string) {
	fmt.Printf("%s %s\n", l.Prefix, msg)
}

type Server struct {
	Logger // embedded: Log and Prefix promote to Server
	Addr   string
}

type Client struct {
	Logger
	// Client's own Prefix shadows the embedded one
	Prefix string
}

func main() {
	s := Server{
		Logger: Logger{Prefix: "[srv]"},
		Addr:   ":8080",
	}

	// Promoted method: sugar for s.Logger.Log
	s.Log("listening on " + s.Addr)

	// Promoted field access
	fmt.Printf("prefix: %s\n", s.Prefix)
	s.Prefix = "[server]"
	s.Log("prefix updated")

	// Outer fields win over promoted ones
	c := Client{
		Logger: Logger{Prefix: "[inner]"},
		Prefix: "[outer]",
	}
	fmt.Printf("c.Prefix:        %s\n", c.Prefix)
	fmt.Printf("c.Logger.Prefix: %s\n", c.Logger.Prefix)
	c.Log("uses the embedded prefix") // method sees Logger's field
}
