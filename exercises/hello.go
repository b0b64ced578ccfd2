//go:build ignore

// A first scratch file. Run it with:
//
//	wb eval exercises/hello.go
package main

import (
	"fmt"
	"strings"
)

func main() {
	name := "workbook"
	fmt.Printf("hello, %s\n", name)
	fmt.Println(strings.Repeat("=", 6+len(name)))

	// Edit anything here and run again; scratch files never touch the repo.
	for i := 1; i <= 3; i++ {
		fmt.Printf("try %d\n", i)
	}
}
