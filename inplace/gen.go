//go:build ignore

// Command gen writes sizes.go: the backing-array union constraints and
// the aliases for common capacities. Capacities 0 through 64 are
// contiguous so any small size can be named directly; larger capacities
// follow a coarser ladder.
package main

import (
	"bytes"
	"fmt"
	"os"
)

var ladder = []int{80, 96, 112, 128, 160, 192, 224, 256, 320, 384, 448, 512, 768, 1024}

func lengths() []int {
	var all []int
	for n := 0; n <= 64; n++ {
		all = append(all, n+1)
	}
	for _, n := range ladder {
		all = append(all, n+1)
	}
	return all
}

func constraint(b *bytes.Buffer, name, elem string, doc []string) {
	for _, line := range doc {
		fmt.Fprintf(b, "// %s\n", line)
	}
	fmt.Fprintf(b, "type %s interface {\n", name)
	all := lengths()
	for i, n := range all {
		switch {
		case i%4 == 0 && i == 0:
			fmt.Fprintf(b, "\t~[%d]%s", n, elem)
		case i%4 == 0:
			fmt.Fprintf(b, " |\n\t\t~[%d]%s", n, elem)
		default:
			fmt.Fprintf(b, " | ~[%d]%s", n, elem)
		}
	}
	fmt.Fprintf(b, "\n}\n\n")
}

func main() {
	var b bytes.Buffer
	fmt.Fprintf(&b, "// Code generated by go run gen.go; DO NOT EDIT.\n\npackage inplace\n\n")
	constraint(&b, "Buf", "byte", []string{
		"Buf is the set of backing arrays a String can be instantiated with.",
		"An array of length N+1 yields capacity N; the extra slot holds the",
		"terminator.",
	})
	constraint(&b, "U16Buf", "uint16", []string{
		"U16Buf is the set of backing arrays a U16String can be instantiated",
		"with.",
	})
	fmt.Fprintf(&b, "// Aliases for common capacities.\ntype (\n")
	for _, n := range []int{8, 16, 32, 64, 96, 128, 256} {
		fmt.Fprintf(&b, "\t%-9s = String[[%d]byte]\n", fmt.Sprintf("String%d", n), n+1)
	}
	fmt.Fprintf(&b, "\n")
	for _, n := range []int{16, 32, 64} {
		fmt.Fprintf(&b, "\tU16String%d = U16String[[%d]uint16]\n", n, n+1)
	}
	fmt.Fprintf(&b, ")\n")
	if err := os.WriteFile("sizes.go", b.Bytes(), 0644); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
