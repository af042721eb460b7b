// Command pdfinfo prints the structure a renderer-produced PDF exposes
// to the metadata injector: trailer targets, page objects and,
// optionally, raw object bodies.
package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/midbel/hexdump"

	"github.com/renderkit/pdfmeta"
)

func main() {
	dump := flag.Bool("x", false, "hexdump object bodies")
	flag.Parse()
	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: pdfinfo [-x] file.pdf")
		os.Exit(2)
	}

	f, err := pdfmeta.Open(flag.Arg(0))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer f.Close()

	printLine("catalog", objectRef(f.Catalog()))
	printLine("info", objectRef(f.Info()))
	printLine("pages", strconv.Itoa(len(f.Pages())))

	for i, page := range f.Pages() {
		printLine("page "+strconv.Itoa(i+1), objectRef(page))
	}

	if *dump {
		for _, d := range append([]pdfmeta.Dict{f.Catalog(), f.Info()}, f.Pages()...) {
			fmt.Printf("\n%d 0 obj\n", d.ObjectNumber())
			fmt.Println(hexdump.Dump(d.Raw()))
		}
	}
}

func objectRef(d pdfmeta.Dict) string {
	return strconv.Itoa(d.ObjectNumber()) + " 0 R"
}

func printLine(key, value string) {
	if value == "" {
		return
	}
	fmt.Printf("%-12s: %s", key, value)
	fmt.Println()
}
