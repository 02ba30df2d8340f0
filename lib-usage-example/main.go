package main

import (
	"errors"
	"flag"
	"fmt"

	"github.com/mybible-cli/mybible-cli/pkg/moduledata"
	"github.com/mybible-cli/mybible-cli/pkg/reference"
)

func main() {
	// Usage: go run *.go -r "John 3:16-18; 4:1-3, 5"

	refFlag := flag.String("r", "", "Bible reference to resolve")

	// Parse the command-line flags
	flag.Parse()

	if *refFlag == "" {
		fmt.Println("A reference is required. Please provide it using -r flag.")
		return
	}

	aliases, err := moduledata.DefaultMapping.AliasTable()
	if err != nil {
		fmt.Println(err)
		return
	}

	// Without a module, a canon can be built from any verse counts. Here,
	// the Gospel of John only.
	john := map[int]int{
		1: 51, 2: 25, 3: 36, 4: 54, 5: 47, 6: 71, 7: 53, 8: 59, 9: 41, 10: 42, 11: 57,
		12: 50, 13: 38, 14: 31, 15: 27, 16: 33, 17: 26, 18: 40, 19: 42, 20: 31, 21: 25,
	}
	canon := reference.NewCanonIndex(map[reference.BookID]map[int]int{500: john})

	ranges, err := reference.Resolve(*refFlag, aliases, canon)
	if errors.Is(err, reference.ErrInvalidReference) {
		fmt.Println("Only John is available in this example:", err)
		return
	}
	if err != nil {
		fmt.Println(err)
		return
	}

	counts := reference.CountVerses(ranges, canon)
	for i, r := range ranges {
		fmt.Println(r, counts[i])
	}
}
