// Command regolith runs JavaScript-flavored regular expression operations
// from the command line.
//
//	regolith --flags g match '\d+' 'a1b22c333'
//	echo 'a,b,c' | regolith split --limit 2 , -
package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	_ "github.com/coregx/regolith/engine/coregex"
	_ "github.com/coregx/regolith/engine/ecma"
	_ "github.com/coregx/regolith/engine/literal"
	_ "github.com/coregx/regolith/engine/re2"
	_ "github.com/coregx/regolith/engine/stdlib"
)

var version = "v0.1.0"

func main() {
	a := newApp(os.Stdin, os.Stdout, os.Stderr)
	if err := a.command().Run(context.Background(), os.Args); err != nil {
		if !errors.Is(err, errNoMatch) {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
		}
		os.Exit(1)
	}
}
