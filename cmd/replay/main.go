package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/frictionlessweb/formpdf-sub000/internal/replay"
)

// #region main

func main() {
	fixturePath := flag.String("fixture", "", "path to fixture JSON")
	verbose := flag.Bool("v", false, "print the final state summary even on success")
	flag.Parse()

	if *fixturePath == "" {
		fmt.Fprintln(os.Stderr, "usage: replay --fixture path/to/fixture.json [-v]")
		os.Exit(2)
	}

	fx, err := replay.LoadFixture(*fixturePath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "load fixture: %v\n", err)
		os.Exit(2)
	}

	final, failures, err := replay.Replay(fx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "replay: %v\n", err)
		os.Exit(2)
	}

	if *verbose || len(failures) > 0 {
		fmt.Printf("%s: %d actions applied\n", fx.Description, len(fx.Actions))
		fmt.Printf("final: step=%s tool=%s annotations=%d version=%d\n",
			final.Step, final.Tool, len(final.Annotations), final.CurrentVersion)
	}

	if len(failures) > 0 {
		for _, f := range failures {
			fmt.Printf("FAIL %s\n", f)
		}
		fmt.Printf("\nSummary: %d expectation(s) failed\n", len(failures))
		os.Exit(1)
	}

	fmt.Println("OK")
}

// #endregion main
