package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/frictionlessweb/formpdf-sub000/internal/actionlog"
	"github.com/frictionlessweb/formpdf-sub000/internal/replay"
	"github.com/frictionlessweb/formpdf-sub000/internal/store"
)

// #region main

func main() {
	dbPath := flag.String("db", "", "path to formpdf.db")
	last := flag.Int("last", 20, "number of most recent logged actions to export")
	outPath := flag.String("out", "", "output fixture JSON path")
	description := flag.String("desc", "exported session", "fixture description")
	flag.Parse()

	if *dbPath == "" || *outPath == "" {
		fmt.Fprintln(os.Stderr, "usage: fixture-export --db path/to/formpdf.db --out path/to/fixture.json [--last N] [--desc text]")
		os.Exit(2)
	}

	if err := run(*dbPath, *last, *outPath, *description); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// #endregion main

// #region export

func run(dbPath string, last int, outPath, description string) error {
	st, err := store.NewStore(dbPath)
	if err != nil {
		return fmt.Errorf("open db: %w", err)
	}
	defer st.Close()

	entries, err := actionlog.Tail(st.DB(), last)
	if err != nil {
		return fmt.Errorf("read action log: %w", err)
	}
	if len(entries) == 0 {
		return fmt.Errorf("no logged actions in %s", dbPath)
	}

	// Tail returns newest first; the fixture wants dispatch order.
	actions := make([]json.RawMessage, 0, len(entries))
	for i := len(entries) - 1; i >= 0; i-- {
		if entries[i].PayloadJSON == "" {
			continue
		}
		actions = append(actions, json.RawMessage(entries[i].PayloadJSON))
	}

	fx := &replay.Fixture{
		Description: description,
		Actions:     actions,
	}

	// Replay once to pin the expectations to the observed outcome.
	final, _, err := replay.Replay(fx)
	if err != nil {
		return fmt.Errorf("replay exported actions: %w", err)
	}
	count := len(final.Annotations)
	fx.Expect = replay.Expectations{
		Step:            &final.Step,
		Tool:            &final.Tool,
		AnnotationCount: &count,
		CanUndo:         &final.CanUndo,
		CanRedo:         &final.CanRedo,
	}

	data, err := json.MarshalIndent(fx, "", "  ")
	if err != nil {
		return fmt.Errorf("encode fixture: %w", err)
	}
	if err := os.WriteFile(outPath, data, 0o644); err != nil {
		return fmt.Errorf("write fixture: %w", err)
	}

	fmt.Printf("exported %d action(s) to %s\n", len(actions), outPath)
	return nil
}

// #endregion export
