package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"sort"

	"github.com/frictionlessweb/formpdf-sub000/internal/actionlog"
	"github.com/frictionlessweb/formpdf-sub000/internal/form"
	"github.com/frictionlessweb/formpdf-sub000/internal/store"
)

// #region main

func main() {
	dbPath := flag.String("db", "", "path to formpdf.db")
	key := flag.String("key", store.DefaultKey, "storage key to inspect")
	last := flag.Int("last", 20, "show N most recent logged actions")
	jsonOut := flag.Bool("json", false, "output the full state as JSON instead of a summary")
	flag.Parse()

	if *dbPath == "" {
		fmt.Fprintln(os.Stderr, "usage: inspect --db path/to/formpdf.db [--key name] [--last N] [--json]")
		os.Exit(2)
	}

	st, err := store.NewStore(*dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "open db: %v\n", err)
		os.Exit(1)
	}
	defer st.Close()

	f, found, err := st.Load(*key)
	if err != nil {
		fmt.Fprintf(os.Stderr, "load state: %v\n", err)
		os.Exit(1)
	}
	if !found {
		fmt.Printf("no saved state under key %q; showing defaults\n", *key)
	}

	if *jsonOut {
		out, err := json.MarshalIndent(f, "", "  ")
		if err != nil {
			fmt.Fprintf(os.Stderr, "encode state: %v\n", err)
			os.Exit(1)
		}
		fmt.Println(string(out))
		return
	}

	printState(f)

	entries, err := actionlog.Tail(st.DB(), *last)
	if err != nil {
		fmt.Fprintf(os.Stderr, "read action log: %v\n", err)
		os.Exit(1)
	}
	printLog(entries)
}

// #endregion main

// #region output

func printState(f form.AccessibleForm) {
	fmt.Printf("step=%s tool=%s zoom=%.2f page=%d size=%.0fx%.0f\n",
		f.Step, f.Tool, f.Zoom, f.Page, f.PDFWidth, f.PDFHeight)
	fmt.Printf("annotations=%d selected=%d sections=%d version=%d undo=%v redo=%v\n",
		len(f.Annotations), len(f.SelectedAnnotations), len(f.Sections),
		f.CurrentVersion, f.CanUndo, f.CanRedo)

	counts := map[form.AnnotationType]int{}
	for _, a := range f.Annotations {
		counts[a.Type]++
	}
	types := make([]string, 0, len(counts))
	for t := range counts {
		types = append(types, string(t))
	}
	sort.Strings(types)
	for _, t := range types {
		fmt.Printf("  %-12s %d\n", t, counts[form.AnnotationType(t)])
	}
}

func printLog(entries []actionlog.Entry) {
	if len(entries) == 0 {
		fmt.Println("\naction log: empty")
		return
	}
	fmt.Printf("\n%-28s| %-8s| %s\n", "Action", "Version", "When")
	fmt.Printf("%-28s+%-8s+%s\n", "----------------------------", "---------", "-------------------------")
	for _, e := range entries {
		fmt.Printf("%-28s| %-8d| %s\n", e.ActionType, e.Version, e.CreatedAt.Format("2006-01-02 15:04:05.000"))
	}
}

// #endregion output
