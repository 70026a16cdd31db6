package main

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/frictionlessweb/formpdf-sub000/internal/config"
	"github.com/frictionlessweb/formpdf-sub000/internal/controller"
	"github.com/frictionlessweb/formpdf-sub000/internal/form"
	"github.com/frictionlessweb/formpdf-sub000/internal/predict"
	"github.com/frictionlessweb/formpdf-sub000/internal/reducer"
	"github.com/frictionlessweb/formpdf-sub000/internal/store"
)

// #region main
func main() {
	cfgPath := envOr("FORMPDF_CONFIG", "formpdf.toml")
	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	st, err := store.NewStore(cfg.DatabasePath)
	if err != nil {
		log.Fatalf("failed to open store: %v", err)
	}
	defer st.Close()

	saved, found, err := st.Load(cfg.StorageKey)
	if err != nil {
		log.Fatalf("failed to load saved state: %v", err)
	}

	client := predict.NewClient(cfg.APIBaseURL)
	ctrl := controller.New(form.DefaultAccessibleForm(), st, cfg.StorageKey, client)
	if found {
		ctrl.Dispatch(reducer.HydrateStore{State: saved, Scale: cfg.DeviceScale})
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go ctrl.Run(ctx, cfg.SaveInterval.Duration)

	fmt.Println("Form annotation controller ready.")
	fmt.Printf("  DB: %s | API: %s | Key: %s\n", cfg.DatabasePath, cfg.APIBaseURL, cfg.StorageKey)
	fmt.Println("Enter a JSON action, or 'predict', 'state', 'quit':")

	scanner := bufio.NewScanner(os.Stdin)
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)

	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if line == "quit" || line == "exit" {
			break
		}

		switch line {
		case "predict":
			if err := ctrl.RunPrediction(context.Background()); err != nil {
				log.Printf("prediction error: %v", err)
				continue
			}
			printSummary(ctrl.State())
		case "state":
			out, err := json.MarshalIndent(ctrl.State(), "", "  ")
			if err != nil {
				log.Printf("encode state: %v", err)
				continue
			}
			fmt.Println(string(out))
		default:
			if _, err := ctrl.DispatchRaw([]byte(line)); err != nil {
				log.Printf("dispatch error: %v", err)
				continue
			}
			printSummary(ctrl.State())
		}
	}

	cancel()
	if err := ctrl.Save(); err != nil {
		log.Printf("final save failed: %v", err)
	}
}
// #endregion main

// #region output
func printSummary(f form.AccessibleForm) {
	fmt.Printf("[%s/%s] annotations=%d selected=%d version=%d undo=%v redo=%v\n",
		f.Step, f.Tool, len(f.Annotations), len(f.SelectedAnnotations),
		f.CurrentVersion, f.CanUndo, f.CanRedo)
}
// #endregion output

// #region helpers
func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
// #endregion helpers
