// Package controller owns a live editing session: it serializes action
// dispatch, persists state, and drives layer prediction.
package controller

// #region imports
import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/frictionlessweb/formpdf-sub000/internal/actionlog"
	"github.com/frictionlessweb/formpdf-sub000/internal/form"
	"github.com/frictionlessweb/formpdf-sub000/internal/predict"
	"github.com/frictionlessweb/formpdf-sub000/internal/reducer"
	"github.com/frictionlessweb/formpdf-sub000/internal/store"
)

// #endregion

// #region controller-struct

// Controller is the top-level coordinator. All access to the document
// state goes through it; the reducer itself stays pure.
type Controller struct {
	mu      sync.Mutex
	state   form.AccessibleForm
	store   *store.Store
	key     string
	predict *predict.Client
}

// #endregion

// #region constructor

// New creates a controller over an initial state. The store and predict
// client may be nil when persistence or prediction is not wanted (tests,
// the replay harness).
func New(initial form.AccessibleForm, st *store.Store, key string, client *predict.Client) *Controller {
	return &Controller{
		state:   initial,
		store:   st,
		key:     key,
		predict: client,
	}
}

// #endregion

// #region dispatch

// Dispatch applies one action to the current state and records it in the
// action log. Logging failures do not block the transition. Callers own the
// reducer's preconditions; wire input goes through DispatchRaw, which gates
// them.
func (c *Controller) Dispatch(action reducer.Action) form.AccessibleForm {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.dispatchLocked(action)
}

func (c *Controller) dispatchLocked(action reducer.Action) form.AccessibleForm {
	c.state = reducer.Reduce(c.state, action)

	if c.store != nil {
		payload, err := reducer.MarshalAction(action)
		if err != nil {
			log.Printf("[CTRL] failed to encode action for log: %v", err)
			payload = nil
		}
		entry := actionlog.Entry{
			ActionType:  reducer.ActionType(action),
			PayloadJSON: string(payload),
			Version:     c.state.CurrentVersion,
		}
		if err := actionlog.Record(c.store.DB(), entry); err != nil {
			log.Printf("[CTRL] failed to record action: %v", err)
		}
	}

	return c.state.Clone()
}

// #endregion

// #region state

// State returns a copy of the current document state.
func (c *Controller) State() form.AccessibleForm {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state.Clone()
}

// #endregion

// #region prediction

// RunPrediction requests annotations for the current layer and advances
// the workflow with the result. The loading screen stays up on failure so
// the caller can surface the error before dismissing it.
func (c *Controller) RunPrediction(ctx context.Context) error {
	if c.predict == nil {
		return fmt.Errorf("no prediction client configured")
	}

	c.Dispatch(reducer.ShowLoadingScreen{})

	req := predict.RequestFor(c.State())
	resp, err := c.predict.Annotations(ctx, req)
	if err != nil {
		return fmt.Errorf("run prediction: %w", err)
	}

	c.Dispatch(resp.Action())
	return nil
}

// #endregion

// #region save

// Save writes the current state to the store.
func (c *Controller) Save() error {
	if c.store == nil {
		return nil
	}
	return c.store.Save(c.key, c.State())
}

// #endregion

// #region run

// Run saves the state on the given interval until ctx is cancelled, then
// performs a final save.
func (c *Controller) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			if err := c.Save(); err != nil {
				log.Printf("[CTRL] final save failed: %v", err)
			}
			return
		case <-ticker.C:
			if err := c.Save(); err != nil {
				log.Printf("[CTRL] periodic save failed: %v", err)
			}
		}
	}
}

// #endregion

// #region dispatch-raw

// DispatchRaw decodes a wire-format action and dispatches it. The state
// after the transition is returned as JSON for callers that speak the
// wire format end to end. UNDO and REDO arriving with no version entry to
// land on are rejected here, under the same lock as the transition, so
// wire input can never trip the reducer's history preconditions.
func (c *Controller) DispatchRaw(data []byte) ([]byte, error) {
	action, err := reducer.ParseAction(data)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	switch action.(type) {
	case reducer.Undo:
		if !c.state.CanUndo {
			return nil, fmt.Errorf("nothing to undo")
		}
	case reducer.Redo:
		if !c.state.CanRedo {
			return nil, fmt.Errorf("nothing to redo")
		}
	}

	next := c.dispatchLocked(action)
	out, err := json.Marshal(next)
	if err != nil {
		return nil, fmt.Errorf("encode state: %w", err)
	}
	return out, nil
}

// #endregion
