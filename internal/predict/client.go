// Package predict talks to the external prediction service that proposes
// annotation rectangles for a rendered document.
package predict

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/frictionlessweb/formpdf-sub000/internal/form"
	"github.com/frictionlessweb/formpdf-sub000/internal/reducer"
)

// #region types
// Request describes the document sent for prediction.
type Request struct {
	Pages       int                        `json:"pages"`
	Width       float64                    `json:"width"`
	Height      float64                    `json:"height"`
	Annotations map[string]form.Annotation `json:"annotations"`
}

// RequestFor builds the request from the current document state.
func RequestFor(f form.AccessibleForm) Request {
	pages := len(f.Tokens)
	if pages == 0 {
		pages = 1
	}
	return Request{
		Pages:       pages,
		Width:       f.PDFWidth,
		Height:      f.PDFHeight,
		Annotations: f.Annotations,
	}
}

// Response is the prediction payload: rectangles per page plus the
// relation maps the service inferred.
type Response struct {
	Annotations    [][]reducer.Predicted `json:"annotations"`
	LabelRelations map[string]string     `json:"labelRelations"`
	GroupRelations map[string][]string   `json:"groupRelations"`
}
// #endregion types

// #region client
// Client wraps the HTTP connection to the prediction service.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient points at the service's base URL, e.g.
// "http://localhost:8000/api".
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 30 * time.Second},
	}
}

// NewClientWithHTTP creates a Client with an injected HTTP client. Used for
// testing without a real service.
func NewClientWithHTTP(baseURL string, h *http.Client) *Client {
	return &Client{baseURL: strings.TrimRight(baseURL, "/"), http: h}
}
// #endregion client

// #region annotations
// Annotations posts the document for prediction and decodes the proposed
// annotation set. There is no retry and no guard against overlapping
// requests; the last response to arrive wins.
func (c *Client) Annotations(ctx context.Context, req Request) (Response, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return Response{}, fmt.Errorf("marshal annotations request: %w", err)
	}
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/annotations", bytes.NewReader(body))
	if err != nil {
		return Response{}, fmt.Errorf("build annotations request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	httpResp, err := c.http.Do(httpReq)
	if err != nil {
		return Response{}, fmt.Errorf("annotations request: %w", err)
	}
	defer httpResp.Body.Close()

	if httpResp.StatusCode != http.StatusOK {
		snippet, _ := io.ReadAll(io.LimitReader(httpResp.Body, 512))
		return Response{}, fmt.Errorf("annotations request: status %d: %s", httpResp.StatusCode, snippet)
	}

	var resp Response
	if err := json.NewDecoder(httpResp.Body).Decode(&resp); err != nil {
		return Response{}, fmt.Errorf("decode annotations response: %w", err)
	}
	return resp, nil
}
// #endregion annotations

// #region action
// Action converts the response into the transition the reducer applies.
// Predictions arriving without an id get a fresh one.
func (r Response) Action() reducer.IncrementStepAndAnnotations {
	pages := make([][]reducer.Predicted, len(r.Annotations))
	for p, list := range r.Annotations {
		pages[p] = make([]reducer.Predicted, len(list))
		for i, predicted := range list {
			if predicted.ID == "" {
				predicted.ID = uuid.New().String()
			}
			if form.BackgroundColors[predicted.Type] == "" {
				predicted.Type = form.TextBox
			}
			pages[p][i] = predicted
		}
	}
	return reducer.IncrementStepAndAnnotations{
		Annotations:    pages,
		LabelRelations: r.LabelRelations,
		GroupRelations: r.GroupRelations,
	}
}
// #endregion action
