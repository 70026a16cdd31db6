package predict

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/frictionlessweb/formpdf-sub000/internal/form"
	"github.com/frictionlessweb/formpdf-sub000/internal/geometry"
	"github.com/frictionlessweb/formpdf-sub000/internal/reducer"
)

func TestAnnotations(t *testing.T) {
	var gotReq Request
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/api/annotations" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		if err := json.NewDecoder(r.Body).Decode(&gotReq); err != nil {
			t.Errorf("decode request: %v", err)
		}
		json.NewEncoder(w).Encode(Response{
			Annotations: [][]reducer.Predicted{
				{{Bounds: geometry.Bounds{Top: 1, Left: 2, Width: 30, Height: 10}, ID: "p1", Type: form.TextBox}},
			},
			LabelRelations: map[string]string{"p1": "p2"},
		})
	}))
	defer srv.Close()

	client := NewClient(srv.URL + "/api")

	f := form.DefaultAccessibleForm()
	f.Tokens = [][]form.Token{{}, {}}
	f.Annotations["a1"] = form.Annotation{ID: "a1", Type: form.TextBox}

	resp, err := client.Annotations(context.Background(), RequestFor(f))
	if err != nil {
		t.Fatalf("annotations: %v", err)
	}

	if gotReq.Pages != 2 || gotReq.Width != 1000 || gotReq.Height != 550 {
		t.Fatalf("request carried the wrong document shape: %+v", gotReq)
	}
	if len(gotReq.Annotations) != 1 {
		t.Fatal("request should carry the working annotation set")
	}
	if len(resp.Annotations) != 1 || resp.Annotations[0][0].ID != "p1" {
		t.Fatalf("response decoded wrong: %+v", resp)
	}
	if resp.LabelRelations["p1"] != "p2" {
		t.Fatal("relations did not decode")
	}
}

func TestAnnotationsServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "model exploded", http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	if _, err := client.Annotations(context.Background(), Request{}); err == nil {
		t.Fatal("a non-200 response must be an error")
	}
}

func TestRequestForEmptyDocument(t *testing.T) {
	req := RequestFor(form.DefaultAccessibleForm())
	if req.Pages != 1 {
		t.Fatalf("a document with no tokens still has one page, got %d", req.Pages)
	}
}

func TestResponseAction(t *testing.T) {
	resp := Response{
		Annotations: [][]reducer.Predicted{
			{{ID: "", Type: form.TextBox}},
			{{ID: "p2", Type: form.AnnotationType("UNKNOWN")}},
		},
		GroupRelations: map[string][]string{"g1": {"p2"}},
	}

	action := resp.Action()
	if action.Annotations[0][0].ID == "" {
		t.Fatal("a prediction without an id should get one")
	}
	if action.Annotations[1][0].Type != form.TextBox {
		t.Fatalf("unknown predicted types should fall back to TEXTBOX, got %s", action.Annotations[1][0].Type)
	}
	if len(action.GroupRelations["g1"]) != 1 {
		t.Fatal("relations should carry through")
	}
}
