package notion

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestAppendChildren(t *testing.T) {
	var gotMethod, gotPath, gotAuth, gotVersion string
	var gotBody struct {
		Children []json.RawMessage `json:"children"`
	}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		gotVersion = r.Header.Get("Notion-Version")
		if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
			t.Errorf("Decoding request body: %v", err)
		}
		fmt.Fprint(w, `{"results":[
			{"id":"aaa-111","type":"divider","has_children":false},
			{"id":"bbb-222","type":"toggle","has_children":false}
		]}`)
	}))
	defer server.Close()

	client := NewClientWithBaseURL("secret-token", server.URL)
	created, err := client.AppendChildren(context.Background(), "page-1", SectionBlocks()[:2])
	if err != nil {
		t.Fatalf("AppendChildren failed: %v", err)
	}

	if gotMethod != "PATCH" {
		t.Errorf("Method: got %s", gotMethod)
	}
	if gotPath != "/blocks/page-1/children" {
		t.Errorf("Path: got %s", gotPath)
	}
	if gotAuth != "Bearer secret-token" {
		t.Errorf("Authorization: got %q", gotAuth)
	}
	if gotVersion != notionVersion {
		t.Errorf("Notion-Version: got %q", gotVersion)
	}
	if len(gotBody.Children) != 2 {
		t.Errorf("Expected 2 children in request, got %d", len(gotBody.Children))
	}

	if len(created) != 2 {
		t.Fatalf("Expected 2 created blocks, got %d", len(created))
	}
	if created[1].ID != "bbb-222" || created[1].Type != "toggle" {
		t.Errorf("Created block mismatch: %+v", created[1])
	}
}

func TestListChildrenPagination(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != "GET" {
			t.Errorf("Method: got %s", r.Method)
		}
		if r.URL.Query().Get("page_size") != "100" {
			t.Errorf("page_size: got %q", r.URL.Query().Get("page_size"))
		}
		if r.URL.Query().Get("start_cursor") == "" {
			fmt.Fprint(w, `{"results":[{"id":"b1","type":"paragraph"}],"has_more":true,"next_cursor":"cur-2"}`)
			return
		}
		if cursor := r.URL.Query().Get("start_cursor"); cursor != "cur-2" {
			t.Errorf("start_cursor: got %q", cursor)
		}
		fmt.Fprint(w, `{"results":[{"id":"b2","type":"image"}],"has_more":false,"next_cursor":null}`)
	}))
	defer server.Close()

	client := NewClientWithBaseURL("tok", server.URL)
	children, err := client.ListChildren(context.Background(), "page-1")
	if err != nil {
		t.Fatalf("ListChildren failed: %v", err)
	}

	if len(children) != 2 {
		t.Fatalf("Expected 2 children across pages, got %d", len(children))
	}
	if children[0].ID != "b1" || children[1].ID != "b2" {
		t.Errorf("Children order mismatch: %+v", children)
	}
}

func TestClearChildren(t *testing.T) {
	var deleted []string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case "GET":
			fmt.Fprint(w, `{"results":[{"id":"b1","type":"divider"},{"id":"b2","type":"image"}],"has_more":false}`)
		case "DELETE":
			deleted = append(deleted, r.URL.Path)
			fmt.Fprint(w, `{"id":"x","archived":true}`)
		default:
			t.Errorf("Unexpected method %s", r.Method)
		}
	}))
	defer server.Close()

	client := NewClientWithBaseURL("tok", server.URL)
	n, err := client.ClearChildren(context.Background(), "page-1")
	if err != nil {
		t.Fatalf("ClearChildren failed: %v", err)
	}

	if n != 2 {
		t.Errorf("Expected 2 deletions reported, got %d", n)
	}
	if len(deleted) != 2 || deleted[0] != "/blocks/b1" || deleted[1] != "/blocks/b2" {
		t.Errorf("Delete calls mismatch: %v", deleted)
	}
}

func TestAPIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"object":"error","status":404,"code":"object_not_found"}`, http.StatusNotFound)
	}))
	defer server.Close()

	client := NewClientWithBaseURL("tok", server.URL)
	_, err := client.ListChildren(context.Background(), "missing-page")
	if err == nil {
		t.Fatal("Expected error for 404 response")
	}

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("Expected APIError, got %T: %v", err, err)
	}
	if apiErr.StatusCode != http.StatusNotFound {
		t.Errorf("StatusCode: got %d", apiErr.StatusCode)
	}
}

func TestChildBlockPlainText(t *testing.T) {
	raw := `{
		"id": "h1",
		"type": "heading_2",
		"has_children": false,
		"heading_2": {
			"rich_text": [
				{"type":"text","plain_text":"Verse of the Day"},
				{"type":"text","plain_text":" - August 25, 2026"}
			]
		}
	}`

	var block ChildBlock
	if err := json.Unmarshal([]byte(raw), &block); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}

	if got := block.PlainText(); got != "Verse of the Day - August 25, 2026" {
		t.Errorf("PlainText: got %q", got)
	}

	var divider ChildBlock
	if err := json.Unmarshal([]byte(`{"id":"d1","type":"divider","divider":{}}`), &divider); err != nil {
		t.Fatal(err)
	}
	if divider.PlainText() != "" {
		t.Errorf("Divider should have no text, got %q", divider.PlainText())
	}
}
