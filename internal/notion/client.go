package notion

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
)

const (
	defaultBaseURL = "https://api.notion.com/v1"
	notionVersion  = "2022-06-28"
)

// APIError is a non-200 response from the Notion API.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("notion API error (status %d): %s", e.StatusCode, e.Body)
}

// Client is a Notion API client.
type Client struct {
	token      string
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a new Notion client authenticated with an integration token.
func NewClient(token string) *Client {
	return NewClientWithBaseURL(token, defaultBaseURL)
}

// NewClientWithBaseURL creates a client against a non-default API endpoint.
func NewClientWithBaseURL(token, baseURL string) *Client {
	return &Client{
		token:      token,
		baseURL:    baseURL,
		httpClient: &http.Client{},
	}
}

func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	var reqBody io.Reader
	if body != nil {
		reqJSON, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshaling request: %w", err)
		}
		reqBody = bytes.NewReader(reqJSON)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Notion-Version", notionVersion)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("sending request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("reading response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return &APIError{StatusCode: resp.StatusCode, Body: string(respBody)}
	}

	if out != nil {
		if err := json.Unmarshal(respBody, out); err != nil {
			return fmt.Errorf("parsing API response: %w", err)
		}
	}

	return nil
}

// ChildBlock is a block returned by the Notion API.
type ChildBlock struct {
	ID          string `json:"id"`
	Type        string `json:"type"`
	HasChildren bool   `json:"has_children"`

	raw map[string]json.RawMessage
}

func (b *ChildBlock) UnmarshalJSON(data []byte) error {
	type plain ChildBlock
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	*b = ChildBlock(p)
	return json.Unmarshal(data, &b.raw)
}

// PlainText returns the concatenated rich text content of the block, or ""
// for block types without text.
func (b *ChildBlock) PlainText() string {
	payload, ok := b.raw[b.Type]
	if !ok {
		return ""
	}

	var content struct {
		RichText []struct {
			PlainText string `json:"plain_text"`
		} `json:"rich_text"`
	}
	if err := json.Unmarshal(payload, &content); err != nil {
		return ""
	}

	var parts []string
	for _, rt := range content.RichText {
		parts = append(parts, rt.PlainText)
	}
	return strings.Join(parts, "")
}

type childList struct {
	Results    []ChildBlock `json:"results"`
	HasMore    bool         `json:"has_more"`
	NextCursor string       `json:"next_cursor"`
}

// AppendChildren appends blocks to a page or block and returns the created
// blocks, IDs included.
func (c *Client) AppendChildren(ctx context.Context, blockID string, children []Block) ([]ChildBlock, error) {
	var result childList
	body := map[string]interface{}{"children": children}

	if err := c.do(ctx, "PATCH", "/blocks/"+blockID+"/children", body, &result); err != nil {
		return nil, err
	}
	return result.Results, nil
}

// ListChildren retrieves all direct children of a page or block, following
// pagination cursors.
func (c *Client) ListChildren(ctx context.Context, blockID string) ([]ChildBlock, error) {
	var all []ChildBlock
	cursor := ""

	for {
		query := url.Values{"page_size": {"100"}}
		if cursor != "" {
			query.Set("start_cursor", cursor)
		}

		var page childList
		path := "/blocks/" + blockID + "/children?" + query.Encode()
		if err := c.do(ctx, "GET", path, nil, &page); err != nil {
			return nil, err
		}

		all = append(all, page.Results...)
		if !page.HasMore {
			return all, nil
		}
		cursor = page.NextCursor
	}
}

// DeleteBlock archives a single block.
func (c *Client) DeleteBlock(ctx context.Context, blockID string) error {
	return c.do(ctx, "DELETE", "/blocks/"+blockID, nil, nil)
}

// ClearChildren deletes every direct child of a page or block and returns
// the number of blocks removed.
func (c *Client) ClearChildren(ctx context.Context, blockID string) (int, error) {
	children, err := c.ListChildren(ctx, blockID)
	if err != nil {
		return 0, fmt.Errorf("listing blocks: %w", err)
	}

	for i, child := range children {
		if err := c.DeleteBlock(ctx, child.ID); err != nil {
			return i, fmt.Errorf("deleting block %s: %w", child.ID, err)
		}
	}

	return len(children), nil
}
