package database

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/thenoetrevino/chatdo/internal/models"
)

// RemoteStore talks to a Supabase/PostgREST table over HTTP
type RemoteStore struct {
	baseURL string
	key     string
	table   string
	client  *http.Client
}

var _ TaskStore = (*RemoteStore)(nil)

// NewRemoteStore creates a client for {baseURL}/rest/v1/{table}
func NewRemoteStore(baseURL, key, table string, client *http.Client) *RemoteStore {
	if client == nil {
		client = http.DefaultClient
	}
	return &RemoteStore{
		baseURL: strings.TrimRight(baseURL, "/"),
		key:     key,
		table:   table,
		client:  client,
	}
}

// APIError is a PostgREST error response
type APIError struct {
	StatusCode int    `json:"-"`
	Code       string `json:"code"`
	Message    string `json:"message"`
	Details    string `json:"details"`
	Hint       string `json:"hint"`
}

func (e *APIError) Error() string {
	msg := e.Message
	if msg == "" {
		msg = http.StatusText(e.StatusCode)
	}
	if e.Code != "" {
		return fmt.Sprintf("store error %d (%s): %s", e.StatusCode, e.Code, msg)
	}
	return fmt.Sprintf("store error %d: %s", e.StatusCode, msg)
}

// remoteRow mirrors a table row; id may be a serial or a uuid depending on
// how the table was created
type remoteRow struct {
	ID        json.RawMessage `json:"id"`
	UserID    string          `json:"user_id"`
	Task      string          `json:"task"`
	CreatedAt string          `json:"created_at"`
}

func (r remoteRow) record() *models.TaskRecord {
	record := &models.TaskRecord{
		UserID: r.UserID,
		Task:   r.Task,
	}
	if id, err := strconv.ParseInt(string(r.ID), 10, 64); err == nil {
		record.ID = id
	}
	if t, err := time.Parse(time.RFC3339Nano, r.CreatedAt); err == nil {
		record.CreatedAt = t
	}
	return record
}

// Insert implements TaskStore
func (s *RemoteStore) Insert(ctx context.Context, userID, task string) error {
	body, err := json.Marshal(map[string]string{
		"user_id": userID,
		"task":    task,
	})
	if err != nil {
		return err
	}

	_, err = s.do(ctx, http.MethodPost, nil, body)
	return err
}

// DeleteAll implements TaskStore
func (s *RemoteStore) DeleteAll(ctx context.Context, userID string) error {
	query := url.Values{}
	query.Set("user_id", "eq."+userID)

	_, err := s.do(ctx, http.MethodDelete, query, nil)
	return err
}

// SelectAll implements TaskStore. PostgREST does not promise an order
// without an order parameter; rows come back as the table returns them.
func (s *RemoteStore) SelectAll(ctx context.Context, userID string) ([]*models.TaskRecord, error) {
	query := url.Values{}
	query.Set("select", "*")
	if userID != "" {
		query.Set("user_id", "eq."+userID)
	}

	data, err := s.do(ctx, http.MethodGet, query, nil)
	if err != nil {
		return nil, err
	}

	var rows []remoteRow
	if err := json.Unmarshal(data, &rows); err != nil {
		return nil, fmt.Errorf("decode rows: %w", err)
	}

	records := make([]*models.TaskRecord, 0, len(rows))
	for _, row := range rows {
		records = append(records, row.record())
	}
	return records, nil
}

// Close implements TaskStore. Idle connections belong to the shared client.
func (s *RemoteStore) Close() error {
	return nil
}

func (s *RemoteStore) do(ctx context.Context, method string, query url.Values, body []byte) ([]byte, error) {
	endpoint := s.baseURL + "/rest/v1/" + url.PathEscape(s.table)
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return nil, err
	}
	req.Header.Set("apikey", s.key)
	req.Header.Set("Authorization", "Bearer "+s.key)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if method != http.MethodGet {
		req.Header.Set("Prefer", "return=minimal")
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", method, s.table, err)
	}
	defer func() { _ = resp.Body.Close() }()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &APIError{StatusCode: resp.StatusCode}
		if json.Unmarshal(data, apiErr) != nil || apiErr.Message == "" {
			apiErr.Message = strings.TrimSpace(string(data))
		}
		return nil, apiErr
	}

	return data, nil
}
