package dto_test

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/mwhitaker/statekit/internal/adapters/http/dto"
	"github.com/mwhitaker/statekit/internal/domain/catalog"
	"github.com/mwhitaker/statekit/internal/domain/lifecycle"
	"github.com/mwhitaker/statekit/internal/ports"
)

var testTime = time.Date(2026, 2, 12, 15, 4, 5, 0, time.UTC)

func validArticle() catalog.Article {
	return catalog.Article{
		ID:        1,
		Title:     "Introducing the catalog",
		Body:      "First post.",
		AuthorID:  9,
		UpdatedAt: testTime,
	}
}

func TestToArticleResponse(t *testing.T) {
	t.Parallel()

	got := dto.ToArticleResponse(&catalog.Article{
		ID:        7,
		Title:     "Release notes",
		Body:      "Changes since last week.",
		AuthorID:  2,
		UpdatedAt: testTime,
	})

	if got.ID != 7 {
		t.Errorf("ID = %d, want 7", got.ID)
	}
	if got.Title != "Release notes" {
		t.Errorf("Title = %q, want %q", got.Title, "Release notes")
	}
	if got.Body != "Changes since last week." {
		t.Errorf("Body = %q", got.Body)
	}
	if got.AuthorID != 2 {
		t.Errorf("AuthorID = %d, want 2", got.AuthorID)
	}
	if got.UpdatedAt != "2026-02-12T15:04:05Z" {
		t.Errorf("UpdatedAt = %q, want RFC3339", got.UpdatedAt)
	}
}

func TestToArticleListResponse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		articles  []catalog.Article
		wantCount int
	}{
		{
			name:      "empty slice yields count zero",
			articles:  []catalog.Article{},
			wantCount: 0,
		},
		{
			name:      "nil slice yields count zero",
			articles:  nil,
			wantCount: 0,
		},
		{
			name:      "two articles",
			articles:  []catalog.Article{validArticle(), {ID: 2, UpdatedAt: testTime}},
			wantCount: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := dto.ToArticleListResponse(tt.articles)

			if got.Count != tt.wantCount {
				t.Errorf("Count = %d, want %d", got.Count, tt.wantCount)
			}
			if len(got.Articles) != tt.wantCount {
				t.Errorf("len(Articles) = %d, want %d", len(got.Articles), tt.wantCount)
			}

			// The articles key must serialize as [] rather than null.
			data, err := json.Marshal(got)
			if err != nil {
				t.Fatalf("json.Marshal() error: %v", err)
			}
			var decoded map[string]any
			if err := json.Unmarshal(data, &decoded); err != nil {
				t.Fatalf("json.Unmarshal() error: %v", err)
			}
			if decoded["articles"] == nil {
				t.Error("articles serialized as null, want array")
			}
		})
	}
}

func TestToActionResponse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		state  lifecycle.ActionState
		verify func(t *testing.T, got dto.ActionResponse)
	}{
		{
			name: "success event maps all fields",
			state: lifecycle.ActionState{
				Latest: lifecycle.Event{
					Time:        testTime,
					ActionID:    "load articles_tok",
					Status:      lifecycle.StatusSuccess,
					EntityName:  "articles",
					IsArrayData: true,
					Payload:     []any{int64(1), int64(2)},
				},
			},
			verify: func(t *testing.T, got dto.ActionResponse) {
				t.Helper()
				if got.ActionID != "load articles_tok" {
					t.Errorf("ActionID = %q", got.ActionID)
				}
				if got.Status != "success" {
					t.Errorf("Status = %q, want success", got.Status)
				}
				if !got.IsArrayData {
					t.Error("IsArrayData = false, want true")
				}
				if got.Timestamp != "2026-02-12T15:04:05Z" {
					t.Errorf("Timestamp = %q", got.Timestamp)
				}
			},
		},
		{
			name: "pending event keeps previous payload",
			state: lifecycle.ActionState{
				Latest: lifecycle.Event{
					Time:       testTime,
					ActionID:   "load articles_tok",
					Status:     lifecycle.StatusPending,
					IsFetching: true,
					EntityName: "articles",
				},
				PrevPayload: []any{int64(1)},
			},
			verify: func(t *testing.T, got dto.ActionResponse) {
				t.Helper()
				if !got.IsFetching {
					t.Error("IsFetching = false, want true")
				}
				if got.Payload != nil {
					t.Errorf("Payload = %v, want nil while pending", got.Payload)
				}
				if got.PrevPayload == nil {
					t.Error("PrevPayload = nil, want retained payload")
				}
			},
		},
		{
			name: "error event carries text and parent",
			state: lifecycle.ActionState{
				Latest: lifecycle.Event{
					Time:           testTime,
					ActionID:       "load article_tok 7",
					ParentActionID: "load article_tok",
					Status:         lifecycle.StatusError,
					HasError:       true,
					ErrorText:      "not found",
					EntityName:     "articles",
				},
			},
			verify: func(t *testing.T, got dto.ActionResponse) {
				t.Helper()
				if !got.HasError {
					t.Error("HasError = false, want true")
				}
				if got.ErrorText != "not found" {
					t.Errorf("ErrorText = %q", got.ErrorText)
				}
				if got.ParentActionID != "load article_tok" {
					t.Errorf("ParentActionID = %q", got.ParentActionID)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := dto.ToActionResponse(tt.state.Latest.ActionID, tt.state)
			tt.verify(t, got)
		})
	}
}

func TestToBatchRefreshResponse(t *testing.T) {
	t.Parallel()

	results := []ports.RefreshResult{
		{ArticleID: 1, ActionID: "load article_tok 1"},
		{ArticleID: 2, Err: errors.New("dispatch failed")},
		{ArticleID: 3, ActionID: "load article_tok 3"},
	}

	got := dto.ToBatchRefreshResponse(results)

	if got.Total != 3 {
		t.Errorf("Total = %d, want 3", got.Total)
	}
	if got.Succeeded != 2 {
		t.Errorf("Succeeded = %d, want 2", got.Succeeded)
	}
	if got.Failed != 1 {
		t.Errorf("Failed = %d, want 1", got.Failed)
	}
	if len(got.Items) != 3 {
		t.Fatalf("len(Items) = %d, want 3", len(got.Items))
	}
	if got.Items[0].ActionID != "load article_tok 1" {
		t.Errorf("Items[0].ActionID = %q", got.Items[0].ActionID)
	}
	if got.Items[1].Message != "dispatch failed" {
		t.Errorf("Items[1].Message = %q", got.Items[1].Message)
	}
	if got.Items[1].ActionID != "" {
		t.Errorf("Items[1].ActionID = %q, want empty", got.Items[1].ActionID)
	}
}
