package store

import (
	"errors"
	"strings"
	"testing"
)

func TestBuildListPublishedPostsQuery(t *testing.T) {
	query, args, err := buildListPublishedPostsQuery()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.Contains(query, "p.published = $1") {
		t.Errorf("expected published filter, got: %s", query)
	}
	if !strings.Contains(query, "ORDER BY p.created_at DESC") {
		t.Errorf("expected newest-first ordering, got: %s", query)
	}
	if !strings.Contains(query, "JOIN users u ON u.id = p.author_id") {
		t.Errorf("expected author join, got: %s", query)
	}
	if len(args) != 1 || args[0] != true {
		t.Errorf("expected args [true], got: %v", args)
	}
}

func TestBuildUpdatePostQuery_TitleOnly(t *testing.T) {
	title := "New title"

	query, args, err := buildUpdatePostQuery(5, &title, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.Contains(query, "title = ") {
		t.Errorf("expected title assignment, got: %s", query)
	}
	if strings.Contains(query, "content = ") {
		t.Errorf("content must not be touched, got: %s", query)
	}
	if !strings.Contains(query, "published = ") {
		t.Errorf("every edit must reset published, got: %s", query)
	}
	if !strings.Contains(query, "updated_at = CURRENT_TIMESTAMP") {
		t.Errorf("expected updated_at bump, got: %s", query)
	}
	if !strings.Contains(query, "RETURNING id, title, content, published, author_id, created_at, updated_at") {
		t.Errorf("expected RETURNING clause, got: %s", query)
	}

	// args: published=false, title, postID
	if len(args) != 3 {
		t.Fatalf("expected 3 args, got: %v", args)
	}
	if args[0] != false {
		t.Errorf("expected published=false as first arg, got: %v", args[0])
	}
	if args[1] != title {
		t.Errorf("expected title arg, got: %v", args[1])
	}
	if args[2] != int64(5) {
		t.Errorf("expected post id arg, got: %v", args[2])
	}
}

func TestBuildUpdatePostQuery_BothFields(t *testing.T) {
	title := "New title"
	content := "New content"

	query, args, err := buildUpdatePostQuery(7, &title, &content)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.Contains(query, "title = ") || !strings.Contains(query, "content = ") {
		t.Errorf("expected both assignments, got: %s", query)
	}
	if len(args) != 4 {
		t.Errorf("expected 4 args, got: %v", args)
	}
}

func TestBuildUpdatePostQuery_NoFields(t *testing.T) {
	_, _, err := buildUpdatePostQuery(5, nil, nil)
	if !errors.Is(err, ErrBuildingSQLQuery) {
		t.Fatalf("expected ErrBuildingSQLQuery, got %v", err)
	}
}
