package flatten

import (
    "testing"

    "github.com/stretchr/testify/assert"
)

func TestComments(t *testing.T) {
    assert.Equal(t, "", Comments(nil))
    assert.Equal(t, "", Comments(map[string]any{}))
    assert.Equal(t, "", Comments(map[string]any{"comments": []any{}}))

    one := map[string]any{"comments": []any{
        map[string]any{
            "author":  map[string]any{"displayName": "Bob"},
            "created": "2024-01-01",
            "body":    "hi",
        },
    }}
    assert.Equal(t, "[2024-01-01] Bob: hi", Comments(one))

    two := map[string]any{"comments": []any{
        map[string]any{"author": map[string]any{"displayName": "Bob"}, "created": "2024-01-01", "body": "hi"},
        map[string]any{},
    }}
    assert.Equal(t, "[2024-01-01] Bob: hi\n---\n[Unknown date] Unknown: No content", Comments(two))
}

func TestIssueLinks(t *testing.T) {
    assert.Equal(t, "", IssueLinks(nil))
    assert.Equal(t, "", IssueLinks([]any{}))

    outward := []any{map[string]any{
        "type": map[string]any{"outward": "blocks", "inward": "is blocked by"},
        "outwardIssue": map[string]any{
            "key": "PROJ-2",
            "fields": map[string]any{
                "status":  map[string]any{"name": "Open"},
                "summary": "Fix it",
            },
        },
    }}
    assert.Equal(t, "outward: blocks PROJ-2 [Open] - Fix it", IssueLinks(outward))

    inward := []any{map[string]any{
        "type":        map[string]any{"inward": "is blocked by"},
        "inwardIssue": map[string]any{"key": "PROJ-3"},
    }}
    // no nested fields on the linked issue
    assert.Equal(t, "inward: is blocked by PROJ-3 [Unknown status] - No summary", IssueLinks(inward))

    // a link with neither end pointer is silently dropped
    mixed := []any{
        map[string]any{"type": map[string]any{"outward": "duplicates"}},
        map[string]any{
            "outwardIssue": map[string]any{"key": "PROJ-4"},
        },
    }
    assert.Equal(t, "outward: relates to PROJ-4 [Unknown status] - No summary", IssueLinks(mixed))
}

func TestSubtasks(t *testing.T) {
    assert.Equal(t, "", Subtasks(nil))

    subtasks := []any{
        map[string]any{
            "key": "PROJ-10",
            "fields": map[string]any{
                "status":  map[string]any{"name": "Done"},
                "summary": "Write docs",
            },
        },
        map[string]any{},
    }
    assert.Equal(t, "PROJ-10 [Done] - Write docs\nUnknown [Unknown status] - No summary", Subtasks(subtasks))
}

func TestVersions(t *testing.T) {
    assert.Equal(t, "", Versions(nil))
    versions := []any{
        map[string]any{"name": "1.0"},
        map[string]any{},
        map[string]any{"name": "2.0"},
    }
    assert.Equal(t, "1.0, Unknown, 2.0", Versions(versions))
}

func TestNamesAndLabels(t *testing.T) {
    assert.Equal(t, "", Names(nil))
    assert.Equal(t, "core, ", Names([]any{map[string]any{"name": "core"}, map[string]any{}}))
    assert.Equal(t, "a, b", Labels([]any{"a", "b"}))
}

func TestOptionText(t *testing.T) {
    assert.Equal(t, "", optionText(nil))
    assert.Equal(t, "3.2", optionText("3.2"))
    assert.Equal(t, "Billing", optionText(map[string]any{"value": "Billing"}))
    assert.Equal(t, "3.2", optionText(map[string]any{"name": "3.2"}))
    assert.Equal(t, "3.2, 3.3", optionText([]any{
        map[string]any{"name": "3.2"},
        map[string]any{"name": "3.3"},
    }))
}
