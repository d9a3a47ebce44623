/* Copyright (c) 2025 Hamed Shams <https://hamedshams.com>
 * SPDX-License-Identifier: BSD-3-Clause */

// Package flatten turns raw Jira issue payloads (decoded as map[string]any)
// into flat CSV-ready rows. Every function here is total: absent or malformed
// input yields a documented default, never an error.
package flatten

import (
    "fmt"
    "strings"
)

func str(v any) string {
    if v == nil { return "" }
    if s, ok := v.(string); ok { return s }
    return fmt.Sprintf("%v", v)
}

func strOr(v any, def string) string {
    s, ok := v.(string)
    if !ok || s == "" { return def }
    return s
}

func obj(v any) map[string]any {
    m, _ := v.(map[string]any)
    return m
}

func items(v any) []any {
    l, _ := v.([]any)
    return l
}

func num(v any) int {
    switch t := v.(type) {
    case float64: return int(t)
    case int: return t
    }
    return 0
}

// member pulls a named attribute out of a nested object, e.g.
// member(fields["status"], "name", "Unknown status").
func member(v any, key, def string) string {
    m := obj(v)
    if m == nil { return def }
    return strOr(m[key], def)
}

// Comments renders the comment field ({"comments": [...]}) as one block,
// "[<created>] <author>: <body>" per comment separated by "---" lines.
func Comments(v any) string {
    list := items(obj(v)["comments"])
    if len(list) == 0 { return "" }
    out := make([]string, 0, len(list))
    for _, it := range list {
        c := obj(it)
        author := member(c["author"], "displayName", "Unknown")
        created := strOr(c["created"], "Unknown date")
        body := strOr(c["body"], "No content")
        out = append(out, fmt.Sprintf("[%s] %s: %s", created, author, body))
    }
    return strings.Join(out, "\n---\n")
}

// IssueLinks renders one line per link. Direction is decided by which end
// pointer is present; links carrying neither inwardIssue nor outwardIssue
// are dropped.
func IssueLinks(v any) string {
    list := items(v)
    if len(list) == 0 { return "" }
    out := make([]string, 0, len(list))
    for _, it := range list {
        l := obj(it)
        if l == nil { continue }
        var direction, relation string
        var linked map[string]any
        if lo := obj(l["outwardIssue"]); lo != nil {
            direction, relation, linked = "outward", member(l["type"], "outward", "relates to"), lo
        } else if li := obj(l["inwardIssue"]); li != nil {
            direction, relation, linked = "inward", member(l["type"], "inward", "is related to by"), li
        } else {
            continue
        }
        key := strOr(linked["key"], "Unknown")
        status := "Unknown status"
        summary := "No summary"
        if f := obj(linked["fields"]); f != nil {
            status = member(f["status"], "name", "Unknown status")
            summary = strOr(f["summary"], "No summary")
        }
        out = append(out, fmt.Sprintf("%s: %s %s [%s] - %s", direction, relation, key, status, summary))
    }
    return strings.Join(out, "\n")
}

// Subtasks renders "<key> [<status>] - <summary>" per line.
func Subtasks(v any) string {
    list := items(v)
    if len(list) == 0 { return "" }
    out := make([]string, 0, len(list))
    for _, it := range list {
        s := obj(it)
        key := strOr(s["key"], "Unknown")
        status := "Unknown status"
        summary := "No summary"
        if f := obj(s["fields"]); f != nil {
            status = member(f["status"], "name", "Unknown status")
            summary = strOr(f["summary"], "No summary")
        }
        out = append(out, fmt.Sprintf("%s [%s] - %s", key, status, summary))
    }
    return strings.Join(out, "\n")
}

// Versions joins version names with ", "; a version without a name renders
// as "Unknown".
func Versions(v any) string {
    list := items(v)
    if len(list) == 0 { return "" }
    out := make([]string, 0, len(list))
    for _, it := range list {
        out = append(out, member(it, "name", "Unknown"))
    }
    return strings.Join(out, ", ")
}

// Names joins object names with ", ", empty default (components column).
func Names(v any) string {
    list := items(v)
    if len(list) == 0 { return "" }
    out := make([]string, 0, len(list))
    for _, it := range list {
        out = append(out, member(it, "name", ""))
    }
    return strings.Join(out, ", ")
}

// Labels joins plain string entries with ", ".
func Labels(v any) string {
    list := items(v)
    if len(list) == 0 { return "" }
    out := make([]string, 0, len(list))
    for _, it := range list {
        out = append(out, str(it))
    }
    return strings.Join(out, ", ")
}

// optionText normalizes a custom-field value of unknown shape: a plain
// string stays as-is, an option object yields its value/name, a list of
// either is comma-joined.
func optionText(v any) string {
    if v == nil { return "" }
    switch t := v.(type) {
    case string:
        return t
    case map[string]any:
        if s, ok := t["value"].(string); ok { return s }
        if s, ok := t["name"].(string); ok { return s }
        return str(v)
    case []any:
        vals := make([]string, 0, len(t))
        for _, it := range t {
            switch m := it.(type) {
            case map[string]any:
                if s, ok := m["value"].(string); ok { vals = append(vals, s); continue }
                if s, ok := m["name"].(string); ok { vals = append(vals, s); continue }
            case string:
                vals = append(vals, m)
            }
        }
        return strings.Join(vals, ", ")
    default:
        return str(v)
    }
}
