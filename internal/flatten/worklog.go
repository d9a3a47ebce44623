/* Copyright (c) 2025 Hamed Shams <https://hamedshams.com>
 * SPDX-License-Identifier: BSD-3-Clause */
package flatten

import (
    "fmt"
    "sort"
    "strings"
)

// SumDurationsByAuthor adds timeSpentSeconds per author display name.
// Entries without an author count under "Unknown"; entries without a
// duration count as zero.
func SumDurationsByAuthor(entries []any) map[string]int {
    totals := map[string]int{}
    for _, it := range entries {
        e := obj(it)
        author := member(e["author"], "displayName", "Unknown")
        totals[author] += num(e["timeSpentSeconds"])
    }
    return totals
}

// FormatDuration renders whole hours and minutes, "<H>h <M>m". Seconds
// inside the final minute are discarded, not rounded.
func FormatDuration(totalSeconds int) string {
    hours := totalSeconds / 3600
    minutes := (totalSeconds % 3600) / 60
    return fmt.Sprintf("%dh %dm", hours, minutes)
}

// PerAuthorFormatted maps each author to their formatted total.
func PerAuthorFormatted(entries []any) map[string]string {
    out := map[string]string{}
    for author, total := range SumDurationsByAuthor(entries) {
        out[author] = FormatDuration(total)
    }
    return out
}

// Worklog renders the worklog field ({"worklogs": [...]}) as a single cell:
// "<author>: <H>h <M>m" pairs sorted by author, joined with "; ".
func Worklog(v any) string {
    entries := items(obj(v)["worklogs"])
    if len(entries) == 0 { return "" }
    formatted := PerAuthorFormatted(entries)
    authors := make([]string, 0, len(formatted))
    for a := range formatted { authors = append(authors, a) }
    sort.Strings(authors)
    out := make([]string, 0, len(authors))
    for _, a := range authors {
        out = append(out, a+": "+formatted[a])
    }
    return strings.Join(out, "; ")
}
