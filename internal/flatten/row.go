/* Copyright (c) 2025 Hamed Shams <https://hamedshams.com>
 * SPDX-License-Identifier: BSD-3-Clause */
package flatten

import "strconv"

// Row is one flattened issue. Every column in Columns is always present;
// missing source data shows up as the column's default, never as a missing
// key.
type Row map[string]string

// Columns is the output schema, in serialization order.
var Columns = []string{
    "Key",
    "Type",
    "Summary",
    "Description",
    "Status",
    "Resolution",
    "Resolution Date",
    "Release Note",
    "Priority",
    "Created",
    "Updated",
    "Due Date",
    "Reporter",
    "Assignee",
    "Labels",
    "Components",
    "Versions",
    "Fix Versions",
    "Target Version",
    "Parent Issue",
    "Watchers",
    "Issue Links",
    "Subtasks",
    "Comments",
    "Module-Feature",
    "Worklog",
}

// Issue flattens one raw search result into a Row.
func Issue(raw map[string]any) Row {
    fields := obj(raw["fields"])

    resolution := "Unresolved"
    if r := obj(fields["resolution"]); r != nil { resolution = strOr(r["name"], "") }

    return Row{
        "Key":             strOr(raw["key"], ""),
        "Type":            member(fields["issuetype"], "name", ""),
        "Summary":         str(fields["summary"]),
        "Description":     str(fields["description"]),
        "Status":          member(fields["status"], "name", ""),
        "Resolution":      resolution,
        "Resolution Date": str(fields["resolutiondate"]),
        "Release Note":    str(fields["customfield_13570"]),
        "Priority":        member(fields["priority"], "name", ""),
        "Created":         str(fields["created"]),
        "Updated":         str(fields["updated"]),
        "Due Date":        str(fields["duedate"]),
        "Reporter":        member(fields["reporter"], "displayName", ""),
        "Assignee":        member(fields["assignee"], "displayName", ""),
        "Labels":          Labels(fields["labels"]),
        "Components":      Names(fields["components"]),
        "Versions":        Versions(fields["versions"]),
        "Fix Versions":    Versions(fields["fixVersions"]),
        "Target Version":  optionText(fields["customfield_13751"]),
        "Parent Issue":    member(fields["parent"], "key", ""),
        "Watchers":        strconv.Itoa(num(obj(fields["watches"])["watchCount"])),
        "Issue Links":     IssueLinks(fields["issuelinks"]),
        "Subtasks":        Subtasks(fields["subtasks"]),
        "Comments":        Comments(fields["comment"]),
        "Module-Feature":  optionText(fields["customfield_19850"]),
        "Worklog":         Worklog(fields["worklog"]),
    }
}
