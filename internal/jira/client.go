/* Copyright (c) 2025 Hamed Shams <https://hamedshams.com>
 * SPDX-License-Identifier: BSD-3-Clause */
package jira

import (
    "context"
    "encoding/json"
    "errors"
    "fmt"
    "io"
    "net/http"
    "strings"
    "time"

    "github.com/HamedShams/jira-export/internal/config"
    "github.com/rs/zerolog"
    "golang.org/x/time/rate"
)

// pageSize is Jira's maximum search batch size.
const pageSize = 100

// searchFields is the fixed field list requested on every search page.
// customfield_13751 = Target Version, customfield_13570 = Release Note,
// customfield_19850 = Module-Feature.
var searchFields = []string{
    "summary",
    "description",
    "issuetype",
    "status",
    "priority",
    "created",
    "updated",
    "reporter",
    "assignee",
    "labels",
    "components",
    "comment",
    "resolution",
    "resolutiondate",
    "issuelinks",
    "versions",
    "fixVersions",
    "customfield_13751",
    "customfield_13570",
    "subtasks",
    "watches",
    "duedate",
    "parent",
    "customfield_19850",
    "worklog",
}

type Client struct {
    baseURL string
    cookie  string
    pause   time.Duration
    http    *http.Client
    log     zerolog.Logger
}

func NewClient(cfg config.Config, log zerolog.Logger) *Client {
    return &Client{
        baseURL: strings.TrimRight(cfg.JiraBaseURL, "/"),
        cookie:  cfg.JiraCookie,
        pause:   cfg.PagePause,
        http:    &http.Client{ Timeout: cfg.HTTPTimeout },
        log:     log,
    }
}

func (c *Client) searchURL() string { return c.baseURL + "/rest/api/2/search" }

// doJSON issues one POST with the session cookie attached. There is no retry:
// the caller decides what a failed request means for the run.
func (c *Client) doJSON(ctx context.Context, u string, body any) (map[string]any, error) {
    if c.baseURL == "" { return nil, errors.New("jira: empty baseURL") }
    b, err := json.Marshal(body)
    if err != nil { return nil, err }
    req, err := http.NewRequestWithContext(ctx, http.MethodPost, u, strings.NewReader(string(b)))
    if err != nil { return nil, err }
    req.Header.Set("Accept", "application/json")
    req.Header.Set("Content-Type", "application/json")
    if c.cookie != "" { req.Header.Set("Cookie", c.cookie) }
    resp, err := c.http.Do(req)
    if err != nil { return nil, err }
    defer resp.Body.Close()
    if resp.StatusCode >= 300 {
        rb, _ := io.ReadAll(resp.Body)
        return nil, fmt.Errorf("jira api status=%d body=%s", resp.StatusCode, strings.TrimSpace(string(rb)))
    }
    var out map[string]any
    if err := json.NewDecoder(resp.Body).Decode(&out); err != nil { return nil, err }
    return out, nil
}

// CountIssues runs the zero-result probe and returns how many issues match
// the project query in total.
func (c *Client) CountIssues(ctx context.Context, jql string) (int, error) {
    out, err := c.doJSON(ctx, c.searchURL(), map[string]any{"jql": jql, "maxResults": 0})
    if err != nil { return 0, err }
    return intField(out, "total"), nil
}

// ProjectIssues fetches raw issue records for one project, newest first.
// max <= 0 means everything available. The probe is fatal; a failed or empty
// page ends pagination and whatever was accumulated is returned as-is.
func (c *Client) ProjectIssues(ctx context.Context, project string, max int) ([]map[string]any, error) {
    if project == "" { return nil, errors.New("jira: empty project key") }
    jql := fmt.Sprintf("project = %s ORDER BY created DESC", project)

    total, err := c.CountIssues(ctx, jql)
    if err != nil { return nil, fmt.Errorf("jira: issue count probe: %w", err) }
    target := total
    if max > 0 && max < total { target = max }
    c.log.Info().Int("total", total).Int("target", target).Str("project", project).Msg("jira issue count")

    // One token per page request keeps requests sequential, ordered and
    // spaced by the configured pause.
    limiter := rate.NewLimiter(rate.Every(c.pause), 1)

    issues := make([]map[string]any, 0, target)
    startAt := 0
    for len(issues) < target {
        if err := limiter.Wait(ctx); err != nil {
            c.log.Warn().Err(err).Int("fetched", len(issues)).Msg("jira pagination cancelled; keeping partial result")
            break
        }
        batch := target - len(issues)
        if batch > pageSize { batch = pageSize }
        body := map[string]any{"jql": jql, "startAt": startAt, "maxResults": batch, "fields": searchFields}
        page, err := c.doJSON(ctx, c.searchURL(), body)
        if err != nil {
            c.log.Warn().Err(err).Int("fetched", len(issues)).Msg("jira search page failed; keeping partial result")
            break
        }
        raw, _ := page["issues"].([]any)
        if len(raw) == 0 {
            c.log.Info().Int("fetched", len(issues)).Msg("jira returned an empty page; all available issues fetched")
            break
        }
        for _, it := range raw {
            if m, ok := it.(map[string]any); ok { issues = append(issues, m) }
        }
        startAt += len(raw)
        c.log.Info().Int("page", len(raw)).Int("fetched", len(issues)).Int("target", target).Msg("jira page fetched")
    }
    return issues, nil
}

func intField(m map[string]any, key string) int {
    switch v := m[key].(type) {
    case float64: return int(v)
    case int: return v
    case json.Number:
        if n, err := v.Int64(); err == nil { return int(n) }
    }
    return 0
}
