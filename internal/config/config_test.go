package config

import (
    "testing"
    "time"
)

func TestLoadDefaults(t *testing.T) {
    t.Setenv("JIRA_BASE_URL", "https://jira.example.com/")
    t.Setenv("JIRA_PROJECT", "DHRD")
    t.Setenv("JIRA_COOKIE", "JSESSIONID=abc")
    cfg := Load()
    if cfg.JiraBaseURL != "https://jira.example.com" { t.Fatalf("base url not normalized: %q", cfg.JiraBaseURL) }
    if cfg.JiraProject != "DHRD" { t.Fatalf("project: %q", cfg.JiraProject) }
    if cfg.MaxIssues != 0 { t.Fatalf("MaxIssues default should be 0, got %d", cfg.MaxIssues) }
    if cfg.HTTPTimeout != 15*time.Second { t.Fatalf("HTTPTimeout default: %v", cfg.HTTPTimeout) }
    if cfg.PagePause != time.Second { t.Fatalf("PagePause default: %v", cfg.PagePause) }
    if cfg.OutputDir != "." { t.Fatalf("OutputDir default: %q", cfg.OutputDir) }
}

func TestLoadOverridesAndBadValues(t *testing.T) {
    t.Setenv("JIRA_BASE_URL", "https://jira.example.com")
    t.Setenv("JIRA_COOKIE", "JSESSIONID=abc")
    t.Setenv("MAX_ISSUES", "500")
    t.Setenv("PAGE_PAUSE", "250ms")
    t.Setenv("HTTP_TIMEOUT", "not-a-duration")
    cfg := Load()
    if cfg.MaxIssues != 500 { t.Fatalf("MaxIssues: %d", cfg.MaxIssues) }
    if cfg.PagePause != 250*time.Millisecond { t.Fatalf("PagePause: %v", cfg.PagePause) }
    if cfg.HTTPTimeout != 15*time.Second { t.Fatalf("bad duration should fall back to default, got %v", cfg.HTTPTimeout) }
}
