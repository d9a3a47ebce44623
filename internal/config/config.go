/* Copyright (c) 2025 Hamed Shams <https://hamedshams.com>
 * SPDX-License-Identifier: BSD-3-Clause */
package config

import (
    "log"
    "os"
    "strconv"
    "strings"
    "time"

    "github.com/zalando/go-keyring"
)

// keyringService is the service name under which the Jira session cookie may
// be stored in the OS keyring (key = JIRA_BASE_URL).
const keyringService = "jira-export"

type Config struct {
    AppEnv string
    TZ     string

    JiraBaseURL string
    JiraProject string
    JiraCookie  string

    MaxIssues   int // 0 means fetch everything the project has
    HTTPTimeout time.Duration
    PagePause   time.Duration

    OutputDir string
}

func getenv(key, def string) string {
    v := os.Getenv(key)
    if v == "" { return def }
    return v
}

func atoi(key string, def int) int {
    v := os.Getenv(key)
    if v == "" { return def }
    i, err := strconv.Atoi(v)
    if err != nil { return def }
    return i
}

func dur(key string, def time.Duration) time.Duration {
    v := os.Getenv(key)
    if v == "" { return def }
    d, err := time.ParseDuration(v)
    if err != nil { return def }
    return d
}

func Load() Config {
    cfg := Config{
        AppEnv: getenv("APP_ENV", "dev"),
        TZ:     getenv("APP_TZ", "Asia/Tehran"),

        JiraBaseURL: strings.TrimRight(strings.TrimSpace(getenv("JIRA_BASE_URL", "")), "/"),
        JiraProject: strings.TrimSpace(getenv("JIRA_PROJECT", "")),
        JiraCookie:  strings.TrimSpace(getenv("JIRA_COOKIE", "")),

        MaxIssues:   atoi("MAX_ISSUES", 0),
        HTTPTimeout: dur("HTTP_TIMEOUT", 15*time.Second),
        PagePause:   dur("PAGE_PAUSE", time.Second),

        OutputDir: getenv("OUTPUT_DIR", "."),
    }

    // Fallback: session cookie stored in the OS keyring, keyed by base URL
    if cfg.JiraCookie == "" && cfg.JiraBaseURL != "" {
        if v, err := keyring.Get(keyringService, cfg.JiraBaseURL); err == nil {
            cfg.JiraCookie = strings.TrimSpace(v)
        }
    }

    // set global timezone if available
    if loc, err := time.LoadLocation(cfg.TZ); err == nil {
        time.Local = loc
    } else {
        log.Printf("warning: cannot load TZ %s: %v", cfg.TZ, err)
    }

    return cfg
}

// SaveCookie stores the session cookie in the OS keyring for later runs.
func SaveCookie(baseURL, cookie string) error {
    return keyring.Set(keyringService, strings.TrimRight(strings.TrimSpace(baseURL), "/"), cookie)
}
