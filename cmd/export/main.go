/* Copyright (c) 2025 Hamed Shams <https://hamedshams.com>
 * SPDX-License-Identifier: BSD-3-Clause */
package main

import (
    "context"
    "os"
    "os/signal"
    "syscall"

    "github.com/HamedShams/jira-export/internal/config"
    "github.com/HamedShams/jira-export/internal/extract"
    "github.com/HamedShams/jira-export/internal/jira"
    "github.com/HamedShams/jira-export/internal/logger"
)

func main() {
    cfg := config.Load()
    log := logger.New(cfg)

    if cfg.JiraBaseURL == "" { log.Fatal().Msg("JIRA_BASE_URL is required") }
    if cfg.JiraProject == "" { log.Fatal().Msg("JIRA_PROJECT is required") }
    if cfg.JiraCookie == "" {
        log.Warn().Msg("no session cookie configured (JIRA_COOKIE or keyring); requests will be unauthenticated")
    }

    ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
    defer cancel()

    jc := jira.NewClient(cfg, log)
    svc := extract.New(cfg, log, jc)

    path, n, err := svc.Run(ctx)
    if err != nil { log.Fatal().Err(err).Str("project", cfg.JiraProject).Msg("export failed") }
    log.Info().Int("issues", n).Str("file", path).Msg("done")
}
