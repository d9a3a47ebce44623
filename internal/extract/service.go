/* Copyright (c) 2025 Hamed Shams <https://hamedshams.com>
 * SPDX-License-Identifier: BSD-3-Clause */
package extract

import (
    "context"
    "path/filepath"
    "time"

    "github.com/HamedShams/jira-export/internal/config"
    "github.com/HamedShams/jira-export/internal/export"
    "github.com/HamedShams/jira-export/internal/flatten"
    "github.com/rs/zerolog"
)

// IssueSource is the slice of the Jira client the pipeline needs.
type IssueSource interface {
    ProjectIssues(ctx context.Context, project string, max int) ([]map[string]any, error)
}

type Service struct {
    cfg  config.Config
    log  zerolog.Logger
    jira IssueSource
}

func New(cfg config.Config, log zerolog.Logger, jira IssueSource) *Service {
    return &Service{cfg: cfg, log: log, jira: jira}
}

// Run executes one extraction: paginate, flatten, write. A failed count
// probe aborts with no output file; a pagination failure mid-run still
// writes whatever was accumulated.
func (s *Service) Run(ctx context.Context) (string, int, error) {
    issues, err := s.jira.ProjectIssues(ctx, s.cfg.JiraProject, s.cfg.MaxIssues)
    if err != nil { return "", 0, err }

    rows := make([]flatten.Row, 0, len(issues))
    for _, raw := range issues {
        rows = append(rows, flatten.Issue(raw))
    }

    path := filepath.Join(s.cfg.OutputDir, export.FileName(s.cfg.JiraProject, time.Now()))
    if err := export.WriteCSV(path, rows); err != nil { return "", 0, err }
    s.log.Info().Int("issues", len(rows)).Str("file", path).Msg("export written")
    return path, len(rows), nil
}
