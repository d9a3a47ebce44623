/* Copyright (c) 2025 Hamed Shams <https://hamedshams.com>
 * SPDX-License-Identifier: BSD-3-Clause */
package export

import (
    "encoding/csv"
    "fmt"
    "os"
    "time"

    "github.com/HamedShams/jira-export/internal/flatten"
)

// FileName builds the output file name from the project key and a run
// timestamp, e.g. jira_issues_PROJ_20250115_093000.csv.
func FileName(project string, now time.Time) string {
    return fmt.Sprintf("jira_issues_%s_%s.csv", project, now.Format("20060102_150405"))
}

// WriteCSV serializes the rows to path as UTF-8 CSV: a header with the fixed
// column order, then one record per issue. No index column.
func WriteCSV(path string, rows []flatten.Row) error {
    f, err := os.Create(path)
    if err != nil { return fmt.Errorf("csv: create %s: %w", path, err) }

    w := csv.NewWriter(f)
    write := func() error {
        if err := w.Write(flatten.Columns); err != nil { return fmt.Errorf("csv: write header: %w", err) }
        record := make([]string, len(flatten.Columns))
        for i, row := range rows {
            for j, col := range flatten.Columns { record[j] = row[col] }
            if err := w.Write(record); err != nil { return fmt.Errorf("csv: write row %d: %w", i+1, err) }
        }
        w.Flush()
        if err := w.Error(); err != nil { return fmt.Errorf("csv: flush %s: %w", path, err) }
        return nil
    }
    if err := write(); err != nil {
        f.Close()
        return err
    }
    return f.Close()
}
