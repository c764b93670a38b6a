// Package export writes analysis artefacts to disk: the filtered
// corpus as CSV and the plain-text summary report. File names carry a
// timestamp so repeated exports never clobber each other.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/threadlens/threadlens/internal/core/domain"
	"github.com/threadlens/threadlens/internal/logger"
)

// csvHeader mirrors the normalised record shape. List-valued fields
// are joined with spaces inside a single cell.
var csvHeader = []string{
	"id", "created", "platform", "community", "author",
	"title", "text", "score", "num_comments", "url",
	"hashtags", "mentions", "domains",
}

// Exporter writes CSV and report files into a target directory.
type Exporter struct {
	dir string
	now func() time.Time
}

// NewExporter creates an exporter rooted at dir. An empty dir means
// the current working directory.
func NewExporter(dir string) *Exporter {
	if dir == "" {
		dir = "."
	}
	return &Exporter{dir: dir, now: time.Now}
}

// WriteCSV streams posts as CSV to w, header first.
func (e *Exporter) WriteCSV(w io.Writer, posts []domain.Post) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}

	for i := range posts {
		p := &posts[i]
		row := []string{
			p.ID,
			p.CreatedAt.Format(time.RFC3339),
			p.Platform,
			p.Community,
			p.Author,
			p.Title,
			p.Text,
			strconv.Itoa(p.Score),
			strconv.Itoa(p.NumComments),
			p.URL,
			strings.Join(p.Hashtags, ", "),
			strings.Join(p.Mentions, ", "),
			strings.Join(p.Domains, ", "),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write csv row: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// ExportCSV writes posts to a timestamped CSV file and returns its
// path.
func (e *Exporter) ExportCSV(posts []domain.Post) (string, error) {
	path := filepath.Join(e.dir, fmt.Sprintf("social_media_data_%s.csv", e.stamp()))

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create export file: %w", err)
	}
	defer f.Close()

	if err := e.WriteCSV(f, posts); err != nil {
		return "", err
	}

	logger.Info("exported %d posts to %s", len(posts), path)
	return path, nil
}

// ExportReport writes the rendered report to a timestamped text file
// and returns its path.
func (e *Exporter) ExportReport(report string) (string, error) {
	path := filepath.Join(e.dir, fmt.Sprintf("analytics_report_%s.txt", e.stamp()))

	if err := os.WriteFile(path, []byte(report), 0644); err != nil {
		return "", fmt.Errorf("write report file: %w", err)
	}

	logger.Info("exported report to %s", path)
	return path, nil
}

func (e *Exporter) stamp() string {
	return e.now().Format("20060102_150405")
}
