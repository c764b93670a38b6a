// Package jsonl loads the post corpus from a JSON-lines export file.
package jsonl

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fsnotify/fsnotify"

	"github.com/threadlens/threadlens/internal/core/domain"
	"github.com/threadlens/threadlens/internal/core/ports/driven"
	"github.com/threadlens/threadlens/internal/logger"
)

// Ensure Connector implements the interface.
var _ driven.CorpusSource = (*Connector)(nil)

// maxLineBytes bounds a single JSONL line. Reddit submissions can carry
// long selftext; 4 MiB leaves ample headroom.
const maxLineBytes = 4 * 1024 * 1024

// Connector reads a JSONL file where each line is one raw post record,
// either flat or wrapped in a "data" envelope. Per-line problems are
// logged and skipped; only a missing file aborts the load.
type Connector struct {
	path       string
	normaliser driven.Normaliser
	watcher    *fsnotify.Watcher
}

// New creates a JSONL connector for the given file path.
func New(path string, normaliser driven.Normaliser) *Connector {
	return &Connector{
		path:       path,
		normaliser: normaliser,
	}
}

// Path returns the source file path.
func (c *Connector) Path() string {
	return c.path
}

// Load reads the whole file and returns the ordered, deduplicated,
// timestamp-valid corpus.
func (c *Connector) Load(ctx context.Context) ([]domain.Post, error) {
	logger.Section("Corpus Load")
	logger.Debug("Source: %s", c.path)

	file, err := os.Open(c.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", domain.ErrSourceNotFound, c.path)
		}
		return nil, fmt.Errorf("open %s: %w", c.path, err)
	}
	defer file.Close()

	var (
		posts   []domain.Post
		seen    = make(map[string]struct{})
		lineNum int
		skipped int
		dropped int
		dupes   int
	)

	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 64*1024), maxLineBytes)

	for scanner.Scan() {
		lineNum++

		if err := ctx.Err(); err != nil {
			return nil, err
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		var raw map[string]any
		if err := json.Unmarshal([]byte(line), &raw); err != nil {
			logger.Warn("skipping malformed JSON on line %d: %v", lineNum, err)
			skipped++
			continue
		}

		post, err := c.normaliser.Normalise(raw)
		if err != nil {
			logger.Warn("skipping unusable record on line %d: %v", lineNum, err)
			skipped++
			continue
		}

		// Dedup by id, first occurrence wins.
		if post.ID != "" {
			if _, dup := seen[post.ID]; dup {
				dupes++
				continue
			}
			seen[post.ID] = struct{}{}
		}

		// Posts without a resolvable timestamp never enter the corpus.
		if post.CreatedAt.IsZero() {
			dropped++
			continue
		}

		post.CombinedText = domain.DeriveCombinedText(post.Title, post.Text)
		posts = append(posts, *post)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read %s: %w", c.path, err)
	}

	logger.Info("Loaded %d posts (%d malformed, %d duplicate, %d without timestamp)",
		len(posts), skipped, dupes, dropped)

	return posts, nil
}

// Watch reports file changes until the context is cancelled. Writes,
// creates and renames of the source file all signal a reload; the
// whole corpus is re-read, there is no incremental path.
func (c *Connector) Watch(ctx context.Context) (<-chan struct{}, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}

	// Watch the directory: editors replace files via rename, which
	// drops a watch placed on the file itself.
	dir := filepath.Dir(c.path)
	if err := watcher.Add(dir); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("watch %s: %w", dir, err)
	}

	c.watcher = watcher
	changes := make(chan struct{}, 1)

	go func() {
		defer close(changes)
		defer watcher.Close()

		target := filepath.Clean(c.path)
		for {
			select {
			case <-ctx.Done():
				return

			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Clean(event.Name) != target {
					continue
				}
				if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
					continue
				}
				logger.Debug("source changed: %s (%s)", event.Name, event.Op)
				select {
				case changes <- struct{}{}:
				default:
					// A reload is already pending.
				}

			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				logger.Warn("watch error: %v", err)
			}
		}
	}()

	return changes, nil
}

// Close releases the watcher if one is active.
func (c *Connector) Close() error {
	if c.watcher != nil {
		return c.watcher.Close()
	}
	return nil
}
