package fonts

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/MishC/Gemini-typography/internal/observability"
)

// Config configures the local font cache.
type Config struct {
	// Dir is the directory font files are cached in
	Dir string `env:"FONT_CACHE_DIR" envDefault:".fonts"`

	// RepoAPIURL is the contents API endpoint for the google/fonts ofl tree
	RepoAPIURL string `env:"FONT_REPO_API_URL" envDefault:"https://api.github.com/repos/google/fonts/contents/ofl"`

	// Timeout bounds the metadata and download requests
	Timeout time.Duration `env:"FONT_FETCH_TIMEOUT" envDefault:"30s"`
}

// Loader downloads font files on demand and remembers what it already
// has. EnsureLoaded is idempotent per family: a family already loaded in
// this process, or already present on disk, is never fetched again.
type Loader struct {
	config  Config
	client  *http.Client
	logger  *slog.Logger
	metrics *observability.Metrics

	mu     sync.Mutex
	loaded map[string]string // family -> cached file path
}

// NewLoader creates a font loader. metrics may be nil to disable
// instrumentation; a nil logger falls back to slog.Default().
func NewLoader(cfg Config, metrics *observability.Metrics, logger *slog.Logger) *Loader {
	if logger == nil {
		logger = slog.Default()
	}
	cfg.RepoAPIURL = strings.TrimSuffix(cfg.RepoAPIURL, "/")

	return &Loader{
		config:  cfg,
		client:  &http.Client{Timeout: cfg.Timeout},
		logger:  logger.With("component", "fonts"),
		metrics: metrics,
		loaded:  make(map[string]string),
	}
}

// EnsureLoaded makes sure a font file for the family is available locally
// and returns its path. Calls for an already-loaded family return the
// cached path without any network activity. Concurrent calls serialize,
// so a family is downloaded at most once.
func (l *Loader) EnsureLoaded(ctx context.Context, family string) (string, error) {
	family = strings.TrimSpace(family)
	if family == "" {
		return "", ErrEmptyFamily
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if p, ok := l.loaded[family]; ok {
		return p, nil
	}

	candidates := NormalizeFamily(family)

	// A file left by an earlier run counts as loaded
	if p, ok := l.findOnDisk(candidates[0]); ok {
		l.loaded[family] = p
		return p, nil
	}

	downloadURL, err := l.resolveDownloadURL(ctx, candidates)
	if err != nil {
		return "", err
	}

	p, err := l.download(ctx, candidates[0], downloadURL)
	if err != nil {
		return "", err
	}

	l.loaded[family] = p
	if l.metrics != nil {
		l.metrics.FontDownloads.Add(ctx, 1)
	}
	l.logger.Info("font cached", "family", family, "path", p)

	return p, nil
}

// findOnDisk looks for a previously downloaded file for the folder name.
func (l *Loader) findOnDisk(base string) (string, bool) {
	for _, ext := range []string{".ttf", ".otf"} {
		p := filepath.Join(l.config.Dir, base+ext)
		if _, err := os.Stat(p); err == nil {
			return p, true
		}
	}
	return "", false
}

// githubFile is the subset of the contents API entry the loader reads.
type githubFile struct {
	Name        string `json:"name"`
	Type        string `json:"type"`
	DownloadURL string `json:"download_url"`
}

// resolveDownloadURL finds a font file URL for the first candidate folder
// that exists, preferring a non-italic face.
func (l *Loader) resolveDownloadURL(ctx context.Context, candidates []string) (string, error) {
	var lastErr error
	for _, folder := range candidates {
		u, err := l.listFolder(ctx, folder)
		if err == nil {
			return u, nil
		}
		lastErr = err
	}
	return "", lastErr
}

func (l *Loader) listFolder(ctx context.Context, folder string) (string, error) {
	u := l.config.RepoAPIURL + "/" + url.PathEscape(folder)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("Accept", "application/vnd.github.v3+json")

	resp, err := l.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("fonts: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return "", fmt.Errorf("%w: %q", ErrNotFound, folder)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("fonts: repository listing failed: HTTP %d", resp.StatusCode)
	}

	var files []githubFile
	if err := json.NewDecoder(resp.Body).Decode(&files); err != nil {
		return "", fmt.Errorf("fonts: %w", err)
	}

	var preferred, italic string
	for _, f := range files {
		if f.Type != "file" || f.DownloadURL == "" {
			continue
		}
		lower := strings.ToLower(f.Name)
		if !strings.HasSuffix(lower, ".ttf") && !strings.HasSuffix(lower, ".otf") {
			continue
		}
		if strings.Contains(lower, "italic") {
			if italic == "" {
				italic = f.DownloadURL
			}
			continue
		}
		preferred = f.DownloadURL
		break
	}

	if preferred != "" {
		return preferred, nil
	}
	if italic != "" {
		return italic, nil
	}
	return "", fmt.Errorf("%w: %q", ErrNoFontFile, folder)
}

// download fetches the font file and writes it into the cache directory.
func (l *Loader) download(ctx context.Context, base, downloadURL string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, downloadURL, nil)
	if err != nil {
		return "", err
	}

	resp, err := l.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("fonts: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("fonts: download failed: HTTP %d", resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("fonts: %w", err)
	}

	if err := os.MkdirAll(l.config.Dir, 0o755); err != nil {
		return "", fmt.Errorf("fonts: %w", err)
	}

	ext := strings.ToLower(path.Ext(downloadURL))
	if ext != ".ttf" && ext != ".otf" {
		ext = ".ttf"
	}

	p := filepath.Join(l.config.Dir, base+ext)
	if err := os.WriteFile(p, data, 0o644); err != nil {
		return "", fmt.Errorf("fonts: %w", err)
	}
	return p, nil
}
