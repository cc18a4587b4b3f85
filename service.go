package portfolio

import (
	"log/slog"
	"path/filepath"

	"github.com/felipeqf/portfolio/internal/assets"
	"github.com/felipeqf/portfolio/internal/pipeline"
)

// Defaults for Service options.
const (
	DefaultContentRoot = "."
	DefaultStaticDir   = "static"
)

// serviceConfig collects option values before the Service is assembled.
type serviceConfig struct {
	settings  Settings
	root      string
	staticDir string
	style     string
	workers   int
	logger    *slog.Logger
}

// Option configures a Service.
type Option func(*serviceConfig)

// WithSettings sets the site settings. The Service keeps its own copy.
func WithSettings(s Settings) Option {
	return func(c *serviceConfig) {
		c.settings = s
	}
}

// WithContentRoot sets the directory section paths are resolved against.
func WithContentRoot(dir string) Option {
	return func(c *serviceConfig) {
		if dir != "" {
			c.root = dir
		}
	}
}

// WithStaticDir sets the directory images are published into.
// Defaults to "static" under the content root.
func WithStaticDir(dir string) Option {
	return func(c *serviceConfig) {
		c.staticDir = dir
	}
}

// WithHighlightStyle overrides the chroma style derived from the theme.
func WithHighlightStyle(style string) Option {
	return func(c *serviceConfig) {
		c.style = style
	}
}

// WithWorkers sets how many sections LoadSite reads concurrently.
// Zero or negative means automatic sizing.
func WithWorkers(n int) Option {
	return func(c *serviceConfig) {
		c.workers = n
	}
}

// WithLogger sets the logger for recoverable problems (missing directories,
// unreadable documents, failed image copies).
func WithLogger(l *slog.Logger) Option {
	return func(c *serviceConfig) {
		if l != nil {
			c.logger = l
		}
	}
}

// Service runs the content pipeline for one site.
// It holds only immutable configuration and is safe for concurrent use.
type Service struct {
	settings Settings
	root     string
	workers  int
	logger   *slog.Logger
	images   *pipeline.ImageResolver
	renderer *pipeline.Renderer
}

// New creates a Service with default configuration.
// Use options to customize behavior (e.g., WithSettings, WithContentRoot).
func New(opts ...Option) *Service {
	cfg := serviceConfig{
		root:   DefaultContentRoot,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.staticDir == "" {
		cfg.staticDir = filepath.Join(cfg.root, DefaultStaticDir)
	}

	style := cfg.style
	if style == "" {
		var err error
		style, err = assets.StyleForTheme(cfg.settings.Theme)
		if err != nil {
			cfg.logger.Warn("service: unknown theme, using default highlight style",
				"theme", cfg.settings.Theme, "err", err)
			style = pipeline.DefaultHighlightStyle
		}
	}

	settings := cfg.settings
	settings.Sections = append([]Section(nil), cfg.settings.Sections...)

	for _, rt := range settings.Conflicts() {
		cfg.logger.Warn("service: sections share a route type, first one wins", "routeType", rt)
	}

	images := pipeline.NewImageResolver(cfg.staticDir, settings.BasePath, cfg.logger)

	return &Service{
		settings: settings,
		root:     cfg.root,
		workers:  ResolveWorkers(cfg.workers),
		logger:   cfg.logger,
		images:   images,
		renderer: pipeline.NewRenderer(images, pipeline.WithHighlightStyle(style)),
	}
}

// Settings returns a copy of the site settings.
func (s *Service) Settings() Settings {
	out := s.settings
	out.Sections = append([]Section(nil), s.settings.Sections...)
	return out
}

// Workers returns the resolved concurrency for LoadSite.
func (s *Service) Workers() int {
	return s.workers
}
