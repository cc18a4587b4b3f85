package main

import (
	"context"
	"errors"
	"fmt"

	portfolio "github.com/felipeqf/portfolio"
	"github.com/felipeqf/portfolio/internal/assets"
	"github.com/felipeqf/portfolio/internal/config"
	"github.com/felipeqf/portfolio/internal/hints"
)

// loadService reads settings and builds a Service from the resolved flags.
func loadService(f *commonFlags, env *Environment) (*portfolio.Service, error) {
	name := f.settings
	if name == "" {
		name = config.DefaultSettingsName
	}

	settings, err := config.LoadSettings(name)
	if err != nil {
		if errors.Is(err, config.ErrSettingsNotFound) {
			var nf *config.NotFoundError
			var tried []string
			if errors.As(err, &nf) {
				tried = nf.Tried
			}
			return nil, fmt.Errorf("%w%s", err, hints.ForSettingsNotFound(tried))
		}
		return nil, err
	}

	return portfolio.New(
		portfolio.WithSettings(*settings),
		portfolio.WithContentRoot(f.root),
		portfolio.WithStaticDir(f.static),
		portfolio.WithWorkers(f.workers),
		portfolio.WithLogger(newLogger(env.Stderr, f)),
	), nil
}

// routeTypes lists the distinct route types of the content sections.
func routeTypes(svc *portfolio.Service) []string {
	seen := make(map[string]bool)
	var out []string
	for _, sec := range svc.Settings().ContentSections() {
		rt := sec.RouteType()
		if !seen[rt] {
			seen[rt] = true
			out = append(out, rt)
		}
	}
	return out
}

// sectionNotFound decorates a missing-section error with the valid choices.
func sectionNotFound(svc *portfolio.Service, routeType string) error {
	return fmt.Errorf("%w: %q%s", portfolio.ErrSectionNotFound, routeType, hints.ForSectionNotFound(routeTypes(svc)))
}

// runRoutes prints every (route type, slug) pair.
func runRoutes(args []string, env *Environment) error {
	f, rest, err := parseCommandFlags("routes", args, env, printRoutesUsage)
	if err != nil {
		return err
	}
	if len(rest) != 0 {
		return fmt.Errorf("%w: routes takes no arguments", ErrUsage)
	}

	svc, err := loadService(f, env)
	if err != nil {
		return err
	}

	routes := svc.Routes()
	if len(routes) == 0 && len(svc.Settings().ContentSections()) > 0 && !f.quiet {
		fmt.Fprintf(env.Stderr, "warning: no content found%s\n", hints.ForContentRoot())
	}
	if !f.quiet {
		for _, r := range portfolio.UnsafeRoutes(routes) {
			fmt.Fprintf(env.Stderr, "warning: /%s/%s is not URL-safe%s\n", r.Type, r.Slug, hints.ForUnsafeSlug(r.SuggestedSlug()))
		}
	}
	return writeOutput(env.Stdout, f.format, routes)
}

// runList prints one section's listing, or every section's when no route
// type is given.
func runList(ctx context.Context, args []string, env *Environment) error {
	f, rest, err := parseCommandFlags("list", args, env, printListUsage)
	if err != nil {
		return err
	}
	if len(rest) > 1 {
		return fmt.Errorf("%w: list takes at most one route type", ErrUsage)
	}

	svc, err := loadService(f, env)
	if err != nil {
		return err
	}

	if len(rest) == 0 {
		site, err := svc.LoadSite(ctx)
		if err != nil {
			return fmt.Errorf("loading site: %w", err)
		}
		return writeOutput(env.Stdout, f.format, site)
	}

	sec, ok := svc.FindSection(rest[0])
	if !ok {
		return sectionNotFound(svc, rest[0])
	}
	return writeOutput(env.Stdout, f.format, svc.LoadSection(sec))
}

// runShow prints a single rendered page and its next link.
func runShow(args []string, env *Environment) error {
	f, rest, err := parseCommandFlags("show", args, env, printShowUsage)
	if err != nil {
		return err
	}
	if len(rest) != 2 {
		return fmt.Errorf("%w: show takes <route-type> <slug>", ErrUsage)
	}

	svc, err := loadService(f, env)
	if err != nil {
		return err
	}

	routeType, slug := rest[0], rest[1]
	page, err := svc.LoadPage(routeType, slug)
	switch {
	case errors.Is(err, portfolio.ErrSectionNotFound):
		return sectionNotFound(svc, routeType)
	case errors.Is(err, portfolio.ErrItemNotFound):
		return fmt.Errorf("%w%s", err, hints.ForItemNotFound(routeType))
	case err != nil:
		return err
	}
	return writeOutput(env.Stdout, f.format, page)
}

// runCSS prints the highlight stylesheet for a theme or chroma style. With
// no argument the settings theme is used.
func runCSS(args []string, env *Environment) error {
	f, rest, err := parseCommandFlags("css", args, env, printCSSUsage)
	if err != nil {
		return err
	}
	if len(rest) > 1 {
		return fmt.Errorf("%w: css takes at most one theme or style", ErrUsage)
	}

	var theme string
	if len(rest) == 1 {
		theme = rest[0]
	} else {
		svc, err := loadService(f, env)
		if err != nil {
			return err
		}
		theme = svc.Settings().Theme
	}

	style, err := assets.StyleForTheme(theme)
	if err != nil {
		if errors.Is(err, assets.ErrStyleNotFound) {
			return fmt.Errorf("%w%s", err, hints.ForStyleNotFound(assets.StyleNames()))
		}
		return err
	}

	css, err := assets.HighlightCSS(style)
	if err != nil {
		return err
	}
	_, err = fmt.Fprint(env.Stdout, css)
	return err
}
