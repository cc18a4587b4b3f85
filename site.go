package portfolio

import (
	"context"
	"slices"
	"sync"

	"golang.org/x/sync/errgroup"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// LoadSection renders every document of sec and collects its tags.
// A section without a content directory yields an empty listing.
func (s *Service) LoadSection(sec Section) SectionContent {
	if !sec.HasContent() {
		return SectionContent{Content: []ContentItem{}, Tags: []string{}}
	}
	items := s.LoadDirectory(s.SectionDir(sec))
	return SectionContent{Content: items, Tags: TagsByFrequency(items)}
}

// LoadSite loads every content section concurrently. The result is keyed
// by the lowercased section title; when two titles collide the first
// section in settings order is used. Only cancellation of ctx is an error:
// per-section problems are logged and produce empty listings.
func (s *Service) LoadSite(ctx context.Context) (map[string]SectionContent, error) {
	type job struct {
		key string
		sec Section
	}

	var jobs []job
	seen := make(map[string]struct{})
	for _, sec := range s.settings.ContentSections() {
		key := cases.Lower(language.Und).String(sec.Title)
		if _, dup := seen[key]; dup {
			s.logger.Warn("site: duplicate section title, first one wins", "title", sec.Title)
			continue
		}
		seen[key] = struct{}{}
		jobs = append(jobs, job{key: key, sec: sec})
	}

	var (
		mu  sync.Mutex
		out = make(map[string]SectionContent, len(jobs))
	)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.workers)

	for _, j := range jobs {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			content := s.LoadSection(j.sec)
			mu.Lock()
			out[j.key] = content
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// TagsByFrequency returns every tag used by items, most frequent first.
// Tags with equal counts keep the order in which they first appear.
func TagsByFrequency(items []ContentItem) []string {
	counts := make(map[string]int)
	order := []string{}
	for _, it := range items {
		for _, tag := range it.Metadata.Tags {
			if counts[tag] == 0 {
				order = append(order, tag)
			}
			counts[tag]++
		}
	}
	slices.SortStableFunc(order, func(a, b string) int {
		return counts[b] - counts[a]
	})
	return order
}
