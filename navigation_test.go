package portfolio

import (
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"pgregory.net/rapid"
)

func navItem(slug string, order DisplayOrder, date string, skip bool) NavigationItem {
	return NavigationItem{Slug: slug, Title: strings.ToUpper(slug), Date: date, Skip: skip, DisplayOrder: order}
}

// ---------------------------------------------------------------------------
// TestNavigationIndex - Cycle construction and lookups
// ---------------------------------------------------------------------------

func TestNavigationIndex_Successors(t *testing.T) {
	t.Parallel()

	idx := NewNavigationIndex([]NavigationItem{
		navItem("c", 3, "", false),
		navItem("a", 1, "", false),
		navItem("hidden", 2, "", true),
		navItem("b", 2, "", false),
	}, "projects")

	var order []string
	for _, it := range idx.Items() {
		order = append(order, it.Slug)
	}
	if !slices.Equal(order, []string{"a", "b", "c"}) {
		t.Errorf("Items() = %v, want [a b c]", order)
	}

	succ := idx.Successors()
	want := map[string]string{"a": "b", "b": "c", "c": "a"}
	if len(succ) != len(want) {
		t.Fatalf("Successors() has %d entries, want %d: %v", len(succ), len(want), succ)
	}
	for from, to := range want {
		ref, ok := succ[from]
		if !ok {
			t.Errorf("Successors()[%q] missing", from)
			continue
		}
		if ref.Slug != to || ref.Type != "projects" || ref.Title != strings.ToUpper(to) {
			t.Errorf("Successors()[%q] = %+v, want slug %q", from, ref, to)
		}
	}
	if _, ok := succ["hidden"]; ok {
		t.Error("skipped item should have no successor entry")
	}
}

func TestNavigationIndex_FindNext(t *testing.T) {
	t.Parallel()

	idx := NewNavigationIndex([]NavigationItem{
		navItem("first", 1, "", false),
		navItem("skipped", 2, "", true),
		navItem("second", 3, "", false),
		navItem("last-skipped", 4, "", true),
	}, "blog")

	tests := []struct {
		slug   string
		want   string
		wantOK bool
	}{
		{"first", "second", true},
		{"second", "first", true},
		{"skipped", "second", true},
		{"last-skipped", "first", true},
		{"unknown", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.slug, func(t *testing.T) {
			t.Parallel()

			ref, ok := idx.FindNext(tt.slug)
			if ok != tt.wantOK {
				t.Fatalf("FindNext(%q) ok = %v, want %v", tt.slug, ok, tt.wantOK)
			}
			if ref.Slug != tt.want {
				t.Errorf("FindNext(%q) = %q, want %q", tt.slug, ref.Slug, tt.want)
			}
			if ok && ref.Type != "blog" {
				t.Errorf("FindNext(%q).Type = %q, want blog", tt.slug, ref.Type)
			}
		})
	}
}

func TestNavigationIndex_Small(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		items []NavigationItem
	}{
		{"empty", nil},
		{"single item", []NavigationItem{navItem("only", Unordered, "", false)}},
		{"single visible item", []NavigationItem{navItem("only", 1, "", false), navItem("gone", 2, "", true)}},
		{"all skipped", []NavigationItem{navItem("a", 1, "", true), navItem("b", 2, "", true)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			idx := NewNavigationIndex(tt.items, "x")
			if got := idx.Successors(); len(got) != 0 {
				t.Errorf("Successors() = %v, want empty", got)
			}
			for _, it := range tt.items {
				if ref, ok := idx.FindNext(it.Slug); ok {
					t.Errorf("FindNext(%q) = %+v, want none", it.Slug, ref)
				}
			}
		})
	}
}

func TestNavigationIndex_DoesNotAliasInput(t *testing.T) {
	t.Parallel()

	items := []NavigationItem{navItem("b", 2, "", false), navItem("a", 1, "", false)}
	idx := NewNavigationIndex(items, "x")
	if items[0].Slug != "b" {
		t.Error("NewNavigationIndex should not reorder the caller's slice")
	}
	got := idx.Items()
	got[0].Slug = "mutated"
	if idx.Items()[0].Slug != "a" {
		t.Error("Items() should return a copy")
	}
}

// ---------------------------------------------------------------------------
// TestBuildSuccessors - Precomputed map over sorted items
// ---------------------------------------------------------------------------

func TestBuildSuccessors(t *testing.T) {
	t.Parallel()

	items := []ContentItem{
		item("one", 1, ""),
		item("two", 2, ""),
		item("three", 3, ""),
	}
	items[1].Metadata.Skip = true

	succ := BuildSuccessors(items, "work")
	if len(succ) != 2 {
		t.Fatalf("BuildSuccessors() = %v, want 2 entries", succ)
	}
	if succ["one"].Slug != "three" || succ["three"].Slug != "one" {
		t.Errorf("BuildSuccessors() = %v", succ)
	}
	if succ["one"].Type != "work" {
		t.Errorf("Type = %q, want work", succ["one"].Type)
	}
}

func TestFindNext_MatchesSuccessors(t *testing.T) {
	t.Parallel()

	rapid.Check(t, func(t *rapid.T) {
		n := rapid.IntRange(0, 8).Draw(t, "n")
		items := make([]NavigationItem, n)
		for i := range items {
			items[i] = navItem(
				string(rune('a'+i)),
				rapid.SampledFrom(orderPool).Draw(t, "order"),
				rapid.SampledFrom(datePool).Draw(t, "date"),
				rapid.Bool().Draw(t, "skip"),
			)
		}

		idx := NewNavigationIndex(items, "r")
		succ := idx.Successors()
		for _, it := range items {
			ref, ok := idx.FindNext(it.Slug)
			if it.Skip {
				if _, in := succ[it.Slug]; in {
					t.Fatalf("skipped slug %q in Successors()", it.Slug)
				}
				if ok && ref.Slug == it.Slug {
					t.Fatalf("FindNext(%q) returned a skipped item", it.Slug)
				}
				continue
			}
			want, wantOK := succ[it.Slug]
			if ok != wantOK || ref != want {
				t.Fatalf("FindNext(%q) = %+v, %v; Successors() has %+v, %v", it.Slug, ref, ok, want, wantOK)
			}
		}
	})
}

func TestSuccessors_SingleCycle(t *testing.T) {
	t.Parallel()

	rapid.Check(t, func(t *rapid.T) {
		n := rapid.IntRange(0, 10).Draw(t, "n")
		items := make([]NavigationItem, n)
		retained := 0
		for i := range items {
			skip := rapid.Bool().Draw(t, "skip")
			if !skip {
				retained++
			}
			items[i] = navItem(
				string(rune('a'+i)),
				rapid.SampledFrom(orderPool).Draw(t, "order"),
				rapid.SampledFrom(datePool).Draw(t, "date"),
				skip,
			)
		}

		succ := NewNavigationIndex(items, "r").Successors()
		if retained < 2 {
			if len(succ) != 0 {
				t.Fatalf("%d retained items gave successors %v", retained, succ)
			}
			return
		}
		if len(succ) != retained {
			t.Fatalf("Successors() has %d entries, want %d", len(succ), retained)
		}

		// From any start, following successors visits every retained slug
		// exactly once before returning.
		for start := range succ {
			seen := map[string]bool{start: true}
			cur := start
			for step := 1; step < retained; step++ {
				cur = succ[cur].Slug
				if seen[cur] {
					t.Fatalf("cycle from %q revisits %q after %d steps", start, cur, step)
				}
				seen[cur] = true
			}
			if next := succ[cur].Slug; next != start {
				t.Fatalf("cycle from %q ends at %q, want %q", start, next, start)
			}
		}
	})
}

// ---------------------------------------------------------------------------
// TestLoadNavigation - Front matter only index from disk
// ---------------------------------------------------------------------------

func TestLoadNavigation(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeFiles(t, root, projectFiles)
	svc, logs := newTestService(t, root, projectsSettings())

	dir := filepath.Join(root, "content", "projects")
	idx := svc.LoadNavigation(dir, "my-projects")

	var order []string
	for _, it := range idx.Items() {
		order = append(order, it.Slug)
	}
	// alpha has an explicit order; beta is newer than delta's epoch date.
	if !slices.Equal(order, []string{"alpha", "beta", "delta"}) {
		t.Errorf("Items() = %v, want [alpha beta delta]", order)
	}

	// gamma is skipped and sorts between beta and delta.
	ref, ok := idx.FindNext("gamma")
	if !ok || ref.Slug != "delta" {
		t.Errorf("FindNext(gamma) = %+v, %v; want delta", ref, ok)
	}
	ref, ok = idx.FindNext("delta")
	if !ok || ref.Slug != "alpha" {
		t.Errorf("FindNext(delta) = %+v, %v; want alpha", ref, ok)
	}

	if fileExists(filepath.Join(root, "static", "content", "projects", "cover.png")) {
		t.Error("LoadNavigation should not publish images")
	}

	missing := svc.LoadNavigation(filepath.Join(root, "nope"), "nope")
	if len(missing.Items()) != 0 {
		t.Errorf("missing directory gave %d items", len(missing.Items()))
	}
	if !strings.Contains(logs.String(), "navigation: could not list directory") {
		t.Errorf("expected a warning for the missing directory, logs:\n%s", logs)
	}
}
