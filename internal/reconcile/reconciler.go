package reconcile

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"sync"

	"iconkit/internal/kit"
	"iconkit/internal/logging"
	"iconkit/internal/store"
	"iconkit/internal/svg"
)

// Options configures a Reconciler.
type Options struct {
	Layout   *kit.Layout
	Metadata kit.Metadata
	Store    *store.Store
	Logger   *slog.Logger
	Jobs     int
}

// Reconciler merges the two sources of truth per icon — the standalone SVG
// file and the metadata descriptor — into canonical records and stages them.
type Reconciler struct {
	layout *kit.Layout
	meta   kit.Metadata
	store  *store.Store
	logger *slog.Logger
	jobs   int
}

// Summary reports one reconciliation pass.
type Summary struct {
	Produced int
	Skipped  int
	PerStyle map[string]int
}

// New builds a Reconciler. A nil logger is replaced with a no-op one.
func New(opts Options) *Reconciler {
	jobs := opts.Jobs
	if jobs < 1 {
		jobs = 1
	}
	return &Reconciler{
		layout: opts.Layout,
		meta:   opts.Metadata,
		store:  opts.Store,
		logger: logging.NewComponentLogger(opts.Logger, "reconciler"),
		jobs:   jobs,
	}
}

// Run reconciles every (icon, style) pair implied by the kit layout and
// upserts the produced records. When styles is empty, every style directory
// under the kit is processed; otherwise only the requested styles that
// actually exist are. Pairs with no usable body from either source are
// skipped silently and surface only as a lower produced count.
//
// File reads fan out across the configured number of workers; records are
// staged in deterministic (style, name) order regardless of parallelism.
func (r *Reconciler) Run(ctx context.Context, styles []string) (*Summary, error) {
	available, err := r.layout.Styles()
	if err != nil {
		return nil, err
	}
	selected := selectStyles(available, styles)

	names := r.meta.Names()
	summary := &Summary{PerStyle: make(map[string]int, len(selected))}

	for _, style := range selected {
		records := r.reconcileStyle(ctx, style, names)
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		for _, record := range records {
			if record == nil {
				summary.Skipped++
				continue
			}
			if err := r.store.Upsert(ctx, *record); err != nil {
				return nil, fmt.Errorf("stage %s/%s: %w", record.Name, record.Style, err)
			}
			summary.Produced++
			summary.PerStyle[style]++
		}
	}

	return summary, nil
}

// reconcileStyle resolves all of one style's pairs on a bounded worker pool.
// The result slice is index-aligned with names so staging order stays stable.
func (r *Reconciler) reconcileStyle(ctx context.Context, style string, names []string) []*store.Record {
	records := make([]*store.Record, len(names))

	indexes := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < r.jobs; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range indexes {
				records[i] = r.reconcileOne(style, names[i])
			}
		}()
	}

	for i := range names {
		if ctx.Err() != nil {
			break
		}
		indexes <- i
	}
	close(indexes)
	wg.Wait()

	return records
}

// reconcileOne merges the file-based and metadata-based sources for a single
// (name, style) pair. Precedence: a parsable file wins wholesale; otherwise
// the descriptor's embedded data is normalized; with neither, the pair is
// dropped.
func (r *Reconciler) reconcileOne(style, name string) *store.Record {
	icon := r.meta[name]

	var norm *svg.Normalized
	path := r.layout.SVGPath(style, name)
	if data, err := os.ReadFile(path); err == nil {
		if parsed, ok := svg.Normalize(string(data)); ok {
			norm = parsed
		} else {
			r.logger.Debug("svg file unparsable, falling back to metadata",
				slog.String(logging.FieldStyle, style),
				slog.String(logging.FieldIcon, name))
		}
	}

	if norm == nil {
		embedded, ok := icon.SVG[style]
		if !ok {
			return nil
		}
		parsed, ok := svg.FromDescriptor(embedded.Descriptor())
		if !ok {
			r.logger.Debug("no usable body from either source",
				slog.String(logging.FieldStyle, style),
				slog.String(logging.FieldIcon, name))
			return nil
		}
		norm = parsed
	}

	viewBox := norm.ViewBox
	if viewBox == "" {
		viewBox = fmt.Sprintf("0 0 %d %d", norm.Width, norm.Height)
	}

	terms := make([]string, len(icon.Search.Terms))
	copy(terms, icon.Search.Terms)

	return &store.Record{
		Name:    name,
		Style:   style,
		Body:    norm.Body,
		Width:   norm.Width,
		Height:  norm.Height,
		ViewBox: viewBox,
		Unicode: icon.Unicode,
		Terms:   terms,
	}
}

// selectStyles narrows the available style directories to the requested set,
// preserving the available list's sorted order. An empty request selects all.
func selectStyles(available, requested []string) []string {
	if len(requested) == 0 {
		return available
	}
	want := make(map[string]struct{}, len(requested))
	for _, style := range requested {
		want[style] = struct{}{}
	}
	selected := make([]string, 0, len(requested))
	for _, style := range available {
		if _, ok := want[style]; ok {
			selected = append(selected, style)
		}
	}
	return selected
}
