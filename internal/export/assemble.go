package export

import (
	"context"
	"fmt"

	"iconkit/internal/store"
	"iconkit/internal/textutil"
)

// Options carries the attribution and naming stamped into every set.
type Options struct {
	Prefix       string
	DisplayName  string
	Version      string
	AuthorName   string
	LicenseTitle string
	LicenseSPDX  string
	Dimension    int
}

// Assembler builds style-scoped icon sets from staged records.
type Assembler struct {
	store *store.Store
	opts  Options
}

// NewAssembler wraps the staging store with export options.
func NewAssembler(st *store.Store, opts Options) *Assembler {
	return &Assembler{store: st, opts: opts}
}

// Assemble builds one icon set per selected style that has at least one
// staged record; styles with zero records are omitted without error. When
// styles is empty, every staged style is exported. The second return is the
// sum of emitted record counts across all sets.
func (a *Assembler) Assemble(ctx context.Context, styles []string) ([]Assembled, int, error) {
	if len(styles) == 0 {
		staged, err := a.store.ListStyles(ctx)
		if err != nil {
			return nil, 0, err
		}
		styles = staged
	}

	sets := make([]Assembled, 0, len(styles))
	total := 0
	for _, style := range styles {
		records, err := a.store.ListByStyle(ctx, style)
		if err != nil {
			return nil, 0, err
		}
		if len(records) == 0 {
			continue
		}
		sets = append(sets, Assembled{Style: style, Set: a.buildSet(style, records)})
		total += len(records)
	}

	return sets, total, nil
}

func (a *Assembler) buildSet(style string, records []store.Record) IconSet {
	icons := make(map[string]Icon, len(records))
	for _, record := range records {
		icons[record.Name] = Icon{
			Body:   record.Body,
			Width:  record.Width,
			Height: record.Height,
		}
	}

	name := a.opts.DisplayName
	if label := textutil.HumanizeStyle(style); label != "" {
		if name != "" {
			name += " "
		}
		name += label
	}

	return IconSet{
		Prefix: fmt.Sprintf("%s-%s", a.opts.Prefix, style),
		Icons:  icons,
		Width:  a.opts.Dimension,
		Height: a.opts.Dimension,
		Info: Info{
			Name:    name,
			Total:   len(icons),
			Version: a.opts.Version,
			Author:  Author{Name: a.opts.AuthorName},
			License: License{Title: a.opts.LicenseTitle, SPDX: a.opts.LicenseSPDX},
		},
	}
}
