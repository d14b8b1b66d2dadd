package workflow

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"
	"github.com/google/uuid"

	"iconkit/internal/config"
	"iconkit/internal/export"
	"iconkit/internal/kit"
	"iconkit/internal/logging"
	"iconkit/internal/reconcile"
	"iconkit/internal/store"
)

// Manager orchestrates one conversion session: validate the kit layout,
// load metadata, reconcile every icon into the staging store, assemble the
// style icon sets, and write them out.
type Manager struct {
	cfg    *config.Config
	store  *store.Store
	logger *slog.Logger
}

// ConvertOptions narrows one conversion run.
type ConvertOptions struct {
	// Styles restricts the converted styles; empty falls back to the
	// configured styles, and an empty configuration means every style
	// present in the kit.
	Styles []string
	// Jobs overrides the configured SVG read parallelism when positive.
	Jobs int
}

// StyleResult reports one exported style.
type StyleResult struct {
	Style string `json:"style"`
	Icons int    `json:"icons"`
	File  string `json:"file"`
}

// Summary reports a completed conversion session.
type Summary struct {
	SessionID string        `json:"session_id"`
	KitDir    string        `json:"kit_dir"`
	OutputDir string        `json:"output_dir"`
	Styles    []StyleResult `json:"styles"`
	Icons     int           `json:"icons"`
	Skipped   int           `json:"skipped"`
	Elapsed   time.Duration `json:"elapsed"`
}

// NewManager wires a conversion manager. A nil logger disables logging.
func NewManager(cfg *config.Config, st *store.Store, logger *slog.Logger) *Manager {
	return &Manager{
		cfg:    cfg,
		store:  st,
		logger: logging.NewComponentLogger(logger, "workflow"),
	}
}

// Convert runs a full conversion session. Structural kit problems abort the
// session before any icon work; per-icon problems never do.
func (m *Manager) Convert(ctx context.Context, opts ConvertOptions) (*Summary, error) {
	sessionID := uuid.NewString()
	logger := logging.WithSession(m.logger, sessionID)
	started := time.Now()

	layout := kit.NewLayout(m.cfg.Paths.KitDir)
	if err := layout.Validate(); err != nil {
		return nil, err
	}

	meta, err := kit.LoadMetadata(layout.MetadataFile())
	if err != nil {
		return nil, fmt.Errorf("load metadata: %w", err)
	}
	logger.Info("kit loaded",
		slog.String("kit_dir", m.cfg.Paths.KitDir),
		slog.Int("metadata_entries", len(meta)))

	// The staging table reflects exactly one pass over the kit.
	if err := m.store.Clear(ctx); err != nil {
		return nil, err
	}

	styles := opts.Styles
	if len(styles) == 0 {
		styles = m.cfg.IconSet.Styles
	}
	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = m.cfg.Convert.Jobs
	}

	reconciler := reconcile.New(reconcile.Options{
		Layout:   layout,
		Metadata: meta,
		Store:    m.store,
		Logger:   logger,
		Jobs:     jobs,
	})
	recSummary, err := reconciler.Run(ctx, styles)
	if err != nil {
		return nil, fmt.Errorf("reconcile: %w", err)
	}
	logger.Info("reconciliation finished",
		slog.Int("produced", recSummary.Produced),
		slog.Int("skipped", recSummary.Skipped))

	assembler := export.NewAssembler(m.store, export.Options{
		Prefix:       m.cfg.IconSet.Prefix,
		DisplayName:  m.cfg.IconSet.DisplayName,
		Version:      m.cfg.IconSet.Version,
		AuthorName:   m.cfg.IconSet.AuthorName,
		LicenseTitle: m.cfg.IconSet.LicenseTitle,
		LicenseSPDX:  m.cfg.IconSet.LicenseSPDX,
		Dimension:    m.cfg.IconSet.DefaultDimension,
	})
	sets, total, err := assembler.Assemble(ctx, styles)
	if err != nil {
		return nil, fmt.Errorf("assemble: %w", err)
	}

	files, err := m.writeLocked(sets)
	if err != nil {
		return nil, err
	}

	summary := &Summary{
		SessionID: sessionID,
		KitDir:    m.cfg.Paths.KitDir,
		OutputDir: m.cfg.Paths.OutputDir,
		Icons:     total,
		Skipped:   recSummary.Skipped,
		Elapsed:   time.Since(started),
	}
	for i, assembled := range sets {
		summary.Styles = append(summary.Styles, StyleResult{
			Style: assembled.Style,
			Icons: assembled.Set.Info.Total,
			File:  files[i],
		})
	}

	logger.Info("conversion finished",
		slog.Int("styles", len(summary.Styles)),
		slog.Int("icons", summary.Icons),
		slog.Duration("elapsed", summary.Elapsed))
	return summary, nil
}

// writeLocked holds an exclusive lock on the output directory while the
// icon-set documents are written, so concurrent runs cannot interleave files.
func (m *Manager) writeLocked(sets []export.Assembled) ([]string, error) {
	outputDir := m.cfg.Paths.OutputDir
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return nil, fmt.Errorf("create output directory: %w", err)
	}

	lock := flock.New(filepath.Join(outputDir, ".iconkit.lock"))
	ok, err := lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("acquire output lock: %w", err)
	}
	if !ok {
		return nil, errors.New("another iconkit run is writing to the output directory")
	}
	defer func() { _ = lock.Unlock() }()

	return export.Write(outputDir, sets)
}
