package report

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/tradeconsole/backend/internal/domain/report"
	"github.com/tradeconsole/backend/internal/domain/shared"
)

// RecordSource loads the full record collection backing one report.
// Implementations live in infrastructure; the service treats every
// source as an opaque snapshot provider.
type RecordSource interface {
	Load(ctx context.Context) ([]report.Record, error)
}

// ResultCache is an optional read-through cache for shaped results.
// Misses and backend failures both read as "not cached"; caching is a
// performance layer and never changes what a report returns.
type ResultCache interface {
	Get(ctx context.Context, key string) (*report.ReportResult, bool)
	Set(ctx context.Context, key string, result *report.ReportResult)
}

// Service runs the report catalog: it answers which reports exist,
// derives their filter options and default date ranges, and executes
// filter-and-shape runs over the wired record sources.
type Service struct {
	defs    map[string]Definition
	order   []string
	sources map[string]RecordSource
	cache   ResultCache
	now     func() time.Time
	logger  *zap.Logger
}

// Option configures optional service collaborators.
type Option func(*Service)

// WithCache enables read-through caching of shaped results.
func WithCache(cache ResultCache) Option {
	return func(s *Service) { s.cache = cache }
}

// WithClock overrides the clock used for default date ranges.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// WithLogger sets the service logger.
func WithLogger(logger *zap.Logger) Option {
	return func(s *Service) { s.logger = logger }
}

// NewService wires the catalog to its record sources.
func NewService(sources map[string]RecordSource, opts ...Option) *Service {
	s := &Service{
		defs:    make(map[string]Definition),
		sources: sources,
		now:     time.Now,
		logger:  zap.NewNop(),
	}
	for _, def := range Catalog() {
		s.defs[def.Name] = def
		s.order = append(s.order, def.Name)
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Definitions lists the catalog in display order.
func (s *Service) Definitions() []Definition {
	defs := make([]Definition, 0, len(s.order))
	for _, name := range s.order {
		defs = append(defs, s.defs[name])
	}
	return defs
}

// Options derives the filter dropdown contents for one report, keyed by
// slot. Reports without option slots return an empty map.
func (s *Service) Options(ctx context.Context, name string) (map[string][]report.FilterOption, error) {
	def, records, err := s.load(ctx, name)
	if err != nil {
		return nil, err
	}

	options := make(map[string][]report.FilterOption, len(def.OptionSlots))
	for _, slot := range def.OptionSlots {
		options[slot.Slot] = report.ExtractOptions(records, slot.KeyPath, slot.LabelPath)
	}
	return options, nil
}

// DefaultRange derives the default date filter seed for one report.
// Reports without a date dimension still answer, collapsed to today.
func (s *Service) DefaultRange(ctx context.Context, name string) (report.DateRange, error) {
	def, records, err := s.load(ctx, name)
	if err != nil {
		return report.DateRange{}, err
	}
	return report.DetectDefaultRange(records, def.DatePath, s.now()), nil
}

// Run executes one report: load, filter, shape. The returned rows are
// presentation rows keyed exactly by the result's column keys, with the
// placeholder already substituted for absent cells.
func (s *Service) Run(ctx context.Context, name string, state report.FilterState) (*report.ReportResult, error) {
	def, ok := s.defs[name]
	if !ok {
		return nil, shared.ErrNotFound
	}

	key := cacheKey(name, state)
	if s.cache != nil {
		if cached, hit := s.cache.Get(ctx, key); hit {
			s.logger.Debug("report cache hit", zap.String("report", name))
			return cached, nil
		}
	}

	records, err := s.loadSource(ctx, def)
	if err != nil {
		return nil, err
	}

	filtered := report.FilterRecords(records, state, def.Fields)

	var result report.ReportResult
	switch {
	case def.Dynamic != nil:
		result = report.ShapeDynamic(filtered, *def.Dynamic)
		result.Rows = materializeDynamic(filtered, *def.Dynamic, result.Columns)
	case def.Static != nil:
		result = report.ShapeStatic(filtered, *def.Static)
		result.Rows = materializeStatic(filtered, result.Columns)
	default:
		return nil, shared.NewDomainError("INVALID_REPORT", fmt.Sprintf("Report %s has no shape", name))
	}

	s.logger.Info("report executed",
		zap.String("report", name),
		zap.Int("rows", len(result.Rows)),
		zap.Int("columns", len(result.Columns)))

	if s.cache != nil {
		s.cache.Set(ctx, key, &result)
	}
	return &result, nil
}

func (s *Service) load(ctx context.Context, name string) (Definition, []report.Record, error) {
	def, ok := s.defs[name]
	if !ok {
		return Definition{}, nil, shared.ErrNotFound
	}
	records, err := s.loadSource(ctx, def)
	if err != nil {
		return Definition{}, nil, err
	}
	return def, records, nil
}

func (s *Service) loadSource(ctx context.Context, def Definition) ([]report.Record, error) {
	source, ok := s.sources[def.Source]
	if !ok {
		return nil, shared.NewDomainError("SOURCE_UNAVAILABLE", fmt.Sprintf("No source wired for report %s", def.Name))
	}
	records, err := source.Load(ctx)
	if err != nil {
		s.logger.Error("record source failed",
			zap.String("report", def.Name),
			zap.String("source", def.Source),
			zap.Error(err))
		return nil, fmt.Errorf("load %s: %w", def.Source, err)
	}
	return records, nil
}

// materializeStatic flattens each record into a row keyed by column
// key, so clients render cells without re-implementing path traversal.
func materializeStatic(records []report.Record, columns []report.ColumnDescriptor) []report.Record {
	rows := make([]report.Record, len(records))
	for i, rec := range records {
		row := make(report.Record, len(columns))
		for _, col := range columns {
			row[col.Key] = report.StaticCell(rec, col)
		}
		rows[i] = row
	}
	return rows
}

func materializeDynamic(records []report.Record, spec report.DimensionSpec, columns []report.ColumnDescriptor) []report.Record {
	rows := make([]report.Record, len(records))
	for i, rec := range records {
		row := make(report.Record, len(columns)+len(rec))
		for k, v := range rec {
			if k == spec.ValuesPath {
				continue
			}
			row[k] = v
		}
		for _, col := range columns {
			row[col.Key] = spec.CellValue(rec, col)
		}
		rows[i] = row
	}
	return rows
}

// cacheKey builds a deterministic key from the report name and the
// filter state, sorted so equivalent states hit the same entry.
func cacheKey(name string, state report.FilterState) string {
	if len(state) == 0 {
		return name
	}
	slots := make([]string, 0, len(state))
	for slot := range state {
		slots = append(slots, slot)
	}
	sort.Strings(slots)

	var b strings.Builder
	b.WriteString(name)
	for _, slot := range slots {
		b.WriteByte('|')
		b.WriteString(slot)
		b.WriteByte('=')
		b.WriteString(report.Stringify(state[slot]))
	}
	return b.String()
}
