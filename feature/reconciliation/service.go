package reconciliation

import (
	"context"
	"errors"
	"fmt"
	"time"

	"figurine-manager/core/reconcile"
	"figurine-manager/core/storage"
	"figurine-manager/core/telemetry"
	"figurine-manager/feature/roster"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

var (
	// ErrTooManyInstances is returned when an input expands past the configured instance limit.
	ErrTooManyInstances = reconcile.ErrTooManyInstances
	// ErrReportNotFound is returned when no saved report has the requested id.
	ErrReportNotFound = errors.New("reconciliation: report not found")
)

// Sources label metrics and spans by where the inputs came from.
const (
	SourceInline = "inline"
	SourceRoster = "roster"
)

// Options configures a Service.
type Options struct {
	// Models provides roster requirements.
	Models reconcile.RequiredModelsProvider
	// Inventory provides the owned collection.
	Inventory reconcile.InventoryProvider
	// Client and Bucket are where saved reports go. A nil client disables saving.
	Client storage.Client
	Bucket string
	// ReportPrefix is the folder of saved reports.
	ReportPrefix string
	// MaxInstances bounds each side after expansion; zero means unlimited.
	MaxInstances int
	Logger       *zap.Logger
	// Metrics may be nil.
	Metrics *telemetry.Metrics
	// Tracer defaults to the global service tracer.
	Tracer trace.Tracer
}

// Service runs reconciliations.
type Service struct {
	opts   Options
	logger *zap.Logger
	tracer trace.Tracer
}

// NewService creates a new reconciliation service.
func NewService(opts Options) *Service {
	l := opts.Logger
	if l == nil {
		l = zap.NewNop()
	}
	tracer := opts.Tracer
	if tracer == nil {
		tracer = telemetry.Tracer()
	}
	return &Service{opts: opts, logger: l, tracer: tracer}
}

// Saved identifies a report written to storage.
type Saved struct {
	ID     string `json:"id"`
	Object string `json:"object"`
}

// ReconcileInline reconciles caller-supplied inputs without any I/O.
func (s *Service) ReconcileInline(ctx context.Context, required []reconcile.RequiredModel, owned []reconcile.OwnedItem) (*reconcile.Report, error) {
	ctx, span := s.tracer.Start(ctx, "reconciliation.inline")
	defer span.End()

	report, err := s.run(ctx, SourceInline, required, owned)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	return report, err
}

// ReconcileRoster reconciles a stored roster against the collection.
// When save is true the report is written to '<report_prefix>/<roster>/<uuid>.json'.
func (s *Service) ReconcileRoster(ctx context.Context, rosterKey string, save bool) (*reconcile.Report, *Saved, error) {
	ctx, span := s.tracer.Start(ctx, "reconciliation.roster",
		trace.WithAttributes(attribute.String("roster", rosterKey), attribute.Bool("save", save)))
	defer span.End()

	fail := func(err error) (*reconcile.Report, *Saved, error) {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, nil, err
	}

	if s.opts.Models == nil || s.opts.Inventory == nil {
		s.countError(SourceRoster)
		return fail(errors.New("reconciliation: roster and collection sources are not configured"))
	}

	required, owned, err := reconcile.Load(ctx, rosterKey, s.opts.Models, s.opts.Inventory)
	if err != nil {
		s.countError(SourceRoster)
		return fail(err)
	}

	report, err := s.run(ctx, SourceRoster, required, owned)
	if err != nil {
		return fail(err)
	}

	if !save {
		return report, nil, nil
	}
	saved, err := s.save(ctx, rosterKey, report)
	if err != nil {
		return fail(err)
	}
	return report, saved, nil
}

// Explain returns the scored candidate graph for the inputs.
func (s *Service) Explain(ctx context.Context, required []reconcile.RequiredModel, owned []reconcile.OwnedItem) (*reconcile.Explanation, error) {
	_, span := s.tracer.Start(ctx, "reconciliation.explain")
	defer span.End()

	if err := s.checkLimit(required, owned); err != nil {
		return nil, err
	}
	return reconcile.Explain(required, owned)
}

func (s *Service) run(ctx context.Context, source string, required []reconcile.RequiredModel, owned []reconcile.OwnedItem) (*reconcile.Report, error) {
	if err := s.checkLimit(required, owned); err != nil {
		s.countError(source)
		return nil, err
	}

	start := time.Now()
	report, err := reconcile.Reconcile(required, owned)
	elapsed := time.Since(start)
	if err != nil {
		s.countError(source)
		return nil, err
	}

	trace.SpanFromContext(ctx).SetAttributes(
		attribute.Int("required", report.Summary.Required),
		attribute.Int("owned", report.Summary.Owned),
		attribute.Int("matched", report.Summary.Matched),
	)
	if m := s.opts.Metrics; m != nil {
		m.ReconcileTotal.WithLabelValues(source).Inc()
		m.ReconcileDuration.Observe(elapsed.Seconds())
		m.MatchedInstances.Add(float64(report.Summary.Matched))
		m.MissingInstances.Add(float64(report.Summary.Missing))
	}
	s.logger.Debug("Reconciliation completed",
		zap.String("source", source),
		zap.Int("required", report.Summary.Required),
		zap.Int("owned", report.Summary.Owned),
		zap.Int("matched", report.Summary.Matched),
		zap.Duration("duration", elapsed),
	)
	return report, nil
}

// checkLimit rejects inputs whose instance count on either side exceeds MaxInstances.
// Without a configured limit the engine's own cap applies.
// Negative amounts are left for the engine to reject.
func (s *Service) checkLimit(required []reconcile.RequiredModel, owned []reconcile.OwnedItem) error {
	limit := s.opts.MaxInstances
	if limit <= 0 || limit > reconcile.MaxInstances {
		limit = reconcile.MaxInstances
	}

	amounts := make([]int, len(required))
	for i := range required {
		amounts[i] = required[i].Amount
	}
	if err := withinLimit("required", amounts, limit); err != nil {
		return err
	}

	amounts = make([]int, len(owned))
	for i := range owned {
		amounts[i] = owned[i].Amount
	}
	return withinLimit("owned", amounts, limit)
}

func withinLimit(side string, amounts []int, limit int) error {
	total := 0
	for _, n := range amounts {
		if n <= 0 {
			continue
		}
		if n > limit-total {
			return fmt.Errorf("%w: more than %d %s instances", ErrTooManyInstances, limit, side)
		}
		total += n
	}
	return nil
}

func (s *Service) save(ctx context.Context, rosterKey string, report *reconcile.Report) (*Saved, error) {
	if s.opts.Client == nil {
		return nil, errors.New("reconciliation: object storage is not configured")
	}

	id := uuid.New().String()
	object := storage.ObjectPath(s.opts.ReportPrefix, rosterKey, id+".json")
	if err := storage.PutJSON(ctx, s.opts.Client, s.opts.Bucket, object, report); err != nil {
		return nil, fmt.Errorf("failed to save report: %w", err)
	}

	s.logger.Info("Report saved", zap.String("roster", rosterKey), zap.String("object", object))
	return &Saved{ID: id, Object: object}, nil
}

// Report reads a saved report back from storage.
func (s *Service) Report(ctx context.Context, rosterKey, id string) (*reconcile.Report, error) {
	if s.opts.Client == nil {
		return nil, errors.New("reconciliation: object storage is not configured")
	}
	if err := roster.ValidateKey(rosterKey); err != nil {
		return nil, err
	}
	if _, err := uuid.Parse(id); err != nil {
		return nil, fmt.Errorf("%w: report id %q", roster.ErrInvalidKey, id)
	}

	var report reconcile.Report
	object := storage.ObjectPath(s.opts.ReportPrefix, rosterKey, id+".json")
	if err := storage.GetJSON(ctx, s.opts.Client, s.opts.Bucket, object, &report); err != nil {
		if errors.Is(err, storage.ErrObjectNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrReportNotFound, object)
		}
		return nil, err
	}
	return &report, nil
}

func (s *Service) countError(source string) {
	if s.opts.Metrics != nil {
		s.opts.Metrics.ReconcileErrorTotal.WithLabelValues(source).Inc()
	}
}
