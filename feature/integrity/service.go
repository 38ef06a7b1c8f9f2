package integrity

import (
	"context"
	"errors"

	"figurine-manager/core/storage"
	"figurine-manager/feature/integrity/checks"
	"figurine-manager/feature/roster"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

var (
	errNoStorage = errors.New("integrity: object storage is not configured")
	errNoRosters = errors.New("integrity: roster storage is not configured")
)

// Options configures a Service. Checks whose dependency is nil report "not configured".
type Options struct {
	Client storage.Client
	Bucket string
	// Region is used when the structure fix has to create the bucket.
	Region string
	// Folders are the bucket folders the structure check expects.
	Folders []string
	Rosters *roster.Provider
	DB      *gorm.DB
	Logger  *zap.Logger
}

// Report is the outcome of every check. A check that could not run leaves its
// field nil and records the reason in Errors.
type Report struct {
	Structure *checks.StructureReport `json:"structure,omitempty"`
	Rosters   *checks.RosterReport    `json:"rosters,omitempty"`
	Server    *checks.ServerReport    `json:"server,omitempty"`
	Errors    map[string]string       `json:"errors,omitempty"`
}

// Healthy reports whether every check ran and found nothing to fix.
func (r *Report) Healthy() bool {
	return len(r.Errors) == 0 &&
		r.Structure != nil && !r.Structure.NeedsFix() &&
		r.Rosters != nil && len(r.Rosters.Invalid) == 0 &&
		r.Server != nil && r.Server.Matched
}

// Service handles integrity checks.
type Service struct {
	opts   Options
	logger *zap.Logger
}

// NewService creates a new integrity service.
func NewService(opts Options) *Service {
	l := opts.Logger
	if l == nil {
		l = zap.NewNop()
	}
	return &Service{opts: opts, logger: l}
}

// CheckStructure inspects the bucket layout and, with fix, repairs it.
func (s *Service) CheckStructure(ctx context.Context, fix bool) (*checks.StructureReport, error) {
	if s.opts.Client == nil {
		return nil, errNoStorage
	}
	report, err := checks.CheckStructure(ctx, s.opts.Client, s.opts.Bucket, s.opts.Folders)
	if err != nil {
		return nil, err
	}
	if fix && report.NeedsFix() {
		if err := checks.FixStructure(ctx, s.opts.Client, s.opts.Region, s.logger, report); err != nil {
			return report, err
		}
	}
	return report, nil
}

// CheckRosters parses every stored roster.
func (s *Service) CheckRosters(ctx context.Context) (*checks.RosterReport, error) {
	if s.opts.Rosters == nil {
		return nil, errNoRosters
	}
	return checks.CheckRosters(ctx, s.opts.Rosters)
}

// CheckServer compares the collection tables against the models.
func (s *Service) CheckServer() (*checks.ServerReport, error) {
	return checks.CheckServerIntegrity(s.opts.DB)
}

// CheckAll runs every check without fixing anything.
func (s *Service) CheckAll(ctx context.Context) *Report {
	report := &Report{}
	fail := func(name string, err error) {
		if report.Errors == nil {
			report.Errors = make(map[string]string)
		}
		report.Errors[name] = err.Error()
		s.logger.Warn("Integrity check could not run", zap.String("check", name), zap.Error(err))
	}

	if r, err := s.CheckStructure(ctx, false); err != nil {
		fail("structure", err)
	} else {
		report.Structure = r
	}

	if r, err := s.CheckRosters(ctx); err != nil {
		fail("rosters", err)
	} else {
		report.Rosters = r
	}

	if r, err := s.CheckServer(); err != nil {
		fail("server", err)
	} else {
		report.Server = r
	}

	return report
}
