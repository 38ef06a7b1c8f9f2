package reconciliation

import (
	"context"
	"errors"
	"io"
	"math"
	"strings"
	"testing"

	"figurine-manager/core/config"
	"figurine-manager/core/reconcile"
	"figurine-manager/core/storage/mocks"
	"figurine-manager/core/telemetry"
	"figurine-manager/core/utils"
	"figurine-manager/feature/roster"

	"github.com/minio/minio-go/v7"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.uber.org/zap"
)

type mockModels struct {
	mock.Mock
}

func (m *mockModels) RequiredModels(ctx context.Context, key string) ([]reconcile.RequiredModel, error) {
	args := m.Called(ctx, key)
	if v, ok := args.Get(0).([]reconcile.RequiredModel); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

type mockInventory struct {
	mock.Mock
}

func (m *mockInventory) OwnedItems(ctx context.Context) ([]reconcile.OwnedItem, error) {
	args := m.Called(ctx)
	if v, ok := args.Get(0).([]reconcile.OwnedItem); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

func warriors(n int) []reconcile.RequiredModel {
	return []reconcile.RequiredModel{{Name: "Warrior", Unit: utils.Ptr("Squad A"), Amount: n}}
}

func ownedWarriors(n int) []reconcile.OwnedItem {
	return []reconcile.OwnedItem{{
		Name:     "Warrior mini",
		Amount:   n,
		Criteria: []reconcile.MatchCriterion{{Name: "Warrior"}},
	}}
}

type ServiceSuite struct {
	suite.Suite
	models    *mockModels
	inventory *mockInventory
	client    *mocks.Client
	metrics   *telemetry.Metrics
	recorder  *tracetest.SpanRecorder
	service   *Service
}

func (s *ServiceSuite) SetupTest() {
	s.models = new(mockModels)
	s.inventory = new(mockInventory)
	s.client = new(mocks.Client)
	s.metrics = telemetry.NewMetrics()
	s.recorder = tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(s.recorder))

	s.service = NewService(Options{
		Models:       s.models,
		Inventory:    s.inventory,
		Client:       s.client,
		Bucket:       "figurines",
		ReportPrefix: "reports",
		MaxInstances: 10,
		Logger:       zap.NewNop(),
		Metrics:      s.metrics,
		Tracer:       tp.Tracer(telemetry.TracerName),
	})
}

func (s *ServiceSuite) TestInline() {
	report, err := s.service.ReconcileInline(context.Background(), warriors(3), ownedWarriors(2))
	s.Require().NoError(err)
	s.Len(report.Matches, 2)
	s.Require().Len(report.Missing, 1)
	s.Equal(1, report.Missing[0].Amount)

	s.Equal(float64(1), testutil.ToFloat64(s.metrics.ReconcileTotal.WithLabelValues(SourceInline)))
	s.Equal(float64(2), testutil.ToFloat64(s.metrics.MatchedInstances))
	s.Equal(float64(1), testutil.ToFloat64(s.metrics.MissingInstances))

	spans := s.recorder.Ended()
	s.Require().Len(spans, 1)
	s.Equal("reconciliation.inline", spans[0].Name())
}

func (s *ServiceSuite) TestInlineInvalidAmount() {
	_, err := s.service.ReconcileInline(context.Background(), warriors(-1), nil)
	s.ErrorIs(err, reconcile.ErrInvalidAmount)
	s.Equal(float64(1), testutil.ToFloat64(s.metrics.ReconcileErrorTotal.WithLabelValues(SourceInline)))
}

func (s *ServiceSuite) TestInstanceLimit() {
	_, err := s.service.ReconcileInline(context.Background(), warriors(11), nil)
	s.ErrorIs(err, ErrTooManyInstances)

	_, err = s.service.ReconcileInline(context.Background(), nil, ownedWarriors(11))
	s.ErrorIs(err, ErrTooManyInstances)

	_, err = s.service.Explain(context.Background(), warriors(11), nil)
	s.ErrorIs(err, ErrTooManyInstances)

	_, err = s.service.ReconcileInline(context.Background(), warriors(10), ownedWarriors(10))
	s.NoError(err)
}

func (s *ServiceSuite) TestInstanceLimitOverflow() {
	huge := []reconcile.RequiredModel{{Name: "A", Amount: math.MaxInt}, {Name: "B", Amount: 2}}

	_, err := s.service.ReconcileInline(context.Background(), huge, nil)
	s.ErrorIs(err, ErrTooManyInstances)

	unlimited := NewService(Options{})
	_, err = unlimited.ReconcileInline(context.Background(), huge, nil)
	s.ErrorIs(err, ErrTooManyInstances)

	_, err = unlimited.Explain(context.Background(), nil, []reconcile.OwnedItem{{Name: "A", Amount: math.MaxInt}, {Name: "B", Amount: math.MaxInt}})
	s.ErrorIs(err, ErrTooManyInstances)
}

func (s *ServiceSuite) TestDefaultLimitRejectsDenseRequest() {
	cfg, err := config.LoadConfig(s.T().TempDir())
	s.Require().NoError(err)
	svc := NewService(Options{MaxInstances: cfg.Reconcile.MaxInstances})

	n := cfg.Reconcile.MaxInstances + 1
	required := []reconcile.RequiredModel{{Name: "Any", Amount: n}}
	owned := []reconcile.OwnedItem{{Name: "Wildcard", Amount: n, Criteria: []reconcile.MatchCriterion{{}}}}

	_, err = svc.ReconcileInline(context.Background(), required, owned)
	s.ErrorIs(err, ErrTooManyInstances)
}

func (s *ServiceSuite) TestRoster() {
	s.models.On("RequiredModels", mock.Anything, "border").Return(warriors(2), nil)
	s.inventory.On("OwnedItems", mock.Anything).Return(ownedWarriors(5), nil)

	report, saved, err := s.service.ReconcileRoster(context.Background(), "border", false)
	s.Require().NoError(err)
	s.Nil(saved)
	s.Len(report.Matches, 2)
	s.Empty(report.Missing)
	s.Require().Len(report.Spare, 1)
	s.Equal(3, report.Spare[0].Amount)
	s.client.AssertNotCalled(s.T(), "PutObject", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (s *ServiceSuite) TestRosterSave() {
	s.models.On("RequiredModels", mock.Anything, "border").Return(warriors(1), nil)
	s.inventory.On("OwnedItems", mock.Anything).Return(ownedWarriors(1), nil)
	s.client.On("PutObject", mock.Anything, "figurines", mock.MatchedBy(func(name string) bool {
		return strings.HasPrefix(name, "reports/border/") && strings.HasSuffix(name, ".json")
	}), mock.Anything, mock.Anything, mock.Anything).Return(minio.UploadInfo{}, nil)

	_, saved, err := s.service.ReconcileRoster(context.Background(), "border", true)
	s.Require().NoError(err)
	s.Require().NotNil(saved)
	s.NotEmpty(saved.ID)
	s.Equal("reports/border/"+saved.ID+".json", saved.Object)
	s.client.AssertExpectations(s.T())
}

func (s *ServiceSuite) TestRosterSaveFailure() {
	s.models.On("RequiredModels", mock.Anything, "border").Return(warriors(1), nil)
	s.inventory.On("OwnedItems", mock.Anything).Return(ownedWarriors(1), nil)
	s.client.On("PutObject", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(minio.UploadInfo{}, errors.New("bucket is read-only"))

	_, _, err := s.service.ReconcileRoster(context.Background(), "border", true)
	s.ErrorContains(err, "failed to save report")
}

func (s *ServiceSuite) TestRosterNotFound() {
	s.models.On("RequiredModels", mock.Anything, "ghost").Return(nil, roster.ErrNotFound)
	s.inventory.On("OwnedItems", mock.Anything).Return(ownedWarriors(1), nil)

	_, _, err := s.service.ReconcileRoster(context.Background(), "ghost", false)
	s.ErrorIs(err, roster.ErrNotFound)
	s.Equal(float64(1), testutil.ToFloat64(s.metrics.ReconcileErrorTotal.WithLabelValues(SourceRoster)))

	spans := s.recorder.Ended()
	s.Require().Len(spans, 1)
	s.Equal("reconciliation.roster", spans[0].Name())
	s.Equal("Error", spans[0].Status().Code.String())
}

func (s *ServiceSuite) TestReport() {
	id := "3f1c9a52-0b8e-4d6a-9a43-1f0c2b7e5d11"
	body := `{"matches":[],"missing":[{"name":"Warrior","amount":2}],"spare":[],"summary":{"required":2,"missing":2}}`
	s.client.On("GetObject", mock.Anything, "figurines", "reports/border/"+id+".json", mock.Anything).
		Return(io.NopCloser(strings.NewReader(body)), nil)

	report, err := s.service.Report(context.Background(), "border", id)
	s.Require().NoError(err)
	s.Require().Len(report.Missing, 1)
	s.Equal(2, report.Missing[0].Amount)
	s.Equal(2, report.Summary.Required)
}

func (s *ServiceSuite) TestReportNotFound() {
	id := "3f1c9a52-0b8e-4d6a-9a43-1f0c2b7e5d11"
	s.client.On("GetObject", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(nil, minio.ErrorResponse{Code: "NoSuchKey"})

	_, err := s.service.Report(context.Background(), "border", id)
	s.ErrorIs(err, ErrReportNotFound)
	s.Equal(404, StatusFor(err))
}

func (s *ServiceSuite) TestReportInvalidID() {
	_, err := s.service.Report(context.Background(), "border", "../secrets")
	s.ErrorIs(err, roster.ErrInvalidKey)

	_, err = s.service.Report(context.Background(), "../etc", "3f1c9a52-0b8e-4d6a-9a43-1f0c2b7e5d11")
	s.ErrorIs(err, roster.ErrInvalidKey)
	s.client.AssertNotCalled(s.T(), "GetObject", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func TestService_WithoutSources(t *testing.T) {
	svc := NewService(Options{})

	_, _, err := svc.ReconcileRoster(context.Background(), "border", false)
	assert.ErrorContains(t, err, "not configured")

	_, err = svc.Report(context.Background(), "border", "3f1c9a52-0b8e-4d6a-9a43-1f0c2b7e5d11")
	assert.ErrorContains(t, err, "not configured")

	report, err := svc.ReconcileInline(context.Background(), nil, nil)
	require.NoError(t, err)
	assert.Empty(t, report.Matches)
}
