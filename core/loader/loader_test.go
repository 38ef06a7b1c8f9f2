package loader

import (
	"errors"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type mockFeature struct {
	mock.Mock
	name string
}

func (m *mockFeature) Name() string { return m.name }

func (m *mockFeature) IsEnabled() bool {
	return m.Called().Bool(0)
}

func (m *mockFeature) Load(app fiber.Router) error {
	return m.Called(app).Error(0)
}

func TestManager_LoadAll(t *testing.T) {
	app := fiber.New()

	enabled := &mockFeature{name: "collection"}
	enabled.On("IsEnabled").Return(true)
	enabled.On("Load", mock.Anything).Return(nil)

	disabled := &mockFeature{name: "roster"}
	disabled.On("IsEnabled").Return(false)

	mgr := NewManager(zap.NewNop())
	mgr.Register(enabled)
	mgr.Register(disabled)

	require.NoError(t, mgr.LoadAll(app))
	assert.Len(t, mgr.Features(), 2)
	enabled.AssertExpectations(t)
	disabled.AssertNotCalled(t, "Load", mock.Anything)
}

func TestManager_LoadAllFailure(t *testing.T) {
	broken := &mockFeature{name: "broken"}
	broken.On("IsEnabled").Return(true)
	broken.On("Load", mock.Anything).Return(errors.New("boom"))

	mgr := NewManager(nil)
	mgr.Register(broken)

	err := mgr.LoadAll(fiber.New())
	assert.ErrorContains(t, err, "failed to load feature broken: boom")
}

func TestManager_DuplicateName(t *testing.T) {
	a := &mockFeature{name: "same"}
	a.On("IsEnabled").Return(true)
	a.On("Load", mock.Anything).Return(nil)

	mgr := NewManager(nil)
	mgr.Register(a)
	mgr.Register(&mockFeature{name: "same"})

	assert.ErrorContains(t, mgr.LoadAll(fiber.New()), "registered twice")
}
