package cli

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockRunner for testing
type MockRunner struct {
	mock.Mock
}

func (m *MockRunner) Search(term, target string) error {
	args := m.Called(term, target)
	return args.Error(0)
}

func (m *MockRunner) Hazard() error {
	return m.Called().Error(0)
}

func (m *MockRunner) Config() error {
	return m.Called().Error(0)
}

func (m *MockRunner) SimulateError() error {
	return m.Called().Error(0)
}

// MockMerger for testing
type MockMerger struct {
	mock.Mock
}

func (m *MockMerger) MergeConfig(path string) error {
	return m.Called(path).Error(0)
}

func execute(t *testing.T, merger *MockMerger, runner *MockRunner, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	cmd := NewRootCommand(merger, runner)
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return out.String(), err
}

func TestRootCommandDispatch(t *testing.T) {
	tests := []struct {
		name   string
		args   []string
		config string
		setup  func(r *MockRunner)
	}{
		{
			name:  "search term",
			args:  []string{"search"},
			setup: func(r *MockRunner) { r.On("Search", "search", "").Return(nil) },
		},
		{
			name:  "search in file",
			args:  []string{"--file", "CLAUDE.md", "command"},
			setup: func(r *MockRunner) { r.On("Search", "command", "CLAUDE.md").Return(nil) },
		},
		{
			name:   "custom config before search",
			args:   []string{"-c", "custom.toml", "needle"},
			config: "custom.toml",
			setup:  func(r *MockRunner) { r.On("Search", "needle", "").Return(nil) },
		},
		{
			name:  "hazard",
			args:  []string{"hazard"},
			setup: func(r *MockRunner) { r.On("Hazard").Return(nil) },
		},
		{
			name:  "config",
			args:  []string{"config"},
			setup: func(r *MockRunner) { r.On("Config").Return(nil) },
		},
		{
			name:   "config flag on subcommand",
			args:   []string{"hazard", "--config", "other.toml"},
			config: "other.toml",
			setup:  func(r *MockRunner) { r.On("Hazard").Return(nil) },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			merger := &MockMerger{}
			merger.On("MergeConfig", tt.config).Return(nil)
			runner := &MockRunner{}
			tt.setup(runner)

			_, err := execute(t, merger, runner, tt.args...)
			require.NoError(t, err)

			merger.AssertExpectations(t)
			runner.AssertExpectations(t)
		})
	}
}

func TestRootCommandErrors(t *testing.T) {
	t.Run("simulated error propagates", func(t *testing.T) {
		merger := &MockMerger{}
		merger.On("MergeConfig", "").Return(nil)
		runner := &MockRunner{}
		failure := errors.New("simulated")
		runner.On("SimulateError").Return(failure)

		_, err := execute(t, merger, runner, "error")
		assert.ErrorIs(t, err, failure)
	})

	t.Run("search failure propagates", func(t *testing.T) {
		merger := &MockMerger{}
		merger.On("MergeConfig", "").Return(nil)
		runner := &MockRunner{}
		failure := errors.New("no such file")
		runner.On("Search", "needle", "missing.txt").Return(failure)

		_, err := execute(t, merger, runner, "--file", "missing.txt", "needle")
		assert.ErrorIs(t, err, failure)
	})

	t.Run("merge failure stops the command", func(t *testing.T) {
		merger := &MockMerger{}
		failure := errors.New("bad config")
		merger.On("MergeConfig", "broken.toml").Return(failure)
		runner := &MockRunner{}

		_, err := execute(t, merger, runner, "-c", "broken.toml", "hazard")
		assert.ErrorIs(t, err, failure)
		runner.AssertNotCalled(t, "Hazard")
	})

	t.Run("too many search terms", func(t *testing.T) {
		merger := &MockMerger{}
		merger.On("MergeConfig", mock.Anything).Return(nil)
		runner := &MockRunner{}

		_, err := execute(t, merger, runner, "one", "two")
		assert.Error(t, err)
		runner.AssertNotCalled(t, "Search", mock.Anything, mock.Anything)
	})

	t.Run("unknown flag", func(t *testing.T) {
		merger := &MockMerger{}
		runner := &MockRunner{}

		_, err := execute(t, merger, runner, "--nonexistent-flag")
		assert.Error(t, err)
	})
}

func TestRootCommandWithoutArgsPrintsHelp(t *testing.T) {
	merger := &MockMerger{}
	merger.On("MergeConfig", "").Return(nil)
	runner := &MockRunner{}

	out, err := execute(t, merger, runner)
	require.NoError(t, err)

	assert.Contains(t, out, `"BIGLY!"`)
	assert.Contains(t, out, "A CLI tool that greps all files under the current directory")
	assert.Contains(t, out, "hazard")
	assert.Contains(t, out, "--file")
	runner.AssertNotCalled(t, "Search", mock.Anything, mock.Anything)
}

func TestRootCommandVersion(t *testing.T) {
	out, err := execute(t, &MockMerger{}, &MockRunner{}, "--version")
	require.NoError(t, err)
	assert.Equal(t, "bigly 0.0.1\n", out)
}
