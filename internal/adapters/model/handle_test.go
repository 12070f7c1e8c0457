package model_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen11/task-classifier/internal/adapters/model"
	"github.com/jsamuelsen11/task-classifier/internal/adapters/model/linear"
	"github.com/jsamuelsen11/task-classifier/internal/domain"
	"github.com/jsamuelsen11/task-classifier/internal/platform/config"
	"github.com/jsamuelsen11/task-classifier/internal/ports"
	"github.com/jsamuelsen11/task-classifier/mocks"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// bundle returns a binary bundle that always predicts priority and status.
func bundle(version, priority, status string) linear.Bundle {
	pipeline := func(first, second string) *linear.Pipeline {
		return &linear.Pipeline{
			Vectorizer: linear.VectorizerSpec{
				Vocabulary: map[string]int{"test": 0},
				IDF:        []float64{1},
			},
			Classifier: linear.ClassifierSpec{
				Classes:   []string{first, second},
				Coef:      [][]float64{{0}},
				Intercept: []float64{-3},
			},
		}
	}
	return linear.Bundle{
		Version:  version,
		Priority: pipeline(priority, "low"),
		Status:   pipeline(status, "progress"),
	}
}

func writeBundle(t *testing.T, path string, b linear.Bundle) {
	t.Helper()

	data, err := json.Marshal(b)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, data, 0o600))
}

func TestHandle_ServesDisabledBeforeFirstLoad(t *testing.T) {
	t.Parallel()

	h := model.NewHandle(model.StaticLoader(model.Disabled{}), discardLogger())

	assert.False(t, h.Available())
	assert.Empty(t, h.Location())
	assert.Equal(t, model.Disabled{}, h.Snapshot())

	_, err := h.PredictPriority(context.Background(), "anything")
	assert.ErrorIs(t, err, domain.ErrModelUnavailable)
}

func TestHandle_FileLoaderReloadSwapsModel(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "model.json")
	writeBundle(t, path, bundle("v1", "high", "done"))

	h := model.NewHandle(model.FileLoader(path), discardLogger())
	require.NoError(t, h.Reload(ctx))

	assert.True(t, h.Available())
	assert.Equal(t, path, h.Location())

	p, err := h.PredictPriority(ctx, "test")
	require.NoError(t, err)
	assert.Equal(t, "high", p)

	before := h.Snapshot()

	writeBundle(t, path, bundle("v2", "medium", "todo"))
	require.NoError(t, h.Reload(ctx))

	p, err = h.PredictPriority(ctx, "test")
	require.NoError(t, err)
	s, err := h.PredictStatus(ctx, "test")
	require.NoError(t, err)
	assert.Equal(t, "medium", p)
	assert.Equal(t, "todo", s)

	// A snapshot taken earlier keeps answering from the old model.
	old, err := before.PredictPriority(ctx, "test")
	require.NoError(t, err)
	assert.Equal(t, "high", old)
}

func TestHandle_FailedReloadKeepsPreviousModel(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "model.json")
	writeBundle(t, path, bundle("v1", "high", "done"))

	var buf bytes.Buffer
	h := model.NewHandle(model.FileLoader(path), slog.New(slog.NewJSONHandler(&buf, nil)))
	require.NoError(t, h.Reload(ctx))

	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	err := h.Reload(ctx)
	require.ErrorIs(t, err, domain.ErrModelUnavailable)

	assert.True(t, h.Available())
	p, err := h.PredictPriority(ctx, "test")
	require.NoError(t, err)
	assert.Equal(t, "high", p)

	assert.Contains(t, buf.String(), `"msg":"model load failed"`)
	assert.Contains(t, buf.String(), `"serving_previous":true`)
}

func TestHandle_MissingFileStaysDisabled(t *testing.T) {
	t.Parallel()

	h := model.NewHandle(model.FileLoader(filepath.Join(t.TempDir(), "absent.json")), discardLogger())

	err := h.Reload(context.Background())

	require.ErrorIs(t, err, domain.ErrModelUnavailable)
	assert.False(t, h.Available())
}

func TestHandle_LoaderReturningNilIsAnError(t *testing.T) {
	t.Parallel()

	h := model.NewHandle(func(context.Context) (ports.ModelAdapter, error) {
		return nil, nil
	}, discardLogger())

	require.Error(t, h.Reload(context.Background()))
	assert.False(t, h.Available())
}

func TestHandle_DelegatesToStaticAdapter(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	adapter := mocks.NewMockModelAdapter(t)
	adapter.EXPECT().Available().Return(true)
	adapter.EXPECT().ConfidencePriority(ctx, "ship it").Return(0.8, nil)
	adapter.EXPECT().ConfidenceStatus(ctx, "ship it").Return(0, errors.New("boom"))

	h := model.NewHandle(model.StaticLoader(adapter), discardLogger())
	require.NoError(t, h.Reload(ctx))

	assert.True(t, h.Available())
	// The mock does not implement ports.ModelInfo.
	assert.Empty(t, h.Location())

	pc, err := h.ConfidencePriority(ctx, "ship it")
	require.NoError(t, err)
	assert.InDelta(t, 0.8, pc, 1e-9)

	_, err = h.ConfidenceStatus(ctx, "ship it")
	assert.EqualError(t, err, "boom")
}

func TestHandle_ConcurrentReadsDuringReload(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "model.json")
	writeBundle(t, path, bundle("v1", "high", "done"))

	h := model.NewHandle(model.FileLoader(path), discardLogger())
	require.NoError(t, h.Reload(ctx))

	var wg sync.WaitGroup
	for range 8 {
		wg.Go(func() {
			for range 50 {
				m := h.Snapshot()
				p, err := m.PredictPriority(ctx, "test")
				assert.NoError(t, err)
				s, err := m.PredictStatus(ctx, "test")
				assert.NoError(t, err)
				// Each bundle pairs its labels; a mixed pair means a torn read.
				pair := p + "/" + s
				assert.Contains(t, []string{"high/done", "medium/todo"}, pair)
			}
		})
	}
	for range 5 {
		assert.NoError(t, h.Reload(ctx))
	}
	writeBundle(t, path, bundle("v2", "medium", "todo"))
	assert.NoError(t, h.Reload(ctx))
	wg.Wait()
}

func TestOpen(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "model.json")
	writeBundle(t, path, bundle("v1", "high", "done"))

	rejected := filepath.Join(dir, "rejected.json")
	require.NoError(t, os.WriteFile(rejected, []byte(`{"version":"1"}`), 0o600))

	remote := mocks.NewMockModelAdapter(t)
	remote.EXPECT().Available().Return(false).Maybe()

	tests := []struct {
		name          string
		cfg           config.ModelConfig
		remote        ports.ModelAdapter
		wantErr       string
		wantAvailable bool
		wantLocation  string
	}{
		{
			name:          "file backend loads bundle",
			cfg:           config.ModelConfig{Backend: config.ModelBackendFile, Path: path},
			wantAvailable: true,
			wantLocation:  path,
		},
		{
			name:         "file backend keeps path of rejected bundle",
			cfg:          config.ModelConfig{Backend: config.ModelBackendFile, Path: rejected},
			wantLocation: rejected,
		},
		{name: "file backend missing bundle", cfg: config.ModelConfig{Backend: config.ModelBackendFile, Path: path + ".missing"}},
		{name: "none backend", cfg: config.ModelConfig{Backend: config.ModelBackendNone}},
		{name: "remote backend", cfg: config.ModelConfig{Backend: config.ModelBackendRemote}, remote: remote},
		{name: "remote backend without client", cfg: config.ModelConfig{Backend: config.ModelBackendRemote}, wantErr: "no model server client"},
		{name: "unknown backend", cfg: config.ModelConfig{Backend: "onnx"}, wantErr: `unknown model backend "onnx"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, err := model.Open(context.Background(), tt.cfg, tt.remote, discardLogger())
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantAvailable, h.Available())
			assert.Equal(t, tt.wantLocation, h.Location())
		})
	}
}

func TestHandle_BundlePathTracksFileOnDisk(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "model.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	h := model.NewHandle(model.FileLoader(path), discardLogger(), model.WithBundlePath(path))
	require.Error(t, h.Reload(context.Background()))

	assert.False(t, h.Available())
	assert.Equal(t, path, h.Location())

	require.NoError(t, os.Remove(path))
	assert.Empty(t, h.Location())
}
