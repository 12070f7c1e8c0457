// Package linear serves predictions from a serialized TF-IDF plus logistic
// regression bundle, one pipeline per label axis. It performs inference only;
// bundles are produced offline.
package linear

import (
	"bytes"
	"context"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"math"
	"os"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"

	"github.com/jsamuelsen11/task-classifier/internal/domain"
	"github.com/jsamuelsen11/task-classifier/internal/domain/classification"
	"github.com/jsamuelsen11/task-classifier/internal/ports"
)

// Compile-time interface checks.
var (
	_ ports.ModelAdapter = (*Model)(nil)
	_ ports.ModelInfo    = (*Model)(nil)
)

// selfTestText is classified once at load time; a bundle that cannot
// classify it is rejected.
const selfTestText = "test"

//go:embed bundle.schema.json
var bundleSchema []byte

const bundleSchemaURL = "schema://task-classifier/bundle.schema.json"

var (
	schemaOnce     sync.Once
	compiledSchema *jsonschema.Schema
	errSchema      error
)

// Bundle is the on-disk model document.
type Bundle struct {
	Version  string    `json:"version"`
	Priority *Pipeline `json:"priority"`
	Status   *Pipeline `json:"status"`
}

// Pipeline pairs a vectorizer with the classifier trained on its output.
type Pipeline struct {
	Vectorizer VectorizerSpec `json:"vectorizer"`
	Classifier ClassifierSpec `json:"classifier"`
}

type pipeline struct {
	vec *vectorizer
	clf *classifier
}

func (p *pipeline) predict(text string) string {
	return p.clf.predict(p.vec.transform(text))
}

func (p *pipeline) confidence(text string) float64 {
	best := 0.0
	for _, prob := range p.clf.probabilities(p.vec.transform(text)) {
		best = math.Max(best, prob)
	}
	return classification.Round2(best)
}

// Model is a loaded, immutable bundle. It is safe for concurrent use.
type Model struct {
	path     string
	version  string
	priority *pipeline
	status   *pipeline
}

// Summary describes a loaded bundle.
type Summary struct {
	Path            string   `json:"path"`
	Version         string   `json:"version"`
	PriorityClasses []string `json:"priority_classes"`
	StatusClasses   []string `json:"status_classes"`
	PriorityTerms   int      `json:"priority_terms"`
	StatusTerms     int      `json:"status_terms"`
}

// Load reads, validates, and self-tests the bundle at path. Every failure
// wraps domain.ErrModelUnavailable.
func Load(path string) (*Model, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: no model at %s", domain.ErrModelUnavailable, path)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: reading %s: %w", domain.ErrModelUnavailable, path, err)
	}

	m, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", domain.ErrModelUnavailable, path, err)
	}
	m.path = path
	return m, nil
}

// Parse builds a Model from a bundle document without touching the
// filesystem.
func Parse(data []byte) (*Model, error) {
	if err := validateBundle(data); err != nil {
		return nil, err
	}

	var b Bundle
	if err := json.Unmarshal(data, &b); err != nil {
		return nil, fmt.Errorf("decoding bundle: %w", err)
	}
	if b.Priority == nil || b.Status == nil {
		return nil, errors.New("bundle must contain both priority and status pipelines")
	}

	priority, err := newPipeline(b.Priority)
	if err != nil {
		return nil, fmt.Errorf("priority pipeline: %w", err)
	}
	status, err := newPipeline(b.Status)
	if err != nil {
		return nil, fmt.Errorf("status pipeline: %w", err)
	}

	m := &Model{version: b.Version, priority: priority, status: status}
	if err := m.selfTest(); err != nil {
		return nil, err
	}
	return m, nil
}

func newPipeline(p *Pipeline) (*pipeline, error) {
	vec, err := newVectorizer(p.Vectorizer)
	if err != nil {
		return nil, fmt.Errorf("vectorizer: %w", err)
	}
	clf, err := newClassifier(p.Classifier, vec.features())
	if err != nil {
		return nil, fmt.Errorf("classifier: %w", err)
	}
	return &pipeline{vec: vec, clf: clf}, nil
}

func (m *Model) selfTest() error {
	if m.priority.predict(selfTestText) == "" || m.status.predict(selfTestText) == "" {
		return errors.New("self-test prediction returned an empty label")
	}
	pc, sc := m.priority.confidence(selfTestText), m.status.confidence(selfTestText)
	if !classification.ValidConfidence(pc) || !classification.ValidConfidence(sc) {
		return fmt.Errorf("self-test confidence out of range (priority=%v, status=%v)", pc, sc)
	}
	return nil
}

// Available reports true; a Model only exists once loading succeeded.
func (m *Model) Available() bool { return true }

// PredictPriority implements ports.ModelAdapter.
func (m *Model) PredictPriority(ctx context.Context, text string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	return m.priority.predict(text), nil
}

// PredictStatus implements ports.ModelAdapter.
func (m *Model) PredictStatus(ctx context.Context, text string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	return m.status.predict(text), nil
}

// ConfidencePriority returns the highest priority class probability, rounded
// to two decimals.
func (m *Model) ConfidencePriority(ctx context.Context, text string) (float64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	return m.priority.confidence(text), nil
}

// ConfidenceStatus returns the highest status class probability, rounded to
// two decimals.
func (m *Model) ConfidenceStatus(ctx context.Context, text string) (float64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	return m.status.confidence(text), nil
}

// Location returns the bundle path while the file still exists, else "".
func (m *Model) Location() string {
	if m.path == "" {
		return ""
	}
	if _, err := os.Stat(m.path); err != nil {
		return ""
	}
	return m.path
}

// Summary describes the loaded bundle.
func (m *Model) Summary() Summary {
	return Summary{
		Path:            m.path,
		Version:         m.version,
		PriorityClasses: append([]string(nil), m.priority.clf.classes...),
		StatusClasses:   append([]string(nil), m.status.clf.classes...),
		PriorityTerms:   len(m.priority.vec.vocabulary),
		StatusTerms:     len(m.status.vec.vocabulary),
	}
}

func validateBundle(data []byte) error {
	schema, err := bundleSchemaCompiled()
	if err != nil {
		return fmt.Errorf("compiling bundle schema: %w", err)
	}

	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}
	if err := schema.Validate(doc); err != nil {
		return fmt.Errorf("schema validation failed: %w", err)
	}
	return nil
}

func bundleSchemaCompiled() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(bundleSchema))
		if err != nil {
			errSchema = err
			return
		}
		c := jsonschema.NewCompiler()
		if err := c.AddResource(bundleSchemaURL, doc); err != nil {
			errSchema = err
			return
		}
		compiledSchema, errSchema = c.Compile(bundleSchemaURL)
	})
	return compiledSchema, errSchema
}
