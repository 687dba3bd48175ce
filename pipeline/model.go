package pipeline

import (
	"fmt"
	"io"

	"github.com/goccy/go-json"
	"go.uber.org/zap"

	"github.com/arloliu/catenc/column"
	"github.com/arloliu/catenc/errs"
	"github.com/arloliu/catenc/format"
	"github.com/arloliu/catenc/internal/collision"
)

// ModelVersion is the version of the model manifest written by SaveModel.
const ModelVersion = 1

// Manifest is the JSON form of a saved Transformer.
type Manifest struct {
	Version int              `json:"version"`
	Columns []ManifestColumn `json:"columns"`
}

// ManifestColumn holds the binding and the serialized encoder of one column.
type ManifestColumn struct {
	Name   string            `json:"name"`
	Source string            `json:"source,omitempty"`
	Type   format.SourceType `json:"type"`
	// Blob is the encoder blob, base64 encoded in JSON.
	Blob []byte `json:"blob"`
}

// Binding returns the column binding of c.
func (c ManifestColumn) Binding() column.Binding {
	return column.Binding{Name: c.Name, Source: c.Source, Type: c.Type}
}

// Manifest returns the manifest of t, serializing every column.
func (t *Transformer) Manifest() (*Manifest, error) {
	m := &Manifest{
		Version: ModelVersion,
		Columns: make([]ManifestColumn, 0, len(t.columns)),
	}

	for _, c := range t.columns {
		data, err := c.Save()
		if err != nil {
			return nil, err
		}

		b := c.Binding()
		m.Columns = append(m.Columns, ManifestColumn{
			Name:   b.Name,
			Source: b.Source,
			Type:   b.Type,
			Blob:   data,
		})
	}

	return m, nil
}

// SaveModel writes t to w as a JSON manifest.
func (t *Transformer) SaveModel(w io.Writer) error {
	m, err := t.Manifest()
	if err != nil {
		return err
	}

	if err := writeManifest(w, m); err != nil {
		return err
	}

	Logger().Debug("model saved", zap.Int("columns", len(m.Columns)))

	return nil
}

func writeManifest(w io.Writer, m *Manifest) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(m); err != nil {
		return fmt.Errorf("failed to write model: %w", err)
	}

	return nil
}

// ReadManifest decodes a manifest written by SaveModel without loading the encoders.
func ReadManifest(r io.Reader) (*Manifest, error) {
	var m Manifest
	if err := json.NewDecoder(r).Decode(&m); err != nil {
		return nil, fmt.Errorf("%w: model manifest: %w", errs.ErrMalformed, err)
	}

	if m.Version != ModelVersion {
		return nil, fmt.Errorf("%w: model version %d", errs.ErrUnsupportedFormat, m.Version)
	}

	return &m, nil
}

// LoadModel reads a model written by SaveModel and restores its Transformer.
//
// Blobs keep the compression and byte order they were saved with; opts only set the
// runtime collaborators.
func LoadModel(r io.Reader, opts ...Option) (*Transformer, error) {
	m, err := ReadManifest(r)
	if err != nil {
		return nil, err
	}

	settings, err := newSettings(opts...)
	if err != nil {
		return nil, err
	}

	tracker := collision.NewTracker()
	cols := make([]column.Column, 0, len(m.Columns))

	for i, mc := range m.Columns {
		b := mc.Binding()
		if err := tracker.Track(b.Name); err != nil {
			return nil, fmt.Errorf("model column %d: %w", i, err)
		}

		col, err := column.New(b)
		if err != nil {
			return nil, fmt.Errorf("model column %d: %w", i, err)
		}
		if err := col.Load(mc.Blob); err != nil {
			return nil, err
		}

		n, _ := col.Len()
		settings.metrics.ColumnLoaded(b.Name, n)
		cols = append(cols, col)
	}

	Logger().Info("model loaded", zap.Int("columns", len(cols)))

	return newTransformer(cols, settings), nil
}
