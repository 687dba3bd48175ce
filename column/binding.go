package column

import (
	"fmt"

	"github.com/arloliu/catenc/errs"
	"github.com/arloliu/catenc/format"
)

// Binding names a column and its source.
type Binding struct {
	// Name is the output column name.
	Name string `json:"name" yaml:"name"`
	// Source is the input column name. An empty Source reads the column called Name.
	Source string `json:"source,omitempty" yaml:"source,omitempty"`
	// Type is the declared type of the input values.
	Type format.SourceType `json:"type" yaml:"type"`
}

// SourceName returns the input column name.
func (b Binding) SourceName() string {
	if b.Source == "" {
		return b.Name
	}

	return b.Source
}

// Validate checks that the binding names an output and a supported source type.
func (b Binding) Validate() error {
	if b.Name == "" {
		return fmt.Errorf("%w: empty column name", errs.ErrInvalidBinding)
	}

	if !b.Type.IsValid() {
		return fmt.Errorf("%w: column %q has source type 0x%02x", errs.ErrUnsupportedSourceType, b.Name, uint8(b.Type))
	}

	return nil
}

func (b Binding) String() string {
	return fmt.Sprintf("%s(%s %s)", b.Name, b.SourceName(), b.Type)
}
