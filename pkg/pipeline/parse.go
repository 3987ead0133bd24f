package pipeline

import (
	"bytes"
	"os"

	"github.com/matzehuels/displaytree/pkg/errors"
	dtio "github.com/matzehuels/displaytree/pkg/io"
	"github.com/matzehuels/displaytree/pkg/tree"
)

// LoadInput returns the document bytes named by opts, reading Path when
// Input is unset.
func LoadInput(opts Options) ([]byte, error) {
	if opts.Input != nil {
		return opts.Input, nil
	}
	if err := errors.ValidatePath(opts.Path); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(opts.Path)
	if os.IsNotExist(err) {
		return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "read %s", opts.Path)
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidPath, err, "read %s", opts.Path)
	}
	return data, nil
}

// Parse decodes a tree document with the style derived from opts.
func Parse(input []byte, opts Options) (*tree.Node, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}
	return dtio.Read(bytes.NewReader(input), opts.InputFormat, opts.Style())
}
