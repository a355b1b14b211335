package pixcomp

import (
	"bytes"
	"io"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
)

// LoadConfig reads a TOML recipe into the processor. Keys missing from the
// file leave the current option values untouched.
func (p *Processor) LoadConfig(path string) error {
	md, err := toml.DecodeFile(path, p)
	if err != nil {
		return errors.Wrapf(err, "couldn't read config file %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return errors.Errorf("unknown option %q in %s", undecoded[0].String(), path)
	}
	return nil
}

// WriteConfig writes the processor options as a TOML recipe.
func (p *Processor) WriteConfig(w io.Writer) error {
	var buffer bytes.Buffer
	if err := toml.NewEncoder(&buffer).Encode(p); err != nil {
		return errors.Wrap(err, "couldn't encode config")
	}
	_, err := buffer.WriteTo(w)
	return err
}
