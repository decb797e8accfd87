// Package config describes one golden-model validation run: which
// implementation is under test and where its coefficient and sample files
// live.
package config

import (
	"bytes"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/sarchlab/firgold/source"
)

// DefaultPreview is the number of outputs shown in a report summary.
const DefaultPreview = 10

// Config is the full input of a run.
type Config struct {
	Label              string
	CoefficientSources []source.Source
	SampleSource       source.Source

	// Preview is the number of leading outputs listed in the summary.
	Preview int

	// OutputPath, when set, receives every output value, one per line.
	OutputPath string
	Hex        bool
}

// Validate reports a config that cannot drive a run.
func (c *Config) Validate() error {
	if len(c.CoefficientSources) == 0 {
		return errors.New("config: no coefficient sources")
	}

	if c.SampleSource == nil {
		return errors.New("config: no sample source")
	}

	if c.Preview < 0 {
		return errors.Errorf("config: negative preview %d", c.Preview)
	}

	return nil
}

// Builder can build run configs.
type Builder struct {
	label        string
	baseDir      string
	coefFiles    []string
	sampleFile   string
	coefSources  []source.Source
	sampleSource source.Source
	preview      int
	output       string
	hex          bool
}

// NewBuilder returns a builder with the default preview length.
func NewBuilder() Builder {
	return Builder{preview: DefaultPreview}
}

// WithLabel sets the name of the implementation under test.
func (b Builder) WithLabel(label string) Builder {
	b.label = label
	return b
}

// WithBaseDir sets the directory relative file names are resolved against.
func (b Builder) WithBaseDir(dir string) Builder {
	b.baseDir = dir
	return b
}

// WithCoefficientFiles sets the coefficient files, in tap order.
func (b Builder) WithCoefficientFiles(names ...string) Builder {
	b.coefFiles = append([]string(nil), names...)
	return b
}

// WithSampleFile sets the input vector file.
func (b Builder) WithSampleFile(name string) Builder {
	b.sampleFile = name
	return b
}

// WithCoefficientSources appends already-open sources after the files.
func (b Builder) WithCoefficientSources(srcs ...source.Source) Builder {
	b.coefSources = append(append([]source.Source(nil), b.coefSources...), srcs...)
	return b
}

// WithSampleSource sets the input vector source, overriding any sample file.
func (b Builder) WithSampleSource(src source.Source) Builder {
	b.sampleSource = src
	return b
}

// WithPreview sets how many outputs the summary lists.
func (b Builder) WithPreview(n int) Builder {
	b.preview = n
	return b
}

// WithOutput sets the path the full output vector is written to.
func (b Builder) WithOutput(path string) Builder {
	b.output = path
	return b
}

// WithHex makes the output dump use 0x notation.
func (b Builder) WithHex(hex bool) Builder {
	b.hex = hex
	return b
}

// Build creates the config.
func (b Builder) Build() *Config {
	c := &Config{
		Label:      b.label,
		Preview:    b.preview,
		OutputPath: b.output,
		Hex:        b.hex,
	}

	for _, name := range b.coefFiles {
		c.CoefficientSources = append(c.CoefficientSources, source.File(b.resolve(name)))
	}
	c.CoefficientSources = append(c.CoefficientSources, b.coefSources...)

	switch {
	case b.sampleSource != nil:
		c.SampleSource = b.sampleSource
	case b.sampleFile != "":
		c.SampleSource = source.File(b.resolve(b.sampleFile))
	}

	return c
}

func (b Builder) resolve(name string) string {
	if filepath.IsAbs(name) || b.baseDir == "" {
		return name
	}

	return filepath.Join(b.baseDir, name)
}

// DefaultBuilder returns the standard bench setup: implementation impl0,
// coefficient banks p0, p4, p7 and p9, and the square-wave vector.
func DefaultBuilder() Builder {
	return NewBuilder().
		WithLabel("impl0").
		WithCoefficientFiles("p0.cfg", "p4.cfg", "p7.cfg", "p9.cfg").
		WithSampleFile("sqr.vec")
}

// File is the on-disk form of a run config.
type File struct {
	Label        string   `yaml:"label"`
	BaseDir      string   `yaml:"base_dir"`
	Coefficients []string `yaml:"coefficients"`
	Samples      string   `yaml:"samples"`
	Preview      *int     `yaml:"preview"`
	Output       string   `yaml:"output"`
	Hex          bool     `yaml:"hex"`
}

// Parse decodes a YAML run config. Relative paths, including base_dir,
// are taken relative to dir.
func Parse(data []byte, dir string) (*Config, error) {
	var f File

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		return nil, errors.Wrap(err, "config: cannot decode")
	}

	base := f.BaseDir
	if !filepath.IsAbs(base) {
		base = filepath.Join(dir, base)
	}

	b := NewBuilder().
		WithLabel(f.Label).
		WithBaseDir(base).
		WithCoefficientFiles(f.Coefficients...).
		WithSampleFile(f.Samples).
		WithHex(f.Hex)

	if f.Preview != nil {
		b = b.WithPreview(*f.Preview)
	}

	if f.Output != "" {
		b = b.WithOutput(Builder{baseDir: dir}.resolve(f.Output))
	}

	c := b.Build()
	if err := c.Validate(); err != nil {
		return nil, err
	}

	return c, nil
}

// LoadFile reads a YAML run config from path.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "config: cannot read %s", path)
	}

	return Parse(data, filepath.Dir(path))
}
