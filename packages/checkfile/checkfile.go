package checkfile

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Suite is a parsed check suite file.
type Suite struct {
	Version int      `yaml:"version"`
	Checks  []*Check `yaml:"checks"`

	// File is the path the suite was loaded from. Empty for suites
	// parsed from a string or bytes.
	File string `yaml:"-"`
}

// Check is a single path plus the expectations to verify against it.
type Check struct {
	Name   string   `yaml:"name"`
	Path   string   `yaml:"path"`
	Tags   []string `yaml:"tags"`
	Expect Expect   `yaml:"expect"`
}

// Expect holds the expectations for one check. Pointer fields
// distinguish "not set" from an explicit false: `exists: false`
// asserts the path is absent, while omitting it asserts nothing.
type Expect struct {
	Exists     *bool  `yaml:"exists"`
	Type       string `yaml:"type"`
	Readable   *bool  `yaml:"readable"`
	Writable   *bool  `yaml:"writable"`
	Executable *bool  `yaml:"executable"`
	Absolute   *bool  `yaml:"absolute"`
	Relative   *bool  `yaml:"relative"`
	Normalized *bool  `yaml:"normalized"`
	Canonical  *bool  `yaml:"canonical"`
	Parent     string `yaml:"parent"`
	NoParent   *bool  `yaml:"no_parent"`
	StartsWith string `yaml:"starts_with"`
	EndsWith   string `yaml:"ends_with"`
	FileName   string `yaml:"file_name"`

	// Raw switches Parent, StartsWith and EndsWith to raw component
	// comparison with no canonicalization or filesystem access.
	Raw bool `yaml:"raw"`
}

// validTypes are the accepted values for Expect.Type.
var validTypes = map[string]bool{
	"":        true,
	"file":    true,
	"dir":     true,
	"symlink": true,
}

// ParseFile loads and validates a check suite from disk.
func ParseFile(path string) (*Suite, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading check file: %w", err)
	}
	suite, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	suite.File = path
	return suite, nil
}

// Parse parses and validates a check suite from raw YAML.
func Parse(data []byte) (*Suite, error) {
	var suite Suite
	if err := yaml.Unmarshal(data, &suite); err != nil {
		return nil, fmt.Errorf("invalid YAML: %w", err)
	}
	if err := suite.Validate(); err != nil {
		return nil, err
	}
	return &suite, nil
}

// Validate checks structural requirements and fills in default names.
func (s *Suite) Validate() error {
	if s.Version != 0 && s.Version != 1 {
		return fmt.Errorf("unsupported version %d", s.Version)
	}
	if len(s.Checks) == 0 {
		return fmt.Errorf("suite has no checks")
	}
	for i, c := range s.Checks {
		if c == nil {
			return fmt.Errorf("check %d is empty", i+1)
		}
		if c.Path == "" {
			return fmt.Errorf("check %d (%s) has no path", i+1, c.Name)
		}
		if !validTypes[c.Expect.Type] {
			return fmt.Errorf("check %d (%s): unknown type %q", i+1, c.Name, c.Expect.Type)
		}
		if c.Name == "" {
			c.Name = c.Path
		}
	}
	return nil
}

// Filter returns the checks carrying at least one of the given tags.
// An empty tag list selects everything.
func (s *Suite) Filter(tags []string) []*Check {
	if len(tags) == 0 {
		return s.Checks
	}
	want := make(map[string]bool, len(tags))
	for _, t := range tags {
		want[t] = true
	}
	var out []*Check
	for _, c := range s.Checks {
		for _, t := range c.Tags {
			if want[t] {
				out = append(out, c)
				break
			}
		}
	}
	return out
}

// IsCheckFile reports whether path follows the check suite naming
// convention.
func IsCheckFile(path string) bool {
	return strings.HasSuffix(path, ".checks.yaml") || strings.HasSuffix(path, ".checks.yml")
}
