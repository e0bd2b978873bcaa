package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

const (
	// DefaultMaxDepth is the default bound on the nesting depth of resolved nodes.
	DefaultMaxDepth = 512

	// DefaultEventModifier is the element modifier converted into an event handler attribute.
	DefaultEventModifier = "on"
)

// ErrInvalidConfig is returned when a configuration fails validation
var ErrInvalidConfig = errors.New("invalid transform config")

// TransformConfig represents the transform configuration
type TransformConfig struct {
	// AttributeRenames maps template attribute names to JSX prop names.
	AttributeRenames map[string]string `yaml:"attributeRenames,omitempty" validate:"dive,keys,required,endkeys,required"`

	// MaxDepth is the maximum nesting depth of resolved nodes. Zero disables the bound.
	// Every statement and expression on the path from the root counts as one
	// level, so <a><b>x</b></a> and {{f (g x)}} are both three deep.
	MaxDepth int `yaml:"maxDepth" validate:"min=0,max=100000"`

	// SelfCloseEmptyElements emits <div /> for elements without children.
	SelfCloseEmptyElements bool `yaml:"selfCloseEmptyElements"`

	// EventModifier names the modifier rewritten to an on<Event> attribute.
	EventModifier string `yaml:"eventModifier" validate:"required"`
}

// DefaultAttributeRenames returns the attribute names that differ between HTML and JSX
func DefaultAttributeRenames() map[string]string {
	return map[string]string{
		"class": "className",
		"for":   "htmlFor",
	}
}

// NewTransformConfig creates a new TransformConfig with optional parameters
func NewTransformConfig(opts ...TransformConfigOption) *TransformConfig {
	config := &TransformConfig{
		AttributeRenames:       DefaultAttributeRenames(),
		MaxDepth:               DefaultMaxDepth,
		SelfCloseEmptyElements: true,
		EventModifier:          DefaultEventModifier,
	}

	for _, opt := range opts {
		opt(config)
	}

	return config
}

// TransformConfigOption is a function that modifies TransformConfig
type TransformConfigOption func(*TransformConfig)

// WithAttributeRenames replaces the attribute rename table
func WithAttributeRenames(renames map[string]string) TransformConfigOption {
	return func(c *TransformConfig) {
		c.AttributeRenames = renames
	}
}

// WithMaxDepth sets the maximum nesting depth
func WithMaxDepth(depth int) TransformConfigOption {
	return func(c *TransformConfig) {
		c.MaxDepth = depth
	}
}

// WithSelfCloseEmptyElements sets whether childless elements are self-closing
func WithSelfCloseEmptyElements(selfClose bool) TransformConfigOption {
	return func(c *TransformConfig) {
		c.SelfCloseEmptyElements = selfClose
	}
}

// WithEventModifier sets the modifier name converted to event attributes
func WithEventModifier(name string) TransformConfigOption {
	return func(c *TransformConfig) {
		c.EventModifier = name
	}
}

// RenameAttribute returns the JSX prop name for a template attribute name
func (c *TransformConfig) RenameAttribute(name string) string {
	if renamed, ok := c.AttributeRenames[name]; ok {
		return renamed
	}
	return name
}

var validate = validator.New()

// Validate checks the configuration for invalid values
func (c *TransformConfig) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	msgs := make([]string, 0, len(validationErrs))
	for _, e := range validationErrs {
		switch e.Tag() {
		case "required":
			msgs = append(msgs, fmt.Sprintf("%s is required", e.Namespace()))
		case "min":
			msgs = append(msgs, fmt.Sprintf("%s must be at least %s", e.Namespace(), e.Param()))
		case "max":
			msgs = append(msgs, fmt.Sprintf("%s must be at most %s", e.Namespace(), e.Param()))
		default:
			msgs = append(msgs, fmt.Sprintf("%s is invalid", e.Namespace()))
		}
	}
	return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(msgs, "; "))
}

// Parse decodes a YAML configuration over the defaults and validates it
func Parse(data []byte) (*TransformConfig, error) {
	config := NewTransformConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// LoadFile loads the configuration from a YAML file.
// An empty path returns the default configuration.
func LoadFile(path string) (*TransformConfig, error) {
	if path == "" {
		return NewTransformConfig(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return config, nil
}
