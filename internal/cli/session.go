package cli

import (
	"fmt"
	"os"

	"github.com/govalues/moneyinput"
	"github.com/govalues/moneyinput/internal/textbuf"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// Step is one user action on a field. Exactly one action should be set;
// the first one found in the order of the fields below is applied.
type Step struct {
	Type      string `yaml:"type,omitempty"`      // typed through the keyboard filter
	Paste     string `yaml:"paste,omitempty"`     // inserted as is
	Backspace int    `yaml:"backspace,omitempty"` // characters deleted before the cursor
	Delete    int    `yaml:"delete,omitempty"`    // characters deleted after the cursor
	Move      *int   `yaml:"move,omitempty"`      // absolute cursor position
	Focus     bool   `yaml:"focus,omitempty"`
	Blur      bool   `yaml:"blur,omitempty"`
}

// String describes the step for output and logs.
func (s Step) String() string {
	switch {
	case s.Type != "":
		return fmt.Sprintf("type %q", s.Type)
	case s.Paste != "":
		return fmt.Sprintf("paste %q", s.Paste)
	case s.Backspace > 0:
		return fmt.Sprintf("backspace %d", s.Backspace)
	case s.Delete > 0:
		return fmt.Sprintf("delete %d", s.Delete)
	case s.Move != nil:
		return fmt.Sprintf("move %d", *s.Move)
	case s.Focus:
		return "focus"
	case s.Blur:
		return "blur"
	}
	return "noop"
}

// Script is a replay file.
type Script struct {
	Steps []Step `yaml:"steps"`
}

// LoadScript reads a YAML replay file.
func LoadScript(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read script: %w", err)
	}
	var s Script
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("failed to parse script: %w", err)
	}
	return &s, nil
}

// ParseKeys turns a key string into steps, one per key:
// '<' is a backspace, '>' deletes forward, anything else is typed.
func ParseKeys(keys string) []Step {
	steps := make([]Step, 0, len(keys))
	for _, r := range keys {
		switch r {
		case '<':
			steps = append(steps, Step{Backspace: 1})
		case '>':
			steps = append(steps, Step{Delete: 1})
		default:
			steps = append(steps, Step{Type: string(r)})
		}
	}
	return steps
}

// Session is a focused field backed by an in-memory buffer.
type Session struct {
	buf   *textbuf.Buffer
	field *moneyinput.Field
	log   *zap.Logger
}

// NewSession returns a session with a focused, empty field.
func NewSession(opts moneyinput.Options, log *zap.Logger) (*Session, error) {
	buf := textbuf.New()
	field, err := moneyinput.NewField(buf, opts, moneyinput.CLDR)
	if err != nil {
		return nil, err
	}
	buf.OnChange(field.TextChanged)
	buf.OnSelect(field.SelectionChanged)
	buf.SetFilter(func(r rune) bool {
		return field.Engine().Config().Accepts(r)
	})
	s := &Session{buf: buf, field: field, log: log}
	field.Focus()
	return s, nil
}

// Field returns the field under test.
func (s *Session) Field() *moneyinput.Field {
	return s.field
}

// Text returns the field text.
func (s *Session) Text() string {
	return s.buf.Text()
}

// Render returns the field text with a '|' at the cursor.
func (s *Session) Render() string {
	return s.buf.Render()
}

// Apply performs step and reports whether the field text changed.
func (s *Session) Apply(step Step) bool {
	before := s.buf.Text()
	switch {
	case step.Type != "":
		s.buf.Type(step.Type)
	case step.Paste != "":
		s.buf.Paste(step.Paste)
	case step.Backspace > 0:
		for i := 0; i < step.Backspace; i++ {
			s.buf.Backspace()
		}
	case step.Delete > 0:
		for i := 0; i < step.Delete; i++ {
			s.buf.Delete()
		}
	case step.Move != nil:
		s.buf.MoveTo(*step.Move)
	case step.Focus:
		s.field.Focus()
	case step.Blur:
		s.field.Blur()
	}
	changed := s.buf.Text() != before
	s.log.Debug("step applied",
		zap.String("op", "replay"),
		zap.Stringer("step", step),
		zap.String("text", s.buf.Text()),
		zap.Int("cursor", s.buf.Cursor()),
		zap.Stringer("state", s.field.Engine().State()),
	)
	if !changed && (step.Type != "" || step.Paste != "") {
		s.log.Info("edit rejected",
			zap.String("op", "replay"),
			zap.Stringer("step", step),
			zap.String("text", before),
		)
	}
	return changed
}
