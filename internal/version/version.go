// Package version models the result of resolving the latest version of a package.
//
// A resolved version is one of a closed set of variants (see Info). Each variant renders a one-line,
// human-readable summary through String, and exports its data as ordered Fields for structured output.
package version

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/danielgtaylor/huma/v2"
	"gopkg.in/yaml.v3"

	"github.com/pvchecker/pv-checker/internal/errors"
)

// Scheme is the policy deciding what "latest version" means for a package.
type Scheme string

const (
	// SchemeCommit resolves to the newest commit on the default branch.
	SchemeCommit Scheme = "commit"

	// SchemeTag resolves to the newest tag.
	SchemeTag Scheme = "tag"
)

// ParseScheme converts a declared version type into a Scheme.
// Matching is exact; any other value (including empty) is rejected with an error carrying the value.
func ParseScheme(s string) (Scheme, error) {
	switch Scheme(s) {
	case SchemeCommit:
		return SchemeCommit, nil
	case SchemeTag:
		return SchemeTag, nil
	default:
		return "", &errors.VersionSchemeError{Value: s}
	}
}

// Schemes returns every recognized scheme.
func Schemes() []Scheme {
	return []Scheme{SchemeCommit, SchemeTag}
}

// Info is a resolved version.
// The set of implementations is closed: Commit and Tag.
type Info interface {
	fmt.Stringer

	// Fields exports the version data as ordered name/value pairs.
	Fields() Fields

	// Scheme returns the version scheme that produced this value.
	Scheme() Scheme

	isInfo()
}

var (
	_ Info = Commit{}
	_ Info = Tag{}
)

// Commit is a version identified by the newest commit.
type Commit struct {
	// SHA is the commit hash.
	SHA string

	// Date is the commit author timestamp (ISO-8601), as provided by the remote.
	Date string
}

// NewCommit returns a commit version.
func NewCommit(sha string, date string) Commit {
	return Commit{SHA: sha, Date: date}
}

func (c Commit) String() string {
	return fmt.Sprintf("sha: %s, date: %s", c.SHA, c.Date)
}

func (c Commit) Fields() Fields {
	return Fields{
		{Name: "sha", Value: c.SHA},
		{Name: "date", Value: c.Date},
	}
}

func (c Commit) Scheme() Scheme { return SchemeCommit }

func (Commit) isInfo() {}

// Tag is a version identified by the newest tag.
type Tag struct {
	// Name is the tag name (e.g. "v1.2.3").
	Name string
}

// NewTag returns a tag version.
func NewTag(name string) Tag {
	return Tag{Name: name}
}

func (t Tag) String() string {
	return "tag version: " + t.Name
}

func (t Tag) Fields() Fields {
	return Fields{
		{Name: "tag_version", Value: t.Name},
	}
}

func (t Tag) Scheme() Scheme { return SchemeTag }

func (Tag) isInfo() {}

// Field is a single exported version attribute.
type Field struct {
	Name  string
	Value string
}

// Fields is an ordered collection of version attributes.
// It marshals to JSON and YAML as an object whose keys keep their declared order.
type Fields []Field

// Get returns the value of the named field, and whether it was present.
func (f Fields) Get(name string) (string, bool) {
	for _, field := range f {
		if field.Name == name {
			return field.Value, true
		}
	}
	return "", false
}

// MarshalJSON implements json.Marshaler, preserving field order.
func (f Fields) MarshalJSON() ([]byte, error) {
	if f == nil {
		return []byte("null"), nil
	}

	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, field := range f {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(field.Name)
		if err != nil {
			return nil, err
		}
		v, err := json.Marshal(field.Value)
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(v)
	}
	buf.WriteByte('}')

	return buf.Bytes(), nil
}

// MarshalYAML implements yaml.Marshaler, preserving field order.
func (f Fields) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.MappingNode}
	for _, field := range f {
		node.Content = append(
			node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: field.Name},
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: field.Value},
		)
	}
	return node, nil
}

// Schema implements huma.SchemaProvider, describing Fields as the object it marshals to.
func (f Fields) Schema(_ huma.Registry) *huma.Schema {
	return &huma.Schema{
		Type:                 huma.TypeObject,
		Description:          "Version attributes, e.g. sha and date for commits or tag_version for tags",
		AdditionalProperties: &huma.Schema{Type: huma.TypeString},
	}
}
