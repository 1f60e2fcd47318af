package record

import (
	"iter"

	"github.com/cadwire/dxfio/encoding"
	"github.com/cadwire/dxfio/format"
)

// Comment is the record type built expressly to hold 999 comment lines as
// data. Anywhere else in a stream a 999 pair is structural noise; inside a
// COMMENT record each one appends a line.
type Comment struct {
	Base

	// Lines holds the comment text lines in input order.
	Lines List[string]
}

// NewComment creates a comment holding one line of text.
func NewComment(text string) *Comment {
	c := &Comment{}
	c.Lines.PushBack(text)

	return c
}

// Text returns the first comment line, "" when the comment is empty.
func (c *Comment) Text() string {
	s, _ := c.Lines.First()
	return s
}

// ReleaseFields releases the line collection.
func (c *Comment) ReleaseFields() {
	c.Lines.Release()
}

// CommentTable is the field table for COMMENT records: a single repeatable
// entry capturing 999 lines.
var CommentTable = NewTable[*Comment]("COMMENT", nil, nil,
	Field[*Comment]{
		Code:   format.CodeComment,
		Name:   "text",
		Repeat: true,
		Decode: func(c *Comment, v encoding.Value) {
			c.Lines.PushBack(v.Str)
		},
		EmitList: func(c *Comment) iter.Seq[encoding.Value] {
			return func(yield func(encoding.Value) bool) {
				for line := range c.Lines.All() {
					if !yield(encoding.String(line)) {
						return
					}
				}
			}
		},
	},
)
