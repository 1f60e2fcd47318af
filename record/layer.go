package record

import (
	"github.com/cadwire/dxfio/encoding"
	"github.com/cadwire/dxfio/format"
)

// Layer default values declared by the format.
const (
	layerDefaultColor    = 7
	layerDefaultLinetype = "CONTINUOUS"
)

// Layer is a layer table entry.
type Layer struct {
	Base

	Name      string
	Flags     int16
	Color     int16  // display color, default 7
	Linetype  string // default CONTINUOUS
	Plotting  bool   // plot this layer, default true (AC1015+)
	PlotStyle uint64 // hard pointer to the plot style name object (AC1015+)
}

// NewLayer creates a layer with the given name and the format's declared
// defaults.
func NewLayer(name string) *Layer {
	return &Layer{
		Name:     name,
		Color:    layerDefaultColor,
		Linetype: layerDefaultLinetype,
		Plotting: true,
	}
}

// LayerTable is the field table for LAYER table entries.
var LayerTable = NewTable[*Layer]("LAYER",
	func(l *Layer, _ Defaults) {
		l.Color = layerDefaultColor
		l.Linetype = layerDefaultLinetype
		l.Plotting = true
	},
	func(l *Layer, _ Defaults) {
		// A zero or negative color and an empty linetype fall back to the
		// declared defaults; decoding never leaves them invalid.
		if l.Color <= 0 {
			l.Color = layerDefaultColor
		}
		if l.Linetype == "" {
			l.Linetype = layerDefaultLinetype
		}
	},
	Field[*Layer]{
		Code:   format.CodeSubclass,
		Name:   "symbol table record marker",
		Min:    format.R13,
		Marker: "AcDbSymbolTableRecord",
	},
	Field[*Layer]{
		Code:   format.CodeSubclass,
		Name:   "layer table record marker",
		Min:    format.R13,
		Marker: "AcDbLayerTableRecord",
	},
	Field[*Layer]{
		Code:     2,
		Name:     "name",
		Required: true,
		Decode: func(l *Layer, v encoding.Value) {
			l.Name = v.Str
		},
		Emit: func(l *Layer) (encoding.Value, bool) {
			return encoding.String(l.Name), l.Name != ""
		},
	},
	Field[*Layer]{
		Code: 70,
		Name: "flags",
		Decode: func(l *Layer, v encoding.Value) {
			l.Flags = int16(v.Int)
		},
		Emit: func(l *Layer) (encoding.Value, bool) {
			return encoding.Int16(l.Flags), true
		},
	},
	Field[*Layer]{
		Code: 62,
		Name: "color",
		Decode: func(l *Layer, v encoding.Value) {
			l.Color = int16(v.Int)
		},
		Emit: func(l *Layer) (encoding.Value, bool) {
			return encoding.Int16(l.Color), true
		},
	},
	Field[*Layer]{
		Code: 6,
		Name: "linetype",
		Decode: func(l *Layer, v encoding.Value) {
			l.Linetype = v.Str
		},
		Emit: func(l *Layer) (encoding.Value, bool) {
			return encoding.String(l.Linetype), true
		},
	},
	Field[*Layer]{
		Code: 290,
		Name: "plotting",
		Min:  format.R2000,
		Decode: func(l *Layer, v encoding.Value) {
			l.Plotting = v.Bool
		},
		Emit: func(l *Layer) (encoding.Value, bool) {
			// Plotting on is the default; only the off state travels.
			return encoding.Bool(l.Plotting), !l.Plotting
		},
	},
	Field[*Layer]{
		Code: 390,
		Name: "plot style",
		Min:  format.R2000,
		Decode: func(l *Layer, v encoding.Value) {
			l.PlotStyle = v.Handle
		},
		Emit: func(l *Layer) (encoding.Value, bool) {
			return encoding.Handle(l.PlotStyle), l.PlotStyle != HandleNone
		},
	},
)
