package record

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cadwire/dxfio/errs"
	"github.com/cadwire/dxfio/format"
	"github.com/cadwire/dxfio/tag"
)

// body builds a tag stream from (code, value) pairs and appends the group 0
// terminator announcing the next record.
func body(pairs ...string) string {
	var sb strings.Builder
	for i := 0; i < len(pairs); i += 2 {
		sb.WriteString(pairs[i])
		sb.WriteString("\n")
		sb.WriteString(pairs[i+1])
		sb.WriteString("\n")
	}
	sb.WriteString("  0\nENDSEC\n")

	return sb.String()
}

func newTestDecoder(t *testing.T, src string, version format.Version) *Decoder {
	t.Helper()

	d, err := NewDecoder(tag.NewReader(strings.NewReader(src)), version)
	require.NoError(t, err)

	return d
}

func mustDefaults(t *testing.T) Defaults {
	t.Helper()

	defs, err := NewDefaults()
	require.NoError(t, err)

	return defs
}

func TestNewDecoder_UnknownVersion(t *testing.T) {
	_, err := NewDecoder(tag.NewReader(strings.NewReader("")), format.Version(99))
	require.ErrorIs(t, err, errs.ErrUnknownVersion)
}

func TestNewDecoder_MaxValueLen(t *testing.T) {
	_, err := NewDecoder(tag.NewReader(strings.NewReader("")), format.R2000,
		WithMaxValueLen(0))
	require.Error(t, err)

	d, err := NewDecoder(tag.NewReader(strings.NewReader("  1\ntoo long by far\n")), format.R2000,
		WithMaxValueLen(4))
	require.NoError(t, err)

	text := &Text{}
	_, err = Read(d, TextTable, mustDefaults(t), text)
	require.ErrorIs(t, err, errs.ErrValueTooLong)
}

func TestDecode_Layer(t *testing.T) {
	d := newTestDecoder(t, body(
		"  5", "2f",
		"100", "AcDbSymbolTableRecord",
		"100", "AcDbLayerTableRecord",
		"  2", "WALLS",
		" 70", "0",
		" 62", "3",
		"  6", "DASHED",
	), format.R2000)

	layer := &Layer{}
	end, err := Read(d, LayerTable, mustDefaults(t), layer)
	require.NoError(t, err)
	require.Equal(t, "ENDSEC", end.Value)

	require.Equal(t, uint64(0x2F), layer.Handle())
	require.Equal(t, "WALLS", layer.Name)
	require.Equal(t, int16(3), layer.Color)
	require.Equal(t, "DASHED", layer.Linetype)
	require.True(t, layer.Plotting)
	require.Empty(t, d.Diagnostics())
}

func TestDecode_UnknownCodeTolerated(t *testing.T) {
	d := newTestDecoder(t, body(
		"  2", "WALLS",
		"1071", "42",
		" 62", "5",
	), format.R2000)

	layer := &Layer{}
	_, err := Read(d, LayerTable, mustDefaults(t), layer)
	require.NoError(t, err)

	// The unknown pair is discarded; everything else is intact.
	require.Equal(t, "WALLS", layer.Name)
	require.Equal(t, int16(5), layer.Color)

	diags := d.Diagnostics()
	require.Equal(t, 1, diags.Count(DiagUnknownCode))
	require.Equal(t, 1071, diags[0].Code)
}

func TestDecode_MalformedValueKeepsDefault(t *testing.T) {
	d := newTestDecoder(t, body(
		"  2", "WALLS",
		" 62", "not a number",
	), format.R2000)

	layer := &Layer{}
	_, err := Read(d, LayerTable, mustDefaults(t), layer)
	require.NoError(t, err)

	// The color field keeps its declared default.
	require.Equal(t, int16(layerDefaultColor), layer.Color)
	require.True(t, d.Diagnostics().Has(DiagMalformedValue))
}

func TestDecode_RepeatedSoftOwners(t *testing.T) {
	d := newTestDecoder(t, body(
		"  1", "hello",
		"330", "10",
		"330", "11",
		"330", "12",
	), format.R2000)

	text := &Text{}
	_, err := Read(d, TextTable, mustDefaults(t), text)
	require.NoError(t, err)

	require.Equal(t, 3, text.Owners().Len())

	var got []uint64
	for h := range text.Owners().All() {
		got = append(got, h)
	}
	require.Equal(t, []uint64{0x10, 0x11, 0x12}, got)

	owner, ok := text.Owner()
	require.True(t, ok)
	require.Equal(t, uint64(0x10), owner)
}

func TestDecode_ReactorAndXDictBlocks(t *testing.T) {
	d := newTestDecoder(t, body(
		"102", "{ACAD_REACTORS",
		"330", "a1",
		"330", "a2",
		"102", "}",
		"102", "{ACAD_XDICTIONARY",
		"360", "b1",
		"102", "}",
		"  1", "hello",
	), format.R2000)

	text := &Text{}
	_, err := Read(d, TextTable, mustDefaults(t), text)
	require.NoError(t, err)

	require.Equal(t, 2, text.Reactors().Len())
	first, _ := text.Reactors().First()
	require.Equal(t, uint64(0xA1), first)

	xdict, ok := text.XDict()
	require.True(t, ok)
	require.Equal(t, uint64(0xB1), xdict)

	require.Empty(t, d.Diagnostics())
}

func TestDecode_UnknownControlBlockSkipped(t *testing.T) {
	d := newTestDecoder(t, body(
		"102", "{APP_PRIVATE",
		"330", "a1",
		"102", "}",
		"  1", "hello",
	), format.R2000)

	text := &Text{}
	_, err := Read(d, TextTable, mustDefaults(t), text)
	require.NoError(t, err)

	require.Equal(t, "hello", text.Value)
	require.Equal(t, 0, text.Reactors().Len())
	require.True(t, d.Diagnostics().Has(DiagUnknownControl))
}

func TestDecode_SubclassMismatchWarns(t *testing.T) {
	d := newTestDecoder(t, body(
		"100", "AcDbSymbolTableRecord",
		"100", "AcDbDimStyleTableRecord",
		"  2", "WALLS",
	), format.R2000)

	layer := &Layer{}
	_, err := Read(d, LayerTable, mustDefaults(t), layer)
	require.NoError(t, err)

	// Mismatch is a warning, not a failure; the record still decodes.
	require.Equal(t, "WALLS", layer.Name)
	require.Equal(t, 1, d.Diagnostics().Count(DiagSubclassMismatch))
}

func TestDecode_FieldBelowMinimumVersionSuspect(t *testing.T) {
	d := newTestDecoder(t, body(
		"  2", "WALLS",
		"290", "0",
	), format.R12)

	layer := &Layer{}
	_, err := Read(d, LayerTable, mustDefaults(t), layer)
	require.NoError(t, err)

	// Accepted but flagged: the value is stored and the record is suspect.
	require.False(t, layer.Plotting)
	require.True(t, d.Diagnostics().Has(DiagVersionMismatch))
}

func TestDecode_TruncatedRecord(t *testing.T) {
	d := newTestDecoder(t, "  2\nWALLS\n", format.R2000)

	layer := &Layer{}
	_, err := Read(d, LayerTable, mustDefaults(t), layer)
	require.ErrorIs(t, err, errs.ErrUnexpectedEOF)
}

func TestDecode_UnterminatedControlBlock(t *testing.T) {
	d := newTestDecoder(t, "102\n{ACAD_REACTORS\n330\na1\n", format.R2000)

	text := &Text{}
	_, err := Read(d, TextTable, mustDefaults(t), text)
	require.ErrorIs(t, err, errs.ErrUnexpectedEOF)
}

func TestDecode_StructuralCommentIgnored(t *testing.T) {
	d := newTestDecoder(t, body(
		"999", "machine generated, do not edit",
		"  2", "WALLS",
	), format.R2000)

	layer := &Layer{}
	_, err := Read(d, LayerTable, mustDefaults(t), layer)
	require.NoError(t, err)

	require.Equal(t, "WALLS", layer.Name)
	require.Empty(t, d.Diagnostics())
}

func TestDecode_DefaultSubstitution(t *testing.T) {
	d := newTestDecoder(t, body(
		" 10", "1.0",
		" 20", "2.0",
		" 40", "0",
		"  1", "hello",
		"  7", "",
	), format.R2000)

	text := &Text{}
	_, err := Read(d, TextTable, mustDefaults(t), text)
	require.NoError(t, err)

	// A zero height and an empty style never survive decoding.
	require.Equal(t, 1.0, text.Height)
	require.Equal(t, "STANDARD", text.Style)
}
