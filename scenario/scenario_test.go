package scenario

import (
	"bytes"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"github.com/gogpu/drawing"
	"github.com/gogpu/drawing/recording"
	"github.com/gogpu/drawing/verify"
)

func TestStructureScenarios(t *testing.T) {
	names := Names()
	require.Len(t, names, 26)
	assert.Equal(t, "structure/01", names[0])
	assert.Equal(t, "structure/26", names[25])

	for _, name := range names {
		t.Run(name, func(t *testing.T) {
			res, err := Run(name, WithReplay(), WithReporter(verify.TestReporter(t)))
			require.NoError(t, err)
			assert.True(t, res.Passed())
			assert.Equal(t, name, res.Name)
			assert.NotNil(t, res.Recording)
		})
	}
}

func TestStructureCommandCounts(t *testing.T) {
	tests := []struct {
		name string
		want int
		root bool
	}{
		// DrawText records three commands
		{"structure/01", 16, true},
		{"structure/02", 18, true},
		// nil payloads record nothing
		{"structure/10", 0, false},
		{"structure/11", 4, true},
		{"structure/12", 4, true},
		{"structure/13", 4, true},
		{"structure/14", 2, true},
		{"structure/15", 2, true},
		{"structure/16", 0, false},
		{"structure/17", 2, true},
		{"structure/18", 0, false},
		{"structure/19", 4, true},
		{"structure/20", 8, true},
		{"structure/21", 2, true},
		{"structure/22", 0, false},
		{"structure/23", 1, true},
		{"structure/24", 2, true},
		{"structure/25", 2, true},
		{"structure/26", 2, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := Run(tt.name)
			require.NoError(t, err)
			assert.Equal(t, tt.want, res.Recording.Len())
			assert.Equal(t, tt.root, res.Recording.Root() != nil)
			assert.NoError(t, recording.Balanced(res.Recording.Commands()))
		})
	}
}

func TestGroupTargetReopen(t *testing.T) {
	res, err := Run("structure/23")
	require.NoError(t, err)
	cmds := res.Recording.Commands()
	require.Len(t, cmds, 1)
	assert.Equal(t, recording.CmdDrawRectangle, cmds[0].Type())
	assert.Len(t, res.Recording.Root().Children, 1)

	res, err = Run("structure/24")
	require.NoError(t, err)
	cmds = res.Recording.Commands()
	require.Len(t, cmds, 2)
	assert.Equal(t, recording.CmdDrawLine, cmds[0].Type())
	assert.Equal(t, recording.CmdDrawRectangle, cmds[1].Type())
	assert.Len(t, res.Recording.Root().Children, 2)
}

func TestRunUnknown(t *testing.T) {
	_, err := Run("structure/99")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownScenario))
	assert.Contains(t, err.Error(), `"structure/99"`)
}

func TestRunRecordError(t *testing.T) {
	boom := errors.New("boom")
	s := Scenario{Name: "failing", Record: func(*recording.Recorder) error { return boom }}

	_, err := s.Run()
	require.Error(t, err)
	assert.True(t, errors.Is(err, boom))
}

func TestRunReportsMismatches(t *testing.T) {
	// A node added after recording has no command.
	g := drawing.NewDrawingGroup()
	s := Scenario{
		Name:   "tampered",
		Target: TargetGroup,
		Record: func(rec *recording.Recorder) error {
			rec.DrawRectangle(drawing.Brushes.Red, nil, rect(0, 0, 1, 1))
			return nil
		},
	}
	res, err := s.Run()
	require.NoError(t, err)
	require.True(t, res.Passed())

	res.Recording.Root().Children = append(res.Recording.Root().Children, g)
	mismatches, err := verify.Verify(res.Recording.Root(), res.Recording.Commands())
	require.NoError(t, err)
	assert.Len(t, mismatches, 1)
}

func TestRunReplaysTextWithoutForeground(t *testing.T) {
	tests := []struct {
		name string
		text func() *drawing.FormattedText
	}{
		{"constructor", func() *drawing.FormattedText {
			return drawing.NewFormattedText("Hi", language.English, nil, 12, nil)
		}},
		{"literal", func() *drawing.FormattedText {
			ft := drawing.NewFormattedText("Hi", language.English, nil, 12, nil)
			ft.Foreground = nil
			return ft
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Scenario{
				Name: "text/" + tt.name,
				Record: func(rec *recording.Recorder) error {
					rec.DrawText(tt.text(), drawing.Pt(1, 1))
					return nil
				},
			}
			res, err := s.Run(WithReplay())
			require.NoError(t, err)
			assert.Empty(t, res.Mismatches)
			assert.Empty(t, res.ReplayMismatches)
			assert.Equal(t, 3, res.Recording.Len())
		})
	}
}

func TestRegister(t *testing.T) {
	assert.Panics(t, func() {
		Register("structure/01", Scenario{Record: everyDraw})
	})
	assert.Panics(t, func() {
		Register("empty", Scenario{})
	})

	s, err := Lookup("structure/07")
	require.NoError(t, err)
	assert.Equal(t, "structure/07", s.Name)
	assert.Equal(t, "consecutive pushes", s.Description)
	assert.Equal(t, TargetVisual, s.Target)

	all := All()
	require.Len(t, all, 26)
	assert.Equal(t, TargetGroup, all[22].Target)
}

func TestRunLogs(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	_, err := Run("structure/21", WithLogger(logger))
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "scenario: start")
	assert.Contains(t, buf.String(), "scenario=structure/21")
	assert.Contains(t, buf.String(), "passed=true")
}

func TestWood(t *testing.T) {
	a, err := wood()
	require.NoError(t, err)
	b, err := wood()
	require.NoError(t, err)

	assert.NotSame(t, a, b)
	assert.True(t, drawing.DeepEqual(a, b))
	assert.Equal(t, 32.0, a.Width())
	assert.Equal(t, 24.0, a.Height())
}

func TestTargetString(t *testing.T) {
	assert.Equal(t, "visual", TargetVisual.String())
	assert.Equal(t, "group", TargetGroup.String())
	assert.Equal(t, "Target(7)", Target(7).String())
}
