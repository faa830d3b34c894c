package engine

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/tools/txtar"
)

// TestScenarios replays the board archives in testdata. Each archive has
// a board, a piece line "KIND DIR X Y", a command list and the expected
// result and bottom rows.
func TestScenarios(t *testing.T) {
	paths, err := filepath.Glob(filepath.Join("testdata", "*.txtar"))
	require.NoError(t, err)
	require.NotEmpty(t, paths)

	for _, path := range paths {
		name := strings.TrimSuffix(filepath.Base(path), ".txtar")
		t.Run(name, func(t *testing.T) {
			archive, err := txtar.ParseFile(path)
			require.NoError(t, err)
			sections := make(map[string]string, len(archive.Files))
			for _, file := range archive.Files {
				sections[file.Name] = strings.TrimRight(string(file.Data), "\n")
			}

			f := newTestField(t, lines(sections["board"])...)
			kind, dir, pos := parsePiece(t, sections["piece"])
			setActive(f, kind, dir, pos)

			var result ClearResult
			for _, cmd := range lines(sections["commands"]) {
				result = runCommand(t, f, cmd, result)
			}

			assert.Equal(t, sections["result"], formatResult(result))
			after := lines(sections["after"])
			assert.Equal(t, strings.Join(after, "\n"), bottomRows(f, len(after)))
		})
	}
}

func lines(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}

func parsePiece(t *testing.T, line string) (Kind, Direction, Position) {
	t.Helper()
	fields := strings.Fields(line)
	require.Len(t, fields, 4, "piece line %q", line)

	kind := KindEmpty
	for _, k := range AllKinds() {
		if k.String() == fields[0] {
			kind = k
		}
	}
	require.NotEqual(t, KindEmpty, kind, "piece kind %q", fields[0])

	dir := DirectionSpawn
	for d := DirectionSpawn; d <= DirectionLeft; d++ {
		if d.String() == fields[1] {
			dir = d
		}
	}

	x, err := strconv.Atoi(fields[2])
	require.NoError(t, err)
	y, err := strconv.Atoi(fields[3])
	require.NoError(t, err)
	return kind, dir, Position{X: x, Y: y}
}

// runCommand applies one command and returns the latest lock result.
func runCommand(t *testing.T, f *Field, cmd string, last ClearResult) ClearResult {
	t.Helper()
	switch cmd {
	case "left":
		require.True(t, f.MoveLeft(), cmd)
	case "right":
		require.True(t, f.MoveRight(), cmd)
	case "down":
		require.True(t, f.MoveDown(), cmd)
	case "rotate-left":
		require.True(t, f.RotateLeft(), cmd)
	case "rotate-right":
		require.True(t, f.RotateRight(), cmd)
	case "hold":
		require.NoError(t, f.Hold())
	case "lock", "hard-drop":
		lock := f.Lock
		if cmd == "hard-drop" {
			lock = f.HardDrop
		}
		result, err := lock()
		require.NoError(t, err)
		return result
	default:
		t.Fatalf("unknown command %q", cmd)
	}
	return last
}

func formatResult(r ClearResult) string {
	return fmt.Sprintf("tspin=%t mini=%t perfect=%t lines=%d", r.TSpin, r.TSpinMini, r.PerfectClear, r.LinesCleared)
}
