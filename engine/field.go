package engine

import (
	"fmt"
	"math/rand/v2"
	"strings"
	"unicode"
)

// kickMargin is the border added around the rotation window; it covers
// the largest SRS nudge on either axis.
const kickMargin = 2

// Field is the game-state engine: the main grid, the active piece, the
// hold slot and the two bags feeding the preview queue.
//
// Field is not safe for concurrent use. Every method runs to completion
// and the seeded randomizer is its only source of nondeterminism.
type Field struct {
	config Config
	anchor Position
	rng    *rand.Rand

	grid    *Grid
	current *Bag
	next    *Bag

	active    ActivePiece
	hasActive bool
	hold      Mino

	spawned   uint64
	toppedOut bool
}

// NewField creates an empty field with two full shuffled bags and no
// active piece.
func NewField(opts ...Option) *Field {
	config := newConfig(opts)
	config.validate()

	rng := rand.New(rand.NewPCG(config.Seed, config.Seed))
	f := &Field{
		config: config,
		anchor: config.spawnAnchor(),
		rng:    rng,
		grid:   NewGrid(Size{X: config.Width, Y: config.Height}),
		hold:   NewMino(KindEmpty),
	}
	f.current = NewBag(rng)
	f.next = NewBag(rng)
	return f
}

// Spawn pulls the next kind from the bags and places it at the spawn
// anchor, replacing any active piece.
func (f *Field) Spawn() error {
	kind, err := f.draw()
	if err != nil {
		return err
	}
	f.place(NewMino(kind))
	return nil
}

func (f *Field) draw() (Kind, error) {
	if f.current.Len() == 0 {
		f.current, f.next = f.next, NewBag(f.rng)
	}
	kind, err := f.current.Next()
	if err != nil {
		return KindEmpty, fmt.Errorf("spawn: %w", err)
	}
	if f.current.Len() == 0 {
		f.current, f.next = f.next, NewBag(f.rng)
	}
	return kind, nil
}

func (f *Field) place(m Mino) {
	f.active = ActivePiece{Mino: m, Position: f.spawnPosition(m)}
	f.hasActive = true
	f.spawned++
	f.toppedOut = !f.fits(m, f.active.Position)
}

// spawnPosition centers the piece's bounding box on the anchor column,
// rounding left, with its top row on the anchor row.
func (f *Field) spawnPosition(m Mino) Position {
	return Position{X: f.anchor.X - (m.Size().X-1)/2, Y: f.anchor.Y}
}

func (f *Field) fits(m Mino, pos Position) bool {
	return CanPlace(f.grid.Window(pos, m.Size()), m, RelativePosition{})
}

// canShift tests m one step away from pos. The window spans both the
// current and the target placement, extended by one cell in the travel
// direction, and the piece is tested at the target offset inside it.
func (f *Field) canShift(m Mino, pos Position, dx, dy int) bool {
	size := m.Size()
	origin := Position{X: pos.X + min(dx, 0), Y: pos.Y + max(dy, 0)}
	window := f.grid.Window(origin, Size{X: size.X + abs(dx), Y: size.Y + abs(dy)})
	return CanPlace(window, m, RelativePosition{X: max(dx, 0), Y: max(-dy, 0)})
}

func (f *Field) shift(dx, dy int) bool {
	if !f.hasActive {
		return false
	}
	if !f.canShift(f.active.Mino, f.active.Position, dx, dy) {
		return false
	}
	f.active.Position = f.active.Position.Add(dx, dy)
	f.active.Last.Rotated = false
	return true
}

func (f *Field) MoveLeft() bool {
	return f.shift(-1, 0)
}

func (f *Field) MoveRight() bool {
	return f.shift(1, 0)
}

func (f *Field) MoveDown() bool {
	return f.shift(0, -1)
}

// IsResting reports whether the active piece cannot fall one more row.
func (f *Field) IsResting() bool {
	if !f.hasActive {
		return false
	}
	return !f.canShift(f.active.Mino, f.active.Position, 0, -1)
}

func (f *Field) RotateRight() bool {
	return f.rotate(true)
}

func (f *Field) RotateLeft() bool {
	return f.rotate(false)
}

func (f *Field) rotate(clockwise bool) bool {
	if !f.hasActive {
		return false
	}
	mino, pos, step, ok := f.resolveRotation(f.active, clockwise)
	if !ok {
		return false
	}
	f.active.Mino = mino
	f.active.Position = pos
	f.active.Last = LastAction{Rotated: true, Step: step}
	return true
}

// resolveRotation computes the outcome of a rotation without touching the
// active piece: the in-place test first, then each kick step in order.
func (f *Field) resolveRotation(p ActivePiece, clockwise bool) (Mino, Position, SuperRotationStep, bool) {
	candidate := p.Mino.turn(clockwise)
	size := p.Mino.Size()
	window := f.grid.Window(
		Position{X: p.Position.X - kickMargin, Y: p.Position.Y + kickMargin},
		Size{X: size.X + 2*kickMargin, Y: size.Y + 2*kickMargin},
	)
	base := RelativePosition{X: kickMargin, Y: kickMargin}

	if CanPlace(window, candidate, base) {
		return candidate, p.Position, 0, true
	}
	if !candidate.Kicks() {
		return Mino{}, Position{}, 0, false
	}
	for step := SuperRotationStep(0); step <= lastKickStep; step++ {
		offset, err := candidate.Kick(p.Mino.Direction(), candidate.Direction(), step)
		if err != nil {
			return Mino{}, Position{}, 0, false
		}
		if CanPlace(window, candidate, base.Add(offset)) {
			return candidate, p.Position.Kick(offset), step, true
		}
	}
	return Mino{}, Position{}, 0, false
}

// Lock stamps the resting piece into the grid, clears full rows, spawns
// the next piece and reports what happened.
func (f *Field) Lock() (ClearResult, error) {
	if !f.hasActive {
		return ClearResult{}, fmt.Errorf("lock: %w", ErrNoActivePiece)
	}
	if !f.IsResting() {
		return ClearResult{}, fmt.Errorf("lock at %s: %w", f.active.Position, ErrNotResting)
	}

	piece := f.active
	lockedOut := true
	for _, cell := range piece.Cells() {
		f.grid.Set(cell, BlockOf(piece.Mino.Kind()))
		if cell.Y < f.config.Visible {
			lockedOut = false
		}
	}

	var result ClearResult
	result.TSpin, result.TSpinMini = f.detectTSpin(piece)
	result.LinesCleared = f.clearLines()
	result.PerfectClear = result.LinesCleared > 0 && f.grid.Occupied() == 0

	if err := f.Spawn(); err != nil {
		return result, err
	}
	f.toppedOut = f.toppedOut || lockedOut
	return result, nil
}

// HardDrop moves the piece down until it rests and locks it. The drop is
// not a translation of its own: a rotation right before it stays the last
// action, so the piece keeps its T-spin eligibility.
func (f *Field) HardDrop() (ClearResult, error) {
	if !f.hasActive {
		return ClearResult{}, fmt.Errorf("hard drop: %w", ErrNoActivePiece)
	}
	last := f.active.Last
	for f.MoveDown() {
	}
	if last.Rotated {
		f.active.Last = last
	}
	return f.Lock()
}

// Hold stores the active piece's spawn orientation. An empty slot pulls
// the next piece from the bag; otherwise the held piece becomes active at
// a fresh spawn position. Hold is not limited per piece.
func (f *Field) Hold() error {
	if !f.hasActive {
		return fmt.Errorf("hold: %w", ErrNoActivePiece)
	}
	held := f.hold
	f.hold = f.active.Mino.Default()
	if held.IsEmpty() {
		return f.Spawn()
	}
	f.place(held.Default())
	return nil
}

// GhostPosition returns where the active piece would land on a hard drop.
func (f *Field) GhostPosition() Position {
	if !f.hasActive {
		return Position{}
	}
	pos := f.active.Position
	for range 2 * f.grid.size.Y {
		if !f.canShift(f.active.Mino, pos, 0, -1) {
			break
		}
		pos.Y--
	}
	return pos
}

// Grid returns a copy of the main grid, row 0 at the bottom.
func (f *Field) Grid() *Grid {
	return f.grid.Clone()
}

// Active returns the falling piece, if one has been spawned.
func (f *Field) Active() (ActivePiece, bool) {
	return f.active, f.hasActive
}

// Held returns the held mino; it is empty until the first hold.
func (f *Field) Held() Mino {
	return f.hold
}

// Preview returns up to n upcoming kinds across the current and next bag.
func (f *Field) Preview(n int) []Kind {
	if n <= 0 {
		return nil
	}
	queue := append(f.current.Peek(), f.next.Peek()...)
	if n < len(queue) {
		queue = queue[:n]
	}
	return queue
}

func (f *Field) LastAction() LastAction {
	return f.active.Last
}

// Spawned counts the pieces placed so far, including those swapped in by
// Hold.
func (f *Field) Spawned() uint64 {
	return f.spawned
}

// ToppedOut reports whether the latest spawned piece overlapped the stack
// or the piece locked before it lies wholly above the visible rows.
func (f *Field) ToppedOut() bool {
	return f.toppedOut
}

func (f *Field) Size() Size {
	return f.grid.size
}

func (f *Field) Visible() int {
	return f.config.Visible
}

func (f *Field) Seed() uint64 {
	return f.config.Seed
}

// String draws the field top row first with the active piece overlaid in
// lower case.
func (f *Field) String() string {
	lines := make([][]rune, f.grid.size.Y)
	for y, row := range f.grid.rows {
		line := make([]rune, len(row))
		for x, b := range row {
			line[x] = b.Rune()
		}
		lines[f.grid.size.Y-1-y] = line
	}
	if f.hasActive {
		for _, cell := range f.active.Cells() {
			if f.grid.Contains(cell) {
				lines[f.grid.size.Y-1-cell.Y][cell.X] = unicode.ToLower(f.active.Mino.Kind().Rune())
			}
		}
	}
	var sb strings.Builder
	for i, line := range lines {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(string(line))
	}
	return sb.String()
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
