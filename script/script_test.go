package script

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zucenko/robomaze/model"
)

func TestParseActions(t *testing.T) {
	s, err := Parse("test", `
		forward 3;
		left;
		recharge;
		dive -2;
		repeat 2 { right 2; dive 4; }
	`)
	require.NoError(t, err)

	actions := s.Actions()
	require.Len(t, actions, 8)
	assert.Equal(t, "forward 3", actions[0].String())
	assert.Equal(t, "left 1", actions[1].String())
	assert.Equal(t, KindRecharge, actions[2].Kind)
	assert.Equal(t, -2, actions[3].Squares)
	assert.Equal(t, "right 2", actions[4].String())
	assert.Equal(t, "dive 4", actions[5].String())
	assert.Equal(t, "right 2", actions[6].String())
	assert.Equal(t, "dive 4", actions[7].String())
	assert.Equal(t, 2, actions[0].Pos.Line)
}

func TestParseNestedRepeat(t *testing.T) {
	s, err := Parse("test", `repeat 2 { repeat 3 { back; } recharge; } repeat 0 { left; }`)
	require.NoError(t, err)
	assert.Len(t, s.Actions(), 8)
}

func TestParseErrors(t *testing.T) {
	for _, src := range []string{
		"forward 3",
		"jump 2;",
		"dive;",
		"repeat { left; }",
		"repeat 2 { left; ",
	} {
		_, err := Parse("bad", src)
		assert.Error(t, err, src)
	}
}

func TestQueue(t *testing.T) {
	s, err := Parse("test", `right 3; dive 2; left 0; recharge;`)
	require.NoError(t, err)

	q := NewQueue(s)
	got := make([]string, 0)
	for {
		a, ok := q.Next()
		if !ok {
			break
		}
		got = append(got, a.String())
	}
	assert.Equal(t, []string{"right 1", "right 1", "right 1", "dive 2", "recharge"}, got)
	assert.Equal(t, 0, q.Len())
}

func TestQueueLargeMoveIsLazy(t *testing.T) {
	s, err := Parse("test", `forward 1000; left;`)
	require.NoError(t, err)

	q := NewQueue(s)
	a, ok := q.Next()
	require.True(t, ok)
	assert.Equal(t, 1, a.Steps)
	assert.Equal(t, 2, q.Len())

	q.Clear()
	_, ok = q.Next()
	assert.False(t, ok)
}

func TestParseRejectsLargeCounts(t *testing.T) {
	for _, src := range []string{
		"forward 9223372036854775807;",
		"forward 1001;",
		"repeat 1001 { left; }",
		"repeat 1000 { repeat 1000 { left; } }",
		"repeat 100000 { repeat 100000 { left; } }",
		"repeat 2 { repeat 1000 { repeat 1000 { left; } } }",
	} {
		_, err := Parse("big", src)
		require.Error(t, err, src)
		assert.True(t, errors.Is(err, ErrTooLarge), src)
	}

	s, err := Parse("ok", "forward 1000; repeat 99 { repeat 1000 { left; } }")
	require.NoError(t, err)
	assert.Len(t, s.Actions(), 1+99*1000)
}

type countingTarget struct {
	*model.Robot
	steps int
}

func (c *countingTarget) Step(d model.Direction) model.MoveResult {
	c.steps++
	return c.Robot.Step(d)
}

func TestApplyStopsAfterRejection(t *testing.T) {
	tests := []struct {
		name     string
		setup    func(r *model.Robot)
		moved    int
		calls    int
		rejected model.MoveResult
	}{
		{"depleted", func(r *model.Robot) { r.Right(9).Left(8) }, 3, 4, model.Depleted},
		{"edge", func(r *model.Robot) {}, 9, 10, model.OutOfBounds},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := model.NewRobot("wall-e", "yellow", model.At(5, 0))
			tt.setup(r)
			c := &countingTarget{Robot: r}
			rep := NewReport()

			a := Action{Kind: KindMove, Dir: model.Right, Steps: MaxCount}
			require.NoError(t, a.Apply(c, &rep))
			assert.Equal(t, tt.moved, rep.Moved)
			assert.Equal(t, MaxCount-tt.moved, rep.Rejected[tt.rejected])
			assert.Equal(t, 1, len(rep.Rejected))
			assert.Equal(t, tt.calls, c.steps)
		})
	}
}

func TestRunSurfaceRobot(t *testing.T) {
	s, err := Parse("test", `forward 3; left; back 5; recharge;`)
	require.NoError(t, err)

	r := model.NewRobot("wall-e", "yellow")
	rep, err := s.Run(r)
	require.NoError(t, err)

	assert.Equal(t, 6, rep.Moved)
	assert.Equal(t, 3, rep.Rejected[model.OutOfBounds])
	assert.Equal(t, 3, rep.Rejections())
	assert.Equal(t, 1, rep.Recharges)
	assert.Equal(t, 0, r.Row())
	assert.Equal(t, 0, r.Column())
	assert.Equal(t, model.Full, r.Battery())
}

func TestRunCountsBlocked(t *testing.T) {
	s, err := Parse("test", `forward 2;`)
	require.NoError(t, err)

	r := model.NewRobot("wall-e", "yellow", model.At(0, 1))
	rep, err := s.Run(r)
	require.NoError(t, err)
	assert.Equal(t, 1, rep.Moved)
	assert.Equal(t, 1, rep.Rejected[model.Blocked])
}

func TestRunCountsDepleted(t *testing.T) {
	s, err := Parse("test", `right 9; left 9; right 9;`)
	require.NoError(t, err)

	r := model.NewRobot("wall-e", "yellow", model.At(5, 0))
	rep, err := s.Run(r)
	require.NoError(t, err)
	assert.Equal(t, model.Full, rep.Moved)
	assert.Equal(t, 7, rep.Rejected[model.Depleted])
	assert.True(t, r.Depleted())
	assert.Equal(t, 2, r.Column())
}

func TestRunUnderwater(t *testing.T) {
	s, err := Parse("test", `dive 5; dive -2; right;`)
	require.NoError(t, err)

	u := model.NewUnderwaterRobot("nemo", "purple", 0)
	rep, err := s.Run(u)
	require.NoError(t, err)
	assert.Equal(t, 3, u.Depth())
	assert.Equal(t, 2, rep.Dives)
	assert.Equal(t, 1, rep.Moved)
}

func TestRunDiveOnSurfaceRobot(t *testing.T) {
	s, err := Parse("test", "right;\ndive 1;\nright;")
	require.NoError(t, err)

	r := model.NewRobot("wall-e", "yellow")
	rep, err := s.Run(r)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrCannotDive))
	assert.Contains(t, err.Error(), "test:2:1")
	assert.Equal(t, 1, rep.Moved)
	assert.Equal(t, 1, r.Column())
}

func TestParseFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "walk.robot")
	require.NoError(t, os.WriteFile(path, []byte("forward 2;\nrecharge;\n"), 0o644))

	s, err := ParseFile(path)
	require.NoError(t, err)
	assert.Len(t, s.Actions(), 2)

	_, err = ParseFile(filepath.Join(t.TempDir(), "missing.robot"))
	assert.Error(t, err)
}
