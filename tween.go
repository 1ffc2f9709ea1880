package main

import "github.com/tanema/gween"

// Animation hooks into a running tween.
type Animation struct {
	nexts    []func(g *Game)
	onChange func(float32)
	onFinish []func()
}

func (a *Animation) addOnFinish(f func()) {
	if a.onFinish == nil {
		a.onFinish = make([]func(), 0)
	}
	a.onFinish = append(a.onFinish, f)
}

// next queues t to start once the current tween finishes.
func (a *Animation) next(t *gween.Tween) *Animation {
	animation := &Animation{}
	if a.nexts == nil {
		a.nexts = make([]func(g *Game), 0)
	}
	a.nexts = append(a.nexts,
		func(g *Game) {
			g.Tweens[t] = animation
		})
	return animation
}

// tick advances every tween by dt and fires the finished hooks.
func (g *Game) tick(dt float32) {
	for t, a := range g.Tweens {
		curr, finished := t.Update(dt)
		if a.onChange != nil {
			a.onChange(curr)
		}
		if finished {
			for _, onFinish := range a.onFinish {
				onFinish()
			}
			for _, next := range a.nexts {
				next(g)
			}
			delete(g.Tweens, t)
		}
	}
}
