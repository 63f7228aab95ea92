// Package flock hosts many independent characters in an ECS world and steps them together.
package flock

import (
	"fmt"

	"github.com/getsentry/sentry-go"
	"github.com/oomph-ac/waddle/input"
	"github.com/oomph-ac/waddle/sim"
	"github.com/oomph-ac/waddle/worker"
	"github.com/sirupsen/logrus"
	"github.com/yohamta/donburi"
)

// InputSource produces the input of a character once per tick.
type InputSource interface {
	Next() input.Snapshot
}

// MemberData is the component every flock member carries.
type MemberData struct {
	Name      string
	Character *sim.Character
	Input     InputSource
	// Last is the result of the most recent tick.
	Last sim.Result
	// Failed is set once stepping the member panicked. Failed members are no longer stepped.
	Failed bool
}

var Member = donburi.NewComponentType[MemberData]()

// Flock steps every member once per tick, either one after another or on a worker pool. Members share
// nothing but the read-only terrain, so both orders give the same results.
type Flock struct {
	world donburi.World
	sim   *sim.Simulator
	pool  *worker.Pool
	log   *logrus.Entry

	members []*MemberData
	jobs    []func()
}

// New returns an empty flock. A nil pool steps members sequentially.
func New(s *sim.Simulator, pool *worker.Pool, log *logrus.Entry) *Flock {
	return &Flock{world: donburi.NewWorld(), sim: s, pool: pool, log: log}
}

// Add puts a character into the flock and returns its entity.
func (f *Flock) Add(name string, c *sim.Character, in InputSource) donburi.Entity {
	entity := f.world.Create(Member)
	Member.SetValue(f.world.Entry(entity), MemberData{Name: name, Character: c, Input: in})
	return entity
}

// Remove takes a member out of the flock.
func (f *Flock) Remove(entity donburi.Entity) {
	if f.world.Valid(entity) {
		f.world.Remove(entity)
	}
}

// Len returns the number of members.
func (f *Flock) Len() int {
	return f.world.Len()
}

// Get returns the data of a member.
func (f *Flock) Get(entity donburi.Entity) (*MemberData, bool) {
	if !f.world.Valid(entity) {
		return nil, false
	}
	return Member.Get(f.world.Entry(entity)), true
}

// Each calls fn for every member.
func (f *Flock) Each(fn func(*MemberData)) {
	Member.Each(f.world, func(entry *donburi.Entry) {
		fn(Member.Get(entry))
	})
}

// Step advances every healthy member by one tick of dt seconds and returns the number of members that
// failed during this tick.
func (f *Flock) Step(dt float32) int {
	f.members = f.members[:0]
	f.Each(func(m *MemberData) {
		if !m.Failed {
			f.members = append(f.members, m)
		}
	})

	if f.pool == nil {
		for _, m := range f.members {
			f.stepSafe(m, dt)
		}
	} else {
		f.jobs = f.jobs[:0]
		for _, m := range f.members {
			f.jobs = append(f.jobs, func() { f.stepSafe(m, dt) })
		}
		f.pool.Run(f.jobs...)
	}

	failed := 0
	for _, m := range f.members {
		if m.Failed {
			failed++
		}
	}
	return failed
}

func (f *Flock) step(m *MemberData, dt float32) {
	m.Last = f.sim.Simulate(m.Character, m.Input.Next(), dt)
}

// stepSafe steps a member and marks it failed if it panics. Only the member itself is written, so members
// may be stepped concurrently.
func (f *Flock) stepSafe(m *MemberData, dt float32) {
	defer func() {
		if r := recover(); r != nil {
			sentry.CurrentHub().Recover(r)
			f.fail(m, fmt.Sprint(r))
		}
	}()
	f.step(m, dt)
}

func (f *Flock) fail(m *MemberData, reason string) {
	m.Failed = true
	if f.log != nil {
		f.log.WithField("member", m.Name).Errorf("member stopped: %s", reason)
	}
}
