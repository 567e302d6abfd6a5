package anim

import "time"

var epoch = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

// mapTarget is a Target over a plain map that counts reads.
type mapTarget struct {
	values map[string]any
	reads  int
}

func newMapTarget(values map[string]any) *mapTarget {
	return &mapTarget{values: values}
}

func (m *mapTarget) Get(name string) any {
	m.reads++
	return m.values[name]
}

func (m *mapTarget) Set(name string, value any) {
	m.values[name] = value
}

func (m *mapTarget) Has(name string) bool {
	_, ok := m.values[name]
	return ok
}

// stepAnimation records its ticks and finishes after limit ticks when limit
// is positive.
type stepAnimation struct {
	ticks  int
	limit  int
	kind   Kind
	onTick func()
}

func (s *stepAnimation) Update() bool {
	s.ticks++
	if s.onTick != nil {
		s.onTick()
	}
	return s.limit <= 0 || s.ticks < s.limit
}

func (s *stepAnimation) Kind() Kind {
	return s.kind
}
