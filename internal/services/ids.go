package services

import "time"

// idGenerator hands out strictly increasing int64 ids. Ids follow the Unix
// millisecond clock when it moves ahead and fall back to last+1 otherwise,
// so two ids created in the same tick never collide.
type idGenerator struct {
	last int64
	now  func() time.Time
}

// seed makes every later id greater than floor.
func (g *idGenerator) seed(floor int64) {
	if floor > g.last {
		g.last = floor
	}
}

func (g *idGenerator) next() int64 {
	id := g.now().UnixMilli()
	if id <= g.last {
		id = g.last + 1
	}
	g.last = id
	return id
}
