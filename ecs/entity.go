package ecs

import "strconv"

// Entity packs a slot id in the low 32 bits and the slot generation in the
// high 32 bits. The zero Entity is never handed out.
type Entity uint64

type entityID uint32
type generation uint32

const entityIDBits = 32

func makeEntity(id entityID, gen generation) Entity {
	return Entity(uint64(gen)<<entityIDBits | uint64(id))
}

func (e Entity) id() entityID {
	return entityID(uint32(e))
}

func (e Entity) generation() generation {
	return generation(uint32(uint64(e) >> entityIDBits))
}

func (e Entity) String() string {
	return strconv.FormatUint(uint64(e), 10)
}

// entityStore tracks slot generations and recycled ids.
type entityStore struct {
	gens []generation
	free []entityID
}

func (s *entityStore) create() Entity {
	if n := len(s.free); n > 0 {
		id := s.free[n-1]
		s.free = s.free[:n-1]
		return makeEntity(id, s.gens[id-1])
	}
	s.gens = append(s.gens, 0)
	return makeEntity(entityID(len(s.gens)), 0)
}

func (s *entityStore) destroy(e Entity) bool {
	if !s.isAlive(e) {
		return false
	}
	id := e.id()
	s.gens[id-1]++
	s.free = append(s.free, id)
	return true
}

func (s *entityStore) isAlive(e Entity) bool {
	id := e.id()
	if id == 0 || int(id) > len(s.gens) {
		return false
	}
	if s.gens[id-1] != e.generation() {
		return false
	}
	for _, f := range s.free {
		if f == id {
			return false
		}
	}
	return true
}

func (s *entityStore) alive() []Entity {
	dead := make(map[entityID]struct{}, len(s.free))
	for _, id := range s.free {
		dead[id] = struct{}{}
	}
	out := make([]Entity, 0, len(s.gens)-len(s.free))
	for i, gen := range s.gens {
		id := entityID(i + 1)
		if _, ok := dead[id]; ok {
			continue
		}
		out = append(out, makeEntity(id, gen))
	}
	return out
}
