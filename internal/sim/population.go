package sim

// PigManager keeps a capped population of live pigs and respawns them on a
// random frame countdown. Enemies do not use it: their population is fixed
// at session start and each enemy respawns itself.
type PigManager struct {
	Cap int

	pigs       []*Pig
	corpses    []*Pig
	spawnTimer int // frames until the next spawn attempt
}

// NewPigManager creates an empty manager with the given cap.
func NewPigManager(limit int) *PigManager {
	return &PigManager{Cap: limit}
}

// Live returns the pigs currently simulated.
func (m *PigManager) Live() []*Pig {
	return m.pigs
}

// Corpses returns dead pigs whose removal timer has not fired yet.
func (m *PigManager) Corpses() []*Pig {
	return m.corpses
}

// Spawn adds a pig at pos, or at a random free spot in the world when pos is
// nil. It fails with ErrPopulationFull at the cap.
func (m *PigManager) Spawn(s *Session, pos *Vec) (*Pig, error) {
	if len(m.pigs) >= m.Cap {
		return nil, ErrPopulationFull
	}
	at, err := s.Env.findFree(s.rng, s.Env.World(), pigSize, pos)
	if err != nil {
		s.emit(Event{Kind: EventPlacementFailed, Actor: ActorPig})
		return nil, err
	}
	pg := newPig(s.newID(), at)
	m.pigs = append(m.pigs, pg)
	s.emit(Event{Kind: EventSpawn, Entity: pg.ID, Label: pg.Label, Actor: ActorPig, Pos: pg.Pos})
	return pg, nil
}

// Update drops dead pigs, runs every live one, then counts down to the next
// spawn. The countdown only resets when a pig is actually spawned.
func (m *PigManager) Update(s *Session) {
	live := m.pigs[:0]
	for _, pg := range m.pigs {
		if pg.Alive() {
			live = append(live, pg)
		}
	}
	for i := len(live); i < len(m.pigs); i++ {
		m.pigs[i] = nil
	}
	m.pigs = live

	for _, pg := range m.pigs {
		pg.Update(s)
	}

	m.spawnTimer--
	if m.spawnTimer <= 0 && len(m.pigs) < m.Cap {
		if _, err := m.Spawn(s, nil); err != nil {
			s.log.Warn("pig spawn failed", "err", err)
		}
		m.spawnTimer = s.rng.Intn(pigSpawnSpan) + pigSpawnMin
	}
}

// buryLater keeps the corpse around until pigCorpseDelay has passed.
func (m *PigManager) buryLater(s *Session, pg *Pig) {
	m.corpses = append(m.corpses, pg)
	s.sched.After(pigCorpseDelay, pg.ID, "remove", func() {
		for i, c := range m.corpses {
			if c == pg {
				m.corpses = append(m.corpses[:i], m.corpses[i+1:]...)
				break
			}
		}
		s.emit(Event{Kind: EventDespawn, Entity: pg.ID, Label: pg.Label, Actor: ActorPig, Pos: pg.Pos})
	})
}
