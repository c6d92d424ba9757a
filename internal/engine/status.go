package engine

// Status - снимок состояния сессии для HTTP-сервера.
// Сервер живет в своих горутинах и читает только его.
type Status struct {
	Seed    int64  `json:"seed"`
	Depth   int    `json:"depth"`
	Turn    int    `json:"turn"`
	Frame   int    `json:"frame"`
	HP      int    `json:"hp"`
	MaxHP   int    `json:"maxHp"`
	Dead    bool   `json:"isDead"`
	Actors  int    `json:"actors"`
	Known   int    `json:"knownCells"`
	Mode    string `json:"mode"`
	Visited int    `json:"visitedLevels"`
}

// Status возвращает последний снимок. Безопасен для вызова из любой горутины.
func (g *Game) Status() Status {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.status
}

func (g *Game) refreshStatus() {
	s := Status{
		Seed:    g.cfg.Seed,
		Depth:   g.level.Depth,
		Turn:    g.turns,
		Frame:   g.frame,
		Dead:    g.over,
		Actors:  g.level.Scheduler().Len(),
		Mode:    g.mode,
		Visited: len(g.levels),
	}
	if h, err := g.player.Health(); err == nil {
		s.HP, s.MaxHP = h.HP, h.MaxHP
	}
	if mem, err := g.player.Memory(); err == nil {
		s.Known = mem.Known(g.level)
	}

	g.mu.Lock()
	g.status = s
	g.mu.Unlock()
}
