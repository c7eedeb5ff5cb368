package game

import (
	"fmt"
	"sort"
	"strings"
)

// DebugReport summarises the world and the last lastTicks of events as
// plain text for pasting into a bug report.
func (s *Space) DebugReport(lastTicks int) string {
	if lastTicks <= 0 {
		lastTicks = 120
	}
	toTick := s.Tick
	fromTick := toTick - lastTicks + 1
	if fromTick < 0 {
		fromTick = 0
	}

	var b strings.Builder
	fmt.Fprintf(&b, "--- Void Runner debug report ---\n")
	fmt.Fprintf(&b, "session=%s room=%d tick_range=[%d..%d] time=%.2fs\n",
		s.SessionID, s.Room, fromTick, toTick, s.Time)
	fmt.Fprintf(&b, "mode=%s/%s progress=%.2f\n\n", s.Mode.Kind, s.Mode.Phase, s.Mode.Progress)

	sh := &s.Ship
	p := s.Player
	b.WriteString("== SHIP ==\n")
	fmt.Fprintf(&b, "pos=(%.1f,%.1f) vel=(%.1f,%.1f) angle=%.2f dead=%t invincible=%.2f\n",
		sh.Pos.X, sh.Pos.Y, sh.Vel.X, sh.Vel.Y, sh.Angle, sh.Dead, sh.Invincible)
	fmt.Fprintf(&b, "shields=%.1f/%.1f energy=%.1f/%.1f rockets=%d/%d bombs=%d/%d gun=%s ordnance=%s\n",
		p.Shields, p.MaxShields, p.Energy, p.MaxEnergy, p.Rockets, p.MaxRockets, p.Bombs, p.MaxBombs,
		p.ActiveGun(), p.Ordnance)
	if ups := p.UpgradeList(); len(ups) > 0 {
		fmt.Fprintf(&b, "upgrades=%s\n", strings.Join(ups, ","))
	}
	fmt.Fprintf(&b, "env: water=%t lava=%t", s.Env.InWater, s.Env.InLava)
	if s.Timer.Active {
		fmt.Fprintf(&b, " timer=%.1fs", s.Timer.Remaining)
	}
	b.WriteString("\n\n")

	b.WriteString("== POOLS ==\n")
	counts := s.PoolCounts()
	names := make([]string, 0, len(counts))
	for n := range counts {
		names = append(names, n)
	}
	sort.Strings(names)
	for _, n := range names {
		fmt.Fprintf(&b, "  %-10s %d\n", n, counts[n])
	}
	b.WriteByte('\n')

	b.WriteString("== BADDIES ==\n")
	found := false
	for i := range s.Baddies {
		bd := &s.Baddies[i]
		if !bd.Live() {
			continue
		}
		found = true
		fmt.Fprintf(&b, "  %-14s %s pos=(%.0f,%.0f) hp=%.0f/%.0f state=%d frozen=%.2f cd=%.2f\n",
			bd.Label(), bd.UID, bd.Pos.X, bd.Pos.Y, bd.Health, bd.Data.Health, bd.State, bd.Frozen, bd.Cooldown)
	}
	if !found {
		b.WriteString("  (none)\n")
	}
	b.WriteByte('\n')

	b.WriteString("== DOORS ==\n")
	for i := range s.Doors {
		d := &s.Doors[i]
		if d.Live() {
			fmt.Fprintf(&b, "  %-8s %-8s to=%d open=%t openness=%.2f hold=%.1f\n",
				d.Label(), d.Kind, d.Dest, d.Open, d.Openness, d.HoldTime)
		}
	}
	b.WriteByte('\n')

	b.WriteString("== EVENTS ==\n")
	events := s.Log.FilterTickRange(fromTick, toTick)
	if len(events) == 0 {
		b.WriteString("(no events in range)\n")
	}
	for _, e := range events {
		b.WriteString(e.String())
		b.WriteByte('\n')
	}
	return b.String()
}
