package game

import (
	"errors"
	"fmt"

	"github.com/Garsondee/Void-Runner/internal/content"
)

// ErrNoBehavior is returned when a baddie kind has no steering program.
var ErrNoBehavior = errors.New("game: baddie kind has no behavior")

// StatsProvider is the read-only lookup of per-kind content. It is injected
// once at construction; *content.Table satisfies it.
type StatsProvider interface {
	Baddie(content.BaddieKind) *content.BaddieData
	Projectile(content.ProjectileKind) *content.ProjectileData
	Wall(content.WallKind) *content.WallData
	PickupTable() content.PickupTable
}

// baddieKinds lists every kind a room may spawn.
var baddieKinds = []content.BaddieKind{
	content.BaddieTurret, content.BaddieTwinTurret, content.BaddieZipper,
	content.BaddieChaser, content.BaddieWanderer, content.BaddieOrbiter,
	content.BaddieHauler, content.BaddieCrate, content.BaddieWisp,
}

// checkStats resolves every baddie kind up front so a missing behavior or
// shape fails at construction rather than mid-tick.
func checkStats(stats StatsProvider) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("game: stats table: %v", r)
		}
	}()
	var errs []error
	for _, k := range baddieKinds {
		d := stats.Baddie(k)
		if !d.Behavior.Valid() {
			errs = append(errs, fmt.Errorf("%s: %w", k, ErrNoBehavior))
		}
		if d.Polygon.Len() < 3 {
			errs = append(errs, fmt.Errorf("game: %s has no polygon", k))
		}
		if d.Weapon != content.ProjNone {
			stats.Projectile(d.Weapon)
		}
	}
	return errors.Join(errs...)
}
