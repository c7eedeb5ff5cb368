package content

import (
	"errors"
	"fmt"
	"math"

	"github.com/Garsondee/Void-Runner/internal/geom"
)

// ComponentData is a jointed sub-part of a baddie such as a turret barrel.
// Pos and Angle place it in the baddie's local frame at spawn.
type ComponentData struct {
	Polygon geom.Polygon
	Pos     geom.Vector
	Angle   float64
}

// BaddieData is the immutable record shared by every baddie of one kind.
type BaddieData struct {
	Kind        BaddieKind
	Behavior    Behavior
	Polygon     geom.Polygon
	Radius      float64 // bounding radius over body and components
	Health      float64
	Immune      DamageFlags
	Incorporeal bool
	Death       DeathKind
	Shrapnel    ProjectileKind
	Drops       PickupFlags
	Speed       float64
	TurnRate    float64 // radians per second
	Weapon      ProjectileKind
	Cooldown    float64 // seconds between shots
	Range       float64 // sight range for firing and chasing
	Contact     float64 // damage dealt to the ship on touch
	Components  []ComponentData
}

// ProjectileData is the immutable record shared by every projectile of one kind.
type ProjectileData struct {
	Kind          ProjectileKind
	Speed         float64
	Lifetime      float64
	Damage        float64
	Splash        float64 // splash radius; zero for none
	Radius        float64 // collision radius; zero travels as a ray
	TurnRate      float64 // homing turn limit, radians per second
	Flags         ProjectileFlags
	Damages       DamageFlags
	Shrapnel      ProjectileKind
	ShrapnelCount int
	Cooldown      float64 // refire delay when launched by the ship
	Cost          float64 // energy per shot for AmmoEnergy weapons
	Ammo          Ammo
}

// WallData is a shared wall shape.
type WallData struct {
	Kind       WallKind
	Polygon    geom.Polygon
	Radius     float64
	Elasticity float64 // bounce factor applied to the ship's normal velocity
	Impact     float64 // damage per unit of normal speed above the bounce threshold
	BreakOn    DamageFlags
}

// Destructible reports whether any damage can break the wall.
func (w *WallData) Destructible() bool { return w.BreakOn != 0 }

// PickupWeight is one row of the drop table.
type PickupWeight struct {
	Kind   PickupKind
	Weight int
}

// PickupTable is an explicit weighting for random drops. Nothing is the
// weight of dropping nothing; it always takes part in the draw.
type PickupTable struct {
	Nothing int
	Weights []PickupWeight
}

// Weight returns the weight of kind k, or zero if it is not listed.
func (pt PickupTable) Weight(k PickupKind) int {
	for _, w := range pt.Weights {
		if w.Kind == k {
			return w.Weight
		}
	}
	return 0
}

// Table is the full set of content records, keyed by kind.
type Table struct {
	Baddies     map[BaddieKind]*BaddieData
	Projectiles map[ProjectileKind]*ProjectileData
	Walls       map[WallKind]*WallData
	Pickups     PickupTable
}

// Baddie returns the record for k. A missing record is a corrupt table.
func (t *Table) Baddie(k BaddieKind) *BaddieData {
	d, ok := t.Baddies[k]
	if !ok {
		panic(fmt.Sprintf("content: no baddie data for %s", k))
	}
	return d
}

// Projectile returns the record for k.
func (t *Table) Projectile(k ProjectileKind) *ProjectileData {
	d, ok := t.Projectiles[k]
	if !ok {
		panic(fmt.Sprintf("content: no projectile data for %s", k))
	}
	return d
}

// Wall returns the record for k.
func (t *Table) Wall(k WallKind) *WallData {
	d, ok := t.Walls[k]
	if !ok {
		panic(fmt.Sprintf("content: no wall data for %s", k))
	}
	return d
}

// PickupTable returns the drop weighting.
func (t *Table) PickupTable() PickupTable { return t.Pickups }

// Validate checks that every kind has a record, every reference between
// records resolves, and shapes are usable. It also fills derived radii.
func (t *Table) Validate() error {
	var errs []error
	for k := BaddieKind(1); k < numBaddieKinds; k++ {
		d, ok := t.Baddies[k]
		if !ok {
			errs = append(errs, fmt.Errorf("baddie %s: %w", k, ErrUnknownKind))
			continue
		}
		d.Kind = k
		if d.Polygon.Len() < 3 {
			errs = append(errs, fmt.Errorf("baddie %s: polygon needs at least 3 vertices", k))
		}
		if d.Health <= 0 {
			errs = append(errs, fmt.Errorf("baddie %s: health must be positive", k))
		}
		errs = append(errs, t.checkProjectileRef(fmt.Sprintf("baddie %s weapon", k), d.Weapon))
		errs = append(errs, t.checkProjectileRef(fmt.Sprintf("baddie %s shrapnel", k), d.Shrapnel))
		if d.Radius == 0 {
			d.Radius = baddieRadius(d)
		}
	}
	for k := ProjectileKind(1); k < numProjectileKinds; k++ {
		d, ok := t.Projectiles[k]
		if !ok {
			errs = append(errs, fmt.Errorf("projectile %s: %w", k, ErrUnknownKind))
			continue
		}
		d.Kind = k
		if d.Lifetime <= 0 {
			errs = append(errs, fmt.Errorf("projectile %s: lifetime must be positive", k))
		}
		errs = append(errs, t.checkProjectileRef(fmt.Sprintf("projectile %s shrapnel", k), d.Shrapnel))
	}
	for k := WallKind(1); k < numWallKinds; k++ {
		d, ok := t.Walls[k]
		if !ok {
			errs = append(errs, fmt.Errorf("wall %s: %w", k, ErrUnknownKind))
			continue
		}
		d.Kind = k
		if d.Polygon.Len() < 3 {
			errs = append(errs, fmt.Errorf("wall %s: polygon needs at least 3 vertices", k))
		}
		if d.Radius == 0 {
			d.Radius = d.Polygon.BoundingRadius()
		}
	}
	for _, w := range t.Pickups.Weights {
		if w.Kind == PickupNone || w.Kind >= numPickupKinds || w.Weight < 0 {
			errs = append(errs, fmt.Errorf("pickup weight %s=%d: invalid", w.Kind, w.Weight))
		}
	}
	return errors.Join(errs...)
}

func (t *Table) checkProjectileRef(what string, k ProjectileKind) error {
	if k == ProjNone {
		return nil
	}
	if _, ok := t.Projectiles[k]; !ok {
		return fmt.Errorf("%s %s: %w", what, k, ErrUnknownKind)
	}
	return nil
}

func baddieRadius(d *BaddieData) float64 {
	r := d.Polygon.BoundingRadius()
	for _, c := range d.Components {
		r = math.Max(r, c.Pos.Norm()+c.Polygon.BoundingRadius())
	}
	return r
}
