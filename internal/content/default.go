package content

import (
	"math"

	"github.com/Garsondee/Void-Runner/internal/geom"
)

// Rect returns a w×h rectangle centred on the origin, wound CCW.
func Rect(w, h float64) geom.Polygon {
	return geom.Poly(
		geom.V(-w/2, -h/2), geom.V(w/2, -h/2),
		geom.V(w/2, h/2), geom.V(-w/2, h/2),
	)
}

// RectAt returns a rectangle spanning [x0,x1]×[y0,y1], wound CCW.
func RectAt(x0, y0, x1, y1 float64) geom.Polygon {
	return geom.Poly(geom.V(x0, y0), geom.V(x1, y0), geom.V(x1, y1), geom.V(x0, y1))
}

// Regular returns an n-gon of circumradius r with its first vertex at phase.
func Regular(n int, r, phase float64) geom.Polygon {
	vs := make([]geom.Vector, n)
	for i := range vs {
		vs[i] = geom.Polar(r, phase+2*math.Pi*float64(i)/float64(n))
	}
	return geom.Poly(vs...)
}

var (
	allBeams  = DamageCharged | DamageRocket | DamageHyperRocket | DamageBomb | DamageMegaBomb
	explosive = DamageRocket | DamageHyperRocket | DamageBomb | DamageMegaBomb
	bombs     = DamageBomb | DamageMegaBomb
)

// Default returns the built-in content table. Each call builds a fresh copy.
func Default() *Table {
	t := &Table{
		Baddies:     defaultBaddies(),
		Projectiles: defaultProjectiles(),
		Walls:       defaultWalls(),
		Pickups: PickupTable{
			Nothing: 6,
			Weights: []PickupWeight{
				{PickupShieldsSmall, 6},
				{PickupShieldsMedium, 3},
				{PickupShieldsLarge, 1},
				{PickupRockets, 4},
				{PickupBombs, 2},
			},
		},
	}
	if err := t.Validate(); err != nil {
		panic("content: default table invalid: " + err.Error())
	}
	return t
}

func defaultBaddies() map[BaddieKind]*BaddieData {
	barrel := RectAt(0, -3, 24, 3)
	return map[BaddieKind]*BaddieData{
		BaddieTurret: {
			Behavior: BehaviorTurret, Polygon: Regular(8, 16, math.Pi/8),
			Health: 30, Weapon: ProjPellet, Cooldown: 1.2, Range: 500, TurnRate: 2,
			Drops:      PickupShieldsSmall.Flag() | PickupRockets.Flag(),
			Components: []ComponentData{{Polygon: barrel}},
		},
		BaddieTwinTurret: {
			Behavior: BehaviorTurret, Polygon: Regular(8, 20, math.Pi/8),
			Health: 60, Immune: DamageFreeze, Weapon: ProjSeeker, Cooldown: 2.5, Range: 600, TurnRate: 1.5,
			Death: DeathShrapnel, Shrapnel: ProjShrapnel,
			Drops: PickupShieldsMedium.Flag() | PickupBombs.Flag(),
			Components: []ComponentData{
				{Polygon: barrel, Pos: geom.V(6, -7)},
				{Polygon: barrel, Pos: geom.V(6, 7)},
			},
		},
		BaddieZipper: {
			Behavior: BehaviorZipper,
			Polygon:  geom.Poly(geom.V(14, 0), geom.V(0, 8), geom.V(-14, 0), geom.V(0, -8)),
			Health:   20, Speed: 220, Contact: 10,
			Drops: PickupShieldsSmall.Flag(),
		},
		BaddieChaser: {
			Behavior: BehaviorChaser,
			Polygon:  geom.Poly(geom.V(16, 0), geom.V(-10, 10), geom.V(-4, 0), geom.V(-10, -10)),
			Health:   25, Speed: 160, TurnRate: 3, Range: 600, Contact: 15,
			Drops: PickupShieldsSmall.Flag() | PickupRockets.Flag(),
		},
		BaddieWanderer: {
			Behavior: BehaviorWanderer, Polygon: Regular(6, 14, 0),
			Health: 20, Speed: 80, TurnRate: 1.5, Weapon: ProjPellet, Cooldown: 2, Range: 350,
			Drops: PickupShieldsSmall.Flag(),
		},
		BaddieOrbiter: {
			Behavior: BehaviorOrbiter, Polygon: Rect(20, 20),
			Health: 35, Speed: 120, Contact: 20,
			Drops: PickupShieldsMedium.Flag(),
		},
		BaddieHauler: {
			Behavior: BehaviorHauler, Polygon: Rect(60, 30),
			Health: 120, Speed: 40, TurnRate: 0.8, Immune: DamageFreeze, Contact: 25,
			Death: DeathShrapnel, Shrapnel: ProjShrapnel,
			Drops: PickupShieldsLarge.Flag() | PickupBombs.Flag(),
		},
		BaddieCrate: {
			Behavior: BehaviorBox, Polygon: Rect(24, 24), Health: 10,
			Drops: PickupShieldsSmall.Flag() | PickupShieldsMedium.Flag() | PickupRockets.Flag() | PickupBombs.Flag(),
		},
		BaddieWisp: {
			Behavior: BehaviorWanderer, Polygon: Regular(5, 8, 0), Incorporeal: true,
			Health: 1, Speed: 60, TurnRate: 2,
		},
	}
}

func defaultProjectiles() map[ProjectileKind]*ProjectileData {
	return map[ProjectileKind]*ProjectileData{
		ProjPulse:       {Speed: 700, Lifetime: 0.8, Damage: 10, Damages: DamageNormal, Cooldown: 0.15, Cost: 2},
		ProjCharged:     {Speed: 900, Lifetime: 0.7, Damage: 30, Flags: ProjPiercing, Damages: DamageCharged, Cooldown: 0.5, Cost: 12},
		ProjIce:         {Speed: 500, Lifetime: 0.8, Damage: 4, Damages: DamageFreeze, Cooldown: 0.3, Cost: 6},
		ProjRocket:      {Speed: 450, Lifetime: 2, Damage: 40, Splash: 40, Radius: 3, Damages: DamageRocket, Cooldown: 0.6, Ammo: AmmoRockets},
		ProjHyperRocket: {Speed: 500, Lifetime: 2.5, Damage: 50, Splash: 50, Radius: 3, TurnRate: 4, Flags: ProjHoming, Damages: DamageHyperRocket, Cooldown: 0.8, Ammo: AmmoRockets},
		ProjBomb:        {Speed: 60, Lifetime: 1.5, Damage: 60, Splash: 90, Flags: ProjNoHit, Damages: DamageBomb, Cooldown: 0.8, Ammo: AmmoBombs},
		ProjMegaBomb:    {Speed: 40, Lifetime: 2, Damage: 120, Splash: 160, Flags: ProjNoHit, Damages: DamageMegaBomb, Shrapnel: ProjShrapnel, ShrapnelCount: 12, Cooldown: 1.5, Ammo: AmmoBombs},
		ProjPellet:      {Speed: 300, Lifetime: 2, Damage: 8, Damages: DamageNormal},
		ProjSeeker:      {Speed: 220, Lifetime: 3, Damage: 12, Radius: 3, TurnRate: 2, Flags: ProjHoming, Damages: DamageNormal},
		ProjFlame:       {Speed: 200, Lifetime: 0.9, Damage: 5, Flags: ProjPhased, Damages: DamageHeat},
		ProjShrapnel:    {Speed: 400, Lifetime: 0.4, Damage: 6, Damages: DamageNormal},
	}
}

func defaultWalls() map[WallKind]*WallData {
	return map[WallKind]*WallData{
		WallBlock:    {Polygon: Rect(40, 40), Elasticity: 0.5, Impact: 0.2},
		WallSlab:     {Polygon: Rect(160, 20), Elasticity: 0.5, Impact: 0.2},
		WallLongSlab: {Polygon: Rect(400, 20), Elasticity: 0.5, Impact: 0.2},
		WallPillar:   {Polygon: Regular(8, 30, math.Pi/8), Elasticity: 0.5, Impact: 0.2},
		WallBumper:   {Polygon: Regular(8, 20, math.Pi/8), Elasticity: 1.4},
		WallCracked:  {Polygon: Rect(40, 40), Elasticity: 0.4, Impact: 0.2, BreakOn: allBeams},
		WallArmored:  {Polygon: Rect(40, 40), Elasticity: 0.5, Impact: 0.3, BreakOn: explosive},
		WallVault:    {Polygon: Rect(60, 60), Elasticity: 0.5, Impact: 0.3, BreakOn: bombs},
	}
}
