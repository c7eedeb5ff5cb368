// Package content holds the immutable per-kind data tables the simulation
// reads: baddie stats and geometry, projectile stats, wall shapes and pickup
// weights. Tables are built once at startup and never mutated afterwards.
package content

import (
	"errors"
	"fmt"
)

// ErrUnknownKind is returned when a name or kind has no table entry.
var ErrUnknownKind = errors.New("content: unknown kind")

// BaddieKind selects a BaddieData record. Zero means the slot is absent.
type BaddieKind uint8

const (
	BaddieNone BaddieKind = iota
	BaddieTurret
	BaddieTwinTurret
	BaddieZipper
	BaddieChaser
	BaddieWanderer
	BaddieOrbiter
	BaddieHauler
	BaddieCrate
	BaddieWisp
	numBaddieKinds
)

var baddieNames = [...]string{"none", "turret", "twin_turret", "zipper", "chaser", "wanderer", "orbiter", "hauler", "crate", "wisp"}

func (k BaddieKind) String() string { return nameOf(baddieNames[:], k) }

// ProjectileKind selects a ProjectileData record. Zero means absent.
type ProjectileKind uint8

const (
	ProjNone ProjectileKind = iota
	ProjPulse
	ProjCharged
	ProjIce
	ProjRocket
	ProjHyperRocket
	ProjBomb
	ProjMegaBomb
	ProjPellet
	ProjSeeker
	ProjFlame
	ProjShrapnel
	numProjectileKinds
)

var projectileNames = [...]string{"none", "pulse", "charged", "ice", "rocket", "hyper_rocket", "bomb", "mega_bomb", "pellet", "seeker", "flame", "shrapnel"}

func (k ProjectileKind) String() string { return nameOf(projectileNames[:], k) }

// WallKind selects a WallData record. Zero means absent.
type WallKind uint8

const (
	WallNone WallKind = iota
	WallBlock
	WallSlab
	WallLongSlab
	WallPillar
	WallBumper
	WallCracked
	WallArmored
	WallVault
	numWallKinds
)

var wallNames = [...]string{"none", "block", "slab", "long_slab", "pillar", "bumper", "cracked", "armored", "vault"}

func (k WallKind) String() string { return nameOf(wallNames[:], k) }

// DoorKind decides which damage opens a door.
type DoorKind uint8

const (
	DoorNone DoorKind = iota
	DoorNormal
	DoorLocked
	DoorRocket
	DoorBomb
	DoorPassage
	numDoorKinds
)

var doorNames = [...]string{"none", "normal", "locked", "rocket", "bomb", "passage"}

func (k DoorKind) String() string { return nameOf(doorNames[:], k) }

// Opens reports whether damage carrying flags opens a door of kind k.
// Passage doors are always open and locked doors never open to damage.
func (k DoorKind) Opens(flags DamageFlags) bool {
	switch k {
	case DoorNormal:
		return flags != 0
	case DoorLocked, DoorPassage:
		return false
	case DoorRocket:
		return flags.Has(DamageRocket | DamageHyperRocket)
	case DoorBomb:
		return flags.Has(DamageBomb | DamageMegaBomb)
	}
	panic(fmt.Sprintf("content: door kind %d has no opening rule", k))
}

// GravKind selects the shape and effect of a gravity field.
type GravKind uint8

const (
	GravNone GravKind = iota
	GravTrapPull
	GravSectorPull
	GravSectorSpin
	GravWater
	GravLava
	numGravKinds
)

var gravNames = [...]string{"none", "trap_pull", "sector_pull", "sector_spin", "water", "lava"}

func (k GravKind) String() string { return nameOf(gravNames[:], k) }

// PickupKind is what a pickup restores. Zero means absent.
type PickupKind uint8

const (
	PickupNone PickupKind = iota
	PickupShieldsSmall
	PickupShieldsMedium
	PickupShieldsLarge
	PickupRockets
	PickupBombs
	numPickupKinds
)

var pickupNames = [...]string{"none", "shields_small", "shields_medium", "shields_large", "rockets", "bombs"}

func (k PickupKind) String() string { return nameOf(pickupNames[:], k) }

// Flag returns the single-bit drop flag for k.
func (k PickupKind) Flag() PickupFlags {
	if k == PickupNone {
		return 0
	}
	return 1 << (k - 1)
}

// PickupKinds lists every real pickup kind in table order.
func PickupKinds() []PickupKind {
	out := make([]PickupKind, 0, numPickupKinds-1)
	for k := PickupShieldsSmall; k < numPickupKinds; k++ {
		out = append(out, k)
	}
	return out
}

// Behavior is the closed set of baddie steering programs.
type Behavior uint8

const (
	BehaviorNone Behavior = iota
	BehaviorTurret
	BehaviorZipper
	BehaviorChaser
	BehaviorWanderer
	BehaviorOrbiter
	BehaviorHauler
	BehaviorBox
	numBehaviors
)

var behaviorNames = [...]string{"none", "turret", "zipper", "chaser", "wanderer", "orbiter", "hauler", "box"}

func (b Behavior) String() string { return nameOf(behaviorNames[:], b) }

// Valid reports whether b names a real behavior.
func (b Behavior) Valid() bool { return b > BehaviorNone && b < numBehaviors }

// DeathKind is what a baddie leaves behind.
type DeathKind uint8

const (
	DeathBoom DeathKind = iota
	DeathShrapnel
	numDeathKinds
)

var deathNames = [...]string{"boom", "shrapnel"}

func (d DeathKind) String() string { return nameOf(deathNames[:], d) }

// Ammo is the player resource a weapon consumes.
type Ammo uint8

const (
	AmmoEnergy Ammo = iota
	AmmoRockets
	AmmoBombs
	numAmmo
)

var ammoNames = [...]string{"energy", "rockets", "bombs"}

func (a Ammo) String() string { return nameOf(ammoNames[:], a) }

// --- Name tables ---

func nameOf[K ~uint8](names []string, k K) string {
	if int(k) < len(names) {
		return names[k]
	}
	return fmt.Sprintf("kind(%d)", k)
}

func parseName[K ~uint8](names []string, s, what string) (K, error) {
	for i, n := range names {
		if n == s {
			return K(i), nil
		}
	}
	return 0, fmt.Errorf("%s %q: %w", what, s, ErrUnknownKind)
}

// ParseBaddieKind resolves a baddie kind by name.
func ParseBaddieKind(s string) (BaddieKind, error) {
	return parseName[BaddieKind](baddieNames[:], s, "baddie")
}

// ParseProjectileKind resolves a projectile kind by name.
func ParseProjectileKind(s string) (ProjectileKind, error) {
	return parseName[ProjectileKind](projectileNames[:], s, "projectile")
}

// ParseWallKind resolves a wall kind by name.
func ParseWallKind(s string) (WallKind, error) {
	return parseName[WallKind](wallNames[:], s, "wall")
}

// ParseDoorKind resolves a door kind by name.
func ParseDoorKind(s string) (DoorKind, error) {
	return parseName[DoorKind](doorNames[:], s, "door")
}

// ParseGravKind resolves a gravity field kind by name.
func ParseGravKind(s string) (GravKind, error) {
	return parseName[GravKind](gravNames[:], s, "gravfield")
}

// ParsePickupKind resolves a pickup kind by name.
func ParsePickupKind(s string) (PickupKind, error) {
	return parseName[PickupKind](pickupNames[:], s, "pickup")
}

// ParseBehavior resolves a behavior by name.
func ParseBehavior(s string) (Behavior, error) {
	return parseName[Behavior](behaviorNames[:], s, "behavior")
}

// ParseDeathKind resolves a death kind by name.
func ParseDeathKind(s string) (DeathKind, error) {
	return parseName[DeathKind](deathNames[:], s, "death")
}

// ParseAmmo resolves an ammo kind by name.
func ParseAmmo(s string) (Ammo, error) {
	return parseName[Ammo](ammoNames[:], s, "ammo")
}
