package content

import (
	"fmt"
	"strings"
)

// DamageFlags describe what kind of harm a hit does. Doors, walls and baddie
// immunities are all expressed against this set.
type DamageFlags uint32

const (
	DamageNormal DamageFlags = 1 << iota
	DamageCharged
	DamageFreeze
	DamageRocket
	DamageHyperRocket
	DamageBomb
	DamageMegaBomb
	DamageHeat
)

var damageNames = []string{"normal", "charged", "freeze", "rocket", "hyper_rocket", "bomb", "mega_bomb", "heat"}

// Has reports whether any bit of mask is set.
func (f DamageFlags) Has(mask DamageFlags) bool { return f&mask != 0 }

func (f DamageFlags) String() string { return flagString(damageNames, uint32(f)) }

// ProjectileFlags are special properties of a projectile kind.
type ProjectileFlags uint32

const (
	// ProjHoming steers toward a target acquired at launch.
	ProjHoming ProjectileFlags = 1 << iota
	// ProjPhased passes through walls and doors.
	ProjPhased
	// ProjPiercing survives hitting a baddie.
	ProjPiercing
	// ProjNoHit never collides; it bursts when its lifetime runs out.
	ProjNoHit
)

var projectileFlagNames = []string{"homing", "phased", "piercing", "no_hit"}

func (f ProjectileFlags) Has(mask ProjectileFlags) bool { return f&mask != 0 }

func (f ProjectileFlags) String() string { return flagString(projectileFlagNames, uint32(f)) }

// PickupFlags is the set of pickup kinds a baddie may drop, one bit per
// PickupKind (see PickupKind.Flag).
type PickupFlags uint32

func (f PickupFlags) Has(k PickupKind) bool { return k != PickupNone && f&k.Flag() != 0 }

func (f PickupFlags) String() string { return flagString(pickupNames[1:], uint32(f)) }

func flagString(names []string, bits uint32) string {
	if bits == 0 {
		return "none"
	}
	var parts []string
	for i, n := range names {
		if bits&(1<<i) != 0 {
			parts = append(parts, n)
		}
	}
	return strings.Join(parts, "|")
}

func parseFlagList(names, list []string, what string) (uint32, error) {
	var bits uint32
next:
	for _, s := range list {
		for i, n := range names {
			if n == s {
				bits |= 1 << i
				continue next
			}
		}
		return 0, fmt.Errorf("%s flag %q: %w", what, s, ErrUnknownKind)
	}
	return bits, nil
}

// ParseDamageFlags builds a flag set from names such as "rocket".
func ParseDamageFlags(list []string) (DamageFlags, error) {
	b, err := parseFlagList(damageNames, list, "damage")
	return DamageFlags(b), err
}

// ParseProjectileFlags builds a flag set from names such as "homing".
func ParseProjectileFlags(list []string) (ProjectileFlags, error) {
	b, err := parseFlagList(projectileFlagNames, list, "projectile")
	return ProjectileFlags(b), err
}

// ParsePickupFlags builds a drop set from pickup kind names.
func ParsePickupFlags(list []string) (PickupFlags, error) {
	b, err := parseFlagList(pickupNames[1:], list, "pickup")
	return PickupFlags(b), err
}
