package content

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/Garsondee/Void-Runner/internal/geom"
)

// The on-disk form names kinds and flags by string. Any record present in a
// file replaces the built-in record of the same kind.

type fileTable struct {
	Baddies     map[string]fileBaddie     `yaml:"baddies"`
	Projectiles map[string]fileProjectile `yaml:"projectiles"`
	Walls       map[string]fileWall       `yaml:"walls"`
	Pickups     *filePickups              `yaml:"pickups"`
}

type fileComponent struct {
	Polygon [][2]float64 `yaml:"polygon"`
	Pos     [2]float64   `yaml:"pos"`
	Angle   float64      `yaml:"angle"`
}

type fileBaddie struct {
	Behavior    string          `yaml:"behavior"`
	Polygon     [][2]float64    `yaml:"polygon"`
	Radius      float64         `yaml:"radius"`
	Health      float64         `yaml:"health"`
	Immune      []string        `yaml:"immune"`
	Incorporeal bool            `yaml:"incorporeal"`
	Death       string          `yaml:"death"`
	Shrapnel    string          `yaml:"shrapnel"`
	Drops       []string        `yaml:"drops"`
	Speed       float64         `yaml:"speed"`
	TurnRate    float64         `yaml:"turn_rate"`
	Weapon      string          `yaml:"weapon"`
	Cooldown    float64         `yaml:"cooldown"`
	Range       float64         `yaml:"range"`
	Contact     float64         `yaml:"contact_damage"`
	Components  []fileComponent `yaml:"components"`
}

type fileProjectile struct {
	Speed         float64  `yaml:"speed"`
	Lifetime      float64  `yaml:"lifetime"`
	Damage        float64  `yaml:"damage"`
	Splash        float64  `yaml:"splash"`
	Radius        float64  `yaml:"radius"`
	TurnRate      float64  `yaml:"turn_rate"`
	Flags         []string `yaml:"flags"`
	Damages       []string `yaml:"damages"`
	Shrapnel      string   `yaml:"shrapnel"`
	ShrapnelCount int      `yaml:"shrapnel_count"`
	Cooldown      float64  `yaml:"cooldown"`
	Cost          float64  `yaml:"cost"`
	Ammo          string   `yaml:"ammo"`
}

type fileWall struct {
	Polygon    [][2]float64 `yaml:"polygon"`
	Elasticity float64      `yaml:"elasticity"`
	Impact     float64      `yaml:"impact"`
	BreakOn    []string     `yaml:"break_on"`
}

type filePickups struct {
	Nothing int            `yaml:"nothing"`
	Weights map[string]int `yaml:"weights"`
}

// Load reads a YAML content file and overlays it on the built-in table.
func Load(path string) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("content: read %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes YAML content and overlays it on the built-in table.
func Parse(data []byte) (*Table, error) {
	var ft fileTable
	if err := yaml.Unmarshal(data, &ft); err != nil {
		return nil, fmt.Errorf("content: decode: %w", err)
	}
	t := Default()
	for name, fb := range ft.Baddies {
		k, err := ParseBaddieKind(name)
		if err == nil && k == BaddieNone {
			err = fmt.Errorf("%q is not a table kind: %w", name, ErrUnknownKind)
		}
		if err != nil {
			return nil, err
		}
		d, err := fb.toData()
		if err != nil {
			return nil, fmt.Errorf("baddie %s: %w", name, err)
		}
		t.Baddies[k] = d
	}
	for name, fp := range ft.Projectiles {
		k, err := ParseProjectileKind(name)
		if err == nil && k == ProjNone {
			err = fmt.Errorf("%q is not a table kind: %w", name, ErrUnknownKind)
		}
		if err != nil {
			return nil, err
		}
		d, err := fp.toData()
		if err != nil {
			return nil, fmt.Errorf("projectile %s: %w", name, err)
		}
		t.Projectiles[k] = d
	}
	for name, fw := range ft.Walls {
		k, err := ParseWallKind(name)
		if err == nil && k == WallNone {
			err = fmt.Errorf("%q is not a table kind: %w", name, ErrUnknownKind)
		}
		if err != nil {
			return nil, err
		}
		breakOn, err := ParseDamageFlags(fw.BreakOn)
		if err != nil {
			return nil, fmt.Errorf("wall %s: %w", name, err)
		}
		t.Walls[k] = &WallData{
			Polygon:    polygonOf(fw.Polygon),
			Elasticity: fw.Elasticity,
			Impact:     fw.Impact,
			BreakOn:    breakOn,
		}
	}
	if ft.Pickups != nil {
		pt := PickupTable{Nothing: ft.Pickups.Nothing}
		// Keep table order stable regardless of map iteration.
		for _, k := range PickupKinds() {
			if w, ok := ft.Pickups.Weights[k.String()]; ok {
				pt.Weights = append(pt.Weights, PickupWeight{k, w})
			}
		}
		for name := range ft.Pickups.Weights {
			if _, err := ParsePickupKind(name); err != nil {
				return nil, err
			}
		}
		t.Pickups = pt
	}
	if err := t.Validate(); err != nil {
		return nil, fmt.Errorf("content: %w", err)
	}
	return t, nil
}

func (fb fileBaddie) toData() (*BaddieData, error) {
	d := &BaddieData{
		Polygon:     polygonOf(fb.Polygon),
		Radius:      fb.Radius,
		Health:      fb.Health,
		Incorporeal: fb.Incorporeal,
		Speed:       fb.Speed,
		TurnRate:    fb.TurnRate,
		Cooldown:    fb.Cooldown,
		Range:       fb.Range,
		Contact:     fb.Contact,
	}
	var err error
	if d.Behavior, err = ParseBehavior(fb.Behavior); err != nil {
		return nil, err
	}
	if d.Immune, err = ParseDamageFlags(fb.Immune); err != nil {
		return nil, err
	}
	if d.Drops, err = ParsePickupFlags(fb.Drops); err != nil {
		return nil, err
	}
	if fb.Death != "" {
		if d.Death, err = ParseDeathKind(fb.Death); err != nil {
			return nil, err
		}
	}
	if d.Weapon, err = optionalProjectile(fb.Weapon); err != nil {
		return nil, err
	}
	if d.Shrapnel, err = optionalProjectile(fb.Shrapnel); err != nil {
		return nil, err
	}
	for _, fc := range fb.Components {
		d.Components = append(d.Components, ComponentData{
			Polygon: polygonOf(fc.Polygon),
			Pos:     geom.V(fc.Pos[0], fc.Pos[1]),
			Angle:   fc.Angle,
		})
	}
	return d, nil
}

func (fp fileProjectile) toData() (*ProjectileData, error) {
	d := &ProjectileData{
		Speed:         fp.Speed,
		Lifetime:      fp.Lifetime,
		Damage:        fp.Damage,
		Splash:        fp.Splash,
		Radius:        fp.Radius,
		TurnRate:      fp.TurnRate,
		ShrapnelCount: fp.ShrapnelCount,
		Cooldown:      fp.Cooldown,
		Cost:          fp.Cost,
	}
	var err error
	if d.Flags, err = ParseProjectileFlags(fp.Flags); err != nil {
		return nil, err
	}
	if d.Damages, err = ParseDamageFlags(fp.Damages); err != nil {
		return nil, err
	}
	if d.Shrapnel, err = optionalProjectile(fp.Shrapnel); err != nil {
		return nil, err
	}
	if fp.Ammo != "" {
		if d.Ammo, err = ParseAmmo(fp.Ammo); err != nil {
			return nil, err
		}
	}
	return d, nil
}

func optionalProjectile(name string) (ProjectileKind, error) {
	if name == "" {
		return ProjNone, nil
	}
	return ParseProjectileKind(name)
}

func polygonOf(pts [][2]float64) geom.Polygon {
	vs := make([]geom.Vector, len(pts))
	for i, p := range pts {
		vs[i] = geom.V(p[0], p[1])
	}
	return geom.Poly(vs...)
}
