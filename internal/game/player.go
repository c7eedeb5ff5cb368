package game

import (
	"bufio"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/Garsondee/Void-Runner/internal/content"
)

// ErrBadProgress reports a malformed progress record.
var ErrBadProgress = errors.New("game: bad progress record")

// Upgrade is a permanent item the player collects.
type Upgrade uint8

const (
	UpgradeChargedGun Upgrade = iota
	UpgradeIceGun
	UpgradeRockets
	UpgradeHyperRockets
	UpgradeBombs
	UpgradeMegaBombs
	UpgradeThermalArmor
	UpgradeShieldCell
	UpgradeEnergyCell
	UpgradeRocketRack
	UpgradeBombBay
	numUpgrades
)

var upgradeNames = [numUpgrades]string{
	"charged_gun", "ice_gun", "rockets", "hyper_rockets", "bombs", "mega_bombs",
	"thermal_armor", "shield_cell", "energy_cell", "rocket_rack", "bomb_bay",
}

func (u Upgrade) String() string {
	if u < numUpgrades {
		return upgradeNames[u]
	}
	return fmt.Sprintf("upgrade(%d)", uint8(u))
}

// Preferences are the audio volumes saved with progress.
type Preferences struct {
	MusicVolume float64 `msgpack:"mv"`
	SoundVolume float64 `msgpack:"sv"`
}

// Player is the record that persists across rooms and saves. Upgrades and
// Rooms are bitfields; a set bit i means upgrade (or room) i is held (or
// visited).
type Player struct {
	Upgrades [2]uint64 `msgpack:"u"`
	Rooms    [3]uint64 `msgpack:"r"`
	Flags    uint64    `msgpack:"f"`

	Shields    float64 `msgpack:"sh"`
	MaxShields float64 `msgpack:"msh"`
	Energy     float64 `msgpack:"en"`
	MaxEnergy  float64 `msgpack:"men"`
	Rockets    int     `msgpack:"ro"`
	MaxRockets int     `msgpack:"mro"`
	Bombs      int     `msgpack:"bo"`
	MaxBombs   int     `msgpack:"mbo"`

	Guns     [2]content.ProjectileKind `msgpack:"g"`
	Gun      int                       `msgpack:"gi"`
	Ordnance content.ProjectileKind    `msgpack:"o"`

	Prefs Preferences `msgpack:"p"`
}

// NewPlayer returns a fresh start: pulse gun only, full shields.
func NewPlayer() *Player {
	return &Player{
		Shields:    100,
		MaxShields: 100,
		Energy:     100,
		MaxEnergy:  100,
		Guns:       [2]content.ProjectileKind{content.ProjPulse, content.ProjNone},
		Prefs:      Preferences{MusicVolume: 0.8, SoundVolume: 1},
	}
}

// Has reports whether upgrade u is held.
func (p *Player) Has(u Upgrade) bool { return bitSet(p.Upgrades[:], int(u)) }

// Visited reports whether room has been entered.
func (p *Player) Visited(room int) bool { return bitSet(p.Rooms[:], room) }

// VisitRoom marks room as entered. Rooms past the bitfield are ignored.
func (p *Player) VisitRoom(room int) { setBit(p.Rooms[:], room) }

// HasFlag reports story flag i.
func (p *Player) HasFlag(i int) bool { return i >= 0 && i < 64 && p.Flags&(1<<uint(i)) != 0 }

// SetFlag raises story flag i.
func (p *Player) SetFlag(i int) {
	if i >= 0 && i < 64 {
		p.Flags |= 1 << uint(i)
	}
}

// Grant adds an upgrade and applies its immediate effect.
func (p *Player) Grant(u Upgrade) {
	if u >= numUpgrades {
		panic(fmt.Sprintf("game: grant of unknown %s", u))
	}
	if p.Has(u) {
		return
	}
	setBit(p.Upgrades[:], int(u))
	switch u {
	case UpgradeChargedGun:
		p.Guns[0] = content.ProjCharged
	case UpgradeIceGun:
		p.Guns[1] = content.ProjIce
	case UpgradeRockets:
		p.MaxRockets += 10
		p.Rockets = p.MaxRockets
		if p.Ordnance == content.ProjNone {
			p.Ordnance = content.ProjRocket
		}
	case UpgradeHyperRockets:
		if p.Ordnance == content.ProjRocket || p.Ordnance == content.ProjNone {
			p.Ordnance = content.ProjHyperRocket
		}
	case UpgradeBombs:
		p.MaxBombs += 5
		p.Bombs = p.MaxBombs
		if p.Ordnance == content.ProjNone {
			p.Ordnance = content.ProjBomb
		}
	case UpgradeMegaBombs:
		if p.Ordnance == content.ProjBomb {
			p.Ordnance = content.ProjMegaBomb
		}
	case UpgradeShieldCell:
		p.MaxShields += 25
		p.Shields = p.MaxShields
	case UpgradeEnergyCell:
		p.MaxEnergy += 25
	case UpgradeRocketRack:
		p.MaxRockets += 5
	case UpgradeBombBay:
		p.MaxBombs += 3
	}
}

// ActiveGun returns the selected gun, falling back to the primary slot.
func (p *Player) ActiveGun() content.ProjectileKind {
	if p.Gun >= 0 && p.Gun < len(p.Guns) && p.Guns[p.Gun] != content.ProjNone {
		return p.Guns[p.Gun]
	}
	return p.Guns[0]
}

// CycleGun selects the next held gun.
func (p *Player) CycleGun() {
	for i := 1; i <= len(p.Guns); i++ {
		next := (p.Gun + i) % len(p.Guns)
		if p.Guns[next] != content.ProjNone {
			p.Gun = next
			return
		}
	}
}

// CanUse reports whether a pickup of kind k would do the player any good.
func (p *Player) CanUse(k content.PickupKind) bool {
	switch k {
	case content.PickupShieldsSmall, content.PickupShieldsMedium, content.PickupShieldsLarge:
		return p.Shields < p.MaxShields
	case content.PickupRockets:
		return p.Has(UpgradeRockets) && p.Rockets < p.MaxRockets
	case content.PickupBombs:
		return p.Has(UpgradeBombs) && p.Bombs < p.MaxBombs
	case content.PickupNone:
		return false
	}
	panic(fmt.Sprintf("game: unhandled pickup %s", k))
}

// Collect applies a pickup.
func (p *Player) Collect(k content.PickupKind) {
	switch k {
	case content.PickupShieldsSmall:
		p.Shields = math.Min(p.MaxShields, p.Shields+10)
	case content.PickupShieldsMedium:
		p.Shields = math.Min(p.MaxShields, p.Shields+25)
	case content.PickupShieldsLarge:
		p.Shields = math.Min(p.MaxShields, p.Shields+50)
	case content.PickupRockets:
		p.Rockets = min(p.MaxRockets, p.Rockets+3)
	case content.PickupBombs:
		p.Bombs = min(p.MaxBombs, p.Bombs+2)
	default:
		panic(fmt.Sprintf("game: unhandled pickup %s", k))
	}
}

// spendAmmo takes the cost of one shot of d, reporting false when the
// player cannot afford it.
func (p *Player) spendAmmo(d *content.ProjectileData) bool {
	switch d.Ammo {
	case content.AmmoEnergy:
		if p.Energy < d.Cost {
			return false
		}
		p.Energy -= d.Cost
	case content.AmmoRockets:
		if p.Rockets <= 0 {
			return false
		}
		p.Rockets--
	case content.AmmoBombs:
		if p.Bombs <= 0 {
			return false
		}
		p.Bombs--
	default:
		panic(fmt.Sprintf("game: unhandled ammo %s", d.Ammo))
	}
	return true
}

func bitSet(words []uint64, i int) bool {
	if i < 0 || i >= len(words)*64 {
		return false
	}
	return words[i/64]&(1<<uint(i%64)) != 0
}

func setBit(words []uint64, i int) {
	if i < 0 || i >= len(words)*64 {
		return
	}
	words[i/64] |= 1 << uint(i%64)
}

// --- Progress text codec ---

// MarshalText writes the progress as space-separated key=value pairs.
func (p *Player) MarshalText() ([]byte, error) {
	var sb strings.Builder
	fmt.Fprintf(&sb, "upgrades=%x,%x", p.Upgrades[0], p.Upgrades[1])
	fmt.Fprintf(&sb, " rooms=%x,%x,%x", p.Rooms[0], p.Rooms[1], p.Rooms[2])
	fmt.Fprintf(&sb, " flags=%x", p.Flags)
	fmt.Fprintf(&sb, " shields=%s/%s", ftoa(p.Shields), ftoa(p.MaxShields))
	fmt.Fprintf(&sb, " energy=%s/%s", ftoa(p.Energy), ftoa(p.MaxEnergy))
	fmt.Fprintf(&sb, " rockets=%d/%d bombs=%d/%d", p.Rockets, p.MaxRockets, p.Bombs, p.MaxBombs)
	fmt.Fprintf(&sb, " guns=%s,%s gun=%d ordnance=%s", p.Guns[0], p.Guns[1], p.Gun, p.Ordnance)
	fmt.Fprintf(&sb, "\nmv=%s sv=%s\n", ftoa(p.Prefs.MusicVolume), ftoa(p.Prefs.SoundVolume))
	return []byte(sb.String()), nil
}

// UnmarshalText reads the format written by MarshalText. Unknown keys are
// rejected; missing keys keep their current values.
func (p *Player) UnmarshalText(data []byte) error {
	sc := bufio.NewScanner(strings.NewReader(string(data)))
	for sc.Scan() {
		for _, field := range strings.Fields(sc.Text()) {
			key, val, ok := strings.Cut(field, "=")
			if !ok {
				return fmt.Errorf("%w: %q has no '='", ErrBadProgress, field)
			}
			if err := p.setField(key, val); err != nil {
				return fmt.Errorf("%w: %s: %v", ErrBadProgress, key, err)
			}
		}
	}
	return sc.Err()
}

func (p *Player) setField(key, val string) error {
	switch key {
	case "upgrades":
		return parseWords(val, p.Upgrades[:])
	case "rooms":
		return parseWords(val, p.Rooms[:])
	case "flags":
		n, err := strconv.ParseUint(val, 16, 64)
		if err != nil {
			return err
		}
		p.Flags = n
	case "shields":
		return parsePair(val, &p.Shields, &p.MaxShields)
	case "energy":
		return parsePair(val, &p.Energy, &p.MaxEnergy)
	case "rockets":
		return parseIntPair(val, &p.Rockets, &p.MaxRockets)
	case "bombs":
		return parseIntPair(val, &p.Bombs, &p.MaxBombs)
	case "guns":
		a, b, ok := strings.Cut(val, ",")
		if !ok {
			return errors.New("want two guns")
		}
		g0, err := content.ParseProjectileKind(a)
		if err != nil {
			return err
		}
		g1, err := content.ParseProjectileKind(b)
		if err != nil {
			return err
		}
		p.Guns = [2]content.ProjectileKind{g0, g1}
	case "gun":
		n, err := strconv.Atoi(val)
		if err != nil || n < 0 || n >= len(p.Guns) {
			return fmt.Errorf("gun index %q", val)
		}
		p.Gun = n
	case "ordnance":
		k, err := content.ParseProjectileKind(val)
		if err != nil {
			return err
		}
		p.Ordnance = k
	case "mv":
		return parseVolume(val, &p.Prefs.MusicVolume)
	case "sv":
		return parseVolume(val, &p.Prefs.SoundVolume)
	default:
		return errors.New("unknown key")
	}
	return nil
}

// parseWords fills words from comma-separated hex.
func parseWords(val string, words []uint64) error {
	parts := strings.Split(val, ",")
	if len(parts) != len(words) {
		return fmt.Errorf("want %d words, got %d", len(words), len(parts))
	}
	for i, part := range parts {
		n, err := strconv.ParseUint(part, 16, 64)
		if err != nil {
			return err
		}
		words[i] = n
	}
	return nil
}

func parsePair(val string, a, b *float64) error {
	x, y, ok := strings.Cut(val, "/")
	if !ok {
		return errors.New("want a/b")
	}
	fa, err := strconv.ParseFloat(x, 64)
	if err != nil {
		return err
	}
	fb, err := strconv.ParseFloat(y, 64)
	if err != nil {
		return err
	}
	*a, *b = fa, fb
	return nil
}

func parseIntPair(val string, a, b *int) error {
	x, y, ok := strings.Cut(val, "/")
	if !ok {
		return errors.New("want a/b")
	}
	ia, err := strconv.Atoi(x)
	if err != nil {
		return err
	}
	ib, err := strconv.Atoi(y)
	if err != nil {
		return err
	}
	*a, *b = ia, ib
	return nil
}

func parseVolume(val string, dst *float64) error {
	f, err := strconv.ParseFloat(val, 64)
	if err != nil {
		return err
	}
	if f < 0 || f > 1 {
		return fmt.Errorf("volume %g out of [0,1]", f)
	}
	*dst = f
	return nil
}

func ftoa(f float64) string { return strconv.FormatFloat(f, 'g', -1, 64) }

// UpgradeList names the held upgrades in order.
func (p *Player) UpgradeList() []string {
	var out []string
	for u := Upgrade(0); u < numUpgrades; u++ {
		if p.Has(u) {
			out = append(out, u.String())
		}
	}
	return out
}

// --- Binary form ---

// EncodeProgress packs the player record with msgpack.
func EncodeProgress(p *Player) ([]byte, error) {
	b, err := msgpack.Marshal(p)
	if err != nil {
		return nil, fmt.Errorf("game: encode progress: %w", err)
	}
	return b, nil
}

// DecodeProgress unpacks a record written by EncodeProgress.
func DecodeProgress(b []byte) (*Player, error) {
	p := &Player{}
	if err := msgpack.Unmarshal(b, p); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadProgress, err)
	}
	return p, nil
}
