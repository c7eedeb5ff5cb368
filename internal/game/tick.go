package game

import (
	"time"

	"github.com/Garsondee/Void-Runner/internal/content"
	"github.com/Garsondee/Void-Runner/internal/geom"
)

// Step advances the world by dt seconds. One call per frame; it always
// runs to completion.
func (s *Space) Step(dt float64) {
	start := time.Now()
	// 1. CLOCK
	s.Tick++
	s.Time += dt

	switch s.Mode.Kind {
	case ModeNormal:
		s.simTick(dt)
	case ModeGameOver:
		// The wreck keeps burning while the world carries on.
		s.ageTransients(dt)
		s.updateBaddies(dt)
		s.moveProjectiles(dt)
		s.advanceMode(dt)
	default:
		s.ageTransients(dt)
		s.advanceMode(dt)
	}
	s.Metrics.observeTick(time.Since(start), s)
}

// simTick is one tick of normal play. Later phases see the positions and
// removals made by earlier ones.
func (s *Space) simTick(dt float64) {
	// 2. EXPIRE: particles and stale pickups.
	s.ageTransients(dt)

	// 3. BADDIES: behaviors, aiming, firing.
	s.updateBaddies(dt)

	// 4. SHIP: input, movement, contacts, energy, gun.
	s.moveShip(dt)
	s.shipFire(dt)

	// 5. PROJECTILES: flight, hits, splash.
	s.moveProjectiles(dt)

	// 6. CONTACT: baddie touch damage and pickups.
	s.resolveContacts()
	s.collectPickups()

	// 7. DOORS
	s.updateDoors(dt)

	// 8. GRAVITY
	s.applyGravfields(dt)

	// 9. TIMER + CAMERA
	s.advanceTimer(dt)
	s.advanceCamera(dt)
}

// resolveContacts hurts the ship for every harmful baddie touching it.
func (s *Space) resolveContacts() {
	sh := &s.Ship
	if sh.Dead {
		return
	}
	for i := range s.Baddies {
		b := &s.Baddies[i]
		if !b.Live() || b.Data.Contact <= 0 || b.Data.Incorporeal {
			continue
		}
		if !geom.WithinDist(b.Pos, sh.Pos, b.Data.Radius+sh.Radius) {
			continue
		}
		if geom.CircleTouchesPolygonTrans(b.Data.Polygon, b.Transform(), sh.Radius, sh.Pos) {
			s.HurtShip(b.Data.Contact, content.DamageNormal)
		}
	}
}
