package pet

import "math"

// integrate applies one physics step: gravity while airborne, velocity into
// position, then ground, wall and ceiling collisions with damped bounces.
// Behaviors only ever set velocity; position belongs to this function (user
// drags excepted).
func (a *Agent) integrate() {
	if !a.Grounded {
		a.VY += Gravity
	}

	newX := a.X + a.VX
	newY := a.Y + a.VY

	// Ground
	ground := a.ScreenH - PetSize
	if newY >= ground {
		newY = ground
		a.VY = 0
		a.Grounded = true
	} else {
		a.Grounded = false
	}

	// Walls. The bounce keeps at least walking speed so the pet never
	// stalls against an edge.
	if newX <= 0 {
		newX = 0
		a.VX = math.Max(WalkingSpeed, math.Abs(a.VX)*BounceDamping)
	} else if newX >= a.ScreenW-PetSize {
		newX = a.ScreenW - PetSize
		a.VX = math.Min(-WalkingSpeed, -math.Abs(a.VX)*BounceDamping)
	}

	// Ceiling
	if newY <= 0 {
		newY = 0
		a.VY = math.Abs(a.VY) * BounceDamping
	}

	// Grounded pets keep walking: stationary behaviors decay velocity but
	// the floor here is what guarantees motion never fully dies.
	if a.Grounded && math.Abs(a.VX) < WalkingSpeed && a.State != GameRequest {
		if a.VX >= 0 {
			a.VX = WalkingSpeed
		} else {
			a.VX = -WalkingSpeed
		}
	}

	// Speed caps, looser while charging the danger corner.
	maxSpeed := MaxSpeedNormal
	if a.State == Mischief {
		maxSpeed = MaxSpeedMischief
	}
	if math.Abs(a.VX) > maxSpeed {
		a.VX = math.Copysign(maxSpeed, a.VX)
	}
	a.VY = clamp(a.VY, -maxSpeed*2, maxSpeed*2)

	a.X = newX
	a.Y = newY

	if math.Abs(a.VX) > 0.1 {
		if a.VX > 0 {
			a.Facing = 1
		} else {
			a.Facing = -1
		}
	}
}
