// Package galaxy animates a decorative "glycan galaxy": procedurally branching
// ornaments orbiting a glowing core in a simulated 3D spiral, optionally behind a
// drifting starfield, tilted by the pointer through eased parallax rotation.
//
// The package is host-agnostic. A host creates a Loop around a Canvas, forwards
// resize and pointer notifications, and calls Loop.Tick once per displayed frame:
//
//	loop := galaxy.New(canvas, galaxy.WithProfile(galaxy.Hero), galaxy.WithViewport(w, h))
//	loop.Resize(w, h)          // on window resize
//	loop.PointerMove(cx, cy)   // on pointer move, in viewport pixels
//	loop.Tick(1.0 / 60.0)      // once per refresh
//
// All state lives in the loop's ecs.Storage; the frame itself is a fixed sequence of
// ecs systems (clock, rotation, stars, orbit, depth sort, projection, render, glass).
// Motion advances per tick, so a host's refresh rate is the animation clock.
//
// Every method of Loop must be called from one goroutine.
package galaxy
