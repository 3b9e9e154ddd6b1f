package sim

// Populate resets the world to the starting scene: the reticle, the apple at
// a random spot, Config.TreeCount trees at random spots and a chain of
// Config.ManCount men in the middle of the screen, the first of which follows
// the apple. Handles from before the reset stop resolving.
func Populate(w *World) {
	w.Entities.Clear()
	w.ChopCooldown = 0

	w.Reticle = w.Spawn(NewReticle(ReticleStart))
	w.Apple = w.Spawn(NewApple(w.RandomPoint()))

	for range w.Config.TreeCount {
		tree := NewTree(w.RandomPoint())
		tree.Animator.RandomizeFrame(w.Sprites, w.Rand)
		w.Spawn(tree)
	}

	target := w.Apple
	for range w.Config.ManCount {
		target = w.Spawn(NewMan(w.Center(), target))
	}
}
