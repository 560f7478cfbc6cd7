package fluent

// Animation is a scalar tween stepped with the frame delta time.
// Widgets keep one per animated property and call Update each frame.
type Animation struct {
	from     float32
	to       float32
	value    float32
	duration float32
	elapsed  float32
	active   bool

	// Easing maps linear progress [0,1] to eased progress. Nil means
	// ease-out-quad, which matches the menu slide feel.
	Easing func(t float32) float32
}

// Start begins a tween from from to to over duration seconds.
// A non-positive duration completes immediately.
func (a *Animation) Start(from, to, duration float32) {
	a.from = from
	a.to = to
	a.duration = duration
	a.elapsed = 0
	if duration <= 0 {
		a.value = to
		a.active = false
		return
	}
	a.value = from
	a.active = true
}

// Update advances the tween. Returns true while still animating.
func (a *Animation) Update(dt float32) bool {
	if !a.active {
		return false
	}

	a.elapsed += dt
	t := a.elapsed / a.duration
	if t >= 1 {
		a.value = a.to
		a.active = false
		return false
	}

	ease := a.Easing
	if ease == nil {
		ease = EaseOutQuad
	}
	a.value = a.from + (a.to-a.from)*ease(t)
	return true
}

// Value returns the current tweened value.
func (a *Animation) Value() float32 {
	return a.value
}

// Active returns true while the tween is running.
func (a *Animation) Active() bool {
	return a.active
}

// Finish jumps to the end value and stops.
func (a *Animation) Finish() {
	a.value = a.to
	a.active = false
}

// EaseOutQuad decelerates toward the end of the tween.
func EaseOutQuad(t float32) float32 {
	return 1 - (1-t)*(1-t)
}

// EaseOutCubic decelerates harder; used for the popup slide.
func EaseOutCubic(t float32) float32 {
	u := 1 - t
	return 1 - u*u*u
}

// TranslateYAnimation nudges the combo box arrow glyph down while the
// header is pressed and springs it back on release.
type TranslateYAnimation struct {
	ani Animation
}

// arrowNudge is how far the arrow travels while pressed, in pixels.
const arrowNudge float32 = 3

// Press starts the downward nudge.
func (t *TranslateYAnimation) Press() {
	t.ani.Start(t.ani.value, arrowNudge, 0.1)
}

// Release springs the arrow back to rest.
func (t *TranslateYAnimation) Release() {
	t.ani.Start(t.ani.value, 0, 0.12)
}

// Update advances the nudge. Returns true while still animating.
func (t *TranslateYAnimation) Update(dt float32) bool {
	return t.ani.Update(dt)
}

// Y returns the current vertical offset.
func (t *TranslateYAnimation) Y() float32 {
	return t.ani.value
}
