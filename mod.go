package touchfield

// Mod identifiers consumed by the host's mod activation gate. The gate
// itself (selection UI, score eligibility) lives in the host; this
// package only declares which combinations conflict.
const (
	ModTouchControl = "touch_control"
	ModAutopilot    = "autopilot" // auto-play assistance; fights the pan for the cursor
	ModBloom        = "bloom"     // fullscreen bloom; breaks under live rescaling
)

// TouchControl wires touch-screen playfield control onto a Playfield:
// a pinch/pan ZoomRecognizer plus a one-time radius parity rescale.
//
// It is a best-effort visual enhancement: nothing in Apply can panic
// or return an error, and every failure path degrades to a no-op so a
// malfunction here never interrupts gameplay.
type TouchControl struct {
	// CircleSize is the active beatmap's circle-size difficulty value,
	// read once from beatmap metadata.
	CircleSize float64

	// NativeRadius keeps the host's own hit-target radius instead of
	// rescaling the playfield to match the reference client's. See
	// RadiusMultiplier for the parity formula.
	NativeRadius bool
}

// Name returns the mod identifier for the activation gate.
func (TouchControl) Name() string { return ModTouchControl }

// IncompatibleMods returns the identifiers of mods that cannot be
// active together with touch control.
func (TouchControl) IncompatibleMods() []string {
	return []string{ModAutopilot, ModBloom}
}

// Apply attaches exactly one ZoomRecognizer to the playfield and, on
// first attachment, applies the radius parity rescale (unless
// NativeRadius). Applying to a playfield that already has a recognizer
// returns the existing one and changes nothing else. A nil playfield
// returns nil.
func (m TouchControl) Apply(field *Playfield) *ZoomRecognizer {
	if field == nil {
		return nil
	}
	if field.zoom != nil {
		return field.zoom
	}
	field.zoom = NewZoomRecognizer(field, field)
	if !m.NativeRadius {
		// Best effort: a degenerate radius leaves the scale untouched.
		ApplyRadiusParity(field, m.CircleSize)
	}
	return field.zoom
}

// Recognizer returns the recognizer attached to this playfield, or nil.
func (p *Playfield) Recognizer() *ZoomRecognizer {
	return p.zoom
}
