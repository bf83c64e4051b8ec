package mediactl

import "time"

// Options configures a Controller.
type Options struct {
	// CoarseSeek is the rewind/forward increment of buttons and arrow keys.
	CoarseSeek time.Duration
	// FineSeek is the increment of shift+arrow keys.
	FineSeek time.Duration
	// VolumeStep is the volume change per up/down key press.
	VolumeStep float64
	// IdleHide is how long controls stay visible without interaction
	// while playing.
	IdleHide time.Duration
	// CountdownFrom is the initial value of the next-item countdown.
	CountdownFrom int
	// CountdownTick is the interval between countdown decrements.
	CountdownTick time.Duration
	// IndicatorDuration is how long a seek indicator stays on screen.
	IndicatorDuration time.Duration
	// FallbackVolume is restored on unmute when no non-zero volume was saved.
	FallbackVolume float64
	// ZeroVolumeImpliesMuted makes a zero volume mute. A positive volume
	// always unmutes.
	ZeroVolumeImpliesMuted bool
}

// DefaultOptions returns the stock controller settings.
func DefaultOptions() Options {
	return Options{
		CoarseSeek:             10 * time.Second,
		FineSeek:               5 * time.Second,
		VolumeStep:             0.1,
		IdleHide:               3 * time.Second,
		CountdownFrom:          5,
		CountdownTick:          time.Second,
		IndicatorDuration:      500 * time.Millisecond,
		FallbackVolume:         1,
		ZeroVolumeImpliesMuted: true,
	}
}

// withDefaults fills zero values from DefaultOptions.
func (o Options) withDefaults() Options {
	d := DefaultOptions()
	if o.CoarseSeek <= 0 {
		o.CoarseSeek = d.CoarseSeek
	}
	if o.FineSeek <= 0 {
		o.FineSeek = d.FineSeek
	}
	if o.VolumeStep <= 0 || o.VolumeStep > 1 {
		o.VolumeStep = d.VolumeStep
	}
	if o.IdleHide <= 0 {
		o.IdleHide = d.IdleHide
	}
	if o.CountdownFrom <= 0 {
		o.CountdownFrom = d.CountdownFrom
	}
	if o.CountdownTick <= 0 {
		o.CountdownTick = d.CountdownTick
	}
	if o.IndicatorDuration <= 0 {
		o.IndicatorDuration = d.IndicatorDuration
	}
	if o.FallbackVolume <= 0 || o.FallbackVolume > 1 {
		o.FallbackVolume = d.FallbackVolume
	}
	return o
}
