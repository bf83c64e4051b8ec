package player

import "math"

// silentGain is the beep gain used for a zero level. beep.Volume has base 2,
// so this is about -60dB.
const silentGain = -10

// SetVolume sets the level, clamped to [0,1]. While muted the level is only
// remembered.
func (p *Player) SetVolume(level float64) {
	p.volumeLevel = min(max(level, 0), 1)
	if !p.muted {
		p.applyGain()
	}
}

func (p *Player) Volume() float64 { return p.volumeLevel }

// SetMuted silences output without touching the level, so unmuting comes
// back at the same loudness.
func (p *Player) SetMuted(muted bool) {
	p.muted = muted
	p.applyGain()
}

func (p *Player) Muted() bool { return p.muted }

func (p *Player) applyGain() {
	if p.volume == nil {
		return
	}
	p.out.Lock()
	defer p.out.Unlock()
	p.volume.Silent = p.muted
	p.volume.Volume = p.levelToVolume(p.volumeLevel)
}

// levelToVolume maps a linear level to beep's base-2 gain: 1 is 0, 0.5 is -1,
// 0.25 is -2.
func (p *Player) levelToVolume(level float64) float64 {
	switch {
	case level <= 0:
		return silentGain
	case level >= 1:
		return 0
	}
	return math.Log2(level)
}
