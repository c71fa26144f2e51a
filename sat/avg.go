package sat

// EMA is an exponential moving average with a fixed decay factor. It also
// tracks the number of samples it has received so that callers can tell
// whether the average has "warmed up" enough to be trusted (see the
// restart controller's blocking condition).
type EMA struct {
	decay float64
	value float64
	count int64
	init  bool
}

// NewEMA returns an EMA with the given decay factor in (0, 1).
func NewEMA(decay float64) EMA {
	return EMA{decay: decay}
}

// DecayForWindow returns the decay factor that approximates a simple moving
// average over the given window length, i.e. decay = 1 - 1/window.
func DecayForWindow(window int) float64 {
	if window <= 1 {
		return 0
	}
	return 1 - 1/float64(window)
}

// Add folds a new sample into the average.
func (ema *EMA) Add(x float64) {
	ema.count++
	if !ema.init {
		ema.init = true
		ema.value = x
		return
	}
	ema.value = ema.decay*ema.value + x*(1-ema.decay)
}

// Val returns the current value of the average.
func (ema *EMA) Val() float64 {
	return ema.value
}

// Count returns the number of samples folded into the average so far.
func (ema *EMA) Count() int64 {
	return ema.count
}

// WarmedUp reports whether the average has received at least minSamples
// samples. Restart blocking is disabled until this is true (see
// spec's open question on EMA warm-up).
func (ema *EMA) WarmedUp(minSamples int64) bool {
	return ema.count >= minSamples
}
