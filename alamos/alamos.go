package alamos

// Experiment is a tree of measurements describing the performance
// characteristics of a single run. A nil Experiment is a valid no-op target,
// so callers never need to guard their instrumentation.
type Experiment interface {
	Sub(string) Experiment
	AddMeasurement(entry)
	Measurements() map[string]entry
}

type experiment struct {
	key          string
	children     map[string]Experiment
	measurements map[string]entry
}

func New(name string) Experiment {
	return &experiment{
		key:          name,
		children:     make(map[string]Experiment),
		measurements: make(map[string]entry),
	}
}

func (e *experiment) Sub(key string) Experiment {
	exp := New(key)
	e.children[key] = exp
	return exp
}

func (e *experiment) AddMeasurement(m entry) {
	e.measurements[m.key()] = m
}

func (e *experiment) Measurements() map[string]entry {
	return e.measurements
}

// SubExperiment returns a child of exp, or nil when exp is nil.
func SubExperiment(exp Experiment, key string) Experiment {
	if exp == nil {
		return nil
	}
	return exp.Sub(key)
}

type entry interface {
	key() string
}
