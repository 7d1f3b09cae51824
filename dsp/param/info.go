package param

// ID names a live parameter inside a [Source] registry. It is a plain
// lookup key, not an ownership edge: the parameter it names may be
// torn down at any time, in which case lookups simply fail.
type ID string

// Source resolves parameter references. Implementations report false
// for IDs that no longer exist; callers must treat that as non-fatal.
type Source interface {
	ParameterValue(id ID) (float64, bool)
}

// Info carries the per-block environmental context the audio thread
// hands to parameters and effects: the time base and the registry for
// resolving linked values. The driver keeps one Info stable for the
// duration of each block.
type Info struct {
	// SampleRate is the output sample rate in Hz.
	SampleRate float64
	// Position is the elapsed output time in seconds at block start.
	Position float64
	// Source resolves linked parameter values. May be nil.
	Source Source
}

// ParameterValue looks up a linked parameter, tolerating a nil Info or
// a nil Source.
func (in *Info) ParameterValue(id ID) (float64, bool) {
	if in == nil || in.Source == nil {
		return 0, false
	}

	return in.Source.ParameterValue(id)
}
