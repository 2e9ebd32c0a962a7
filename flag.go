package clutils

// Flag is a declaration: its class, synonyms, occurrence limit and the
// instances recorded by the last Parse.
type Flag struct {
	class     FlagClass
	names     []Name
	max       int
	instances []Instance
}

func newFlag(class FlagClass, max int, names []Name) *Flag {
	if max < 0 {
		max = Unlimited
	}
	return &Flag{
		class: class,
		names: append([]Name(nil), names...),
		max:   max,
	}
}

func (f *Flag) Class() FlagClass { return f.class }

// Name returns the canonical (first declared) name.
func (f *Flag) Name() string { return f.names[0].text }

// Names returns all synonyms in declaration order.
func (f *Flag) Names() []Name { return append([]Name(nil), f.names...) }

// Max returns the occurrence limit, or Unlimited.
func (f *Flag) Max() int { return f.max }

func (f *Flag) Instances() []Instance { return append([]Instance(nil), f.instances...) }

func (f *Flag) Count() int { return len(f.instances) }

// WithinLimit reports whether another instance may be recorded.
func (f *Flag) WithinLimit() LimitType {
	switch {
	case f.max == 0:
		return LimitProscribed
	case f.max == Unlimited, len(f.instances) < f.max:
		return LimitWithin
	default:
		return LimitWithout
	}
}

// Clear drops recorded instances and keeps the declaration.
func (f *Flag) Clear() {
	f.instances = nil
}

func (f *Flag) takesInput() bool {
	return f.class == Optional || f.class == Mandatory
}

func (f *Flag) addInstance(name string, pos, subpos int, input Input) {
	f.instances = append(f.instances, Instance{name: name, pos: pos, subpos: subpos, input: input})
}

// instance resolves a python style index against the recorded instances.
func (f *Flag) instance(idx int) (Instance, bool) {
	n := len(f.instances)
	if idx < 0 {
		idx += n
	}
	if idx < 0 || idx >= n {
		return Instance{}, false
	}
	return f.instances[idx], true
}
