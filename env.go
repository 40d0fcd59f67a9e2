package calc

import "sort"

// Env holds the variables of a session. Names are case-sensitive and any
// string is a valid name. It is not safe to use an Env concurrently.
type Env struct {
	names map[string]float64
}

// EnvOption is an option used when creating an environment.
type EnvOption interface {
	envOption()
}

type (
	varopt struct {
		name string
		val  float64
	}
	varsopt map[string]float64
)

func (varopt) envOption()  {}
func (varsopt) envOption() {}

// SetVar sets the value of a variable in the environment.
func SetVar(name string, val float64) EnvOption {
	return varopt{name, val}
}

// SetVars sets the values of any number of variables in the environment.
func SetVars(vars map[string]float64) EnvOption {
	return varsopt(vars)
}

// NewEnv creates a new environment. With no options, it is empty.
func NewEnv(opts ...EnvOption) *Env {
	env := Env{names: make(map[string]float64)}
	env.apply(opts)
	return &env
}

func (env *Env) apply(opts []EnvOption) {
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		switch opt := opt.(type) {
		case varopt:
			env.names[opt.name] = opt.val
		case varsopt:
			for k, v := range opt {
				env.names[k] = v
			}
		default:
			panic("calc: unknown option type")
		}
	}
}

// Set sets the value of a variable, replacing any previous value. Returns env
// for chaining.
func (env *Env) Set(name string, value float64) *Env {
	if env.names == nil {
		env.names = make(map[string]float64)
	}
	env.names[name] = value
	return env
}

// Lookup returns the value of a variable and whether it is defined. A nil
// *Env has no variables.
func (env *Env) Lookup(name string) (float64, bool) {
	if env == nil {
		return 0, false
	}
	v, ok := env.names[name]
	return v, ok
}

// Len returns the number of defined variables.
func (env *Env) Len() int {
	if env == nil {
		return 0
	}
	return len(env.names)
}

// Names returns the names of all defined variables in sorted order.
func (env *Env) Names() []string {
	if env == nil {
		return []string{}
	}
	r := make([]string, 0, len(env.names))
	for k := range env.names {
		r = append(r, k)
	}
	sort.Strings(r)
	return r
}

// Clone creates a copy of an environment and applies options to it. Cloning
// a nil *Env is the same as NewEnv.
func (env *Env) Clone(opts ...EnvOption) *Env {
	if env == nil {
		return NewEnv(opts...)
	}
	n := Env{names: make(map[string]float64, len(env.names))}
	for k, v := range env.names {
		n.names[k] = v
	}
	n.apply(opts)
	return &n
}
