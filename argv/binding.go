package argv

import "fmt"

// Config describes one binding: its identifiers, help metadata, and
// whether the option must appear. Positional bindings ignore the
// identifier fields.
type Config struct {
	Short       byte
	Long        string
	Description string
	Required    bool
	Hidden      bool
}

func (c Config) ids() IDPair {
	return IDPair{Short: c.Short, Long: c.Long}
}

type optionBinding struct {
	value Value
	cfg   Config
}

type flagBinding struct {
	target *bool
	cfg    Config
}

type positionalBinding struct {
	value Value
	cfg   Config
}

// Registry accumulates bindings in registration order. The order is part of
// the parse contract: the resolver evaluates options, then flags, then
// positionals, each in the order they were added here.
//
// Registration mistakes are developer errors, not user errors, so the Add
// methods panic on misuse (duplicate identifiers, malformed names, a
// positional declared after a container positional).
type Registry struct {
	options     []*optionBinding
	flags       []*flagBinding
	positionals []*positionalBinding
	used        []IDPair
}

// AddOption registers an option binding that decodes into value.
func (r *Registry) AddOption(value Value, cfg Config) {
	r.verifyIdentifiers(cfg.ids())
	r.options = append(r.options, &optionBinding{value: value, cfg: cfg})
}

// AddFlag registers a boolean flag binding. The target must default to
// false: a flag can only switch a value on, so a true default could never
// be observed.
func (r *Registry) AddFlag(target *bool, cfg Config) {
	r.verifyIdentifiers(cfg.ids())
	if *target {
		panic("argv: flag target for " + cfg.ids().Display() + " must default to false")
	}
	r.flags = append(r.flags, &flagBinding{target: target, cfg: cfg})
}

// AddPositional registers a positional binding. A container positional
// consumes every remaining token, so it must be the last one declared.
func (r *Registry) AddPositional(value Value, cfg Config) {
	if n := len(r.positionals); n > 0 && r.positionals[n-1].value.isContainer() {
		panic("argv: a container positional must be the last positional declared")
	}
	r.positionals = append(r.positionals, &positionalBinding{value: value, cfg: cfg})
}

// verifyIdentifiers rejects malformed or already-used identifier pairs.
func (r *Registry) verifyIdentifiers(id IDPair) {
	if id.Empty() {
		panic("argv: option or flag needs a short or a long identifier")
	}
	if !id.EmptyShort() {
		if id.Short == '-' || id.Short <= ' ' || id.Short > '~' {
			panic(fmt.Sprintf("argv: short identifier %q is not a printable character", id.Short))
		}
	}
	if !id.EmptyLong() {
		if len(id.Long) == 1 {
			panic("argv: long identifier " + id.Long + " must be at least two characters, use the short identifier instead")
		}
		if id.Long[0] == '-' {
			panic("argv: long identifier " + id.Long + " must not start with a dash")
		}
		for i := 0; i < len(id.Long); i++ {
			if c := id.Long[i]; c <= ' ' || c > '~' {
				panic("argv: long identifier " + id.Long + " contains a non-printable character")
			}
		}
	}
	for _, u := range r.used {
		if u.Overlaps(id) {
			panic("argv: identifier " + id.Display() + " was already used")
		}
	}
	r.used = append(r.used, id)
}

// longIdentifiers lists every registered long identifier; the resolver
// feeds these to the suggestion matcher for unknown-identifier errors.
func (r *Registry) longIdentifiers() []string {
	names := make([]string, 0, len(r.options)+len(r.flags))
	for _, o := range r.options {
		if o.cfg.Long != "" {
			names = append(names, o.cfg.Long)
		}
	}
	for _, f := range r.flags {
		if f.cfg.Long != "" {
			names = append(names, f.cfg.Long)
		}
	}
	return names
}
