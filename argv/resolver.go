package argv

import (
	"fmt"
	"strings"

	"github.com/dzonerzy/go-argv/internal/arena"
	"github.com/dzonerzy/go-argv/internal/fuzzy"
)

// suggestionDistance is the edit-distance budget for "Did you mean" hints.
const suggestionDistance = 2

// Resolver executes the multi-phase resolution of a token buffer against a
// registry of bindings. It owns the buffer exclusively for the duration of
// one Parse call; bindings are borrowed, their target slots live in
// caller-owned storage.
//
// Phase order is fixed and observable:
//
//  1. Options, in registration order. Options go first because a token like
//     "-g4" is ambiguous between option g with value 4 and flag g followed
//     by positional 4; extracting all declared options removes the
//     ambiguity deterministically.
//  2. Flags, in registration order.
//  3. Unknown-identifier scan: any surviving token before the
//     end-of-options marker that still looks like an identifier is
//     unrecognized.
//  4. Positionals, left to right over the remaining tokens.
//  5. Leftover scan: any surviving token is one too many.
//
// Matched tokens are consumed in place so later phases never re-match them.
type Resolver struct {
	buf *arena.Buffer
	reg *Registry

	// endOfOptions is the index of the first "--" token, or buf.Len() if
	// absent. Identifier searches never look past it.
	endOfOptions int

	// positionalCount numbers resolved positionals for error messages.
	positionalCount int
}

// NewResolver creates a resolver over args, the argv-style token list of
// one program invocation excluding the program name.
func NewResolver(args []string, reg *Registry) *Resolver {
	return &Resolver{buf: arena.New(args), reg: reg}
}

// Parse runs the phase protocol. It returns the first violation found, in
// phase order, as a *ParseError; there is no aggregation and no partial
// recovery. On success every binding's target slot holds its decoded value
// or its caller-supplied default.
func (r *Resolver) Parse() error {
	r.endOfOptions = r.findEndOfOptions()

	for _, opt := range r.reg.options {
		if err := r.getOption(opt); err != nil {
			return err
		}
	}

	for _, flag := range r.reg.flags {
		r.getFlag(flag)
	}

	if err := r.checkUnknownIdentifiers(); err != nil {
		return err
	}

	// The marker must not surface as a positional value.
	if r.endOfOptions < r.buf.Len() {
		r.buf.Consume(r.endOfOptions)
	}

	for _, pos := range r.reg.positionals {
		if err := r.getPositional(pos); err != nil {
			return err
		}
	}

	return r.checkLeftovers()
}

// findEndOfOptions locates the first literal "--" token.
func (r *Resolver) findEndOfOptions() int {
	for i := 0; i < r.buf.Len(); i++ {
		if r.buf.Live(i) && r.buf.At(i) == "--" {
			return i
		}
	}
	return r.buf.Len()
}

// findIdentifier returns the first live index at or after from, before the
// end-of-options marker, whose token matches the dashed identifier.
//
// A short identifier "-c" matches by prefix, covering "-cVALUE", "-c=VALUE"
// and "-c VALUE". A long identifier "--name" matches the exact token (value
// in the next token) or the "--name=" prefix (inline value). Returns -1 if
// no token matches.
func (r *Resolver) findIdentifier(from int, id string, long bool) int {
	if id == "" {
		return -1
	}
	if from < 0 {
		from = 0
	}
	for i := from; i < r.endOfOptions; i++ {
		if !r.buf.Live(i) {
			continue
		}
		tok := r.buf.At(i)
		if long {
			if tok == id || strings.HasPrefix(tok, id+"=") {
				return i
			}
		} else if strings.HasPrefix(tok, id) {
			return i
		}
	}
	return -1
}

// retrieveValue extracts and decodes the value for the identifier matched
// at index at, consuming the involved tokens. It returns the index where
// the search for further occurrences should resume.
func (r *Resolver) retrieveValue(v Value, at int, id string) (int, error) {
	tok := r.buf.At(at)

	var raw string
	if len(tok) > len(id) { // identifier and value share one token
		if tok[len(id)] == '=' {
			if len(tok) == len(id)+1 { // "-i=" with nothing after
				return 0, missingValueError(id)
			}
			raw = tok[len(id)+1:]
		} else { // joined short form "-iValue"
			raw = tok[len(id):]
		}
		r.buf.Consume(at)
	} else { // value is the next token
		r.buf.Consume(at)
		next := at + 1
		if next >= r.endOfOptions || !r.buf.Live(next) {
			return 0, missingValueError(id)
		}
		raw = r.buf.At(next)
		r.buf.Consume(next)
	}

	out, derr := v.decode(raw)
	if err := inputError(v, out, derr, id, raw); err != nil {
		return 0, err
	}
	return at + 1, nil
}

// getOptionByID retrieves every occurrence of one identifier side.
// A non-container slot found a second time is a fatal multiple-declaration
// error; a container slot is cleared on its first match and then appends
// every further occurrence in encounter order.
func (r *Resolver) getOptionByID(v Value, id string, long bool) (bool, error) {
	it := r.findIdentifier(0, id, long)
	if it == -1 {
		return false, nil
	}

	if v.isContainer() {
		v.resetSlot()
		for it != -1 {
			next, err := r.retrieveValue(v, it, id)
			if err != nil {
				return true, err
			}
			it = r.findIdentifier(next, id, long)
		}
		return true, nil
	}

	next, err := r.retrieveValue(v, it, id)
	if err != nil {
		return true, err
	}
	if r.findIdentifier(next, id, long) != -1 {
		return true, NewParseError(ErrorTypeMultipleDeclarations,
			"Option "+id+" is not a list but was declared multiple times.")
	}
	return true, nil
}

// getOption resolves one option binding across both identifier forms,
// then validates, or reports the option as missing if it is required.
func (r *Resolver) getOption(b *optionBinding) error {
	ids := b.cfg.ids()

	shortSet, err := r.getOptionByID(b.value, ids.shortDash(), false)
	if err != nil {
		return err
	}
	longSet, err := r.getOptionByID(b.value, ids.longDash(), true)
	if err != nil {
		return err
	}

	// A scalar supplied via both identifier forms was given twice even if
	// the values agree.
	if shortSet && longSet && !b.value.isContainer() {
		return NewParseError(ErrorTypeMultipleDeclarations,
			"Option "+ids.Display()+" is not a list but was specified multiple times.")
	}

	if shortSet || longSet {
		if verr := b.value.runCheck(); verr != nil {
			return NewParseError(ErrorTypeValidation,
				"Validation failed for option "+ids.Display()+": "+verr.Error())
		}
		return nil
	}

	if b.cfg.Required {
		return NewParseError(ErrorTypeRequiredMissing,
			"Option "+ids.Display()+" is required but not set.")
	}
	return nil
}

// getFlag resolves one flag binding. Both identifier forms are always
// evaluated so that "-v --verbose" consumes both tokens; the final value
// ORs in the prior default so repeated presence stays true.
func (r *Resolver) getFlag(f *flagBinding) {
	shortSet := r.takeShortFlag(f.cfg.Short)
	longSet := r.takeLongFlag(f.cfg.Long)
	*f.target = shortSet || longSet || *f.target
}

// takeShortFlag removes a single occurrence of the short flag character
// from any short-option-looking token before the marker. Removing one
// character in place is what realizes grouped flags: "-rGv" resolves as
// "-r -G -v" without a separate expansion step.
func (r *Resolver) takeShortFlag(c byte) bool {
	if c == 0 {
		return false
	}
	for i := 0; i < r.endOfOptions; i++ {
		if !r.buf.Live(i) {
			continue
		}
		tok := r.buf.At(i)
		if len(tok) < 2 || tok[0] != '-' || tok[1] == '-' {
			continue
		}
		if pos := strings.IndexByte(tok, c); pos != -1 {
			tok = tok[:pos] + tok[pos+1:]
			if tok == "-" {
				r.buf.Consume(i)
			} else {
				r.buf.Set(i, tok)
			}
			return true
		}
	}
	return false
}

// takeLongFlag removes an exact "--name" token before the marker.
func (r *Resolver) takeLongFlag(name string) bool {
	if name == "" {
		return false
	}
	want := "--" + name
	for i := 0; i < r.endOfOptions; i++ {
		if r.buf.Live(i) && r.buf.At(i) == want {
			r.buf.Consume(i)
			return true
		}
	}
	return false
}

// checkUnknownIdentifiers scans the region before the marker after all
// declared options and flags have been extracted: anything that still looks
// like an identifier is guaranteed unrecognized. A single-dash token longer
// than two characters is reported as a malformed short-flag cluster,
// everything else as an unknown option.
func (r *Resolver) checkUnknownIdentifiers() error {
	for i := 0; i < r.endOfOptions; i++ {
		if !r.buf.Live(i) {
			continue
		}
		tok := r.buf.At(i)
		if len(tok) == 0 || tok[0] != '-' {
			continue
		}
		if tok == "-" {
			continue // stdin convention, resolved as a positional
		}

		if tok[1] != '-' && len(tok) > 2 {
			return NewParseError(ErrorTypeUnknownIdentifier,
				"Unknown flags "+expandShortCluster(tok)+
					". In case this is meant to be a non-option/argument/parameter, "+
					"please specify the start of arguments with '--'. "+
					"See --help for program information.")
		}

		perr := NewParseError(ErrorTypeUnknownIdentifier,
			"Unknown option "+tok+
				". In case this is meant to be a non-option/argument/parameter, "+
				"please specify the start of non-options with '--'. "+
				"See --help for program information.")
		if strings.HasPrefix(tok, "--") {
			name := tok[2:]
			if eq := strings.IndexByte(name, '='); eq != -1 {
				name = name[:eq]
			}
			perr.Suggestion = fuzzy.FindBestIdentifier(name, r.reg.longIdentifiers(), suggestionDistance)
		}
		return perr
	}
	return nil
}

// expandShortCluster renders "-abc" as "-a, -b, -c" for cluster errors.
func expandShortCluster(tok string) string {
	parts := make([]string, 0, len(tok)-1)
	for i := 1; i < len(tok); i++ {
		parts = append(parts, "-"+string(tok[i]))
	}
	return strings.Join(parts, ", ")
}

// getPositional resolves one positional binding. Scalars take the next
// live token; a container takes every remaining token left to right.
func (r *Resolver) getPositional(b *positionalBinding) error {
	r.positionalCount++
	ordinal := r.positionalCount

	it := r.buf.NextLive(0)
	if it == -1 {
		return NewParseError(ErrorTypeTooFewArguments, fmt.Sprintf(
			"Not enough positional arguments provided (Need at least %d). See --help for more information.",
			len(r.reg.positionals)))
	}

	if b.value.isContainer() {
		b.value.resetSlot()
		for it != -1 {
			raw := r.buf.At(it)
			out, derr := b.value.decode(raw)
			label := fmt.Sprintf("positional argument %d", r.positionalCount)
			if err := inputError(b.value, out, derr, label, raw); err != nil {
				return err
			}
			r.buf.Consume(it)
			it = r.buf.NextLive(it)
			r.positionalCount++
		}
	} else {
		raw := r.buf.At(it)
		out, derr := b.value.decode(raw)
		label := fmt.Sprintf("positional argument %d", ordinal)
		if err := inputError(b.value, out, derr, label, raw); err != nil {
			return err
		}
		r.buf.Consume(it)
	}

	if verr := b.value.runCheck(); verr != nil {
		return NewParseError(ErrorTypeValidation, fmt.Sprintf(
			"Validation failed for positional argument %d: %s", ordinal, verr.Error()))
	}
	return nil
}

// checkLeftovers reports any token that survived every phase.
func (r *Resolver) checkLeftovers() error {
	if r.buf.NextLive(0) != -1 {
		return NewParseError(ErrorTypeTooManyArguments,
			"Too many arguments provided. See --help for more information.")
	}
	return nil
}

// The resolver doubles as the parse-only format sink: one registry serves
// both help rendering and parsing, and during parsing the metadata calls
// are inert.

func (r *Resolver) AddSection(string) {}

func (r *Resolver) AddSubsection(string) {}

func (r *Resolver) AddLine(string) {}

func (r *Resolver) AddListItem(string, string) {}
