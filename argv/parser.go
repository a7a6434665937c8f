package argv

import "strconv"

// Meta carries the program information shown by the help and man sinks.
type Meta struct {
	Name             string
	Version          string
	ShortDescription string
	Description      []string
}

// Parser is the user-facing facade: a registry of bindings plus the token
// list of one invocation. Declaration methods only record metadata; nothing
// is inspected until Parse.
type Parser struct {
	Meta     Meta
	Registry Registry

	args []string
}

// New creates a parser for the given program name over an argv-style token
// list (program name excluded).
func New(name string, args []string) *Parser {
	return &Parser{
		Meta: Meta{Name: name},
		args: args,
	}
}

// AddOption registers an option that decodes into value.
func (p *Parser) AddOption(value Value, cfg Config) {
	p.Registry.AddOption(value, cfg)
}

// AddFlag registers a boolean flag.
func (p *Parser) AddFlag(target *bool, cfg Config) {
	p.Registry.AddFlag(target, cfg)
}

// AddPositional registers a positional argument.
func (p *Parser) AddPositional(value Value, cfg Config) {
	p.Registry.AddPositional(value, cfg)
}

// Parse resolves the token list against the registered bindings. It
// returns the first violation as a *ParseError, or nil when every slot was
// populated or left at its default.
func (p *Parser) Parse() error {
	return NewResolver(p.args, &p.Registry).Parse()
}

// Render walks the program metadata and every visible binding into f.
func (p *Parser) Render(f Format) {
	if p.Meta.ShortDescription != "" {
		f.AddSection("Name")
		f.AddLine(p.Meta.Name + " - " + p.Meta.ShortDescription)
	}

	f.AddSection("Synopsis")
	f.AddLine(p.synopsis())

	if len(p.Meta.Description) > 0 {
		f.AddSection("Description")
		for _, line := range p.Meta.Description {
			f.AddLine(line)
		}
	}

	if len(p.Registry.positionals) > 0 {
		f.AddSection("Positional Arguments")
		for i, pos := range p.Registry.positionals {
			term := positionalTerm(i+1, pos.value.isContainer())
			f.AddListItem(term, pos.cfg.Description)
		}
	}

	if len(p.Registry.options) > 0 || len(p.Registry.flags) > 0 {
		f.AddSection("Options")
		for _, opt := range p.Registry.options {
			if opt.cfg.Hidden {
				continue
			}
			term := opt.cfg.ids().Display() + " <" + opt.value.typeName() + ">"
			if opt.cfg.Required {
				term += " (required)"
			}
			f.AddListItem(term, opt.cfg.Description)
		}
		for _, flag := range p.Registry.flags {
			if flag.cfg.Hidden {
				continue
			}
			f.AddListItem(flag.cfg.ids().Display(), flag.cfg.Description)
		}
	}

	if p.Meta.Version != "" {
		f.AddSection("Version")
		f.AddLine(p.Meta.Name + " " + p.Meta.Version)
	}
}

// HelpText renders the plain-text help page.
func (p *Parser) HelpText() string {
	h := NewHelpText()
	p.Render(h)
	return h.String()
}

// ManPage renders the troff man page.
func (p *Parser) ManPage() string {
	m := NewManPage(p.Meta.Name, p.Meta.Version)
	p.Render(m)
	return m.String()
}

func (p *Parser) synopsis() string {
	s := p.Meta.Name
	if len(p.Registry.options) > 0 || len(p.Registry.flags) > 0 {
		s += " [OPTIONS]"
	}
	for i, pos := range p.Registry.positionals {
		s += " " + positionalTerm(i+1, pos.value.isContainer())
	}
	return s
}

func positionalTerm(ordinal int, container bool) string {
	if container {
		return "ARGUMENTS..."
	}
	// Positionals have no identifiers, so help refers to them by ordinal.
	return "ARGUMENT-" + strconv.Itoa(ordinal)
}
