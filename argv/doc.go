// Package argv parses command-line token lists against typed bindings.
//
// Callers declare bindings against their own variables, then run one parse
// over the invocation's tokens:
//
//	var threads int
//	var verbose bool
//	var inputs []string
//
//	p := argv.New("mytool", os.Args[1:])
//	p.AddOption(argv.Int(&threads), argv.Config{Short: 't', Long: "threads", Description: "Worker count."})
//	p.AddFlag(&verbose, argv.Config{Short: 'v', Long: "verbose", Description: "Chatty output."})
//	p.AddPositional(argv.List(&inputs, argv.String), argv.Config{Description: "Input files."})
//
//	if err := p.Parse(); err != nil {
//		fmt.Fprintln(os.Stderr, err)
//		os.Exit(1)
//	}
//
// Resolution runs in a fixed phase order: options first, then flags, then a
// scan for unrecognized identifiers, then positionals, then a scan for
// leftover tokens. The first violation stops the parse and is returned as a
// *ParseError carrying a machine-readable type alongside the message.
//
// All common spellings resolve identically: "-t4", "-t=4", "-t 4",
// "--threads 4" and "--threads=4" set threads to 4, and grouped short flags
// like "-rv" expand in place. A literal "--" ends option processing; every
// later token is a positional even if it starts with a dash.
//
// Values are typed. Int, Uint, Float, Bool, String and Enum build scalar
// slots; List wraps any of them into a repeatable collection. A decoded
// value can be validated in place with Check, using the bundled validators
// or any func(T) error.
package argv
