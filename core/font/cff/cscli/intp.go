package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/chzyer/readline"
	"github.com/npillmayer/csopt/core"
	"github.com/npillmayer/csopt/core/font/cff/charstring"
	"github.com/pterm/pterm"
)

// Settings are the options the interpreter passes to the rewriters.
type Settings struct {
	IgnoreErrors     bool `json:"ignoreErrors"`
	PreserveTopology bool `json:"preserveTopology"`
	GeneralizeFirst  bool `json:"generalizeFirst"`
	MaxStack         int  `json:"maxStack"`
}

// DefaultSettings mirrors the defaults of package charstring.
func DefaultSettings() Settings {
	return Settings{GeneralizeFirst: true, MaxStack: charstring.DefaultMaxStack}
}

// Options converts s to rewriter options.
func (s Settings) Options() []charstring.Option {
	return []charstring.Option{
		charstring.IgnoreErrors(s.IgnoreErrors),
		charstring.PreserveTopology(s.PreserveTopology),
		charstring.GeneralizeFirst(s.GeneralizeFirst),
		charstring.MaxStack(s.MaxStack),
	}
}

func (s Settings) String() string {
	return fmt.Sprintf("ignore=%v topology=%v generalize=%v maxstack=%d",
		s.IgnoreErrors, s.PreserveTopology, s.GeneralizeFirst, s.MaxStack)
}

// Intp is our interpreter object
type Intp struct {
	repl     *readline.Instance
	settings Settings
	program  charstring.Program // last program entered
}

// NewIntp creates an interpreter reading from repl, which may be nil for
// non-interactive use.
func NewIntp(repl *readline.Instance) *Intp {
	return &Intp{repl: repl, settings: DefaultSettings()}
}

// REPL starts interactive mode.
func (intp *Intp) REPL() {
	for {
		line, err := intp.repl.Readline()
		if err != nil { // io.EOF
			break
		}
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		cmd, err := intp.parseCommand(line)
		if err != nil {
			pterm.Error.Println(err.Error())
			continue
		}
		out, quit, err := intp.execute(cmd)
		if err != nil {
			pterm.Error.Println(err.Error())
			continue
		}
		if out != "" {
			pterm.Println(out)
		}
		if quit {
			break
		}
	}
	pterm.Info.Println("Good bye!")
}

// Command is a parsed input line.
type Command struct {
	code    int
	args    []string
	program charstring.Program
}

const (
	QUIT int = iota
	HELP
	CMDS
	GEN
	SPEC
	SIZE
	SET
)

var commandNames = map[string]int{
	"quit": QUIT,
	"exit": QUIT,
	"help": HELP,
	"cmds": CMDS,
	"gen":  GEN,
	"spec": SPEC,
	"size": SIZE,
	"set":  SET,
}

// parseCommand reads a command word followed by arguments. A line not
// starting with a command word is a program to specialize.
func (intp *Intp) parseCommand(line string) (*Command, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil, errors.New("empty command")
	}
	code, ok := commandNames[strings.ToLower(fields[0])]
	if !ok {
		tracer().Debugf("parse program = %q", line)
		return &Command{code: SPEC, program: charstring.ParseProgram(line)}, nil
	}
	command := &Command{code: code, args: fields[1:]}
	switch code {
	case CMDS, GEN, SPEC, SIZE:
		if len(command.args) > 0 {
			command.program = charstring.ParseProgram(strings.Join(command.args, " "))
		}
	case SET:
		if len(command.args) != 0 && len(command.args) != 2 {
			return nil, fmt.Errorf("usage: set <name> <value>")
		}
	}
	tracer().Debugf("parse command = %v", fields)
	return command, nil
}

func (intp *Intp) execute(cmd *Command) (string, bool, error) {
	switch cmd.code {
	case QUIT:
		return "", true, nil
	case HELP:
		return helpText(getOptArg(cmd.args, 0)), false, nil
	case SET:
		if len(cmd.args) == 0 {
			return intp.settings.String(), false, nil
		}
		if err := intp.set(cmd.args[0], cmd.args[1]); err != nil {
			return "", false, err
		}
		return intp.settings.String(), false, nil
	}
	if cmd.program != nil {
		intp.program = cmd.program
	}
	if intp.program == nil {
		return "", false, errors.New("no program entered yet")
	}
	commands, err := charstring.ToCommands(intp.program)
	if err != nil {
		return "", false, err
	}
	switch cmd.code {
	case CMDS:
		return commandLines(commands), false, nil
	case GEN:
		g, err := charstring.Generalize(commands, intp.settings.Options()...)
		if err != nil {
			return "", false, err
		}
		return charstring.ToProgram(g).String(), false, nil
	case SPEC:
		s, err := charstring.Specialize(commands, intp.settings.Options()...)
		if err != nil {
			return "", false, err
		}
		return charstring.ToProgram(s).String(), false, nil
	case SIZE:
		r, _, err := measure(commands, intp.settings)
		if err != nil {
			return "", false, err
		}
		return r.String(), false, nil
	}
	return "", false, fmt.Errorf("unknown command code %d", cmd.code)
}

func (intp *Intp) set(name, value string) error {
	switch strings.ToLower(name) {
	case "maxstack":
		n, err := strconv.Atoi(value)
		if err != nil || n <= 0 {
			return core.Error(core.ECONFIG, "maxstack must be a positive number, is %q", value)
		}
		intp.settings.MaxStack = n
		return nil
	}
	b, err := onOff(value)
	if err != nil {
		return err
	}
	switch strings.ToLower(name) {
	case "ignore":
		intp.settings.IgnoreErrors = b
	case "topology":
		intp.settings.PreserveTopology = b
	case "generalize":
		intp.settings.GeneralizeFirst = b
	default:
		return core.Error(core.ECONFIG, "unknown setting %q", name)
	}
	return nil
}

func onOff(v string) (bool, error) {
	switch strings.ToLower(v) {
	case "on", "true", "yes":
		return true, nil
	case "off", "false", "no":
		return false, nil
	}
	return false, core.Error(core.ECONFIG, "expected on|off, have %q", v)
}

func commandLines(commands charstring.CommandList) string {
	var b strings.Builder
	for i, c := range commands {
		if i > 0 {
			b.WriteByte('\n')
		}
		fmt.Fprintf(&b, "%3d %s", i, c)
	}
	return b.String()
}

// Report holds the encoded sizes of a program and its rewrites.
type Report struct {
	Input       int
	Generalized int
	Specialized int
}

func (r Report) String() string {
	return fmt.Sprintf("%d bytes in, %d generalized, %d specialized (%d saved)",
		r.Input, r.Generalized, r.Specialized, r.Input-r.Specialized)
}

// measure specializes commands and reports the encoded sizes.
func measure(commands charstring.CommandList, s Settings) (Report, charstring.CommandList, error) {
	r := Report{Input: charstring.EncodedLen(commands)}
	g, err := charstring.Generalize(commands, s.Options()...)
	if err != nil {
		return r, nil, err
	}
	r.Generalized = charstring.EncodedLen(g)
	sp, err := charstring.Specialize(commands, s.Options()...)
	if err != nil {
		return r, nil, err
	}
	r.Specialized = charstring.EncodedLen(sp)
	return r, sp, nil
}

func helpText(topic string) string {
	tracer().Infof("help %v", topic)
	switch strings.ToLower(topic) {
	case "set", "settings":
		return `
	set                   show current settings
	set ignore on|off     keep malformed commands as data
	set topology on|off   keep zero-length and mergeable segments
	set generalize on|off generalize input before specializing
	set maxstack <n>      operand stack limit for combined commands
	`
	case "ops", "operators":
		return `
	Path operators understood by the rewriters:
	rmoveto hmoveto vmoveto
	rlineto hlineto vlineto
	rrcurveto hhcurveto vvcurveto hvcurveto vhcurveto
	rcurveline rlinecurve
	hintmask and cntrmask take the following token as payload.
	Every other operator is passed through unchanged.
	`
	}
	return `
	<program>      specialize a charstring program, e.g. "10 20 rmoveto 30 0 rlineto"
	spec [program] specialize the program (default: the last one)
	gen [program]  generalize the program
	cmds [program] list the commands of the program
	size [program] show encoded sizes
	set ...        change settings (see "help set")
	help [topic]   topics: set, ops
	quit           leave the CLI
	`
}

func getOptArg(s []string, inx int) string {
	if len(s) > inx {
		return s[inx]
	}
	return ""
}
