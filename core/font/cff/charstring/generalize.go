package charstring

// Generalize decomposes every composite path operator of commands into
// rmoveto, rlineto and rrcurveto commands with a single segment each.
// Commands with operators outside the path construction set are passed
// through unchanged, as are data commands.
//
// If a command has the wrong number of arguments, Generalize fails with an
// error wrapping ErrArity, unless option IgnoreErrors(true) is given. In
// this case the command is kept as two data commands: its arguments and its
// operator name. Other options are ignored.
//
// Generalize is idempotent.
func Generalize(commands CommandList, opts ...Option) (CommandList, error) {
	conf, err := makeConfig(opts)
	if err != nil {
		return nil, err
	}
	return generalize(commands, conf.ignoreErrors)
}

func generalize(commands CommandList, ignoreErrors bool) (CommandList, error) {
	result := make(CommandList, 0, len(commands))
	for i, c := range commands {
		rule := rewriteTable[c.Op.kind()]
		if rule == nil {
			result = append(result, c)
			continue
		}
		var canonical CommandList
		var err error
		args, ok := c.values()
		if !ok {
			err = ErrArity
		} else {
			canonical, err = rule(args)
		}
		if err != nil {
			if !ignoreErrors {
				tracer().Errorf("cannot generalize %s at %d", c, i)
				return nil, errCharstring(&StructuralError{Op: c.Op, Pos: i, Nargs: len(c.Args), Err: err})
			}
			tracer().Debugf("keeping malformed %s at %d as data", c, i)
			result = append(result,
				Command{Op: NoOp, Args: c.Args},
				Command{Op: NoOp, Args: []Token{Op(c.Op)}},
			)
			continue
		}
		result = append(result, canonical...)
	}
	tracer().Debugf("generalized %d commands into %d", len(commands), len(result))
	return result, nil
}

// GeneralizeProgram is Generalize for programs.
func GeneralizeProgram(p Program, opts ...Option) (Program, error) {
	commands, err := ToCommands(p)
	if err != nil {
		return nil, err
	}
	if commands, err = Generalize(commands, opts...); err != nil {
		return nil, err
	}
	return ToProgram(commands), nil
}
