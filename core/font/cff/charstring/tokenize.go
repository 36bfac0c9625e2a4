package charstring

import (
	"github.com/emirpasic/gods/lists/arraylist"
)

// ToCommands groups the tokens of a program into commands.
//
// Operands are collected until an operator follows; the operator then becomes
// a command with the collected operands as arguments. A mask operator
// (hintmask, cntrmask) is special: pending operands are emitted as a data
// command first, then the mask operator without arguments, then a data
// command holding the token following the mask operator. Operands left over
// at the end of the program become a final data command.
//
// If a mask operator is the last token of p, ToCommands returns an error
// wrapping ErrTruncatedMask.
func ToCommands(p Program) (CommandList, error) {
	commands := make(CommandList, 0, len(p)/2+1)
	operands := arraylist.New()
	for i := 0; i < len(p); i++ {
		token := p[i]
		if !token.IsOperator() {
			operands.Add(token)
			continue
		}
		if token.op.IsMask() {
			if !operands.Empty() {
				commands = append(commands, Command{Op: NoOp, Args: drain(operands)})
			}
			if i+1 == len(p) {
				tracer().Errorf("%s is last token of program", token.op)
				return nil, errCharstring(&StructuralError{Op: token.op, Pos: i, Err: ErrTruncatedMask})
			}
			commands = append(commands, Command{Op: token.op, Args: []Token{}})
			i++
			commands = append(commands, Command{Op: NoOp, Args: []Token{p[i]}})
			continue
		}
		commands = append(commands, Command{Op: token.op, Args: drain(operands)})
	}
	if !operands.Empty() {
		commands = append(commands, Command{Op: NoOp, Args: drain(operands)})
	}
	return commands, nil
}

// drain moves the operands collected so far into a fresh slice.
func drain(operands *arraylist.List) []Token {
	args := make([]Token, 0, operands.Size())
	operands.Each(func(_ int, v interface{}) {
		args = append(args, v.(Token))
	})
	operands.Clear()
	return args
}

// ToProgram flattens commands into a program. It is the inverse of ToCommands.
func ToProgram(commands CommandList) Program {
	n := 0
	for _, c := range commands {
		n += len(c.Args) + 1
	}
	p := make(Program, 0, n)
	for _, c := range commands {
		p = append(p, c.Args...)
		if c.Op != NoOp {
			p = append(p, Op(c.Op))
		}
	}
	return p
}
