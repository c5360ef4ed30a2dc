package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/alecthomas/repr"

	"github.com/zephyrtronium/parseva"
	"github.com/zephyrtronium/parseva/syntax"
)

// printer shows the results of parsed expressions.
type printer struct {
	// verb formats results, including the trailing newline.
	verb string
	// echo, tree, and dump select the extra representations to print
	// before each result.
	echo, tree, dump bool
	opts             []parseva.BuildOption
}

func (p *printer) show(w io.Writer, e *syntax.Expr) error {
	n, err := parseva.Build(e, p.opts...)
	if err != nil {
		return err
	}
	if p.tree {
		t, err := parseva.BuildTree(e)
		if err != nil {
			return err
		}
		if err := parseva.Fprint(w, t.Root()); err != nil {
			return err
		}
	}
	if p.dump {
		fmt.Fprintln(w, repr.String(n, repr.Indent("  ")))
	}
	if p.echo {
		fmt.Fprintf(w, "%v : ", n)
	}
	_, err = fmt.Fprintf(w, p.verb, parseva.Eval(n))
	return err
}

// repl prompts for one expression per line and shows each result, until a
// blank line or the end of the input. Errors in expressions are printed and
// do not end the loop.
func (p *printer) repl(in io.Reader, out io.Writer) error {
	sc := bufio.NewScanner(in)
	for {
		fmt.Fprint(out, "> ")
		if !sc.Scan() {
			return sc.Err()
		}
		line := sc.Text()
		if strings.TrimSpace(line) == "" {
			return nil
		}
		e, err := syntax.ParseString(line)
		if err == nil {
			err = p.show(out, e)
		}
		if err != nil {
			fmt.Fprintln(out, err)
		}
		fmt.Fprintln(out)
	}
}
