package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"runtime/debug"
	"strings"

	"github.com/zephyrtronium/parseva"
	"github.com/zephyrtronium/parseva/syntax"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("parseva: ")
	var (
		inname, verb      string
		nl, echo, verbose bool
		interactive, ver  bool
		p                 printer
	)
	flag.StringVar(&inname, "in", "", "input file (default stdin if no args given)")
	flag.StringVar(&verb, "fmt", "= %f", "result formatting string")
	flag.BoolVar(&nl, "n", false, "parse separate input lines as separate expressions")
	flag.BoolVar(&echo, "echo", false, "print bracketed parse trees")
	flag.BoolVar(&p.tree, "tree", false, "draw syntax trees")
	flag.BoolVar(&p.dump, "ast", false, "dump typed syntax trees")
	flag.BoolVar(&interactive, "i", false, "prompt for expressions until a blank line")
	flag.BoolVar(&verbose, "v", false, "log calls to unknown functions")
	flag.BoolVar(&ver, "version", false, "print version information and exit")
	flag.Parse()
	if ver {
		fmt.Println("parseva", version())
		return
	}
	p.verb = verb + "\n"
	p.echo = echo
	if verbose {
		p.opts = append(p.opts, parseva.WithLogger(log.Default()))
	}

	if interactive {
		if err := p.repl(os.Stdin, os.Stdout); err != nil {
			log.Fatal(err)
		}
		return
	}

	var ins []io.RuneScanner
	f, err := infile(inname, flag.NArg() == 0)
	if err != nil {
		log.Fatal(err)
	}
	if f != nil {
		ins = append(ins, f)
	}
	for _, arg := range flag.Args() {
		ins = append(ins, strings.NewReader(arg))
	}

	var es []*syntax.Expr
	var opts []syntax.ParseOption
	if nl {
		opts = append(opts, syntax.StopOn('\n'))
	}
	for _, in := range ins {
		for {
			// First check whether we're done with the input.
			if _, _, err := in.ReadRune(); err != nil {
				if err == io.EOF {
					break
				}
				log.Fatal(err)
			}
			in.UnreadRune()
			e, err := syntax.Parse(in, opts...)
			if err != nil {
				log.Fatal(err)
			}
			es = append(es, e)
		}
	}

	for _, e := range es {
		if err := p.show(os.Stdout, e); err != nil {
			fmt.Println(err)
		}
	}
}

func infile(inname string, std bool) (io.RuneScanner, error) {
	var f *os.File
	switch {
	case inname != "" && inname != "-":
		in, err := os.Open(inname)
		if err != nil {
			return nil, err
		}
		f = in
	case inname == "-", std:
		f = os.Stdin
	}
	if f == nil {
		return nil, nil
	}
	return bufio.NewReader(f), nil
}

func version() string {
	info, ok := debug.ReadBuildInfo()
	if !ok || info.Main.Version == "" {
		return "(devel)"
	}
	return info.Main.Version
}
