package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"fortio.org/log"
	"git.sr.ht/~sircmpwn/getopt"
	"github.com/mattn/go-isatty"

	"github.com/zephyrtronium/calc"
)

const usage = `usage: calc [-cCdh] [-D name=value]... [-e expr]

  -c             color error lines
  -C             never color error lines
  -d             debug logging to stderr
  -D name=value  define a variable before reading input (any number of times)
  -e expr        evaluate expr, print the result, and exit
  -h             show this help
`

func main() {
	log.SetDefaultsForClientTools()
	log.SetLogLevel(log.Warning)

	opts, optind, err := getopt.Getopts(os.Args, "cCdD:e:h")
	if err != nil {
		fmt.Fprint(os.Stderr, usage)
		log.Fatalf("%v", err)
	}
	if optind < len(os.Args) {
		fmt.Fprint(os.Stderr, usage)
		log.Fatalf("unexpected arguments: %q", os.Args[optind:])
	}
	var (
		with []string
		expr *string
	)
	colorize := isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
	for _, opt := range opts {
		switch opt.Option {
		case 'c':
			colorize = true
		case 'C':
			colorize = false
		case 'd':
			log.SetLogLevel(log.Debug)
		case 'D':
			with = append(with, opt.Value)
		case 'e':
			v := opt.Value
			expr = &v
		case 'h':
			fmt.Print(usage)
			return
		}
	}

	env := calc.NewEnv()
	for _, d := range with {
		if err := define(env, d); err != nil {
			log.Fatalf("%v", err)
		}
	}

	s := calc.NewSession(env, calc.Colorize(colorize))
	if expr != nil {
		r, err := s.Exec(*expr)
		if err != nil {
			fmt.Println("Error: " + err.Error())
			os.Exit(1)
		}
		fmt.Println(calc.Format(r))
		return
	}
	if err := s.Run(context.Background(), os.Stdin, os.Stdout); err != nil {
		log.Fatalf("%v", err)
	}
}

// define evaluates the value of a name=value definition and sets it in env.
// The value is an expression, not an assignment.
func define(env *calc.Env, def string) error {
	d := strings.SplitN(def, "=", 2)
	if len(d) != 2 {
		return fmt.Errorf(`variable definitions must be "name=value", not %q`, def)
	}
	nm, vl := strings.TrimSpace(d[0]), strings.TrimSpace(d[1])
	r, err := calc.Eval(calc.Tokenize(vl), env)
	if err != nil {
		return fmt.Errorf("setting %s: %w", nm, err)
	}
	env.Set(nm, r)
	log.Debugf("defined %s = %v", nm, r)
	return nil
}
