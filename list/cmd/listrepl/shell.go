package main

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/cespare/listnode/list"
	"github.com/dustin/go-humanize"
	"github.com/kr/pretty"
	"go.uber.org/zap"
)

var errEmpty = errors.New("list is empty")

type shell struct {
	l     *list.List
	delim string
	out   io.Writer
	lggr  *zap.SugaredLogger
}

func newShell(out io.Writer, delim string, lggr *zap.SugaredLogger) *shell {
	return &shell{
		l:     new(list.List),
		delim: delim,
		out:   out,
		lggr:  lggr,
	}
}

type command struct {
	usage string
	nargs int // -1 means any number
	run   func(s *shell, args []int) error
}

var commands = map[string]command{
	"load": {"load v...", -1, func(s *shell, args []int) error {
		s.l.Clear()
		s.l = list.NewList(args...)
		return s.show()
	}},
	"append": {"append v...", -1, func(s *shell, args []int) error {
		for _, v := range args {
			s.l.Append(v)
		}
		return s.show()
	}},
	"push": {"push v", 1, func(s *shell, args []int) error {
		s.l.Push(args[0])
		return s.show()
	}},
	"insert": {"insert v pos", 2, func(s *shell, args []int) error {
		var err error
		if head := s.l.Head(); head == nil {
			err = s.l.Insert(args[0], args[1])
		} else {
			err = head.InsertValue(args[0], args[1])
		}
		if err != nil {
			return err
		}
		return s.show()
	}},
	"link": {"link pos v", 2, func(s *shell, args []int) error {
		head := s.l.Head()
		if head == nil {
			return errEmpty
		}
		if err := head.LinkAt(args[0], list.New(args[1])); err != nil {
			return err
		}
		return s.show()
	}},
	"remove": {"remove pos", 1, func(s *shell, args []int) error {
		if err := s.l.Remove(args[0]); err != nil {
			return err
		}
		return s.show()
	}},
	"merge": {"merge v...", -1, func(s *shell, args []int) error {
		s.l = s.l.Merge(list.NewList(args...))
		return s.show()
	}},
	"seq": {"seq n", 1, func(s *shell, args []int) error {
		for i := 1; i <= args[0]; i++ {
			s.l.Append(i)
		}
		_, err := fmt.Fprintf(s.out, "appended %s values\n", humanize.Comma(int64(max(args[0], 0))))
		return err
	}},
	"size": {"size", 0, func(s *shell, _ []int) error {
		_, err := fmt.Fprintln(s.out, s.l.Head().Size())
		return err
	}},
	"len": {"len", 0, func(s *shell, _ []int) error {
		_, err := fmt.Fprintf(s.out, "%s elements\n", humanize.Comma(int64(s.l.Len())))
		return err
	}},
	"show": {"show", 0, func(s *shell, _ []int) error {
		return s.show()
	}},
	"dump": {"dump", 0, func(s *shell, _ []int) error {
		_, err := pretty.Fprintf(s.out, "%# v\n", list.ToSlice(s.l.Head()))
		return err
	}},
	"clear": {"clear", 0, func(s *shell, _ []int) error {
		s.l.Clear()
		return s.show()
	}},
}

func (s *shell) show() error {
	_, err := fmt.Fprintln(s.out, s.l.Format(s.delim))
	return err
}

func (s *shell) help() error {
	names := make([]string, 0, len(commands))
	for name := range commands {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		if _, err := fmt.Fprintln(s.out, "  "+commands[name].usage); err != nil {
			return err
		}
	}
	return nil
}

// exec runs a single command line. Blank lines are ignored.
func (s *shell) exec(line string) error {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil
	}
	name := fields[0]
	if name == "help" {
		return s.help()
	}
	cmd, ok := commands[name]
	if !ok {
		return fmt.Errorf("unknown command %q (try help)", name)
	}
	args, err := parseInts(fields[1:])
	if err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	if cmd.nargs >= 0 && len(args) != cmd.nargs {
		return fmt.Errorf("usage: %s", cmd.usage)
	}
	s.lggr.Debugw("Running command", "command", name, "args", args)
	return cmd.run(s, args)
}

func parseInts(fields []string) ([]int, error) {
	args := make([]int, len(fields))
	for i, f := range fields {
		n, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("bad integer %q", f)
		}
		args[i] = n
	}
	return args, nil
}
