package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/vancomm/minesweeper-board/internal/session"
)

var errQuit = errors.New("quit")

// Maps known commands to number of arguments
var commandNargs = map[string]int{
	"o": 2,
	"f": 2,
	"n": 1,
	"r": 0,
	"b": 0,
	"h": 0,
	"q": 0,
}

const usage = `commands:
  o <row> <col>  open a cell
  f <row> <col>  toggle a flag
  n <size>       new game (size: 7, 10, 12, 15, 20)
  r              give up and reveal the board
  b              best times
  h              this help
  q              quit`

func parseRowCol(twoStrings []string) (row int, col int, err error) {
	if row, err = strconv.Atoi(twoStrings[0]); err != nil {
		err = errors.New("row must be an int")
		return
	}
	if col, err = strconv.Atoi(twoStrings[1]); err != nil {
		err = errors.New("col must be an int")
		return
	}
	return
}

func (a *app) executeCommand(c string) error {
	parts := strings.Fields(c)
	if len(parts) == 0 {
		return nil
	}
	nargs, ok := commandNargs[parts[0]]
	if !ok {
		return errors.New("unknown command")
	}
	if nargs != len(parts)-1 {
		return errors.New("invalid number of arguments")
	}
	switch parts[0] {
	case "o", "f":
		row, col, err := parseRowCol(parts[1:])
		if err != nil {
			return err
		}
		return a.click(row, col, parts[0] == "f")
	case "n":
		size, err := strconv.Atoi(parts[1])
		if err != nil {
			return errors.New("size must be an int")
		}
		return a.sess.Restart(size)
	case "r":
		a.sess.Forfeit()
		return nil
	case "b":
		a.printBest()
		return nil
	case "h":
		fmt.Fprintln(a.out, usage)
		return nil
	case "q":
		return errQuit
	}
	return errors.New("invalid command")
}

func (a *app) click(row, col int, flag bool) error {
	out, err := a.sess.Click(row, col, flag)
	if err != nil {
		return err
	}
	if out.State == session.Won {
		elapsed := a.sess.Elapsed()
		size := a.sess.Grid().Size()
		if a.best.Submit(size, elapsed, a.nick) {
			fmt.Fprintf(a.out, "new best time for %dx%d: %s\n",
				size, size, session.FormatElapsed(elapsed))
		}
	}
	return nil
}
