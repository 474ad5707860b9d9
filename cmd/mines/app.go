package main

import (
	"fmt"
	"io"
	"iter"
	"strings"

	"github.com/vancomm/minesweeper-board/internal/session"
)

type app struct {
	sess *session.Session
	best *session.Leaderboard
	nick string
	out  io.Writer
}

func newApp(sess *session.Session, nick string, out io.Writer) *app {
	return &app{
		sess: sess,
		best: session.NewLeaderboard(),
		nick: nick,
		out:  out,
	}
}

func (a *app) printBoard() {
	g := a.sess.Grid()
	var b strings.Builder

	fmt.Fprint(&b, "   ")
	for col := range g.Size() {
		fmt.Fprintf(&b, "%d ", col%10)
	}
	fmt.Fprint(&b, "\n")
	for row, line := range byPiece(strings.TrimSuffix(g.String(), "\n"), "\n") {
		fmt.Fprintf(&b, "%2d %s\n", row, line)
	}
	fmt.Fprintf(&b, "mines: %d  time: %s  %s\n",
		a.sess.MinesLeft(), session.FormatElapsed(a.sess.Elapsed()), a.sess.State())

	fmt.Fprint(a.out, b.String())
}

func (a *app) printBest() {
	entries := a.best.Entries()
	if len(entries) == 0 {
		fmt.Fprintln(a.out, "no records yet, be the first winner!")
		return
	}
	for _, r := range entries {
		fmt.Fprintln(a.out, r)
	}
}

func byPiece(s string, sep string) iter.Seq2[int, string] {
	return func(yield func(int, string) bool) {
		i := 0
		found := true
		var piece string
		for found {
			piece, s, found = strings.Cut(s, sep)
			if !yield(i, piece) {
				return
			}
			i += 1
		}
	}
}
