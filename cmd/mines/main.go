package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/vancomm/minesweeper-board/internal/board"
	"github.com/vancomm/minesweeper-board/internal/config"
	"github.com/vancomm/minesweeper-board/internal/logging"
	"github.com/vancomm/minesweeper-board/internal/session"
)

var log = logrus.New()

func setupLogging(cfg *config.Config) {
	if err := logging.Setup(log, cfg.Level(), cfg.LogFile); err != nil {
		log.Fatal("unable to set up logging: ", err)
	}
	board.Log = log
	session.Log = log
}

func newRand(seed uint64) *rand.Rand {
	if seed == 0 {
		return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return rand.New(rand.NewPCG(seed, seed))
}

func readLines(ctx context.Context, lines chan<- string) {
	defer close(lines)
	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		select {
		case lines <- scanner.Text():
		case <-ctx.Done():
			return
		}
	}
	if err := scanner.Err(); err != nil {
		log.Error("unable to read input: ", err)
	}
}

func main() {
	mainCtx, stop := signal.NotifyContext(
		context.Background(),
		os.Interrupt, syscall.SIGTERM,
	)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("unable to load config: ", err)
	}

	setupLogging(cfg)

	log.Info("starting up, development = ", cfg.Development)
	log.WithFields(cfg.Fields()).Debug("config")

	sess, err := session.New(cfg.Size,
		session.WithRand(newRand(cfg.Seed)),
		session.WithDensity(cfg.Density),
	)
	if err != nil {
		log.Fatal("unable to start a game: ", err)
	}
	a := newApp(sess, cfg.Nick, os.Stdout)

	lines := make(chan string)
	go readLines(mainCtx, lines)

	g, gCtx := errgroup.WithContext(mainCtx)
	g.Go(func() error {
		defer stop()
		fmt.Fprintln(a.out, usage)
		a.printBoard()
		for {
			select {
			case <-gCtx.Done():
				return nil
			case line, ok := <-lines:
				if !ok {
					return nil
				}
				err := a.executeCommand(line)
				if errors.Is(err, errQuit) {
					return nil
				}
				if err != nil {
					fmt.Fprintln(a.out, "error:", err)
					continue
				}
				a.printBoard()
			}
		}
	})
	g.Go(func() error {
		<-gCtx.Done()
		log.Debug("shutting down")
		return nil
	})

	if err := g.Wait(); err != nil {
		log.Printf("exit reason: %s\n", err)
	}
}
