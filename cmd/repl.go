package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/ytplayer/internal/console"
	"github.com/desertthunder/ytplayer/internal/shared"
	"github.com/urfave/cli/v3"
	"golang.org/x/term"
)

const (
	welcome  = "Hello and welcome to YouTube, what would you like to do?\nEnter HELP for list of available commands or EXIT to terminate.\n"
	farewell = "YouTube has now terminated its execution. Thank you and goodbye!\n"
)

// REPL reads console commands line by line until EXIT or end of input.
func (r *Runner) REPL(ctx context.Context, cmd *cli.Command) error {
	videos, err := r.openCatalog()
	if err != nil {
		return fmt.Errorf("failed to load catalog: %w", err)
	}

	logger := shared.WithLogger(r.logger, "session", shared.GenerateID())
	logger.Debug("catalog loaded", "source", r.config.Catalog.Source, "videos", videos.Len())

	c := console.New(console.Options{
		Catalog:  videos,
		Random:   r.random,
		Output:   r.output,
		Logger:   logger,
		Observer: r.metrics,
	})

	session := &replSession{
		runner:  r,
		console: c,
		logger:  logger,
		lines:   bufio.NewScanner(r.input),
		prompt:  r.config.Console.Prompt,
		echo:    r.interactive(),
	}

	if err := r.writePlain(welcome); err != nil {
		return err
	}
	if err := session.run(ctx); err != nil {
		return err
	}
	if err := r.writePlain(farewell); err != nil {
		return err
	}

	summary, err := r.metrics.SummaryKV()
	if err != nil {
		logger.Warn("failed to gather command metrics", "error", err)
		return nil
	}
	logger.Info("session finished", summary...)
	return nil
}

// interactive reports whether input is a terminal, in which case the prompt is printed.
func (r *Runner) interactive() bool {
	f, ok := r.input.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

type replSession struct {
	runner  *Runner
	console *console.Console
	logger  *log.Logger
	lines   *bufio.Scanner
	prompt  string
	echo    bool
}

func (s *replSession) run(ctx context.Context) error {
	for {
		line, ok := s.readLine()
		if !ok {
			break
		}
		if line == "" {
			continue
		}

		exit, err := s.dispatch(ctx, line)
		if err != nil {
			return err
		}
		if exit {
			return nil
		}
	}

	if err := s.lines.Err(); err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}
	return nil
}

func (s *replSession) readLine() (string, bool) {
	if s.echo {
		s.runner.writePlain("%s", s.prompt)
	}
	if !s.lines.Scan() {
		return "", false
	}
	return strings.TrimSpace(s.lines.Text()), true
}

// dispatch runs one input line as a single-command cli tree. Arguments are split by the command's arity first, so a
// multi-word playlist name reaches the action as one argument.
func (s *replSession) dispatch(ctx context.Context, line string) (bool, error) {
	tokens := strings.Fields(line)

	spec, ok := console.Lookup(tokens[0])
	if !ok {
		s.logger.Debug("unknown command", "input", tokens[0])
		return false, s.console.Unknown(tokens[0])
	}
	if spec.Name == console.CmdExit {
		return true, nil
	}

	args, ok := spec.SplitArgs(tokens[1:])
	if !ok {
		return false, s.console.Usage(spec)
	}

	s.logger.Debug("command", "name", spec.Name, "args", args)

	command := &cli.Command{
		Name:            spec.Name,
		Usage:           spec.Usage,
		HideHelp:        true,
		SkipFlagParsing: true,
		Writer:          s.runner.output,
		Action:          s.action(spec.Name),
	}
	return false, command.Run(ctx, append([]string{spec.Name}, args...))
}

func (s *replSession) action(name string) cli.ActionFunc {
	c := s.console

	return func(ctx context.Context, cmd *cli.Command) error {
		args := cmd.Args()

		switch name {
		case console.CmdNumberOfVideos:
			return c.NumberOfVideos()
		case console.CmdShowAllVideos:
			return c.ShowAllVideos()
		case console.CmdPlay:
			return c.Play(args.Get(0))
		case console.CmdPlayRandom:
			return c.PlayRandom()
		case console.CmdStop:
			return c.Stop()
		case console.CmdPause:
			return c.Pause()
		case console.CmdContinue:
			return c.Continue()
		case console.CmdShowPlaying:
			return c.ShowPlaying()
		case console.CmdCreatePlaylist:
			return c.CreatePlaylist(args.Get(0))
		case console.CmdAddToPlaylist:
			return c.AddToPlaylist(args.Get(0), args.Get(1))
		case console.CmdRemoveFromPlaylist:
			return c.RemoveFromPlaylist(args.Get(0), args.Get(1))
		case console.CmdClearPlaylist:
			return c.ClearPlaylist(args.Get(0))
		case console.CmdDeletePlaylist:
			return c.DeletePlaylist(args.Get(0))
		case console.CmdShowPlaylist:
			return c.ShowPlaylist(args.Get(0))
		case console.CmdShowAllPlaylists:
			return c.ShowAllPlaylists()
		case console.CmdExportPlaylist:
			return c.ExportPlaylist(args.Get(0))
		case console.CmdSearchVideos:
			results, err := c.SearchVideos(args.Get(0))
			if err != nil || len(results) == 0 {
				return err
			}
			answer, _ := s.readLine()
			return c.PlayResult(results, answer)
		case console.CmdSearchVideosTag:
			results, err := c.SearchVideosTag(args.Get(0))
			if err != nil || len(results) == 0 {
				return err
			}
			answer, _ := s.readLine()
			return c.PlayResult(results, answer)
		case console.CmdHelp:
			return c.Help()
		default:
			return c.Unknown(name)
		}
	}
}
