// Package uci is a minimal stub protocol adapter: a line-based command
// loop over the engine package's API, in the spirit of the teacher's
// UCI loop (uci/protocol.go's Handle method dispatching on the first
// field of each line) but trimmed to the handful of commands spec.md
// section 6 actually names. A full UGI implementation — option
// negotiation, pondering, multi-PV — is out of scope per spec.md's
// Non-goals; this package exists to show the core is reachable from a
// text protocol, not to be one.
package uci

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/eclypse-prime/pijersi-rs/engine"

	c "github.com/eclypse-prime/pijersi-rs/common"
)

// Protocol drives an engine.Engine from line-oriented text commands.
type Protocol struct {
	eng *engine.Engine
	out io.Writer
}

// New wraps eng in a Protocol writing engine output to out.
func New(eng *engine.Engine, out io.Writer) *Protocol {
	return &Protocol{eng: eng, out: out}
}

// Run reads commands from in until EOF or a "quit" line.
func (proto *Protocol) Run(ctx context.Context, in io.Reader) error {
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if line == "quit" {
			return nil
		}
		if err := proto.handle(ctx, line); err != nil {
			fmt.Fprintf(proto.out, "error %v\n", err)
		}
	}
	return scanner.Err()
}

func (proto *Protocol) handle(ctx context.Context, line string) error {
	fields := strings.Fields(line)
	command, args := fields[0], fields[1:]

	switch command {
	case "position":
		return proto.handlePosition(args)
	case "move":
		if len(args) != 1 {
			return fmt.Errorf("usage: move <a1b2[c3]>")
		}
		return proto.eng.ApplyMoveString(args[0])
	case "go":
		return proto.handleGo(ctx, args)
	case "stop":
		proto.eng.Stop()
		return nil
	case "query":
		return proto.handleQuery(args)
	default:
		return fmt.Errorf("unknown command %q", command)
	}
}

func (proto *Protocol) handlePosition(args []string) error {
	if len(args) == 0 {
		proto.eng.SetPosition(c.NewInitialPosition())
		return nil
	}
	p, err := c.ParsePSN(strings.Join(args, " "))
	if err != nil {
		return err
	}
	proto.eng.SetPosition(p)
	return nil
}

func (proto *Protocol) handleGo(ctx context.Context, args []string) error {
	var limit c.Limit
	for i := 0; i+1 < len(args); i += 2 {
		value, err := strconv.Atoi(args[i+1])
		if err != nil {
			return fmt.Errorf("bad value for %s: %v", args[i], err)
		}
		switch args[i] {
		case "depth":
			limit.Depth = value
		case "movetime":
			limit.MoveTime = value
		default:
			return fmt.Errorf("unknown go option %q", args[i])
		}
	}

	result := proto.eng.Go(ctx, limit, func(info c.SearchInfo) {
		fmt.Fprintf(proto.out, "info depth %d time %.3f pv %s\n",
			info.DepthReached, float64(info.ElapsedMS)/1000, joinMoves(info.PV))
	})
	fmt.Fprintf(proto.out, "bestmove %s\n", result.BestMove)
	return nil
}

func (proto *Protocol) handleQuery(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("usage: query <gameover|result|islegal|fen> [arg]")
	}
	switch args[0] {
	case "gameover":
		fmt.Fprintf(proto.out, "%v\n", proto.eng.QueryGameOver())
	case "result":
		fmt.Fprintf(proto.out, "%v\n", proto.eng.QueryResult())
	case "islegal":
		if len(args) != 2 {
			return fmt.Errorf("usage: query islegal <move>")
		}
		fmt.Fprintf(proto.out, "%v\n", proto.eng.QueryIsLegal(args[1]))
	case "fen":
		fmt.Fprintf(proto.out, "%s\n", proto.eng.QueryFEN())
	default:
		return fmt.Errorf("unknown query %q", args[0])
	}
	return nil
}

func joinMoves(moves []c.Move) string {
	parts := make([]string, len(moves))
	for i, m := range moves {
		parts[i] = m.String()
	}
	return strings.Join(parts, " ")
}
