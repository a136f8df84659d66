package main

import (
	"bufio"
	"fmt"
	"io"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/robalobadob/boggle/apps/go-server/internal/board"
	"github.com/robalobadob/boggle/apps/go-server/internal/game"
)

func playCmd() *cobra.Command {
	var (
		seed    uint64
		seconds int
		lenient bool
	)
	cmd := &cobra.Command{
		Use:   "play",
		Short: "Play one round in the terminal",
		RunE: func(cmd *cobra.Command, args []string) error {
			dict, err := loadDictionary(cfg.WordsFile)
			if err != nil {
				return err
			}
			var rng *rand.Rand
			if seed != 0 {
				rng = rand.New(rand.NewPCG(seed, seed))
			}
			round := cfg.Round()
			if seconds > 0 {
				round = time.Duration(seconds) * time.Second
			}
			sess := game.New(board.NewGenerator(rng), dict, game.Options{
				Round:         round,
				SkipPathCheck: lenient || !cfg.RequirePath,
			})
			return play(cmd.InOrStdin(), cmd.OutOrStdout(), sess)
		},
	}
	cmd.Flags().Uint64Var(&seed, "seed", 0, "seed for a reproducible board (0 = random)")
	cmd.Flags().IntVar(&seconds, "seconds", 0, "round length in seconds (default ROUND_SECONDS)")
	cmd.Flags().BoolVar(&lenient, "lenient", false, "accept dictionary words without tracing them on the board")
	return cmd
}

// play reads one submission per line until EOF or ":quit".
//
//	:shuffle  new board and clock
//	:board    print the board again
func play(in io.Reader, out io.Writer, sess *game.Session) error {
	printBoard(out, sess)
	sc := bufio.NewScanner(in)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		switch line {
		case "":
			continue
		case ":quit", ":q":
			printSummary(out, sess)
			return nil
		case ":shuffle":
			sess.Reset()
			printBoard(out, sess)
			continue
		case ":board":
			printBoard(out, sess)
			continue
		}
		res := sess.Submit(line)
		fmt.Fprintln(out, res.Message())
		if res.Outcome != game.OutcomeExpired {
			fmt.Fprintln(out, timeLeft(sess.Remaining()))
		}
	}
	printSummary(out, sess)
	return sc.Err()
}

func printBoard(out io.Writer, sess *game.Session) {
	fmt.Fprintf(out, "\n%s\n%s\n", sess.Board(), timeLeft(sess.Remaining()))
}

func printSummary(out io.Writer, sess *game.Session) {
	fmt.Fprintln(out, "Words found:")
	for _, e := range sess.Words() {
		fmt.Fprintf(out, "  %-16s +%d\n", e.Word, e.Points)
	}
	fmt.Fprintf(out, "Total Score: %d\n", sess.TotalScore())
}

func timeLeft(d time.Duration) string {
	if d <= 0 {
		return "Time is up!"
	}
	secs := int(d / time.Second)
	return fmt.Sprintf("Time left: %02d:%02d", secs/60, secs%60)
}
