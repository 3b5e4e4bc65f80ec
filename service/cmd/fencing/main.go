package main

import (
	"bufio"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	engine "github.com/C8d9/Fencing-Game/engine"
	"github.com/C8d9/Fencing-Game/service/internal/config"
	"github.com/C8d9/Fencing-Game/service/internal/game"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: fencing [flags]\n")
		flag.PrintDefaults()
	}
	seed := flag.Uint64("seed", cfg.Seed, "random seed (0 derives one from the clock)")
	personality := flag.String("personality", "", "force the opponent personality (Aggressive|Defensive|Unpredictable)")
	transcript := flag.String("transcript", "", "write each match transcript to this path, numbered per match (bout.json -> bout-1.json, bout-2.json, ...)")
	replay := flag.String("replay", "", "replay a transcript file and exit")
	debug := flag.Bool("debug", false, "log at debug level")
	flag.Parse()

	if *debug {
		cfg.LogLevel = log.DebugLevel
	}
	if *personality != "" {
		p, err := config.ParsePersonality(*personality)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(2)
		}
		cfg.Personality = &p
	}
	cfg.Seed = *seed
	if cfg.Seed == 0 {
		cfg.Seed = uint64(time.Now().UnixNano())
	}
	cfg.ConfigureLogger()

	if *replay != "" {
		if err := replayFile(*replay, os.Stdout); err != nil {
			log.Error(err)
			os.Exit(1)
		}
		return
	}

	bout, err := game.NewBout(game.Options{Seed: cfg.Seed, Personality: cfg.Personality})
	if err != nil {
		log.Error(err)
		os.Exit(2)
	}
	s := &session{bout: bout, out: os.Stdout, transcriptPath: *transcript}
	log.WithField("seed", cfg.Seed).Debug("Random source seeded")
	s.run(os.Stdin)
}

// session drives one bout from a line-oriented reader.
type session struct {
	bout           *game.Bout
	out            io.Writer
	transcriptPath string
	match          int // 1-based number of the current match.
}

const helpText = `Enter a move, optionally prefixed with "Feint-" (e.g. "Lunge", "Feint-Stophit").
Moves: %s
Commands: restart, history, view, personality, help, quit
`

func (s *session) run(in io.Reader) {
	s.bout.OnBoutEnd = func(_ uuid.UUID, summary game.Summary) {
		fmt.Fprintf(s.out, "\n%s\n\nType restart to play again or quit to exit.\n", summary)
	}
	s.startMatch()
	fmt.Fprintf(s.out, helpText, moveList())

	sc := bufio.NewScanner(in)
	for {
		fmt.Fprint(s.out, "> ")
		if !sc.Scan() {
			break
		}
		line := strings.TrimSpace(sc.Text())
		switch strings.ToLower(line) {
		case "":
			continue
		case "quit", "exit":
			s.saveTranscript()
			return
		case "help":
			fmt.Fprintf(s.out, helpText, moveList())
		case "restart":
			s.saveTranscript()
			s.startMatch()
			fmt.Fprintln(s.out, "New bout.")
		case "history":
			h, o := s.bout.History()
			for i := range h {
				reply := "--"
				if i < len(o) {
					reply = o[i].String()
				}
				fmt.Fprintf(s.out, "%d> %s:%s\n", i+1, h[i], reply)
			}
		case "personality":
			fmt.Fprintln(s.out, s.bout.Personality())
		case "view":
			data, _ := json.MarshalIndent(s.bout.View(), "", "  ")
			fmt.Fprintln(s.out, string(data))
		default:
			s.play(line)
		}
	}
	if err := sc.Err(); err != nil {
		log.WithError(err).Error("Reading input")
	}
	s.saveTranscript()
}

func (s *session) play(line string) {
	res, err := s.bout.SubmitMove(line)
	if err != nil {
		fmt.Fprintln(s.out, "The bout is over. Type restart to play again.")
		return
	}
	switch res.Outcome {
	case engine.OutcomeInvalidInput:
		fmt.Fprintf(s.out, "%q is not a move. Type help for the list.\n", line)
	case engine.OutcomeValid:
		if res.Opponent != nil && !res.Concluded() {
			fmt.Fprintf(s.out, "Computer: %s\n", res.Opponent)
		}
	}
}

func (s *session) startMatch() {
	s.bout.Restart()
	s.match++
}

// transcriptFile numbers the configured path by match so restarts never
// overwrite an earlier match.
func (s *session) transcriptFile() string {
	ext := filepath.Ext(s.transcriptPath)
	base := strings.TrimSuffix(s.transcriptPath, ext)
	return fmt.Sprintf("%s-%d%s", base, s.match, ext)
}

func (s *session) saveTranscript() {
	if s.transcriptPath == "" || s.bout.Phase() == engine.PhaseIdle {
		return
	}
	data, err := s.bout.Transcript().MarshalJSON()
	if err != nil {
		log.WithError(err).Error("Encoding transcript")
		return
	}
	if err := os.WriteFile(s.transcriptFile(), data, 0o644); err != nil {
		log.WithError(err).Error("Writing transcript")
	}
}

func replayFile(path string, out io.Writer) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	t, err := game.DecodeTranscript(data)
	if err != nil {
		return err
	}
	b, err := game.Replay(t, game.Options{})
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "Replayed %d rounds from bout %s.\n", len(t.Rounds), t.BoutID)
	if b.Phase() == engine.PhaseConcluded {
		fmt.Fprintln(out, b.Summary())
	}
	return nil
}

func moveList() string {
	names := make([]string, 0, engine.NumMoves)
	for _, m := range engine.AllMoves() {
		names = append(names, m.String())
	}
	return strings.Join(names, ", ")
}
