// internal/game/summary.go
package game

import (
	"fmt"
	"strings"

	engine "github.com/C8d9/Fencing-Game/engine"
)

// Summary is the end-of-bout report shown to the human.
type Summary struct {
	Result     engine.MatchResult
	LossReason engine.LossReason
	Headline   string   // e.g. "You win!"
	Lines      []string // one "n> human:opponent" line per round
}

// String renders the headline followed by the numbered round list.
func (s Summary) String() string {
	var sb strings.Builder
	sb.WriteString(s.Headline)
	for _, l := range s.Lines {
		sb.WriteByte('\n')
		sb.WriteString(l)
	}
	return sb.String()
}

// unansweredMarker stands in for the opponent move of an unanswered final round.
const unansweredMarker = "--"

func summarize(st *engine.MatchState) Summary {
	s := Summary{Result: st.Result, LossReason: st.LossReason}
	s.Headline = headline(st)

	for i, h := range st.HumanMoves {
		reply := unansweredMarker
		if i < len(st.OpponentMoves) {
			reply = st.OpponentMoves[i].String()
		}
		s.Lines = append(s.Lines, fmt.Sprintf("%d> %s:%s", i+1, h, reply))
	}
	return s
}

func headline(st *engine.MatchState) string {
	switch st.Result {
	case engine.ResultHumanWin:
		return "You win!"
	case engine.ResultComputerWin:
		if st.LossReason == engine.LossInvalidCounter {
			h, _ := st.LastHuman()
			o, _ := st.LastOpponent()
			return fmt.Sprintf("You lose :(\n%s cannot counter %s", h, o)
		}
		return "You lose :(\nYou fell for the computer's feint"
	default:
		return ""
	}
}
