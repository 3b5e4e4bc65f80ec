package engine

// ConcludeLoss ends the match in the opponent's favour. The human's final
// action must already be recorded; it stays unanswered.
func (s *MatchState) ConcludeLoss(o RoundOutcome) {
	s.Result = ResultComputerWin
	s.LossReason = lossReasonFor(o)
	s.Unanswered = true
	s.Phase = PhaseConcluded
}

// ConcludeHumanWin ends the match in the human's favour. Both the human's
// feint and the opponent's parry must already be recorded.
func (s *MatchState) ConcludeHumanWin() {
	s.Result = ResultHumanWin
	s.LossReason = LossNone
	s.Unanswered = false
	s.Phase = PhaseConcluded
}

// IsFeintPunished reports whether a human feint drew a parry from the
// opponent. That exchange is an outright human win.
func IsFeintPunished(human, opponent Action) bool {
	return human.Feint && opponent.Base() == MoveParryRiposte
}
