package engine

import "testing"

func TestConcludeLoss(t *testing.T) {
	cases := []struct {
		outcome RoundOutcome
		reason  LossReason
	}{
		{OutcomeInvalidCounter, LossInvalidCounter},
		{OutcomeParriedFeint, LossParriedFeint},
	}
	for _, c := range cases {
		st := NewMatchState()
		st.Reset(PersonalityAggressive)
		st.RecordHuman(Plain(MoveLunge))
		st.RecordOpponent(Plain(MoveStophit))
		st.RecordHuman(Plain(MoveDistance))
		st.ConcludeLoss(c.outcome)

		if !st.IsConcluded() {
			t.Errorf("%v: not concluded", c.outcome)
		}
		if st.Result != ResultComputerWin || st.LossReason != c.reason {
			t.Errorf("%v: result %v/%v, want ComputerWin/%v", c.outcome, st.Result, st.LossReason, c.reason)
		}
		if !st.Unanswered || !st.HistoryBalanced() {
			t.Errorf("%v: unanswered final move not tracked", c.outcome)
		}
	}
}

func TestConcludeHumanWin(t *testing.T) {
	st := NewMatchState()
	st.Reset(PersonalityAggressive)
	st.RecordHuman(Feinted(MoveStophit))
	st.RecordOpponent(Plain(MoveParryRiposte))
	st.ConcludeHumanWin()
	if st.Result != ResultHumanWin || st.LossReason != LossNone || !st.IsConcluded() {
		t.Errorf("unexpected state %+v", st)
	}
	if !st.HistoryBalanced() {
		t.Error("histories should be balanced after a human win")
	}
}

func TestIsFeintPunished(t *testing.T) {
	cases := []struct {
		human, opp Action
		want       bool
	}{
		{Feinted(MoveStophit), Plain(MoveParryRiposte), true},
		{Feinted(MoveStophit), Feinted(MoveParryRiposte), true},
		{Plain(MoveStophit), Plain(MoveParryRiposte), false},
		{Feinted(MoveStophit), Plain(MoveStophit), false},
	}
	for _, c := range cases {
		if got := IsFeintPunished(c.human, c.opp); got != c.want {
			t.Errorf("IsFeintPunished(%v, %v) = %v, want %v", c.human, c.opp, got, c.want)
		}
	}
}
