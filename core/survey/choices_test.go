package survey

import "testing"

func TestEvolutionChoice_Rank(t *testing.T) {
	tests := []struct {
		choice   EvolutionChoice
		wantRank int
		wantOk   bool
	}{
		{choice: Nascent, wantRank: 1, wantOk: true},
		{choice: Engaged, wantRank: 2, wantOk: true},
		{choice: Capable, wantRank: 3, wantOk: true},
		{choice: Effective, wantRank: 4, wantOk: true},
		{choice: ""},
		{choice: "nascent"},
		{choice: "LOL"},
	}
	for _, tt := range tests {
		t.Run(string(tt.choice), func(t *testing.T) {
			rank, ok := tt.choice.Rank()
			if rank != tt.wantRank || ok != tt.wantOk {
				t.Errorf("Rank() = (%d, %v); want (%d, %v)", rank, ok, tt.wantRank, tt.wantOk)
			}
			if !ok {
				return
			}
			back, ok := EvolutionChoiceFromRank(rank)
			if !ok || back != tt.choice {
				t.Errorf("EvolutionChoiceFromRank(%d) = %q; want %q", rank, back, tt.choice)
			}
		})
	}
}

func TestEvolutionChoiceFromRank_outOfRange(t *testing.T) {
	for _, rank := range []int{-1, 0, 5} {
		if c, ok := EvolutionChoiceFromRank(rank); ok {
			t.Errorf("EvolutionChoiceFromRank(%d) = %q; want no choice", rank, c)
		}
	}
}

func TestEvolutionChoice_Label(t *testing.T) {
	if got := Capable.Label(); got != "Capable" {
		t.Errorf("Label() = %q; want Capable", got)
	}
	if got := EvolutionChoice("?").Label(); got != "" {
		t.Errorf("Label() = %q; want empty", got)
	}
}

func TestKindName(t *testing.T) {
	tests := []struct {
		q    Question
		want string
	}{
		{q: Question{Kind: AgreementQuestion{Description: "d"}}, want: KindAgreement},
		{q: Question{Kind: KeyAgencyActionsQuestion{}}, want: KindKeyAgencyActions},
		{q: Question{Kind: EvolutionQuestion{}}, want: KindEvolution},
		{q: Question{Kind: LinkagesQuestion{}}, want: KindLinkages},
		{q: Question{}, want: ""},
	}
	for _, tt := range tests {
		if got := KindName(tt.q.Kind); got != tt.want {
			t.Errorf("KindName(%T) = %q; want %q", tt.q.Kind, got, tt.want)
		}
	}
	if !(Question{Kind: EvolutionQuestion{}}).IsEvolution() {
		t.Error("IsEvolution() = false; want true")
	}
	if (Question{Kind: EvolutionQuestion{}}).IsLinkages() {
		t.Error("IsLinkages() = true; want false")
	}
}
