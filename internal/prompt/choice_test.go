package prompt

import (
	"testing"

	"github.com/henri123lemoine/promptkit/internal/keys"
)

func TestChoiceInitialState(t *testing.T) {
	m := NewChoice(YesNo("Continue?"), DefaultEnv())
	if m.FirstActive() || !m.Selected() {
		t.Errorf("yes/no should start on a selected No, got first=%v selected=%v", m.FirstActive(), m.Selected())
	}
	want := []string{"Continue? (Y/N) ", "  Yes", "> No"}
	for i, line := range m.Lines() {
		if line != want[i] {
			t.Errorf("line %d = %q, want %q", i, line, want[i])
		}
	}

	o := YesNo("Continue?")
	o.EmptyConfirms = false
	m = NewChoice(o, DefaultEnv()).Update(keys.KeyEnter)
	if m.Done() {
		t.Error("ENTER on an empty buffer should not commit without EmptyConfirms")
	}
}

func TestChoiceTypeAhead(t *testing.T) {
	tests := []struct {
		name         string
		opts         ChoiceOptions
		keys         []keys.Key
		wantFirst    bool
		wantSelected bool
		wantBuffer   string
	}{
		{"y selects yes", YesNo("q"), []keys.Key{keys.Char('y')}, true, true, "y"},
		{"full label", YesNo("q"), []keys.Key{keys.Char('Y'), keys.Char('e'), keys.Char('S')}, true, true, "YeS"},
		{"n selects no", YesNo("q"), []keys.Key{keys.Char('y'), keys.KeyBackspace, keys.Char('n')}, false, true, "n"},
		{"mismatch deselects", YesNo("q"), []keys.Key{keys.Char('x')}, false, false, "x"},
		{"backspace keeps selection", YesNo("q"), []keys.Key{keys.Char('x'), keys.KeyBackspace}, false, false, ""},
		{"left deletes too", YesNo("q"), []keys.Key{keys.Char('y'), keys.Char('e'), keys.KeyLeft}, true, true, "y"},
		{"up toggles and fills", YesNo("q"), []keys.Key{keys.KeyUp}, true, true, "Yes"},
		{"down toggles back", YesNo("q"), []keys.Key{keys.KeyUp, keys.KeyDown}, false, true, "No"},
		{"tab completes", YesNo("q"), []keys.Key{keys.Char('y'), keys.KeyTab}, true, true, "Yes"},
		{"tab without selection", YesNo("q"), []keys.Key{keys.Char('z'), keys.KeyTab}, false, false, "z"},
		{
			name:      "case sensitive mismatch",
			opts:      func() ChoiceOptions { o := YesNo("q"); o.CaseSensitive = true; return o }(),
			keys:      []keys.Key{keys.Char('n')},
			wantFirst: false, wantSelected: false, wantBuffer: "n",
		},
		{
			name:      "second label wins a tie",
			opts:      ChoiceOptions{First: "Yes", Second: "Yeah", DefaultFirst: true},
			keys:      []keys.Key{keys.Char('y'), keys.Char('e')},
			wantFirst: false, wantSelected: true, wantBuffer: "ye",
		},
		{"h selects hour", MinuteHour("Unit"), []keys.Key{keys.Char('h')}, false, true, "h"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := feed(NewChoice(tt.opts, DefaultEnv()), tt.keys...)
			if m.FirstActive() != tt.wantFirst {
				t.Errorf("FirstActive() = %v, want %v", m.FirstActive(), tt.wantFirst)
			}
			if m.Selected() != tt.wantSelected {
				t.Errorf("Selected() = %v, want %v", m.Selected(), tt.wantSelected)
			}
			if m.Buffer() != tt.wantBuffer {
				t.Errorf("Buffer() = %q, want %q", m.Buffer(), tt.wantBuffer)
			}
			if m.Done() {
				t.Error("type-ahead should not end the loop")
			}
		})
	}
}

func TestChoiceCommit(t *testing.T) {
	tests := []struct {
		name       string
		opts       ChoiceOptions
		keys       []keys.Key
		wantStatus Status
		wantAnswer Answer
	}{
		{"enter accepts default no", YesNo("q"), []keys.Key{keys.KeyEnter}, Committed, AnswerNo},
		{"yes via type-ahead", YesNo("q"), []keys.Key{keys.Char('y'), keys.KeyEnter}, Committed, AnswerYes},
		{"right confirms", YesNo("q"), []keys.Key{keys.KeyUp, keys.KeyRight}, Committed, AnswerYes},
		{"unselected enter waits", YesNo("q"), []keys.Key{keys.Char('x'), keys.KeyEnter}, Pending, AnswerNo},
		{"interrupt returns abort", YesNo("q"), []keys.Key{keys.Char('y'), keys.KeyCtrlC}, Cancelled, AnswerNone},
		{
			name:       "custom abort",
			opts:       func() ChoiceOptions { o := YesNo("q"); o.Abort = AnswerNo; return o }(),
			keys:       []keys.Key{keys.KeyCtrlD},
			wantStatus: Cancelled, wantAnswer: AnswerNo,
		},
		{"minute by default", MinuteHour("Unit"), []keys.Key{keys.KeyEnter}, Committed, AnswerYes},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := feed(NewChoice(tt.opts, DefaultEnv()), tt.keys...)
			if m.Status() != tt.wantStatus {
				t.Errorf("Status() = %v, want %v", m.Status(), tt.wantStatus)
			}
			if m.Answer() != tt.wantAnswer {
				t.Errorf("Answer() = %v, want %v", m.Answer(), tt.wantAnswer)
			}
		})
	}
}

func TestChoiceMinuteHourLines(t *testing.T) {
	m := feed(NewChoice(MinuteHour("Unit"), DefaultEnv()), keys.Char('h'))
	want := []string{"Unit (M/H) h", "  Minute", "> Hour"}
	for i, line := range m.Lines() {
		if line != want[i] {
			t.Errorf("line %d = %q, want %q", i, line, want[i])
		}
	}
}

func TestChoice(t *testing.T) {
	got, err := Choice(script(keys.Char('y'), keys.KeyEnter), DefaultEnv(), YesNo("Continue?"))
	if err != nil || got != AnswerYes {
		t.Errorf("Choice() = %v, %v, want yes", got, err)
	}

	got, err = Choice(script(keys.KeyCtrlC), DefaultEnv(), YesNo("Continue?"))
	if err != nil {
		t.Errorf("interrupt should not be an error, got %v", err)
	}
	if got != AnswerNone {
		t.Errorf("Choice() = %v, want none", got)
	}
}

func TestAnswerString(t *testing.T) {
	if AnswerYes.String() != "yes" || AnswerNo.String() != "no" || AnswerNone.String() != "none" {
		t.Error("unexpected answer names")
	}
}
