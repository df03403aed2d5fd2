package money

import (
	"math"
	"testing"
)

func TestSplitEqually(t *testing.T) {
	tests := []struct {
		name         string
		totalBase    float64
		participants []string
		wantErr      error
		want         map[string]float64
	}{
		{
			name:         "remainder cent goes to first participant",
			totalBase:    100.0,
			participants: []string{"a@trip.test", "b@trip.test", "c@trip.test"},
			want: map[string]float64{
				"a@trip.test": 33.34,
				"b@trip.test": 33.33,
				"c@trip.test": 33.33,
			},
		},
		{
			name:         "even division leaves no remainder",
			totalBase:    90.0,
			participants: []string{"a@trip.test", "b@trip.test", "c@trip.test"},
			want: map[string]float64{
				"a@trip.test": 30.0,
				"b@trip.test": 30.0,
				"c@trip.test": 30.0,
			},
		},
		{
			name:         "two remainder cents spread over first two",
			totalBase:    1.0,
			participants: []string{"a@trip.test", "b@trip.test", "c@trip.test", "d@trip.test", "e@trip.test", "f@trip.test", "g@trip.test"},
			want: map[string]float64{
				"a@trip.test": 0.15,
				"b@trip.test": 0.15,
				"c@trip.test": 0.14,
				"d@trip.test": 0.14,
				"e@trip.test": 0.14,
				"f@trip.test": 0.14,
				"g@trip.test": 0.14,
			},
		},
		{
			name:         "single participant gets the full amount",
			totalBase:    42.42,
			participants: []string{"a@trip.test"},
			want:         map[string]float64{"a@trip.test": 42.42},
		},
		{
			name:         "duplicate selection entries count once",
			totalBase:    100.0,
			participants: []string{"a@trip.test", "a@trip.test", "b@trip.test"},
			want: map[string]float64{
				"a@trip.test": 50.0,
				"b@trip.test": 50.0,
			},
		},
		{
			name:         "no participants should error",
			totalBase:    10.0,
			participants: []string{},
			wantErr:      ErrNoParticipants,
		},
		{
			name:         "zero total should error",
			totalBase:    0,
			participants: []string{"a@trip.test"},
			wantErr:      ErrInvalidTotal,
		},
		{
			name:         "negative total should error",
			totalBase:    -5,
			participants: []string{"a@trip.test"},
			wantErr:      ErrInvalidTotal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := SplitEqually(tt.totalBase, tt.participants)
			if tt.wantErr != nil {
				if err != tt.wantErr {
					t.Fatalf("SplitEqually() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("SplitEqually() unexpected error: %v", err)
			}
			for p, want := range tt.want {
				if got[p] != want {
					t.Errorf("split[%s] = %v, want %v", p, got[p], want)
				}
			}
		})
	}
}

func TestSplitEquallySumsExactly(t *testing.T) {
	// The sum must equal the cent-rounded total exactly, with no floating
	// drift, for awkward totals and participant counts.
	totals := []float64{100.0, 9522.0, 0.01, 0.05, 1234.567, 33.33, 7.77}
	groups := [][]string{
		{"a@trip.test"},
		{"a@trip.test", "b@trip.test"},
		{"a@trip.test", "b@trip.test", "c@trip.test"},
		{"a@trip.test", "b@trip.test", "c@trip.test", "d@trip.test", "e@trip.test", "f@trip.test", "g@trip.test"},
	}

	for _, total := range totals {
		for _, participants := range groups {
			splits, err := SplitEqually(total, participants)
			if err != nil {
				t.Fatalf("SplitEqually(%v, %d participants) error: %v", total, len(participants), err)
			}

			var sumCents int64
			for _, v := range splits {
				sumCents += int64(math.Round(v * 100))
			}
			wantCents := int64(math.Round(total * 100))
			if sumCents != wantCents {
				t.Errorf("SplitEqually(%v, %d participants): sum = %d cents, want %d cents",
					total, len(participants), sumCents, wantCents)
			}
		}
	}
}

func TestSplitEquallyDeterministic(t *testing.T) {
	participants := []string{"c@trip.test", "a@trip.test", "b@trip.test"}

	first, err := SplitEqually(100.0, participants)
	if err != nil {
		t.Fatalf("SplitEqually() error: %v", err)
	}
	for i := 0; i < 10; i++ {
		again, err := SplitEqually(100.0, participants)
		if err != nil {
			t.Fatalf("SplitEqually() error: %v", err)
		}
		for p, v := range first {
			if again[p] != v {
				t.Fatalf("run %d: split[%s] = %v, want %v", i, p, again[p], v)
			}
		}
	}

	// Reordering moves the extra cent, not the total.
	reordered, err := SplitEqually(100.0, []string{"b@trip.test", "a@trip.test", "c@trip.test"})
	if err != nil {
		t.Fatalf("SplitEqually() error: %v", err)
	}
	if reordered["b@trip.test"] != 33.34 {
		t.Errorf("first of reordered selection = %v, want 33.34", reordered["b@trip.test"])
	}
	if first["c@trip.test"] != 33.34 {
		t.Errorf("first of original selection = %v, want 33.34", first["c@trip.test"])
	}
}

func TestConvert(t *testing.T) {
	if got := Convert(100, 0.25); got != 25.0 {
		t.Errorf("Convert(100, 0.25) = %v, want 25.0", got)
	}
	if got := Convert(9522, 1); got != 9522.0 {
		t.Errorf("Convert(9522, 1) = %v, want 9522.0", got)
	}
}

func TestRound2(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{33.333333, 33.33},
		{33.336, 33.34},
		{0.005000001, 0.01},
		{100.0, 100.0},
	}
	for _, tt := range tests {
		if got := Round2(tt.in); got != tt.want {
			t.Errorf("Round2(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
