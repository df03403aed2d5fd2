package split

import (
	"errors"
	"math"
	"testing"
)

const (
	alice = "alice@trip.test"
	bob   = "bob@trip.test"
	carol = "carol@trip.test"
	dave  = "dave@trip.test"
)

func sumSplits(splits map[string]float64) float64 {
	var sum float64
	for _, v := range splits {
		sum += v
	}
	return sum
}

func TestFactory(t *testing.T) {
	f := NewFactory()

	for _, mode := range []Mode{ModeMyself, ModeEqually, ModeSpecific} {
		strategy, err := f.Create(mode)
		if err != nil {
			t.Fatalf("Create(%s) error: %v", mode, err)
		}
		if strategy.Mode() != mode {
			t.Errorf("Create(%s).Mode() = %s", mode, strategy.Mode())
		}
	}

	if _, err := f.Create(Mode("HALFSIES")); !errors.Is(err, ErrUnknownMode) {
		t.Errorf("Create(HALFSIES) error = %v, want ErrUnknownMode", err)
	}
}

func TestMyselfStrategy(t *testing.T) {
	s := &MyselfStrategy{}

	splits, err := s.Calculate(45, 32.5, &Configuration{Payer: alice})
	if err != nil {
		t.Fatalf("Calculate() error: %v", err)
	}
	if len(splits) != 1 {
		t.Fatalf("splits has %d entries, want exactly 1", len(splits))
	}
	if splits[alice] != 1462.5 {
		t.Errorf("splits[payer] = %v, want 1462.5", splits[alice])
	}

	if _, err := s.Calculate(0, 1, &Configuration{Payer: alice}); !errors.Is(err, ErrInvalidAmount) {
		t.Errorf("zero amount error = %v, want ErrInvalidAmount", err)
	}
	if _, err := s.Calculate(10, 1, &Configuration{}); !errors.Is(err, ErrMissingPayer) {
		t.Errorf("missing payer error = %v, want ErrMissingPayer", err)
	}
}

func TestEquallyStrategy(t *testing.T) {
	tests := []struct {
		name    string
		amount  float64
		rate    float64
		cfg     *Configuration
		wantErr error
		want    map[string]float64
	}{
		{
			name:   "hundred split three ways, first absorbs the cent",
			amount: 100,
			rate:   1,
			cfg:    &Configuration{Payer: alice, Participants: []string{alice, bob, carol}},
			want:   map[string]float64{alice: 33.34, bob: 33.33, carol: 33.33},
		},
		{
			name:   "conversion happens before apportionment",
			amount: 10,
			rate:   32.5,
			cfg:    &Configuration{Payer: alice, Participants: []string{alice, bob}},
			want:   map[string]float64{alice: 162.5, bob: 162.5},
		},
		{
			name:    "empty selection should error",
			amount:  100,
			rate:    1,
			cfg:     &Configuration{Payer: alice},
			wantErr: ErrMissingParticipants,
		},
		{
			name:    "non-positive amount should error",
			amount:  -1,
			rate:    1,
			cfg:     &Configuration{Payer: alice, Participants: []string{alice, bob}},
			wantErr: ErrInvalidAmount,
		},
	}

	s := &EquallyStrategy{}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := s.Calculate(tt.amount, tt.rate, tt.cfg)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Calculate() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Calculate() unexpected error: %v", err)
			}
			for p, want := range tt.want {
				if got[p] != want {
					t.Errorf("splits[%s] = %v, want %v", p, got[p], want)
				}
			}
			wantTotal := math.Round(tt.amount*tt.rate*100) / 100
			if math.Abs(sumSplits(got)-wantTotal) > 0.01 {
				t.Errorf("splits sum = %v, want %v", sumSplits(got), wantTotal)
			}
		})
	}
}

func TestSpecificStrategy(t *testing.T) {
	tests := []struct {
		name    string
		amount  float64
		rate    float64
		cfg     *Configuration
		wantErr error
		want    map[string]float64
	}{
		{
			name:   "four equal manual entries accepted",
			amount: 9522,
			rate:   1,
			cfg: &Configuration{
				Payer: alice,
				Entries: map[string]float64{
					alice: 2380.5, bob: 2380.5, carol: 2380.5, dave: 2380.5,
				},
			},
			want: map[string]float64{alice: 2380.5, bob: 2380.5, carol: 2380.5, dave: 2380.5},
		},
		{
			name:   "delta of exactly 0.01 is accepted and reconciled",
			amount: 9522,
			rate:   1,
			cfg: &Configuration{
				Payer: alice,
				Entries: map[string]float64{
					alice: 2380.5, bob: 2380.5, carol: 2380.5, dave: 2380.49,
				},
			},
			want: map[string]float64{alice: 2380.51, bob: 2380.5, carol: 2380.5, dave: 2380.49},
		},
		{
			name:   "delta above 0.01 is rejected",
			amount: 9522,
			rate:   1,
			cfg: &Configuration{
				Payer: alice,
				Entries: map[string]float64{
					alice: 2380.5, bob: 2380.5, carol: 2380.5, dave: 2380.48,
				},
			},
			wantErr: ErrSplitMismatch,
		},
		{
			name:   "zero entry means not participating",
			amount: 100,
			rate:   1,
			cfg: &Configuration{
				Payer:   alice,
				Entries: map[string]float64{alice: 60, bob: 40, carol: 0},
			},
			want: map[string]float64{alice: 60, bob: 40},
		},
		{
			name:   "entries are converted to base currency",
			amount: 100,
			rate:   0.21,
			cfg: &Configuration{
				Payer:   alice,
				Entries: map[string]float64{alice: 60, bob: 40},
			},
			want: map[string]float64{alice: 12.6, bob: 8.4},
		},
		{
			name:   "conversion residual is spread so shares sum to the base total",
			amount: 100,
			rate:   32.5,
			cfg: &Configuration{
				Payer:   alice,
				Entries: map[string]float64{alice: 60, bob: 39.99},
			},
			want: map[string]float64{alice: 1950.16, bob: 1299.84},
		},
		{
			name:    "entries not summing to total are rejected",
			amount:  100,
			rate:    1,
			cfg:     &Configuration{Payer: alice, Entries: map[string]float64{alice: 50, bob: 30}},
			wantErr: ErrSplitMismatch,
		},
		{
			name:    "negative entries are discarded before the sum check",
			amount:  100,
			rate:    1,
			cfg:     &Configuration{Payer: alice, Entries: map[string]float64{alice: 100, bob: -20}},
			want:    map[string]float64{alice: 100},
		},
		{
			name:    "non-positive amount should error",
			amount:  0,
			rate:    1,
			cfg:     &Configuration{Payer: alice, Entries: map[string]float64{alice: 10}},
			wantErr: ErrInvalidAmount,
		},
		{
			name:    "no participating entries within epsilon yields empty split",
			amount:  0.01,
			rate:    1,
			cfg:     &Configuration{Payer: alice, Entries: map[string]float64{alice: 0}},
			wantErr: ErrEmptySplit,
		},
	}

	s := &SpecificStrategy{}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := s.Calculate(tt.amount, tt.rate, tt.cfg)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Calculate() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Calculate() unexpected error: %v", err)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("splits has %d entries, want %d", len(got), len(tt.want))
			}
			for p, want := range tt.want {
				if math.Abs(got[p]-want) > 0.001 {
					t.Errorf("splits[%s] = %v, want %v", p, got[p], want)
				}
			}
			wantTotal := math.Round(tt.amount*tt.rate*100) / 100
			if math.Abs(sumSplits(got)-wantTotal) > 0.001 {
				t.Errorf("splits sum = %v, want %v", sumSplits(got), wantTotal)
			}
		})
	}
}
