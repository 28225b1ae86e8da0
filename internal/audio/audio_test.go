package audio

import (
	"testing"
	"time"
)

func TestBeeperToneLength(t *testing.T) {
	b := NewBeeper(880, 50*time.Millisecond)

	tone, err := b.tone()
	if err != nil {
		t.Fatalf("tone() error = %v", err)
	}

	want := sampleRate.N(50 * time.Millisecond)
	total := 0
	buf := make([][2]float64, 512)
	for {
		n, ok := tone.Stream(buf)
		for i := range n {
			if buf[i][0] < -1 || buf[i][0] > 1 {
				t.Fatalf("sample %d out of range: %f", total+i, buf[i][0])
			}
		}
		total += n
		if !ok {
			break
		}
	}

	if total != want {
		t.Errorf("streamed %d samples, expected %d", total, want)
	}
}

func TestBeeperRejectsInvalidTone(t *testing.T) {
	// A tone at or above the Nyquist frequency cannot be produced.
	b := NewBeeper(float64(sampleRate), 50*time.Millisecond)
	if _, err := b.tone(); err == nil {
		t.Error("tone() should fail at the sample rate")
	}
}

func TestBeeperDropsOverlappingTones(t *testing.T) {
	b := NewBeeper(880, 50*time.Millisecond)
	start := time.Unix(1000, 0)

	tests := []struct {
		at       time.Duration
		expected bool
	}{
		{0, true},
		{10 * time.Millisecond, false},
		{49 * time.Millisecond, false},
		{50 * time.Millisecond, true},
		{60 * time.Millisecond, false},
		{200 * time.Millisecond, true},
	}

	for _, tc := range tests {
		if got := b.accept(start.Add(tc.at)); got != tc.expected {
			t.Errorf("accept(+%v) = %v, expected %v", tc.at, got, tc.expected)
		}
	}
}

func TestBeeperSilentBeforeInit(t *testing.T) {
	b := NewBeeper(880, 50*time.Millisecond)
	b.PlayCollision()
	b.Close()

	if !b.lastPlay.IsZero() {
		t.Error("PlayCollision before Init should not record a tone")
	}
}

func TestNopSatisfiesSound(t *testing.T) {
	var s Sound = Nop{}
	s.PlayCollision()
}
