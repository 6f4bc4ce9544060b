package bowling

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/bft-labs/tenpin/internal/domain"
)

func repeat(n int, v uint8) []uint8 {
	out := make([]uint8, n)
	for i := range out {
		out[i] = v
	}
	return out
}

func join(parts ...[]uint8) []uint8 {
	var out []uint8
	for _, p := range parts {
		out = append(out, p...)
	}
	return out
}

func repeatFrame(n int, f Frame[uint8]) []Frame[uint8] {
	out := make([]Frame[uint8], n)
	for i := range out {
		out[i] = f
	}
	return out
}

func TestSegment(t *testing.T) {
	tests := []struct {
		name  string
		rolls []uint8
		want  []Frame[uint8]
	}{
		{
			name:  "empty game",
			rolls: []uint8{},
			want:  []Frame[uint8]{},
		},
		{
			name:  "shortest game is one open frame",
			rolls: []uint8{3, 4},
			want:  []Frame[uint8]{domain.Open[uint8](3, 4)},
		},
		{
			name:  "all ones",
			rolls: repeat(20, 1),
			want:  repeatFrame(10, domain.Open[uint8](1, 1)),
		},
		{
			name:  "gutter game",
			rolls: repeat(20, 0),
			want:  repeatFrame(10, domain.Open[uint8](0, 0)),
		},
		{
			name:  "perfect game",
			rolls: repeat(12, 10),
			want:  repeatFrame(10, domain.Strike[uint8](10, 10)),
		},
		{
			name:  "single spare with bonus",
			rolls: []uint8{9, 1, 2},
			want:  []Frame[uint8]{domain.Spare[uint8](2)},
		},
		{
			name:  "spare then open",
			rolls: []uint8{9, 1, 2, 3},
			want:  []Frame[uint8]{domain.Spare[uint8](2), domain.Open[uint8](2, 3)},
		},
		{
			name:  "spare into final strike",
			rolls: join(repeat(16, 1), []uint8{9, 1, 10, 2, 3}),
			want: append(repeatFrame(8, domain.Open[uint8](1, 1)),
				domain.Spare[uint8](10), domain.Strike[uint8](2, 3)),
		},
		{
			name:  "strike mid game shares its bonus with the next frame",
			rolls: []uint8{10, 3, 4, 1, 1},
			want: []Frame[uint8]{
				domain.Strike[uint8](3, 4),
				domain.Open[uint8](3, 4),
				domain.Open[uint8](1, 1),
			},
		},
		{
			name:  "final spare with strike fill",
			rolls: join(repeat(18, 0), []uint8{5, 5, 10}),
			want:  append(repeatFrame(9, domain.Open[uint8](0, 0)), domain.Spare[uint8](10)),
		},
		{
			name:  "final strike with spare fill",
			rolls: join(repeat(18, 0), []uint8{10, 7, 3}),
			want:  append(repeatFrame(9, domain.Open[uint8](0, 0)), domain.Strike[uint8](7, 3)),
		},
		{
			name:  "alternating strikes and spares",
			rolls: []uint8{10, 5, 5, 10, 5, 5, 10, 5, 5, 10, 5, 5, 10, 5, 5, 10},
			want: []Frame[uint8]{
				domain.Strike[uint8](5, 5), domain.Spare[uint8](10),
				domain.Strike[uint8](5, 5), domain.Spare[uint8](10),
				domain.Strike[uint8](5, 5), domain.Spare[uint8](10),
				domain.Strike[uint8](5, 5), domain.Spare[uint8](10),
				domain.Strike[uint8](5, 5), domain.Spare[uint8](10),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Segment(tt.rolls)
			if err != nil {
				t.Fatalf("Segment() error = %v", err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Segment() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestSegment_Malformed(t *testing.T) {
	tests := []struct {
		name    string
		rolls   []uint8
		wantPos int
	}{
		{"trailing strike missing second bonus", join(repeat(16, 1), []uint8{9, 1, 10, 2}), 18},
		{"single roll", []uint8{4}, 0},
		{"lone strike", []uint8{10}, 0},
		{"strike with one bonus", []uint8{10, 10}, 0},
		{"spare without bonus", []uint8{9, 1}, 0},
		{"pair above ten pins", []uint8{6, 5}, 0},
		{"pin count above ten", []uint8{1, 1, 11, 0}, 2},
		{"dangling roll after open frames", []uint8{1, 2, 3}, 2},
		{"strike fill above ten pins", join(repeat(18, 0), []uint8{10, 6, 5}), 18},
		{"bad pair deep in the game", join(repeat(10, 1), []uint8{7, 7}, repeat(8, 1)), 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			frames, err := Segment(tt.rolls)
			if err == nil {
				t.Fatalf("Segment() = %v, want error", frames)
			}
			if frames != nil {
				t.Errorf("Segment() returned partial frames %v", frames)
			}
			if !errors.Is(err, ErrMalformedGame) {
				t.Errorf("error %v does not match ErrMalformedGame", err)
			}
			var mg *MalformedGameError
			if !errors.As(err, &mg) {
				t.Fatalf("error %T is not *MalformedGameError", err)
			}
			if mg.Position != tt.wantPos {
				t.Errorf("Position = %d, want %d", mg.Position, tt.wantPos)
			}
		})
	}
}

func TestSegment_SignedRolls(t *testing.T) {
	if _, err := Segment([]int{-1, 5}); !errors.Is(err, ErrMalformedGame) {
		t.Errorf("negative roll: error = %v, want ErrMalformedGame", err)
	}

	got, err := Segment([]int64{10, 10, 10})
	if err != nil {
		t.Fatalf("Segment() error = %v", err)
	}
	if diff := cmp.Diff([]Frame[int64]{domain.Strike[int64](10, 10)}, got); diff != "" {
		t.Errorf("Segment() mismatch (-want +got):\n%s", diff)
	}
}

func TestCheckRange(t *testing.T) {
	if pos, ok := CheckRange([]uint8{0, 10, 5}); !ok {
		t.Errorf("CheckRange() = %d, false; want ok", pos)
	}
	if pos, ok := CheckRange([]int16{3, 4, 200}); ok || pos != 2 {
		t.Errorf("CheckRange() = %d, %v; want 2, false", pos, ok)
	}
}
