package gammon

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestDecodeMoves(t *testing.T) {
	testCases := []struct {
		input   string
		want    [][]int8
		wantErr error
	}{
		{input: "24/18", want: [][]int8{{24, 18}}},
		{input: "24/18 13/11", want: [][]int8{{24, 18}, {13, 11}}},
		{input: "8/3/1", want: [][]int8{{8, 3}, {3, 1}}},
		{input: "bar/20", want: [][]int8{{SpaceBarPlayer, 20}}},
		{input: "b/20/16", want: [][]int8{{SpaceBarPlayer, 20}, {20, 16}}},
		{input: "6/off", want: [][]int8{{6, SpaceHomePlayer}}},
		{input: "6/o 3/h", want: [][]int8{{6, SpaceHomePlayer}, {3, SpaceHomePlayer}}},
		{input: "BAR/20", want: [][]int8{{SpaceBarPlayer, 20}}},
		{input: "8", wantErr: ErrMalformedNotation},
		{input: "x/3", wantErr: ErrMalformedNotation},
		{input: "8//3", wantErr: ErrMalformedNotation},
		{input: "0/5", wantErr: ErrInvalidPoint},
		{input: "300/5", wantErr: ErrInvalidPoint},
		{input: "8/25", wantErr: ErrInvalidPoint},
		{input: "3/bar", wantErr: ErrInvalidKeyword},
		{input: "off/3", wantErr: ErrInvalidKeyword},
		{input: "8/off/3", wantErr: ErrInvalidKeyword},
	}
	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			got, err := DecodeMoves(tc.input)
			if tc.wantErr != nil {
				if !errors.Is(err, tc.wantErr) {
					t.Fatalf("expected %v, got %v", tc.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("failed to decode %q: %s", tc.input, err)
			}
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("moves mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestFormatMoves(t *testing.T) {
	moves := [][]int8{{SpaceBarPlayer, 20}, {8, 3}, {6, SpaceHomePlayer}}
	if got := string(FormatMoves(moves)); got != "bar/20 8/3 6/off" {
		t.Errorf("FormatMoves = %q, want %q", got, "bar/20 8/3 6/off")
	}
	if got := string(FormatMoves(nil)); got != "" {
		t.Errorf("FormatMoves(nil) = %q, want %q", got, "")
	}
}

func TestSortMoves(t *testing.T) {
	moves := [][]int8{{8, 3}, {13, 11}, {8, 6}, {24, 22}}
	SortMoves(moves)
	want := [][]int8{{24, 22}, {13, 11}, {8, 6}, {8, 3}}
	if diff := cmp.Diff(want, moves); diff != "" {
		t.Errorf("moves mismatch (-want +got):\n%s", diff)
	}
}
