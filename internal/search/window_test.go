package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestZipWindow_Advance(t *testing.T) {
	tests := []struct {
		name    string
		current ZipWindow
		mode    ZipLoadMode
		total   int
		custom  *int
		want    ZipWindow
	}{
		{
			name:    "next moves forward",
			current: ZipWindow{From: 0, Size: 25},
			mode:    ZipLoadNext,
			total:   100,
			want:    ZipWindow{From: 25, Size: 25},
		},
		{
			name:    "next past the end wraps to zero",
			current: ZipWindow{From: 75, Size: 25},
			mode:    ZipLoadNext,
			total:   100,
			want:    ZipWindow{From: 0, Size: 25},
		},
		{
			name:    "next with unknown total does not wrap",
			current: ZipWindow{From: 50, Size: 25},
			mode:    ZipLoadNext,
			total:   0,
			want:    ZipWindow{From: 75, Size: 25},
		},
		{
			name:    "previous steps back",
			current: ZipWindow{From: 50, Size: 25},
			mode:    ZipLoadPrevious,
			total:   100,
			want:    ZipWindow{From: 25, Size: 25},
		},
		{
			name:    "previous clamps at zero",
			current: ZipWindow{From: 10, Size: 25},
			mode:    ZipLoadPrevious,
			total:   100,
			want:    ZipWindow{From: 0, Size: 25},
		},
		{
			name:    "custom restarts with requested size",
			current: ZipWindow{From: 50, Size: 25},
			mode:    ZipLoadCustom,
			total:   100,
			custom:  intPtr(300),
			want:    ZipWindow{From: 0, Size: 300},
		},
		{
			name:    "custom clamps to the maximum",
			current: ZipWindow{From: 0, Size: 25},
			mode:    ZipLoadCustom,
			total:   100,
			custom:  intPtr(MaxCustomZipSize * 2),
			want:    ZipWindow{From: 0, Size: MaxCustomZipSize},
		},
		{
			name:    "custom without a size falls back to default",
			current: ZipWindow{From: 0, Size: 25},
			mode:    ZipLoadCustom,
			total:   100,
			want:    ZipWindow{From: 0, Size: DefaultZipPageSize},
		},
		{
			name:    "first resets everything",
			current: ZipWindow{From: 75, Size: 300},
			mode:    ZipLoadFirst,
			total:   100,
			want:    DefaultZipWindow(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.current.advance(tt.mode, tt.total, tt.custom)
			assert.Equal(t, tt.want, got)
		})
	}
}
