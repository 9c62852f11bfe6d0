package date

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestTime assert that the time() is cannonical and gives comparable times.
func TestTime(t *testing.T) {
	d1 := New(2025, 7, 31)
	d2 := New(2025, 7, 31)

	// Note that usually time.Time are not comparable (there is a pointer for the timezone) this
	// tests also checks that the property remain true
	assert.Equal(t, d1.time(), d2.time(), "same day gives two different time")
}

func TestNewNormalizes(t *testing.T) {
	assert.Equal(t, New(2025, time.February, 1), New(2025, time.January, 32))
}

func TestParse(t *testing.T) {
	tests := []struct {
		in      string
		want    Date
		wantErr bool
	}{
		{in: "2025-07-01", want: New(2025, 7, 1)},
		{in: "2025-7-1", want: New(2025, 7, 1)},
		{in: "07/01/2025", wantErr: true},
		{in: "", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := Parse(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseTXF(t *testing.T) {
	tests := []struct {
		in      string
		want    Date
		wantErr bool
	}{
		{in: "07/01/2025", want: New(2025, 7, 1)},
		{in: "7/1/2025", want: New(2025, 7, 1)},
		{in: "2025-07-01", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseTXF(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormats(t *testing.T) {
	d := New(2020, 2, 1)
	assert.Equal(t, "2020-02-01", d.String())
	assert.Equal(t, "02/01/2020", d.TXF())
}

func TestTodayTestingNow(t *testing.T) {
	t.Setenv(EnvTestingNow, "2006-01-02 15:04:05")
	assert.Equal(t, New(2006, 1, 2), Today())
}
