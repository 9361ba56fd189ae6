package itinerary

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseDuration(t *testing.T) {
	tests := []struct {
		text string
		want time.Duration
	}{
		{"2 hours 30 minutes", 150 * time.Minute},
		{"1h 15m", 75 * time.Minute},
		{"1 hour and 5 mins", 65 * time.Minute},
		{"2h", 2 * time.Hour},
		{"1.5 hours", 90 * time.Minute},
		{"3 Hrs", 3 * time.Hour},
		{"90 minutes", 90 * time.Minute},
		{"45m", 45 * time.Minute},
		{"1h30", 90 * time.Minute},
		{"2h05", 125 * time.Minute},
		{"7 days", DefaultDuration},
		{"168 hours", 168 * time.Hour},
		{"169 hours", DefaultDuration},
		{"99999999999999 hours", DefaultDuration},
		{"approx. 20 min", 20 * time.Minute},
		{"", DefaultDuration},
		{"half day", DefaultDuration},
		{"0 minutes", DefaultDuration},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseDuration(tt.text))
		})
	}
}
