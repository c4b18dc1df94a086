package cmd

import (
	"testing"

	"github.com/gedtk/gedtree/pkg/ged"
	"github.com/gedtk/gedtree/pkg/geddate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseNowFlag(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  geddate.Date
	}{
		{
			name:  "full gregorian date",
			input: "2020-6-15",
			want:  geddate.Date{Year: 2020, Month: 6, Day: 15},
		},
		{
			name:  "year only",
			input: "2020",
			want:  geddate.Date{Year: 2020},
		},
		{
			name:  "fictional calendar",
			input: "AG:10191-6-10",
			want: geddate.Date{
				Calendar: "AG", Year: 10191, Month: 6, Day: 10,
			},
		},
		{
			name:  "calendar lowercased input",
			input: "ag:10191",
			want:  geddate.Date{Calendar: "AG", Year: 10191},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseNowFlag(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseNowFlagErrors(t *testing.T) {
	for _, input := range []string{"abc", "2020-x", "2020-0-1", "-5"} {
		_, err := parseNowFlag(input)
		assert.Error(t, err, input)
	}
}

func TestFormatIndividualLine(t *testing.T) {
	ind := &ged.Individual{
		ID:    "@I1@",
		Name:  ged.Name{Full: "John Smith"},
		Birth: &ged.Event{Date: "1900"},
		Death: &ged.Event{Date: "1980"},
	}
	assert.Equal(t, "@I1@  John Smith  (1900 - 1980)", formatIndividualLine(ind))

	bare := &ged.Individual{ID: "@I2@", Name: ged.Name{Full: "Jane Doe"}}
	assert.Equal(t, "@I2@  Jane Doe", formatIndividualLine(bare))
}

func TestCommandsRegistered(t *testing.T) {
	names := make(map[string]bool)
	for _, c := range rootCmd.Commands() {
		names[c.Name()] = true
	}
	for _, want := range []string{"stats", "search", "show", "roots", "export"} {
		assert.True(t, names[want], want)
	}
}
