package geddate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Date
	}{
		{
			name:  "full gregorian date",
			input: "20 JUN 1979",
			want: Date{
				Calendar: Gregorian, Year: 1979, Month: 6, Day: 20,
			},
		},
		{
			name:  "month and year",
			input: "JUN 1979",
			want: Date{
				Calendar: Gregorian, Year: 1979, Month: 6, Day: 1,
			},
		},
		{
			name:  "year only",
			input: "1979",
			want: Date{
				Calendar: Gregorian, Year: 1979, Month: 1, Day: 1,
			},
		},
		{
			name:  "modifier with fictional calendar",
			input: "ABT 10191 AG",
			want: Date{
				Calendar: "AG", Year: 10191, Month: 1, Day: 1,
				Modifier: "ABT",
			},
		},
		{
			name:  "long modifier form normalized",
			input: "ABOUT 1850",
			want: Date{
				Calendar: Gregorian, Year: 1850, Month: 1, Day: 1,
				Modifier: "ABT",
			},
		},
		{
			name:  "before modifier",
			input: "BEF 12 MAR 1901",
			want: Date{
				Calendar: Gregorian, Year: 1901, Month: 3, Day: 12,
				Modifier: "BEF",
			},
		},
		{
			name:  "lowercase month accepted",
			input: "3 jun 1920",
			want: Date{
				Calendar: Gregorian, Year: 1920, Month: 6, Day: 3,
			},
		},
		{
			name:  "full date with calendar suffix",
			input: "10 JAN 10191 AG",
			want: Date{
				Calendar: "AG", Year: 10191, Month: 1, Day: 10,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Parse(tt.input)
			assert.NotNil(t, got)
			tt.want.Source = tt.input
			assert.Equal(t, tt.want, *got)
		})
	}
}

func TestParseNil(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty string", ""},
		{"whitespace only", "   "},
		{"free text", "sometime in spring"},
		{"unknown month", "20 XYZ 1979"},
		{"modifier alone", "ABT"},
		{"calendar suffix alone", "AG"},
		{"month without year", "JUN"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Nil(t, Parse(tt.input))
		})
	}
}

func TestParseMonthNotCalendar(t *testing.T) {
	// A trailing month abbreviation must never be read as a calendar
	// suffix.
	got := Parse("JUN 1979")
	assert.NotNil(t, got)
	assert.Equal(t, Gregorian, got.Calendar)
	assert.Equal(t, 6, got.Month)
}

func TestYearsBetween(t *testing.T) {
	tests := []struct {
		name   string
		from   *Date
		to     *Date
		want   int
		wantOK bool
	}{
		{
			name:   "anniversary passed",
			from:   &Date{Calendar: Gregorian, Year: 1979, Month: 6, Day: 20},
			to:     &Date{Calendar: Gregorian, Year: 2020, Month: 7, Day: 1},
			want:   41,
			wantOK: true,
		},
		{
			name:   "anniversary not yet reached",
			from:   &Date{Calendar: Gregorian, Year: 1979, Month: 6, Day: 20},
			to:     &Date{Calendar: Gregorian, Year: 2020, Month: 6, Day: 19},
			want:   40,
			wantOK: true,
		},
		{
			name:   "same day",
			from:   &Date{Calendar: Gregorian, Year: 1979, Month: 6, Day: 20},
			to:     &Date{Calendar: Gregorian, Year: 2020, Month: 6, Day: 20},
			want:   41,
			wantOK: true,
		},
		{
			name:   "fictional calendar pair",
			from:   &Date{Calendar: "AG", Year: 10155, Month: 1, Day: 1},
			to:     &Date{Calendar: "AG", Year: 10191, Month: 6, Day: 10},
			want:   36,
			wantOK: true,
		},
		{
			name:   "calendar mismatch",
			from:   &Date{Calendar: "AG", Year: 10155, Month: 1, Day: 1},
			to:     &Date{Calendar: Gregorian, Year: 2020, Month: 1, Day: 1},
			wantOK: false,
		},
		{
			name:   "nil from",
			to:     &Date{Calendar: Gregorian, Year: 2020, Month: 1, Day: 1},
			wantOK: false,
		},
		{
			name:   "nil to",
			from:   &Date{Calendar: Gregorian, Year: 1979, Month: 6, Day: 20},
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := YearsBetween(tt.from, tt.to)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}
