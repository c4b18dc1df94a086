package gedline

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseName(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Name
	}{
		{
			name:  "given and surname",
			input: "John /Smith/",
			want: Name{
				Full: "John Smith", Given: "John", Surname: "Smith",
			},
		},
		{
			name:  "given surname suffix",
			input: "John /Smith/ Jr",
			want: Name{
				Full: "John Smith Jr", Given: "John",
				Surname: "Smith", Suffix: "Jr",
			},
		},
		{
			name:  "no slashes all given",
			input: "Madonna",
			want:  Name{Full: "Madonna", Given: "Madonna"},
		},
		{
			name:  "surname only",
			input: "/Smith/",
			want:  Name{Full: "Smith", Surname: "Smith"},
		},
		{
			name:  "unterminated surname",
			input: "John /Smith",
			want: Name{
				Full: "John Smith", Given: "John", Surname: "Smith",
			},
		},
		{
			name:  "multi-word given name",
			input: "Mary Ann /O'Brien/",
			want: Name{
				Full: "Mary Ann O'Brien", Given: "Mary Ann",
				Surname: "O'Brien",
			},
		},
		{
			name:  "empty value",
			input: "",
			want:  Name{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseName(tt.input)
			assert.Equal(t, tt.want, got)
		})
	}
}
