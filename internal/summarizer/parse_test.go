package summarizer

import (
	"reflect"
	"testing"
)

func TestParseActionItems(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{
			name: "all bulleted",
			in:   "- Send report\n• Review budget\n* Book room",
			want: []string{"- Send report", "• Review budget", "* Book room"},
		},
		{
			name: "first line without bullet gets prefixed",
			in:   "Follow up with client\n- Send contract by Friday",
			want: []string{"- Follow up with client", "- Send contract by Friday"},
		},
		{
			name: "explicit no-items response yields empty list",
			in:   "No action items identified in this meeting",
			want: []string{},
		},
		{
			name: "no-items response is case insensitive",
			in:   "no specific action items were found",
			want: []string{},
		},
		{
			name: "mixed response drops later unbulleted lines",
			in:   "Here are the tasks:\n- Call vendor\nremember to follow up\n- Update wiki",
			want: []string{"- Here are the tasks:", "- Call vendor", "- Update wiki"},
		},
		{
			name: "blank lines ignored",
			in:   "\n\n- Only item\n\n",
			want: []string{"- Only item"},
		},
		{
			name: "empty input",
			in:   "",
			want: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseActionItems(tt.in)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ParseActionItems() = %#v, want %#v", got, tt.want)
			}
		})
	}
}

func TestParseActionItemsIdempotent(t *testing.T) {
	in := "Follow up with client\n- Send contract by Friday\nsome stray note\n• Ship release"

	first := ParseActionItems(in)
	second := ParseActionItems(in)

	if !reflect.DeepEqual(first, second) {
		t.Errorf("repeated parsing differed: %v vs %v", first, second)
	}
}
