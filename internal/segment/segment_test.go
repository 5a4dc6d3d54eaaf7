// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package segment

import (
	"reflect"
	"testing"
)

func TestSplit(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			"two sentences",
			"This Agreement is entered into on April 6, 2007. Total contract value: INR 5,000.",
			[]string{
				"This Agreement is entered into on April 6, 2007.",
				"Total contract value: INR 5,000.",
			},
		},
		{
			"newline separated",
			"First clause ends here.\nSecond clause follows.",
			[]string{"First clause ends here.", "Second clause follows."},
		},
		{
			"trailing text without terminator",
			"A complete sentence. A dangling fragment",
			[]string{"A complete sentence.", "A dangling fragment"},
		},
		{
			"decimal number does not split",
			"The rate is 2.5 percent per annum. Late fees apply.",
			[]string{"The rate is 2.5 percent per annum.", "Late fees apply."},
		},
		{
			"question and exclamation",
			"Is this binding? It is!",
			[]string{"Is this binding?", "It is!"},
		},
		{"empty", "", nil},
		{"whitespace only", "  \n\t ", nil},
	}

	for _, tt := range tests {
		got := Split(tt.text)
		if !reflect.DeepEqual(got, tt.want) {
			t.Errorf("%s: Split = %#v, want %#v", tt.name, got, tt.want)
		}
	}
}

func TestSplitPreservesOrder(t *testing.T) {
	got := Split("One. Two. Three.")
	want := []string{"One.", "Two.", "Three."}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Split = %v, want %v", got, want)
	}
}
