package suggestion

import "testing"

// TestExtractJSON verifies payload extraction from the reply shapes
// models actually produce.
func TestExtractJSON(t *testing.T) {
	tests := []struct {
		name  string
		reply string
		want  string
	}{
		{
			name:  "bare object",
			reply: `{"font_name":"Lora","reason":"x"}`,
			want:  `{"font_name":"Lora","reason":"x"}`,
		},
		{
			name:  "fenced with language tag",
			reply: "```json\n{\"font_name\":\"Lora\",\"reason\":\"x\"}\n```",
			want:  `{"font_name":"Lora","reason":"x"}`,
		},
		{
			name:  "fenced without language tag",
			reply: "```\n{\"font_name\":\"Lora\",\"reason\":\"x\"}\n```",
			want:  `{"font_name":"Lora","reason":"x"}`,
		},
		{
			name:  "prose around the object",
			reply: `Sure! {"font_name":"Lora","reason":"x"} Hope that helps.`,
			want:  `{"font_name":"Lora","reason":"x"}`,
		},
		{
			name:  "braces inside string values",
			reply: `{"font_name":"Lora","reason":"curly {braces} and a \" quote"}`,
			want:  `{"font_name":"Lora","reason":"curly {braces} and a \" quote"}`,
		},
		{
			name:  "nested object",
			reply: `{"outer":{"inner":1},"font_name":"Lora"} trailing`,
			want:  `{"outer":{"inner":1},"font_name":"Lora"}`,
		},
		{
			name:  "no object falls through trimmed",
			reply: "  just words  ",
			want:  "just words",
		},
		{
			name:  "empty reply",
			reply: "",
			want:  "",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := extractJSON(tc.reply); got != tc.want {
				t.Errorf("extractJSON(%q) = %q, want %q", tc.reply, got, tc.want)
			}
		})
	}
}

// TestFirstJSONObject_Unbalanced verifies an unterminated object is not
// returned as a match.
func TestFirstJSONObject_Unbalanced(t *testing.T) {
	if _, ok := firstJSONObject(`{"font_name":"Lora"`); ok {
		t.Error("unterminated object should not match")
	}
}
