package report

import "testing"

func TestExpand(t *testing.T) {
	data := map[string]any{
		"report": map[string]any{
			"title": "Kanji summary",
			"page":  3,
		},
		"items": []any{"一", "二", []any{"nested"}},
	}
	cases := []struct {
		in   string
		want string
	}{
		{"${report.title} / page ${report.page}", "Kanji summary / page 3"},
		{"first: ${items[0]}", "first: 一"},
		{"${items[2][0]}", "nested"},
		// 解析不到的占位符原样保留
		{"${missing.path}", "${missing.path}"},
		{"${items[9]}", "${items[9]}"},
		{"${items[x]}", "${items[x]}"},
		{"no placeholders", "no placeholders"},
		{"${}", "${}"},
	}
	for _, tc := range cases {
		if got := Expand(tc.in, data); got != tc.want {
			t.Errorf("Expand(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestExpandNilData(t *testing.T) {
	if got := Expand("${a.b}", nil); got != "${a.b}" {
		t.Fatalf("Expand with nil data = %q", got)
	}
}
