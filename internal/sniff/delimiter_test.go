package sniff

import "testing"

func TestDelimiter(t *testing.T) {
	tests := []struct {
		name         string
		sample       string
		complete     bool
		want         rune
		wantFallback bool
	}{
		{
			name:     "semicolon delimited",
			sample:   "id;name;city\n1;alice;oslo\n2;bob;bergen\n",
			complete: true,
			want:     ';',
		},
		{
			name:     "comma delimited",
			sample:   "id,name\n1,alice\n2,bob\n",
			complete: true,
			want:     ',',
		},
		{
			name:     "tab delimited",
			sample:   "id\tname\n1\talice\n",
			complete: true,
			want:     '\t',
		},
		{
			name:     "pipe delimited",
			sample:   "id|name\n1|alice\n",
			complete: true,
			want:     '|',
		},
		{
			name:     "higher field count wins",
			sample:   "a;b,c;d\ne;f,g;h\n",
			complete: true,
			want:     ';',
		},
		{
			name:     "priority order breaks ties",
			sample:   "a,b;c\nd,e;f\n",
			complete: true,
			want:     ',',
		},
		{
			name:         "inconsistent counts fall back",
			sample:       "a,b,c\nd,e\nf\n",
			complete:     true,
			want:         ',',
			wantFallback: true,
		},
		{
			name:         "single column falls back",
			sample:       "alpha\nbeta\ngamma\n",
			complete:     true,
			want:         ',',
			wantFallback: true,
		},
		{
			name:         "empty sample falls back",
			sample:       "",
			complete:     true,
			want:         ',',
			wantFallback: true,
		},
		{
			name:     "crlf line endings",
			sample:   "id;name\r\n1;alice\r\n",
			complete: true,
			want:     ';',
		},
		{
			name:     "blank lines are skipped",
			sample:   "id;name\n\n1;alice\n",
			complete: true,
			want:     ';',
		},
		{
			name: "truncated sample drops the partial line",
			// The fragment "2" was cut before its separator and would
			// disqualify ';' if it were counted.
			sample:   "id;name\n1;alice\n2",
			complete: false,
			want:     ';',
		},
		{
			name:     "complete sample keeps an unterminated last line",
			sample:   "id;name\n1;alice",
			complete: true,
			want:     ';',
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, fallback := Delimiter(tt.sample, tt.complete)
			if got != tt.want {
				t.Errorf("Delimiter = %q, want %q", got, tt.want)
			}
			if fallback != tt.wantFallback {
				t.Errorf("fallback = %v, want %v", fallback, tt.wantFallback)
			}
		})
	}
}
