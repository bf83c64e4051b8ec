package embed

import "testing"

func TestExtractID(t *testing.T) {
	tests := []struct {
		name  string
		in    string
		want  string
		found bool
	}{
		{"watch url", "https://www.youtube.com/watch?v=dQw4w9WgXcQ", "dQw4w9WgXcQ", true},
		{"watch url extra params", "https://youtube.com/watch?feature=share&v=dQw4w9WgXcQ&t=42", "dQw4w9WgXcQ", true},
		{"mobile watch url", "https://m.youtube.com/watch?v=dQw4w9WgXcQ", "dQw4w9WgXcQ", true},
		{"no scheme", "youtube.com/watch?v=dQw4w9WgXcQ", "dQw4w9WgXcQ", true},
		{"short link", "https://youtu.be/dQw4w9WgXcQ", "dQw4w9WgXcQ", true},
		{"short link with time", "https://youtu.be/dQw4w9WgXcQ?t=10", "dQw4w9WgXcQ", true},
		{"embed path", "https://www.youtube.com/embed/dQw4w9WgXcQ?autoplay=1", "dQw4w9WgXcQ", true},
		{"nocookie embed", "https://www.youtube-nocookie.com/embed/dQw4w9WgXcQ", "dQw4w9WgXcQ", true},
		{"shorts path", "https://www.youtube.com/shorts/abcDEF_12-x", "abcDEF_12-x", true},
		{"bare id", "dQw4w9WgXcQ", "dQw4w9WgXcQ", true},
		{"bare id padded", "  dQw4w9WgXcQ ", "dQw4w9WgXcQ", true},
		{"empty", "", "", false},
		{"watch without v", "https://www.youtube.com/watch", "", false},
		{"too short", "https://youtu.be/abc", "", false},
		{"bad characters", "https://www.youtube.com/watch?v=dQw4w9WgX!Q", "", false},
		{"other host", "https://vimeo.com/123456789", "", false},
		{"random text", "not a video", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ExtractID(tt.in)
			if ok != tt.found || got != tt.want {
				t.Errorf("ExtractID(%q) = (%q, %v), want (%q, %v)", tt.in, got, ok, tt.want, tt.found)
			}
		})
	}
}
