package resolver

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		name      string
		url       string
		wantKind  RefKind
		wantValue string
	}{
		{
			name:      "watch URL",
			url:       "https://www.youtube.com/watch?v=z1sKwev21gE",
			wantKind:  KindVideo,
			wantValue: "z1sKwev21gE",
		},
		{
			name:      "watch URL with extra params",
			url:       "https://www.youtube.com/watch?v=z1sKwev21gE&t=42s",
			wantKind:  KindVideo,
			wantValue: "z1sKwev21gE",
		},
		{
			name:      "short link",
			url:       "https://youtu.be/dQw4w9WgXcQ",
			wantKind:  KindVideo,
			wantValue: "dQw4w9WgXcQ",
		},
		{
			name:      "shorts URL",
			url:       "https://www.youtube.com/shorts/abc123XYZ_-",
			wantKind:  KindShort,
			wantValue: "abc123XYZ_-",
		},
		{
			name:      "canonical channel URL",
			url:       "https://www.youtube.com/channel/UCazRf1jcMNZEL1MS5i_rWQQ",
			wantKind:  KindChannelID,
			wantValue: "UCazRf1jcMNZEL1MS5i_rWQQ",
		},
		{
			name:      "channel URL with videos tab",
			url:       "https://www.youtube.com/channel/UCazRf1jcMNZEL1MS5i_rWQQ/videos",
			wantKind:  KindChannelID,
			wantValue: "UCazRf1jcMNZEL1MS5i_rWQQ",
		},
		{
			name:      "custom slug",
			url:       "https://youtube.com/c/SomeChannel",
			wantKind:  KindCustomSlug,
			wantValue: "SomeChannel",
		},
		{
			name:      "custom slug with videos suffix",
			url:       "https://www.youtube.com/c/SomeChannel/videos",
			wantKind:  KindCustomSlug,
			wantValue: "SomeChannel",
		},
		{
			name:      "user URL",
			url:       "https://www.youtube.com/user/OldSchoolName/featured",
			wantKind:  KindCustomSlug,
			wantValue: "OldSchoolName",
		},
		{
			name:      "handle URL",
			url:       "https://www.youtube.com/@Wendigoon",
			wantKind:  KindHandle,
			wantValue: "Wendigoon",
		},
		{
			name:      "handle URL with community tab",
			url:       "https://www.youtube.com/@Wendigoon/community",
			wantKind:  KindHandle,
			wantValue: "Wendigoon",
		},
		{
			name:      "bare handle",
			url:       "@itsbenaminute",
			wantKind:  KindHandle,
			wantValue: "itsbenaminute",
		},
		{
			name:     "unrelated URL",
			url:      "https://example.com/whatever",
			wantKind: KindUnknown,
		},
		{
			name:     "empty string",
			url:      "",
			wantKind: KindUnknown,
		},
		{
			name:     "whitespace only",
			url:      "   ",
			wantKind: KindUnknown,
		},
		{
			name:      "no scheme",
			url:       "youtube.com/channel/UCTuDW_RrS0Di2L7CsJfFOnA",
			wantKind:  KindChannelID,
			wantValue: "UCTuDW_RrS0Di2L7CsJfFOnA",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ref := Resolve(tt.url)
			assert.Equal(t, tt.wantKind, ref.Kind)
			assert.Equal(t, tt.wantValue, ref.Value)
		})
	}
}

// Resolving the canonical URL a record gets rewritten to must yield the same
// identifier that produced it.
func TestResolveRoundTrip(t *testing.T) {
	ids := []string{
		"UCazRf1jcMNZEL1MS5i_rWQQ",
		"UCTuDW_RrS0Di2L7CsJfFOnA",
		"UCsvqVGtbbyHaMoevxPAq9Fg",
	}
	for _, id := range ids {
		ref := Resolve(ChannelURL(id))
		assert.Equal(t, KindChannelID, ref.Kind)
		assert.Equal(t, id, ref.Value)

		again := Resolve(ChannelURL(ref.Value))
		assert.Equal(t, ref, again)
	}
}

// A trailing tab segment must never change what gets extracted.
func TestResolveSuffixStripping(t *testing.T) {
	slugs := []string{"SomeChannel", "abc_def-123", "MrBeast"}
	suffixes := []string{"/videos", "/featured", "/community", "/playlists", "/"}

	for _, slug := range slugs {
		base := Resolve("https://youtube.com/c/" + slug)
		for _, suffix := range suffixes {
			withSuffix := Resolve("https://youtube.com/c/" + slug + suffix)
			assert.Equal(t, base, withSuffix, "slug %q suffix %q", slug, suffix)
		}
	}
}
