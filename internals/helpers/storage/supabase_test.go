package storage

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSanitizeFilename(t *testing.T) {
	assert.Equal(t, "sampul_buku.webp", sanitizeFilename("sampul buku.webp"))
	assert.Equal(t, "laskar-pelangi_1.jpg", sanitizeFilename("laskar-pelangi 1.jpg"))
	assert.Equal(t, "a_b_.png", sanitizeFilename("a/b?.png"))
}

func TestGenerateUniqueFilename(t *testing.T) {
	name := GenerateUniqueFilename("covers", "sampul buku.webp")

	assert.True(t, strings.HasPrefix(name, "covers/"))
	assert.True(t, strings.HasSuffix(name, "-sampul_buku.webp"))

	// dua panggilan tidak boleh tabrakan
	assert.NotEqual(t, name, GenerateUniqueFilename("covers", "sampul buku.webp"))
}

func TestExtractSupabasePath(t *testing.T) {
	t.Run("url publik valid", func(t *testing.T) {
		bucket, path, err := ExtractSupabasePath(
			"https://xyz.supabase.co/storage/v1/object/public/book-covers/covers/20260301-abc-sampul.webp")
		require.NoError(t, err)
		assert.Equal(t, "book-covers", bucket)
		assert.Equal(t, "covers/20260301-abc-sampul.webp", path)
	})

	t.Run("url bukan object publik", func(t *testing.T) {
		_, _, err := ExtractSupabasePath("https://xyz.supabase.co/storage/v1/whatever")
		assert.Error(t, err)
	})
}

func TestPathExt(t *testing.T) {
	assert.Equal(t, ".webp", pathExt("cover.webp"))
	assert.Equal(t, ".jpg", pathExt("a.b.jpg"))
	assert.Equal(t, "", pathExt("tanpa-ekstensi"))
}
