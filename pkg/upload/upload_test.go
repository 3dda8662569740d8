package upload

import (
    "bytes"
    "mime/multipart"
    "os"
    "strings"
    "testing"

    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/require"
)

var pngHeader = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}

func fileHeader(t *testing.T, name string, content []byte) *multipart.FileHeader {
    t.Helper()
    var buf bytes.Buffer
    mw := multipart.NewWriter(&buf)
    fw, err := mw.CreateFormFile("file", name)
    require.NoError(t, err)
    _, err = fw.Write(content)
    require.NoError(t, err)
    require.NoError(t, mw.Close())

    form, err := multipart.NewReader(&buf, mw.Boundary()).ReadForm(1 << 20)
    require.NoError(t, err)
    t.Cleanup(func() { _ = form.RemoveAll() })
    return form.File["file"][0]
}

func TestSaveImagePNG(t *testing.T) {
    dir := t.TempDir()
    fh := fileHeader(t, "pic.bin", append(pngHeader, make([]byte, 64)...))

    path, err := SaveImage(fh, dir, "avatar", 1<<20)
    require.NoError(t, err)
    assert.True(t, strings.HasSuffix(path, ".png"), path)

    // 扩展名来自嗅探结果而不是原始文件名
    _, err = os.Stat(path)
    assert.NoError(t, err)
}

func TestSaveImageRejectsNonImage(t *testing.T) {
    fh := fileHeader(t, "doc.png", []byte("plain text pretending to be an image"))

    _, err := SaveImage(fh, t.TempDir(), "avatar", 1<<20)
    assert.ErrorIs(t, err, ErrImageFormat)
}

func TestSaveImageSizeLimit(t *testing.T) {
    fh := fileHeader(t, "pic.png", append(pngHeader, make([]byte, 1024)...))

    _, err := SaveImage(fh, t.TempDir(), "avatar", 100)
    assert.ErrorIs(t, err, ErrImageTooLarge)
}
