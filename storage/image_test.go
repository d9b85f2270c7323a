package storage

import (
	"bytes"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"snapFeed/domain"
	"snapFeed/errs"
)

var (
	pngBytes  = append([]byte("\x89PNG\r\n\x1a\n"), make([]byte, 64)...)
	jpegBytes = append([]byte("\xff\xd8\xff\xe0"), make([]byte, 64)...)
)

// uploadFile round-trips content through a real multipart form so the store
// sees the same file type it gets from a request.
func uploadFile(t *testing.T, name string, content []byte) multipart.File {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile("image", name)
	require.NoError(t, err)
	_, err = fw.Write(content)
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	form, err := multipart.NewReader(&buf, mw.Boundary()).ReadForm(domain.MaxUploadSize)
	require.NoError(t, err)
	t.Cleanup(func() { form.RemoveAll() })
	file, err := form.File["image"][0].Open()
	require.NoError(t, err)
	t.Cleanup(func() { file.Close() })
	return file
}

// inTempDir runs the test from a scratch working directory, since the store
// writes relative to the process root.
func inTempDir(t *testing.T) {
	t.Helper()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { os.Chdir(wd) })
}

func TestCreateStoresFile(t *testing.T) {
	inTempDir(t)
	is := NewImageService()

	img := &domain.Image{
		OwnerType: domain.OwnerTypeUser,
		OwnerID:   1,
		File:      uploadFile(t, "vacation.png", pngBytes),
		Filename:  "vacation.png",
	}
	require.NoError(t, is.Create(img))

	// The client filename never becomes a path component.
	require.NotContains(t, img.Filename, "vacation")
	require.True(t, strings.HasSuffix(img.Filename, ".png"))
	require.Equal(t, "/images/user/1/"+img.Filename, img.URL)

	stored, err := os.ReadFile(filepath.Join("images", "user", "1", img.Filename))
	require.NoError(t, err)
	require.Equal(t, pngBytes, stored)
}

func TestCreateNormalizesJpgExtension(t *testing.T) {
	inTempDir(t)
	is := NewImageService()

	img := &domain.Image{
		OwnerType: domain.OwnerTypeUser,
		OwnerID:   1,
		File:      uploadFile(t, "photo.jpg", jpegBytes),
		Filename:  "photo.jpg",
	}
	require.NoError(t, is.Create(img))
	require.True(t, strings.HasSuffix(img.Filename, ".jpeg"))
}

func TestCreateRejectsBadUploads(t *testing.T) {
	inTempDir(t)
	is := NewImageService()

	for name, img := range map[string]*domain.Image{
		"wrong extension": {
			OwnerType: domain.OwnerTypeUser, OwnerID: 1,
			File: uploadFile(t, "script.txt", pngBytes), Filename: "script.txt",
		},
		"not an image": {
			OwnerType: domain.OwnerTypeUser, OwnerID: 1,
			File: uploadFile(t, "fake.png", []byte("plain text, no image magic")), Filename: "fake.png",
		},
		"extension mismatch": {
			OwnerType: domain.OwnerTypeUser, OwnerID: 1,
			File: uploadFile(t, "photo.png", jpegBytes), Filename: "photo.png",
		},
	} {
		err := is.Create(img)
		require.Error(t, err, name)
		require.Equal(t, errs.EINVALID, errs.ErrorCode(err), name)
	}
}
