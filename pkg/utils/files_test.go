package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAllowedUploadFile(t *testing.T) {
	for _, name := range []string{"photo.png", "photo.JPG", "scan.jpeg", "anim.gif", "receipt.pdf"} {
		assert.True(t, AllowedUploadFile(name), name)
	}
	for _, name := range []string{"malware.exe", "script.php", "archive.zip", "noext"} {
		assert.False(t, AllowedUploadFile(name), name)
	}
}

func TestFileExt(t *testing.T) {
	assert.Equal(t, "png", FileExt("a.PNG"))
	assert.Equal(t, "", FileExt("noext"))
}

func TestSanitizeFilenameStripsPaths(t *testing.T) {
	assert.Equal(t, "passwd", SanitizeFilename("../../etc/passwd"))
	assert.Equal(t, "user_example_com", SanitizeFilename("user example com"))
	assert.Equal(t, "merchant@shop.sa", SanitizeFilename("merchant@shop.sa"))
}
