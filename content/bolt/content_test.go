package bolt

import (
	"os"
	"testing"

	"github.com/Dev-MihirParmar/Enlighten/content"
)

func createRepository(t *testing.T) (*ContentRepository, func()) {
	tmpFile, err := os.CreateTemp("", "")
	if err != nil {
		t.Fatal("could not create tmp file:", err)
	}

	filename := tmpFile.Name()
	tmpFile.Close()
	os.Remove(filename)

	driver := &Driver{}
	if err := driver.Open(filename); err != nil {
		os.Remove(filename)
		t.Fatalf("could not open bolt on file %s: %v", filename, err)
	}

	return NewContentRepository(driver), func() {
		driver.Close()
		os.Remove(filename)
	}
}

func TestContentRepository(t *testing.T) {
	repo, f := createRepository(t)
	defer f()

	content.TestRepository(t, repo)
}
