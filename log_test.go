package sdlimdraw

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
)

func TestSetLogger(t *testing.T) {
	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)
	SetLogger(logger)
	defer SetLogger(nil)

	if log() != logrus.FieldLogger(logger) {
		t.Fatal("log() does not return the logger passed to SetLogger")
	}

	// The overwrite check fails before the surface is used.
	dir, err := ioutil.TempDir("", "sdlimdraw")
	if err != nil {
		t.Fatal(err)
	}
	defer os.RemoveAll(dir)

	if err = SaveSurface(nil, dir, PNG, SaveOptions{}); err == nil {
		t.Fatal("saving over a directory succeeded")
	}
	if len(hook.Entries) != 0 {
		t.Errorf("refused save logged %d entries", len(hook.Entries))
	}

	imd, err := NewSoftwareImDraw(2, 2)
	if err != nil {
		t.Fatal(err)
	}
	defer imd.Close()
	if err = imd.Save(filepath.Join(dir, "canvas.bmp"), BMP, SaveOptions{}); err != nil {
		t.Fatal(err)
	}

	entry := hook.LastEntry()
	if entry == nil || entry.Message != "Saving surface" || entry.Level != logrus.DebugLevel {
		t.Fatalf("last entry = %+v, want debug \"Saving surface\"", entry)
	}
	if entry.Data["format"] != BMP {
		t.Errorf("logged format = %v, want %v", entry.Data["format"], BMP)
	}
}

func TestSetLoggerNilRestoresDefault(t *testing.T) {
	logger, _ := test.NewNullLogger()
	SetLogger(logger)
	SetLogger(nil)

	entry, ok := log().(*logrus.Entry)
	if !ok {
		t.Fatalf("default logger is %T, want *logrus.Entry", log())
	}
	if entry.Logger != logrus.StandardLogger() || entry.Data["pkg"] != "sdlimdraw" {
		t.Errorf("default logger = %+v, want standard logger with pkg field", entry)
	}
}
