package profile

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/indieorganic/OpenCello/geom"
)

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "viola.yaml")

	want := Default()
	want.NeckFlat = 48
	want.Axis = "y"
	if err := want.Save(path); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if *got != *want {
		t.Errorf("round trip changed the profile: got %+v, want %+v", got, want)
	}
}

func TestLoadValidates(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("neck_flat: -5\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("expected an error for a negative neck flat")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Fatal("expected an error for a missing file")
	}
}

func TestParamsDefaultsAxis(t *testing.T) {
	p := Default()
	p.Axis = ""
	params, err := p.Params()
	if err != nil {
		t.Fatalf("Params: %v", err)
	}
	if params.Axis != geom.AxisX {
		t.Errorf("axis = %v, want x", params.Axis)
	}
}

func TestParamsRejectsUnknownAxis(t *testing.T) {
	p := Default()
	p.Axis = "diagonal"
	if _, err := p.Params(); err == nil || !strings.Contains(err.Error(), "diagonal") {
		t.Fatalf("err = %v, want a complaint naming the axis", err)
	}
}

func TestDefaultMatchesReferenceCello(t *testing.T) {
	p := Default()
	if p.Axis != "x" || p.NeckFlat != 62 || p.EndFlat != 58 ||
		p.CornerFlat != 34 || p.CornerAngle != 45 || p.PinDiameter != 6 {
		t.Errorf("unexpected defaults: %+v", p)
	}
}
