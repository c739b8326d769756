package prefabs

import (
	"image/color"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestLoadPlayerSpec(t *testing.T) {
	spec, err := LoadPlayerSpec()
	if err != nil {
		t.Fatalf("load player spec: %v", err)
	}
	if spec.ScrollSpeed != 2 {
		t.Fatalf("expected scroll speed 2, got %v", spec.ScrollSpeed)
	}
	if spec.Gravity != 0.4 {
		t.Fatalf("expected gravity 0.4, got %v", spec.Gravity)
	}
	if spec.Hitbox.Width != 30 || spec.Hitbox.Height != 30 {
		t.Fatalf("expected 30x30 hitbox, got %+v", spec.Hitbox)
	}
}

func TestLoadThemeSpec(t *testing.T) {
	spec, err := LoadThemeSpec()
	if err != nil {
		t.Fatalf("load theme spec: %v", err)
	}
	if got := spec.Goal.Color.(color.NRGBA); got != (color.NRGBA{R: 0x4a, G: 0xde, B: 0x80, A: 0xff}) {
		t.Fatalf("unexpected goal color %+v", got)
	}
	if spec.FadeAlpha != 0.2 {
		t.Fatalf("expected fade alpha 0.2, got %v", spec.FadeAlpha)
	}
	if spec.Meter.FullScale != 100 || spec.Meter.Height != 100 {
		t.Fatalf("unexpected meter %+v", spec.Meter)
	}
}

func TestYAMLColor(t *testing.T) {
	tests := []struct {
		name    string
		src     string
		want    color.NRGBA
		wantErr bool
	}{
		{"rgb", `"#ff0080"`, color.NRGBA{R: 0xff, G: 0x00, B: 0x80, A: 0xff}, false},
		{"rgba", `"#ffffff4d"`, color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0x4d}, false},
		{"short", `"#fff"`, color.NRGBA{}, true},
		{"not_hex", `"#gggggg"`, color.NRGBA{}, true},
		{"not_scalar", `[1, 2]`, color.NRGBA{}, true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var c YAMLColor
			err := yaml.Unmarshal([]byte(tc.src), &c)
			if tc.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got := c.Color.(color.NRGBA); got != tc.want {
				t.Fatalf("expected %+v, got %+v", tc.want, got)
			}
		})
	}
}
