package sprites

import (
	"testing"

	"github.com/JPM1118/spritegen/internal/palette"
)

func TestParseKind(t *testing.T) {
	tests := []struct {
		input   string
		want    Kind
		wantErr bool
	}{
		{"enemy", KindEnemy, false},
		{"projectile", KindProjectile, false},
		{"icon", KindIcon, false},
		{"Enemy", "", true},
		{"boss", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		got, err := ParseKind(tt.input)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseKind(%q) err = %v, wantErr %v", tt.input, err, tt.wantErr)
		}
		if got != tt.want {
			t.Errorf("ParseKind(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestGenerate_Dispatch(t *testing.T) {
	p := palette.MustLookup(palette.Fire)

	// Projectiles never touch the stream.
	img, err := Generate(Params{Kind: KindProjectile, Size: 16, Palette: p}, nil)
	if err != nil {
		t.Fatal(err)
	}
	if img.NRGBAAt(8, 8) != p[0] {
		t.Errorf("projectile center = %v, want %v", img.NRGBAAt(8, 8), p[0])
	}

	img, err = Generate(Params{Kind: KindIcon, Size: 10, Palette: p}, NewStream(1))
	if err != nil {
		t.Fatal(err)
	}
	if img.NRGBAAt(0, 0) != p.Last() {
		t.Errorf("icon corner = %v, want border color", img.NRGBAAt(0, 0))
	}

	a, err := Generate(Params{Kind: KindEnemy, Size: 12, Palette: p, Density: 0.5}, NewStream(2))
	if err != nil {
		t.Fatal(err)
	}
	b, _ := Symmetric(12, p, 0.5, NewStream(2))
	if string(a.Pix) != string(b.Pix) {
		t.Error("Generate(enemy) should match Symmetric with the same stream")
	}
}

func TestGenerate_UnknownKind(t *testing.T) {
	if _, err := Generate(Params{Kind: "boss", Size: 8}, NewStream(1)); err == nil {
		t.Error("unknown kind should error")
	}
}
