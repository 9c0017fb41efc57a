package config

import "testing"

func TestGapRangeFitsAboveGround(t *testing.T) {
	p := DefaultPhysics()
	minY, maxY := p.GapRange()
	if minY != 60 || maxY != 300 {
		t.Fatalf("gap range = [%v, %v], want [60, 300]", minY, maxY)
	}
	if maxY+p.PipeGap+p.GapMargin != p.GroundY() {
		t.Fatalf("lowest gap bottom %v does not leave margin above ground %v", maxY+p.PipeGap, p.GroundY())
	}
}

func TestFromEnv(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		want Settings
	}{
		{
			name: "values",
			env: map[string]string{
				EnvDataDir: "/tmp/flappy",
				EnvMute:    "true",
				EnvVolume:  "-1.5",
				EnvSeed:    "42",
			},
			want: Settings{DataDir: "/tmp/flappy", Mute: true, Volume: -1.5, Seed: 42},
		},
		{
			name: "malformed falls back",
			env: map[string]string{
				EnvDataDir: "/data",
				EnvMute:    "loud",
				EnvVolume:  "max",
				EnvSeed:    "0x10",
			},
			want: Settings{DataDir: "/data"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FromEnv(func(k string) string { return tt.env[k] })
			if got != tt.want {
				t.Fatalf("FromEnv() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestFromEnvDefaultDataDir(t *testing.T) {
	got := FromEnv(func(string) string { return "" })
	if got.DataDir == "" {
		t.Fatal("default data dir is empty")
	}
	if got.Mute || got.Volume != 0 || got.Seed != 0 {
		t.Fatalf("defaults = %+v, want zero knobs", got)
	}
}
