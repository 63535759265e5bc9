package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRunConfig_Validate(t *testing.T) {
	cases := []struct {
		name    string
		cfg     RunConfig
		wantErr bool
	}{
		{"valid", RunConfig{Capacity: 64, MaxUniqueKeys: 1024, Seed: 1}, false},
		{"minimum capacity", RunConfig{Capacity: 1, MaxUniqueKeys: 1, Seed: 0}, false},
		{"maximum capacity", RunConfig{Capacity: MaxFrameCount, MaxUniqueKeys: 16, Seed: 0}, false},
		{"zero capacity", RunConfig{Capacity: 0, MaxUniqueKeys: 16, Seed: 0}, true},
		{"negative capacity", RunConfig{Capacity: -1, MaxUniqueKeys: 16, Seed: 0}, true},
		{"capacity over maximum", RunConfig{Capacity: MaxFrameCount + 1, MaxUniqueKeys: 16, Seed: 0}, true},
		{"zero max unique keys", RunConfig{Capacity: 4, MaxUniqueKeys: 0, Seed: 0}, true},
		{"negative max unique keys", RunConfig{Capacity: 4, MaxUniqueKeys: -8, Seed: 0}, true},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			err := c.cfg.Validate()
			if c.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
