package discovery

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		cpuinfo string
		want    Board
	}{
		{
			name: "pi 1 model b",
			cpuinfo: `processor	: 0
model name	: ARMv6-compatible processor rev 7 (v6l)
Hardware	: BCM2835
Revision	: 1000000e
`,
			want: Board{Model: 1, Revision: 0x000e, PeriphBase: BaseBCM2835},
		},
		{
			name: "pi 3",
			cpuinfo: `processor	: 0
model name	: ARMv7 Processor rev 4 (v7l)
processor	: 1
model name	: ARMv7 Processor rev 4 (v7l)
Revision	: a02082
`,
			want: Board{Model: 2, Revision: 0xa02082, PeriphBase: BaseBCM2836},
		},
		{
			name:    "unknown",
			cpuinfo: "processor\t: 0\nvendor_id\t: GenuineIntel\n",
			want:    Board{PeriphBase: BaseBCM2835},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(strings.NewReader(tt.cpuinfo))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseBadRevision(t *testing.T) {
	_, err := Parse(strings.NewReader("model name : ARMv6\nRevision : zz\n"))
	assert.Error(t, err)
}
