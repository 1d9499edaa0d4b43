package updater

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSemver(t *testing.T) {
	tests := []struct {
		in      string
		want    Semver
		wantErr bool
	}{
		{in: "1.2.3", want: Semver{1, 2, 3}},
		{in: "v0.4.0", want: Semver{0, 4, 0}},
		{in: "2.0.0-rc.1", want: Semver{2, 0, 0}},
		{in: "1.2.3+build.5", want: Semver{1, 2, 3}},
		{in: "dev", wantErr: true},
		{in: "1.2", wantErr: true},
		{in: "1.x.3", wantErr: true},
	}
	for _, tt := range tests {
		got, err := ParseSemver(tt.in)
		if tt.wantErr {
			assert.Error(t, err, tt.in)
			continue
		}
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
}

func TestSemverLessThan(t *testing.T) {
	assert.True(t, Semver{1, 2, 3}.LessThan(Semver{2, 0, 0}))
	assert.True(t, Semver{1, 2, 3}.LessThan(Semver{1, 3, 0}))
	assert.True(t, Semver{1, 2, 3}.LessThan(Semver{1, 2, 4}))
	assert.False(t, Semver{1, 2, 3}.LessThan(Semver{1, 2, 3}))
	assert.False(t, Semver{2, 0, 0}.LessThan(Semver{1, 9, 9}))
}

func TestSemverString(t *testing.T) {
	assert.Equal(t, "1.2.3", Semver{1, 2, 3}.String())
}
