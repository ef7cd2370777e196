//go:build unix

package adapter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSudoCredential(t *testing.T) {
	tests := []struct {
		name    string
		env     map[string]string
		wantOK  bool
		wantUID uint32
		wantGID uint32
		wantErr bool
	}{
		{name: "not under sudo", env: map[string]string{}},
		{name: "only uid", env: map[string]string{"SUDO_UID": "1000"}},
		{name: "invoking user", env: map[string]string{"SUDO_UID": "1000", "SUDO_GID": "1001"}, wantOK: true, wantUID: 1000, wantGID: 1001},
		{name: "root invoked sudo", env: map[string]string{"SUDO_UID": "0", "SUDO_GID": "0"}},
		{name: "malformed uid", env: map[string]string{"SUDO_UID": "abc", "SUDO_GID": "1000"}, wantErr: true},
		{name: "malformed gid", env: map[string]string{"SUDO_UID": "1000", "SUDO_GID": "-1"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cred, ok, err := sudoCredential(func(key string) string { return tt.env[key] })
			if tt.wantErr {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantOK, ok)

			if !tt.wantOK {
				assert.Nil(t, cred)
				return
			}

			assert.Equal(t, tt.wantUID, cred.Uid)
			assert.Equal(t, tt.wantGID, cred.Gid)
		})
	}
}

func TestCanWriteDir(t *testing.T) {
	assert.True(t, canWriteDir(t.TempDir()))
	assert.False(t, canWriteDir("/nonexistent/ammo/dir"))
}
