//go:build !unix

package adapter

import (
	"os"
	"os/exec"
)

func lookupEnv(key string) string {
	return os.Getenv(key)
}

func isRoot() bool {
	return false
}

func canWriteDir(dir string) bool {
	f, err := os.CreateTemp(dir, ".ammo-probe-*")
	if err != nil {
		return false
	}

	name := f.Name()
	_ = f.Close()
	_ = os.Remove(name)

	return true
}

func isReadOnlyFS(error) bool {
	return false
}

func dropPrivileges(*exec.Cmd, func(string) string) error {
	return nil
}
