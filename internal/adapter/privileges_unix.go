//go:build unix

package adapter

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"os/user"
	"strconv"
	"syscall"

	"golang.org/x/sys/unix"
)

func lookupEnv(key string) string {
	return os.Getenv(key)
}

func isRoot() bool {
	return unix.Geteuid() == 0
}

// canWriteDir asks the kernel whether the real user may create entries in dir.
func canWriteDir(dir string) bool {
	return unix.Access(dir, unix.W_OK|unix.X_OK) == nil
}

func isReadOnlyFS(err error) bool {
	return errors.Is(err, unix.EROFS)
}

// dropPrivileges makes a child started by root under sudo run as the user who
// invoked sudo, with that user's HOME.
func dropPrivileges(cmd *exec.Cmd, getenv func(string) string) error {
	if !isRoot() {
		return nil
	}

	cred, ok, err := sudoCredential(getenv)
	if err != nil || !ok {
		return err
	}

	cmd.SysProcAttr = &syscall.SysProcAttr{Credential: cred}

	if u, err := user.LookupId(strconv.FormatUint(uint64(cred.Uid), 10)); err == nil {
		cmd.Env = append(os.Environ(), "HOME="+u.HomeDir, "USER="+u.Username, "LOGNAME="+u.Username)
	}

	return nil
}

// sudoCredential reads SUDO_UID and SUDO_GID. ok is false when they are
// absent or name root itself.
func sudoCredential(getenv func(string) string) (*syscall.Credential, bool, error) {
	rawUID, rawGID := getenv("SUDO_UID"), getenv("SUDO_GID")
	if rawUID == "" || rawGID == "" {
		return nil, false, nil
	}

	uid, err := strconv.ParseUint(rawUID, 10, 32)
	if err != nil {
		return nil, false, fmt.Errorf("parse SUDO_UID %q: %w", rawUID, err)
	}

	gid, err := strconv.ParseUint(rawGID, 10, 32)
	if err != nil {
		return nil, false, fmt.Errorf("parse SUDO_GID %q: %w", rawGID, err)
	}

	if uid == 0 {
		return nil, false, nil
	}

	return &syscall.Credential{Uid: uint32(uid), Gid: uint32(gid), NoSetGroups: true}, true, nil
}
