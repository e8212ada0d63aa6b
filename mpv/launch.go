package mpv

import (
	"os/exec"

	"github.com/user/video-trimmer-cli/deps"
)

// LaunchMpv starts mpv paused on the given video with the IPC socket enabled.
// The player is kept open at end of file so seeks back into the selection keep working.
// Returns the *exec.Cmd for the running process which can be used for cleanup.
func LaunchMpv(videoPath, socketPath string) (*exec.Cmd, error) {
	if err := deps.CheckMpv(); err != nil {
		return nil, err
	}
	if socketPath == "" {
		socketPath = DefaultSocketPath
	}

	cmd := exec.Command("mpv",
		"--input-ipc-server="+socketPath,
		"--pause",
		"--keep-open=yes",
		videoPath,
	)

	if err := cmd.Start(); err != nil {
		return nil, err
	}

	return cmd, nil
}
