package main

import "github.com/user/video-trimmer-cli/cmd"

func main() {
	cmd.Execute()
}
