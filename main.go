package main

import (
	"project-submission-system/cmd/server"
)

func main() {
	server.Init()
	server.Run()
}
