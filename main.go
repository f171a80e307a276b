package main

import "github.com/varsilias/openclaw-setup/internal/commands"

func main() {
	commands.Execute()
}
