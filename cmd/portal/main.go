package main

import "github.com/sosportal/portal/cmd/portal/command"

func main() {
	command.Execute()
}
