package main

import "github.com/comitanigiacomo/kanso-habit-dashboard/internal/cli"

func main() {
	cli.Execute()
}
