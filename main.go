package main

import "github.com/mozilla-it/heroku-audit/cmd"

func main() {
	cmd.Execute()
}
