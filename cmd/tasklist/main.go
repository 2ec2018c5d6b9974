package main

import "git.sr.ht/~jakintosh/tasklist/internal/cli"

func main() {
	cli.Execute()
}
