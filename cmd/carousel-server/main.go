package main

import "github.com/stevenraymond8592-create/AI-Commitment/cmd/carousel-server/cmd"

func main() {
	cmd.Execute()
}
