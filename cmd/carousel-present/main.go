package main

import "github.com/stevenraymond8592-create/AI-Commitment/cmd/carousel-present/cmd"

func main() {
	cmd.Execute()
}
