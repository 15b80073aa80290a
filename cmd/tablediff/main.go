package main

import "github.com/dbsmedya/tablediff/cmd/tablediff/cmd"

func main() {
	cmd.Execute()
}
