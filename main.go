package main

import "github.com/gyulababa/scene-tree-parser/cmd"

func main() {
	cmd.Execute()
}
