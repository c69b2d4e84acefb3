package main

import "github.com/Nacho114/harpoon/cmd"

func main() {
	cmd.Execute()
}
