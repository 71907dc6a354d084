package main

import "github.com/inovacc/quest/cmd"

func main() {
	cmd.Execute()
}
