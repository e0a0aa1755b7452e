package main

import "github.com/hearthbudget/hearth/cmd"

func main() {
	cmd.Execute()
}
