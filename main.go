package main

import "github.com/deanmoses/flipfix/cmd"

func main() {
	cmd.Execute()
}
