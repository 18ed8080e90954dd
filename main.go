package main

import "recipe-exporter/cmd"

func main() {
	cmd.Execute()
}
