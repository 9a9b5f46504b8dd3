package main

import "teapot-fortune/cmd"

func main() {
	cmd.Execute()
}
