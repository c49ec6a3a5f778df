package main

import "github.com/mahmoudkheyrati/cpu-scheduler-simulator/cmd"

func main() {
	cmd.Execute()
}
