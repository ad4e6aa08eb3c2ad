package main

import "github.com/arya-analytics/saki/cmd"

func main() { cmd.Execute() }
