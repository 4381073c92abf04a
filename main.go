/*
Copyright © 2026 NAME HERE <EMAIL ADDRESS>
*/
package main

import "github.com/learnhub/lmscli/cmd"

func main() {
	cmd.Execute()
}
