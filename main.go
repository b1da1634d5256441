/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package main

import "github.com/Liang-Zhanhao/m6aseq-toolkit/cmd"

func main() {
	cmd.Execute()
}
