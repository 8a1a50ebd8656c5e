// Command godutch splits shared bills from the terminal.
package main

func main() {
	Execute()
}
