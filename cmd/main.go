// Command prank-names scrapes the Simpsons wiki list of Bart's prank calls
// and prints random names built from it until the user types q.
package main

func main() {
	Execute()
}
