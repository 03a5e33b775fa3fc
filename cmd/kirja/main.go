// Kirja - AWS resource inventory to spreadsheet
// List. Flatten. Write.
package main

func main() {
	Execute()
}
