// Command nsbin rewrites the namespace slot of compiled modules.
package main

func main() {
	execute()
}
